// Package it provides an in-process integration harness: several address
// books wired through an in-memory bus with per-address failure injection,
// so whole-protocol scenarios run deterministically without sockets.
package it

import (
	"context"
	"errors"
	"sync"

	"peerbook/internal/book"
	"peerbook/internal/config"
	"peerbook/internal/contact"
	"peerbook/internal/wire"
)

// Bus routes envelopes between registered books by address, synchronously.
// Marking an address down makes every delivery to it fail with a
// wire.DeliveryError, like an unplugged peer.
type Bus struct {
	mu    sync.Mutex
	books map[string]*book.Book // addr -> book
	down  map[string]bool       // addr -> unreachable
	sends map[string]int        // addr -> delivery attempts
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{
		books: make(map[string]*book.Book),
		down:  make(map[string]bool),
		sends: make(map[string]int),
	}
}

// Send implements book.Sender. Delivery is synchronous: the receiving book
// handles the envelope before Send returns.
func (bus *Bus) Send(ctx context.Context, addr string, env wire.Envelope) error {
	bus.mu.Lock()
	bus.sends[addr]++
	target, exists := bus.books[addr]
	unreachable := bus.down[addr] || !exists
	bus.mu.Unlock()

	if unreachable {
		return &wire.DeliveryError{Addr: addr, Err: errors.New("peer unreachable")}
	}

	target.Notify(env)
	return nil
}

// SetDown marks an address unreachable (or reachable again).
func (bus *Bus) SetDown(addr string, down bool) {
	bus.mu.Lock()
	defer bus.mu.Unlock()
	bus.down[addr] = down
}

// Sends returns how many deliveries were attempted to addr.
func (bus *Bus) Sends(addr string) int {
	bus.mu.Lock()
	defer bus.mu.Unlock()
	return bus.sends[addr]
}

// Cluster holds the books of an in-process network.
type Cluster struct {
	Bus   *Bus
	books map[string]*book.Book
	order []string
}

// NewCluster creates an empty cluster around a fresh bus.
func NewCluster() *Cluster {
	return &Cluster{
		Bus:   NewBus(),
		books: make(map[string]*book.Book),
	}
}

// AddNode creates a book for the given contact, seeded with seed, and plugs
// it into the bus. The sweep loop is not started; tests drive time
// explicitly or start it themselves.
func (c *Cluster) AddNode(self contact.Contact, seed []contact.Contact, cfg config.Config) *book.Book {
	b := book.New(self, seed, cfg, c.Bus)

	c.Bus.mu.Lock()
	c.Bus.books[self.Addr()] = b
	c.Bus.mu.Unlock()

	c.books[self.ID] = b
	c.order = append(c.order, self.ID)
	return b
}

// Book returns the book of the node with the given id.
func (c *Cluster) Book(id string) *book.Book {
	return c.books[id]
}

// Stop stops every started book.
func (c *Cluster) Stop() {
	for _, id := range c.order {
		c.books[id].Stop()
	}
}
