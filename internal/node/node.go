// Package node wires one peer process together: a receiver bound to the
// self contact's port, a gRPC sender, and the address book running the
// membership protocol between them.
package node

import (
	"fmt"
	"log"

	"peerbook/internal/book"
	"peerbook/internal/config"
	"peerbook/internal/contact"
	"peerbook/internal/transport"
)

// Node represents a single peer in the network.
type Node struct {
	self     contact.Contact
	book     *book.Book
	sender   *transport.GRPCSender
	receiver *transport.Receiver
}

// NewNode creates a node for self, seeded with the given contacts.
func NewNode(self contact.Contact, seed []contact.Contact, cfg config.Config) *Node {
	cfg.Normalize()

	sender := transport.NewGRPCSender()
	receiver := transport.NewReceiver(self.ID, self.Port, cfg.NotifyInterval)
	b := book.New(self, seed, cfg, sender)
	receiver.RegisterConsumer(b)

	return &Node{
		self:     self,
		book:     b,
		sender:   sender,
		receiver: receiver,
	}
}

// Book returns the node's address book.
func (n *Node) Book() *book.Book {
	return n.book
}

// Start binds the receiver to the self port and starts the background sweep.
func (n *Node) Start() error {
	if err := n.receiver.Start(); err != nil {
		return fmt.Errorf("failed to start receiver: %w", err)
	}
	n.book.Start()

	log.Printf("[%s] Node started on %s with %d seeded contacts", n.self.ID, n.self.Addr(), n.book.Len())
	return nil
}

// Stop tears the node down: sweep first so nothing sends through a closed
// transport, then the receiver, then cached client connections.
func (n *Node) Stop() {
	n.book.Stop()
	n.receiver.Stop()
	n.sender.Close()
	log.Printf("[%s] Node stopped", n.self.ID)
}
