package book

import (
	"context"
	"errors"
	"log"
	"sort"
	"sync"
	"time"

	"peerbook/internal/config"
	"peerbook/internal/contact"
	"peerbook/internal/wire"
)

// Sender delivers an envelope to a peer address. Implementations must return
// a *wire.DeliveryError when the recipient could not be reached; any other
// error is treated as a programmer error and does not touch liveness state.
type Sender interface {
	Send(ctx context.Context, addr string, env wire.Envelope) error
}

// Book is the address book of one node. All access to the peer view and to
// contact liveness goes through the book's lock: the message handler, the
// sweep loop, and external callers may run concurrently.
type Book struct {
	mu    sync.Mutex
	self  contact.Contact
	peers map[string]*contact.Contact // id -> contact

	cfg    config.Config
	sender Sender

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates an address book for self, seeded with the given contacts. The
// seed slice is copied; self and duplicate ids are never admitted. No
// background work starts until Start is called.
func New(self contact.Contact, seed []contact.Contact, cfg config.Config, sender Sender) *Book {
	cfg.Normalize()

	ctx, cancel := context.WithCancel(context.Background())

	b := &Book{
		self:   self,
		peers:  make(map[string]*contact.Contact, len(seed)),
		cfg:    cfg,
		sender: sender,
		ctx:    ctx,
		cancel: cancel,
	}

	for _, c := range seed {
		if c.ID == self.ID {
			continue
		}
		if _, exists := b.peers[c.ID]; exists {
			continue
		}
		cc := c.Clone()
		b.peers[c.ID] = &cc
	}

	return b
}

// Start launches the background sweep of inactive peers.
func (b *Book) Start() {
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		ticker := time.NewTicker(b.cfg.ProbeInterval)
		defer ticker.Stop()

		for {
			select {
			case <-b.ctx.Done():
				return
			case <-ticker.C:
				b.sweepInactive()
			}
		}
	}()
}

// Stop cancels the sweep loop and waits for it to exit.
func (b *Book) Stop() {
	b.cancel()
	b.wg.Wait()
}

// Self returns the contact of the owning node.
func (b *Book) Self() contact.Contact {
	return b.self.Clone()
}

// Len returns the number of known peers.
func (b *Book) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.peers)
}

// Contains reports whether a peer with the given id is in the view.
func (b *Book) Contains(id string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, exists := b.peers[id]
	return exists
}

// Peers returns a snapshot of the current view, sorted by id.
func (b *Book) Peers() []contact.Contact {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.snapshotLocked()
}

// snapshotLocked copies the peer view sorted by id. Must be called with the
// lock held.
func (b *Book) snapshotLocked() []contact.Contact {
	out := make([]contact.Contact, 0, len(b.peers))
	for _, c := range b.peers {
		out = append(out, c.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// AddLocalContact inserts a peer this node discovered itself and announces
// it to every other known peer. The caller is responsible for passing a
// genuinely new peer; unlike gossiped contacts it is inserted
// unconditionally. The forward attempt has been issued for every target by
// the time this returns.
func (b *Book) AddLocalContact(c contact.Contact) {
	b.mu.Lock()
	cc := c.Clone()
	b.peers[cc.ID] = &cc
	targets := b.snapshotLocked()
	b.mu.Unlock()

	b.forward(cc, targets)
}

// Notify handles one inbound envelope from the receiver. Unknown commands
// are discarded without error so newer protocol versions can coexist with
// this one.
func (b *Book) Notify(env wire.Envelope) {
	switch env.Command {
	case wire.CommandAddContact:
		if env.Contact == nil {
			return
		}
		b.addGossiped(*env.Contact)
	case wire.CommandPing:
		// Delivery success is the whole point; nothing to do here.
	default:
		// Forward compatibility: ignore.
	}
}

// addGossiped applies the add-contact rule: discard self and duplicates,
// otherwise insert and forward to everyone else.
func (b *Book) addGossiped(c contact.Contact) {
	if c.ID == b.self.ID {
		return
	}

	b.mu.Lock()
	if _, exists := b.peers[c.ID]; exists {
		b.mu.Unlock()
		return
	}
	cc := c.Clone()
	cc.LinkUp()
	b.peers[cc.ID] = &cc
	targets := b.snapshotLocked()
	b.mu.Unlock()

	log.Printf("[%s] Learned contact %s via gossip", b.self.ID, cc.ID)

	b.forward(cc, targets)
}

// forward announces a newly added contact to every target except the
// announced contact itself and self. Targets are a snapshot taken right
// after the insertion.
func (b *Book) forward(added contact.Contact, targets []contact.Contact) {
	env := wire.NewAddContact(added)

	for _, target := range targets {
		if target.ID == added.ID {
			continue
		}
		if target.ID == b.self.ID {
			continue
		}
		b.SendToContact(target, env)
	}
}

// SendToContact delivers an envelope to a peer and records the outcome
// against its liveness state: success marks the link up, a delivery failure
// marks it down. This is the only place liveness is mutated in response to
// the network. Returns false iff delivery failed.
func (b *Book) SendToContact(recipient contact.Contact, env wire.Envelope) (bool, error) {
	ctx, cancel := context.WithTimeout(b.ctx, b.cfg.SendTimeout)
	defer cancel()

	err := b.sender.Send(ctx, recipient.Addr(), env)

	var de *wire.DeliveryError
	switch {
	case err == nil:
		b.setLinkState(recipient.ID, true)
		return true, nil
	case errors.As(err, &de):
		b.setLinkState(recipient.ID, false)
		return false, err
	default:
		// Not a reachability problem; leave liveness alone.
		return false, err
	}
}

// setLinkState resolves the recipient by id against the current view and
// flips its link state. A peer evicted or never known is skipped.
func (b *Book) setLinkState(id string, up bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	c, exists := b.peers[id]
	if !exists {
		return
	}
	if up {
		c.LinkUp()
	} else {
		c.LinkDown(time.Now())
	}
}

// sweepInactive pings every currently inactive peer and evicts those whose
// failure streak started longer than the restore timeout ago. Active peers
// are never probed, so probe traffic is bounded by the unreachable subset.
func (b *Book) sweepInactive() {
	b.mu.Lock()
	inactive := make([]contact.Contact, 0)
	for _, c := range b.peers {
		if !c.IsActive() {
			inactive = append(inactive, c.Clone())
		}
	}
	b.mu.Unlock()
	sort.Slice(inactive, func(i, j int) bool { return inactive[i].ID < inactive[j].ID })

	for _, c := range inactive {
		ok, err := b.SendToContact(c, wire.NewPing())
		if ok {
			log.Printf("[%s] Contact %s is reachable again", b.self.ID, c.ID)
			continue
		}

		// Only a reachability failure counts toward eviction; an RPC error
		// from a live peer left liveness alone and must not age the streak.
		var de *wire.DeliveryError
		if !errors.As(err, &de) {
			continue
		}

		b.evictExpired(c.ID)
	}
}

// evictExpired removes a peer whose current failure streak is older than the
// restore timeout. The streak is re-read under the lock: a peer that proved
// reachable between the sweep snapshot and the probe has a fresh (or no)
// streak and is kept. Eviction is final; an evicted peer only comes back
// through a fresh add-contact originating elsewhere.
func (b *Book) evictExpired(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	c, exists := b.peers[id]
	if !exists {
		return
	}
	if c.FirstFailure == nil || time.Since(*c.FirstFailure) <= b.cfg.RestoreTimeout {
		return
	}
	delete(b.peers, id)
	log.Printf("[%s] Evicted contact %s (unreachable past restore timeout)", b.self.ID, id)
}
