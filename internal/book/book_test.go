package book

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"peerbook/internal/config"
	"peerbook/internal/contact"
	"peerbook/internal/wire"
)

// sentEnv records one delivery attempt.
type sentEnv struct {
	Addr string
	Env  wire.Envelope
}

// fakeSender records deliveries and fails addresses on demand, either as an
// unreachable peer (DeliveryError) or as a live peer returning a plain RPC
// error. An optional hook runs on every send, before the outcome is
// reported.
type fakeSender struct {
	mu     sync.Mutex
	sent   []sentEnv
	failed map[string]bool // addr -> unreachable
	broken map[string]bool // addr -> reachable but erroring
	onSend func(addr string)
}

func newFakeSender() *fakeSender {
	return &fakeSender{
		failed: make(map[string]bool),
		broken: make(map[string]bool),
	}
}

func (f *fakeSender) Send(ctx context.Context, addr string, env wire.Envelope) error {
	f.mu.Lock()
	f.sent = append(f.sent, sentEnv{Addr: addr, Env: env})
	unreachable := f.failed[addr]
	broken := f.broken[addr]
	hook := f.onSend
	f.mu.Unlock()

	if hook != nil {
		hook(addr)
	}
	if unreachable {
		return &wire.DeliveryError{Addr: addr, Err: errors.New("unreachable")}
	}
	if broken {
		return errors.New("rpc failed")
	}
	return nil
}

func (f *fakeSender) setUnreachable(addr string, down bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failed[addr] = down
}

func (f *fakeSender) setBroken(addr string, broken bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.broken[addr] = broken
}

func (f *fakeSender) setOnSend(hook func(addr string)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.onSend = hook
}

func (f *fakeSender) sentTo() []sentEnv {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]sentEnv, len(f.sent))
	copy(out, f.sent)
	return out
}

func (f *fakeSender) reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = nil
}

func testConfig() config.Config {
	return config.Config{
		RestoreTimeout: time.Hour,
		ProbeInterval:  time.Hour, // sweeps are driven manually in tests
		NotifyInterval: time.Second,
		SendTimeout:    time.Second,
	}
}

func newTestBook(sender Sender, seed ...contact.Contact) *Book {
	self := contact.New("self", "127.0.0.1", 9000)
	return New(self, seed, testConfig(), sender)
}

func TestNew_CopiesSeed(t *testing.T) {
	seed := []contact.Contact{
		contact.New("a", "127.0.0.1", 9001),
		contact.New("b", "127.0.0.1", 9002),
	}
	b := newTestBook(newFakeSender(), seed...)

	// Mutating the caller's slice must not affect the book.
	seed[0].ID = "mutated"
	seed[1].LinkDown(time.Now())

	if !b.Contains("a") || !b.Contains("b") {
		t.Errorf("Expected view {a, b}, got %v", b.Peers())
	}
	for _, p := range b.Peers() {
		if !p.IsActive() {
			t.Errorf("Expected seeded peer %s to be active", p.ID)
		}
	}
}

func TestNew_SeedSkipsSelfAndDuplicates(t *testing.T) {
	seed := []contact.Contact{
		contact.New("self", "127.0.0.1", 9000),
		contact.New("a", "127.0.0.1", 9001),
		contact.New("a", "127.0.0.1", 9099),
	}
	b := newTestBook(newFakeSender(), seed...)

	if b.Len() != 1 {
		t.Errorf("Expected 1 peer, got %d", b.Len())
	}
	if b.Contains("self") {
		t.Error("Expected self to never be a member of the view")
	}
}

func TestNotify_AddContact_DiscardsSelf(t *testing.T) {
	sender := newFakeSender()
	b := newTestBook(sender)

	self := b.Self()
	b.Notify(wire.NewAddContact(self))

	if b.Len() != 0 {
		t.Errorf("Expected empty view after self add-contact, got %d peers", b.Len())
	}
	if len(sender.sentTo()) != 0 {
		t.Errorf("Expected no forwards, got %d", len(sender.sentTo()))
	}
}

func TestNotify_AddContact_DuplicateIsNoOp(t *testing.T) {
	sender := newFakeSender()
	a := contact.New("a", "127.0.0.1", 9001)
	b := newTestBook(sender, a)

	b.Notify(wire.NewAddContact(a))

	if b.Len() != 1 {
		t.Errorf("Expected view size to stay 1, got %d", b.Len())
	}
	if len(sender.sentTo()) != 0 {
		t.Errorf("Expected duplicate to trigger no forward burst, got %d sends", len(sender.sentTo()))
	}
}

func TestNotify_AddContact_InsertsAndForwards(t *testing.T) {
	sender := newFakeSender()
	a := contact.New("a", "127.0.0.1", 9001)
	c := contact.New("c", "127.0.0.1", 9003)
	b := newTestBook(sender, a, c)

	p := contact.New("p", "127.0.0.1", 9010)
	b.Notify(wire.NewAddContact(p))

	if !b.Contains("p") {
		t.Fatal("Expected p to be inserted")
	}

	sent := sender.sentTo()
	if len(sent) != 2 {
		t.Fatalf("Expected forwards to exactly {a, c}, got %d sends", len(sent))
	}
	// Snapshot iteration is sorted by id, so the order is deterministic.
	if sent[0].Addr != a.Addr() || sent[1].Addr != c.Addr() {
		t.Errorf("Expected sends to [%s %s], got [%s %s]", a.Addr(), c.Addr(), sent[0].Addr, sent[1].Addr)
	}
	for _, s := range sent {
		if s.Env.Command != wire.CommandAddContact {
			t.Errorf("Expected add-contact forward, got %q", s.Env.Command)
		}
		if s.Env.Contact == nil || s.Env.Contact.ID != "p" {
			t.Errorf("Expected forwarded payload p, got %+v", s.Env.Contact)
		}
		if s.Addr == p.Addr() {
			t.Error("Announced peer must not receive its own announcement")
		}
	}
}

func TestAddLocalContact_NoOtherPeers_NoForward(t *testing.T) {
	sender := newFakeSender()
	b := newTestBook(sender)

	b.AddLocalContact(contact.New("p", "127.0.0.1", 9010))

	if b.Len() != 1 {
		t.Errorf("Expected 1 peer, got %d", b.Len())
	}
	if len(sender.sentTo()) != 0 {
		t.Errorf("Expected no forwards with no other peers, got %d", len(sender.sentTo()))
	}
}

func TestAddLocalContact_ForwardsToExisting(t *testing.T) {
	sender := newFakeSender()
	a := contact.New("a", "127.0.0.1", 9001)
	b := newTestBook(sender, a)

	b.AddLocalContact(contact.New("p", "127.0.0.1", 9010))

	sent := sender.sentTo()
	if len(sent) != 1 || sent[0].Addr != a.Addr() {
		t.Fatalf("Expected exactly one forward to %s, got %v", a.Addr(), sent)
	}
}

func TestNotify_UnknownCommand_Ignored(t *testing.T) {
	sender := newFakeSender()
	a := contact.New("a", "127.0.0.1", 9001)
	b := newTestBook(sender, a)

	b.Notify(wire.Envelope{Command: "noop"})
	b.Notify(wire.Envelope{Command: ""})
	b.Notify(wire.Envelope{Command: wire.CommandAddContact}) // missing payload

	if b.Len() != 1 {
		t.Errorf("Expected view unchanged, got %d peers", b.Len())
	}
	for _, p := range b.Peers() {
		if !p.IsActive() {
			t.Errorf("Expected liveness unchanged for %s", p.ID)
		}
	}
	if len(sender.sentTo()) != 0 {
		t.Errorf("Expected no sends, got %d", len(sender.sentTo()))
	}
}

func TestNotify_Ping_NoEffect(t *testing.T) {
	sender := newFakeSender()
	a := contact.New("a", "127.0.0.1", 9001)
	b := newTestBook(sender, a)

	b.Notify(wire.NewPing())

	if b.Len() != 1 || len(sender.sentTo()) != 0 {
		t.Error("Expected ping receipt to have no handler-visible effect")
	}
}

func TestSendToContact_LivenessFeedback(t *testing.T) {
	sender := newFakeSender()
	a := contact.New("a", "127.0.0.1", 9001)
	b := newTestBook(sender, a)

	// Failure marks the link down.
	sender.setUnreachable(a.Addr(), true)
	ok, err := b.SendToContact(a, wire.NewPing())
	if ok {
		t.Fatal("Expected delivery failure")
	}
	var de *wire.DeliveryError
	if !errors.As(err, &de) {
		t.Fatalf("Expected DeliveryError, got %v", err)
	}

	peers := b.Peers()
	if peers[0].IsActive() {
		t.Error("Expected a to be inactive after failed send")
	}
	first := *peers[0].FirstFailure

	// A second failure does not move the streak timestamp.
	b.SendToContact(a, wire.NewPing())
	if !b.Peers()[0].FirstFailure.Equal(first) {
		t.Error("Expected FirstFailure to stay put during an ongoing streak")
	}

	// Success clears the streak.
	sender.setUnreachable(a.Addr(), false)
	ok, err = b.SendToContact(a, wire.NewPing())
	if !ok || err != nil {
		t.Fatalf("Expected delivery success, got ok=%v err=%v", ok, err)
	}
	if !b.Peers()[0].IsActive() {
		t.Error("Expected a to be active after successful send")
	}
}

func TestSendToContact_UnknownRecipient(t *testing.T) {
	sender := newFakeSender()
	b := newTestBook(sender)

	// A recipient outside the view still gets the message; there is just no
	// liveness entry to update.
	stranger := contact.New("x", "127.0.0.1", 9099)
	ok, err := b.SendToContact(stranger, wire.NewPing())
	if !ok || err != nil {
		t.Errorf("Expected delivery to succeed, got ok=%v err=%v", ok, err)
	}
	if b.Len() != 0 {
		t.Error("Expected sending to not grow the view")
	}
}

func TestStartStop_Clean(t *testing.T) {
	b := newTestBook(newFakeSender())
	b.Start()
	done := make(chan struct{})
	go func() {
		b.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not return; sweep loop is not cancellable")
	}
}

func TestConcurrentAccess(t *testing.T) {
	sender := newFakeSender()
	b := newTestBook(sender, contact.New("a", "127.0.0.1", 9001))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				switch n % 4 {
				case 0:
					b.Notify(wire.NewAddContact(contact.New("a", "127.0.0.1", 9001)))
				case 1:
					b.SendToContact(contact.New("a", "127.0.0.1", 9001), wire.NewPing())
				case 2:
					b.Peers()
				case 3:
					b.sweepInactive()
				}
			}
		}(i)
	}
	wg.Wait()

	if !b.Contains("a") {
		t.Error("Expected a to survive concurrent traffic")
	}
}
