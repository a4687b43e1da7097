package contact

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

// Contact represents one known peer. ID and endpoint are immutable for the
// peer's lifetime; FirstFailure tracks the current unreachable streak and is
// nil while the link is considered up.
type Contact struct {
	ID   string
	Host string
	Port int

	// FirstFailure is the start of the current failure streak, nil if the
	// contact is active. Callers that share a Contact across goroutines must
	// serialize access (the address book holds its own lock).
	FirstFailure *time.Time
}

// New creates an active contact.
func New(id, host string, port int) Contact {
	return Contact{ID: id, Host: host, Port: port}
}

// Addr returns the dialable "host:port" endpoint.
func (c *Contact) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// LinkDown marks the link as down, recording now as the start of the failure
// streak. A later failure during an ongoing streak does not move the
// timestamp.
func (c *Contact) LinkDown(now time.Time) {
	if c.FirstFailure == nil {
		t := now
		c.FirstFailure = &t
	}
}

// LinkUp marks the link as up, clearing the failure streak. No-op on an
// already active contact.
func (c *Contact) LinkUp() {
	c.FirstFailure = nil
}

// IsActive reports whether the contact has no ongoing failure streak.
func (c *Contact) IsActive() bool {
	return c.FirstFailure == nil
}

// Clone returns a deep copy, so callers can hand out snapshots without
// exposing the tracked liveness state to external mutation.
func (c *Contact) Clone() Contact {
	out := Contact{ID: c.ID, Host: c.Host, Port: c.Port}
	if c.FirstFailure != nil {
		t := *c.FirstFailure
		out.FirstFailure = &t
	}
	return out
}

// String returns a short human-readable form for logs.
func (c *Contact) String() string {
	state := "active"
	if c.FirstFailure != nil {
		state = "inactive since " + c.FirstFailure.Format(time.RFC3339)
	}
	return fmt.Sprintf("%s@%s (%s)", c.ID, c.Addr(), state)
}
