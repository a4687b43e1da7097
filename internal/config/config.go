package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"peerbook/internal/contact"
)

// Defaults for the tunables, matching the protocol's intended cadence: a
// probe sweep just under every half hour, and an hour of grace before an
// unreachable peer is dropped.
const (
	DefaultRestoreTimeout = 3600 * time.Second
	DefaultProbeInterval  = 1799 * time.Second
	DefaultNotifyInterval = 1 * time.Second
	DefaultSendTimeout    = 5 * time.Second
)

// Config holds the address book tunables. Pass it explicitly at
// construction; there is no process-wide settings instance.
type Config struct {
	// RestoreTimeout is how long a contact may stay unreachable before the
	// sweep evicts it.
	RestoreTimeout time.Duration
	// ProbeInterval is how often the sweep wakes to ping inactive contacts.
	ProbeInterval time.Duration
	// NotifyInterval is how often the receiver drains queued envelopes to
	// the consumer.
	NotifyInterval time.Duration
	// SendTimeout bounds a single delivery attempt so a dead peer fails
	// fast instead of stalling the sweep.
	SendTimeout time.Duration
}

// Normalize fills zero values with defaults.
func (c *Config) Normalize() {
	if c.RestoreTimeout <= 0 {
		c.RestoreTimeout = DefaultRestoreTimeout
	}
	if c.ProbeInterval <= 0 {
		c.ProbeInterval = DefaultProbeInterval
	}
	if c.NotifyInterval <= 0 {
		c.NotifyInterval = DefaultNotifyInterval
	}
	if c.SendTimeout <= 0 {
		c.SendTimeout = DefaultSendTimeout
	}
}

// ParsePeers parses a comma-separated seed list in the format:
// "id1=host1:port1,id2=host2:port2"
func ParsePeers(peersStr string) ([]contact.Contact, error) {
	if peersStr == "" {
		return []contact.Contact{}, nil
	}

	parts := strings.Split(peersStr, ",")
	peers := make([]contact.Contact, 0, len(parts))

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		kv := strings.SplitN(part, "=", 2)
		if len(kv) != 2 {
			return nil, fmt.Errorf("invalid peer format: %s (expected id=host:port)", part)
		}

		id := strings.TrimSpace(kv[0])
		addr := strings.TrimSpace(kv[1])

		if id == "" || addr == "" {
			return nil, fmt.Errorf("peer id and address cannot be empty: %s", part)
		}

		host, portStr, err := net.SplitHostPort(addr)
		if err != nil {
			return nil, fmt.Errorf("invalid peer address %s: %w", addr, err)
		}
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid peer port %s: %w", portStr, err)
		}

		peers = append(peers, contact.New(id, host, port))
	}

	return peers, nil
}
