package transport

import (
	"context"
	"fmt"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	peerbookpb "peerbook/internal/gen/api"
	"peerbook/internal/wire"
)

const (
	// Connection timeout
	dialTimeout = 5 * time.Second
)

// GRPCSender delivers envelopes over gRPC and caches one connection per
// address. It satisfies the book.Sender contract: an unreachable recipient
// comes back as *wire.DeliveryError, anything else as a plain error.
type GRPCSender struct {
	mu      sync.RWMutex
	clients map[string]peerbookpb.PeerMessengerClient
	conns   map[string]*grpc.ClientConn
}

// NewGRPCSender creates a sender with an empty connection cache.
func NewGRPCSender() *GRPCSender {
	return &GRPCSender{
		clients: make(map[string]peerbookpb.PeerMessengerClient),
		conns:   make(map[string]*grpc.ClientConn),
	}
}

// getClient returns a gRPC client for the given peer address.
// Creates a new connection if one doesn't exist.
func (s *GRPCSender) getClient(addr string) (peerbookpb.PeerMessengerClient, error) {
	s.mu.RLock()
	client, exists := s.clients[addr]
	s.mu.RUnlock()

	if exists {
		return client, nil
	}

	// Create new connection
	s.mu.Lock()
	defer s.mu.Unlock()

	// Double-check after acquiring write lock
	if client, exists := s.clients[addr]; exists {
		return client, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
	defer cancel()

	conn, err := grpc.DialContext(ctx, addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s: %w", addr, err)
	}

	client = peerbookpb.NewPeerMessengerClient(conn)
	s.clients[addr] = client
	s.conns[addr] = conn
	return client, nil
}

// Send delivers one envelope to the peer at addr. The caller's context
// bounds the whole attempt so a dead peer fails fast.
func (s *GRPCSender) Send(ctx context.Context, addr string, env wire.Envelope) error {
	if env.Command == "" {
		return fmt.Errorf("envelope has no command")
	}

	client, err := s.getClient(addr)
	if err != nil {
		return &wire.DeliveryError{Addr: addr, Err: err}
	}

	_, err = client.Deliver(ctx, env.ToProto())
	if err == nil {
		return nil
	}

	// Reachability failures drive the liveness state machine; anything else
	// is surfaced as-is.
	switch status.Code(err) {
	case codes.Unavailable, codes.DeadlineExceeded, codes.Canceled:
		return &wire.DeliveryError{Addr: addr, Err: err}
	default:
		return fmt.Errorf("deliver to %s: %w", addr, err)
	}
}

// Close drops all cached connections.
func (s *GRPCSender) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for addr, conn := range s.conns {
		conn.Close()
		delete(s.conns, addr)
		delete(s.clients, addr)
	}
}
