package transport

import (
	"context"
	"fmt"
	"log"
	"net"
	"sync"
	"time"

	"google.golang.org/grpc"

	peerbookpb "peerbook/internal/gen/api"
	"peerbook/internal/wire"
)

// queueSize bounds how many envelopes may wait between notify ticks.
const queueSize = 256

// Consumer handles envelopes delivered to this node.
type Consumer interface {
	Notify(env wire.Envelope)
}

// Receiver accepts envelope deliveries on a local port. Deliveries are
// queued and handed to the registered consumer by a notifier goroutine that
// wakes every notify interval, so a slow consumer never blocks the gRPC
// handler.
type Receiver struct {
	peerbookpb.UnimplementedPeerMessengerServer

	selfID         string
	port           int
	notifyInterval time.Duration

	mu        sync.RWMutex
	consumer  Consumer
	boundPort int // set once the listener is bound

	queue      chan wire.Envelope
	listener   net.Listener
	grpcServer *grpc.Server

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewReceiver creates a receiver bound to the given port once started.
// Port 0 picks a free port; see Port.
func NewReceiver(selfID string, port int, notifyInterval time.Duration) *Receiver {
	if notifyInterval <= 0 {
		notifyInterval = 1 * time.Second
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Receiver{
		selfID:         selfID,
		port:           port,
		notifyInterval: notifyInterval,
		queue:          make(chan wire.Envelope, queueSize),
		ctx:            ctx,
		cancel:         cancel,
	}
}

// RegisterConsumer sets the sole consumer of inbound envelopes. Must be
// called before Start.
func (r *Receiver) RegisterConsumer(c Consumer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.consumer = c
}

// Port returns the port the receiver is listening on: the bound port once
// Start has succeeded, the configured one before that.
func (r *Receiver) Port() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.boundPort != 0 {
		return r.boundPort
	}
	return r.port
}

// Start binds the listener and launches the serve and notifier goroutines.
func (r *Receiver) Start() error {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", r.port))
	if err != nil {
		return fmt.Errorf("failed to listen on port %d: %w", r.port, err)
	}
	r.listener = lis

	r.mu.Lock()
	r.boundPort = lis.Addr().(*net.TCPAddr).Port
	r.mu.Unlock()

	r.grpcServer = grpc.NewServer()
	peerbookpb.RegisterPeerMessengerServer(r.grpcServer, r)

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		if err := r.grpcServer.Serve(lis); err != nil {
			log.Printf("[%s] Receiver serve stopped: %v", r.selfID, err)
		}
	}()

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		r.notifyLoop()
	}()

	log.Printf("[%s] Receiver listening on %s", r.selfID, lis.Addr())
	return nil
}

// Stop tears the receiver down: no new deliveries, queued envelopes are
// dropped, and both goroutines have exited by the time it returns.
func (r *Receiver) Stop() {
	r.cancel()
	if r.grpcServer != nil {
		r.grpcServer.GracefulStop()
	}
	r.wg.Wait()
}

// Deliver implements the PeerMessenger service: queue the envelope and ack.
// A full queue drops the envelope; gossip is best effort and a dropped
// add-contact can be re-learned from any other peer.
func (r *Receiver) Deliver(ctx context.Context, pb *peerbookpb.Envelope) (*peerbookpb.DeliverAck, error) {
	select {
	case r.queue <- wire.FromProto(pb):
	default:
		log.Printf("[%s] Receiver queue full, dropping %q", r.selfID, pb.GetCommand())
	}
	return &peerbookpb.DeliverAck{ResponderId: r.selfID}, nil
}

// notifyLoop drains the queue to the consumer every notify interval.
func (r *Receiver) notifyLoop() {
	ticker := time.NewTicker(r.notifyInterval)
	defer ticker.Stop()

	for {
		select {
		case <-r.ctx.Done():
			return
		case <-ticker.C:
			r.drain()
		}
	}
}

// drain hands every queued envelope to the consumer, if one is registered.
func (r *Receiver) drain() {
	r.mu.RLock()
	consumer := r.consumer
	r.mu.RUnlock()

	if consumer == nil {
		return
	}

	for {
		select {
		case env := <-r.queue:
			consumer.Notify(env)
		default:
			return
		}
	}
}
