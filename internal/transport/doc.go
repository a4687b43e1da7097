// Package transport carries envelopes between peers over gRPC. The Sender
// side caches one client connection per address and reports unreachable
// recipients as wire.DeliveryError; the Receiver side accepts deliveries
// into a queue and notifies the registered consumer at a fixed interval.
package transport
