package wire

import "fmt"

// DeliveryError reports that an envelope could not be delivered to a
// recipient. It is the only error class that drives the liveness state
// machine; programmer errors (nil envelope, malformed address) are returned
// as plain errors and must not be mistaken for an unreachable peer.
type DeliveryError struct {
	Addr string
	Err  error
}

// Error implements the error interface.
func (e *DeliveryError) Error() string {
	return fmt.Sprintf("delivery to %s failed: %v", e.Addr, e.Err)
}

// Unwrap returns the underlying transport error.
func (e *DeliveryError) Unwrap() error {
	return e.Err
}
