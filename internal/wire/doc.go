// Package wire defines the envelope exchanged between peers and the error
// taxonomy of the transport boundary. The envelope is a tagged variant: the
// two known commands carry typed payloads, and anything else is preserved
// as-is so receivers can ignore commands they do not understand.
package wire
