// Package book implements the peer address book: the local view of known
// contacts, epidemic propagation of newly learned contacts, failure
// detection from delivery outcomes, and a background sweep that re-probes
// unreachable contacts and evicts those failing for longer than the restore
// timeout.
package book
