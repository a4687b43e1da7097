// Package contact defines the peer contact record: a stable identity, the
// endpoint the peer listens on, and the link liveness state derived from
// delivery outcomes. A contact is active until a send to it fails, and
// becomes active again on the first successful send after a failure streak.
package contact
