package wire

import (
	"peerbook/internal/contact"
	peerbookpb "peerbook/internal/gen/api"
)

// Commands understood by this version of the protocol. Unknown commands are
// carried through unchanged and ignored by the handler.
const (
	CommandAddContact = "add-contact"
	CommandPing       = "ping"
)

// Envelope is a protocol message: a command tag plus an optional contact
// payload. Only add-contact carries a payload.
type Envelope struct {
	Command string
	Contact *contact.Contact
}

// NewAddContact builds an add-contact envelope announcing the given peer.
func NewAddContact(c contact.Contact) Envelope {
	payload := c.Clone()
	// Liveness is local state, never gossiped.
	payload.LinkUp()
	return Envelope{Command: CommandAddContact, Contact: &payload}
}

// NewPing builds an empty liveness probe.
func NewPing() Envelope {
	return Envelope{Command: CommandPing}
}

// ToProto converts an envelope to its protobuf form.
func (e Envelope) ToProto() *peerbookpb.Envelope {
	pb := &peerbookpb.Envelope{Command: e.Command}
	if e.Contact != nil {
		pb.Contact = &peerbookpb.Contact{
			Id:   e.Contact.ID,
			Host: e.Contact.Host,
			Port: int32(e.Contact.Port),
		}
	}
	return pb
}

// FromProto converts a protobuf envelope to the internal form.
func FromProto(pb *peerbookpb.Envelope) Envelope {
	if pb == nil {
		return Envelope{}
	}
	env := Envelope{Command: pb.Command}
	if pb.Contact != nil {
		c := contact.New(pb.Contact.Id, pb.Contact.Host, int(pb.Contact.Port))
		env.Contact = &c
	}
	return env
}
