package intermediate

import "slices"

// Message is a message template keyed by its (type, performative) pair. Body
// fields are float valued and kept in declaration order.
//
// Templates are shared by every usage site, so callers that bind per-site
// values must work on a Copy.
type Message struct {
	// Type is the message type token.
	Type string
	// Performative is the message performative token.
	Performative string
	// FloatParams lists the body field names in declaration order.
	FloatParams []string
}

// NewMessage returns an empty message template.
func NewMessage(msgType, performative string) *Message {
	return &Message{Type: msgType, Performative: performative}
}

// AddFloatParam appends a body field.
func (m *Message) AddFloatParam(name string) {
	m.FloatParams = append(m.FloatParams, name)
}

// ParamExists reports whether the message declares the named body field.
func (m *Message) ParamExists(name string) bool {
	return slices.Contains(m.FloatParams, name)
}

// Copy returns an independent copy of the template. Every bind site works on
// its own copy so per-site field values never leak into the shared template.
func (m *Message) Copy() *Message {
	return &Message{
		Type:         m.Type,
		Performative: m.Performative,
		FloatParams:  slices.Clone(m.FloatParams),
	}
}
