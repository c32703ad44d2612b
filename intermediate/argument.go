package intermediate

type (
	// ArgumentKind identifies the origin of an instruction argument, which
	// determines how code generation must qualify the reference.
	ArgumentKind int

	// Argument is a single operand of an instruction. Expr is the token as
	// written in the source (for message params, the part after the dot).
	Argument struct {
		// Expr is the source-level expression of the argument.
		Expr string
		// Kind identifies where the argument value lives.
		Kind ArgumentKind
	}
)

const (
	// FloatLiteral is a numeric constant written in the source.
	FloatLiteral ArgumentKind = iota
	// AgentFloat references a float parameter of the enclosing agent.
	AgentFloat
	// AgentEnum references an enum parameter of the enclosing agent.
	AgentEnum
	// AgentConnectionList references a connection list parameter of the
	// enclosing agent.
	AgentConnectionList
	// AgentMessageList references a message list parameter of the enclosing
	// agent.
	AgentMessageList
	// EnumValue is a literal value of some agent enum parameter.
	EnumValue
	// ReceivedMessageParam references a field of the message the current
	// behaviour received (RCV.field).
	ReceivedMessageParam
	// ReceivedMessage references the received message as a whole (bare
	// RCV), used to store it into a message list.
	ReceivedMessage
	// SendMessageParam references a field of the message the current action
	// is constructing for transmission (SEND.field).
	SendMessageParam
	// Connection references a single connection drawn from a connection
	// list, e.g. a local bound to one peer identifier.
	Connection
	// LocalFloat references a local declared with DECL in the current
	// action.
	LocalFloat
)

// IsNumeric reports whether the argument can appear where a float value is
// expected.
func (a Argument) IsNumeric() bool {
	switch a.Kind {
	case FloatLiteral, AgentFloat, ReceivedMessageParam, SendMessageParam, LocalFloat:
		return true
	}
	return false
}

// IsMutable reports whether the argument can be assigned to.
func (a Argument) IsMutable() bool {
	switch a.Kind {
	case AgentFloat, AgentEnum, ReceivedMessageParam, SendMessageParam, LocalFloat:
		return true
	}
	return false
}

// IsList reports whether the argument references a list parameter.
func (a Argument) IsList() bool {
	return a.Kind == AgentConnectionList || a.Kind == AgentMessageList
}

// IsEnumerable reports whether the argument participates in enum
// equality comparisons.
func (a Argument) IsEnumerable() bool {
	return a.Kind == AgentEnum || a.Kind == EnumValue
}
