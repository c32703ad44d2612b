package intermediate

type (
	// Behaviour is a schedulable unit of agent logic. The four variants
	// differ only in their scheduling trigger; they all hold an ordered set
	// of actions.
	Behaviour interface {
		// BehaviourName returns the declared behaviour name.
		BehaviourName() string
		// Actions returns the behaviour's actions in declaration order.
		Actions() []Action
		// AddAction appends an action.
		AddAction(Action)
		// ActionExists reports whether the behaviour declares the named
		// action.
		ActionExists(name string) bool
	}

	// SetupBehaviour runs once when the agent starts.
	SetupBehaviour struct {
		baseBehaviour
	}

	// OneTimeBehaviour runs once after a fixed delay in seconds.
	OneTimeBehaviour struct {
		baseBehaviour
		// Delay is the delay token as written in the source.
		Delay string
	}

	// CyclicBehaviour runs repeatedly at a fixed period in seconds.
	CyclicBehaviour struct {
		baseBehaviour
		// Period is the period token as written in the source.
		Period string
	}

	// MessageReceivedBehaviour runs once per inbound message matching the
	// bound template's (type, performative) pair.
	MessageReceivedBehaviour struct {
		baseBehaviour
		// ReceivedMessage is the behaviour's own copy of the matched
		// message template.
		ReceivedMessage *Message
	}

	baseBehaviour struct {
		name    string
		actions []Action
	}
)

// NewSetupBehaviour returns an empty setup behaviour.
func NewSetupBehaviour(name string) *SetupBehaviour {
	return &SetupBehaviour{baseBehaviour{name: name}}
}

// NewOneTimeBehaviour returns an empty one-time behaviour.
func NewOneTimeBehaviour(name, delay string) *OneTimeBehaviour {
	return &OneTimeBehaviour{baseBehaviour: baseBehaviour{name: name}, Delay: delay}
}

// NewCyclicBehaviour returns an empty cyclic behaviour.
func NewCyclicBehaviour(name, period string) *CyclicBehaviour {
	return &CyclicBehaviour{baseBehaviour: baseBehaviour{name: name}, Period: period}
}

// NewMessageReceivedBehaviour returns an empty message-received behaviour
// bound to its own copy of the matched message template.
func NewMessageReceivedBehaviour(name string, received *Message) *MessageReceivedBehaviour {
	return &MessageReceivedBehaviour{baseBehaviour: baseBehaviour{name: name}, ReceivedMessage: received}
}

func (b *baseBehaviour) BehaviourName() string { return b.name }

func (b *baseBehaviour) Actions() []Action { return b.actions }

func (b *baseBehaviour) AddAction(a Action) { b.actions = append(b.actions, a) }

func (b *baseBehaviour) ActionExists(name string) bool {
	for _, a := range b.actions {
		if a.ActionName() == name {
			return true
		}
	}
	return false
}
