package intermediate

type (
	// Agent describes one declared agent type: its parameters across the
	// five parameter categories and its behaviours grouped by trigger.
	// Every slice preserves declaration order.
	Agent struct {
		// Name is the unique agent type name.
		Name string

		// InitFloatParams are fixed-value numeric parameters.
		InitFloatParams []*InitFloatParam
		// DistNormalFloatParams are normal-distribution-initialized
		// numeric parameters.
		DistNormalFloatParams []*DistNormalFloatParam
		// DistExpFloatParams are exponential-distribution-initialized
		// numeric parameters.
		DistExpFloatParams []*DistExpFloatParam
		// EnumParams are weighted enumerated parameters.
		EnumParams []*EnumParam
		// ConnectionListParams are peer list parameters.
		ConnectionListParams []*ConnectionListParam
		// MessageListParams are message buffer parameters.
		MessageListParams []*MessageListParam

		// SetupBehaviours run once at agent start.
		SetupBehaviours []*SetupBehaviour
		// OneTimeBehaviours run once after a delay.
		OneTimeBehaviours []*OneTimeBehaviour
		// CyclicBehaviours run periodically.
		CyclicBehaviours []*CyclicBehaviour
		// MessageReceivedBehaviours run per matching inbound message.
		MessageReceivedBehaviours []*MessageReceivedBehaviour
	}

	// InitFloatParam is a float parameter with a fixed initial value.
	InitFloatParam struct {
		Name  string
		Value string
	}

	// DistNormalFloatParam is a float parameter initialized from a normal
	// distribution.
	DistNormalFloatParam struct {
		Name   string
		Mean   string
		StdDev string
	}

	// DistExpFloatParam is a float parameter initialized from an
	// exponential distribution with rate Lambda.
	DistExpFloatParam struct {
		Name   string
		Lambda string
	}

	// EnumParam is an enumerated parameter whose initial value is drawn
	// from weighted values. Percentages are relative weights and need not
	// sum to 100.
	EnumParam struct {
		Name   string
		Values []EnumValuePair
	}

	// EnumValuePair is one (value, percentage) entry of an enum parameter.
	EnumValuePair struct {
		Value      string
		Percentage string
	}

	// ConnectionListParam is a list of peer identifiers.
	ConnectionListParam struct {
		Name string
	}

	// MessageListParam is a buffer of received messages.
	MessageListParam struct {
		Name string
	}
)

// NewAgent returns an empty agent.
func NewAgent(name string) *Agent {
	return &Agent{Name: name}
}

// ParamExists reports whether name is taken by any parameter category of the
// agent. Parameter names are unique across categories.
func (a *Agent) ParamExists(name string) bool {
	for _, p := range a.InitFloatParams {
		if p.Name == name {
			return true
		}
	}
	for _, p := range a.DistNormalFloatParams {
		if p.Name == name {
			return true
		}
	}
	for _, p := range a.DistExpFloatParams {
		if p.Name == name {
			return true
		}
	}
	for _, p := range a.EnumParams {
		if p.Name == name {
			return true
		}
	}
	for _, p := range a.ConnectionListParams {
		if p.Name == name {
			return true
		}
	}
	for _, p := range a.MessageListParams {
		if p.Name == name {
			return true
		}
	}
	return false
}

// FloatParam reports whether name is a float parameter of any flavour.
func (a *Agent) FloatParam(name string) bool {
	for _, p := range a.InitFloatParams {
		if p.Name == name {
			return true
		}
	}
	for _, p := range a.DistNormalFloatParams {
		if p.Name == name {
			return true
		}
	}
	for _, p := range a.DistExpFloatParams {
		if p.Name == name {
			return true
		}
	}
	return false
}

// EnumParamByName returns the named enum parameter, or nil.
func (a *Agent) EnumParamByName(name string) *EnumParam {
	for _, p := range a.EnumParams {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// ConnectionListParamExists reports whether name is a connection list
// parameter.
func (a *Agent) ConnectionListParamExists(name string) bool {
	for _, p := range a.ConnectionListParams {
		if p.Name == name {
			return true
		}
	}
	return false
}

// MessageListParamExists reports whether name is a message list parameter.
func (a *Agent) MessageListParamExists(name string) bool {
	for _, p := range a.MessageListParams {
		if p.Name == name {
			return true
		}
	}
	return false
}

// EnumWithValue returns the enum parameter declaring the given literal value,
// or nil.
func (a *Agent) EnumWithValue(value string) *EnumParam {
	for _, p := range a.EnumParams {
		for _, v := range p.Values {
			if v.Value == value {
				return p
			}
		}
	}
	return nil
}

// FloatParamNames returns the names of every float parameter in declaration
// order, fixed-value parameters first.
func (a *Agent) FloatParamNames() []string {
	names := make([]string, 0, len(a.InitFloatParams)+len(a.DistNormalFloatParams)+len(a.DistExpFloatParams))
	for _, p := range a.InitFloatParams {
		names = append(names, p.Name)
	}
	for _, p := range a.DistNormalFloatParams {
		names = append(names, p.Name)
	}
	for _, p := range a.DistExpFloatParams {
		names = append(names, p.Name)
	}
	return names
}

// BehaviourExists reports whether name is taken by any behaviour of the
// agent, across all four trigger kinds.
func (a *Agent) BehaviourExists(name string) bool {
	for _, b := range a.Behaviours() {
		if b.BehaviourName() == name {
			return true
		}
	}
	return false
}

// Behaviours returns every behaviour of the agent grouped by trigger kind,
// setup first, in declaration order within each kind.
func (a *Agent) Behaviours() []Behaviour {
	all := make([]Behaviour, 0,
		len(a.SetupBehaviours)+len(a.OneTimeBehaviours)+len(a.CyclicBehaviours)+len(a.MessageReceivedBehaviours))
	for _, b := range a.SetupBehaviours {
		all = append(all, b)
	}
	for _, b := range a.OneTimeBehaviours {
		all = append(all, b)
	}
	for _, b := range a.CyclicBehaviours {
		all = append(all, b)
	}
	for _, b := range a.MessageReceivedBehaviours {
		all = append(all, b)
	}
	return all
}
