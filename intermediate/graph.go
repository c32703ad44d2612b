package intermediate

type (
	// Graph describes how initial peer connections are assigned among agent
	// instances. It is either a StatisticalGraph or a MatrixGraph.
	Graph interface {
		isGraph()
	}

	// StatisticalGraph sizes each agent type's population (absolute or as a
	// percentage of Size) and draws per-instance connection counts from the
	// type's spec at generation time.
	StatisticalGraph struct {
		// Size is the target total population used to resolve percentage
		// amounts.
		Size string
		// Agents lists the per-type specs in declaration order.
		Agents []*GraphAgent
	}

	// GraphAgent is one agent type's population and connection spec inside
	// a statistical graph.
	GraphAgent struct {
		// Name is the declared agent type name.
		Name string
		// Amount sizes this type's population.
		Amount AgentAmount
		// Connections sizes each instance's connection count.
		Connections ConnectionAmount
	}

	// AgentAmount is either an AgentConstantAmount or an
	// AgentPercentAmount.
	AgentAmount interface {
		isAgentAmount()
	}

	// AgentConstantAmount is an absolute instance count.
	AgentConstantAmount struct {
		Value string
	}

	// AgentPercentAmount is a percentage of the graph's target size,
	// rounded to the nearest integer.
	AgentPercentAmount struct {
		Value string
	}

	// ConnectionAmount is one of the four connection-count specs.
	ConnectionAmount interface {
		isConnectionAmount()
	}

	// ConnectionConstantAmount is a fixed connection count.
	ConnectionConstantAmount struct {
		Value string
	}

	// ConnectionDistNormalAmount draws the count from a normal
	// distribution.
	ConnectionDistNormalAmount struct {
		Mean   string
		StdDev string
	}

	// ConnectionDistExpAmount draws the count from an exponential
	// distribution with rate Lambda.
	ConnectionDistExpAmount struct {
		Lambda string
	}

	// ConnectionDistUniformAmount draws the count uniformly from [A, B].
	ConnectionDistUniformAmount struct {
		A string
		B string
	}

	// MatrixGraph replicates a base 0/1 adjacency matrix over Scale shards.
	// A zero Scale means unspecified and defaults to a single shard.
	MatrixGraph struct {
		// Scale is the replication factor; 0 when unspecified.
		Scale int
		// Agents lists the base types and their adjacency rows in
		// declaration order.
		Agents []*MatrixAgent
	}

	// MatrixAgent is one base type of a matrix graph together with its 0/1
	// adjacency row against the other base types.
	MatrixAgent struct {
		// Name is the declared agent type name.
		Name string
		// AdjRow marks, per base type, whether instances of this type
		// connect to it.
		AdjRow []int
	}
)

func (*StatisticalGraph) isGraph() {}
func (*MatrixGraph) isGraph()      {}

func (*AgentConstantAmount) isAgentAmount() {}
func (*AgentPercentAmount) isAgentAmount()  {}

func (*ConnectionConstantAmount) isConnectionAmount()    {}
func (*ConnectionDistNormalAmount) isConnectionAmount()  {}
func (*ConnectionDistExpAmount) isConnectionAmount()     {}
func (*ConnectionDistUniformAmount) isConnectionAmount() {}

// AgentByName returns the statistical spec for the named type, or nil.
func (g *StatisticalGraph) AgentByName(name string) *GraphAgent {
	for _, a := range g.Agents {
		if a.Name == name {
			return a
		}
	}
	return nil
}

// AgentByName returns the matrix entry for the named type, or nil.
func (g *MatrixGraph) AgentByName(name string) *MatrixAgent {
	for _, a := range g.Agents {
		if a.Name == name {
			return a
		}
	}
	return nil
}

// ScaleDefined reports whether an explicit replication factor was declared.
func (g *MatrixGraph) ScaleDefined() bool { return g.Scale > 0 }

// EffectiveScale returns the declared replication factor, defaulting to 1.
func (g *MatrixGraph) EffectiveScale() int {
	if g.Scale > 0 {
		return g.Scale
	}
	return 1
}
