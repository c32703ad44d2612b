package parsing

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/agents-assembly/aasm-go/intermediate"
)

func (s *State) opGraph(kind string) error {
	if err := s.require(!s.inAgent && !s.inMessage && !s.inGraph, "Already inside another construct",
		"Close it before declaring the graph"); err != nil {
		return err
	}
	if err := s.require(s.graph == nil, "The graph is already defined",
		"A program declares at most one graph"); err != nil {
		return err
	}
	switch strings.ToLower(kind) {
	case "statistical":
		s.graph = &intermediate.StatisticalGraph{}
	case "matrix":
		s.graph = &intermediate.MatrixGraph{}
	default:
		return s.errorf(fmt.Sprintf("Unknown graph type: %s", kind),
			"Valid graph types are statistical and matrix")
	}
	s.inGraph = true
	return nil
}

func (s *State) opEGraph() error {
	if err := s.require(s.inGraph, "Not inside a graph"); err != nil {
		return err
	}
	switch g := s.graph.(type) {
	case *intermediate.StatisticalGraph:
		if g.Size == "" {
			for _, a := range g.Agents {
				if _, ok := a.Amount.(*intermediate.AgentPercentAmount); ok {
					return s.errorf("Percentage amounts require a SIZE declaration")
				}
			}
		}
	case *intermediate.MatrixGraph:
		for _, a := range g.Agents {
			if err := s.require(len(a.AdjRow) == len(g.Agents),
				fmt.Sprintf("Adjacency row of %s has %d entries, expected %d", a.Name, len(a.AdjRow), len(g.Agents))); err != nil {
				return err
			}
		}
	}
	s.inGraph = false
	return nil
}

func (s *State) statisticalGraph() (*intermediate.StatisticalGraph, error) {
	g, ok := s.graph.(*intermediate.StatisticalGraph)
	if !ok || !s.inGraph {
		return nil, s.errorf("Only allowed inside a statistical graph")
	}
	return g, nil
}

func (s *State) matrixGraph() (*intermediate.MatrixGraph, error) {
	g, ok := s.graph.(*intermediate.MatrixGraph)
	if !ok || !s.inGraph {
		return nil, s.errorf("Only allowed inside a matrix graph")
	}
	return g, nil
}

func (s *State) opSize(size string) error {
	g, err := s.statisticalGraph()
	if err != nil {
		return err
	}
	if err := s.require(g.Size == "", "SIZE is already defined"); err != nil {
		return err
	}
	n, convErr := strconv.Atoi(size)
	if err := s.require(convErr == nil && n > 0,
		fmt.Sprintf("%s is not a valid graph size", size), "SIZE takes a positive integer"); err != nil {
		return err
	}
	g.Size = size
	return nil
}

// opDefg adds one agent type's population and connection spec to the
// statistical graph:
//
//	DEFG type amount connections
//	DEFG type amount dist_normal mean std_dev
//	DEFG type amount dist_exp lambda
//	DEFG type amount dist_uniform a b
//
// where amount is an absolute count or a percentage such as 25%.
func (s *State) opDefg(name, amount string, connArgs []string) error {
	g, err := s.statisticalGraph()
	if err != nil {
		return err
	}
	if err := s.require(s.agentExists(name), fmt.Sprintf("Agent %s is not defined", name),
		"Graphs reference agents declared earlier in the program"); err != nil {
		return err
	}
	if err := s.require(g.AgentByName(name) == nil,
		fmt.Sprintf("Agent %s is already defined in the graph", name)); err != nil {
		return err
	}

	var amt intermediate.AgentAmount
	if pct, ok := strings.CutSuffix(amount, "%"); ok {
		if err := s.requireFloatToken(pct); err != nil {
			return err
		}
		amt = &intermediate.AgentPercentAmount{Value: pct}
	} else {
		n, convErr := strconv.Atoi(amount)
		if err := s.require(convErr == nil && n >= 0,
			fmt.Sprintf("%s is not a valid agent amount", amount)); err != nil {
			return err
		}
		amt = &intermediate.AgentConstantAmount{Value: amount}
	}

	conn, err := s.parseConnectionAmount(connArgs)
	if err != nil {
		return err
	}
	g.Agents = append(g.Agents, &intermediate.GraphAgent{Name: name, Amount: amt, Connections: conn})
	return nil
}

func (s *State) parseConnectionAmount(args []string) (intermediate.ConnectionAmount, error) {
	if len(args) == 0 {
		return nil, s.errorf("Missing connection amount",
			"Use a constant or dist_normal, dist_exp, dist_uniform")
	}
	switch strings.ToLower(args[0]) {
	case "dist_normal":
		if err := s.require(len(args) == 3, "dist_normal requires a mean and a standard deviation"); err != nil {
			return nil, err
		}
		if err := s.requireFloatToken(args[1]); err != nil {
			return nil, err
		}
		if err := s.requireFloatToken(args[2]); err != nil {
			return nil, err
		}
		return &intermediate.ConnectionDistNormalAmount{Mean: args[1], StdDev: args[2]}, nil
	case "dist_exp":
		if err := s.require(len(args) == 2, "dist_exp requires a lambda"); err != nil {
			return nil, err
		}
		if err := s.requireFloatToken(args[1]); err != nil {
			return nil, err
		}
		return &intermediate.ConnectionDistExpAmount{Lambda: args[1]}, nil
	case "dist_uniform":
		if err := s.require(len(args) == 3, "dist_uniform requires lower and upper bounds"); err != nil {
			return nil, err
		}
		if err := s.requireFloatToken(args[1]); err != nil {
			return nil, err
		}
		if err := s.requireFloatToken(args[2]); err != nil {
			return nil, err
		}
		return &intermediate.ConnectionDistUniformAmount{A: args[1], B: args[2]}, nil
	default:
		if err := s.require(len(args) == 1,
			fmt.Sprintf("Unknown connection amount: %s", strings.Join(args, " "))); err != nil {
			return nil, err
		}
		n, convErr := strconv.Atoi(args[0])
		if err := s.require(convErr == nil && n >= 0,
			fmt.Sprintf("%s is not a valid connection amount", args[0])); err != nil {
			return nil, err
		}
		return &intermediate.ConnectionConstantAmount{Value: args[0]}, nil
	}
}

func (s *State) opScale(scale string) error {
	g, err := s.matrixGraph()
	if err != nil {
		return err
	}
	if err := s.require(!g.ScaleDefined(), "SCALE is already defined"); err != nil {
		return err
	}
	n, convErr := strconv.Atoi(scale)
	if err := s.require(convErr == nil && n > 0,
		fmt.Sprintf("%s is not a valid scale factor", scale), "SCALE takes a positive integer"); err != nil {
		return err
	}
	g.Scale = n
	return nil
}

// opDefn adds one agent type and its 0/1 adjacency row to the matrix graph.
// Row lengths are checked against the final type count at EGRAPH.
func (s *State) opDefn(name string, row []string) error {
	g, err := s.matrixGraph()
	if err != nil {
		return err
	}
	if err := s.require(s.agentExists(name), fmt.Sprintf("Agent %s is not defined", name),
		"Graphs reference agents declared earlier in the program"); err != nil {
		return err
	}
	if err := s.require(g.AgentByName(name) == nil,
		fmt.Sprintf("Agent %s is already defined in the graph", name)); err != nil {
		return err
	}
	adj := make([]int, len(row))
	for i, cell := range row {
		v, convErr := strconv.Atoi(cell)
		if err := s.require(convErr == nil && (v == 0 || v == 1),
			fmt.Sprintf("%s is not a valid adjacency entry", cell), "Adjacency rows contain 0 and 1 only"); err != nil {
			return err
		}
		adj[i] = v
	}
	g.Agents = append(g.Agents, &intermediate.MatrixAgent{Name: name, AdjRow: adj})
	return nil
}
