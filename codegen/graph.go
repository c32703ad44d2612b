package codegen

import (
	"fmt"
	"strings"

	"github.com/agents-assembly/aasm-go/intermediate"
)

// Graph emits the standalone graph unit: a Python generate_graph_structure
// function assigning initial peer connections among agent instances. A nil
// graph still yields a valid unit whose function returns an empty structure,
// so consumers always find the symbol.
func Graph(indentSize int, graph intermediate.Graph) []string {
	g := &graphGenerator{Writer: NewWriter(indentSize)}
	switch gr := graph.(type) {
	case nil:
		g.Line("def generate_graph_structure(domain):")
		g.Indented(func() {
			g.Line("return []")
		})
	case *intermediate.StatisticalGraph:
		g.imports()
		g.Blanks(2)
		g.statistical(gr)
	case *intermediate.MatrixGraph:
		g.imports()
		g.Blanks(2)
		g.matrix(gr)
	default:
		panic(fmt.Sprintf("codegen: unhandled graph variant %T", graph))
	}
	return g.Lines()
}

type graphGenerator struct {
	*Writer
}

func (g *graphGenerator) imports() {
	g.Line("import random")
	g.Line("import uuid")
	g.Line("import numpy")
}

// statistical emits the randomized-assignment strategy: per-type population
// counts, then per-instance connection counts drawn from the type's spec,
// clamped to [0, population-1] and sampled without self-loops or duplicates.
func (g *graphGenerator) statistical(graph *intermediate.StatisticalGraph) {
	g.Line("def generate_graph_structure(domain):")
	g.Indented(func() {
		if len(graph.Agents) == 0 {
			g.Line("return []")
			return
		}

		counts := make([]string, 0, len(graph.Agents))
		for _, agent := range graph.Agents {
			switch amount := agent.Amount.(type) {
			case *intermediate.AgentConstantAmount:
				g.Linef("_num_%s = %s", agent.Name, amount.Value)
			case *intermediate.AgentPercentAmount:
				g.Linef("_num_%s = round(%s / 100 * %s)", agent.Name, amount.Value, graph.Size)
			default:
				panic(fmt.Sprintf("codegen: unhandled agent amount variant %T", agent.Amount))
			}
			counts = append(counts, "_num_"+agent.Name)
		}

		g.Linef("num_agents = %s", strings.Join(counts, " + "))
		g.Line("random_id = str(uuid.uuid4())[:5]")
		g.Line(`jids = [f"{i}_{random_id}@{domain}" for i in range(num_agents)]`)
		g.Line("agents = []")
		g.Line("next_agent_idx = 0")
		for _, agent := range graph.Agents {
			g.Linef("for _ in range(_num_%s):", agent.Name)
			g.Indented(func() {
				switch conn := agent.Connections.(type) {
				case *intermediate.ConnectionConstantAmount:
					g.Linef("num_connections = %s", conn.Value)
				case *intermediate.ConnectionDistNormalAmount:
					g.Linef("num_connections = int(numpy.random.normal(%s, %s))", conn.Mean, conn.StdDev)
				case *intermediate.ConnectionDistExpAmount:
					g.Linef("num_connections = int(numpy.random.exponential(1 / %s))", conn.Lambda)
				case *intermediate.ConnectionDistUniformAmount:
					g.Linef("num_connections = int(random.uniform(%s, %s))", conn.A, conn.B)
				default:
					panic(fmt.Sprintf("codegen: unhandled connection amount variant %T", agent.Connections))
				}
				g.Line("num_connections = max(min(num_connections, len(jids) - 1), 0)")
				g.Line("jid = jids[next_agent_idx]")
				g.Line("agents.append({")
				g.Indented(func() {
					g.Line(`"jid": jid,`)
					g.Linef(`"type": "%s",`, agent.Name)
					g.Line(`"connections": random.sample([other_jid for other_jid in jids if other_jid != jid], num_connections),`)
				})
				g.Line("})")
				g.Line("next_agent_idx += 1")
			})
		}

		g.Line("return agents")
	})
}

// matrix emits the deterministic block-replication strategy: the base 0/1
// adjacency matrix is expanded over scale_factor shards with modular index
// arithmetic wrapping shard references.
func (g *graphGenerator) matrix(graph *intermediate.MatrixGraph) {
	g.Line("def generate_graph_structure(domain):")
	g.Indented(func() {
		if len(graph.Agents) == 0 {
			g.Line("return []")
			return
		}

		g.Linef("scale_factor = %d", graph.EffectiveScale())
		g.Linef("n_agent_types = %d", len(graph.Agents))
		g.Line("graph_size = scale_factor * n_agent_types")
		g.Line("random_id = str(uuid.uuid4())[:5]")
		g.Line(`jids = [f"{i}_{random_id}@{domain}" for i in range(graph_size)]`)
		g.Line("agents = []")
		g.Line("type_names = []")
		g.Line("indx_sets = []")
		for _, agent := range graph.Agents {
			indices := make([]string, 0, len(agent.AdjRow))
			for i, cell := range agent.AdjRow {
				if cell == 1 {
					indices = append(indices, fmt.Sprintf("%d", i))
				}
			}
			g.Linef("type_names.append(%q)", agent.Name)
			g.Linef("indx_sets.append([%s])", strings.Join(indices, ", "))
		}

		g.Line("for base_agent_index in range(n_agent_types):")
		g.Indented(func() {
			g.Line("indices = indx_sets[base_agent_index]")
			g.Line("for shift in range(scale_factor):")
			g.Indented(func() {
				g.Line("jid = jids[base_agent_index + shift * n_agent_types]")
				g.Line("connections = []")
				g.Line("for i in indices:")
				g.Indented(func() {
					g.Line("connections.append(jids[(i + shift * n_agent_types) % graph_size])")
				})
				g.Line("agents.append({")
				g.Indented(func() {
					g.Line(`"jid": jid,`)
					g.Line(`"type": type_names[base_agent_index],`)
					g.Line(`"connections": connections,`)
				})
				g.Line("})")
			})
		})

		g.Line("return agents")
	})
}
