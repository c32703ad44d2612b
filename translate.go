// Package aasm compiles agent-assembly programs into SPADE (Python) agent
// code and a companion graph-generation routine.
//
// The pipeline is a single synchronous pass: preprocessing, tokenization,
// parsing into the intermediate representation, then code generation. A
// malformed program aborts the pass with a *diag.Diagnostic carrying the
// original source position, a reason and an optional suggestion.
package aasm

import (
	"context"

	"goa.design/clue/log"

	"github.com/agents-assembly/aasm-go/codegen"
	"github.com/agents-assembly/aasm-go/parsing"
)

type (
	// Code is the result of a successful compilation: two independent units
	// of generated Python source, one line per slice element.
	Code struct {
		// Agent holds the SPADE agent unit.
		Agent []string
		// Graph holds the graph-generation unit.
		Graph []string
	}

	// Option configures a compilation.
	Option func(*options)

	options struct {
		indentSize int
		debug      bool
	}
)

// WithIndentSize overrides the emitted-code indentation width. The default
// is codegen.DefaultIndentSize.
func WithIndentSize(n int) Option {
	return func(o *options) { o.indentSize = n }
}

// WithDebug enables debug tracing of the compilation through clue/log.
func WithDebug() Option {
	return func(o *options) { o.debug = true }
}

// Translate compiles the agent-assembly source lines. The returned error,
// when non-nil, is a *diag.Diagnostic.
func Translate(ctx context.Context, lines []string, opts ...Option) (*Code, error) {
	o := options{indentSize: codegen.DefaultIndentSize}
	for _, opt := range opts {
		opt(&o)
	}

	parsed, err := parsing.Parse(lines)
	if err != nil {
		return nil, err
	}
	if o.debug {
		log.Debugf(ctx, "parsed %d agents, %d messages, graph defined: %t",
			len(parsed.Agents), len(parsed.Messages), parsed.Graph != nil)
	}

	code := &Code{
		Agent: codegen.Agents(o.indentSize, parsed.Agents),
		Graph: codegen.Graph(o.indentSize, parsed.Graph),
	}
	if o.debug {
		log.Debugf(ctx, "generated %d agent lines, %d graph lines", len(code.Agent), len(code.Graph))
	}
	return code, nil
}
