// Command aasm compiles an agent-assembly program into SPADE agent code and
// a graph-generation routine, written as two Python files next to the chosen
// output base.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"goa.design/clue/log"
	"gopkg.in/yaml.v3"

	aasm "github.com/agents-assembly/aasm-go"
	"github.com/agents-assembly/aasm-go/codegen"
	"github.com/agents-assembly/aasm-go/diag"
)

// manifest mirrors the optional YAML project file; values set in the
// manifest override the corresponding flags.
type manifest struct {
	Input      string `yaml:"input"`
	Output     string `yaml:"output"`
	IndentSize int    `yaml:"indent_size"`
	Debug      bool   `yaml:"debug"`
}

func main() {
	var (
		outF      = flag.String("o", "", "Output base path (defaults to the input path without extension)")
		manifestF = flag.String("c", "", "Path to a YAML project manifest")
		indentF   = flag.Int("indent", codegen.DefaultIndentSize, "Emitted code indentation size")
		dbgF      = flag.Bool("d", false, "Enable compiler debug logging")
	)
	flag.Parse()

	format := log.FormatJSON
	if log.IsTerminal() {
		format = log.FormatTerminal
	}
	ctx := log.Context(context.Background(), log.WithFormat(format))

	input := flag.Arg(0)
	out := *outF
	indent := *indentF
	debug := *dbgF
	if *manifestF != "" {
		m, err := loadManifest(*manifestF)
		if err != nil {
			log.Errorf(ctx, err, "invalid manifest %s", *manifestF)
			os.Exit(1)
		}
		if m.Input != "" {
			input = m.Input
		}
		if m.Output != "" {
			out = m.Output
		}
		if m.IndentSize > 0 {
			indent = m.IndentSize
		}
		debug = debug || m.Debug
	}
	if input == "" {
		fmt.Fprintln(os.Stderr, "usage: aasm [flags] input.aasm")
		flag.PrintDefaults()
		os.Exit(2)
	}
	if debug {
		ctx = log.Context(ctx, log.WithDebug())
	}
	ctx = log.With(ctx, log.KV{K: "run", V: uuid.NewString()[:8]})

	if out == "" {
		base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
		out = filepath.Join(filepath.Dir(input), codegen.SanitizeToken(base, "out"))
	}

	data, err := os.ReadFile(input)
	if err != nil {
		log.Errorf(ctx, err, "cannot read %s", input)
		os.Exit(1)
	}
	lines := strings.Split(string(data), "\n")

	opts := []aasm.Option{aasm.WithIndentSize(indent)}
	if debug {
		opts = append(opts, aasm.WithDebug())
	}

	start := time.Now()
	code, err := aasm.Translate(ctx, lines, opts...)
	if err != nil {
		var d *diag.Diagnostic
		if errors.As(err, &d) {
			fmt.Fprintln(os.Stderr, d.Error())
			os.Exit(1)
		}
		log.Errorf(ctx, err, "compilation failed")
		os.Exit(1)
	}
	elapsed := time.Since(start)

	agentPath := out + "_agent.py"
	graphPath := out + "_graph.py"
	if err := writeLines(agentPath, code.Agent); err != nil {
		log.Errorf(ctx, err, "cannot write %s", agentPath)
		os.Exit(1)
	}
	if err := writeLines(graphPath, code.Graph); err != nil {
		log.Errorf(ctx, err, "cannot write %s", graphPath)
		os.Exit(1)
	}

	log.Print(ctx,
		log.KV{K: "agent", V: agentPath},
		log.KV{K: "graph", V: graphPath},
		log.KV{K: "elapsed", V: elapsed.String()})
}

func loadManifest(path string) (*manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	return &m, nil
}

func writeLines(path string, lines []string) error {
	return os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644)
}
