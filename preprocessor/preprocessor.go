// Package preprocessor resolves line-level directives before tokenization and
// records, for every processed line, the original source position it came
// from so diagnostics on directive-generated lines can point back at the
// directive itself.
//
// Supported directives:
//
//	%define NAME value...          token substitution in subsequent lines
//	%macro NAME param...           begin a macro body
//	%endmacro                      end the macro body
//	%expand NAME arg...            splice the macro body with args bound
package preprocessor

import (
	"fmt"
	"strings"

	"github.com/agents-assembly/aasm-go/diag"
)

type (
	// Preprocessor rewrites the raw source line stream into the processed
	// stream consumed by the tokenizer.
	Preprocessor struct {
		source    []string
		processed []string
		origins   []origin
		defines   map[string]string
		macros    map[string]*macro
	}

	origin struct {
		line      int
		directive string
	}

	macro struct {
		name   string
		params []string
		body   []string
		line   int
	}
)

// New returns a preprocessor over the raw source lines.
func New(lines []string) *Preprocessor {
	return &Preprocessor{
		source:  lines,
		defines: make(map[string]string),
		macros:  make(map[string]*macro),
	}
}

// Run resolves every directive and returns the processed line list. The
// returned error, when non-nil, is a *diag.Diagnostic positioned at the
// offending directive.
func (p *Preprocessor) Run() ([]string, error) {
	var recording *macro
	for i, line := range p.source {
		num := i + 1
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "%") {
			if recording != nil {
				recording.body = append(recording.body, line)
				continue
			}
			p.emit(p.substitute(line, nil), num, "")
			continue
		}

		tokens := splitTokens(trimmed)
		directive := strings.ToLower(tokens[0])
		if recording != nil && directive != "%endmacro" {
			if directive == "%macro" {
				return nil, p.fail(num, trimmed, "Nested %macro is not allowed",
					fmt.Sprintf("Close macro %s with %%endmacro first", recording.name))
			}
			recording.body = append(recording.body, line)
			continue
		}

		switch directive {
		case "%define":
			if len(tokens) < 3 {
				return nil, p.fail(num, trimmed, "%define requires a name and a value", "Use: %define NAME value")
			}
			p.defines[tokens[1]] = strings.Join(tokens[2:], " ")

		case "%macro":
			if len(tokens) < 2 {
				return nil, p.fail(num, trimmed, "%macro requires a name", "Use: %macro NAME param...")
			}
			name := tokens[1]
			if _, ok := p.macros[name]; ok {
				return nil, p.fail(num, trimmed, fmt.Sprintf("Macro %s is already defined", name), "")
			}
			recording = &macro{name: name, params: tokens[2:], line: num}
			p.macros[name] = recording

		case "%endmacro":
			if recording == nil {
				return nil, p.fail(num, trimmed, "%endmacro without a matching %macro", "")
			}
			recording = nil

		case "%expand":
			if len(tokens) < 2 {
				return nil, p.fail(num, trimmed, "%expand requires a macro name", "Use: %expand NAME arg...")
			}
			m, ok := p.macros[tokens[1]]
			if !ok {
				return nil, p.fail(num, trimmed, fmt.Sprintf("Macro %s is not defined", tokens[1]), "Define it with %macro before expanding")
			}
			args := tokens[2:]
			if len(args) != len(m.params) {
				return nil, p.fail(num, trimmed,
					fmt.Sprintf("Macro %s expects %d arguments, got %d", m.name, len(m.params), len(args)), "")
			}
			bindings := make(map[string]string, len(m.params))
			for j, param := range m.params {
				bindings[param] = args[j]
			}
			desc := fmt.Sprintf("%%expand %s (macro declared at line %d)", m.name, m.line)
			for _, bodyLine := range m.body {
				p.emit(p.substitute(bodyLine, bindings), num, desc)
			}

		default:
			return nil, p.fail(num, trimmed, fmt.Sprintf("Unknown preprocessor directive: %s", tokens[0]), "")
		}
	}
	if recording != nil {
		return nil, p.fail(recording.line, "%macro "+recording.name,
			fmt.Sprintf("Macro %s is missing %%endmacro", recording.name), "")
	}
	return p.processed, nil
}

// OriginalLine maps a 1-based processed-line number back to the original
// source line number and, for directive-generated lines, a description of the
// originating directive.
func (p *Preprocessor) OriginalLine(processed int) (int, string) {
	if processed < 1 || processed > len(p.origins) {
		return 0, ""
	}
	o := p.origins[processed-1]
	return o.line, o.directive
}

func (p *Preprocessor) emit(line string, sourceLine int, directive string) {
	p.processed = append(p.processed, line)
	p.origins = append(p.origins, origin{line: sourceLine, directive: directive})
}

// substitute rewrites whole tokens through macro parameter bindings first,
// then global defines. Lines with no applicable rewrite are kept verbatim.
func (p *Preprocessor) substitute(line string, bindings map[string]string) string {
	if len(p.defines) == 0 && len(bindings) == 0 {
		return line
	}
	tokens := splitTokens(line)
	changed := false
	for i, tok := range tokens {
		if v, ok := bindings[tok]; ok {
			tokens[i] = v
			changed = true
			continue
		}
		if v, ok := p.defines[tok]; ok {
			tokens[i] = v
			changed = true
		}
	}
	if !changed {
		return line
	}
	return strings.Join(tokens, " ")
}

func (p *Preprocessor) fail(line int, text, reason, suggestion string) error {
	return &diag.Diagnostic{
		Line:       line,
		SourceText: text,
		Reason:     reason,
		Suggestion: suggestion,
	}
}

// splitTokens splits on whitespace and commas, the same token boundaries the
// tokenizer uses.
func splitTokens(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == '\t' || r == ','
	})
}
