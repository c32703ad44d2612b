// Package diag defines the single positioned diagnostic used to report all
// user-facing compilation failures. Preprocessor and parser errors alike
// funnel through Diagnostic so the driver has exactly one error surface to
// render.
package diag

import "fmt"

// Diagnostic describes a fatal compilation error anchored to a source
// position. Line is the original (pre-preprocessing) line number. When the
// failing line was generated by a preprocessor directive, Directive carries a
// description of that directive and SourceText is empty.
type Diagnostic struct {
	// Line is the 1-based line number in the original source.
	Line int
	// Directive describes the originating preprocessor directive, or "" when
	// the line appears verbatim in the source.
	Directive string
	// SourceText is the text of the offending line, trimmed.
	SourceText string
	// Reason is the human-readable explanation of the failure.
	Reason string
	// Suggestion optionally names a remediation.
	Suggestion string
}

// Error implements the error interface.
func (d *Diagnostic) Error() string {
	var place string
	if d.Directive != "" {
		place = fmt.Sprintf("Error in preprocessor directive: %s, declared at line %d", d.Directive, d.Line)
	} else {
		place = fmt.Sprintf("Error in line %d: %s", d.Line, d.SourceText)
	}
	msg := fmt.Sprintf("%s\n%s", place, d.Reason)
	if d.Suggestion != "" {
		msg += "\n" + d.Suggestion
	}
	return msg
}
