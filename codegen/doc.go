// Package codegen walks the intermediate representation and emits the target
// source text: one SPADE (Python) class per agent and one standalone
// generate_graph_structure function for connection assignment.
//
// Emission is deterministic and total over the IR: every instruction variant
// has exactly one translation. An IR variant the emitter does not recognize
// is an internal invariant violation and panics; user-facing errors are all
// raised earlier, during parsing.
package codegen
