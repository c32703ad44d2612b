// Package parsing implements the tokenizer and the opcode-dispatching state
// machine that turns preprocessed agent-assembly lines into the intermediate
// representation.
//
// Parsing is a single forward pass. Each line's first token selects an opcode
// handler; handlers validate referential integrity against the state built so
// far and mutate exactly one entity, the current one implied by construct
// nesting. Any violation aborts the pass with a positioned *diag.Diagnostic.
package parsing
