// Package intermediate defines the typed intermediate representation built by
// the parser and consumed by code generation: agents, messages, behaviours,
// actions, instructions, arguments and connection graphs.
//
// Entities are ordered deterministically (declaration order) so generators can
// iterate them without relying on map iteration order. Once the parser closes
// the enclosing construct an entity is never mutated again; Message is the one
// exception and is only ever handed out as a full copy.
package intermediate
