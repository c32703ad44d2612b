package intermediate

// Block is an ordered sequence of statements. Conditional and loop headers
// are followed by a nested Block holding their body.
type Block struct {
	// Statements holds instructions and nested blocks in source order.
	Statements []Statement
}

func (*Block) isStatement() {}

// Append adds a statement to the block.
func (b *Block) Append(s Statement) {
	b.Statements = append(b.Statements, s)
}
