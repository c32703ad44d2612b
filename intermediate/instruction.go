package intermediate

type (
	// Statement is an element of a Block: either an Instruction or a nested
	// Block holding the body of the preceding conditional or loop header.
	Statement interface {
		isStatement()
	}

	// Instruction is a single primitive operation inside an action.
	Instruction interface {
		Statement
		isInstruction()
	}

	// Declaration binds a new action-local name to an argument's value.
	Declaration struct {
		Name  string
		Value Argument
	}

	// Set assigns Value to Target. When Value is a message list the
	// generated code performs a guarded lookup of a matching buffered
	// message and returns early when none exists.
	Set struct {
		Target Argument
		Value  Argument
	}

	// Add increments Target by Value.
	Add struct {
		Target Argument
		Value  Argument
	}

	// Subtract decrements Target by Value.
	Subtract struct {
		Target Argument
		Value  Argument
	}

	// Multiply scales Target by Value.
	Multiply struct {
		Target Argument
		Value  Argument
	}

	// Divide divides Target by Value. Division by zero is not an error: the
	// generated action returns without performing the division.
	Divide struct {
		Target Argument
		Value  Argument
	}

	// IfEqual opens a block guarded by Left == Right.
	IfEqual struct{ Left, Right Argument }
	// IfNotEqual opens a block guarded by Left != Right.
	IfNotEqual struct{ Left, Right Argument }
	// IfGreaterThan opens a block guarded by Left > Right.
	IfGreaterThan struct{ Left, Right Argument }
	// IfGreaterThanOrEqual opens a block guarded by Left >= Right.
	IfGreaterThanOrEqual struct{ Left, Right Argument }
	// IfLessThan opens a block guarded by Left < Right.
	IfLessThan struct{ Left, Right Argument }
	// IfLessThanOrEqual opens a block guarded by Left <= Right.
	IfLessThanOrEqual struct{ Left, Right Argument }

	// WhileEqual opens a loop bounded by Left == Right.
	WhileEqual struct{ Left, Right Argument }
	// WhileNotEqual opens a loop bounded by Left != Right.
	WhileNotEqual struct{ Left, Right Argument }
	// WhileGreaterThan opens a loop bounded by Left > Right.
	WhileGreaterThan struct{ Left, Right Argument }
	// WhileGreaterThanOrEqual opens a loop bounded by Left >= Right.
	WhileGreaterThanOrEqual struct{ Left, Right Argument }
	// WhileLessThan opens a loop bounded by Left < Right.
	WhileLessThan struct{ Left, Right Argument }
	// WhileLessThanOrEqual opens a loop bounded by Left <= Right.
	WhileLessThanOrEqual struct{ Left, Right Argument }

	// AddElement appends Element to List when not already present.
	AddElement struct {
		List    Argument
		Element Argument
	}

	// RemoveElement removes Element from List when present.
	RemoveElement struct {
		List    Argument
		Element Argument
	}

	// IfInList opens a block guarded by Element being a member of List.
	IfInList struct {
		List    Argument
		Element Argument
	}

	// IfNotInList opens a block guarded by Element not being a member of
	// List.
	IfNotInList struct {
		List    Argument
		Element Argument
	}

	// Length assigns the length of List to Target.
	Length struct {
		Target Argument
		List   Argument
	}

	// Clear empties List.
	Clear struct {
		List Argument
	}

	// Subset assigns to Target an independent deep copy of a uniformly
	// random sample of Source, of size min(round(Count), len(Source)).
	// Counts that round to zero or below yield the empty list.
	Subset struct {
		Target Argument
		Source Argument
		Count  Argument
	}

	// RemoveNElements removes round(Count) uniformly random elements from
	// List. Counts that round to zero or below are a no-op; counts at or
	// above the list length empty it. The order of surviving elements is
	// not preserved.
	RemoveNElements struct {
		List  Argument
		Count Argument
	}

	// UniformDist assigns Target a uniform draw from [A, B].
	UniformDist struct {
		Target Argument
		A      Argument
		B      Argument
	}

	// NormalDist assigns Target a normal draw.
	NormalDist struct {
		Target Argument
		Mean   Argument
		StdDev Argument
	}

	// ExpDist assigns Target an exponential draw with rate Lambda, or zero
	// when Lambda is not positive.
	ExpDist struct {
		Target Argument
		Lambda Argument
	}

	// Round rounds Target in place to the nearest integer.
	Round struct {
		Target Argument
	}

	// Send transmits the action's send template to Receiver, which is
	// either a single connection or a connection list (one transmission per
	// element).
	Send struct {
		Receiver Argument
	}
)

func (*Declaration) isStatement()             {}
func (*Set) isStatement()                     {}
func (*Add) isStatement()                     {}
func (*Subtract) isStatement()                {}
func (*Multiply) isStatement()                {}
func (*Divide) isStatement()                  {}
func (*IfEqual) isStatement()                 {}
func (*IfNotEqual) isStatement()              {}
func (*IfGreaterThan) isStatement()           {}
func (*IfGreaterThanOrEqual) isStatement()    {}
func (*IfLessThan) isStatement()              {}
func (*IfLessThanOrEqual) isStatement()       {}
func (*WhileEqual) isStatement()              {}
func (*WhileNotEqual) isStatement()           {}
func (*WhileGreaterThan) isStatement()        {}
func (*WhileGreaterThanOrEqual) isStatement() {}
func (*WhileLessThan) isStatement()           {}
func (*WhileLessThanOrEqual) isStatement()    {}
func (*AddElement) isStatement()              {}
func (*RemoveElement) isStatement()           {}
func (*IfInList) isStatement()                {}
func (*IfNotInList) isStatement()             {}
func (*Length) isStatement()                  {}
func (*Clear) isStatement()                   {}
func (*Subset) isStatement()                  {}
func (*RemoveNElements) isStatement()         {}
func (*UniformDist) isStatement()             {}
func (*NormalDist) isStatement()              {}
func (*ExpDist) isStatement()                 {}
func (*Round) isStatement()                   {}
func (*Send) isStatement()                    {}

func (*Declaration) isInstruction()             {}
func (*Set) isInstruction()                     {}
func (*Add) isInstruction()                     {}
func (*Subtract) isInstruction()                {}
func (*Multiply) isInstruction()                {}
func (*Divide) isInstruction()                  {}
func (*IfEqual) isInstruction()                 {}
func (*IfNotEqual) isInstruction()              {}
func (*IfGreaterThan) isInstruction()           {}
func (*IfGreaterThanOrEqual) isInstruction()    {}
func (*IfLessThan) isInstruction()              {}
func (*IfLessThanOrEqual) isInstruction()       {}
func (*WhileEqual) isInstruction()              {}
func (*WhileNotEqual) isInstruction()           {}
func (*WhileGreaterThan) isInstruction()        {}
func (*WhileGreaterThanOrEqual) isInstruction() {}
func (*WhileLessThan) isInstruction()           {}
func (*WhileLessThanOrEqual) isInstruction()    {}
func (*AddElement) isInstruction()              {}
func (*RemoveElement) isInstruction()           {}
func (*IfInList) isInstruction()                {}
func (*IfNotInList) isInstruction()             {}
func (*Length) isInstruction()                  {}
func (*Clear) isInstruction()                   {}
func (*Subset) isInstruction()                  {}
func (*RemoveNElements) isInstruction()         {}
func (*UniformDist) isInstruction()             {}
func (*NormalDist) isInstruction()              {}
func (*ExpDist) isInstruction()                 {}
func (*Round) isInstruction()                   {}
func (*Send) isInstruction()                    {}
