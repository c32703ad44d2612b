package intermediate

type (
	// Action is a named sequence of instructions owned by a behaviour. The
	// parser appends instructions to the innermost open block; conditional
	// and loop headers open nested blocks closed by EBLOCK.
	Action interface {
		// ActionName returns the declared action name.
		ActionName() string
		// Main returns the top-level instruction block.
		Main() *Block
		// AddInstruction appends an instruction to the innermost open
		// block.
		AddInstruction(Instruction)
		// StartBlock opens a nested block as the body of the instruction
		// just appended.
		StartBlock()
		// EndBlock closes the innermost nested block. It reports false
		// when only the main block is open.
		EndBlock() bool
		// OpenBlocks returns the number of nested blocks still open.
		OpenBlocks() int
		// AddDeclaration records an action-local declared with DECL.
		AddDeclaration(name string)
		// DeclarationExists reports whether name is an action-local.
		DeclarationExists(name string) bool
	}

	// ModifySelfAction is an action that only operates on agent state.
	ModifySelfAction struct {
		baseAction
	}

	// SendMessageAction is an action that fills in and transmits a message.
	// SendMessage is the action's own copy of the message template.
	SendMessageAction struct {
		baseAction
		SendMessage *Message
	}

	baseAction struct {
		name         string
		main         *Block
		open         []*Block
		declarations map[string]struct{}
	}
)

// NewModifySelfAction returns an empty modify_self action.
func NewModifySelfAction(name string) *ModifySelfAction {
	return &ModifySelfAction{baseAction: newBaseAction(name)}
}

// NewSendMessageAction returns an empty send_msg action bound to its own copy
// of the message template.
func NewSendMessageAction(name string, sendMessage *Message) *SendMessageAction {
	return &SendMessageAction{baseAction: newBaseAction(name), SendMessage: sendMessage}
}

func newBaseAction(name string) baseAction {
	main := &Block{}
	return baseAction{
		name:         name,
		main:         main,
		open:         []*Block{main},
		declarations: make(map[string]struct{}),
	}
}

func (a *baseAction) ActionName() string { return a.name }

func (a *baseAction) Main() *Block { return a.main }

func (a *baseAction) AddInstruction(instr Instruction) {
	a.current().Append(instr)
}

func (a *baseAction) StartBlock() {
	nested := &Block{}
	a.current().Append(nested)
	a.open = append(a.open, nested)
}

func (a *baseAction) EndBlock() bool {
	if len(a.open) == 1 {
		return false
	}
	a.open = a.open[:len(a.open)-1]
	return true
}

func (a *baseAction) OpenBlocks() int { return len(a.open) - 1 }

func (a *baseAction) AddDeclaration(name string) {
	a.declarations[name] = struct{}{}
}

func (a *baseAction) DeclarationExists(name string) bool {
	_, ok := a.declarations[name]
	return ok
}

func (a *baseAction) current() *Block { return a.open[len(a.open)-1] }
