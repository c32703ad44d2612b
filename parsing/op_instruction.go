package parsing

import (
	"fmt"
	"strings"

	"github.com/agents-assembly/aasm-go/intermediate"
)

func (s *State) requireAction() error {
	return s.require(s.inAction, "Instructions belong inside an action")
}

func (s *State) opDecl(name, value string) error {
	if err := s.requireAction(); err != nil {
		return err
	}
	if err := s.requireIdentifier(name); err != nil {
		return err
	}
	action := s.currentAction
	if err := s.require(!action.DeclarationExists(name),
		fmt.Sprintf("Local %s is already declared", name)); err != nil {
		return err
	}
	if err := s.require(!s.currentAgent.ParamExists(name),
		fmt.Sprintf("%s shadows an agent parameter", name)); err != nil {
		return err
	}
	arg, err := s.resolveNumeric(value)
	if err != nil {
		return err
	}
	action.AddInstruction(&intermediate.Declaration{Name: name, Value: arg})
	action.AddDeclaration(name)
	return nil
}

func (s *State) opEBlock() error {
	if err := s.requireAction(); err != nil {
		return err
	}
	if !s.currentAction.EndBlock() {
		return s.errorf("EBLOCK without an open block")
	}
	return nil
}

// opUnorderedConditional handles the equality conditionals and loops, which
// accept numeric pairs or enum-comparable pairs.
func (s *State) opUnorderedConditional(op, left, right string) error {
	if err := s.requireAction(); err != nil {
		return err
	}
	a, err := s.resolveArgument(left)
	if err != nil {
		return err
	}
	b, err := s.resolveArgument(right)
	if err != nil {
		return err
	}
	if err := s.require(comparable(a, b),
		fmt.Sprintf("%s and %s cannot be compared", left, right),
		"Compare numbers with numbers and enums with their values"); err != nil {
		return err
	}
	var header intermediate.Instruction
	switch op {
	case "IEQ":
		header = &intermediate.IfEqual{Left: a, Right: b}
	case "INEQ":
		header = &intermediate.IfNotEqual{Left: a, Right: b}
	case "WEQ":
		header = &intermediate.WhileEqual{Left: a, Right: b}
	case "WNEQ":
		header = &intermediate.WhileNotEqual{Left: a, Right: b}
	}
	s.currentAction.AddInstruction(header)
	s.currentAction.StartBlock()
	return nil
}

// opOrderedConditional handles the ordering conditionals and loops, which
// require numeric arguments.
func (s *State) opOrderedConditional(op, left, right string) error {
	if err := s.requireAction(); err != nil {
		return err
	}
	a, err := s.resolveNumeric(left)
	if err != nil {
		return err
	}
	b, err := s.resolveNumeric(right)
	if err != nil {
		return err
	}
	var header intermediate.Instruction
	switch op {
	case "IGT":
		header = &intermediate.IfGreaterThan{Left: a, Right: b}
	case "IGTEQ":
		header = &intermediate.IfGreaterThanOrEqual{Left: a, Right: b}
	case "ILT":
		header = &intermediate.IfLessThan{Left: a, Right: b}
	case "ILTEQ":
		header = &intermediate.IfLessThanOrEqual{Left: a, Right: b}
	case "WGT":
		header = &intermediate.WhileGreaterThan{Left: a, Right: b}
	case "WGTEQ":
		header = &intermediate.WhileGreaterThanOrEqual{Left: a, Right: b}
	case "WLT":
		header = &intermediate.WhileLessThan{Left: a, Right: b}
	case "WLTEQ":
		header = &intermediate.WhileLessThanOrEqual{Left: a, Right: b}
	}
	s.currentAction.AddInstruction(header)
	s.currentAction.StartBlock()
	return nil
}

func (s *State) opMath(op, target, value string) error {
	if err := s.requireAction(); err != nil {
		return err
	}
	t, err := s.resolveMutableNumeric(target)
	if err != nil {
		return err
	}
	v, err := s.resolveNumeric(value)
	if err != nil {
		return err
	}
	var instr intermediate.Instruction
	switch op {
	case "ADD":
		instr = &intermediate.Add{Target: t, Value: v}
	case "SUBT":
		instr = &intermediate.Subtract{Target: t, Value: v}
	case "MULT":
		instr = &intermediate.Multiply{Target: t, Value: v}
	case "DIV":
		instr = &intermediate.Divide{Target: t, Value: v}
	}
	s.currentAction.AddInstruction(instr)
	return nil
}

// opListModification handles ADDE and REME.
func (s *State) opListModification(op, list, element string) error {
	if err := s.requireAction(); err != nil {
		return err
	}
	l, err := s.resolveList(list)
	if err != nil {
		return err
	}
	e, err := s.resolveListElement(l, element)
	if err != nil {
		return err
	}
	switch op {
	case "ADDE":
		s.currentAction.AddInstruction(&intermediate.AddElement{List: l, Element: e})
	case "REME":
		s.currentAction.AddInstruction(&intermediate.RemoveElement{List: l, Element: e})
	}
	return nil
}

// opListInclusion handles the IN and NIN block headers.
func (s *State) opListInclusion(op, list, element string) error {
	if err := s.requireAction(); err != nil {
		return err
	}
	l, err := s.resolveList(list)
	if err != nil {
		return err
	}
	e, err := s.resolveListElement(l, element)
	if err != nil {
		return err
	}
	switch op {
	case "IN":
		s.currentAction.AddInstruction(&intermediate.IfInList{List: l, Element: e})
	case "NIN":
		s.currentAction.AddInstruction(&intermediate.IfNotInList{List: l, Element: e})
	}
	s.currentAction.StartBlock()
	return nil
}

// resolveListElement resolves an element argument compatible with the list
// kind: message lists hold whole received messages, connection lists hold
// peer identifiers.
func (s *State) resolveListElement(list intermediate.Argument, token string) (intermediate.Argument, error) {
	e, err := s.resolveArgument(token)
	if err != nil {
		return intermediate.Argument{}, err
	}
	if list.Kind == intermediate.AgentMessageList {
		if err := s.require(e.Kind == intermediate.ReceivedMessage,
			fmt.Sprintf("%s cannot be an element of message list %s", token, list.Expr),
			"Message lists hold whole received messages (RCV)"); err != nil {
			return intermediate.Argument{}, err
		}
		return e, nil
	}
	ok := e.Kind == intermediate.ReceivedMessageParam || e.Kind == intermediate.Connection ||
		e.Kind == intermediate.LocalFloat
	if err := s.require(ok,
		fmt.Sprintf("%s cannot be an element of connection list %s", token, list.Expr),
		"Connection lists hold peer identifiers such as RCV.sender"); err != nil {
		return intermediate.Argument{}, err
	}
	return e, nil
}

func (s *State) opLen(target, list string) error {
	if err := s.requireAction(); err != nil {
		return err
	}
	t, err := s.resolveMutableNumeric(target)
	if err != nil {
		return err
	}
	l, err := s.resolveList(list)
	if err != nil {
		return err
	}
	s.currentAction.AddInstruction(&intermediate.Length{Target: t, List: l})
	return nil
}

func (s *State) opClr(list string) error {
	if err := s.requireAction(); err != nil {
		return err
	}
	l, err := s.resolveList(list)
	if err != nil {
		return err
	}
	s.currentAction.AddInstruction(&intermediate.Clear{List: l})
	return nil
}

func (s *State) opSend(receiver string) error {
	if err := s.requireAction(); err != nil {
		return err
	}
	if _, err := s.sendMessage(); err != nil {
		return err
	}
	r, err := s.resolveArgument(receiver)
	if err != nil {
		return err
	}
	ok := r.Kind == intermediate.AgentConnectionList || r.Kind == intermediate.Connection ||
		(r.Kind == intermediate.ReceivedMessageParam && r.Expr == senderField)
	if err := s.require(ok, fmt.Sprintf("%s is not a connection or connection list", receiver)); err != nil {
		return err
	}
	s.currentAction.AddInstruction(&intermediate.Send{Receiver: r})
	return nil
}

func (s *State) opSubs(target, source, count string) error {
	if err := s.requireAction(); err != nil {
		return err
	}
	t, err := s.resolveList(target)
	if err != nil {
		return err
	}
	src, err := s.resolveList(source)
	if err != nil {
		return err
	}
	if err := s.require(t.Kind == src.Kind,
		fmt.Sprintf("%s and %s are lists of different kinds", target, source)); err != nil {
		return err
	}
	n, err := s.resolveNumeric(count)
	if err != nil {
		return err
	}
	s.currentAction.AddInstruction(&intermediate.Subset{Target: t, Source: src, Count: n})
	return nil
}

func (s *State) opSet(target, value string) error {
	if err := s.requireAction(); err != nil {
		return err
	}
	v, err := s.resolveArgument(value)
	if err != nil {
		return err
	}
	// SET local msgList binds the local to a random buffered message
	// matching the local's template; the generated action returns early
	// when none is buffered.
	if v.Kind == intermediate.AgentMessageList {
		t, err := s.resolveArgument(target)
		if err != nil {
			return err
		}
		if err := s.require(t.Kind == intermediate.LocalFloat,
			fmt.Sprintf("%s must be a local to receive a buffered message", target)); err != nil {
			return err
		}
		s.currentAction.AddInstruction(&intermediate.Set{Target: t, Value: v})
		return nil
	}
	t, err := s.resolveArgument(target)
	if err != nil {
		return err
	}
	if err := s.require(t.IsMutable(), fmt.Sprintf("%s cannot be assigned to", target)); err != nil {
		return err
	}
	if err := s.require(comparable(t, v),
		fmt.Sprintf("%s cannot be assigned to %s", value, target)); err != nil {
		return err
	}
	s.currentAction.AddInstruction(&intermediate.Set{Target: t, Value: v})
	return nil
}

func (s *State) opRemen(list, count string) error {
	if err := s.requireAction(); err != nil {
		return err
	}
	l, err := s.resolveList(list)
	if err != nil {
		return err
	}
	n, err := s.resolveNumeric(count)
	if err != nil {
		return err
	}
	s.currentAction.AddInstruction(&intermediate.RemoveNElements{List: l, Count: n})
	return nil
}

// opRand handles the three distribution draws:
//
//	RAND result float uniform a b
//	RAND result float normal mean std_dev
//	RAND result float exp lambda
func (s *State) opRand(target, castTo, dist string, args []string) error {
	if err := s.requireAction(); err != nil {
		return err
	}
	t, err := s.resolveMutableNumeric(target)
	if err != nil {
		return err
	}
	if err := s.require(strings.ToLower(castTo) == "float",
		fmt.Sprintf("Unknown cast target: %s", castTo), "Random draws are float valued"); err != nil {
		return err
	}
	resolved := make([]intermediate.Argument, len(args))
	for i, raw := range args {
		if resolved[i], err = s.resolveNumeric(raw); err != nil {
			return err
		}
	}
	switch strings.ToLower(dist) {
	case "uniform":
		if err := s.require(len(args) == 2, "uniform requires lower and upper bounds"); err != nil {
			return err
		}
		s.currentAction.AddInstruction(&intermediate.UniformDist{Target: t, A: resolved[0], B: resolved[1]})
	case "normal":
		if err := s.require(len(args) == 2, "normal requires a mean and a standard deviation"); err != nil {
			return err
		}
		s.currentAction.AddInstruction(&intermediate.NormalDist{Target: t, Mean: resolved[0], StdDev: resolved[1]})
	case "exp":
		if err := s.require(len(args) == 1, "exp requires a lambda"); err != nil {
			return err
		}
		s.currentAction.AddInstruction(&intermediate.ExpDist{Target: t, Lambda: resolved[0]})
	default:
		return s.errorf(fmt.Sprintf("Unknown distribution: %s", dist),
			"Valid distributions are uniform, normal and exp")
	}
	return nil
}

func (s *State) opRound(target string) error {
	if err := s.requireAction(); err != nil {
		return err
	}
	t, err := s.resolveMutableNumeric(target)
	if err != nil {
		return err
	}
	s.currentAction.AddInstruction(&intermediate.Round{Target: t})
	return nil
}
