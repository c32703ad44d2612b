package parsing

// Parse preprocesses and parses raw agent-assembly source lines into the
// intermediate representation. The returned error, when non-nil, is a
// *diag.Diagnostic positioned at the offending source line or directive.
func Parse(lines []string) (*ParsedData, error) {
	s, err := NewState(lines)
	if err != nil {
		return nil, err
	}
	if err := s.TokenLists(s.dispatch); err != nil {
		return nil, err
	}
	return s.Finish()
}

// dispatch routes one token list to its opcode handler. Token shapes that
// match no handler, including recognized opcodes with the wrong arity, fail
// here with the generic unknown-tokens diagnostic.
func (s *State) dispatch(tokens []string) error {
	op, args := tokens[0], tokens[1:]
	switch {
	case op == "AGENT" && len(args) == 1:
		return s.opAgent(args[0])
	case op == "EAGENT" && len(args) == 0:
		return s.opEAgent()

	case op == "MESSAGE" && len(args) == 2:
		return s.opMessage(args[0], args[1])
	case op == "EMESSAGE" && len(args) == 0:
		return s.opEMessage()

	case op == "PRM" && len(args) == 2 && s.inMessage:
		return s.opMessagePRM(args[0], args[1])
	case op == "PRM" && len(args) >= 2:
		return s.opAgentPRM(args[0], args[1], args[2:])

	case op == "BEHAV" && len(args) >= 2:
		return s.opBehav(args[0], args[1], args[2:])
	case op == "EBEHAV" && len(args) == 0:
		return s.opEBehav()

	case op == "ACTION" && len(args) >= 2:
		return s.opAction(args[0], args[1], args[2:])
	case op == "EACTION" && len(args) == 0:
		return s.opEAction()

	case op == "DECL" && len(args) == 2:
		return s.opDecl(args[0], args[1])
	case op == "EBLOCK" && len(args) == 0:
		return s.opEBlock()

	case unorderedConditionalOp(op) && len(args) == 2:
		return s.opUnorderedConditional(op, args[0], args[1])
	case orderedConditionalOp(op) && len(args) == 2:
		return s.opOrderedConditional(op, args[0], args[1])

	case mathOp(op) && len(args) == 2:
		return s.opMath(op, args[0], args[1])

	case (op == "ADDE" || op == "REME") && len(args) == 2:
		return s.opListModification(op, args[0], args[1])
	case op == "LEN" && len(args) == 2:
		return s.opLen(args[0], args[1])
	case op == "CLR" && len(args) == 1:
		return s.opClr(args[0])
	case (op == "IN" || op == "NIN") && len(args) == 2:
		return s.opListInclusion(op, args[0], args[1])

	case op == "SEND" && len(args) == 1:
		return s.opSend(args[0])
	case op == "SUBS" && len(args) == 3:
		return s.opSubs(args[0], args[1], args[2])
	case op == "SET" && len(args) == 2:
		return s.opSet(args[0], args[1])
	case op == "REMEN" && len(args) == 2:
		return s.opRemen(args[0], args[1])
	case op == "RAND" && len(args) >= 3:
		return s.opRand(args[0], args[1], args[2], args[3:])
	case op == "ROUND" && len(args) == 1:
		return s.opRound(args[0])

	case op == "GRAPH" && len(args) == 1:
		return s.opGraph(args[0])
	case op == "EGRAPH" && len(args) == 0:
		return s.opEGraph()
	case op == "SIZE" && len(args) == 1:
		return s.opSize(args[0])
	case op == "DEFG" && len(args) >= 2:
		return s.opDefg(args[0], args[1], args[2:])
	case op == "SCALE" && len(args) == 1:
		return s.opScale(args[0])
	case op == "DEFN" && len(args) >= 2:
		return s.opDefn(args[0], args[1:])

	default:
		return s.unknownTokens(tokens)
	}
}

func unorderedConditionalOp(op string) bool {
	switch op {
	case "IEQ", "INEQ", "WEQ", "WNEQ":
		return true
	}
	return false
}

func orderedConditionalOp(op string) bool {
	switch op {
	case "IGT", "IGTEQ", "ILT", "ILTEQ", "WGT", "WGTEQ", "WLT", "WLTEQ":
		return true
	}
	return false
}

func mathOp(op string) bool {
	switch op {
	case "ADD", "SUBT", "MULT", "DIV":
		return true
	}
	return false
}
