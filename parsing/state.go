package parsing

import (
	"fmt"
	"strings"

	"github.com/agents-assembly/aasm-go/diag"
	"github.com/agents-assembly/aasm-go/intermediate"
	"github.com/agents-assembly/aasm-go/preprocessor"
)

type (
	// ParsedData is the immutable result of a successful parse, handed to
	// code generation.
	ParsedData struct {
		// Agents lists the declared agents in declaration order.
		Agents []*intermediate.Agent
		// Messages lists the declared message templates in first-declaration
		// order.
		Messages []*intermediate.Message
		// Graph is the declared connection graph, or nil.
		Graph intermediate.Graph
	}

	// State carries the parser's structural bookkeeping while lines are
	// consumed: the nesting flags, the entities built so far and the
	// current construct of each kind.
	State struct {
		pre     *preprocessor.Preprocessor
		lines   []string
		lineNum int

		inAgent     bool
		inMessage   bool
		inBehaviour bool
		inAction    bool
		inGraph     bool

		agents       []*intermediate.Agent
		agentsByName map[string]*intermediate.Agent

		messageOrder []messageKey
		messages     map[messageKey]*intermediate.Message

		graph intermediate.Graph

		// Explicit current-construct handles, pushed on construct open and
		// cleared on close, so "current X" never depends on map iteration
		// order.
		currentAgent     *intermediate.Agent
		currentMessage   *intermediate.Message
		currentBehaviour intermediate.Behaviour
		currentAction    intermediate.Action
	}

	messageKey struct {
		msgType      string
		performative string
	}
)

// NewState runs the preprocessor over the raw source lines and returns a
// parser state positioned before the first processed line.
func NewState(lines []string) (*State, error) {
	pre := preprocessor.New(lines)
	processed, err := pre.Run()
	if err != nil {
		return nil, err
	}
	return &State{
		pre:          pre,
		lines:        processed,
		agentsByName: make(map[string]*intermediate.Agent),
		messages:     make(map[messageKey]*intermediate.Message),
	}, nil
}

// TokenLists yields the token list of every non-blank processed line in
// order, advancing the diagnostic line counter as it goes.
func (s *State) TokenLists(yield func(tokens []string) error) error {
	for _, line := range s.lines {
		s.lineNum++
		tokens := Tokens(line)
		if tokens == nil {
			continue
		}
		if err := yield(tokens); err != nil {
			return err
		}
	}
	return nil
}

func (s *State) addAgent(agent *intermediate.Agent) {
	s.agents = append(s.agents, agent)
	s.agentsByName[agent.Name] = agent
	s.currentAgent = agent
}

func (s *State) agentExists(name string) bool {
	_, ok := s.agentsByName[name]
	return ok
}

// addMessage registers a message template. Re-declaring an existing
// (type, performative) pair overwrites the previous template; the last write
// wins for every later lookup.
func (s *State) addMessage(msg *intermediate.Message) {
	key := messageKey{msgType: msg.Type, performative: msg.Performative}
	if _, ok := s.messages[key]; !ok {
		s.messageOrder = append(s.messageOrder, key)
	}
	s.messages[key] = msg
	s.currentMessage = msg
}

func (s *State) messageExists(msgType, performative string) bool {
	_, ok := s.messages[messageKey{msgType: msgType, performative: performative}]
	return ok
}

// messageInstance returns an independent copy of the registered template so
// the bind site can fill in values without touching the shared template.
func (s *State) messageInstance(msgType, performative string) *intermediate.Message {
	return s.messages[messageKey{msgType: msgType, performative: performative}].Copy()
}

// Finish validates the end-of-input structural invariant and returns the
// parsed data snapshot.
func (s *State) Finish() (*ParsedData, error) {
	switch {
	case s.inAction:
		return nil, s.errorf("Missing EACTION")
	case s.inBehaviour:
		return nil, s.errorf("Missing EBEHAV")
	case s.inAgent:
		return nil, s.errorf("Missing EAGENT")
	case s.inMessage:
		return nil, s.errorf("Missing EMESSAGE")
	case s.inGraph:
		return nil, s.errorf("Missing EGRAPH")
	}
	messages := make([]*intermediate.Message, 0, len(s.messageOrder))
	for _, key := range s.messageOrder {
		messages = append(messages, s.messages[key])
	}
	return &ParsedData{Agents: s.agents, Messages: messages, Graph: s.graph}, nil
}

// errorf builds a positioned diagnostic for the current line, resolving the
// position through the preprocessor's line map.
func (s *State) errorf(reason string, suggestion ...string) error {
	var sug string
	if len(suggestion) > 0 {
		sug = suggestion[0]
	}
	line, directive := s.pre.OriginalLine(s.lineNum)
	d := &diag.Diagnostic{
		Line:       line,
		Directive:  directive,
		Reason:     reason,
		Suggestion: sug,
	}
	if directive == "" && s.lineNum >= 1 && s.lineNum <= len(s.lines) {
		d.SourceText = strings.TrimSpace(s.lines[s.lineNum-1])
	}
	return d
}

// require returns nil when cond holds and a positioned diagnostic otherwise.
func (s *State) require(cond bool, reason string, suggestion ...string) error {
	if cond {
		return nil
	}
	return s.errorf(reason, suggestion...)
}

func (s *State) unknownTokens(tokens []string) error {
	return s.errorf(fmt.Sprintf("Unknown tokens: %v", tokens),
		"Check the opcode spelling and its argument count")
}
