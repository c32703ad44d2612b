package parsing

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/agents-assembly/aasm-go/intermediate"
)

// senderField is the body field every transmitted message carries implicitly.
const senderField = "sender"

// resolveArgument classifies a token against the current action scope:
// action locals, the enclosing agent's parameters, received/send message
// fields, enum value literals and float literals, in that order.
func (s *State) resolveArgument(token string) (intermediate.Argument, error) {
	if s.currentAction != nil && s.currentAction.DeclarationExists(token) {
		return intermediate.Argument{Expr: token, Kind: intermediate.LocalFloat}, nil
	}

	if token == "RCV" {
		if _, err := s.receivedMessage(); err != nil {
			return intermediate.Argument{}, err
		}
		return intermediate.Argument{Expr: token, Kind: intermediate.ReceivedMessage}, nil
	}
	if field, ok := strings.CutPrefix(token, "RCV."); ok {
		msg, err := s.receivedMessage()
		if err != nil {
			return intermediate.Argument{}, err
		}
		if !msg.ParamExists(field) && field != senderField {
			return intermediate.Argument{}, s.errorf(
				fmt.Sprintf("Message %s/%s has no parameter %s", msg.Type, msg.Performative, field))
		}
		return intermediate.Argument{Expr: field, Kind: intermediate.ReceivedMessageParam}, nil
	}
	if field, ok := strings.CutPrefix(token, "SEND."); ok {
		msg, err := s.sendMessage()
		if err != nil {
			return intermediate.Argument{}, err
		}
		if !msg.ParamExists(field) {
			return intermediate.Argument{}, s.errorf(
				fmt.Sprintf("Message %s/%s has no parameter %s", msg.Type, msg.Performative, field))
		}
		return intermediate.Argument{Expr: field, Kind: intermediate.SendMessageParam}, nil
	}

	if agent := s.currentAgent; agent != nil {
		switch {
		case agent.FloatParam(token):
			return intermediate.Argument{Expr: token, Kind: intermediate.AgentFloat}, nil
		case agent.EnumParamByName(token) != nil:
			return intermediate.Argument{Expr: token, Kind: intermediate.AgentEnum}, nil
		case agent.ConnectionListParamExists(token) || token == "connections":
			return intermediate.Argument{Expr: token, Kind: intermediate.AgentConnectionList}, nil
		case agent.MessageListParamExists(token):
			return intermediate.Argument{Expr: token, Kind: intermediate.AgentMessageList}, nil
		case agent.EnumWithValue(token) != nil:
			return intermediate.Argument{Expr: token, Kind: intermediate.EnumValue}, nil
		}
	}

	if _, err := strconv.ParseFloat(token, 64); err == nil {
		return intermediate.Argument{Expr: token, Kind: intermediate.FloatLiteral}, nil
	}

	return intermediate.Argument{}, s.errorf(fmt.Sprintf("Unknown argument: %s", token),
		"Arguments must be literals, declared parameters, locals, or RCV./SEND. message fields")
}

// receivedMessage returns the message template of the enclosing
// message-received behaviour.
func (s *State) receivedMessage() (*intermediate.Message, error) {
	b, ok := s.currentBehaviour.(*intermediate.MessageReceivedBehaviour)
	if !ok {
		return nil, s.errorf("RCV is only available inside msg_rcv behaviours")
	}
	return b.ReceivedMessage, nil
}

// sendMessage returns the send template of the enclosing send_msg action.
func (s *State) sendMessage() (*intermediate.Message, error) {
	a, ok := s.currentAction.(*intermediate.SendMessageAction)
	if !ok {
		return nil, s.errorf("SEND is only available inside send_msg actions")
	}
	return a.SendMessage, nil
}

// resolveNumeric resolves a token and requires it to be usable as a float
// value.
func (s *State) resolveNumeric(token string) (intermediate.Argument, error) {
	arg, err := s.resolveArgument(token)
	if err != nil {
		return intermediate.Argument{}, err
	}
	if !arg.IsNumeric() {
		return intermediate.Argument{}, s.errorf(fmt.Sprintf("%s is not a numeric value", token))
	}
	return arg, nil
}

// resolveMutableNumeric resolves a token and requires it to be an assignable
// float target.
func (s *State) resolveMutableNumeric(token string) (intermediate.Argument, error) {
	arg, err := s.resolveNumeric(token)
	if err != nil {
		return intermediate.Argument{}, err
	}
	if !arg.IsMutable() {
		return intermediate.Argument{}, s.errorf(fmt.Sprintf("%s cannot be assigned to", token))
	}
	return arg, nil
}

// resolveList resolves a token and requires it to be a list parameter.
func (s *State) resolveList(token string) (intermediate.Argument, error) {
	arg, err := s.resolveArgument(token)
	if err != nil {
		return intermediate.Argument{}, err
	}
	if !arg.IsList() {
		return intermediate.Argument{}, s.errorf(fmt.Sprintf("%s is not a list", token),
			"Declare it with PRM name conn_list or PRM name msg_list")
	}
	return arg, nil
}

// comparable reports whether the two arguments may appear together in an
// equality comparison: both numeric, or an enum parameter against an enum
// value or another enum parameter.
func comparable(a, b intermediate.Argument) bool {
	if a.IsNumeric() && b.IsNumeric() {
		return true
	}
	return a.IsEnumerable() && b.IsEnumerable()
}
