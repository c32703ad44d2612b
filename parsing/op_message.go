package parsing

import (
	"fmt"
	"strings"

	"github.com/agents-assembly/aasm-go/intermediate"
)

func (s *State) opMessage(msgType, performative string) error {
	if err := s.require(!s.inAgent && !s.inMessage && !s.inGraph, "Already inside another construct",
		"Close it before declaring a message"); err != nil {
		return err
	}
	if err := s.requireIdentifier(msgType); err != nil {
		return err
	}
	if err := s.requireIdentifier(performative); err != nil {
		return err
	}
	s.addMessage(intermediate.NewMessage(msgType, performative))
	s.inMessage = true
	return nil
}

func (s *State) opEMessage() error {
	if err := s.require(s.inMessage, "Not inside a message"); err != nil {
		return err
	}
	s.inMessage = false
	s.currentMessage = nil
	return nil
}

// opMessagePRM attaches a float body field to the current message.
func (s *State) opMessagePRM(name, category string) error {
	if err := s.require(strings.ToLower(category) == "float",
		fmt.Sprintf("Unknown message parameter category: %s", category),
		"Message parameters are float valued"); err != nil {
		return err
	}
	if err := s.requireIdentifier(name); err != nil {
		return err
	}
	if err := s.require(name != senderField, fmt.Sprintf("Parameter name %s is reserved", name)); err != nil {
		return err
	}
	msg := s.currentMessage
	if err := s.require(!msg.ParamExists(name),
		fmt.Sprintf("Parameter %s is already defined in message %s/%s", name, msg.Type, msg.Performative)); err != nil {
		return err
	}
	msg.AddFloatParam(name)
	return nil
}
