package parsing

import (
	"fmt"
	"strings"

	"github.com/agents-assembly/aasm-go/intermediate"
)

// opBehav opens a behaviour in the current agent. Categories:
//
//	BEHAV name setup
//	BEHAV name one_time delay
//	BEHAV name cyclic period
//	BEHAV name msg_rcv type performative
func (s *State) opBehav(name, category string, args []string) error {
	if err := s.require(s.inAgent && !s.inBehaviour, "Behaviours belong directly inside an agent"); err != nil {
		return err
	}
	if err := s.requireIdentifier(name); err != nil {
		return err
	}
	agent := s.currentAgent
	if err := s.require(!agent.BehaviourExists(name),
		fmt.Sprintf("Behaviour %s is already defined in agent %s", name, agent.Name)); err != nil {
		return err
	}

	switch strings.ToLower(category) {
	case "setup":
		if err := s.require(len(args) == 0, "setup behaviours take no arguments"); err != nil {
			return err
		}
		b := intermediate.NewSetupBehaviour(name)
		agent.SetupBehaviours = append(agent.SetupBehaviours, b)
		s.currentBehaviour = b

	case "one_time":
		if err := s.require(len(args) == 1, "one_time behaviours require a delay"); err != nil {
			return err
		}
		if err := s.requireFloatToken(args[0]); err != nil {
			return err
		}
		b := intermediate.NewOneTimeBehaviour(name, args[0])
		agent.OneTimeBehaviours = append(agent.OneTimeBehaviours, b)
		s.currentBehaviour = b

	case "cyclic":
		if err := s.require(len(args) == 1, "cyclic behaviours require a period"); err != nil {
			return err
		}
		if err := s.requireFloatToken(args[0]); err != nil {
			return err
		}
		b := intermediate.NewCyclicBehaviour(name, args[0])
		agent.CyclicBehaviours = append(agent.CyclicBehaviours, b)
		s.currentBehaviour = b

	case "msg_rcv":
		if err := s.require(len(args) == 2, "msg_rcv behaviours require a message type and performative"); err != nil {
			return err
		}
		if err := s.require(s.messageExists(args[0], args[1]),
			fmt.Sprintf("Message %s/%s is not defined", args[0], args[1]),
			"Declare the message before the agent that receives it"); err != nil {
			return err
		}
		b := intermediate.NewMessageReceivedBehaviour(name, s.messageInstance(args[0], args[1]))
		agent.MessageReceivedBehaviours = append(agent.MessageReceivedBehaviours, b)
		s.currentBehaviour = b

	default:
		return s.errorf(fmt.Sprintf("Unknown behaviour category: %s", category),
			"Valid categories are setup, one_time, cyclic and msg_rcv")
	}

	s.inBehaviour = true
	return nil
}

func (s *State) opEBehav() error {
	if err := s.require(s.inBehaviour, "Not inside a behaviour"); err != nil {
		return err
	}
	if err := s.require(!s.inAction, "Missing EACTION"); err != nil {
		return err
	}
	s.inBehaviour = false
	s.currentBehaviour = nil
	return nil
}

// opAction opens an action in the current behaviour. Categories:
//
//	ACTION name modify_self
//	ACTION name send_msg type performative
func (s *State) opAction(name, category string, args []string) error {
	if err := s.require(s.inBehaviour && !s.inAction, "Actions belong directly inside a behaviour"); err != nil {
		return err
	}
	if err := s.requireIdentifier(name); err != nil {
		return err
	}
	behaviour := s.currentBehaviour
	if err := s.require(!behaviour.ActionExists(name),
		fmt.Sprintf("Action %s is already defined in behaviour %s", name, behaviour.BehaviourName())); err != nil {
		return err
	}

	switch strings.ToLower(category) {
	case "modify_self":
		if err := s.require(len(args) == 0, "modify_self actions take no arguments"); err != nil {
			return err
		}
		a := intermediate.NewModifySelfAction(name)
		behaviour.AddAction(a)
		s.currentAction = a

	case "send_msg":
		if err := s.require(len(args) == 2, "send_msg actions require a message type and performative"); err != nil {
			return err
		}
		if err := s.require(s.messageExists(args[0], args[1]),
			fmt.Sprintf("Message %s/%s is not defined", args[0], args[1]),
			"Declare the message before the agent that sends it"); err != nil {
			return err
		}
		a := intermediate.NewSendMessageAction(name, s.messageInstance(args[0], args[1]))
		behaviour.AddAction(a)
		s.currentAction = a

	default:
		return s.errorf(fmt.Sprintf("Unknown action category: %s", category),
			"Valid categories are modify_self and send_msg")
	}

	s.inAction = true
	return nil
}

func (s *State) opEAction() error {
	if err := s.require(s.inAction, "Not inside an action"); err != nil {
		return err
	}
	if err := s.require(s.currentAction.OpenBlocks() == 0, "Missing EBLOCK"); err != nil {
		return err
	}
	s.inAction = false
	s.currentAction = nil
	return nil
}
