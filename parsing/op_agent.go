package parsing

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/agents-assembly/aasm-go/intermediate"
)

func (s *State) opAgent(name string) error {
	if err := s.require(!s.inAgent && !s.inMessage && !s.inGraph, "Already inside another construct",
		"Close it before declaring an agent"); err != nil {
		return err
	}
	if err := s.requireIdentifier(name); err != nil {
		return err
	}
	if err := s.require(!s.agentExists(name), fmt.Sprintf("Agent %s is already defined", name)); err != nil {
		return err
	}
	s.addAgent(intermediate.NewAgent(name))
	s.inAgent = true
	return nil
}

func (s *State) opEAgent() error {
	if err := s.require(s.inAgent, "Not inside an agent"); err != nil {
		return err
	}
	if err := s.require(!s.inBehaviour, "Missing EBEHAV"); err != nil {
		return err
	}
	s.inAgent = false
	s.currentAgent = nil
	return nil
}

// opAgentPRM attaches a parameter to the current agent. Categories:
//
//	PRM name float init value
//	PRM name float dist_normal mean std_dev
//	PRM name float dist_exp lambda
//	PRM name enum value1 pct1 value2 pct2 ...
//	PRM name conn_list
//	PRM name msg_list
func (s *State) opAgentPRM(name, category string, args []string) error {
	if err := s.require(s.inAgent && !s.inBehaviour, "PRM parameters belong directly inside an agent"); err != nil {
		return err
	}
	if err := s.requireIdentifier(name); err != nil {
		return err
	}
	agent := s.currentAgent
	if err := s.require(!agent.ParamExists(name),
		fmt.Sprintf("Parameter %s is already defined in agent %s", name, agent.Name)); err != nil {
		return err
	}

	switch strings.ToLower(category) {
	case "float":
		return s.addFloatParam(agent, name, args)

	case "enum":
		if len(args) < 2 || len(args)%2 != 0 {
			return s.errorf("Enum parameters require (value, percentage) pairs",
				"Use: PRM name enum value1, pct1, value2, pct2, ...")
		}
		param := &intermediate.EnumParam{Name: name}
		for i := 0; i < len(args); i += 2 {
			if err := s.requireFloatToken(args[i+1]); err != nil {
				return err
			}
			param.Values = append(param.Values, intermediate.EnumValuePair{
				Value:      args[i],
				Percentage: args[i+1],
			})
		}
		agent.EnumParams = append(agent.EnumParams, param)
		return nil

	case "conn_list":
		if err := s.require(len(args) == 0, "conn_list parameters take no arguments"); err != nil {
			return err
		}
		agent.ConnectionListParams = append(agent.ConnectionListParams, &intermediate.ConnectionListParam{Name: name})
		return nil

	case "msg_list":
		if err := s.require(len(args) == 0, "msg_list parameters take no arguments"); err != nil {
			return err
		}
		agent.MessageListParams = append(agent.MessageListParams, &intermediate.MessageListParam{Name: name})
		return nil

	default:
		return s.errorf(fmt.Sprintf("Unknown parameter category: %s", category),
			"Valid categories are float, enum, conn_list and msg_list")
	}
}

func (s *State) addFloatParam(agent *intermediate.Agent, name string, args []string) error {
	if len(args) == 0 {
		return s.errorf("Float parameters require an initialization",
			"Use init, dist_normal or dist_exp")
	}
	switch strings.ToLower(args[0]) {
	case "init":
		if err := s.require(len(args) == 2, "init requires a single value"); err != nil {
			return err
		}
		if err := s.requireFloatToken(args[1]); err != nil {
			return err
		}
		agent.InitFloatParams = append(agent.InitFloatParams, &intermediate.InitFloatParam{Name: name, Value: args[1]})

	case "dist_normal":
		if err := s.require(len(args) == 3, "dist_normal requires a mean and a standard deviation"); err != nil {
			return err
		}
		if err := s.requireFloatToken(args[1]); err != nil {
			return err
		}
		if err := s.requireFloatToken(args[2]); err != nil {
			return err
		}
		agent.DistNormalFloatParams = append(agent.DistNormalFloatParams,
			&intermediate.DistNormalFloatParam{Name: name, Mean: args[1], StdDev: args[2]})

	case "dist_exp":
		if err := s.require(len(args) == 2, "dist_exp requires a lambda"); err != nil {
			return err
		}
		if err := s.requireFloatToken(args[1]); err != nil {
			return err
		}
		agent.DistExpFloatParams = append(agent.DistExpFloatParams,
			&intermediate.DistExpFloatParam{Name: name, Lambda: args[1]})

	default:
		return s.errorf(fmt.Sprintf("Unknown float initialization: %s", args[0]),
			"Valid initializations are init, dist_normal and dist_exp")
	}
	return nil
}

func (s *State) requireFloatToken(token string) error {
	if _, err := strconv.ParseFloat(token, 64); err != nil {
		return s.errorf(fmt.Sprintf("%s is not a valid number", token))
	}
	return nil
}

func (s *State) requireIdentifier(name string) error {
	valid := name != ""
	for i, r := range name {
		switch {
		case r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r == '_':
		case r >= '0' && r <= '9' && i > 0:
		default:
			valid = false
		}
	}
	return s.require(valid, fmt.Sprintf("%s is not a valid name", name),
		"Names start with a letter or underscore and contain only letters, digits and underscores")
}
