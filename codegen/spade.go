package codegen

import (
	"fmt"
	"strings"

	"github.com/agents-assembly/aasm-go/intermediate"
)

// Agents emits the SPADE agent unit: one Python class per declared agent. An
// empty agent set yields an empty unit.
func Agents(indentSize int, agents []*intermediate.Agent) []string {
	g := &spadeGenerator{Writer: NewWriter(indentSize)}
	if len(agents) > 0 {
		g.imports()
		for _, agent := range agents {
			g.Blanks(2)
			g.agent(agent)
		}
	}
	return g.Lines()
}

type spadeGenerator struct {
	*Writer
}

func (g *spadeGenerator) imports() {
	g.Line("import copy")
	g.Line("import datetime")
	g.Line("import random")
	g.Line("import httpx")
	g.Line("import numpy")
	g.Line("import orjson")
	g.Line("import spade")
}

func (g *spadeGenerator) agent(agent *intermediate.Agent) {
	g.Linef("class %s(spade.agent.Agent):", agent.Name)
	g.Indented(func() {
		g.constructor(agent)
		g.Blank()

		g.messageUtils()
		g.Blank()

		g.setup(agent)
		g.Blank()

		g.backupBehaviour(agent)
		g.Blank()

		for _, b := range agent.SetupBehaviours {
			g.behaviour(b, "spade.behaviour.OneShotBehaviour")
			g.Blank()
		}
		for _, b := range agent.OneTimeBehaviours {
			g.behaviour(b, "spade.behaviour.TimeoutBehaviour")
			g.Blank()
		}
		for _, b := range agent.CyclicBehaviours {
			g.behaviour(b, "spade.behaviour.PeriodicBehaviour")
			g.Blank()
		}
		for _, b := range agent.MessageReceivedBehaviours {
			g.behaviour(b, "spade.behaviour.CyclicBehaviour")
			g.Blank()
		}
	})
}

func (g *spadeGenerator) constructor(agent *intermediate.Agent) {
	g.Line("def __init__(self, jid, password, backup_url = None, backup_period = 60, backup_delay = 0, logger = None, **kwargs):")
	g.Indented(func() {
		g.Line("super().__init__(jid, password, verify_security=False)")
		g.Line(`if logger: logger.debug(f"[{jid}] Received parameters: jid: {jid}, password: {password}, backup_url: {backup_url}, backup_period: {backup_period}, backup_delay: {backup_delay}, kwargs: {kwargs}")`)
		g.Line("self.logger = logger")
		g.Line("self.backup_url = backup_url")
		g.Line("self.backup_period = backup_period")
		g.Line("self.backup_delay = backup_delay")
		g.Line(`self.connections = kwargs.get("connections", [])`)
		g.Line(`self.msgRCount = kwargs.get("msgRCount", 0)`)
		g.Line(`self.msgSCount = kwargs.get("msgSCount", 0)`)

		for _, p := range agent.InitFloatParams {
			g.Linef(`self.%s = kwargs.get("%s", %s)`, p.Name, p.Name, p.Value)
		}
		for _, p := range agent.DistNormalFloatParams {
			g.Linef(`self.%s = kwargs.get("%s", numpy.random.normal(%s, %s))`, p.Name, p.Name, p.Mean, p.StdDev)
		}
		for _, p := range agent.DistExpFloatParams {
			g.Linef(`self.%s = kwargs.get("%s", numpy.random.exponential(1/%s))`, p.Name, p.Name, p.Lambda)
		}
		for _, p := range agent.EnumParams {
			values := make([]string, len(p.Values))
			weights := make([]string, len(p.Values))
			for i, v := range p.Values {
				values[i] = fmt.Sprintf("%q", v.Value)
				weights[i] = v.Percentage
			}
			g.Linef(`self.%s = kwargs.get("%s", random.choices([%s], [%s])[0])`,
				p.Name, p.Name, strings.Join(values, ", "), strings.Join(weights, ", "))
		}
		for _, p := range agent.ConnectionListParams {
			g.Linef(`self.%s = kwargs.get("%s", [])`, p.Name, p.Name)
		}
		for _, p := range agent.MessageListParams {
			g.Linef(`self.%s = kwargs.get("%s", [])`, p.Name, p.Name)
		}

		g.Line(`if self.logger: self.logger.debug(f"[{self.jid}] Class dict after initialization: {self.__dict__}")`)
	})
	g.Blank()

	g.Line("@property")
	g.Line("def connCount(self):")
	g.Indented(func() {
		g.Line("return len(self.connections)")
	})
}

func (g *spadeGenerator) messageUtils() {
	g.Line("def get_json_from_spade_message(self, msg):")
	g.Indented(func() {
		g.Line("return orjson.loads(msg.body)")
	})
	g.Blank()

	g.Line("def get_spade_message(self, receiver_jid, body):")
	g.Indented(func() {
		g.Line("msg = spade.message.Message(to=receiver_jid)")
		g.Line(`body["sender"] = str(self.jid)`)
		g.Line(`msg.metadata["type"] = body["type"]`)
		g.Line(`msg.metadata["performative"] = body["performative"]`)
		g.Line(`msg.body = str(orjson.dumps(body), encoding="utf-8")`)
		g.Line("return msg")
	})
}

func (g *spadeGenerator) setup(agent *intermediate.Agent) {
	g.Line("def setup(self):")
	g.Indented(func() {
		g.Line("if self.backup_url:")
		g.Indented(func() {
			g.noMatchTemplate("BackupBehaviour")
			g.Line("self.add_behaviour(self.BackupBehaviour(start_at=datetime.datetime.now() + datetime.timedelta(seconds=self.backup_delay), period=self.backup_period), BackupBehaviour_template)")
		})

		for _, b := range agent.SetupBehaviours {
			g.noMatchTemplate(b.BehaviourName())
			g.Linef("self.add_behaviour(self.%s(), %s_template)", b.BehaviourName(), b.BehaviourName())
		}
		for _, b := range agent.OneTimeBehaviours {
			g.noMatchTemplate(b.BehaviourName())
			g.Linef("self.add_behaviour(self.%s(start_at=datetime.datetime.now() + datetime.timedelta(seconds=%s)), %s_template)",
				b.BehaviourName(), b.Delay, b.BehaviourName())
		}
		for _, b := range agent.CyclicBehaviours {
			g.noMatchTemplate(b.BehaviourName())
			g.Linef("self.add_behaviour(self.%s(period=%s), %s_template)", b.BehaviourName(), b.Period, b.BehaviourName())
		}
		for _, b := range agent.MessageReceivedBehaviours {
			g.Linef("%s_template = spade.template.Template()", b.BehaviourName())
			g.Linef(`%s_template.set_metadata("type", "%s")`, b.BehaviourName(), b.ReceivedMessage.Type)
			g.Linef(`%s_template.set_metadata("performative", "%s")`, b.BehaviourName(), b.ReceivedMessage.Performative)
			g.Linef("self.add_behaviour(self.%s(), %s_template)", b.BehaviourName(), b.BehaviourName())
		}

		g.Line(`if self.logger: self.logger.debug(f"[{self.jid}] Class dict after setup: {self.__dict__}")`)
	})
}

func (g *spadeGenerator) noMatchTemplate(behaviourName string) {
	g.Linef("%s_template = spade.template.Template()", behaviourName)
	g.Linef(`%s_template.set_metadata("reserved", "no_message_match")`, behaviourName)
}

func (g *spadeGenerator) backupBehaviour(agent *intermediate.Agent) {
	g.Line("class BackupBehaviour(spade.behaviour.PeriodicBehaviour):")
	g.Indented(func() {
		g.Line("def __init__(self, start_at, period):")
		g.Indented(func() {
			g.Line("super().__init__(start_at=start_at, period=period)")
			g.Line("self.http_client = httpx.AsyncClient(timeout=period)")
		})
		g.Blank()

		g.Line("async def run(self):")
		g.Indented(func() {
			g.Line("data = {")
			g.Indented(func() {
				g.Line(`"jid": str(self.agent.jid),`)
				g.Linef(`"type": "%s",`, agent.Name)

				g.Line(`"floats": {`)
				g.Indented(func() {
					g.Line(`"msgRCount": self.agent.msgRCount,`)
					g.Line(`"msgSCount": self.agent.msgSCount,`)
					g.Line(`"connCount": self.agent.connCount,`)
					for _, name := range agent.FloatParamNames() {
						g.Linef(`"%s": self.agent.%s,`, name, name)
					}
				})
				g.Line("},")

				g.Line(`"enums": {`)
				g.Indented(func() {
					for _, p := range agent.EnumParams {
						g.Linef(`"%s": self.agent.%s,`, p.Name, p.Name)
					}
				})
				g.Line("},")

				g.Line(`"connections": {`)
				g.Indented(func() {
					g.Line(`"connections": self.agent.connections,`)
					for _, p := range agent.ConnectionListParams {
						g.Linef(`"%s": self.agent.%s,`, p.Name, p.Name)
					}
				})
				g.Line("},")

				g.Line(`"messages": {`)
				g.Indented(func() {
					for _, p := range agent.MessageListParams {
						g.Linef(`"%s": self.agent.%s,`, p.Name, p.Name)
					}
				})
				g.Line("}")
			})
			g.Line("}")
			g.Line(`if self.agent.logger: self.agent.logger.debug(f"[{self.agent.jid}] Sending backup data: {data}")`)
			g.Line("try:")
			g.Indented(func() {
				g.Line(`await self.http_client.post(self.agent.backup_url, headers={"Content-Type": "application/json"}, data=orjson.dumps(data))`)
			})
			g.Line("except Exception as e:")
			g.Indented(func() {
				g.Line(`if self.agent.logger: self.agent.logger.error(f"[{self.agent.jid}] Backup error type: {e.__class__}, additional info: {e}")`)
			})
		})
	})
}

func (g *spadeGenerator) behaviour(behaviour intermediate.Behaviour, spadeType string) {
	_, receives := behaviour.(*intermediate.MessageReceivedBehaviour)

	g.Linef("class %s(%s):", behaviour.BehaviourName(), spadeType)
	g.Indented(func() {
		for _, action := range behaviour.Actions() {
			g.action(receives, action)
		}

		g.Line("async def run(self):")
		g.Indented(func() {
			if receives {
				g.receiveMessage()
				g.Indented(func() {
					for _, action := range behaviour.Actions() {
						g.actionCall(receives, action)
					}
				})
				return
			}
			if len(behaviour.Actions()) == 0 {
				g.Line("...")
				return
			}
			for _, action := range behaviour.Actions() {
				g.actionCall(receives, action)
			}
		})
	})
}

// receiveMessage emits the implicit receive-with-timeout step that precedes
// user instructions in message-received behaviours. When no message arrives
// the counter stays untouched and the invocation completes; the scheduler
// re-invokes the behaviour.
func (g *spadeGenerator) receiveMessage() {
	g.Line("rcv = await self.receive(timeout=100000)")
	g.Line("if rcv:")
	g.Indented(func() {
		g.Line("rcv = self.agent.get_json_from_spade_message(rcv)")
		g.Line("self.agent.msgRCount += 1")
		g.Line(`if self.agent.logger: self.agent.logger.debug(f"[{self.agent.jid}] Received message: {rcv}")`)
	})
}

func (g *spadeGenerator) actionCall(receives bool, action intermediate.Action) {
	var call strings.Builder
	if _, ok := action.(*intermediate.SendMessageAction); ok {
		call.WriteString("await ")
	}
	call.WriteString("self." + action.ActionName())
	if receives {
		call.WriteString("(rcv)")
	} else {
		call.WriteString("()")
	}
	g.Line(call.String())
}

func (g *spadeGenerator) action(receives bool, action intermediate.Action) {
	g.actionDef(receives, action)
	g.Indented(func() {
		g.Linef(`if self.agent.logger: self.agent.logger.debug(f"[{self.agent.jid}] Run action %s")`, action.ActionName())

		if send, ok := action.(*intermediate.SendMessageAction); ok {
			g.sendTemplate(send.SendMessage)
		}
		g.block(action.Main())
	})
	g.Blank()
}

func (g *spadeGenerator) actionDef(receives bool, action intermediate.Action) {
	var def strings.Builder
	if _, ok := action.(*intermediate.SendMessageAction); ok {
		def.WriteString("async ")
	}
	def.WriteString("def " + action.ActionName())
	if receives {
		def.WriteString("(self, rcv):")
	} else {
		def.WriteString("(self):")
	}
	g.Line(def.String())
}

// sendTemplate binds the action's message copy to a fresh send dict with all
// body fields zeroed; the action body fills them in before transmission.
func (g *spadeGenerator) sendTemplate(msg *intermediate.Message) {
	var b strings.Builder
	fmt.Fprintf(&b, `send = { "type": %q, "performative": %q, `, msg.Type, msg.Performative)
	for _, name := range msg.FloatParams {
		fmt.Fprintf(&b, `%q: 0.0, `, name)
	}
	b.WriteString("}")
	g.Line(b.String())
}

// argRef qualifies an argument reference for emission based on its origin.
func argRef(a intermediate.Argument) string {
	switch a.Kind {
	case intermediate.AgentFloat, intermediate.AgentEnum,
		intermediate.AgentConnectionList, intermediate.AgentMessageList:
		return "self.agent." + a.Expr
	case intermediate.EnumValue:
		return fmt.Sprintf("%q", a.Expr)
	case intermediate.ReceivedMessageParam:
		return fmt.Sprintf("rcv[%q]", a.Expr)
	case intermediate.SendMessageParam:
		return fmt.Sprintf("send[%q]", a.Expr)
	case intermediate.ReceivedMessage:
		return "rcv"
	default:
		return a.Expr
	}
}

func (g *spadeGenerator) block(block *intermediate.Block) {
	if len(block.Statements) == 0 {
		g.Line("...")
		return
	}
	for _, statement := range block.Statements {
		g.statement(statement)
	}
}

// statement translates one IR statement. The table is total over the IR: an
// unknown variant is an emitter bug, not a user error.
func (g *spadeGenerator) statement(statement intermediate.Statement) {
	switch st := statement.(type) {
	case *intermediate.Block:
		g.Indented(func() {
			g.block(st)
		})

	case *intermediate.Declaration:
		g.Linef("%s = %s", st.Name, argRef(st.Value))

	case *intermediate.Subset:
		target, source, count := argRef(st.Target), argRef(st.Source), argRef(st.Count)
		g.Linef("if round(%s) > 0:", count)
		g.Indented(func() {
			g.Linef("%s = [copy.deepcopy(elem) for elem in random.sample(%s, min(round(%s), len(%s)))]",
				target, source, count, source)
		})
		g.Line("else:")
		g.Indented(func() {
			g.Linef("%s = []", target)
		})

	case *intermediate.Clear:
		g.Linef("%s.clear()", argRef(st.List))

	case *intermediate.Send:
		if st.Receiver.Kind == intermediate.AgentConnectionList {
			receivers := argRef(st.Receiver)
			g.Linef(`if self.agent.logger: self.agent.logger.debug(f"[{self.agent.jid}] Send message {send} to %s")`, receivers)
			g.Linef("for receiver in %s:", receivers)
			g.Indented(func() {
				g.Line("await self.send(self.agent.get_spade_message(receiver, send))")
				g.Line("self.agent.msgSCount += 1")
			})
		} else {
			receiver := argRef(st.Receiver)
			g.Linef(`if self.agent.logger: self.agent.logger.debug(f"[{self.agent.jid}] Send message {send} to %s")`, receiver)
			g.Linef("await self.send(self.agent.get_spade_message(%s, send))", receiver)
			g.Line("self.agent.msgSCount += 1")
		}

	case *intermediate.Set:
		if st.Value.Kind == intermediate.AgentMessageList {
			msg, list := argRef(st.Target), argRef(st.Value)
			filter := fmt.Sprintf(`list(filter(lambda msg: msg.body["type"] == %s.body["type"] and msg.body["performative"] == %s.body["performative"], %s))`,
				msg, msg, list)
			g.Linef("if len(%s):", filter)
			g.Indented(func() {
				g.Linef("%s = copy.deepcopy(random.choice(%s))", msg, filter)
			})
			g.Line("else:")
			g.Indented(func() {
				g.Line("return")
			})
		} else {
			g.Linef("%s = %s", argRef(st.Target), argRef(st.Value))
		}

	case *intermediate.Round:
		target := argRef(st.Target)
		g.Linef("%s = round(%s)", target, target)

	case *intermediate.UniformDist:
		g.Linef("%s = random.uniform(%s, %s)", argRef(st.Target), argRef(st.A), argRef(st.B))

	case *intermediate.NormalDist:
		g.Linef("%s = numpy.random.normal(%s, %s)", argRef(st.Target), argRef(st.Mean), argRef(st.StdDev))

	case *intermediate.ExpDist:
		target, lambda := argRef(st.Target), argRef(st.Lambda)
		g.Linef("%s = numpy.random.exponential(1/%s) if %s > 0 else 0", target, lambda, lambda)

	case *intermediate.IfGreaterThan:
		g.Linef("if %s > %s:", argRef(st.Left), argRef(st.Right))
	case *intermediate.IfGreaterThanOrEqual:
		g.Linef("if %s >= %s:", argRef(st.Left), argRef(st.Right))
	case *intermediate.IfLessThan:
		g.Linef("if %s < %s:", argRef(st.Left), argRef(st.Right))
	case *intermediate.IfLessThanOrEqual:
		g.Linef("if %s <= %s:", argRef(st.Left), argRef(st.Right))
	case *intermediate.IfEqual:
		g.Linef("if %s == %s:", argRef(st.Left), argRef(st.Right))
	case *intermediate.IfNotEqual:
		g.Linef("if %s != %s:", argRef(st.Left), argRef(st.Right))

	case *intermediate.WhileGreaterThan:
		g.Linef("while %s > %s:", argRef(st.Left), argRef(st.Right))
	case *intermediate.WhileGreaterThanOrEqual:
		g.Linef("while %s >= %s:", argRef(st.Left), argRef(st.Right))
	case *intermediate.WhileLessThan:
		g.Linef("while %s < %s:", argRef(st.Left), argRef(st.Right))
	case *intermediate.WhileLessThanOrEqual:
		g.Linef("while %s <= %s:", argRef(st.Left), argRef(st.Right))
	case *intermediate.WhileEqual:
		g.Linef("while %s == %s:", argRef(st.Left), argRef(st.Right))
	case *intermediate.WhileNotEqual:
		g.Linef("while %s != %s:", argRef(st.Left), argRef(st.Right))

	case *intermediate.Add:
		g.Linef("%s += %s", argRef(st.Target), argRef(st.Value))
	case *intermediate.Subtract:
		g.Linef("%s -= %s", argRef(st.Target), argRef(st.Value))
	case *intermediate.Multiply:
		g.Linef("%s *= %s", argRef(st.Target), argRef(st.Value))

	case *intermediate.Divide:
		// Division by zero silently ends the action invocation.
		g.Linef("if %s == 0: return", argRef(st.Value))
		g.Linef("%s /= %s", argRef(st.Target), argRef(st.Value))

	case *intermediate.AddElement:
		list, element := argRef(st.List), argRef(st.Element)
		g.Linef("if %s not in %s: %s.append(%s)", element, list, list, element)

	case *intermediate.RemoveElement:
		list, element := argRef(st.List), argRef(st.Element)
		g.Linef("if %s in %s: %s.remove(%s)", element, list, list, element)

	case *intermediate.IfInList:
		g.Linef("if %s in %s:", argRef(st.Element), argRef(st.List))
	case *intermediate.IfNotInList:
		g.Linef("if %s not in %s:", argRef(st.Element), argRef(st.List))

	case *intermediate.Length:
		g.Linef("%s = len(%s)", argRef(st.Target), argRef(st.List))

	case *intermediate.RemoveNElements:
		list, count := argRef(st.List), argRef(st.Count)
		g.Linef("if round(%s) > 0:", count)
		g.Indented(func() {
			g.Linef("if round(%s) < len(%s):", count, list)
			g.Indented(func() {
				g.Linef("random.shuffle(%s)", list)
				g.Linef("%s = %s[:len(%s) - round(%s)]", list, list, list, count)
			})
			g.Line("else:")
			g.Indented(func() {
				g.Linef("%s = []", list)
			})
		})

	default:
		panic(fmt.Sprintf("codegen: unhandled statement variant %T", statement))
	}
}
