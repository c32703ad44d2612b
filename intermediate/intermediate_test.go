package intermediate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMessageCopy(t *testing.T) {
	original := NewMessage("trade", "offer")
	original.AddFloatParam("price")

	clone := original.Copy()
	require.Equal(t, original.Type, clone.Type)
	require.Equal(t, original.Performative, clone.Performative)
	require.Equal(t, original.FloatParams, clone.FloatParams)

	clone.AddFloatParam("amount")
	require.False(t, original.ParamExists("amount"))
	require.True(t, clone.ParamExists("amount"))
}

func TestActionBlockNesting(t *testing.T) {
	action := NewModifySelfAction("work")
	require.Zero(t, action.OpenBlocks())

	action.AddInstruction(&Declaration{Name: "x", Value: Argument{Expr: "1", Kind: FloatLiteral}})
	action.AddInstruction(&IfGreaterThan{})
	action.StartBlock()
	require.Equal(t, 1, action.OpenBlocks())

	action.AddInstruction(&Add{})
	action.AddInstruction(&WhileLessThan{})
	action.StartBlock()
	require.Equal(t, 2, action.OpenBlocks())
	action.AddInstruction(&Subtract{})

	require.True(t, action.EndBlock())
	require.True(t, action.EndBlock())
	require.Zero(t, action.OpenBlocks())
	require.False(t, action.EndBlock(), "the main block never closes")

	// Instructions appended after a close land back in the outer block.
	action.AddInstruction(&Round{})

	main := action.Main().Statements
	require.Len(t, main, 4)
	require.IsType(t, &Declaration{}, main[0])
	require.IsType(t, &IfGreaterThan{}, main[1])
	outer, ok := main[2].(*Block)
	require.True(t, ok)
	require.IsType(t, &Round{}, main[3])

	require.Len(t, outer.Statements, 3)
	require.IsType(t, &Add{}, outer.Statements[0])
	require.IsType(t, &WhileLessThan{}, outer.Statements[1])
	inner, ok := outer.Statements[2].(*Block)
	require.True(t, ok)
	require.Len(t, inner.Statements, 1)
	require.IsType(t, &Subtract{}, inner.Statements[0])
}

func TestActionDeclarations(t *testing.T) {
	action := NewSendMessageAction("shout", NewMessage("trade", "offer"))
	require.False(t, action.DeclarationExists("x"))
	action.AddDeclaration("x")
	require.True(t, action.DeclarationExists("x"))
	require.False(t, action.DeclarationExists("y"))
}

func TestArgumentKindPredicates(t *testing.T) {
	cases := []struct {
		kind       ArgumentKind
		numeric    bool
		mutable    bool
		list       bool
		enumerable bool
	}{
		{kind: FloatLiteral, numeric: true},
		{kind: AgentFloat, numeric: true, mutable: true},
		{kind: LocalFloat, numeric: true, mutable: true},
		{kind: ReceivedMessageParam, numeric: true, mutable: true},
		{kind: SendMessageParam, numeric: true, mutable: true},
		{kind: AgentEnum, mutable: true, enumerable: true},
		{kind: EnumValue, enumerable: true},
		{kind: AgentConnectionList, list: true},
		{kind: AgentMessageList, list: true},
		{kind: ReceivedMessage},
		{kind: Connection},
	}
	for _, tc := range cases {
		arg := Argument{Kind: tc.kind}
		require.Equal(t, tc.numeric, arg.IsNumeric(), "IsNumeric for %v", tc.kind)
		require.Equal(t, tc.mutable, arg.IsMutable(), "IsMutable for %v", tc.kind)
		require.Equal(t, tc.list, arg.IsList(), "IsList for %v", tc.kind)
		require.Equal(t, tc.enumerable, arg.IsEnumerable(), "IsEnumerable for %v", tc.kind)
	}
}

func TestGraphDefaults(t *testing.T) {
	g := &MatrixGraph{}
	require.False(t, g.ScaleDefined())
	require.Equal(t, 1, g.EffectiveScale())

	g.Scale = 4
	require.True(t, g.ScaleDefined())
	require.Equal(t, 4, g.EffectiveScale())
}

func TestAgentLookups(t *testing.T) {
	a := NewAgent("miner")
	a.InitFloatParams = append(a.InitFloatParams, &InitFloatParam{Name: "gold", Value: "10"})
	a.DistNormalFloatParams = append(a.DistNormalFloatParams, &DistNormalFloatParam{Name: "luck", Mean: "0", StdDev: "1"})
	a.EnumParams = append(a.EnumParams, &EnumParam{
		Name: "mood",
		Values: []EnumValuePair{
			{Value: "happy", Percentage: "50"},
			{Value: "sad", Percentage: "50"},
		},
	})
	a.ConnectionListParams = append(a.ConnectionListParams, &ConnectionListParam{Name: "friends"})

	require.True(t, a.ParamExists("gold"))
	require.True(t, a.ParamExists("mood"))
	require.True(t, a.ParamExists("friends"))
	require.False(t, a.ParamExists("ghost"))

	require.True(t, a.FloatParam("luck"))
	require.False(t, a.FloatParam("mood"))

	require.NotNil(t, a.EnumParamByName("mood"))
	require.Nil(t, a.EnumParamByName("gold"))
	require.Equal(t, a.EnumParams[0], a.EnumWithValue("sad"))
	require.Nil(t, a.EnumWithValue("gold"))

	require.Equal(t, []string{"gold", "luck"}, a.FloatParamNames())
}
