package builder

import (
	"fmt"
	"strings"

	"github.com/featlang/featherkin/internal/grammar"
	"github.com/featlang/featherkin/pkg/types"
)

// resolveStepType maps a raw step keyword to its semantic kind. The
// context is the kind of the nearest preceding step in the same
// sequence, or nil for the first step. A continuation keyword with no
// context is a *types.ContextError, never a default kind.
func resolveStepType(keyword string, context *types.StepType, pos types.Position) (types.StepType, error) {
	switch keyword {
	case "Given":
		return types.StepGiven, nil
	case "When":
		return types.StepWhen, nil
	case "Then":
		return types.StepThen, nil
	case "And", "But":
		if context == nil {
			return "", &types.ContextError{Pos: pos, Keyword: keyword}
		}
		return *context, nil
	}
	return "", &types.BuildError{Pos: pos, Msg: fmt.Sprintf("unknown step keyword %q", keyword)}
}

// buildSteps folds a sequence of step nodes into Step values, threading
// the current resolved kind left to right
func buildSteps(parent *grammar.Node) ([]types.Step, error) {
	var (
		steps   []types.Step
		context *types.StepType
	)
	for _, node := range parent.ChildrenOf(grammar.RuleStep) {
		step, err := buildStep(node, context)
		if err != nil {
			return nil, err
		}
		steps = append(steps, *step)
		context = &step.Type
	}
	return steps, nil
}

func buildStep(node *grammar.Node, context *types.StepType) (*types.Step, error) {
	kw := node.Child(grammar.RuleStepKw)
	body := node.Child(grammar.RuleStepBody)
	if kw == nil || body == nil {
		return nil, &types.BuildError{Pos: node.Pos, Msg: "step node missing keyword or body"}
	}

	ty, err := resolveStepType(kw.Text, context, kw.Pos)
	if err != nil {
		return nil, err
	}

	step := &types.Step{
		Type:       ty,
		RawKeyword: kw.Text,
		Text:       body.Text,
		Pos:        kw.Pos,
	}

	if doc := node.Child(grammar.RuleDocString); doc != nil {
		// Trailing whitespace and surrounding newlines go; interior
		// blank lines stay.
		text := Dedent(doc.Text)
		text = strings.TrimRight(text, " \t\r\n")
		text = strings.Trim(text, "\r\n")
		step.DocString = &text
	}
	if table := node.Child(grammar.RuleDataTable); table != nil {
		t, err := buildTable(table)
		if err != nil {
			return nil, err
		}
		step.Table = t
	}
	return step, nil
}
