package builder

import (
	"strings"

	"github.com/featlang/featherkin/internal/grammar"
	"github.com/featlang/featherkin/pkg/types"
)

// Build assembles the typed document model from the root parse-tree node
// in a single top-down pass. It returns a *types.ContextError or
// *types.BuildError when the tree parsed but cannot form a valid model;
// it never panics on malformed trees.
func Build(root *grammar.Node) (*types.Feature, error) {
	feature := &types.Feature{Pos: root.Pos}
	seenName := false

	for _, child := range root.Children {
		switch child.Rule {
		case grammar.RuleFeatureKw:
			feature.Pos = child.Pos
		case grammar.RuleFeatureBody:
			feature.Name = child.Text
			seenName = true
		case grammar.RuleDescription:
			// Kept when non-empty after normalization, absent otherwise.
			if desc := Dedent(child.Text); desc != "" {
				feature.Description = desc
			}
		case grammar.RuleTags:
			feature.Tags = buildTags(child)
		case grammar.RuleBackground:
			bg, err := buildBackground(child)
			if err != nil {
				return nil, err
			}
			feature.Background = bg
		case grammar.RuleScenario:
			scenario, err := buildScenario(child)
			if err != nil {
				return nil, err
			}
			feature.Scenarios = append(feature.Scenarios, *scenario)
		}
	}

	if !seenName {
		return nil, &types.BuildError{Pos: root.Pos, Msg: "feature name could not be derived"}
	}
	return feature, nil
}

// buildTags collects tag texts in document order, dropping duplicates
func buildTags(node *grammar.Node) []string {
	var (
		tags []string
		seen = map[string]struct{}{}
	)
	for _, tag := range node.ChildrenOf(grammar.RuleTag) {
		if _, dup := seen[tag.Text]; dup {
			continue
		}
		seen[tag.Text] = struct{}{}
		tags = append(tags, tag.Text)
	}
	return tags
}

func buildBackground(node *grammar.Node) (*types.Background, error) {
	steps, err := buildSteps(node)
	if err != nil {
		return nil, err
	}
	return &types.Background{Steps: steps, Pos: node.Pos}, nil
}

func buildScenario(node *grammar.Node) (*types.Scenario, error) {
	scenario := &types.Scenario{Pos: node.Pos}
	seenName := false

	for _, child := range node.Children {
		switch child.Rule {
		case grammar.RuleScenarioName:
			scenario.Name = child.Text
			seenName = true
		case grammar.RuleSteps:
			steps, err := buildSteps(child)
			if err != nil {
				return nil, err
			}
			scenario.Steps = steps
		case grammar.RuleExamples:
			examples, err := buildExamples(child)
			if err != nil {
				return nil, err
			}
			scenario.Examples = examples
		case grammar.RuleTags:
			scenario.Tags = buildTags(child)
		}
	}

	if !seenName {
		return nil, &types.BuildError{Pos: node.Pos, Msg: "scenario name could not be derived"}
	}
	return scenario, nil
}

func buildExamples(node *grammar.Node) (*types.Examples, error) {
	examples := &types.Examples{Pos: node.Pos}

	for _, child := range node.Children {
		switch child.Rule {
		case grammar.RuleDataTable:
			table, err := buildTable(child)
			if err != nil {
				return nil, err
			}
			examples.Table = *table
		case grammar.RuleTags:
			examples.Tags = buildTags(child)
		}
	}

	if examples.Table.Header == nil {
		return nil, &types.BuildError{Pos: node.Pos, Msg: "examples table could not be derived"}
	}
	return examples, nil
}

// buildTable copies cell text with surrounding whitespace trimmed. The
// header row fixes the width; a row of any other width fails the build.
func buildTable(node *grammar.Node) (*types.Table, error) {
	table := &types.Table{Pos: node.Pos}

	for _, child := range node.Children {
		switch child.Rule {
		case grammar.RuleTableHeader:
			table.Header = buildRow(child)
		case grammar.RuleTableRow:
			row := buildRow(child)
			if len(row) != len(table.Header) {
				return nil, &types.BuildError{
					Pos: child.Pos,
					Msg: "table row width differs from header",
					Err: types.ErrRaggedTable,
				}
			}
			table.Rows = append(table.Rows, row)
		}
	}

	if table.Header == nil {
		return nil, &types.BuildError{Pos: node.Pos, Msg: "table header could not be derived"}
	}
	return table, nil
}

func buildRow(node *grammar.Node) []string {
	cells := make([]string, 0, len(node.Children))
	for _, field := range node.ChildrenOf(grammar.RuleTableField) {
		cells = append(cells, strings.TrimSpace(field.Text))
	}
	return cells
}
