package grammar

import "github.com/featlang/featherkin/pkg/types"

// Rule labels a parse-tree node with the grammar production it matched
type Rule string

const (
	RuleFeature      Rule = "feature"
	RuleFeatureKw    Rule = "feature_kw"
	RuleFeatureBody  Rule = "feature_body"
	RuleDescription  Rule = "feature_description"
	RuleTags         Rule = "tags"
	RuleTag          Rule = "tag"
	RuleBackground   Rule = "background"
	RuleScenario     Rule = "scenario"
	RuleScenarioName Rule = "scenario_name"
	RuleSteps        Rule = "scenario_steps"
	RuleStep         Rule = "step"
	RuleStepKw       Rule = "step_kw"
	RuleStepBody     Rule = "step_body"
	RuleDocString    Rule = "docstring"
	RuleDataTable    Rule = "datatable"
	RuleTableHeader  Rule = "table_header"
	RuleTableRow     Rule = "table_row"
	RuleTableField   Rule = "table_field"
	RuleExamples     Rule = "examples"
)

// Node is one labeled node of the generic parse tree. Text holds the
// matched span for leaf-ish rules (keywords, bodies, fields, doc strings);
// structural rules carry their content in Children instead.
type Node struct {
	Rule     Rule
	Text     string
	Pos      types.Position
	Children []*Node
}

// Child returns the first child matching rule, or nil
func (n *Node) Child(rule Rule) *Node {
	for _, c := range n.Children {
		if c.Rule == rule {
			return c
		}
	}
	return nil
}

// ChildrenOf returns all children matching rule, in document order
func (n *Node) ChildrenOf(rule Rule) []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.Rule == rule {
			out = append(out, c)
		}
	}
	return out
}
