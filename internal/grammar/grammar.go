package grammar

import (
	"strings"

	"github.com/featlang/featherkin/pkg/types"
)

// Parse matches src against the feature-document grammar and returns the
// root parse-tree node covering the whole document. The first construct
// that matches no alternative terminates the parse with a *types.SyntaxError;
// no partial tree is returned.
func Parse(src string) (*Node, error) {
	p := &parser{lines: scan(src)}
	root, err := p.parseFeature()
	if err != nil {
		return nil, err
	}
	return root, nil
}

// parser is a cursor over the scanned lines. Comments and blank lines are
// insignificant wherever the grammar permits whitespace; peek skips them.
type parser struct {
	lines []line
	i     int
}

// peek returns the next significant line without consuming it, advancing
// the cursor past comments and blanks. It returns nil at end of input.
func (p *parser) peek() *line {
	for p.i < len(p.lines) {
		l := &p.lines[p.i]
		if l.kind != lineEmpty && l.kind != lineComment {
			return l
		}
		p.i++
	}
	return nil
}

func (p *parser) next() *line {
	l := p.peek()
	if l != nil {
		p.i++
	}
	return l
}

// pos is the position of the first significant character of l
func pos(l *line) types.Position {
	return types.Position{Line: l.num, Column: l.indent() + 1}
}

// errPos is the position a mismatch is reported at: the next significant
// line's start, or one past the last line at end of input
func (p *parser) errPos() types.Position {
	if l := p.peek(); l != nil {
		return pos(l)
	}
	if len(p.lines) == 0 {
		return types.Position{Line: 1, Column: 1}
	}
	return types.Position{Line: p.lines[len(p.lines)-1].num + 1, Column: 1}
}

func (p *parser) syntaxErr(expected ...string) error {
	return &types.SyntaxError{Pos: p.errPos(), Expected: expected}
}

// parseFeature matches the whole document:
// tags? feature_kw feature_body description? background? scenario+ EOF
func (p *parser) parseFeature() (*Node, error) {
	feature := &Node{Rule: RuleFeature}

	tags := p.parseTags()
	if tags != nil {
		feature.Children = append(feature.Children, tags)
	}

	header := p.peek()
	if header == nil || header.kind != lineFeature {
		if tags != nil {
			return nil, p.syntaxErr("Feature:")
		}
		return nil, p.syntaxErr("tags", "Feature:")
	}
	p.next()
	feature.Pos = pos(header)
	feature.Children = append(feature.Children,
		&Node{Rule: RuleFeatureKw, Text: header.keyword, Pos: pos(header)},
		&Node{Rule: RuleFeatureBody, Text: header.body, Pos: pos(header)},
	)

	if desc := p.parseDescription(); desc != nil {
		feature.Children = append(feature.Children, desc)
	}

	if l := p.peek(); l != nil && l.kind == lineBackground {
		bg, err := p.parseBackground()
		if err != nil {
			return nil, err
		}
		feature.Children = append(feature.Children, bg)
	}

	sawScenario := false
	for {
		mark := p.i
		tags := p.parseTags()
		l := p.peek()
		if l == nil || l.kind != lineScenario {
			p.i = mark
			break
		}
		scenario, err := p.parseScenario(tags)
		if err != nil {
			return nil, err
		}
		feature.Children = append(feature.Children, scenario)
		sawScenario = true
	}
	if !sawScenario {
		return nil, p.syntaxErr("tags", "Scenario:")
	}

	if p.peek() != nil {
		return nil, p.syntaxErr("tags", "Scenario:")
	}
	return feature, nil
}

// parseTags collects consecutive tag lines into one tags node, or nil
// when the next significant line is not a tag line
func (p *parser) parseTags() *Node {
	var node *Node
	for {
		l := p.peek()
		if l == nil || l.kind != lineTags {
			return node
		}
		p.next()
		if node == nil {
			node = &Node{Rule: RuleTags, Pos: pos(l)}
		}
		for _, name := range l.tagTokens() {
			node.Children = append(node.Children, &Node{Rule: RuleTag, Text: name, Pos: pos(l)})
		}
	}
}

// parseDescription collects the free-text lines between the feature
// header and the next recognized construct. Interior blank lines are part
// of the block; comments are not. Returns nil when there is no text.
func (p *parser) parseDescription() *Node {
	var (
		raw   []string
		first *line
		blank int // blank lines pending between text lines
	)
	for p.i < len(p.lines) {
		l := &p.lines[p.i]
		switch l.kind {
		case lineEmpty:
			if first != nil {
				blank++
			}
		case lineComment:
			// skipped wherever whitespace is permitted
		case lineText:
			if first == nil {
				first = l
			}
			for ; blank > 0; blank-- {
				raw = append(raw, "")
			}
			raw = append(raw, l.raw)
		default:
			if first == nil {
				return nil
			}
			return &Node{Rule: RuleDescription, Text: strings.Join(raw, "\n"), Pos: pos(first)}
		}
		p.i++
	}
	if first == nil {
		return nil
	}
	return &Node{Rule: RuleDescription, Text: strings.Join(raw, "\n"), Pos: pos(first)}
}

// parseBackground matches: background_kw step*
func (p *parser) parseBackground() (*Node, error) {
	header := p.next()
	node := &Node{Rule: RuleBackground, Pos: pos(header)}
	steps, err := p.parseSteps()
	if err != nil {
		return nil, err
	}
	node.Children = steps
	return node, nil
}

// parseScenario matches: scenario_kw scenario_name step+ examples?
// tags, when present, were consumed by the caller for lookahead
func (p *parser) parseScenario(tags *Node) (*Node, error) {
	header := p.next()
	node := &Node{Rule: RuleScenario, Pos: pos(header)}
	if tags != nil {
		node.Children = append(node.Children, tags)
	}
	node.Children = append(node.Children,
		&Node{Rule: RuleScenarioName, Text: header.body, Pos: pos(header)})

	steps, err := p.parseSteps()
	if err != nil {
		return nil, err
	}
	if len(steps) == 0 {
		return nil, p.syntaxErr("Given", "When", "Then", "And", "But")
	}
	stepsNode := &Node{Rule: RuleSteps, Pos: steps[0].Pos, Children: steps}
	node.Children = append(node.Children, stepsNode)

	// Tags here may belong to this scenario's examples or to the next
	// scenario; decide by what follows and rewind when they are not ours.
	mark := p.i
	exTags := p.parseTags()
	if l := p.peek(); l != nil && l.kind == lineExamples {
		examples, err := p.parseExamples(exTags)
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, examples)
	} else {
		p.i = mark
	}
	return node, nil
}

// parseSteps matches step*, each step optionally followed by a doc
// string or a data table
func (p *parser) parseSteps() ([]*Node, error) {
	var steps []*Node
	for {
		l := p.peek()
		if l == nil || l.kind != lineStep {
			return steps, nil
		}
		p.next()
		step := &Node{Rule: RuleStep, Pos: pos(l)}
		step.Children = append(step.Children,
			&Node{Rule: RuleStepKw, Text: l.keyword, Pos: pos(l)},
			&Node{Rule: RuleStepBody, Text: l.body, Pos: pos(l)},
		)

		switch arg := p.peek(); {
		case arg != nil && arg.kind == lineDocDelim:
			doc, err := p.parseDocString()
			if err != nil {
				return nil, err
			}
			step.Children = append(step.Children, doc)
		case arg != nil && arg.kind == lineTableRow:
			table, err := p.parseTable()
			if err != nil {
				return nil, err
			}
			step.Children = append(step.Children, table)
		}
		steps = append(steps, step)
	}
}

// parseDocString consumes the opening delimiter, the verbatim body, and
// the closing delimiter. Body lines are taken raw: keywords, tables and
// comments inside the block carry no meaning.
func (p *parser) parseDocString() (*Node, error) {
	open := p.next()
	node := &Node{Rule: RuleDocString, Pos: pos(open)}
	var body []string
	for p.i < len(p.lines) {
		l := &p.lines[p.i]
		p.i++
		if l.kind == lineDocDelim {
			node.Text = strings.Join(body, "\n")
			if len(body) > 0 {
				node.Text += "\n"
			}
			return node, nil
		}
		body = append(body, l.raw)
	}
	return nil, p.syntaxErr(docDelimiter)
}

// parseTable matches table_header table_row*
func (p *parser) parseTable() (*Node, error) {
	first := p.peek()
	node := &Node{Rule: RuleDataTable, Pos: pos(first)}
	header := true
	for {
		l := p.peek()
		if l == nil || l.kind != lineTableRow {
			return node, nil
		}
		p.next()
		rule := RuleTableRow
		if header {
			rule = RuleTableHeader
			header = false
		}
		row := &Node{Rule: rule, Pos: pos(l)}
		for _, cell := range l.cells() {
			row.Children = append(row.Children, &Node{Rule: RuleTableField, Text: cell, Pos: pos(l)})
		}
		node.Children = append(node.Children, row)
	}
}

// parseExamples matches: tags? examples_kw datatable
func (p *parser) parseExamples(tags *Node) (*Node, error) {
	header := p.next()
	node := &Node{Rule: RuleExamples, Pos: pos(header)}
	if tags != nil {
		node.Children = append(node.Children, tags)
	}
	l := p.peek()
	if l == nil || l.kind != lineTableRow {
		return nil, p.syntaxErr("table row")
	}
	table, err := p.parseTable()
	if err != nil {
		return nil, err
	}
	node.Children = append(node.Children, table)
	return node, nil
}
