package grammar

import "strings"

// lineKind classifies one physical line of the document
type lineKind int

const (
	lineEmpty lineKind = iota
	lineComment
	lineTags
	lineFeature
	lineBackground
	lineScenario
	lineExamples
	lineStep
	lineTableRow
	lineDocDelim
	lineText
)

// docDelimiter opens and closes a verbatim text block
const docDelimiter = `"""`

var stepKeywords = []string{"Given", "When", "Then", "And", "But"}

// line is one scanned line with its classification. The raw text is kept
// so doc-string bodies can be recovered verbatim regardless of what their
// lines would otherwise classify as.
type line struct {
	raw     string // full line text, without the newline
	trimmed string // raw with leading whitespace removed
	num     int    // 1-based line number
	kind    lineKind
	keyword string // step keyword, or section keyword including the colon
	body    string // trimmed text after the keyword
}

// indent is the number of leading whitespace characters; the column of
// the first significant character is indent()+1
func (l *line) indent() int {
	return len(l.raw) - len(l.trimmed)
}

// scan splits src into classified lines. Scanning never fails; lines
// that fit no construct are classified as free text and judged by the
// grammar in context.
func scan(src string) []line {
	parts := strings.Split(src, "\n")
	// A trailing newline produces one empty trailing element; drop it so
	// line numbering matches the document.
	if len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}

	lines := make([]line, 0, len(parts))
	for i, raw := range parts {
		raw = strings.TrimSuffix(raw, "\r")
		l := line{
			raw:     raw,
			trimmed: strings.TrimLeft(raw, " \t"),
			num:     i + 1,
		}
		classify(&l)
		lines = append(lines, l)
	}
	return lines
}

func classify(l *line) {
	t := l.trimmed
	switch {
	case t == "":
		l.kind = lineEmpty
	case strings.HasPrefix(t, "#"):
		l.kind = lineComment
	case strings.HasPrefix(t, "@"):
		l.kind = lineTags
	case strings.HasPrefix(t, docDelimiter):
		l.kind = lineDocDelim
	case strings.HasPrefix(t, "|"):
		l.kind = lineTableRow
	case cutKeyword(l, "Feature:", lineFeature),
		cutKeyword(l, "Background:", lineBackground),
		cutKeyword(l, "Scenario Outline:", lineScenario),
		cutKeyword(l, "Scenario:", lineScenario),
		cutKeyword(l, "Examples:", lineExamples):
	case cutStepKeyword(l):
	default:
		l.kind = lineText
	}
}

// cutKeyword classifies l as kind when its trimmed text starts with the
// section keyword, splitting off the body after the colon
func cutKeyword(l *line, keyword string, kind lineKind) bool {
	if !strings.HasPrefix(l.trimmed, keyword) {
		return false
	}
	l.kind = kind
	l.keyword = keyword
	l.body = strings.TrimSpace(l.trimmed[len(keyword):])
	return true
}

// cutStepKeyword classifies l as a step line when it starts with one of
// the five step keywords followed by whitespace
func cutStepKeyword(l *line) bool {
	for _, kw := range stepKeywords {
		rest, ok := strings.CutPrefix(l.trimmed, kw)
		if !ok {
			continue
		}
		if rest == "" || (rest[0] != ' ' && rest[0] != '\t') {
			continue
		}
		l.kind = lineStep
		l.keyword = kw
		l.body = strings.TrimSpace(rest)
		return true
	}
	return false
}

// tagTokens returns the tag names on a tag line, without the "@" marker
func (l *line) tagTokens() []string {
	var tags []string
	for _, f := range strings.Fields(l.trimmed) {
		if name, ok := strings.CutPrefix(f, "@"); ok && name != "" {
			tags = append(tags, name)
		}
	}
	return tags
}

// cells returns the raw cell texts of a table-row line, between the
// outer pipes, untrimmed
func (l *line) cells() []string {
	t := strings.TrimRight(l.trimmed, " \t")
	t = strings.TrimPrefix(t, "|")
	t = strings.TrimSuffix(t, "|")
	return strings.Split(t, "|")
}
