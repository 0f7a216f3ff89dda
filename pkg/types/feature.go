package types

// Position represents a location in a feature document, counted from (1,1).
// It points at the first character of the construct's introducing keyword.
type Position struct {
	Line   int
	Column int
}

// Feature is the top-level result of parsing one feature document
type Feature struct {
	// Identification
	Name string

	// Content
	Description string // Dedented free text between the header and the first section; empty when absent
	Background  *Background
	Scenarios   []Scenario

	// Tags are stored without the leading "@" marker. Nil when the
	// feature carries no tag line, never an empty non-nil slice.
	Tags []string

	// Location of the "Feature:" keyword
	Pos Position
}

// Background is a shared step sequence implicitly prefixed to every
// scenario in the document
type Background struct {
	Steps []Step
	Pos   Position
}

// Scenario is a named, ordered step sequence, optionally parameterized
// by an examples table
type Scenario struct {
	Name     string
	Steps    []Step
	Examples *Examples
	Tags     []string
	Pos      Position
}

// Examples holds the parameter table for a scenario outline
type Examples struct {
	Table Table
	Tags  []string
	Pos   Position
}

// Table is a rectangular grid of string cells with a header row.
// Every row has exactly len(Header) cells.
type Table struct {
	Header []string
	Rows   [][]string
	Pos    Position
}
