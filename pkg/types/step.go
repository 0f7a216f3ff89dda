package types

// StepType is the semantic kind of a step after "And"/"But" have been
// resolved against the preceding step
type StepType string

const (
	StepGiven StepType = "Given"
	StepWhen  StepType = "When"
	StepThen  StepType = "Then"
)

// String returns the canonical keyword for the step type
func (t StepType) String() string {
	return string(t)
}

// Step is one line of behavior description
type Step struct {
	// Type is the resolved kind; continuation keywords never appear here
	Type StepType
	// RawKeyword is the keyword as written, including "And" and "But"
	RawKeyword string
	// Text is the free text after the keyword
	Text string

	// At most one of these is set; the grammar makes them mutually exclusive
	DocString *string
	Table     *Table

	// Location of the step keyword
	Pos Position
}

// Doc returns the step's indentation-normalized doc string, if present
func (s *Step) Doc() (string, bool) {
	if s.DocString == nil {
		return "", false
	}
	return *s.DocString, true
}

// DataTable returns the step's data table, if present
func (s *Step) DataTable() (*Table, bool) {
	if s.Table == nil {
		return nil, false
	}
	return s.Table, true
}

// String renders the step as it was written, for diagnostics and logging.
// It does not round-trip attached doc strings or tables.
func (s *Step) String() string {
	return s.RawKeyword + " " + s.Text
}
