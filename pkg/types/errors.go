package types

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors for model validation
var (
	// ErrRaggedTable is wrapped by a BuildError when a table row's width
	// differs from the header's
	ErrRaggedTable = errors.New("table row width differs from header")
	// ErrNoStepContext is wrapped by a ContextError when a continuation
	// keyword has no preceding step
	ErrNoStepContext = errors.New("continuation keyword without a preceding step")
)

// SyntaxError reports the first construct that matched no grammar
// alternative. Parsing stops at the first such construct; no partial
// document is produced.
type SyntaxError struct {
	Pos Position
	// Expected lists the grammar alternatives that could have matched
	// at Pos, in the order they were tried
	Expected []string
}

func (e *SyntaxError) Error() string {
	if len(e.Expected) == 0 {
		return fmt.Sprintf("%d:%d: syntax error", e.Pos.Line, e.Pos.Column)
	}
	return fmt.Sprintf("%d:%d: expected %s", e.Pos.Line, e.Pos.Column, strings.Join(e.Expected, " or "))
}

// ContextError reports an "And" or "But" step with no preceding step to
// inherit a kind from
type ContextError struct {
	Pos     Position
	Keyword string
}

func (e *ContextError) Error() string {
	return fmt.Sprintf("%d:%d: %q has no preceding step to resolve against", e.Pos.Line, e.Pos.Column, e.Keyword)
}

func (e *ContextError) Unwrap() error {
	return ErrNoStepContext
}

// BuildError reports a document that parsed but could not be assembled
// into the model, such as a ragged table. It is distinct from
// SyntaxError: the input matched the grammar but broke a shape invariant.
type BuildError struct {
	Pos Position
	Msg string
	Err error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Pos.Line, e.Pos.Column, e.Msg)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

// ErrorPosition extracts the (line, column) from any parse error
// produced by this module. It returns (0,0) for foreign errors.
func ErrorPosition(err error) Position {
	var se *SyntaxError
	if errors.As(err, &se) {
		return se.Pos
	}
	var ce *ContextError
	if errors.As(err, &ce) {
		return ce.Pos
	}
	var be *BuildError
	if errors.As(err, &be) {
		return be.Pos
	}
	return Position{}
}
