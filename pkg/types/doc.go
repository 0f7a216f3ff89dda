// Package types provides the feature-document model shared across featherkin.
//
// A Feature is the typed, position-annotated result of parsing one plain-text
// feature document. Every entity carries the (line, column) of its introducing
// keyword, counted from (1,1):
//
//	feature := &types.Feature{
//	    Name: "Checkout",
//	    Pos:  types.Position{Line: 1, Column: 1},
//	}
//
// # Optional fields
//
// Absent and empty are distinct: a feature with no tag line has Tags == nil,
// and a step without a doc string has DocString == nil. Tags are stored
// without their "@" marker.
//
// # Steps
//
// A Step records both the keyword as written (RawKeyword, which may be "And"
// or "But") and the resolved semantic kind (Type, always one of Given/When/
// Then). Continuation keywords are resolved against the nearest preceding
// step before the model is built, so Type never holds a continuation.
//
// # Errors
//
// Three error types cover every way a parse can fail:
//
//	*SyntaxError  — the input matched no grammar alternative at a position
//	*ContextError — "And"/"But" appeared with no preceding step
//	*BuildError   — the input parsed but broke a shape invariant (ragged table)
//
// All three carry a Position; ErrorPosition extracts it uniformly:
//
//	doc, err := gherkin.Parse(src)
//	if err != nil {
//	    pos := types.ErrorPosition(err)
//	    fmt.Printf("parse failed at %d:%d\n", pos.Line, pos.Column)
//	}
//
// Values in this package are immutable by convention: they are constructed
// once during the build pass and never mutated afterward.
package types
