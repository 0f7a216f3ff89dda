// Package gherkin parses plain-text feature documents into the typed,
// position-annotated model in pkg/types.
//
// Parse is the canonical, fallible entry point:
//
//	feature, err := gherkin.Parse(src)
//	if err != nil {
//	    pos := types.ErrorPosition(err)
//	    log.Printf("parse failed at %d:%d: %v", pos.Line, pos.Column, err)
//	}
//
// Parsing is synchronous and side-effect-free: a pure function from one
// in-memory UTF-8 buffer to either a complete *types.Feature or a
// positioned error, never both. Concurrent callers may parse independent
// documents with no coordination. File loading and argument handling are
// collaborators outside this package; see internal/loader.
package gherkin

import (
	"github.com/featlang/featherkin/internal/builder"
	"github.com/featlang/featherkin/internal/grammar"
	"github.com/featlang/featherkin/pkg/types"
)

// Parse converts one feature document to its typed model. On malformed
// input it returns a *types.SyntaxError, *types.ContextError, or
// *types.BuildError; no partial document is returned.
func Parse(src string) (*types.Feature, error) {
	root, err := grammar.Parse(src)
	if err != nil {
		return nil, err
	}
	return builder.Build(root)
}

// MustParse is Parse for call sites that have already validated their
// input. It panics on malformed input; Parse is the canonical contract.
func MustParse(src string) *types.Feature {
	feature, err := Parse(src)
	if err != nil {
		panic(err)
	}
	return feature
}

// Dedent exposes the text normalizer used for descriptions and doc
// strings: it removes the longest whitespace prefix common to all
// non-blank lines. Dedent is idempotent and preserves a trailing newline.
func Dedent(s string) string {
	return builder.Dedent(s)
}
