// Package builder assembles the typed document model from the generic
// parse tree produced by the grammar engine.
//
// The build is a single top-down pass over the tree's children,
// dispatching on each node's rule. Two helpers do the real work:
//
//   - Dedent strips the common leading-whitespace prefix from multi-line
//     text, used for feature descriptions and step doc strings. It is
//     idempotent and preserves a trailing newline.
//   - The step-sequence fold resolves "And"/"But" to the kind of the
//     nearest preceding step, threading the current kind through the pass
//     as an explicit accumulator.
//
// The builder validates shape invariants the grammar cannot express: a
// table row whose width differs from its header fails with a
// *types.BuildError, and a continuation keyword opening a sequence fails
// with a *types.ContextError. Every such condition is a returned error;
// the builder never panics on a malformed tree.
package builder
