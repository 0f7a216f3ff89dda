// Package grammar matches plain-text feature documents against the
// feature-document grammar and produces a generic, labeled parse tree.
//
// The engine is a line scanner plus a recursive-descent parser. The
// scanner classifies each physical line (section header, step, tag line,
// table row, doc-string delimiter, comment, blank, free text); the parser
// consumes the classified lines top-down and emits Nodes labeled with the
// grammar rule they matched, each carrying its matched text span and the
// (line, column) of its first significant character.
//
// # Document shape
//
//	main        = tags? feature_kw feature_body feature_description?
//	              background? scenario+ EOF
//	background  = background_kw step*
//	scenario    = scenario_kw scenario_name step+ examples?
//	step        = step_kw step_body (docstring | datatable)?
//	datatable   = table_header table_row*
//	examples    = tags? examples_kw datatable
//
// Comments ("#"-prefixed lines) and blank lines carry no semantic content
// and are skipped wherever whitespace is permitted. Doc-string bodies are
// the one exception: between their delimiters every line is taken
// verbatim.
//
// # Failure
//
// Parsing is all-or-nothing. The first line that fits no alternative at
// its position terminates the parse with a *types.SyntaxError carrying
// that position and the alternatives that were tried there; no partial
// tree is ever returned.
//
// Parsing is a pure function of its input: no state is shared between
// calls, and concurrent callers need no coordination.
package grammar
