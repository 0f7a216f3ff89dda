//go:build !cgosqlite
// +build !cgosqlite

package storage

// This file is compiled when building without the cgosqlite tag. It uses
// a pure Go SQLite implementation: no C compiler required,
// cross-compilation stays trivial.
//
// Driver used: modernc.org/sqlite

import (
	_ "modernc.org/sqlite"
)

const (
	// DriverName is the SQLite driver to use
	DriverName = "sqlite"

	// BuildMode describes the current build configuration
	BuildMode = "purego"
)
