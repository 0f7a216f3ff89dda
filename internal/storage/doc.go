// Package storage provides SQLite-based caching of parsed documents.
//
// The cache maps a source file path to its parsed document, guarded by a
// SHA-256 hash of the file content: a lookup only succeeds when the hash
// still matches, so an edited file is reparsed and a stale entry is
// replaced on the next Put.
//
// # Basic Usage
//
//	cache, err := storage.NewCache("~/.featherkin/cache.db")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer cache.Close()
//
//	feature, err := cache.Get(ctx, path, hash)
//	switch {
//	case err == nil:
//	    // cache hit
//	case errors.Is(err, storage.ErrNotFound), errors.Is(err, storage.ErrStale):
//	    // parse, then cache.Put(ctx, path, hash, feature)
//	}
//
// # Drivers
//
// The SQLite driver is selected at build time: the default build uses the
// pure Go modernc.org/sqlite driver, and the cgosqlite tag switches to
// github.com/mattn/go-sqlite3. See build_purego.go and build_cgo.go.
//
// # Schema
//
// One table, documents, holds the JSON-serialized document model along
// with its path, content hash, and summary columns for stats queries.
// Migrations are versioned and applied on open.
package storage
