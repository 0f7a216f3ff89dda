// Package loader reads feature files from disk and parses them into the
// document model, concurrently and through the parse cache.
//
// The parser core takes an in-memory buffer and nothing else; all file
// I/O lives here. LoadDir walks a directory tree for *.feature files and
// fans the parses out over a bounded worker group. Each file's outcome is
// its own Result: a malformed file reports a positioned error without
// failing the rest of the load.
//
//	l := loader.New(cache)
//	summary, err := l.LoadDir(ctx, "./features", nil)
//	for _, res := range summary.Results {
//	    if res.Err != nil {
//	        log.Printf("%v", res.Err)
//	    }
//	}
//
// When a cache is configured, files are keyed by path and SHA-256 content
// hash; an unchanged file is served from the cache without reparsing.
package loader
