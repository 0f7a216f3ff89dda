package loader

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/featlang/featherkin/internal/storage"
	"github.com/featlang/featherkin/pkg/gherkin"
	"github.com/featlang/featherkin/pkg/types"
)

// Loader reads feature files from disk and parses them, consulting the
// cache so unchanged files skip the parse
type Loader struct {
	cache   *storage.Cache // nil disables caching
	workers int
}

// Config contains configuration for a load
type Config struct {
	Workers int // Number of concurrent workers (default: runtime.NumCPU())
}

// Result is the outcome for one file. Exactly one of Feature/Err is set.
type Result struct {
	Path      string
	Feature   *types.Feature
	Err       error
	FromCache bool
}

// Summary aggregates a whole load
type Summary struct {
	Results   []Result
	Loaded    int
	FromCache int
	Failed    int
	Duration  time.Duration
}

// New creates a Loader. A nil cache is valid and disables caching.
func New(cache *storage.Cache) *Loader {
	return &Loader{
		cache:   cache,
		workers: runtime.NumCPU(),
	}
}

// Discover returns the paths of all *.feature files under root, sorted.
// Hidden directories are skipped.
func Discover(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if name := d.Name(); name != "." && strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(d.Name(), ".feature") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}
	sort.Strings(paths)
	return paths, nil
}

// LoadDir discovers and parses every feature file under root. Parse
// failures are per-file results, not a load failure; only I/O against
// root itself or context cancellation abort the load.
func (l *Loader) LoadDir(ctx context.Context, root string, config *Config) (*Summary, error) {
	workers := l.workers
	if config != nil && config.Workers > 0 {
		workers = config.Workers
	}

	paths, err := Discover(root)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	results := make([]Result, len(paths))
	var loaded, cached, failed int32

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res := l.loadFile(gctx, path)
			switch {
			case res.Err != nil:
				atomic.AddInt32(&failed, 1)
			case res.FromCache:
				atomic.AddInt32(&cached, 1)
				atomic.AddInt32(&loaded, 1)
			default:
				atomic.AddInt32(&loaded, 1)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Summary{
		Results:   results,
		Loaded:    int(loaded),
		FromCache: int(cached),
		Failed:    int(failed),
		Duration:  time.Since(start),
	}, nil
}

// LoadFile parses a single feature file, going through the cache when
// one is configured
func (l *Loader) LoadFile(ctx context.Context, path string) (*types.Feature, error) {
	res := l.loadFile(ctx, path)
	if res.Err != nil {
		return nil, res.Err
	}
	return res.Feature, nil
}

func (l *Loader) loadFile(ctx context.Context, path string) Result {
	res := Result{Path: path}

	content, err := os.ReadFile(path)
	if err != nil {
		res.Err = fmt.Errorf("failed to read %s: %w", path, err)
		return res
	}
	hash := sha256.Sum256(content)

	if l.cache != nil {
		feature, err := l.cache.Get(ctx, path, hash)
		if err == nil {
			res.Feature = feature
			res.FromCache = true
			return res
		}
		if !errors.Is(err, storage.ErrNotFound) && !errors.Is(err, storage.ErrStale) {
			res.Err = err
			return res
		}
	}

	feature, err := gherkin.Parse(string(content))
	if err != nil {
		res.Err = fmt.Errorf("%s: %w", path, err)
		return res
	}
	res.Feature = feature

	if l.cache != nil {
		// A cache write failure does not invalidate the parse.
		_ = l.cache.Put(ctx, path, hash, feature)
	}
	return res
}
