package loader

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/featlang/featherkin/internal/storage"
	"github.com/featlang/featherkin/pkg/types"
)

const validFeature = "Feature: Sample\nScenario: Works\n  Given a precondition\n"

func writeFeature(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func newTestCache(t *testing.T) *storage.Cache {
	t.Helper()
	cache, err := storage.NewCache(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = cache.Close() })
	return cache
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	writeFeature(t, dir, "a.feature", validFeature)
	writeFeature(t, dir, "nested/b.feature", validFeature)
	writeFeature(t, dir, "nested/readme.txt", "not a feature")
	writeFeature(t, dir, ".hidden/c.feature", validFeature)

	paths, err := Discover(dir)
	require.NoError(t, err)
	require.Len(t, paths, 2)
	assert.Equal(t, filepath.Join(dir, "a.feature"), paths[0])
	assert.Equal(t, filepath.Join(dir, "nested", "b.feature"), paths[1])
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFeature(t, dir, "a.feature", validFeature)

	l := New(nil)
	feature, err := l.LoadFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "Sample", feature.Name)
}

func TestLoadFile_ParseErrorCarriesPosition(t *testing.T) {
	dir := t.TempDir()
	path := writeFeature(t, dir, "bad.feature", "not a feature at all\n")

	l := New(nil)
	_, err := l.LoadFile(context.Background(), path)
	require.Error(t, err)

	var syntaxErr *types.SyntaxError
	require.True(t, errors.As(err, &syntaxErr))
	assert.Equal(t, types.Position{Line: 1, Column: 1}, syntaxErr.Pos)
}

func TestLoadDir_MixedOutcomes(t *testing.T) {
	dir := t.TempDir()
	writeFeature(t, dir, "good.feature", validFeature)
	writeFeature(t, dir, "bad.feature", "Feature: broken\n")
	writeFeature(t, dir, "nested/more.feature", validFeature)

	l := New(nil)
	summary, err := l.LoadDir(context.Background(), dir, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Loaded)
	assert.Equal(t, 1, summary.Failed)
	require.Len(t, summary.Results, 3)

	// Results stay aligned with the sorted discovery order.
	assert.Error(t, summary.Results[0].Err, "bad.feature sorts first")
	assert.NoError(t, summary.Results[1].Err)
	assert.NoError(t, summary.Results[2].Err)
}

func TestLoadDir_CacheHitsOnSecondLoad(t *testing.T) {
	dir := t.TempDir()
	writeFeature(t, dir, "a.feature", validFeature)
	writeFeature(t, dir, "b.feature", validFeature)

	l := New(newTestCache(t))

	first, err := l.LoadDir(context.Background(), dir, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, first.FromCache)
	assert.Equal(t, 2, first.Loaded)

	second, err := l.LoadDir(context.Background(), dir, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, second.FromCache)
	assert.Equal(t, 2, second.Loaded)

	for _, res := range second.Results {
		require.NoError(t, res.Err)
		assert.Equal(t, "Sample", res.Feature.Name)
	}
}

func TestLoadDir_EditedFileIsReparsed(t *testing.T) {
	dir := t.TempDir()
	path := writeFeature(t, dir, "a.feature", validFeature)

	l := New(newTestCache(t))

	_, err := l.LoadDir(context.Background(), dir, nil)
	require.NoError(t, err)

	edited := "Feature: Edited\nScenario: Works\n  Given a precondition\n"
	require.NoError(t, os.WriteFile(path, []byte(edited), 0644))

	summary, err := l.LoadDir(context.Background(), dir, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.FromCache)
	assert.Equal(t, "Edited", summary.Results[0].Feature.Name)
}

func TestLoadDir_WorkerConfig(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a", "b", "c", "d"} {
		writeFeature(t, dir, name+".feature", validFeature)
	}

	l := New(nil)
	summary, err := l.LoadDir(context.Background(), dir, &Config{Workers: 1})
	require.NoError(t, err)
	assert.Equal(t, 4, summary.Loaded)
}
