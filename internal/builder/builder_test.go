package builder

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/featlang/featherkin/internal/grammar"
	"github.com/featlang/featherkin/pkg/types"
)

func build(t *testing.T, src string) (*types.Feature, error) {
	t.Helper()
	root, err := grammar.Parse(src)
	require.NoError(t, err)
	return Build(root)
}

func TestBuild_Minimal(t *testing.T) {
	feature, err := build(t, "Feature: Sample\nScenario: Works\n  Given a\n")
	require.NoError(t, err)

	assert.Equal(t, "Sample", feature.Name)
	assert.Empty(t, feature.Description)
	assert.Nil(t, feature.Tags)
	assert.Nil(t, feature.Background)
	assert.Equal(t, types.Position{Line: 1, Column: 1}, feature.Pos)
	require.Len(t, feature.Scenarios, 1)
	assert.Equal(t, "Works", feature.Scenarios[0].Name)
}

func TestBuild_DescriptionKeptWhenNonEmpty(t *testing.T) {
	feature, err := build(t, "Feature: f\n  Explains the point\n  of it all.\nScenario: s\n  Given a\n")
	require.NoError(t, err)

	assert.Equal(t, "Explains the point\nof it all.", feature.Description)
}

func TestBuild_TagsStoredWithoutMarker(t *testing.T) {
	feature, err := build(t, "@wip @slow\n@wip\nFeature: f\nScenario: s\n  Given a\n")
	require.NoError(t, err)

	// Order preserved, duplicates dropped, "@" stripped.
	assert.Equal(t, []string{"wip", "slow"}, feature.Tags)
}

func TestBuild_Background(t *testing.T) {
	feature, err := build(t, "Feature: f\nBackground:\n  Given shared\n  And more\nScenario: s\n  When acted\n")
	require.NoError(t, err)

	require.NotNil(t, feature.Background)
	assert.Equal(t, types.Position{Line: 2, Column: 1}, feature.Background.Pos)
	require.Len(t, feature.Background.Steps, 2)
	assert.Equal(t, types.StepGiven, feature.Background.Steps[1].Type)
}

func TestBuild_BackgroundMayBeEmpty(t *testing.T) {
	feature, err := build(t, "Feature: f\nBackground:\nScenario: s\n  Given a\n")
	require.NoError(t, err)

	require.NotNil(t, feature.Background)
	assert.Empty(t, feature.Background.Steps)
}

func TestBuild_StepContextDoesNotCrossSequences(t *testing.T) {
	// The background ends in a resolved kind, but the scenario's own
	// sequence starts fresh: a leading "And" there has no antecedent.
	_, err := build(t, "Feature: f\nBackground:\n  Given shared\nScenario: s\n  And dangling\n")
	require.Error(t, err)

	var ctxErr *types.ContextError
	require.True(t, errors.As(err, &ctxErr))
	assert.Equal(t, types.Position{Line: 5, Column: 3}, ctxErr.Pos)
}

func TestBuild_Examples(t *testing.T) {
	src := "Feature: f\n" +
		"Scenario Outline: out\n" +
		"  When I add <x>\n" +
		"  @smoke\n" +
		"  Examples:\n" +
		"    | x | y |\n" +
		"    | 1 | 2 |\n"

	feature, err := build(t, src)
	require.NoError(t, err)

	ex := feature.Scenarios[0].Examples
	require.NotNil(t, ex)
	assert.Equal(t, []string{"smoke"}, ex.Tags)
	assert.Equal(t, types.Position{Line: 5, Column: 3}, ex.Pos)
	assert.Equal(t, []string{"x", "y"}, ex.Table.Header)
	assert.Equal(t, [][]string{{"1", "2"}}, ex.Table.Rows)
}

func TestBuild_TableCellsTrimmed(t *testing.T) {
	src := "Feature: f\nScenario: s\n" +
		"  Given data\n" +
		"    |  padded  | cells |\n" +
		"    |  1 |2|\n"

	feature, err := build(t, src)
	require.NoError(t, err)

	table := feature.Scenarios[0].Steps[0].Table
	require.NotNil(t, table)
	assert.Equal(t, []string{"padded", "cells"}, table.Header)
	assert.Equal(t, [][]string{{"1", "2"}}, table.Rows)
}

func TestBuild_RaggedTableRejected(t *testing.T) {
	src := "Feature: f\nScenario: s\n" +
		"  Given data\n" +
		"    | a | b |\n" +
		"    | 1 |\n"

	_, err := build(t, src)
	require.Error(t, err)

	var buildErr *types.BuildError
	require.True(t, errors.As(err, &buildErr))
	assert.True(t, errors.Is(err, types.ErrRaggedTable))
	assert.Equal(t, types.Position{Line: 5, Column: 5}, buildErr.Pos)
}

func TestBuild_RectangularInvariant(t *testing.T) {
	src := "Feature: f\nScenario: s\n" +
		"  Given data\n" +
		"    | a | b | c |\n" +
		"    | 1 | 2 | 3 |\n" +
		"    | 4 | 5 | 6 |\n"

	feature, err := build(t, src)
	require.NoError(t, err)

	table := feature.Scenarios[0].Steps[0].Table
	for i, row := range table.Rows {
		assert.Len(t, row, len(table.Header), "row %d", i)
	}
}
