package builder

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/featlang/featherkin/internal/grammar"
	"github.com/featlang/featherkin/pkg/types"
)

func TestResolveStepType(t *testing.T) {
	given := types.StepGiven
	when := types.StepWhen

	tests := []struct {
		keyword string
		context *types.StepType
		want    types.StepType
	}{
		{"Given", nil, types.StepGiven},
		{"When", nil, types.StepWhen},
		{"Then", nil, types.StepThen},
		{"And", &given, types.StepGiven},
		{"But", &when, types.StepWhen},
		// Direct keywords ignore context entirely.
		{"Then", &given, types.StepThen},
	}

	for _, tt := range tests {
		t.Run(tt.keyword, func(t *testing.T) {
			got, err := resolveStepType(tt.keyword, tt.context, types.Position{Line: 1, Column: 1})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveStepType_ContinuationWithoutContext(t *testing.T) {
	for _, kw := range []string{"And", "But"} {
		_, err := resolveStepType(kw, nil, types.Position{Line: 3, Column: 5})
		require.Error(t, err)

		var ctxErr *types.ContextError
		require.True(t, errors.As(err, &ctxErr))
		assert.Equal(t, types.Position{Line: 3, Column: 5}, ctxErr.Pos)
		assert.Equal(t, kw, ctxErr.Keyword)
		assert.True(t, errors.Is(err, types.ErrNoStepContext))
	}
}

func parseSteps(t *testing.T, src string) ([]types.Step, error) {
	t.Helper()
	root, err := grammar.Parse(src)
	require.NoError(t, err)
	scenario := root.ChildrenOf(grammar.RuleScenario)[0]
	return buildSteps(scenario.Child(grammar.RuleSteps))
}

func TestBuildSteps_KindResolution(t *testing.T) {
	tests := []struct {
		name  string
		steps string
		want  []types.StepType
	}{
		{
			name:  "continuations inherit given",
			steps: "  Given a\n  And b\n  And c\n",
			want:  []types.StepType{types.StepGiven, types.StepGiven, types.StepGiven},
		},
		{
			name:  "but inherits the nearest kind",
			steps: "  Given a\n  When b\n  But c\n",
			want:  []types.StepType{types.StepGiven, types.StepWhen, types.StepWhen},
		},
		{
			name:  "full ladder",
			steps: "  Given a\n  And b\n  When c\n  Then d\n  But e\n",
			want:  []types.StepType{types.StepGiven, types.StepGiven, types.StepWhen, types.StepThen, types.StepThen},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			steps, err := parseSteps(t, "Feature: f\nScenario: s\n"+tt.steps)
			require.NoError(t, err)
			require.Len(t, steps, len(tt.want))
			for i, want := range tt.want {
				assert.Equal(t, want, steps[i].Type, "step %d", i)
			}
		})
	}
}

func TestBuildSteps_LeadingContinuationFails(t *testing.T) {
	_, err := parseSteps(t, "Feature: f\nScenario: s\n  And nothing before me\n")
	require.Error(t, err)

	var ctxErr *types.ContextError
	require.True(t, errors.As(err, &ctxErr))
	assert.Equal(t, "And", ctxErr.Keyword)
	assert.Equal(t, types.Position{Line: 3, Column: 3}, ctxErr.Pos)
}

func TestBuildSteps_RawKeywordSurvivesResolution(t *testing.T) {
	steps, err := parseSteps(t, "Feature: f\nScenario: s\n  Given a\n  And b\n")
	require.NoError(t, err)
	require.Len(t, steps, 2)

	assert.Equal(t, "And", steps[1].RawKeyword)
	assert.Equal(t, types.StepGiven, steps[1].Type)
	assert.Equal(t, "And b", steps[1].String())
}

func TestBuildStep_DocString(t *testing.T) {
	src := "Feature: f\nScenario: s\n" +
		"  Given a payload\n" +
		"    \"\"\"\n" +
		"    first\n" +
		"\n" +
		"      indented\n" +
		"    \"\"\"\n"

	steps, err := parseSteps(t, src)
	require.NoError(t, err)
	require.Len(t, steps, 1)

	doc, ok := steps[0].Doc()
	require.True(t, ok)
	assert.Equal(t, "first\n\n  indented", doc)

	_, hasTable := steps[0].DataTable()
	assert.False(t, hasTable)
}

func TestBuildStep_DataTable(t *testing.T) {
	src := "Feature: f\nScenario: s\n" +
		"  Given a lookup\n" +
		"    | a | b |\n" +
		"    | 1 | 2 |\n"

	steps, err := parseSteps(t, src)
	require.NoError(t, err)
	require.Len(t, steps, 1)

	table, ok := steps[0].DataTable()
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, table.Header)
	assert.Equal(t, [][]string{{"1", "2"}}, table.Rows)

	_, hasDoc := steps[0].Doc()
	assert.False(t, hasDoc)
}
