package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedent(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "common prefix removed",
			in:   "    one\n    two\n",
			want: "one\ntwo\n",
		},
		{
			name: "prefix shrinks to shortest",
			in:   "    one\n  two\n      three\n",
			want: "  one\ntwo\n    three\n",
		},
		{
			name: "already flat",
			in:   "one\ntwo",
			want: "one\ntwo",
		},
		{
			name: "blank lines ignored for prefix",
			in:   "  one\n\n  two\n",
			want: "one\n\ntwo\n",
		},
		{
			name: "no common prefix leaves lines unchanged",
			in:   "\tone\n  two\n",
			want: "\tone\n  two\n", // tab and spaces share no prefix, so nothing is removed
		},
		{
			name: "whitespace-only line shorter than prefix is blanked",
			in:   "    one\n  \n    two\n",
			want: "one\n\ntwo\n",
		},
		{
			name: "empty input",
			in:   "",
			want: "",
		},
		{
			name: "single newline",
			in:   "\n",
			want: "\n",
		},
		{
			name: "mixed tabs and spaces in prefix",
			in:   "\t  one\n\t  two\n",
			want: "one\ntwo\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Dedent(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, Dedent(got), "Dedent must be idempotent")
		})
	}
}

func TestDedent_TrailingNewlinePreserved(t *testing.T) {
	assert.Equal(t, "x\n", Dedent("  x\n"))
	assert.Equal(t, "x", Dedent("  x"))
}

func TestDedent_IdempotentOnArbitraryText(t *testing.T) {
	inputs := []string{
		"  a\n    b\n  c",
		"\t\ta\n\tb",
		"   \n   \n",
		"no indent at all",
		"  only one line  \n",
	}
	for _, in := range inputs {
		once := Dedent(in)
		assert.Equal(t, once, Dedent(once), "input %q", in)
	}
}
