package builder

import "strings"

// Dedent removes the longest whitespace prefix common to all non-blank
// lines of s. A line that does not start with that prefix is blanked
// rather than left alone, so the result is always uniformly shifted.
// Dedent is idempotent and preserves whether s ends with a newline.
func Dedent(s string) string {
	lines := splitLines(s)

	prefix, found := "", false
	for _, l := range lines {
		if isBlank(l) {
			continue
		}
		ws := leadingWhitespace(l)
		if !found {
			prefix, found = ws, true
			continue
		}
		prefix = commonPrefix(prefix, ws)
	}

	out := make([]string, len(lines))
	for i, l := range lines {
		switch {
		case strings.HasPrefix(l, prefix):
			out[i] = l[len(prefix):]
		default:
			out[i] = ""
		}
	}

	result := strings.Join(out, "\n")
	if strings.HasSuffix(s, "\n") {
		result += "\n"
	}
	return result
}

// splitLines splits on newlines without producing a phantom final line
// for a trailing newline
func splitLines(s string) []string {
	lines := strings.Split(s, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" && strings.HasSuffix(s, "\n") {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func leadingWhitespace(s string) string {
	return s[:len(s)-len(strings.TrimLeft(s, " \t"))]
}

// commonPrefix returns the longest leading substring shared by a and b
func commonPrefix(a, b string) string {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return a[:i]
		}
	}
	return a[:n]
}
