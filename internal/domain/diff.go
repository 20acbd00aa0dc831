package domain

import (
	"slices"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	m "github.com/mouse-blink/splice/internal/model"
)

const diffContext = 3

const noNewlineMarker = "\\ No newline at end of file\n"

// Diff renders a unified diff between two versions of a document. It returns
// an empty string when the texts are identical.
func Diff(before, after m.Document) (string, error) {
	if before.Text() == after.Text() {
		return "", nil
	}

	name := string(before.Path)

	a, b := physicalLines(before), physicalLines(after)
	if slices.Equal(a, b) {
		a, b = markedLines(before), markedLines(after)
	}

	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        a,
		B:        b,
		FromFile: "a/" + strings.TrimPrefix(name, "/"),
		ToFile:   "b/" + strings.TrimPrefix(name, "/"),
		Context:  diffContext,
	})
}

// physicalLines re-splits the text, since a spliced block is one entry
// spanning several lines, and normalizes terminators to "\n".
func physicalLines(doc m.Document) []string {
	lines := m.SplitLines(doc.Text())
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = m.TrimLineEnding(line) + "\n"
	}

	return out
}

// markedLines is used when texts differ only in line endings: a carriage
// return is shown as a literal \r and a missing final newline is noted.
func markedLines(doc m.Document) []string {
	lines := m.SplitLines(doc.Text())
	out := make([]string, 0, len(lines)+1)
	for _, line := range lines {
		switch {
		case strings.HasSuffix(line, "\r\n"):
			out = append(out, strings.TrimSuffix(line, "\r\n")+`\r`+"\n")
		case strings.HasSuffix(line, "\n"):
			out = append(out, line)
		default:
			out = append(out, line+"\n", noNewlineMarker)
		}
	}

	return out
}
