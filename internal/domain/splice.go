package domain

import (
	"strings"

	m "github.com/mouse-blink/splice/internal/model"
)

// Splice returns a copy of doc where lines [region.Start, region.End) are
// replaced by block, inserted as a single line entry terminated with the
// document's line ending. The result has doc.Len() - region.Len() + 1 lines.
// An empty region inserts the block without removing anything.
func Splice(doc m.Document, region m.Region, block m.ReplacementBlock) (m.Document, error) {
	n := doc.Len()
	if !region.Valid(n) {
		return m.Document{}, &InvalidRegionError{Region: region, Len: n}
	}

	ending := doc.LineEnding()

	lines := make([]string, 0, n-region.Len()+1)
	lines = append(lines, doc.Lines[:region.Start]...)

	// An unterminated last line would otherwise fuse with the block.
	if k := len(lines) - 1; k >= 0 && !strings.HasSuffix(lines[k], "\n") {
		lines[k] += ending
	}

	lines = append(lines, block.Unit(ending))
	lines = append(lines, doc.Lines[region.End:]...)

	out := doc
	out.Lines = lines

	return out, nil
}
