// Package domain contains the anchor locator, the region splice and the
// workflow that ties them to the filesystem and the UI.
package domain

import (
	"strings"

	m "github.com/mouse-blink/splice/internal/model"
)

// Locator resolves a recipe's anchors to a region of a document.
type Locator interface {
	Locate(doc m.Document, recipe m.Recipe) (m.Resolution, error)
}

type locator struct{}

// NewLocator creates a new Locator instance.
func NewLocator() Locator {
	return &locator{}
}

// Locate resolves the region described by recipe. The document is only read.
//
// The start search begins at the first line containing Start.After (or line 0)
// and takes the first line containing Start.Anchor. The end is bounded by the
// first line after the start containing End.Stop (or the end of the document)
// and is then refined by consuming End.Closings backward, or by the depth
// counter in End.Balance.
func (l *locator) Locate(doc m.Document, recipe m.Recipe) (m.Resolution, error) {
	n := doc.Len()

	var res m.Resolution

	from := 0

	if recipe.Start.After != "" {
		line, err := FindForward(doc, m.RoleAfter, recipe.Start.After, 0, n)
		if err != nil {
			return m.Resolution{}, err
		}

		res.Matches = append(res.Matches, m.Match{Role: m.RoleAfter, Anchor: recipe.Start.After, Line: line})
		from = line
	}

	startLine, err := FindForward(doc, m.RoleStart, recipe.Start.Anchor, from, n)
	if err != nil {
		return m.Resolution{}, err
	}

	res.Matches = append(res.Matches, m.Match{Role: m.RoleStart, Anchor: recipe.Start.Anchor, Line: startLine})
	res.StartLine = startLine
	res.Region.Start = startLine

	if recipe.Start.Keep {
		res.Region.Start++
	}

	limit := n

	if recipe.End.Stop != "" {
		stop, err := FindForward(doc, m.RoleStop, recipe.End.Stop, startLine+1, n)
		if err != nil {
			return m.Resolution{}, err
		}

		res.Matches = append(res.Matches, m.Match{Role: m.RoleStop, Anchor: recipe.End.Stop, Line: stop})
		limit = stop
	}

	boundary := limit

	switch {
	case len(recipe.End.Closings) > 0:
		line, matches, err := ConsumeClosings(doc, limit-1, res.Region.Start, recipe.End.Closings)
		if err != nil {
			return m.Resolution{}, err
		}

		res.Matches = append(res.Matches, matches...)
		boundary = line
	case recipe.End.Balance != nil:
		line, err := FindUnbalanced(doc, res.Region.Start, limit, *recipe.End.Balance)
		if err != nil {
			return m.Resolution{}, err
		}

		res.Matches = append(res.Matches, m.Match{Role: m.RoleBalance, Anchor: m.Anchor(recipe.End.Balance.Close), Line: line})
		boundary = line
	}

	res.BoundaryLine = boundary
	res.Region.End = boundary

	if recipe.End.Include && boundary < n {
		res.Region.End++
	}

	if !res.Region.Valid(n) {
		return m.Resolution{}, &InvalidRegionError{Region: res.Region, Len: n}
	}

	return res, nil
}

// FindForward returns the first line in [from, to) containing anchor.
func FindForward(doc m.Document, role m.MatchRole, anchor m.Anchor, from, to int) (int, error) {
	from = max(from, 0)
	to = min(to, doc.Len())

	for i := from; i < to; i++ {
		if anchor.In(doc.Lines[i]) {
			return i, nil
		}
	}

	return 0, &AnchorNotFoundError{Role: role, Anchor: anchor, From: from, To: to - 1}
}

// FindBackward returns the nearest line at or above from, and not above
// floor, containing anchor.
func FindBackward(doc m.Document, role m.MatchRole, anchor m.Anchor, from, floor int) (int, error) {
	from = min(from, doc.Len()-1)
	floor = max(floor, 0)

	for i := from; i >= floor; i-- {
		if anchor.In(doc.Lines[i]) {
			return i, nil
		}
	}

	return 0, &AnchorNotFoundError{Role: role, Anchor: anchor, From: from, To: floor}
}

// ConsumeClosings walks backward from line from, consuming one line per
// closing delimiter in order. Every step after the first starts one line
// above the previous match, so repeated delimiters resolve to distinct lines.
// It returns the line of the last delimiter consumed.
//
// This approximates nesting without parsing and is only right when the
// document is laid out the way the closings assume.
func ConsumeClosings(doc m.Document, from, floor int, closings []m.Anchor) (int, []m.Match, error) {
	cursor := from
	matches := make([]m.Match, 0, len(closings))

	for i, closing := range closings {
		if i > 0 {
			cursor--
		}

		line, err := FindBackward(doc, m.RoleClosing, closing, cursor, floor)
		if err != nil {
			return 0, nil, err
		}

		matches = append(matches, m.Match{Role: m.RoleClosing, Anchor: closing, Line: line})
		cursor = line
	}

	return cursor, matches, nil
}

// FindUnbalanced counts rule.Open and rule.Close tokens in reading order over
// lines [from, to) and returns the line holding the first closing token that
// has no opening partner inside the range.
func FindUnbalanced(doc m.Document, from, to int, rule m.BalanceRule) (int, error) {
	from = max(from, 0)
	to = min(to, doc.Len())
	depth := 0

	for i := from; i < to; i++ {
		line := doc.Lines[i]

		for pos := 0; pos < len(line); {
			o := indexFrom(line, rule.Open, pos)
			c := indexFrom(line, rule.Close, pos)

			switch {
			case c >= 0 && (o < 0 || c < o || (c == o && len(rule.Close) >= len(rule.Open))):
				depth--
				if depth < 0 {
					return i, nil
				}

				pos = c + len(rule.Close)
			case o >= 0:
				depth++
				pos = o + len(rule.Open)
			default:
				pos = len(line)
			}
		}
	}

	return 0, &AnchorNotFoundError{Role: m.RoleBalance, Anchor: m.Anchor(rule.Close), From: from, To: to - 1}
}

func indexFrom(s, token string, pos int) int {
	if token == "" {
		return -1
	}

	i := strings.Index(s[pos:], token)
	if i < 0 {
		return -1
	}

	return i + pos
}
