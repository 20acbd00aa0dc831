package model

import "strings"

// Anchor is a literal substring that marks a structurally significant line.
type Anchor string

// In reports whether line contains the anchor. Matching is case-sensitive
// containment; an empty anchor never matches.
func (a Anchor) In(line string) bool {
	if a == "" {
		return false
	}

	return strings.Contains(line, string(a))
}

// Region is the half-open line range [Start, End).
type Region struct {
	Start int
	End   int
}

// Len returns the number of lines covered by the region.
func (r Region) Len() int {
	return r.End - r.Start
}

// Empty reports whether the region covers no line.
func (r Region) Empty() bool {
	return r.Start == r.End
}

// Valid reports whether 0 <= Start <= End <= n.
func (r Region) Valid(n int) bool {
	return r.Start >= 0 && r.Start <= r.End && r.End <= n
}

// ReplacementBlock is the literal text substituted for a region as one unit.
type ReplacementBlock struct {
	Text string
}

// Unit returns the block text terminated with lineEnding.
func (b ReplacementBlock) Unit(lineEnding string) string {
	if strings.HasSuffix(b.Text, "\n") {
		return b.Text
	}

	return b.Text + lineEnding
}

// MatchRole names what a resolved anchor was used for.
type MatchRole string

const (
	// RoleAfter is the anchor the start search begins from.
	RoleAfter MatchRole = "after"
	// RoleStart is the start anchor.
	RoleStart MatchRole = "start"
	// RoleStop is the next-section anchor bounding the end search.
	RoleStop MatchRole = "stop"
	// RoleClosing is a closing delimiter consumed by the backward scan.
	RoleClosing MatchRole = "closing"
	// RoleBalance is the unmatched closing token found by the depth counter.
	RoleBalance MatchRole = "balance"
)

// Match is one anchor resolved to a line.
type Match struct {
	Role   MatchRole
	Anchor Anchor
	Line   int
}

// Resolution is the outcome of locating a recipe's anchors in a document.
type Resolution struct {
	Region       Region
	StartLine    int // line holding the start anchor
	BoundaryLine int // line the end resolved to, before End.Include is applied
	Matches      []Match
}
