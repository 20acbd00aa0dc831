package model

import "time"

// Plan is one recipe resolved against a document.
type Plan struct {
	Recipe     Recipe
	Resolution Resolution
	Removed    []string // lines leaving the document, without terminators
	Boundary   string   // boundary line, without terminator; empty at end of document
}

// Status describes what happened to a file.
type Status string

const (
	// StatusApplied means the file was rewritten.
	StatusApplied Status = "applied"
	// StatusDryRun means the change was computed but not written.
	StatusDryRun Status = "dry-run"
	// StatusDeclined means the change was rejected during review.
	StatusDeclined Status = "declined"
	// StatusUnchanged means the replacement produced identical text.
	StatusUnchanged Status = "unchanged"
)

// Outcome holds the result of applying every recipe that targets one file.
type Outcome struct {
	File       Path
	Plans      []Plan
	Diff       string
	Status     Status
	BeforeHash string
	AfterHash  string
}

// RegionReport is the persisted form of one resolved recipe.
type RegionReport struct {
	Recipe string
	Start  int
	End    int
}

// Report is the persisted record of an Outcome.
type Report struct {
	File       Path
	Status     Status
	Regions    []RegionReport
	BeforeHash string
	AfterHash  string
	Time       time.Time
}

// NewReport builds a Report from an outcome.
func NewReport(outcome Outcome, at time.Time) Report {
	regions := make([]RegionReport, 0, len(outcome.Plans))
	for _, plan := range outcome.Plans {
		regions = append(regions, RegionReport{
			Recipe: plan.Recipe.Name,
			Start:  plan.Resolution.Region.Start,
			End:    plan.Resolution.Region.End,
		})
	}

	return Report{
		File:       outcome.File,
		Status:     outcome.Status,
		Regions:    regions,
		BeforeHash: outcome.BeforeHash,
		AfterHash:  outcome.AfterHash,
		Time:       at,
	}
}
