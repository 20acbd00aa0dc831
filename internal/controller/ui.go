// Package controller provides output adapters for displaying splice plans and results.
package controller

import (
	m "github.com/mouse-blink/splice/internal/model"
)

// UI defines the interface for reporting splice progress to the user.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	// DisplayPlans shows resolved regions, or the error that stopped resolution.
	DisplayPlans(plans []m.Plan, err error) error
	// DisplayOutcomes shows what happened to each file.
	DisplayOutcomes(outcomes []m.Outcome, err error) error
	// DisplayReports shows previously saved reports.
	DisplayReports(reports []m.Report, err error) error
	// Confirm asks whether the outcome's diff should be written.
	Confirm(outcome m.Outcome) (bool, error)
}
