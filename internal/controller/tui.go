package controller

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/splice/internal/model"
)

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	accentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	addedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	removedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	hunkStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	headerStyle  = lipgloss.NewStyle().Bold(true)
)

var statusColors = map[m.Status]lipgloss.Color{
	m.StatusApplied:   lipgloss.Color("2"), // Green
	m.StatusDryRun:    lipgloss.Color("11"),
	m.StatusDeclined:  lipgloss.Color("1"), // Red
	m.StatusUnchanged: lipgloss.Color("8"), // Gray
}

// TUI implements UI with Lip Gloss styling, and a Bubble Tea review screen
// for confirmations.
type TUI struct {
	input  io.Reader
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(input io.Reader, output io.Writer) *TUI {
	return &TUI{input: input, output: output}
}

// DisplayPlans prints each resolved region with the anchors that bound it.
func (t *TUI) DisplayPlans(plans []m.Plan, err error) error {
	if err != nil {
		t.println(errorStyle.Render("✗ plan error: ") + err.Error())
		return err
	}

	t.println(titleStyle.Render(fmt.Sprintf("✂ Splice plan: %d region(s)", len(plans))))

	for _, plan := range plans {
		region := plan.Resolution.Region
		t.println(fmt.Sprintf("  %s %s %s",
			accentStyle.Render(plan.Recipe.Name),
			string(plan.Recipe.File),
			dimStyle.Render(fmt.Sprintf("lines %s (-%d)", formatRegion(region), region.Len())),
		))

		for _, match := range plan.Resolution.Matches {
			t.println(dimStyle.Render(fmt.Sprintf("    %-8s %4d  %s", match.Role, match.Line+1, match.Anchor)))
		}
	}

	return nil
}

// DisplayOutcomes prints one status line per file.
func (t *TUI) DisplayOutcomes(outcomes []m.Outcome, err error) error {
	for _, outcome := range outcomes {
		color, ok := statusColors[outcome.Status]
		if !ok {
			color = lipgloss.Color("8")
		}

		status := lipgloss.NewStyle().Foreground(color).Bold(true).Width(10).Render(string(outcome.Status))
		t.println(fmt.Sprintf("%s %s %s",
			status,
			string(outcome.File),
			dimStyle.Render(fmt.Sprintf("%d region(s), -%d line(s)", len(outcome.Plans), removedLines(outcome))),
		))

		if outcome.Status == m.StatusDryRun {
			t.println(colorizeDiff(outcome.Diff))
		}
	}

	if err != nil {
		t.println(errorStyle.Render("✗ splice error: ") + err.Error())
		return err
	}

	if len(outcomes) == 0 {
		t.println(dimStyle.Render("No files changed"))
	}

	return nil
}

// DisplayReports prints stored reports, oldest first.
func (t *TUI) DisplayReports(reports []m.Report, err error) error {
	if err != nil {
		t.println(errorStyle.Render("✗ report error: ") + err.Error())
		return err
	}

	t.println(titleStyle.Render(fmt.Sprintf("Splice reports: %d", len(reports))))

	for _, report := range reports {
		t.println(fmt.Sprintf("  %s %s %s %s",
			dimStyle.Render(report.Time.Format("2006-01-02 15:04:05")),
			accentStyle.Render(string(report.Status)),
			string(report.File),
			dimStyle.Render(shortHash(report.BeforeHash)+" -> "+shortHash(report.AfterHash)),
		))
	}

	return nil
}

// Confirm runs the review screen and reports whether the user accepted.
func (t *TUI) Confirm(outcome m.Outcome) (bool, error) {
	program := tea.NewProgram(
		newReviewModel(outcome),
		tea.WithInput(t.input),
		tea.WithOutput(t.output),
		tea.WithAltScreen(),
	)

	final, err := program.Run()
	if err != nil {
		return false, err
	}

	review, ok := final.(reviewModel)
	if !ok {
		return false, fmt.Errorf("unexpected review model %T", final)
	}

	return review.decision == decisionApply, nil
}

func (t *TUI) println(s string) {
	_, _ = fmt.Fprintln(t.output, s)
}

// colorizeDiff styles unified diff lines by kind.
func colorizeDiff(diff string) string {
	lines := strings.Split(strings.TrimSuffix(diff, "\n"), "\n")

	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			lines[i] = headerStyle.Render(line)
		case strings.HasPrefix(line, "@@"):
			lines[i] = hunkStyle.Render(line)
		case strings.HasPrefix(line, "+"):
			lines[i] = addedStyle.Render(line)
		case strings.HasPrefix(line, "-"):
			lines[i] = removedStyle.Render(line)
		}
	}

	return strings.Join(lines, "\n")
}

// truncateToWidth shortens text to width cells, ending with an ellipsis.
func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	if width <= 1 {
		return ellipsis
	}

	maxWidth := width - lipgloss.Width(ellipsis)
	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}
