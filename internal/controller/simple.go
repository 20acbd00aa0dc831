package controller

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/splice/internal/model"
)

// SimpleUI implements UI with plain text on the command's output.
type SimpleUI struct {
	cmd   *cobra.Command
	input *bufio.Reader
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayPlans prints a table of resolved regions followed by the per-region
// diagnostics: which lines go and which boundary line stays.
func (s *SimpleUI) DisplayPlans(plans []m.Plan, err error) error {
	if err != nil {
		s.printf("plan error: %v\n", err)
		return err
	}

	if len(plans) == 0 {
		s.printf("No regions resolved\n")
		return nil
	}

	table, buf := newTable([]string{"Recipe", "File", "Lines", "Removed"})
	removed := 0

	for _, plan := range plans {
		table.Append([]string{
			plan.Recipe.Name,
			string(plan.Recipe.File),
			formatRegion(plan.Resolution.Region),
			fmt.Sprintf("%d", plan.Resolution.Region.Len()),
		})

		removed += plan.Resolution.Region.Len()
	}

	table.SetFooter([]string{fmt.Sprintf("Total Regions %d", len(plans)), "", "", fmt.Sprintf("%d", removed)})
	table.Render()
	s.printf("\n%s\n", buf.String())

	for _, plan := range plans {
		s.printPlanDetails(plan)
	}

	return nil
}

// DisplayOutcomes prints one row per file and the diff of dry-run files.
func (s *SimpleUI) DisplayOutcomes(outcomes []m.Outcome, err error) error {
	if len(outcomes) > 0 {
		table, buf := newTable([]string{"File", "Status", "Regions", "Removed"})

		for _, outcome := range outcomes {
			table.Append([]string{
				string(outcome.File),
				string(outcome.Status),
				fmt.Sprintf("%d", len(outcome.Plans)),
				fmt.Sprintf("%d", removedLines(outcome)),
			})
		}

		table.SetFooter([]string{fmt.Sprintf("Total Files %d", len(outcomes)), "", "", ""})
		table.Render()
		s.printf("\n%s", buf.String())

		for _, outcome := range outcomes {
			if outcome.Status == m.StatusDryRun {
				s.printf("\n%s", outcome.Diff)
			}
		}
	}

	if err != nil {
		s.printf("splice error: %v\n", err)
		return err
	}

	if len(outcomes) == 0 {
		s.printf("No files changed\n")
	}

	return nil
}

// DisplayReports prints stored reports, oldest first.
func (s *SimpleUI) DisplayReports(reports []m.Report, err error) error {
	if err != nil {
		s.printf("report error: %v\n", err)
		return err
	}

	if len(reports) == 0 {
		s.printf("No reports found\n")
		return nil
	}

	table, buf := newTable([]string{"Time", "File", "Status", "Regions", "Hash"})

	for _, report := range reports {
		table.Append([]string{
			report.Time.Format("2006-01-02 15:04:05"),
			string(report.File),
			string(report.Status),
			fmt.Sprintf("%d", len(report.Regions)),
			shortHash(report.BeforeHash) + " -> " + shortHash(report.AfterHash),
		})
	}

	table.SetFooter([]string{fmt.Sprintf("Total Reports %d", len(reports)), "", "", "", ""})
	table.Render()
	s.printf("\n%s", buf.String())

	return nil
}

// Confirm prints the diff and reads a y/N answer from the command's input.
// End of input counts as no.
func (s *SimpleUI) Confirm(outcome m.Outcome) (bool, error) {
	if s.input == nil {
		s.input = bufio.NewReader(s.cmd.InOrStdin())
	}

	s.printf("%s\nApply changes to %s? [y/N]: ", outcome.Diff, outcome.File)

	answer, err := s.input.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

func (s *SimpleUI) printPlanDetails(plan m.Plan) {
	region := plan.Resolution.Region

	if region.Empty() {
		s.printf("[%s] Inserting before line %d\n", plan.Recipe.Name, region.Start+1)
	} else {
		s.printf("[%s] Replacing lines %d to %d\n", plan.Recipe.Name, region.Start+1, region.End)
	}

	for _, match := range plan.Resolution.Matches {
		s.printf("  %s anchor %q found at line %d\n", match.Role, match.Anchor, match.Line+1)
	}

	if len(plan.Removed) > 0 {
		s.printf("  First line to go: %s\n", plan.Removed[0])
		s.printf("  Last line to go: %s\n", plan.Removed[len(plan.Removed)-1])
	}

	if plan.Boundary != "" {
		s.printf("  Stop line (kept): %s\n", plan.Boundary)
	}
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func newTable(header []string) (*tablewriter.Table, *bytes.Buffer) {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	return table, &buf
}

func formatRegion(r m.Region) string {
	if r.Empty() {
		return fmt.Sprintf("+%d", r.Start+1)
	}

	return fmt.Sprintf("%d-%d", r.Start+1, r.End)
}

func removedLines(outcome m.Outcome) int {
	total := 0
	for _, plan := range outcome.Plans {
		total += plan.Resolution.Region.Len()
	}

	return total
}

func shortHash(h string) string {
	if h == "" {
		return "-"
	}

	if len(h) > 8 {
		return h[:8]
	}

	return h
}
