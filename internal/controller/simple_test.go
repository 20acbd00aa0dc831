package controller

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/splice/internal/model"
)

func samplePlan() m.Plan {
	return m.Plan{
		Recipe: m.Recipe{Name: "ep02", File: "page.tsx"},
		Resolution: m.Resolution{
			Region:       m.Region{Start: 2, End: 5},
			StartLine:    1,
			BoundaryLine: 4,
			Matches: []m.Match{
				{Role: m.RoleStart, Anchor: "<START>", Line: 1},
				{Role: m.RoleStop, Anchor: "B", Line: 5},
				{Role: m.RoleClosing, Anchor: "</END>", Line: 4},
			},
		},
		Removed:  []string{"X", "Y", "</END>"},
		Boundary: "B",
	}
}

func newTestCmd(out *bytes.Buffer) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.SetOut(out)
	cmd.SetErr(out)

	return cmd
}

func TestSimpleUI_DisplayPlans_PrintsTableAndDiagnostics(t *testing.T) {
	var buf bytes.Buffer
	ui := NewSimpleUI(newTestCmd(&buf))

	require.NoError(t, ui.DisplayPlans([]m.Plan{samplePlan()}, nil))

	output := buf.String()
	for _, want := range []string{
		"ep02",
		"page.tsx",
		"3-5",
		"TOTAL REGIONS 1",
		"[ep02] Replacing lines 3 to 5",
		`start anchor "<START>" found at line 2`,
		`closing anchor "</END>" found at line 5`,
		"First line to go: X",
		"Last line to go: </END>",
		"Stop line (kept): B",
	} {
		assert.Containsf(t, output, want, "output:\n%s", output)
	}
}

func TestSimpleUI_DisplayPlans_EmptyRegion(t *testing.T) {
	var buf bytes.Buffer
	ui := NewSimpleUI(newTestCmd(&buf))

	plan := samplePlan()
	plan.Resolution.Region = m.Region{Start: 3, End: 3}
	plan.Removed = nil

	require.NoError(t, ui.DisplayPlans([]m.Plan{plan}, nil))

	output := buf.String()
	assert.Contains(t, output, "[ep02] Inserting before line 4")
	assert.Contains(t, output, "+4")
	assert.NotContains(t, output, "First line to go")
}

func TestSimpleUI_DisplayPlans_Error(t *testing.T) {
	var buf bytes.Buffer
	ui := NewSimpleUI(newTestCmd(&buf))
	boom := errors.New("boom")

	err := ui.DisplayPlans(nil, boom)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, buf.String(), "plan error: boom")
}

func TestSimpleUI_DisplayPlans_NoPlans(t *testing.T) {
	var buf bytes.Buffer
	ui := NewSimpleUI(newTestCmd(&buf))

	require.NoError(t, ui.DisplayPlans(nil, nil))
	assert.Contains(t, buf.String(), "No regions resolved")
}

func TestSimpleUI_DisplayOutcomes(t *testing.T) {
	var buf bytes.Buffer
	ui := NewSimpleUI(newTestCmd(&buf))

	outcomes := []m.Outcome{
		{File: "a.tsx", Status: m.StatusApplied, Plans: []m.Plan{samplePlan()}},
		{File: "b.tsx", Status: m.StatusDryRun, Plans: []m.Plan{samplePlan()}, Diff: "--- a/b.tsx\n+++ b/b.tsx\n-X\n+REPLACED\n"},
	}

	require.NoError(t, ui.DisplayOutcomes(outcomes, nil))

	output := buf.String()
	for _, want := range []string{"a.tsx", "applied", "b.tsx", "dry-run", "TOTAL FILES 2", "+REPLACED"} {
		assert.Containsf(t, output, want, "output:\n%s", output)
	}
}

func TestSimpleUI_DisplayOutcomes_ErrorKeepsPartialResults(t *testing.T) {
	var buf bytes.Buffer
	ui := NewSimpleUI(newTestCmd(&buf))
	boom := errors.New("anchor missing")

	err := ui.DisplayOutcomes([]m.Outcome{{File: "a.tsx", Status: m.StatusApplied}}, boom)
	assert.ErrorIs(t, err, boom)

	output := buf.String()
	assert.Contains(t, output, "a.tsx")
	assert.Contains(t, output, "splice error: anchor missing")
}

func TestSimpleUI_DisplayOutcomes_Nothing(t *testing.T) {
	var buf bytes.Buffer
	ui := NewSimpleUI(newTestCmd(&buf))

	require.NoError(t, ui.DisplayOutcomes(nil, nil))
	assert.Contains(t, buf.String(), "No files changed")
}

func TestSimpleUI_DisplayReports(t *testing.T) {
	var buf bytes.Buffer
	ui := NewSimpleUI(newTestCmd(&buf))

	reports := []m.Report{{
		File:       "a.tsx",
		Status:     m.StatusApplied,
		Regions:    []m.RegionReport{{Recipe: "ep02", Start: 2, End: 5}},
		BeforeHash: "0123456789abcdef",
		AfterHash:  "fedcba9876543210",
		Time:       time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC),
	}}

	require.NoError(t, ui.DisplayReports(reports, nil))

	output := buf.String()
	for _, want := range []string{"2026-03-04 05:06:07", "a.tsx", "applied", "01234567 -> fedcba98", "TOTAL REPORTS 1"} {
		assert.Containsf(t, output, want, "output:\n%s", output)
	}
}

func TestSimpleUI_DisplayReports_EmptyAndError(t *testing.T) {
	var buf bytes.Buffer
	ui := NewSimpleUI(newTestCmd(&buf))

	require.NoError(t, ui.DisplayReports(nil, nil))
	assert.Contains(t, buf.String(), "No reports found")

	boom := errors.New("boom")
	assert.ErrorIs(t, ui.DisplayReports(nil, boom), boom)
	assert.Contains(t, buf.String(), "report error: boom")
}

func TestSimpleUI_Confirm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []bool
	}{
		{"yes", "y\n", []bool{true}},
		{"full yes", "YES\n", []bool{true}},
		{"no", "n\n", []bool{false}},
		{"blank defaults to no", "\n", []bool{false}},
		{"eof is no", "", []bool{false}},
		{"answers are read in sequence", "y\nn\n", []bool{true, false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			cmd := newTestCmd(&buf)
			cmd.SetIn(strings.NewReader(tt.input))

			ui := NewSimpleUI(cmd)

			for _, want := range tt.want {
				got, err := ui.Confirm(m.Outcome{File: "page.tsx", Diff: "+added\n"})
				require.NoError(t, err)
				assert.Equal(t, want, got)
			}

			assert.Contains(t, buf.String(), "Apply changes to page.tsx? [y/N]")
			assert.Contains(t, buf.String(), "+added")
		})
	}
}
