package controller

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/splice/internal/model"
)

type reviewDecision int

const (
	decisionPending reviewDecision = iota
	decisionApply
	decisionDecline
)

const (
	reviewHeaderHeight = 3
	reviewFooterHeight = 2
)

// reviewModel shows a scrollable diff and waits for y/n.
type reviewModel struct {
	outcome  m.Outcome
	viewport viewport.Model
	width    int
	height   int
	ready    bool
	decision reviewDecision
}

func newReviewModel(outcome m.Outcome) reviewModel {
	return reviewModel{outcome: outcome}
}

func (r reviewModel) Init() tea.Cmd {
	return nil
}

func (r reviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.width = msg.Width
		r.height = msg.Height

		vpHeight := max(msg.Height-reviewHeaderHeight-reviewFooterHeight, 1)

		if !r.ready {
			r.viewport = viewport.New(msg.Width, vpHeight)
			r.viewport.SetContent(colorizeDiff(r.outcome.Diff))
			r.ready = true
		} else {
			r.viewport.Width = msg.Width
			r.viewport.Height = vpHeight
		}

		return r, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "y", "Y":
			r.decision = decisionApply
			return r, tea.Quit
		case "n", "N", "q", "esc", "ctrl+c":
			r.decision = decisionDecline
			return r, tea.Quit
		}
	}

	if !r.ready {
		return r, nil
	}

	var cmd tea.Cmd

	r.viewport, cmd = r.viewport.Update(msg)

	return r, cmd
}

func (r reviewModel) View() string {
	if !r.ready {
		return "Loading diff…\n"
	}

	title := titleStyle.Render("✂ Review " + truncateToWidth(string(r.outcome.File), max(r.width-10, 10)))
	summary := dimStyle.Render(fmt.Sprintf("%d region(s), -%d line(s)", len(r.outcome.Plans), removedLines(r.outcome)))

	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Render(fmt.Sprintf("%3.f%%  ↑/↓ scroll • y apply • n skip • q quit", r.viewport.ScrollPercent()*100))

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		"",
		r.viewport.View(),
		footer,
	)
}
