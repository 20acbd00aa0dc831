package domain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/splice/internal/adapter"
	"github.com/mouse-blink/splice/internal/controller"
	m "github.com/mouse-blink/splice/internal/model"
)

// PlanArgs selects the recipes to resolve.
type PlanArgs struct {
	Recipes []m.Path   // recipe files
	Inline  []m.Recipe // recipes built from command-line flags
	Threads int
}

// ApplyArgs configures an Apply run.
type ApplyArgs struct {
	PlanArgs
	DryRun      bool
	Interactive bool
	Reports     m.Path // directory for YAML reports; empty disables them
}

// ViewArgs configures a View run.
type ViewArgs struct {
	Reports m.Path
}

// Workflow defines the interface for splice operations.
type Workflow interface {
	// Plan resolves every recipe in memory and displays the regions. It never writes.
	Plan(ctx context.Context, args PlanArgs) ([]m.Plan, error)
	// Apply resolves every recipe and rewrites the affected files.
	Apply(ctx context.Context, args ApplyArgs) ([]m.Outcome, error)
	// View displays previously saved reports.
	View(args ViewArgs) error
}

// Option configures a workflow.
type Option func(*workflow)

// WithLogger sets the debug logger.
func WithLogger(logger *slog.Logger) Option {
	return func(w *workflow) {
		w.logger = logger
	}
}

// WithClock overrides the time source used for report timestamps.
func WithClock(now func() time.Time) Option {
	return func(w *workflow) {
		w.now = now
	}
}

type workflow struct {
	fsAdapter   adapter.DocumentFSAdapter
	recipeStore adapter.RecipeStore
	reportStore adapter.ReportStore
	ui          controller.UI
	locator     Locator
	logger      *slog.Logger
	now         func() time.Time
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(
	fsAdapter adapter.DocumentFSAdapter,
	recipeStore adapter.RecipeStore,
	reportStore adapter.ReportStore,
	ui controller.UI,
	locator Locator,
	opts ...Option,
) Workflow {
	w := &workflow{
		fsAdapter:   fsAdapter,
		recipeStore: recipeStore,
		reportStore: reportStore,
		ui:          ui,
		locator:     locator,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:         time.Now,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// fileGroup holds the recipes targeting one file, in the order they were given.
type fileGroup struct {
	file     m.Path
	encoding string
	recipes  []m.Recipe
}

// preparedFile is a file with every recipe of its group applied in memory.
type preparedFile struct {
	before m.Document
	after  m.Document
	plans  []m.Plan
}

func (w *workflow) Plan(ctx context.Context, args PlanArgs) ([]m.Plan, error) {
	groups, err := w.loadGroups(args)
	if err != nil {
		_ = w.ui.DisplayPlans(nil, err)
		return nil, err
	}

	prepared := make([]preparedFile, len(groups))

	err = w.runGroups(ctx, groups, args.Threads, func(i int, g fileGroup) error {
		p, err := w.prepare(g)
		if err != nil {
			return err
		}

		prepared[i] = p

		return nil
	})
	if err != nil {
		_ = w.ui.DisplayPlans(nil, err)
		return nil, err
	}

	var plans []m.Plan
	for _, p := range prepared {
		plans = append(plans, p.plans...)
	}

	return plans, w.ui.DisplayPlans(plans, nil)
}

func (w *workflow) Apply(ctx context.Context, args ApplyArgs) ([]m.Outcome, error) {
	groups, err := w.loadGroups(args.PlanArgs)
	if err != nil {
		_ = w.ui.DisplayOutcomes(nil, err)
		return nil, err
	}

	threads := args.Threads
	if args.Interactive {
		threads = 1
	}

	results := make([]m.Outcome, len(groups))

	runErr := w.runGroups(ctx, groups, threads, func(i int, g fileGroup) error {
		outcome, err := w.applyGroup(g, args)
		if err != nil {
			return err
		}

		results[i] = outcome

		return nil
	})

	outcomes := make([]m.Outcome, 0, len(results))
	for _, outcome := range results {
		if outcome.File != "" {
			outcomes = append(outcomes, outcome)
		}
	}

	if args.Reports != "" && len(outcomes) > 0 {
		at := w.now()

		reports := make([]m.Report, 0, len(outcomes))
		for _, outcome := range outcomes {
			reports = append(reports, m.NewReport(outcome, at))
		}

		if err := w.reportStore.SaveReports(args.Reports, reports); err != nil {
			runErr = errors.Join(runErr, fmt.Errorf("failed to save reports: %w", err))
		}
	}

	if runErr != nil {
		_ = w.ui.DisplayOutcomes(outcomes, runErr)
		return outcomes, runErr
	}

	return outcomes, w.ui.DisplayOutcomes(outcomes, nil)
}

func (w *workflow) View(args ViewArgs) error {
	reports, err := w.reportStore.LoadReports(args.Reports)
	if err != nil {
		_ = w.ui.DisplayReports(nil, err)
		return fmt.Errorf("failed to load reports: %w", err)
	}

	return w.ui.DisplayReports(reports, nil)
}

// runGroups processes groups on a bounded errgroup. Each group owns one file,
// so no two workers touch the same path. Groups not yet started are skipped
// once one fails.
func (w *workflow) runGroups(ctx context.Context, groups []fileGroup, threads int, fn func(int, fileGroup) error) error {
	if threads <= 0 {
		threads = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)

	for i, group := range groups {
		i, group := i, group
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			return fn(i, group)
		})
	}

	return g.Wait()
}

func (w *workflow) applyGroup(g fileGroup, args ApplyArgs) (m.Outcome, error) {
	prepared, err := w.prepare(g)
	if err != nil {
		return m.Outcome{}, err
	}

	diff, err := Diff(prepared.before, prepared.after)
	if err != nil {
		return m.Outcome{}, fmt.Errorf("failed to diff %s: %w", g.file, err)
	}

	outcome := m.Outcome{
		File:       g.file,
		Plans:      prepared.plans,
		Diff:       diff,
		BeforeHash: prepared.before.Hash,
	}

	switch {
	case prepared.before.Text() == prepared.after.Text():
		outcome.Status = m.StatusUnchanged
		return outcome, nil
	case args.DryRun:
		outcome.Status = m.StatusDryRun
		return outcome, nil
	}

	if args.Interactive {
		ok, err := w.ui.Confirm(outcome)
		if err != nil {
			return m.Outcome{}, fmt.Errorf("failed to confirm %s: %w", g.file, err)
		}

		if !ok {
			outcome.Status = m.StatusDeclined
			return outcome, nil
		}
	}

	if err := w.fsAdapter.WriteDocument(prepared.after); err != nil {
		return m.Outcome{}, fmt.Errorf("failed to write %s: %w", g.file, err)
	}

	afterHash, err := w.fsAdapter.HashFile(g.file)
	if err != nil {
		return m.Outcome{}, fmt.Errorf("hash error for %s: %w", g.file, err)
	}

	w.logger.Debug("document rewritten", "file", g.file, "before", prepared.before.Hash, "after", afterHash)

	outcome.AfterHash = afterHash
	outcome.Status = m.StatusApplied

	return outcome, nil
}

// prepare reads the group's document and applies its recipes in sequence.
// After each splice the document is re-split into physical lines so the next
// recipe sees line numbers matching the file it will produce.
func (w *workflow) prepare(g fileGroup) (preparedFile, error) {
	info, err := w.fsAdapter.FileInfo(g.file)
	if err != nil {
		return preparedFile{}, fmt.Errorf("failed to stat %s: %w", g.file, err)
	}

	if !info.Mode().IsRegular() {
		return preparedFile{}, fmt.Errorf("%w: %s", ErrNotRegularFile, g.file)
	}

	doc, err := w.fsAdapter.ReadDocument(g.file, g.encoding)
	if err != nil {
		return preparedFile{}, fmt.Errorf("failed to read %s: %w", g.file, err)
	}

	current := doc
	plans := make([]m.Plan, 0, len(g.recipes))

	for _, recipe := range g.recipes {
		res, err := w.locator.Locate(current, recipe)
		if err != nil {
			return preparedFile{}, fmt.Errorf("recipe %q on %s: %w", recipe.Name, g.file, err)
		}

		w.logger.Debug("region resolved",
			"recipe", recipe.Name,
			"file", g.file,
			"start", res.Region.Start,
			"end", res.Region.End,
		)

		block, err := w.replacement(recipe)
		if err != nil {
			return preparedFile{}, err
		}

		spliced, err := Splice(current, res.Region, block)
		if err != nil {
			return preparedFile{}, fmt.Errorf("recipe %q on %s: %w", recipe.Name, g.file, err)
		}

		plans = append(plans, newPlan(recipe, current, res))

		current = spliced
		current.Lines = m.SplitLines(spliced.Text())
	}

	return preparedFile{before: doc, after: current, plans: plans}, nil
}

func (w *workflow) replacement(recipe m.Recipe) (m.ReplacementBlock, error) {
	if recipe.ReplacementFile == "" {
		return m.ReplacementBlock{Text: recipe.Replacement}, nil
	}

	text, err := w.fsAdapter.ReadText(recipe.ReplacementFile, recipe.EncodingOrDefault())
	if err != nil {
		return m.ReplacementBlock{}, fmt.Errorf("failed to read replacement for %q: %w", recipe.Name, err)
	}

	return m.ReplacementBlock{Text: text}, nil
}

// loadGroups collects inline and file recipes, validates them and groups
// them by absolute target path in order of first appearance.
func (w *workflow) loadGroups(args PlanArgs) ([]fileGroup, error) {
	recipes := make([]m.Recipe, 0, len(args.Inline))
	recipes = append(recipes, args.Inline...)

	for _, path := range args.Recipes {
		loaded, err := w.recipeStore.LoadRecipes(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load recipes from %s: %w", path, err)
		}

		recipes = append(recipes, loaded...)
	}

	if len(recipes) == 0 {
		return nil, fmt.Errorf("%w: no recipes given", m.ErrInvalidRecipe)
	}

	var groups []fileGroup

	index := make(map[m.Path]int)

	for _, recipe := range recipes {
		if err := recipe.Validate(); err != nil {
			return nil, err
		}

		abs, err := filepath.Abs(string(recipe.File))
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %s: %w", recipe.File, err)
		}

		file := m.Path(abs)
		encoding := recipe.EncodingOrDefault()

		i, ok := index[file]
		if !ok {
			index[file] = len(groups)
			groups = append(groups, fileGroup{file: file, encoding: encoding, recipes: []m.Recipe{recipe}})

			continue
		}

		if !strings.EqualFold(groups[i].encoding, encoding) {
			return nil, fmt.Errorf("%w: %s (%s, %s)", ErrEncodingMismatch, file, groups[i].encoding, encoding)
		}

		groups[i].recipes = append(groups[i].recipes, recipe)
	}

	return groups, nil
}

func newPlan(recipe m.Recipe, doc m.Document, res m.Resolution) m.Plan {
	removed := make([]string, 0, res.Region.Len())
	for i := res.Region.Start; i < res.Region.End; i++ {
		removed = append(removed, doc.Line(i))
	}

	boundary := ""
	if res.Region.End < doc.Len() {
		boundary = doc.Line(res.Region.End)
	}

	return m.Plan{
		Recipe:     recipe,
		Resolution: res,
		Removed:    removed,
		Boundary:   boundary,
	}
}
