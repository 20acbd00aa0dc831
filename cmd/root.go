// Package cmd provides the root command and CLI setup for splice.
package cmd

import (
	"errors"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/splice/internal/adapter"
	"github.com/mouse-blink/splice/internal/controller"
	"github.com/mouse-blink/splice/internal/domain"
	m "github.com/mouse-blink/splice/internal/model"
)

const defaultReportsDir = ".splice-reports"

var fsAdapter adapter.DocumentFSAdapter
var recipeStore adapter.RecipeStore
var reportStore adapter.ReportStore
var locator domain.Locator
var workflow domain.Workflow
var ui controller.UI

var logLevel = new(slog.LevelVar)

func init() {
	logLevel.Set(slog.LevelWarn)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalDocumentFSAdapter()
	recipeStore = adapter.NewRecipeStore()
	reportStore = adapter.NewReportStore()
	locator = domain.NewLocator()
	workflow = domain.NewWorkflow(
		fsAdapter,
		recipeStore,
		reportStore,
		ui,
		locator,
		domain.WithLogger(logger),
	)
}

var reportsDirFlag string
var verboseFlag bool

var startFlag string
var afterFlag string
var keepStartFlag bool
var stopFlag string
var closingFlags []string
var openFlag string
var closeFlag string
var includeEndFlag bool
var withFlag string
var withFileFlag string
var encodingFlag string
var dryRunFlag bool
var interactiveFlag bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "splice FILE --start ANCHOR (--with TEXT | --with-file PATH)",
		Short: "Replace anchored blocks in text files",
		Long: `Splice replaces a block of lines in a text file. The block is found with
literal anchors rather than line numbers, so the same command keeps working
after the surrounding file changes.

The start line is the first line containing --start (searched from the first
line containing --after, if given). The end is bounded by the next line
containing --stop and refined either by consuming --closing delimiters
backward, or by finding the first unmatched --close token.

Examples:
  splice page.tsx --after "EP.02" --start "{/* SECTION 1" \
      --stop "{/* 8. DISCOUNT SHARE */}" \
      --closing "</section>" --closing "</div>" --closing "</div>" \
      --with-file block.tsx
  splice apply recipes.yaml --dry-run`,
		Args: cobra.MaximumNArgs(1),
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if verboseFlag {
				logLevel.Set(slog.LevelDebug)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}

			recipe, err := inlineRecipe(cmd, m.Path(args[0]))
			if err != nil {
				return err
			}

			_, err = workflow.Apply(cmd.Context(), domain.ApplyArgs{
				PlanArgs:    domain.PlanArgs{Inline: []m.Recipe{recipe}, Threads: 1},
				DryRun:      dryRunFlag,
				Interactive: interactiveFlag,
				Reports:     m.Path(reportsDirFlag),
			})

			return err
		},
	}

	cmd.PersistentFlags().StringVar(&reportsDirFlag, "reports", "", "directory for YAML reports (view reads "+defaultReportsDir+" when unset)")
	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "log debug details to stderr")

	cmd.Flags().StringVar(&startFlag, "start", "", "anchor marking the first line of the block")
	cmd.Flags().StringVar(&afterFlag, "after", "", "anchor the start search begins from")
	cmd.Flags().BoolVar(&keepStartFlag, "keep-start", false, "keep the start line; the block begins on the next line")
	cmd.Flags().StringVar(&stopFlag, "stop", "", "anchor of the next section, which bounds the block")
	cmd.Flags().StringArrayVar(&closingFlags, "closing", nil, "closing delimiter consumed backward from the stop line (can be repeated)")
	cmd.Flags().StringVar(&openFlag, "open", "", "opening token counted by the balance search")
	cmd.Flags().StringVar(&closeFlag, "close", "", "closing token whose first unmatched occurrence ends the block")
	cmd.Flags().BoolVar(&includeEndFlag, "include-end", false, "remove the boundary line as well")
	cmd.Flags().StringVar(&withFlag, "with", "", "replacement text")
	cmd.Flags().StringVar(&withFileFlag, "with-file", "", "file holding the replacement text")
	cmd.Flags().StringVar(&encodingFlag, "encoding", m.DefaultEncoding, "text encoding of the file and the replacement")
	cmd.Flags().BoolVar(&dryRunFlag, "dry-run", false, "show the diff without writing")
	cmd.Flags().BoolVarP(&interactiveFlag, "interactive", "i", false, "review the diff before writing")

	cmd.MarkFlagsMutuallyExclusive("with", "with-file")
	cmd.MarkFlagsMutuallyExclusive("closing", "open")
	cmd.MarkFlagsMutuallyExclusive("closing", "close")
	cmd.MarkFlagsRequiredTogether("open", "close")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// inlineRecipe builds a recipe from the root command's flags.
func inlineRecipe(cmd *cobra.Command, file m.Path) (m.Recipe, error) {
	if startFlag == "" {
		return m.Recipe{}, errors.New("--start is required")
	}

	if !cmd.Flags().Changed("with") && withFileFlag == "" {
		return m.Recipe{}, errors.New("one of --with or --with-file is required")
	}

	closings := make([]m.Anchor, 0, len(closingFlags))
	for _, closing := range closingFlags {
		closings = append(closings, m.Anchor(closing))
	}

	recipe := m.Recipe{
		Name:     string(file),
		File:     file,
		Encoding: encodingFlag,
		Start: m.StartRule{
			After:  m.Anchor(afterFlag),
			Anchor: m.Anchor(startFlag),
			Keep:   keepStartFlag,
		},
		End: m.EndRule{
			Stop:     m.Anchor(stopFlag),
			Closings: closings,
			Include:  includeEndFlag,
		},
		Replacement:     withFlag,
		ReplacementFile: m.Path(withFileFlag),
	}

	if openFlag != "" || closeFlag != "" {
		recipe.End.Balance = &m.BalanceRule{Open: openFlag, Close: closeFlag}
	}

	return recipe, nil
}
