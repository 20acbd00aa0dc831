package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/splice/internal/domain"
	m "github.com/mouse-blink/splice/internal/model"
)

var applyDryRunFlag bool
var applyInteractiveFlag bool
var applyParallelFlag int

// applyCmd represents the apply command.
var applyCmd = newApplyCmd()

func newApplyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply RECIPE.yaml...",
		Short: "Apply the recipes in one or more YAML files",
		Long: `Apply resolves every recipe and rewrites the affected files. Recipes for the
same file are applied in order and the file is written once; if any of them
fails the file is left untouched.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := workflow.Apply(cmd.Context(), domain.ApplyArgs{
				PlanArgs: domain.PlanArgs{
					Recipes: parsePaths(args),
					Threads: applyParallelFlag,
				},
				DryRun:      applyDryRunFlag,
				Interactive: applyInteractiveFlag,
				Reports:     m.Path(reportsDirFlag),
			})

			return err
		},
	}
	cmd.Flags().BoolVar(&applyDryRunFlag, "dry-run", false, "show the diff without writing")
	cmd.Flags().BoolVarP(&applyInteractiveFlag, "interactive", "i", false, "review each file's diff before writing")
	cmd.Flags().IntVarP(&applyParallelFlag, "parallel", "p", 1, "number of files processed in parallel")

	return cmd
}

func init() {
	rootCmd.AddCommand(applyCmd)
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
