package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/splice/internal/domain"
)

// planCmd represents the plan command.
var planCmd = newPlanCmd()

func newPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan RECIPE.yaml...",
		Short: "Show the regions the recipes would replace",
		Long:  "Plan resolves every recipe and prints the lines each one would remove. Nothing is written.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := workflow.Plan(cmd.Context(), domain.PlanArgs{Recipes: parsePaths(args), Threads: 1})

			return err
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(planCmd)
}
