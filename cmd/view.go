package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/splice/internal/domain"
	m "github.com/mouse-blink/splice/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View previously saved splice reports",
		Long:  "View previously saved splice reports from a reports directory.",
		Args:  cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			dir := reportsDirFlag
			if dir == "" {
				dir = defaultReportsDir
			}

			return workflow.View(domain.ViewArgs{Reports: m.Path(dir)})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
