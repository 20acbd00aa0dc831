package controller

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

// NewUI picks the splice front end. A terminal gets the styled TUI, whose
// Confirm opens the scrollable diff review; pipes and files get SimpleUI
// tables and a y/N prompt read from the command's input.
func NewUI(cmd *cobra.Command, useTTY bool) UI {
	if useTTY {
		return NewTUI(cmd.InOrStdin(), cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is a character device, so splice output that is
// redirected to a file or pipe stays plain.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	fileInfo, err := file.Stat()
	if err != nil {
		return false
	}

	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
