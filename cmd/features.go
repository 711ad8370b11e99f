package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"github.com/dryink/dryink/internal/landing"
)

var featuresCmd = &cobra.Command{
	Use:   "features",
	Short: "Show how Dryink works",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), landing.Render(terminalWidth()))
	},
}

func init() {
	rootCmd.AddCommand(featuresCmd)
}

// terminalWidth is the width of stdout, or 0 when it is not a terminal.
func terminalWidth() int {
	fd := os.Stdout.Fd()
	if !term.IsTerminal(fd) {
		return 0
	}
	w, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return min(w, 100)
}
