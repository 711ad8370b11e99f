package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dryink/dryink/internal/auth"
	"github.com/dryink/dryink/internal/config"
	"github.com/dryink/dryink/internal/logger"
)

var (
	skipConfirm bool
	clearLogs   bool
)

var signoutCmd = &cobra.Command{
	Use:   "signout",
	Short: "Remove the local session file",
	Long: `Signs out by deleting the session file the dashboard reads its access
token from. With --logs the dashboard log file is removed as well.

It will prompt for confirmation before proceeding unless the --yes flag is used.`,
	Args: cobra.NoArgs,
	RunE: runSignout,
}

func init() {
	signoutCmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip confirmation prompt")
	signoutCmd.Flags().BoolVar(&clearLogs, "logs", false, "Also remove the dashboard log file")
	rootCmd.AddCommand(signoutCmd)
}

func runSignout(cmd *cobra.Command, args []string) error {
	env, err := config.LoadEnv(envFile)
	if err != nil {
		return err
	}
	return signOutWithReader(cmd.OutOrStdout(), os.Stdin, env.SessionFile)
}

// signOutWithReader allows injecting a reader for testing
func signOutWithReader(out io.Writer, input io.Reader, sessionFile string) error {
	if _, err := os.Stat(sessionFile); os.IsNotExist(err) && !clearLogs {
		fmt.Fprintln(out, "Not signed in.")
		return nil
	}

	sess, err := loadSession(sessionFile)
	if err != nil {
		// A corrupt file is still removed
		sess = &auth.Session{}
	}

	fmt.Fprintln(out, "This will remove:")
	if email := sess.Email(); email != "" {
		fmt.Fprintf(out, "  - the session for %s (%s)\n", sess.DisplayName(), email)
	} else {
		fmt.Fprintln(out, "  - the local session file")
	}
	fmt.Fprintf(out, "      %s\n", sessionFile)
	if clearLogs {
		fmt.Fprintf(out, "  - the log file %s\n", logger.DefaultLogPath)
	}

	if !skipConfirm {
		if !confirm(out, input, "Continue?") {
			fmt.Fprintln(out, "Aborted.")
			return nil
		}
	}

	if err := auth.SignOut(sessionFile); err != nil {
		return err
	}
	fmt.Fprintln(out, "Signed out.")

	if clearLogs {
		removed, err := logger.ClearLogs()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: error clearing logs: %v\n", err)
		} else if removed > 0 {
			fmt.Fprintf(out, "Removed %d log file(s).\n", removed)
		}
	}
	return nil
}

// confirm prompts the user for y/n confirmation
func confirm(out io.Writer, input io.Reader, prompt string) bool {
	fmt.Fprintf(out, "%s [y/N]: ", prompt)
	reader := bufio.NewReader(input)
	response, err := reader.ReadString('\n')
	if err != nil && response == "" {
		return false
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}
