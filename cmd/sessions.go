package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dryink/dryink/internal/backend"
	"github.com/dryink/dryink/internal/config"
	"github.com/dryink/dryink/internal/logger"
)

var sessionsJSON bool

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List your past video sessions",
	Args:  cobra.NoArgs,
	RunE:  runSessions,
}

func init() {
	sessionsCmd.Flags().BoolVar(&sessionsJSON, "json", false, "Print sessions as JSON")
	rootCmd.AddCommand(sessionsCmd)
}

func runSessions(cmd *cobra.Command, args []string) error {
	logger.InitConsole(os.Stderr)

	env, err := config.LoadEnv(envFile)
	if err != nil {
		return err
	}
	sess, err := loadSession(env.SessionFile)
	if err != nil {
		return err
	}
	token, err := sess.Token()
	if err != nil {
		return err
	}

	sessions, err := newBackend(env).ListSessions(commandContext(cmd), token)
	if err != nil {
		return err
	}
	return printSessions(cmd, sessions)
}

func printSessions(cmd *cobra.Command, sessions []backend.ChatSession) error {
	out := cmd.OutOrStdout()
	if sessionsJSON {
		if sessions == nil {
			sessions = []backend.ChatSession{}
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(sessions)
	}

	if len(sessions) == 0 {
		fmt.Fprintln(out, "No sessions yet.")
		return nil
	}
	for _, s := range sessions {
		title := strings.ReplaceAll(s.Title(), "\t", " ")
		fmt.Fprintf(out, "%s\t%s\t%s\n", s.LocalDate(), s.ID, strings.ReplaceAll(title, "\n", " "))
	}
	return nil
}
