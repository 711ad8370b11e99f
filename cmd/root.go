package cmd

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/dryink/dryink/internal/app"
	"github.com/dryink/dryink/internal/auth"
	"github.com/dryink/dryink/internal/backend"
	"github.com/dryink/dryink/internal/clipboard"
	"github.com/dryink/dryink/internal/config"
	"github.com/dryink/dryink/internal/errors"
	"github.com/dryink/dryink/internal/logger"
)

var (
	debugMode             bool
	quietMode             bool
	envFile               string
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

// newBackend builds the HTTP gateway. Tests swap it for a fake.
var newBackend = func(env config.Env) app.Backend {
	return backend.New(env.BackendBaseURL, env.RequestTimeout)
}

var rootCmd = &cobra.Command{
	Use:   "dryink",
	Short: "Terminal dashboard for generating educational videos",
	Long: `Dryink turns a text prompt into an animated video. The dashboard keeps a
per-conversation history you can step through with undo/redo, refines the
video on screen with follow-up prompts, and lists your past sessions.

Set BACKEND_BASE_URL (or put it in .env) to point at the generation service.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", true, "Enable debug logging (on by default)")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Reduce logging to info level only")
	rootCmd.PersistentFlags().StringVar(&envFile, "env", "", "Load environment from this file instead of ./.env")
}

func initConfig() {
	if quietMode {
		logger.SetDebug(false)
	} else if debugMode {
		logger.SetDebug(true)
	}
}

// Execute runs the root command
func Execute() error {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("dryink %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("dryink %s\n", version)
}

// loadSession reads the signed-in user. A missing or empty file means
// signed out; a corrupt one is reported.
func loadSession(path string) (*auth.Session, error) {
	sess, err := auth.Load(path)
	if err != nil && !errors.Is(err, errors.KindAuth) {
		return nil, err
	}
	return sess, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	env, err := config.LoadEnv(envFile)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	if err := logger.Init(logger.DefaultLogPath); err != nil {
		return err
	}
	defer logger.Close()

	sess, err := loadSession(env.SessionFile)
	if err != nil {
		return err
	}

	// OSC 52 still works when the native clipboard is unavailable
	_ = clipboard.Init()

	m := app.New(cfg, app.Deps{
		Backend:     newBackend(env),
		Session:     sess,
		SessionFile: env.SessionFile,
	}, version)
	p := tea.NewProgram(m)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
