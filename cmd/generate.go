package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dryink/dryink/internal/config"
	"github.com/dryink/dryink/internal/errors"
	"github.com/dryink/dryink/internal/generation"
	"github.com/dryink/dryink/internal/history"
	"github.com/dryink/dryink/internal/logger"
)

var (
	genParams   generation.Params
	genSession  string
	genPrevious string
)

var generateCmd = &cobra.Command{
	Use:   "generate <prompt>",
	Short: "Generate one video without opening the dashboard",
	Long: `Sends a single prompt to the generation service and prints the video URL
and the generated response.

With --session the prompt refines an existing conversation; --previous is
the response of the video being refined.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGenerate,
}

func init() {
	defaults := generation.DefaultParams()
	generateCmd.Flags().IntVar(&genParams.Width, "width", defaults.Width, "Video width in pixels")
	generateCmd.Flags().IntVar(&genParams.Height, "height", defaults.Height, "Video height in pixels")
	generateCmd.Flags().IntVar(&genParams.FPS, "fps", defaults.FPS, "Frames per second")
	generateCmd.Flags().IntVar(&genParams.FrameCount, "frames", defaults.FrameCount, "Number of frames")
	generateCmd.Flags().StringVar(&genSession, "session", "", "Refine this session instead of starting a new one")
	generateCmd.Flags().StringVar(&genPrevious, "previous", "", "Generated response being refined (with --session)")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	logger.InitConsole(os.Stderr)
	log := logger.WithComponent("generate")

	prompt := strings.TrimSpace(strings.Join(args, " "))
	if prompt == "" {
		return errors.EmptyPrompt()
	}
	if err := genParams.Validate(); err != nil {
		return err
	}
	if genPrevious != "" && genSession == "" {
		return errors.ConfigInvalid("--previous needs --session")
	}

	env, err := config.LoadEnv(envFile)
	if err != nil {
		return err
	}
	sess, err := loadSession(env.SessionFile)
	if err != nil {
		return err
	}

	ctrl := generation.NewController(newBackend(env), sess)
	if genSession != "" {
		if err := ctrl.Resume(genSession, []history.Entry{{GeneratedResponse: genPrevious}}); err != nil {
			return err
		}
	}

	log.Debug("submitting", "params", genParams.String(), "session", genSession)
	entry, err := ctrl.Submit(commandContext(cmd), prompt, genParams)
	if err != nil {
		return fmt.Errorf("generation failed: %s", errors.Notice(err))
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Session:  %s\n", ctrl.Conversation().SessionID())
	fmt.Fprintf(out, "Video:    %s\n", entry.VideoURL)
	fmt.Fprintf(out, "Prompt:   %s\n", entry.Prompt)
	fmt.Fprintf(out, "Response:\n%s\n", entry.GeneratedResponse)
	return nil
}

// commandContext returns cmd's context, or Background when run outside Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
