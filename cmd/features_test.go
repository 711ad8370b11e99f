package cmd

import (
	"strings"
	"testing"

	"github.com/dryink/dryink/internal/landing"
)

func TestFeatures(t *testing.T) {
	c, out := testCommand()
	featuresCmd.Run(c, nil)

	for _, want := range []string{landing.Headline, "Enter Your Prompt", "Refine with Follow-up Prompts"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("features output missing %q", want)
		}
	}
}
