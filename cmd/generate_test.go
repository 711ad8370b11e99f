package cmd

import (
	"strings"
	"testing"

	"github.com/dryink/dryink/internal/generation"
)

func resetGenerateFlags(t *testing.T) {
	t.Helper()
	origParams, origSession, origPrevious := genParams, genSession, genPrevious
	t.Cleanup(func() { genParams, genSession, genPrevious = origParams, origSession, origPrevious })
	genParams = generation.DefaultParams()
	genSession, genPrevious = "", ""
}

func TestGenerate_Initial(t *testing.T) {
	resetGenerateFlags(t)
	fb := &fakeBackend{outcome: generation.Generated{SessionID: "sess-1", VideoURL: "https://cdn.example.com/v.mp4", GeneratedResponse: "ok"}}
	useFakeBackend(t, fb, true)

	c, out := testCommand()
	if err := runGenerate(c, []string{"a", "paper", "boat"}); err != nil {
		t.Fatalf("runGenerate: %v", err)
	}

	if len(fb.requests) != 1 {
		t.Fatalf("expected 1 request, got %d", len(fb.requests))
	}
	req := fb.requests[0]
	if req.Mode != generation.ModeInitial || req.Prompt != "a paper boat" {
		t.Errorf("unexpected request %+v", req)
	}
	for _, want := range []string{"sess-1", "https://cdn.example.com/v.mp4", "a paper boat", "ok"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestGenerate_FollowUp(t *testing.T) {
	resetGenerateFlags(t)
	fb := &fakeBackend{outcome: generation.Generated{VideoURL: "u", GeneratedResponse: "v2"}}
	useFakeBackend(t, fb, true)
	genSession, genPrevious = "sess-7", "v1"

	c, _ := testCommand()
	if err := runGenerate(c, []string{"make it rain"}); err != nil {
		t.Fatalf("runGenerate: %v", err)
	}
	req := fb.requests[0]
	if req.Mode != generation.ModeFollowUp || req.SessionID != "sess-7" || req.PreviousResponse != "v1" {
		t.Errorf("unexpected follow-up request %+v", req)
	}
}

func TestGenerate_Errors(t *testing.T) {
	tests := []struct {
		name     string
		outcome  generation.Outcome
		signedIn bool
		args     []string
		setup    func()
		wantErr  string
	}{
		{name: "rejected", outcome: generation.Rejected{Message: "Quota exceeded"}, signedIn: true, args: []string{"x"}, wantErr: "Quota exceeded"},
		{name: "transport", outcome: generation.TransportFailed{}, signedIn: true, args: []string{"x"}, wantErr: "Failed to generate video"},
		{name: "blank prompt", signedIn: true, args: []string{"  "}, wantErr: "prompt is empty"},
		{name: "signed out", args: []string{"x"}, wantErr: "not signed in"},
		{name: "bad params", signedIn: true, args: []string{"x"}, setup: func() { genParams.FPS = 0 }},
		{name: "previous without session", signedIn: true, args: []string{"x"}, setup: func() { genPrevious = "v1" }, wantErr: "--previous"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetGenerateFlags(t)
			fb := &fakeBackend{outcome: tt.outcome}
			useFakeBackend(t, fb, tt.signedIn)
			if tt.setup != nil {
				tt.setup()
			}

			c, _ := testCommand()
			err := runGenerate(c, tt.args)
			if err == nil {
				t.Fatal("expected an error")
			}
			if tt.wantErr != "" && !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err, tt.wantErr)
			}
		})
	}
}
