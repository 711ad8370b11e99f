// Package backend is the HTTP gateway to the video generation service.
package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/dryink/dryink/internal/errors"
	"github.com/dryink/dryink/internal/generation"
	"github.com/dryink/dryink/internal/logger"
)

const (
	promptEndpoint   = "/prompt"
	followUpEndpoint = "/prompt/followUpPrompt"
	sessionsEndpoint = "/sessions"
)

// Client talks to the backend at a fixed base URL.
type Client struct {
	client *resty.Client
	log    *slog.Logger
}

// New returns a client for baseURL. A zero timeout leaves requests bounded
// only by the caller's context.
func New(baseURL string, timeout time.Duration) *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	if timeout > 0 {
		c.SetTimeout(timeout)
	}
	return &Client{client: c, log: logger.WithComponent("backend")}
}

// Generate sends req to the endpoint its mode selects.
func (c *Client) Generate(ctx context.Context, token string, req generation.Request) generation.Outcome {
	if req.Mode == generation.ModeFollowUp {
		return c.FollowUp(ctx, token, req.SessionID, req.Prompt, req.PreviousResponse, req.Params)
	}
	return c.Prompt(ctx, token, req.Prompt, req.Params)
}

// Prompt starts a new conversation.
func (c *Client) Prompt(ctx context.Context, token, prompt string, p generation.Params) generation.Outcome {
	body := promptBody{
		Prompt:     prompt,
		Width:      p.Width,
		Height:     p.Height,
		FPS:        p.FPS,
		FrameCount: p.FrameCount,
	}
	return c.generate(ctx, token, promptEndpoint, body, prompt)
}

// FollowUp refines the video of an existing conversation.
func (c *Client) FollowUp(ctx context.Context, token, sessionID, prompt, previous string, p generation.Params) generation.Outcome {
	body := followUpBody{
		ChatSessionID:  sessionID,
		FollowUpPrompt: prompt,
		PreviousGenRes: previous,
		Width:          p.Width,
		Height:         p.Height,
		FPS:            p.FPS,
		FrameCount:     p.FrameCount,
	}
	return c.generate(ctx, token, followUpEndpoint, body, prompt)
}

func (c *Client) generate(ctx context.Context, token, endpoint string, body any, prompt string) generation.Outcome {
	env, err := c.do(ctx, token, resty.MethodPost, endpoint, body)
	if err != nil {
		return generation.TransportFailed{Err: err}
	}
	if !env.Success {
		return generation.Rejected{Message: env.Message}
	}

	var data generationData
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return generation.TransportFailed{Err: fmt.Errorf("decode %s data: %w", endpoint, err)}
	}
	if data.SignedURL == "" {
		return generation.TransportFailed{Err: fmt.Errorf("%s: response has no signedUrl", endpoint)}
	}
	return generation.Generated{
		SessionID:         data.ChatSessionID,
		VideoURL:          data.SignedURL,
		GeneratedResponse: data.GenRes,
		Prompt:            data.Prompt,
	}
}

// ListSessions returns the signed-in user's prior conversations.
func (c *Client) ListSessions(ctx context.Context, token string) ([]ChatSession, error) {
	env, err := c.do(ctx, token, resty.MethodGet, sessionsEndpoint, nil)
	if err != nil {
		return nil, errors.SessionsLoadFailed(err)
	}
	if !env.Success {
		msg := env.Message
		if msg == "" {
			msg = "backend returned success=false"
		}
		return nil, errors.E(errors.Op("backend.ListSessions"), errors.KindBackend, "Failed to load chat sessions", fmt.Errorf("%s", msg))
	}

	sessions := []ChatSession{}
	if len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, &sessions); err != nil {
			return nil, errors.SessionsLoadFailed(err)
		}
	}
	return sessions, nil
}

// do performs one request and decodes the envelope. Transport errors and
// bodies that are not an envelope come back as err.
func (c *Client) do(ctx context.Context, token, method, endpoint string, body any) (envelope, error) {
	requestID := uuid.NewString()
	log := c.log.With("method", method, "endpoint", endpoint, "requestID", requestID)

	r := c.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetHeader("X-Request-ID", requestID)
	if body != nil {
		r.SetBody(body)
	}

	start := time.Now()
	res, err := r.Execute(method, endpoint)
	if err != nil {
		log.Error("request failed", "error", err, "duration", time.Since(start))
		return envelope{}, err
	}
	log.Debug("response received", "status", res.StatusCode(), "duration", time.Since(start))

	var env envelope
	if err := json.Unmarshal(res.Body(), &env); err != nil {
		log.Error("unparsable response", "status", res.StatusCode(), "error", err)
		return envelope{}, fmt.Errorf("%s %s: status %d: unparsable body: %w", method, endpoint, res.StatusCode(), err)
	}
	if !res.IsSuccess() {
		log.Warn("non-2xx response", "status", res.StatusCode(), "success", env.Success, "message", env.Message)
	}
	return env, nil
}
