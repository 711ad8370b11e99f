package generation

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/dryink/dryink/internal/errors"
	"github.com/dryink/dryink/internal/history"
	"github.com/dryink/dryink/internal/logger"
)

// Gateway performs one generation call against the backend.
type Gateway interface {
	Generate(ctx context.Context, token string, req Request) Outcome
}

// TokenSource supplies the bearer token for gateway calls.
type TokenSource interface {
	Token() (string, error)
}

// Controller owns the conversation of one dashboard view. It is safe for use
// from the Bubble Tea command goroutines.
type Controller struct {
	mu     sync.Mutex
	conv   Conversation
	gw     Gateway
	tokens TokenSource
	busy   bool
	log    *slog.Logger
}

// NewController returns a controller with an empty conversation.
func NewController(gw Gateway, tokens TokenSource) *Controller {
	return &Controller{
		conv:   NewConversation(),
		gw:     gw,
		tokens: tokens,
		log:    logger.WithComponent("generation"),
	}
}

// Submit sends prompt to the backend and records the result. Only one
// submission may be in flight at a time.
func (c *Controller) Submit(ctx context.Context, prompt string, params Params) (history.Entry, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return history.Entry{}, errors.EmptyPrompt()
	}
	if err := params.Validate(); err != nil {
		return history.Entry{}, err
	}
	token, err := c.tokens.Token()
	if err != nil {
		return history.Entry{}, err
	}

	c.mu.Lock()
	if c.busy {
		c.mu.Unlock()
		return history.Entry{}, errors.GenerationInProgress()
	}
	c.busy = true
	req := c.conv.Plan(prompt, params)
	c.mu.Unlock()

	c.log.Info("submitting prompt", "mode", req.Mode.String(), "sessionID", req.SessionID, "params", params.String())
	start := time.Now()
	out := c.gw.Generate(ctx, token, req)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.busy = false

	next, entry, err := c.conv.Apply(req, out)
	if err != nil {
		c.log.Warn("generation failed", "mode", req.Mode.String(), "error", err, "elapsed", time.Since(start))
		return history.Entry{}, err
	}
	c.conv = next
	c.log.Info("generation complete", "sessionID", next.SessionID(), "entries", next.History().Len(), "elapsed", time.Since(start))
	return entry, nil
}

// Undo moves back to the previous video.
func (c *Controller) Undo() (history.Entry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	next, e, err := c.conv.Undo()
	c.conv = next
	return e, err
}

// Redo moves forward to the next video.
func (c *Controller) Redo() (history.Entry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	next, e, err := c.conv.Redo()
	c.conv = next
	return e, err
}

// CanUndo reports whether an earlier video exists.
func (c *Controller) CanUndo() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conv.History().CanUndo()
}

// CanRedo reports whether a later video exists.
func (c *Controller) CanRedo() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conv.History().CanRedo()
}

// Current returns the displayed entry.
func (c *Controller) Current() (history.Entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conv.History().Current()
}

// Conversation returns a snapshot of the current state.
func (c *Controller) Conversation() Conversation {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conv
}

// Busy reports whether a submission is in flight.
func (c *Controller) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.busy
}

// Reset starts a new conversation. It fails while a submission is in flight.
func (c *Controller) Reset() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.busy {
		return errors.GenerationInProgress()
	}
	c.conv = NewConversation()
	return nil
}

// Resume replaces the conversation with an existing backend session. Like
// Reset it fails while a submission is in flight.
func (c *Controller) Resume(sessionID string, entries []history.Entry) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.busy {
		return errors.GenerationInProgress()
	}
	c.conv = ResumeConversation(sessionID, entries)
	return nil
}
