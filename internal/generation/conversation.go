// Package generation holds the prompt/follow-up conversation state and the
// controller that drives it through a backend gateway.
package generation

import (
	"github.com/dryink/dryink/internal/errors"
	"github.com/dryink/dryink/internal/history"
)

// Mode selects the backend endpoint for a request.
type Mode int

const (
	ModeInitial Mode = iota
	ModeFollowUp
)

func (m Mode) String() string {
	if m == ModeFollowUp {
		return "follow-up"
	}
	return "initial"
}

// Request describes the single gateway call a submission needs.
type Request struct {
	Mode             Mode
	Prompt           string
	Params           Params
	SessionID        string
	PreviousResponse string
}

// Conversation is the state of one dashboard view: the video history, the
// backend session id and whether the next prompt is a follow-up.
type Conversation struct {
	history   history.History
	sessionID string
	followUp  bool
}

// NewConversation returns an empty conversation.
func NewConversation() Conversation {
	return Conversation{history: history.New()}
}

// ResumeConversation continues an existing backend session. entries become the
// history with the cursor on the last one.
func ResumeConversation(sessionID string, entries []history.Entry) Conversation {
	h := history.New()
	for _, e := range entries {
		h = h.Push(e)
	}
	return Conversation{history: h, sessionID: sessionID, followUp: sessionID != ""}
}

func (c Conversation) History() history.History { return c.history }
func (c Conversation) SessionID() string        { return c.sessionID }
func (c Conversation) FollowUp() bool           { return c.followUp }

// PreviousResponse is the generated response of the displayed entry.
func (c Conversation) PreviousResponse() string {
	e, _ := c.history.Current()
	return e.GeneratedResponse
}

// Plan builds the request for prompt. It does not change the conversation.
func (c Conversation) Plan(prompt string, params Params) Request {
	req := Request{Mode: ModeInitial, Prompt: prompt, Params: params}
	if c.sessionID != "" || c.followUp {
		req.Mode = ModeFollowUp
		req.SessionID = c.sessionID
		req.PreviousResponse = c.PreviousResponse()
	}
	return req
}

// Apply folds the gateway outcome for req into the conversation. Only a
// Generated outcome changes state; failures return the receiver unchanged.
func (c Conversation) Apply(req Request, out Outcome) (Conversation, history.Entry, error) {
	switch o := out.(type) {
	case Generated:
		next := c
		if next.sessionID == "" {
			next.sessionID = o.SessionID
		}
		prompt := o.Prompt
		if prompt == "" {
			prompt = req.Prompt
		}
		e := history.Entry{VideoURL: o.VideoURL, Prompt: prompt, GeneratedResponse: o.GeneratedResponse}
		next.history = c.history.Push(e)
		next.followUp = true
		return next, e, nil
	case Rejected:
		return c, history.Entry{}, errors.BackendRejected(endpointOp(req.Mode), o.Message)
	case TransportFailed:
		return c, history.Entry{}, errors.NetworkFailure(endpointOp(req.Mode), o.Err)
	default:
		return c, history.Entry{}, errors.NetworkFailure(endpointOp(req.Mode), nil)
	}
}

// Undo moves back one entry. See history.History.Undo.
func (c Conversation) Undo() (Conversation, history.Entry, error) {
	h, e, err := c.history.Undo()
	if err != nil {
		return c, e, err
	}
	c.history = h
	return c, e, nil
}

// Redo moves forward one entry. See history.History.Redo.
func (c Conversation) Redo() (Conversation, history.Entry, error) {
	h, e, err := c.history.Redo()
	if err != nil {
		return c, e, err
	}
	c.history = h
	return c, e, nil
}

func endpointOp(m Mode) string {
	if m == ModeFollowUp {
		return "backend.FollowUp"
	}
	return "backend.Prompt"
}
