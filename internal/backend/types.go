package backend

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/dryink/dryink/internal/history"
)

// envelope is the wrapper every endpoint answers with.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

type promptBody struct {
	Prompt     string `json:"prompt"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	FPS        int    `json:"fps"`
	FrameCount int    `json:"frameCount"`
}

type followUpBody struct {
	ChatSessionID  string `json:"chatSessionId"`
	FollowUpPrompt string `json:"followUpPrompt"`
	PreviousGenRes string `json:"previousGenRes"`
	Width          int    `json:"width"`
	Height         int    `json:"height"`
	FPS            int    `json:"fps"`
	FrameCount     int    `json:"frameCount"`
}

type generationData struct {
	ChatSessionID string `json:"chatSessionId"`
	SignedURL     string `json:"signedUrl"`
	GenRes        string `json:"genRes"`
	Prompt        string `json:"prompt"`
}

// Chat is one prompt/response turn stored by the backend.
type Chat struct {
	ID     string `json:"id"`
	Prompt string `json:"prompt"`
	// Response is sent by the backend as "responce".
	Response string `json:"responce"`
	GenURL   string `json:"genUrl"`
}

// ChatSession is a prior conversation listed in the sidebar.
type ChatSession struct {
	ID    string `json:"id"`
	Date  string `json:"date"`
	Chats []Chat `json:"chats"`
}

// Title is the first chat's prompt, or "New Session".
func (s ChatSession) Title() string {
	if len(s.Chats) > 0 {
		if p := strings.TrimSpace(s.Chats[0].Prompt); p != "" {
			return p
		}
	}
	return "New Session"
}

var dateLayouts = []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

// LocalDate formats Date as YYYY-MM-DD in the local zone. Unparseable dates
// are returned as-is.
func (s ChatSession) LocalDate() string {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s.Date); err == nil {
			if layout == "2006-01-02" {
				return t.Format("2006-01-02")
			}
			return t.Local().Format("2006-01-02")
		}
	}
	return s.Date
}

// Entries converts the chats to history entries in order.
func (s ChatSession) Entries() []history.Entry {
	out := make([]history.Entry, 0, len(s.Chats))
	for _, c := range s.Chats {
		out = append(out, history.Entry{VideoURL: c.GenURL, Prompt: c.Prompt, GeneratedResponse: c.Response})
	}
	return out
}
