package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindUnknown, "unknown error"},
		{KindNotFound, "not found"},
		{KindInvalid, "invalid"},
		{KindIO, "I/O error"},
		{KindNetwork, "network error"},
		{KindConfig, "configuration error"},
		{KindAuth, "authentication error"},
		{KindBackend, "backend rejected request"},
		{KindNoHistory, "no history"},
		{KindTimeout, "timeout"},
		{Kind(999), "unknown error"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.expected {
				t.Errorf("Kind.String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "with op and context",
			err:      &Error{Op: "test.Op", Context: "some context", Err: errors.New("underlying error")},
			expected: "test.Op: some context: underlying error",
		},
		{
			name:     "with op only",
			err:      &Error{Op: "test.Op", Err: errors.New("underlying error")},
			expected: "test.Op: underlying error",
		},
		{
			name:     "without op",
			err:      &Error{Err: errors.New("underlying error")},
			expected: "underlying error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error.Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestE_ContextBecomesErrorWithoutUnderlying(t *testing.T) {
	err := E(Op("test.Op"), KindInvalid, "just a message")
	e, ok := err.(*Error)
	if !ok {
		t.Fatalf("E() returned %T, want *Error", err)
	}
	if e.Context != "" {
		t.Errorf("Context = %q, want empty", e.Context)
	}
	if e.Err == nil || e.Err.Error() != "just a message" {
		t.Errorf("Err = %v, want 'just a message'", e.Err)
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		kind     Kind
		expected bool
	}{
		{"matching kind", E(Op("test"), KindNotFound, "not found"), KindNotFound, true},
		{"non-matching kind", E(Op("test"), KindNotFound, "not found"), KindInvalid, false},
		{"plain error", errors.New("regular error"), KindNotFound, false},
		{"wrapped", fmt.Errorf("outer: %w", E(Op("test"), KindBackend, "nope")), KindBackend, true},
		{"nil", nil, KindNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.kind); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetKind(t *testing.T) {
	if got := GetKind(NoHistory("undo")); got != KindNoHistory {
		t.Errorf("GetKind(NoHistory) = %v, want %v", got, KindNoHistory)
	}
	if got := GetKind(errors.New("x")); got != KindUnknown {
		t.Errorf("GetKind(plain) = %v, want %v", got, KindUnknown)
	}
}

func TestNotice(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"network failure hides transport detail", NetworkFailure("backend.Prompt", errors.New("dial tcp: refused")), GenerationFailedNotice},
		{"backend rejection uses backend text", BackendRejected("backend.Prompt", "Quota exceeded"), "Quota exceeded"},
		{"backend rejection without text", BackendRejected("backend.Prompt", ""), GenerationFailedNotice},
		{"no history undo", NoHistory("undo"), "No more history to undo"},
		{"no history redo", NoHistory("redo"), "No more history to redo"},
		{"sessions load", SessionsLoadFailed(errors.New("boom")), "Failed to load chat sessions"},
		{"plain", errors.New("plain"), "plain"},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Notice(tt.err); got != tt.want {
				t.Errorf("Notice() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNetworkFailure_Unwraps(t *testing.T) {
	underlying := errors.New("connection reset")
	err := NetworkFailure("backend.Prompt", underlying)
	if !errors.Is(err, underlying) {
		t.Error("expected NetworkFailure to wrap the transport error")
	}
	if !Is(err, KindNetwork) {
		t.Error("expected KindNetwork")
	}
}
