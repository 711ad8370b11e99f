package generation

// Outcome is the result of one gateway call. It is one of Generated,
// Rejected or TransportFailed.
type Outcome interface {
	outcome()
}

// Generated carries the backend's successful response.
type Generated struct {
	SessionID         string
	VideoURL          string
	GeneratedResponse string
	// Prompt is the backend's echo of the prompt. Empty when omitted.
	Prompt string
}

// Rejected means the backend answered with success false.
type Rejected struct {
	Message string
}

// TransportFailed means no usable envelope came back.
type TransportFailed struct {
	Err error
}

func (Generated) outcome()       {}
func (Rejected) outcome()        {}
func (TransportFailed) outcome() {}
