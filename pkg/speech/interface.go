package speech

import (
	"context"
	"errors"
)

var (
	// ErrUnsupported means the host runtime has no recognition capability.
	ErrUnsupported = errors.New("speech recognition not supported")
	// ErrPermissionDenied means the user refused microphone access. Surfaced
	// distinctly from ErrUnsupported so the UI can offer a retry.
	ErrPermissionDenied = errors.New("microphone permission denied")
)

// Result is one transcribed utterance.
type Result struct {
	Transcript string  `json:"transcript"`
	Confidence float64 `json:"confidence"`
}

// Recognizer is the host speech capability. Listen blocks for a single
// utterance and returns its transcription; cancelling the context aborts the
// session.
type Recognizer interface {
	Listen(ctx context.Context) (Result, error)
}
