package speech

import (
	"context"
	"errors"
	"sync"

	"voyago/pkg/logger"
)

// SessionManager serializes recognition sessions: at most one is active, and
// starting a new one stops the previous session instead of running two.
type SessionManager struct {
	recognizer Recognizer
	log        *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	seq    uint64
}

func NewSessionManager(recognizer Recognizer, log *logger.Logger) *SessionManager {
	return &SessionManager{
		recognizer: recognizer,
		log:        log,
	}
}

// Start begins a recognition session. A prior active session is stopped
// first. onResult receives the transcribed utterance; onError receives
// permission or recognition failures. A session stopped by a newer Start or
// by Stop reports neither.
func (m *SessionManager) Start(ctx context.Context, onResult func(string), onError func(error)) error {
	if m.recognizer == nil {
		return ErrUnsupported
	}

	m.mu.Lock()
	if m.cancel != nil {
		m.cancel()
	}
	sessionCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.seq++
	id := m.seq
	m.mu.Unlock()

	go func() {
		result, err := m.recognizer.Listen(sessionCtx)

		m.mu.Lock()
		current := m.seq == id
		if current {
			m.cancel = nil
		}
		m.mu.Unlock()

		if !current || errors.Is(err, context.Canceled) {
			return
		}

		if err != nil {
			m.log.WithError(err).Warn("Recognition session failed")
			if onError != nil {
				onError(err)
			}
			return
		}

		if onResult != nil {
			onResult(result.Transcript)
		}
	}()

	return nil
}

// Stop cancels the active session, if any.
func (m *SessionManager) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}

// Active reports whether a recognition session is in flight.
func (m *SessionManager) Active() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cancel != nil
}
