package speech

import (
	"context"
	"sync"
	"testing"
	"time"

	"voyago/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedRecognizer blocks until released or the session is cancelled.
type scriptedRecognizer struct {
	mu       sync.Mutex
	results  chan Result
	started  int
	canceled int
}

func newScriptedRecognizer() *scriptedRecognizer {
	return &scriptedRecognizer{results: make(chan Result)}
}

func (r *scriptedRecognizer) Listen(ctx context.Context) (Result, error) {
	r.mu.Lock()
	r.started++
	r.mu.Unlock()

	select {
	case res := <-r.results:
		return res, nil
	case <-ctx.Done():
		r.mu.Lock()
		r.canceled++
		r.mu.Unlock()
		return Result{}, ctx.Err()
	}
}

func (r *scriptedRecognizer) counts() (started, canceled int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.started, r.canceled
}

type erroringRecognizer struct{ err error }

func (r *erroringRecognizer) Listen(ctx context.Context) (Result, error) {
	return Result{}, r.err
}

func TestStartDeliversTranscript(t *testing.T) {
	rec := newScriptedRecognizer()
	m := NewSessionManager(rec, logger.NewNop())

	got := make(chan string, 1)
	require.NoError(t, m.Start(context.Background(), func(s string) { got <- s }, nil))
	assert.True(t, m.Active())

	rec.results <- Result{Transcript: "Lonavala"}

	select {
	case s := <-got:
		assert.Equal(t, "Lonavala", s)
	case <-time.After(time.Second):
		t.Fatal("transcript never delivered")
	}

	assert.Eventually(t, func() bool { return !m.Active() }, time.Second, 5*time.Millisecond)
}

func TestSecondStartStopsFirstSession(t *testing.T) {
	rec := newScriptedRecognizer()
	m := NewSessionManager(rec, logger.NewNop())

	var first []string
	require.NoError(t, m.Start(context.Background(), func(s string) { first = append(first, s) }, nil))

	got := make(chan string, 1)
	require.NoError(t, m.Start(context.Background(), func(s string) { got <- s }, nil))

	// The first session must have been cancelled, never run concurrently.
	assert.Eventually(t, func() bool {
		_, canceled := rec.counts()
		return canceled == 1
	}, time.Second, 5*time.Millisecond)

	rec.results <- Result{Transcript: "Khandala"}

	select {
	case s := <-got:
		assert.Equal(t, "Khandala", s)
	case <-time.After(time.Second):
		t.Fatal("second session transcript never delivered")
	}

	assert.Empty(t, first, "a superseded session must not deliver a result")
}

func TestStopCancelsWithoutCallbacks(t *testing.T) {
	rec := newScriptedRecognizer()
	m := NewSessionManager(rec, logger.NewNop())

	called := false
	errCalled := false
	require.NoError(t, m.Start(context.Background(), func(string) { called = true }, func(error) { errCalled = true }))
	m.Stop()

	assert.Eventually(t, func() bool {
		_, canceled := rec.counts()
		return canceled == 1
	}, time.Second, 5*time.Millisecond)
	assert.False(t, m.Active())
	assert.False(t, called)
	assert.False(t, errCalled)
}

func TestPermissionDeniedSurfacedToCaller(t *testing.T) {
	m := NewSessionManager(&erroringRecognizer{err: ErrPermissionDenied}, logger.NewNop())

	errs := make(chan error, 1)
	require.NoError(t, m.Start(context.Background(), nil, func(err error) { errs <- err }))

	select {
	case err := <-errs:
		assert.ErrorIs(t, err, ErrPermissionDenied)
	case <-time.After(time.Second):
		t.Fatal("error never surfaced")
	}
}

func TestNilRecognizerIsUnsupported(t *testing.T) {
	m := NewSessionManager(nil, logger.NewNop())
	err := m.Start(context.Background(), nil, nil)
	assert.ErrorIs(t, err, ErrUnsupported)
}
