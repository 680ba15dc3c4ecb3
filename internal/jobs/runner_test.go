package jobs

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRunner() *Runner {
	return NewRunner(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func waitDone(t *testing.T, h *Handle) {
	t.Helper()
	select {
	case <-h.Done():
	case <-time.After(2 * time.Second):
		t.Fatalf("job %s did not finish", h.Name)
	}
}

func TestSubmit_DoesNotBlock(t *testing.T) {
	r := newRunner()
	release := make(chan struct{})

	h := r.Submit("slow", func(ctx context.Context) error {
		<-release
		return nil
	})

	select {
	case <-h.Done():
		t.Fatal("handle finished before task was released")
	default:
	}

	close(release)
	waitDone(t, h)
	assert.NoError(t, h.Err())
}

func TestSubmit_ContextLivesUntilShutdown(t *testing.T) {
	r := newRunner()
	release := make(chan struct{})

	h := r.Submit("detached", func(ctx context.Context) error {
		<-release
		return ctx.Err()
	})
	close(release)

	waitDone(t, h)
	assert.NoError(t, h.Err())
}

func TestSubmit_ReportsError(t *testing.T) {
	boom := errors.New("boom")
	h := newRunner().Submit("fails", func(context.Context) error { return boom })

	waitDone(t, h)
	assert.ErrorIs(t, h.Err(), boom)
}

func TestSubmit_RecoversPanic(t *testing.T) {
	h := newRunner().Submit("panics", func(context.Context) error { panic("kaboom") })

	waitDone(t, h)
	require.Error(t, h.Err())
	assert.Contains(t, h.Err().Error(), "kaboom")
}

func TestShutdown_CancelsAndWaits(t *testing.T) {
	r := newRunner()
	h := r.Submit("long", func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, r.Shutdown(ctx))

	waitDone(t, h)
	assert.ErrorIs(t, h.Err(), context.Canceled)

	late := r.Submit("late", func(context.Context) error { return nil })
	waitDone(t, late)
	assert.ErrorIs(t, late.Err(), ErrShutdown)
}

func TestShutdown_DeadlineExceeded(t *testing.T) {
	r := newRunner()
	release := make(chan struct{})
	defer close(release)

	r.Submit("stubborn", func(context.Context) error {
		<-release
		return nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, r.Shutdown(ctx), context.DeadlineExceeded)
}
