package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLogUseCaseObserver_WritesEvent(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf)
	ctx := WithSessionID(context.Background(), "sess-123")

	obs.ObserveUseCase(ctx, UseCaseEvent{
		Name:     "save-favorite",
		Duration: 3 * time.Millisecond,
		Success:  true,
		Fields:   map[string]any{"festival_id": "diwali"},
	})

	out := buf.String()
	assert.Contains(t, out, "msg=service_use_case")
	assert.Contains(t, out, "use_case=save-favorite")
	assert.Contains(t, out, "duration_ms=3")
	assert.Contains(t, out, "session_id=sess-123")
	assert.Contains(t, out, "festival_id=diwali")
}

func TestLogUseCaseObserver_ErrorLevel(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "prune-favorites", Err: errors.New("locked")})

	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), `error=locked`)
	assert.NotContains(t, buf.String(), "session_id")
}

func TestNewLogUseCaseObserver_NilWriterIsNoop(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil))
}

func TestSessionIDFrom_Empty(t *testing.T) {
	assert.Equal(t, "", SessionIDFrom(context.Background()))
}
