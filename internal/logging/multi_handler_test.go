package logging

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sinkHandler struct {
	level   slog.Level
	err     error
	handled int
}

func (s *sinkHandler) Enabled(_ context.Context, level slog.Level) bool { return level >= s.level }
func (s *sinkHandler) Handle(_ context.Context, _ slog.Record) error {
	s.handled++
	return s.err
}
func (s *sinkHandler) WithAttrs(_ []slog.Attr) slog.Handler { return s }
func (s *sinkHandler) WithGroup(_ string) slog.Handler      { return s }

func TestMultiHandler_FailingSinkDoesNotStarveOthers(t *testing.T) {
	broken := &sinkHandler{level: slog.LevelInfo, err: errors.New("sink down")}
	healthy := &sinkHandler{level: slog.LevelInfo}
	m := NewMultiHandler(broken, healthy)

	record := slog.NewRecord(time.Now(), slog.LevelError, "boom", 0)
	err := m.Handle(context.Background(), record)

	require.Error(t, err)
	assert.Equal(t, 1, broken.handled)
	assert.Equal(t, 1, healthy.handled)
}

func TestLevel_FromEnvironment(t *testing.T) {
	t.Setenv("LOG_LEVEL", "WARN")
	assert.Equal(t, slog.LevelWarn, Level())

	t.Setenv("LOG_LEVEL", "nonsense")
	assert.Equal(t, slog.LevelInfo, Level())
}

func TestMultiHandler_RespectsPerSinkLevels(t *testing.T) {
	verbose := &sinkHandler{level: slog.LevelDebug}
	errorsOnly := &sinkHandler{level: slog.LevelError}
	m := NewMultiHandler(verbose, errorsOnly)

	assert.True(t, m.Enabled(context.Background(), slog.LevelDebug))

	record := slog.NewRecord(time.Now(), slog.LevelInfo, "routine", 0)
	require.NoError(t, m.Handle(context.Background(), record))
	assert.Equal(t, 1, verbose.handled)
	assert.Equal(t, 0, errorsOnly.handled)
}
