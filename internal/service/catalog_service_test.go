package service

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_LoadsBundledCatalog(t *testing.T) {
	svc := NewCatalogService("", nil)

	cat, warns, err := svc.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, warns)
	assert.True(t, cat.Has("diwali"))
}

func TestCatalogService_LogsExcludedRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "festivals.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"id": "holi", "name": "Holi", "date": "2026-03-04"},
		{"id": "broken", "name": "Broken", "date": "someday"}
	]`), 0o644))

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	svc := NewCatalogService(path, logger)

	cat, warns, err := svc.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, cat.Len())
	require.Len(t, warns, 1)
	assert.Contains(t, logs.String(), "level=WARN")
	assert.Contains(t, logs.String(), "id=broken")
}

func TestCatalogService_UnreadableFileFails(t *testing.T) {
	obs := &recordingObserver{}
	svc := NewCatalogService(filepath.Join(t.TempDir(), "missing.yaml"), nil, obs)

	_, _, err := svc.Load(context.Background())
	require.Error(t, err)
	require.Len(t, obs.events, 1)
	assert.False(t, obs.events[0].Success)
}
