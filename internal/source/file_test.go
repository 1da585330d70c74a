package source_test

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudsecure-ai/cloudsecure/internal/domain"
	apperrors "github.com/cloudsecure-ai/cloudsecure/internal/errors"
	"github.com/cloudsecure-ai/cloudsecure/internal/source"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "events.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Records(t *testing.T) {
	path := writeTemp(t, `{"Records": [{"eventName": "ConsoleLogin", "sourceIPAddress": "1.2.3.4"}, {"eventName": "CreateUser"}]}`)

	events, err := source.NewFileSource(testLogger()).Load(path)

	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "ConsoleLogin", events[0].EventName())
	assert.Equal(t, "1.2.3.4", events[0].SourceIP())
	assert.Equal(t, "CreateUser", events[1].EventName())
}

// An artifact without a Records field means zero events, not an error.
func TestLoad_MissingRecordsField(t *testing.T) {
	path := writeTemp(t, `{"NotRecords": []}`)

	events, err := source.NewFileSource(testLogger()).Load(path)

	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := source.NewFileSource(testLogger()).Load(filepath.Join(t.TempDir(), "absent.json"))

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInputArtifact)
}

func TestLoad_MalformedJSON(t *testing.T) {
	path := writeTemp(t, `{"Records": [`)

	_, err := source.NewFileSource(testLogger()).Load(path)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInputArtifact)
}

func TestWrite_RoundTrip(t *testing.T) {
	files := source.NewFileSource(testLogger())
	path := filepath.Join(t.TempDir(), "nested", "dir", "events.json")
	events := []domain.EventRecord{
		{"eventName": "DeleteBucket", "sourceIPAddress": "5.6.7.8"},
	}

	require.NoError(t, files.Write(path, events))

	loaded, err := files.Load(path)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "DeleteBucket", loaded[0].EventName())
}
