package source

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cloudsecure-ai/cloudsecure/internal/domain"
	apperrors "github.com/cloudsecure-ai/cloudsecure/internal/errors"
)

// logContainer is the input artifact shape: a JSON object whose Records
// field holds the ordered event sequence. CloudTrail log files and
// fetchlogs output both use it.
type logContainer struct {
	Records []domain.EventRecord `json:"Records"`
}

// FileSource loads and writes input artifacts on local storage.
type FileSource struct {
	logger *slog.Logger
}

func NewFileSource(logger *slog.Logger) *FileSource {
	return &FileSource{logger: logger}
}

// Load reads the artifact at path and returns its event sequence. A
// missing or unparsable file is an input error; an artifact without a
// Records field is simply zero events.
func (s *FileSource) Load(path string) ([]domain.EventRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInputArtifact, err)
	}

	var container logContainer
	if err := json.Unmarshal(data, &container); err != nil {
		return nil, fmt.Errorf("%w: failed to parse %s: %v", apperrors.ErrInputArtifact, path, err)
	}

	s.logger.Info("loaded events from artifact", "path", path, "events", len(container.Records))
	return container.Records, nil
}

// Write saves an event sequence as an input artifact, creating
// intermediate directories as needed.
func (s *FileSource) Write(path string, events []domain.EventRecord) error {
	data, err := json.MarshalIndent(logContainer{Records: events}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal artifact: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create artifact directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write artifact: %w", err)
	}

	s.logger.Info("wrote events to artifact", "path", path, "events", len(events))
	return nil
}
