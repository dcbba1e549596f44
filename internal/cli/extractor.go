package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/privameter/privameter/internal/signal"
)

// signalFile is the on-disk input format: one artifact's pre-extracted
// signals, as produced by an upstream feature extractor.
type signalFile struct {
	ArtifactID string                   `json:"artifact_id"`
	Name       string                   `json:"name"`
	Kind       string                   `json:"kind"`
	Signals    []signal.ExtractedSignal `json:"signals"`
}

func loadSignalFile(path string) (signal.ArtifactAnalysis, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return signal.ArtifactAnalysis{}, &signal.ExtractionError{Reason: err.Error()}
	}

	var sf signalFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return signal.ArtifactAnalysis{}, &signal.ExtractionError{Reason: fmt.Sprintf("malformed signal file %s: %v", path, err)}
	}

	kind, err := signal.ParseKind(sf.Kind)
	if err != nil {
		return signal.ArtifactAnalysis{}, err
	}

	name := sf.Name
	if name == "" {
		name = path
	}
	return signal.ArtifactAnalysis{
		ArtifactID: sf.ArtifactID,
		Name:       name,
		Kind:       kind,
		Signals:    sf.Signals,
	}, nil
}

// fileExtractor adapts signal files on disk to the engine's Extractor
// interface; the "path" metadata key names the file. It stands in for the
// real extraction service in batch runs.
type fileExtractor struct{}

func (fileExtractor) Extract(kind signal.ArtifactKind, metadata map[string]string) ([]signal.ExtractedSignal, error) {
	analysis, err := loadSignalFile(metadata["path"])
	if err != nil {
		return nil, err
	}
	if analysis.Kind != kind {
		return nil, &signal.ExtractionError{
			Reason: fmt.Sprintf("signal file %s declares kind %s, requested %s", metadata["path"], analysis.Kind, kind),
		}
	}
	return analysis.Signals, nil
}
