package signal

import (
	"fmt"
	"strings"
)

// ArtifactKind identifies what sort of file an artifact is. The kind decides
// which classification table applies to its signals.
type ArtifactKind string

const (
	KindTabular ArtifactKind = "tabular"
	KindImage   ArtifactKind = "image"
	KindTextual ArtifactKind = "textual"
)

// ParseKind converts a string to an ArtifactKind, case-insensitively.
func ParseKind(s string) (ArtifactKind, error) {
	switch ArtifactKind(strings.ToLower(strings.TrimSpace(s))) {
	case KindTabular:
		return KindTabular, nil
	case KindImage:
		return KindImage, nil
	case KindTextual:
		return KindTextual, nil
	default:
		return "", fmt.Errorf("%w: unknown artifact kind %q", ErrInvalidInput, s)
	}
}

// SignalKind identifies what kind of feature an extractor detected.
type SignalKind string

const (
	SignalFieldName      SignalKind = "field-name"      // tabular column name
	SignalDetectedObject SignalKind = "detected-object" // object found in an image
	SignalDetectedEntity SignalKind = "detected-entity" // entity found in a document
)

// ExtractedSignal is one detected feature from an artifact, produced by the
// external feature extractor. Immutable once created.
type ExtractedSignal struct {
	Name       string     `json:"name"`
	Kind       SignalKind `json:"kind"`
	Confidence float64    `json:"confidence"` // 0.0–1.0, extractor's certainty
}

// ArtifactAnalysis is the engine's input for one artifact: the artifact's
// identity plus the structured signals the extractor produced for it.
// The engine never sees raw file bytes.
type ArtifactAnalysis struct {
	ArtifactID string            `json:"artifact_id"`
	Name       string            `json:"name"`
	Kind       ArtifactKind      `json:"kind"`
	Signals    []ExtractedSignal `json:"signals"`
}

// Validate checks the analysis for malformed or missing required fields.
// An empty signal list is valid; absence of signals is not an error.
func (a ArtifactAnalysis) Validate() error {
	switch a.Kind {
	case KindTabular, KindImage, KindTextual:
	default:
		return fmt.Errorf("%w: missing or unknown artifact kind %q", ErrInvalidInput, a.Kind)
	}
	for i, s := range a.Signals {
		if strings.TrimSpace(s.Name) == "" {
			return fmt.Errorf("%w: signal %d has empty name", ErrInvalidInput, i)
		}
		switch s.Kind {
		case SignalFieldName, SignalDetectedObject, SignalDetectedEntity:
		default:
			return fmt.Errorf("%w: signal %q has unknown kind %q", ErrInvalidInput, s.Name, s.Kind)
		}
		if s.Confidence < 0 || s.Confidence > 1 {
			return fmt.Errorf("%w: signal %q confidence %v out of range [0,1]", ErrInvalidInput, s.Name, s.Confidence)
		}
	}
	return nil
}
