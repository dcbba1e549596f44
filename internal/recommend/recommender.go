package recommend

import (
	"github.com/privameter/privameter/internal/classify"
	"github.com/privameter/privameter/internal/signal"
)

// maxRecommendations caps the list per artifact.
const maxRecommendations = 4

// tabularPIIThreshold: tabular artifacts with more PII fields than this get
// an l-diversity recommendation in the kind-specific pass.
const tabularPIIThreshold = 3

// Recommend proposes techniques for an artifact, built in two passes: first
// by sensitivity tier, then by artifact kind. The list keeps insertion order
// and is truncated to the first four entries. Duplicate techniques across the
// two passes are legal and kept; the ordering is a reproducibility contract,
// not a presentation choice, so the list is never re-sorted by priority.
func Recommend(profile classify.Profile, kind signal.ArtifactKind) []Recommendation {
	recs := tierPass(profile.Level)
	recs = append(recs, kindPass(profile, kind)...)

	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}

func tierPass(level classify.SensitivityLevel) []Recommendation {
	switch level {
	case classify.LevelTopSecret, classify.LevelRestricted:
		return []Recommendation{
			{HomomorphicEncryption, PriorityHigh, "Highly sensitive data should be computed on without decryption"},
			{SecureMultiparty, PriorityHigh, "Joint computation without exposing raw records"},
		}
	case classify.LevelConfidential:
		return []Recommendation{
			{DifferentialPrivacy, PriorityHigh, "Statistical noise protects individuals in aggregate queries"},
			{FederatedLearning, PriorityMedium, "Train models without centralizing confidential records"},
		}
	case classify.LevelInternal:
		return []Recommendation{
			{KAnonymity, PriorityMedium, "Generalize quasi-identifiers until records are indistinguishable"},
			{Tokenization, PriorityMedium, "Replace identifying values with non-reversible tokens"},
		}
	default: // PUBLIC
		return []Recommendation{
			{DataMasking, PriorityLow, "Mask residual identifiers before publication"},
		}
	}
}

func kindPass(profile classify.Profile, kind signal.ArtifactKind) []Recommendation {
	switch kind {
	case signal.KindTabular:
		if profile.PIICount() > tabularPIIThreshold {
			return []Recommendation{
				{LDiversity, PriorityMedium, "Many PII columns call for diversity within anonymized groups"},
			}
		}
	case signal.KindImage:
		return []Recommendation{
			{FederatedLearning, PriorityHigh, "Keep image data on-device and share only model updates"},
		}
	case signal.KindTextual:
		return []Recommendation{
			{Tokenization, PriorityHigh, "Tokenize detected entities before downstream processing"},
		}
	}
	return nil
}
