package assess

import (
	"github.com/privameter/privameter/internal/classify"
	"github.com/privameter/privameter/internal/compliance"
	"github.com/privameter/privameter/internal/recommend"
	"github.com/privameter/privameter/internal/signal"
)

// RiskLevel is the discrete risk tier derived from the overall privacy score.
// Higher scores mean better privacy posture, so LOW is the best tier.
type RiskLevel string

const (
	RiskLow      RiskLevel = "LOW"
	RiskMedium   RiskLevel = "MEDIUM"
	RiskHigh     RiskLevel = "HIGH"
	RiskCritical RiskLevel = "CRITICAL"
)

// RiskForScore maps an overall privacy score to its risk tier.
func RiskForScore(score int) RiskLevel {
	switch {
	case score >= 85:
		return RiskLow
	case score >= 70:
		return RiskMedium
	case score >= 55:
		return RiskHigh
	default:
		return RiskCritical
	}
}

// PrivacyAssessment is the engine's full output for one artifact.
// Constructed once, never mutated afterwards.
type PrivacyAssessment struct {
	ArtifactID      string                     `json:"artifact_id"`
	ArtifactName    string                     `json:"artifact_name"`
	Kind            signal.ArtifactKind        `json:"kind"`
	OverallScore    int                        `json:"overall_score"` // 0–100
	RiskLevel       RiskLevel                  `json:"risk_level"`
	Sensitivity     classify.Profile           `json:"sensitivity"`
	Compliance      []compliance.Result        `json:"compliance"` // one per framework, always 4
	Recommendations []recommend.Recommendation `json:"recommendations"`
	Explanations    Explanation                `json:"explanations"`
}

// Explanation is the deterministic human-readable rationale for an assessment.
type Explanation struct {
	Score           string                      `json:"score"`
	Risk            string                      `json:"risk"`
	Recommendations []RecommendationExplanation `json:"recommendations"` // top 2
	Compliance      ComplianceSummary           `json:"compliance"`
}

// RecommendationExplanation echoes one recommended technique with its reason
// and fixed effectiveness rating.
type RecommendationExplanation struct {
	Technique     recommend.Technique `json:"technique"`
	Reason        string              `json:"reason"`
	Effectiveness int                 `json:"effectiveness"`
}

// ComplianceSummary condenses the four framework results.
type ComplianceSummary struct {
	CompliantCount  int                  `json:"compliant_count"`
	TotalFrameworks int                  `json:"total_frameworks"`
	NeedsAttention  []FrameworkAttention `json:"needs_attention"`
}

// FrameworkAttention flags a framework whose score fell below COMPLIANT.
type FrameworkAttention struct {
	Framework compliance.Framework `json:"framework"`
	Score     int                  `json:"score"`
	Status    compliance.Status    `json:"status"`
}
