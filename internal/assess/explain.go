package assess

import (
	"fmt"

	"github.com/privameter/privameter/internal/compliance"
	"github.com/privameter/privameter/internal/recommend"
)

// explain builds the deterministic rationale for an assessment. Pure function
// of its input: fixed template per score band and risk tier, the top two
// recommendations echoed with their effectiveness, and a compliance rollup.
func explain(a PrivacyAssessment) Explanation {
	return Explanation{
		Score:           scoreExplanation(a.OverallScore),
		Risk:            riskExplanation(a.RiskLevel),
		Recommendations: recommendationExplanations(a.Recommendations),
		Compliance:      complianceSummary(a.Compliance),
	}
}

func scoreExplanation(score int) string {
	switch {
	case score >= 85:
		return fmt.Sprintf("Privacy score %d/100: strong privacy posture with minimal residual exposure.", score)
	case score >= 70:
		return fmt.Sprintf("Privacy score %d/100: adequate posture, but identified gaps should be scheduled for remediation.", score)
	case score >= 55:
		return fmt.Sprintf("Privacy score %d/100: significant exposure; apply the recommended techniques before sharing this data.", score)
	default:
		return fmt.Sprintf("Privacy score %d/100: severe exposure; this artifact should not be processed further without mitigation.", score)
	}
}

func riskExplanation(risk RiskLevel) string {
	switch risk {
	case RiskLow:
		return "Risk level LOW: routine handling controls are sufficient."
	case RiskMedium:
		return "Risk level MEDIUM: restrict access and track remediation of flagged findings."
	case RiskHigh:
		return "Risk level HIGH: limit this artifact to need-to-know access until mitigations are applied."
	default:
		return "Risk level CRITICAL: quarantine this artifact and involve the data protection owner immediately."
	}
}

// recommendationExplanations echoes the top two recommendations. Fewer than
// two recommendations yield a correspondingly shorter list.
func recommendationExplanations(recs []recommend.Recommendation) []RecommendationExplanation {
	top := recs
	if len(top) > 2 {
		top = top[:2]
	}
	out := make([]RecommendationExplanation, 0, len(top))
	for _, r := range top {
		out = append(out, RecommendationExplanation{
			Technique:     r.Technique,
			Reason:        r.Reason,
			Effectiveness: recommend.Effectiveness(r.Technique),
		})
	}
	return out
}

func complianceSummary(results []compliance.Result) ComplianceSummary {
	summary := ComplianceSummary{
		TotalFrameworks: len(results),
		NeedsAttention:  []FrameworkAttention{},
	}
	for _, r := range results {
		if r.Status == compliance.StatusCompliant {
			summary.CompliantCount++
			continue
		}
		summary.NeedsAttention = append(summary.NeedsAttention, FrameworkAttention{
			Framework: r.Framework,
			Score:     r.Score,
			Status:    r.Status,
		})
	}
	return summary
}
