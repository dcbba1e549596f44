package session

import (
	"errors"
	"sort"

	"github.com/privameter/privameter/internal/assess"
	"github.com/privameter/privameter/internal/classify"
	"github.com/privameter/privameter/internal/compliance"
	"github.com/privameter/privameter/internal/recommend"
)

// ErrEmptyBatch is returned when a summary is requested over zero
// assessments; there is no meaningful average over zero items.
var ErrEmptyBatch = errors.New("empty batch")

// DashboardSummary rolls a batch of per-artifact assessments into one
// dashboard view. Built only after every assessment in the batch exists;
// consumes them read-only.
type DashboardSummary struct {
	ArtifactCount     int                              `json:"artifact_count"`
	AverageScore      float64                          `json:"average_score"`
	OverallRisk       assess.RiskLevel                 `json:"overall_risk"`
	RiskDistribution  map[assess.RiskLevel]int         `json:"risk_distribution"`
	FrameworkAverages map[compliance.Framework]float64 `json:"framework_averages"`
	Techniques        []recommend.Technique            `json:"techniques"` // set union, sorted
	PIITypes          []classify.SensitivityType       `json:"pii_types"`  // set union, sorted
	TotalPIIFields    int                              `json:"total_pii_fields"`
	UniquePIIFields   int                              `json:"unique_pii_fields"`
}

// Summarize reduces a batch of assessments to a DashboardSummary. The
// reduction is commutative and associative over the input, so the result is
// invariant under permutation: artifacts may arrive in any order from
// concurrent processing.
func Summarize(assessments []assess.PrivacyAssessment) (DashboardSummary, error) {
	if len(assessments) == 0 {
		return DashboardSummary{}, ErrEmptyBatch
	}

	summary := DashboardSummary{
		ArtifactCount:    len(assessments),
		RiskDistribution: make(map[assess.RiskLevel]int),
	}

	scoreSum := 0
	frameworkSums := make(map[compliance.Framework]int)
	frameworkCounts := make(map[compliance.Framework]int)
	techniques := make(map[recommend.Technique]bool)
	piiTypes := make(map[classify.SensitivityType]bool)
	piiFields := make(map[string]bool)

	for _, a := range assessments {
		scoreSum += a.OverallScore
		summary.RiskDistribution[a.RiskLevel]++

		for _, r := range a.Compliance {
			frameworkSums[r.Framework] += r.Score
			frameworkCounts[r.Framework]++
		}
		for _, rec := range a.Recommendations {
			techniques[rec.Technique] = true
		}
		for _, f := range a.Sensitivity.Findings {
			if !f.IsPII {
				continue
			}
			summary.TotalPIIFields++
			piiTypes[f.Type] = true
			piiFields[f.Field] = true
		}
	}

	summary.AverageScore = float64(scoreSum) / float64(len(assessments))
	summary.OverallRisk = assess.RiskForScore(int(summary.AverageScore + 0.5))
	summary.UniquePIIFields = len(piiFields)

	summary.FrameworkAverages = make(map[compliance.Framework]float64, len(frameworkSums))
	for fw, sum := range frameworkSums {
		summary.FrameworkAverages[fw] = float64(sum) / float64(frameworkCounts[fw])
	}

	summary.Techniques = sortedTechniques(techniques)
	summary.PIITypes = sortedTypes(piiTypes)

	return summary, nil
}

func sortedTechniques(set map[recommend.Technique]bool) []recommend.Technique {
	out := make([]recommend.Technique, 0, len(set))
	for t := range set {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func sortedTypes(set map[classify.SensitivityType]bool) []classify.SensitivityType {
	out := make([]classify.SensitivityType, 0, len(set))
	for t := range set {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
