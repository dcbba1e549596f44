package assess

import (
	"math"

	"github.com/privameter/privameter/internal/classify"
	"github.com/privameter/privameter/internal/compliance"
	"github.com/privameter/privameter/internal/recommend"
	"github.com/privameter/privameter/internal/signal"
)

// Score weights: compliance posture dominates, sensitivity exposure and
// mitigation effectiveness split the rest.
const (
	complianceWeight    = 0.4
	sensitivityWeight   = 0.3
	effectivenessWeight = 0.3
)

// Engine runs the full per-artifact assessment pipeline: classification,
// compliance scoring, technique recommendation, score aggregation, risk
// tiering, and explanation generation.
//
// An Engine holds only read-only tables fixed at construction, so a single
// instance may assess any number of artifacts concurrently. Construct it once
// and pass it to whoever needs it; there is no package-level instance.
type Engine struct {
	classifier *classify.Classifier
	assessor   *compliance.Assessor
}

// NewEngine builds an engine with the built-in classification rules.
func NewEngine() (*Engine, error) {
	return NewEngineWithRules(classify.DefaultFieldRules())
}

// NewEngineWithRules builds an engine with a custom tabular rule table
// (typically DefaultFieldRules extended by LoadRulePacks).
func NewEngineWithRules(fieldRules []classify.FieldRule) (*Engine, error) {
	assessor, err := compliance.NewAssessor()
	if err != nil {
		return nil, err
	}
	return &Engine{
		classifier: classify.NewClassifier(fieldRules),
		assessor:   assessor,
	}, nil
}

// Assess produces the privacy assessment for one artifact. It never fails on
// an empty signal list, only on malformed input. The returned assessment is
// owned by the caller; the engine keeps no reference to it.
func (e *Engine) Assess(analysis signal.ArtifactAnalysis) (PrivacyAssessment, error) {
	if err := analysis.Validate(); err != nil {
		return PrivacyAssessment{}, err
	}

	sensitivity := e.classifier.Classify(analysis.Kind, analysis.Signals)
	results := e.assessor.Assess(sensitivity)
	recs := recommend.Recommend(sensitivity, analysis.Kind)

	score := aggregateScore(results, sensitivity, recs)
	risk := RiskForScore(score)

	assessment := PrivacyAssessment{
		ArtifactID:      analysis.ArtifactID,
		ArtifactName:    analysis.Name,
		Kind:            analysis.Kind,
		OverallScore:    score,
		RiskLevel:       risk,
		Sensitivity:     sensitivity,
		Compliance:      results,
		Recommendations: recs,
	}
	assessment.Explanations = explain(assessment)

	return assessment, nil
}

// aggregateScore combines the three signals into one overall privacy score:
// round(0.4*meanCompliance + 0.3*(100-sensitivity) + 0.3*meanEffectiveness).
// With no recommendations the effectiveness term is 0, never NaN.
func aggregateScore(results []compliance.Result, sensitivity classify.Profile, recs []recommend.Recommendation) int {
	meanCompliance := 0.0
	if len(results) > 0 {
		sum := 0
		for _, r := range results {
			sum += r.Score
		}
		meanCompliance = float64(sum) / float64(len(results))
	}

	meanEffectiveness := 0.0
	if len(recs) > 0 {
		sum := 0
		for _, r := range recs {
			sum += recommend.Effectiveness(r.Technique)
		}
		meanEffectiveness = float64(sum) / float64(len(recs))
	}

	score := complianceWeight*meanCompliance +
		sensitivityWeight*(100-sensitivity.OverallScore) +
		effectivenessWeight*meanEffectiveness

	return int(math.Round(score))
}
