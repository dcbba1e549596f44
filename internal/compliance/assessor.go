package compliance

import (
	"github.com/privameter/privameter/internal/classify"
)

const (
	baseScore = 85
	minScore  = 60
	maxScore  = 98

	requirementBase = 95
	requirementMin  = 75
	requirementMax  = 95

	// requirementPassThreshold matches the framework COMPLIANT threshold so
	// the two scales read consistently.
	requirementPassThreshold = 85
)

// Assessor scores sensitivity profiles against the regulatory frameworks.
// Its standards catalog is fixed at construction; a single instance is safe
// for concurrent use.
type Assessor struct {
	standards map[Framework]Standard
}

// NewAssessor builds an assessor with the built-in standards catalog.
func NewAssessor() (*Assessor, error) {
	standards, err := loadBuiltinStandards()
	if err != nil {
		return nil, err
	}
	return &Assessor{standards: standards}, nil
}

// Assess produces one Result per framework, in Frameworks() order.
// Each framework is scored independently from the same profile.
func (a *Assessor) Assess(profile classify.Profile) []Result {
	results := make([]Result, 0, len(Frameworks()))
	for _, fw := range Frameworks() {
		results = append(results, a.assessFramework(fw, profile))
	}
	return results
}

func (a *Assessor) assessFramework(fw Framework, profile classify.Profile) Result {
	score := baseScore

	switch {
	case profile.Level.AtLeast(classify.LevelRestricted):
		score -= 15
	case profile.Level == classify.LevelConfidential:
		score -= 10
	}

	pii := profile.PIICount()
	switch {
	case pii > 5:
		score -= 10
	case pii > 2:
		score -= 5
	}

	score -= frameworkPenalty(fw, profile)

	score = clampInt(score, minScore, maxScore)

	return Result{
		Framework:    fw,
		Score:        score,
		Status:       StatusForScore(score),
		Requirements: a.checkRequirements(fw, profile, pii),
	}
}

// frameworkPenalty applies each framework's extra rule. SOX has none.
func frameworkPenalty(fw Framework, profile classify.Profile) int {
	switch fw {
	case GDPR:
		if profile.HasType(classify.TypeEmail) || profile.HasType(classify.TypeName) {
			return 5
		}
	case HIPAA:
		if profile.HasType(classify.TypeMedical) {
			return 10
		}
	case CCPA:
		if profile.HasType(classify.TypeFinancial) {
			return 8
		}
	}
	return 0
}

// checkRequirements builds the advisory checklist for a framework.
// Deterministic: base 95, minus 5 if the profile is at least CONFIDENTIAL,
// minus 5 if any trigger type is present, minus 5 if PII findings exceed 5,
// clamped to [75,95].
func (a *Assessor) checkRequirements(fw Framework, profile classify.Profile, piiCount int) []RequirementResult {
	std := a.standards[fw]
	results := make([]RequirementResult, 0, len(std.Requirements))

	for _, req := range std.Requirements {
		score := requirementBase
		if profile.Level.AtLeast(classify.LevelConfidential) {
			score -= 5
		}
		if hasAnyType(profile, req.TriggerTypes) {
			score -= 5
		}
		if piiCount > 5 {
			score -= 5
		}
		score = clampInt(score, requirementMin, requirementMax)

		status := RequirementPass
		if score < requirementPassThreshold {
			status = RequirementPartial
		}

		results = append(results, RequirementResult{
			ID:     req.ID,
			Name:   req.Name,
			Score:  score,
			Status: status,
		})
	}

	return results
}

func hasAnyType(profile classify.Profile, types []classify.SensitivityType) bool {
	for _, t := range types {
		if profile.HasType(t) {
			return true
		}
	}
	return false
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
