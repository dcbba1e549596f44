package compliance

// Framework is a named regulatory regime scored independently.
type Framework string

const (
	GDPR  Framework = "GDPR"
	HIPAA Framework = "HIPAA"
	CCPA  Framework = "CCPA"
	SOX   Framework = "SOX"
)

// Frameworks returns the fixed assessment order. Every assessment carries
// exactly one result per framework, in this order.
func Frameworks() []Framework {
	return []Framework{GDPR, HIPAA, CCPA, SOX}
}

// Status is the compliance standing derived from a framework score.
type Status string

const (
	StatusCompliant      Status = "COMPLIANT"
	StatusNeedsAttention Status = "NEEDS_ATTENTION"
	StatusNonCompliant   Status = "NON_COMPLIANT"
)

// StatusForScore maps a framework score to its status.
func StatusForScore(score int) Status {
	switch {
	case score >= 85:
		return StatusCompliant
	case score >= 70:
		return StatusNeedsAttention
	default:
		return StatusNonCompliant
	}
}

// RequirementStatus is the advisory standing of a single named requirement.
type RequirementStatus string

const (
	RequirementPass    RequirementStatus = "PASS"
	RequirementPartial RequirementStatus = "PARTIAL"
)

// RequirementResult is one entry of a framework's requirement checklist.
// Advisory only: checklist scores never feed back into the framework score,
// so a weak checklist cannot double-penalize an already-penalized artifact.
type RequirementResult struct {
	ID     string            `json:"id"`
	Name   string            `json:"name"`
	Score  int               `json:"score"` // 75–95
	Status RequirementStatus `json:"status"`
}

// Result is the assessment outcome for one framework.
// Score is always clamped to [60,98]; Status is fully determined by Score.
type Result struct {
	Framework    Framework           `json:"framework"`
	Score        int                 `json:"score"`
	Status       Status              `json:"status"`
	Requirements []RequirementResult `json:"requirements"`
}
