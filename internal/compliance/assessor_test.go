package compliance

import (
	"math/rand"
	"testing"

	"github.com/privameter/privameter/internal/classify"
)

func profileOf(findings ...classify.Finding) classify.Profile {
	sum, pii := 0, 0
	for _, f := range findings {
		sum += f.Score
		if f.IsPII {
			pii++
		}
	}
	overall := 20.0
	if len(findings) > 0 {
		overall = float64(sum)/float64(len(findings)) + float64(5*pii)
		if overall > 100 {
			overall = 100
		}
	}
	return classify.Profile{
		Findings:     findings,
		OverallScore: overall,
		Level:        classify.LevelForScore(overall),
	}
}

func newAssessor(t *testing.T) *Assessor {
	t.Helper()
	a, err := NewAssessor()
	if err != nil {
		t.Fatalf("NewAssessor: %v", err)
	}
	return a
}

func TestAssess_AllFrameworksAlwaysPresent(t *testing.T) {
	a := newAssessor(t)
	results := a.Assess(profileOf())

	if len(results) != 4 {
		t.Fatalf("expected 4 framework results, got %d", len(results))
	}
	for i, fw := range Frameworks() {
		if results[i].Framework != fw {
			t.Errorf("result %d: expected %s, got %s", i, fw, results[i].Framework)
		}
		if len(results[i].Requirements) == 0 {
			t.Errorf("framework %s has no requirement checklist", fw)
		}
	}
}

func TestAssess_BaselineScore(t *testing.T) {
	a := newAssessor(t)

	// A low-sensitivity, non-PII profile takes no penalty at all.
	results := a.Assess(profileOf(classify.Finding{Field: "notes", Type: classify.TypeGeneral, Score: 20}))
	for _, r := range results {
		if r.Score != 85 {
			t.Errorf("%s: expected unpenalized score 85, got %d", r.Framework, r.Score)
		}
		if r.Status != StatusCompliant {
			t.Errorf("%s: expected COMPLIANT, got %s", r.Framework, r.Status)
		}
	}
}

func TestAssess_FrameworkSpecificPenalties(t *testing.T) {
	a := newAssessor(t)

	tests := []struct {
		name     string
		finding  classify.Finding
		fw       Framework
		expected int
	}{
		// Single PII finding: no level penalty (score < 50), no count penalty.
		{"gdpr email", classify.Finding{Field: "email", Type: classify.TypeEmail, IsPII: true, Score: 30}, GDPR, 80},
		{"hipaa medical", classify.Finding{Field: "diagnosis", Type: classify.TypeMedical, IsPII: true, Score: 30}, HIPAA, 75},
		{"ccpa financial", classify.Finding{Field: "salary", Type: classify.TypeFinancial, IsPII: true, Score: 30}, CCPA, 77},
		{"sox no extra rule", classify.Finding{Field: "salary", Type: classify.TypeFinancial, IsPII: true, Score: 30}, SOX, 85},
	}

	for _, tt := range tests {
		results := a.Assess(profileOf(tt.finding))
		for _, r := range results {
			if r.Framework != tt.fw {
				continue
			}
			if r.Score != tt.expected {
				t.Errorf("%s: expected score %d, got %d", tt.name, tt.expected, r.Score)
			}
		}
	}
}

func TestAssess_LevelAndPIICountPenalties(t *testing.T) {
	a := newAssessor(t)

	// Six high-score PII findings: level penalty 15 (TOP_SECRET) + count
	// penalty 10 (pii > 5). SOX has no framework rule, so 85-15-10 = 60.
	findings := make([]classify.Finding, 6)
	for i := range findings {
		findings[i] = classify.Finding{Field: "ssn", Type: classify.TypeSSN, IsPII: true, Score: 95}
	}

	results := a.Assess(profileOf(findings...))
	for _, r := range results {
		if r.Framework == SOX && r.Score != 60 {
			t.Errorf("SOX: expected 60, got %d", r.Score)
		}
	}
}

func TestAssess_ScoreClampedAndStatusDerived_Property(t *testing.T) {
	a := newAssessor(t)
	rng := rand.New(rand.NewSource(42))

	types := []classify.SensitivityType{
		classify.TypeEmail, classify.TypeName, classify.TypeMedical,
		classify.TypeFinancial, classify.TypeSSN, classify.TypeGeneral,
		classify.TypeDate, classify.TypeCreditCard,
	}

	for i := 0; i < 500; i++ {
		n := rng.Intn(12)
		findings := make([]classify.Finding, n)
		for j := range findings {
			findings[j] = classify.Finding{
				Field: "f",
				Type:  types[rng.Intn(len(types))],
				IsPII: rng.Intn(2) == 0,
				Score: rng.Intn(101),
			}
		}

		for _, r := range a.Assess(profileOf(findings...)) {
			if r.Score < 60 || r.Score > 98 {
				t.Fatalf("iteration %d: %s score %d outside [60,98]", i, r.Framework, r.Score)
			}
			if r.Status != StatusForScore(r.Score) {
				t.Fatalf("iteration %d: %s status %s does not match score %d", i, r.Framework, r.Status, r.Score)
			}
			for _, req := range r.Requirements {
				if req.Score < 75 || req.Score > 95 {
					t.Fatalf("iteration %d: requirement %s score %d outside [75,95]", i, req.ID, req.Score)
				}
				wantStatus := RequirementPass
				if req.Score < 85 {
					wantStatus = RequirementPartial
				}
				if req.Status != wantStatus {
					t.Fatalf("iteration %d: requirement %s status %s for score %d", i, req.ID, req.Status, req.Score)
				}
			}
		}
	}
}

func TestStatusForScore_Boundaries(t *testing.T) {
	tests := []struct {
		score    int
		expected Status
	}{
		{98, StatusCompliant},
		{85, StatusCompliant},
		{84, StatusNeedsAttention},
		{70, StatusNeedsAttention},
		{69, StatusNonCompliant},
		{60, StatusNonCompliant},
	}
	for _, tt := range tests {
		if got := StatusForScore(tt.score); got != tt.expected {
			t.Errorf("score %d: expected %s, got %s", tt.score, tt.expected, got)
		}
	}
}
