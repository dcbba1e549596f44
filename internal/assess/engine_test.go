package assess

import (
	"errors"
	"reflect"
	"testing"

	"github.com/privameter/privameter/internal/classify"
	"github.com/privameter/privameter/internal/compliance"
	"github.com/privameter/privameter/internal/recommend"
	"github.com/privameter/privameter/internal/signal"
)

func newEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine()
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return e
}

func tabularAnalysis(fields ...string) signal.ArtifactAnalysis {
	signals := make([]signal.ExtractedSignal, len(fields))
	for i, f := range fields {
		signals[i] = signal.ExtractedSignal{Name: f, Kind: signal.SignalFieldName, Confidence: 0.9}
	}
	return signal.ArtifactAnalysis{
		ArtifactID: "a1",
		Name:       "customers.csv",
		Kind:       signal.KindTabular,
		Signals:    signals,
	}
}

func TestAssess_PinnedTabularScenario(t *testing.T) {
	e := newEngine(t)

	a, err := e.Assess(tabularAnalysis("ssn", "email", "notes"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Sensitivity: mean(95,80,20)+5*2 = 75 → RESTRICTED.
	if a.Sensitivity.OverallScore != 75 || a.Sensitivity.Level != classify.LevelRestricted {
		t.Errorf("sensitivity: got %v/%s", a.Sensitivity.OverallScore, a.Sensitivity.Level)
	}

	// GDPR penalized for the EMAIL match: 85-15(level)-0(pii=2)-5(email) = 65.
	var gdpr compliance.Result
	for _, r := range a.Compliance {
		if r.Framework == compliance.GDPR {
			gdpr = r
		}
	}
	if gdpr.Score != 65 || gdpr.Status != compliance.StatusNonCompliant {
		t.Errorf("GDPR: expected 65/NON_COMPLIANT, got %d/%s", gdpr.Score, gdpr.Status)
	}

	// RESTRICTED tabular with 2 PII fields: tier pair only.
	wantRecs := []recommend.Technique{recommend.HomomorphicEncryption, recommend.SecureMultiparty}
	if len(a.Recommendations) != len(wantRecs) {
		t.Fatalf("expected %d recommendations, got %d", len(wantRecs), len(a.Recommendations))
	}
	for i, w := range wantRecs {
		if a.Recommendations[i].Technique != w {
			t.Errorf("recommendation %d: expected %s, got %s", i, w, a.Recommendations[i].Technique)
		}
	}

	// Aggregate: compliance (65,70,70,70)→68.75, sensitivity 75, effectiveness
	// (95+92)/2=93.5 → 0.4*68.75 + 0.3*25 + 0.3*93.5 = 63.05 → 63 → HIGH.
	if a.OverallScore != 63 {
		t.Errorf("expected overall score 63, got %d", a.OverallScore)
	}
	if a.RiskLevel != RiskHigh {
		t.Errorf("expected risk HIGH, got %s", a.RiskLevel)
	}
}

func TestAssess_EmptySignalsIsNotAnError(t *testing.T) {
	e := newEngine(t)

	a, err := e.Assess(signal.ArtifactAnalysis{
		ArtifactID: "empty",
		Name:       "blank.csv",
		Kind:       signal.KindTabular,
	})
	if err != nil {
		t.Fatalf("unexpected error for empty signals: %v", err)
	}
	if a.Sensitivity.OverallScore != 20 || a.Sensitivity.Level != classify.LevelInternal {
		t.Errorf("expected 20/INTERNAL, got %v/%s", a.Sensitivity.OverallScore, a.Sensitivity.Level)
	}
	if len(a.Compliance) != 4 {
		t.Errorf("expected 4 compliance results, got %d", len(a.Compliance))
	}
}

func TestAssess_InvalidInput(t *testing.T) {
	e := newEngine(t)

	tests := []struct {
		name     string
		analysis signal.ArtifactAnalysis
	}{
		{"missing kind", signal.ArtifactAnalysis{ArtifactID: "x"}},
		{"unknown kind", signal.ArtifactAnalysis{Kind: "spreadsheet"}},
		{"empty signal name", signal.ArtifactAnalysis{
			Kind:    signal.KindTabular,
			Signals: []signal.ExtractedSignal{{Name: "", Kind: signal.SignalFieldName, Confidence: 0.5}},
		}},
		{"confidence out of range", signal.ArtifactAnalysis{
			Kind:    signal.KindTabular,
			Signals: []signal.ExtractedSignal{{Name: "email", Kind: signal.SignalFieldName, Confidence: 1.5}},
		}},
	}

	for _, tt := range tests {
		if _, err := e.Assess(tt.analysis); !errors.Is(err, signal.ErrInvalidInput) {
			t.Errorf("%s: expected ErrInvalidInput, got %v", tt.name, err)
		}
	}
}

func TestAggregateScore_MonotoneInSensitivity(t *testing.T) {
	results := []compliance.Result{
		{Framework: compliance.GDPR, Score: 80},
		{Framework: compliance.HIPAA, Score: 80},
		{Framework: compliance.CCPA, Score: 80},
		{Framework: compliance.SOX, Score: 80},
	}
	recs := []recommend.Recommendation{
		{Technique: recommend.Tokenization, Priority: recommend.PriorityMedium},
	}

	prev := 101
	for s := 0.0; s <= 100; s++ {
		got := aggregateScore(results, classify.Profile{OverallScore: s}, recs)
		if got > prev {
			t.Fatalf("score rose from %d to %d when sensitivity rose to %v", prev, got, s)
		}
		prev = got
	}
}

func TestAggregateScore_NoRecommendationsIsDefined(t *testing.T) {
	results := []compliance.Result{
		{Framework: compliance.GDPR, Score: 85},
		{Framework: compliance.HIPAA, Score: 85},
		{Framework: compliance.CCPA, Score: 85},
		{Framework: compliance.SOX, Score: 85},
	}

	// Effectiveness term contributes 0, not NaN: 0.4*85 + 0.3*80 + 0 = 58.
	got := aggregateScore(results, classify.Profile{OverallScore: 20}, nil)
	if got != 58 {
		t.Errorf("expected 58, got %d", got)
	}
}

func TestRiskForScore_Boundaries(t *testing.T) {
	tests := []struct {
		score    int
		expected RiskLevel
	}{
		{100, RiskLow},
		{85, RiskLow},
		{84, RiskMedium},
		{70, RiskMedium},
		{69, RiskHigh},
		{55, RiskHigh},
		{54, RiskCritical},
		{0, RiskCritical},
	}
	for _, tt := range tests {
		if got := RiskForScore(tt.score); got != tt.expected {
			t.Errorf("score %d: expected %s, got %s", tt.score, tt.expected, got)
		}
	}
}

func TestAssess_Deterministic(t *testing.T) {
	e := newEngine(t)
	analysis := tabularAnalysis("ssn", "email", "salary", "notes", "phone")

	first, err := e.Assess(analysis)
	if err != nil {
		t.Fatal(err)
	}
	second, err := e.Assess(analysis)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("assessments differ between identical calls")
	}
}

func TestExplain_TopTwoAndComplianceSummary(t *testing.T) {
	e := newEngine(t)

	a, err := e.Assess(tabularAnalysis("ssn", "email", "diagnosis", "salary"))
	if err != nil {
		t.Fatal(err)
	}

	if len(a.Explanations.Recommendations) != 2 {
		t.Fatalf("expected top-2 recommendation explanations, got %d", len(a.Explanations.Recommendations))
	}
	for i, re := range a.Explanations.Recommendations {
		if re.Technique != a.Recommendations[i].Technique {
			t.Errorf("explanation %d echoes %s, recommendation is %s", i, re.Technique, a.Recommendations[i].Technique)
		}
		if re.Effectiveness != recommend.Effectiveness(re.Technique) {
			t.Errorf("explanation %d effectiveness %d does not match table", i, re.Effectiveness)
		}
		if re.Reason == "" {
			t.Errorf("explanation %d has empty reason", i)
		}
	}

	sum := a.Explanations.Compliance
	if sum.TotalFrameworks != 4 {
		t.Errorf("expected 4 total frameworks, got %d", sum.TotalFrameworks)
	}
	if sum.CompliantCount+len(sum.NeedsAttention) != 4 {
		t.Errorf("compliant %d + attention %d does not cover all frameworks",
			sum.CompliantCount, len(sum.NeedsAttention))
	}
	for _, fa := range sum.NeedsAttention {
		if fa.Status == compliance.StatusCompliant {
			t.Errorf("%s listed as needing attention while COMPLIANT", fa.Framework)
		}
	}
}

func TestExplain_IsPureFunctionOfAssessment(t *testing.T) {
	e := newEngine(t)
	a, err := e.Assess(tabularAnalysis("email", "notes"))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(explain(a), explain(a)) {
		t.Error("explain produced different output for the same assessment")
	}
}
