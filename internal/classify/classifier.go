package classify

import (
	"math"

	"github.com/privameter/privameter/internal/signal"
)

const (
	// emptyArtifactScore is assigned when an artifact yields no signals.
	// Absence of detectable signals is not proof of public data.
	emptyArtifactScore = 20

	// unmatchedFieldScore is the baseline for column names no rule matches.
	// Nonzero: an unknown field is residual risk, not "no risk".
	unmatchedFieldScore = 20

	// piiBonus is added to the overall score per PII finding, so a set of
	// mildly-sensitive PII fields never scores below the same set without PII.
	piiBonus = 5

	// matchedConfidenceFloor and unmatchedConfidenceCap keep rule-matched
	// findings reading as more certain than fallback classifications, whatever
	// the extractor reported.
	matchedConfidenceFloor = 55
	unmatchedConfidenceCap = 45
)

// Classifier maps extracted signals to scored sensitivity findings.
// Its tables are fixed at construction and never mutated; a single instance
// is safe for concurrent use.
type Classifier struct {
	fieldRules []FieldRule
	objects    map[string]classEntry
	entities   map[string]classEntry
}

// NewClassifier builds a classifier from the given tabular rule table.
// Pass DefaultFieldRules() or the result of LoadRulePacks.
func NewClassifier(fieldRules []FieldRule) *Classifier {
	rules := make([]FieldRule, len(fieldRules))
	copy(rules, fieldRules)
	return &Classifier{
		fieldRules: rules,
		objects:    defaultObjectTable,
		entities:   defaultEntityTable,
	}
}

// Classify derives a sensitivity profile from an artifact's signals.
// Findings keep the extractor's emission order. Classification is total:
// every signal produces exactly one finding.
func (c *Classifier) Classify(kind signal.ArtifactKind, signals []signal.ExtractedSignal) Profile {
	findings := make([]Finding, 0, len(signals))
	for _, s := range signals {
		switch kind {
		case signal.KindTabular:
			findings = append(findings, c.classifyField(s))
		case signal.KindImage:
			findings = append(findings, c.classifyFromTable(s, c.objects, unknownObject))
		case signal.KindTextual:
			findings = append(findings, c.classifyFromTable(s, c.entities, unknownEntity))
		}
	}
	return buildProfile(findings)
}

func (c *Classifier) classifyField(s signal.ExtractedSignal) Finding {
	for _, rule := range c.fieldRules {
		if rule.Matches(s.Name) {
			return Finding{
				Field:      s.Name,
				Type:       rule.Type,
				IsPII:      rule.PII,
				Score:      rule.Score,
				Confidence: matchedConfidence(s.Confidence),
			}
		}
	}
	return Finding{
		Field:      s.Name,
		Type:       TypeGeneral,
		IsPII:      false,
		Score:      unmatchedFieldScore,
		Confidence: unmatchedConfidence(s.Confidence),
	}
}

func (c *Classifier) classifyFromTable(s signal.ExtractedSignal, table map[string]classEntry, fallback classEntry) Finding {
	entry, ok := table[s.Name]
	conf := matchedConfidence(s.Confidence)
	if !ok {
		entry = fallback
		conf = unmatchedConfidence(s.Confidence)
	}
	return Finding{
		Field:      s.Name,
		Type:       entry.Type,
		IsPII:      entry.PII,
		Score:      entry.Score,
		Confidence: conf,
	}
}

// buildProfile aggregates findings into an overall score and level.
// overall = clamp(mean(scores) + piiBonus*countPII, 0, 100).
func buildProfile(findings []Finding) Profile {
	if len(findings) == 0 {
		return Profile{
			Findings:     []Finding{},
			OverallScore: emptyArtifactScore,
			Level:        LevelForScore(emptyArtifactScore),
		}
	}

	sum := 0
	pii := 0
	for _, f := range findings {
		sum += f.Score
		if f.IsPII {
			pii++
		}
	}
	overall := float64(sum)/float64(len(findings)) + float64(piiBonus*pii)
	overall = clamp(overall, 0, 100)

	return Profile{
		Findings:     findings,
		OverallScore: overall,
		Level:        LevelForScore(overall),
	}
}

// matchedConfidence derives a finding confidence from the extractor's signal
// confidence. Deterministic: the same signal always yields the same value.
func matchedConfidence(signalConf float64) int {
	c := int(math.Round(signalConf * 100))
	if c < matchedConfidenceFloor {
		return matchedConfidenceFloor
	}
	if c > 100 {
		return 100
	}
	return c
}

func unmatchedConfidence(signalConf float64) int {
	c := int(math.Round(signalConf * 100))
	if c > unmatchedConfidenceCap {
		return unmatchedConfidenceCap
	}
	if c < 0 {
		return 0
	}
	return c
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
