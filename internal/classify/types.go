package classify

// SensitivityType categorizes what a finding is about. Open-ended: rule packs
// may introduce values beyond the built-in set, so the type is a named string
// rather than a closed switch.
type SensitivityType string

const (
	TypeEmail        SensitivityType = "EMAIL"
	TypePhone        SensitivityType = "PHONE"
	TypeSSN          SensitivityType = "SSN"
	TypeCreditCard   SensitivityType = "CREDIT_CARD"
	TypeAddress      SensitivityType = "ADDRESS"
	TypeName         SensitivityType = "NAME"
	TypeBirthdate    SensitivityType = "BIRTHDATE"
	TypeFinancial    SensitivityType = "FINANCIAL"
	TypeMedical      SensitivityType = "MEDICAL"
	TypeIDNumber     SensitivityType = "ID_NUMBER"
	TypePerson       SensitivityType = "PERSON"
	TypeOrganization SensitivityType = "ORGANIZATION"
	TypeLocation     SensitivityType = "LOCATION"
	TypeDate         SensitivityType = "DATE"
	TypeMoney        SensitivityType = "MONEY"
	TypeGeneral      SensitivityType = "GENERAL"
)

// SensitivityLevel is the ordinal classification of an artifact's overall
// data sensitivity, rising with score.
type SensitivityLevel string

const (
	LevelPublic       SensitivityLevel = "PUBLIC"
	LevelInternal     SensitivityLevel = "INTERNAL"
	LevelConfidential SensitivityLevel = "CONFIDENTIAL"
	LevelRestricted   SensitivityLevel = "RESTRICTED"
	LevelTopSecret    SensitivityLevel = "TOP_SECRET"
)

// LevelForScore maps an overall sensitivity score to its level.
// Thresholds are inclusive lower bounds.
func LevelForScore(score float64) SensitivityLevel {
	switch {
	case score >= 85:
		return LevelTopSecret
	case score >= 70:
		return LevelRestricted
	case score >= 50:
		return LevelConfidential
	case score >= 30:
		return LevelInternal
	default:
		return LevelPublic
	}
}

// levelSeverity returns a numeric rank for ordering levels.
// Higher number = more sensitive.
func levelSeverity(l SensitivityLevel) int {
	switch l {
	case LevelTopSecret:
		return 5
	case LevelRestricted:
		return 4
	case LevelConfidential:
		return 3
	case LevelInternal:
		return 2
	case LevelPublic:
		return 1
	default:
		return 0
	}
}

// AtLeast reports whether l is at least as sensitive as other.
func (l SensitivityLevel) AtLeast(other SensitivityLevel) bool {
	return levelSeverity(l) >= levelSeverity(other)
}

// Finding is a scored, typed sensitivity classification of one signal.
type Finding struct {
	Field      string          `json:"field"`
	Type       SensitivityType `json:"type"`
	IsPII      bool            `json:"is_pii"`
	Score      int             `json:"score"`      // 0–100
	Confidence int             `json:"confidence"` // 0–100
}

// Profile is the classifier's output for one artifact. OverallScore is a pure
// function of Findings, and Level a pure function of OverallScore.
type Profile struct {
	Findings     []Finding        `json:"findings"`
	OverallScore float64          `json:"overall_score"` // 0–100
	Level        SensitivityLevel `json:"level"`
}

// PIICount returns the number of PII findings in the profile.
func (p Profile) PIICount() int {
	n := 0
	for _, f := range p.Findings {
		if f.IsPII {
			n++
		}
	}
	return n
}

// HasType reports whether any finding carries the given sensitivity type.
func (p Profile) HasType(t SensitivityType) bool {
	for _, f := range p.Findings {
		if f.Type == t {
			return true
		}
	}
	return false
}
