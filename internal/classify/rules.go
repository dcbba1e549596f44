package classify

import "strings"

// FieldRule classifies a tabular column by its name. Rules are evaluated in
// order; the first match wins, so more specific patterns must come first.
type FieldRule struct {
	ID       string          `yaml:"id"`
	Match    []string        `yaml:"match"` // lowercase substrings, any matches
	Type     SensitivityType `yaml:"type"`
	PII      bool            `yaml:"pii"`
	Score    int             `yaml:"score"`
	Reason   string          `yaml:"reason,omitempty"`
}

// Matches reports whether the rule applies to the given field name.
// Matching is case-insensitive substring containment.
func (r FieldRule) Matches(field string) bool {
	lower := strings.ToLower(field)
	for _, m := range r.Match {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}

// classEntry is the {score, pii} cell of the image-object and text-entity
// lookup tables.
type classEntry struct {
	Type  SensitivityType
	Score int
	PII   bool
}

// DefaultFieldRules returns the built-in tabular classification table.
// Callers get a fresh copy; the engine's table is never mutated after
// construction.
func DefaultFieldRules() []FieldRule {
	return []FieldRule{
		{ID: "field-ssn", Match: []string{"ssn", "social_security", "social security"}, Type: TypeSSN, PII: true, Score: 95,
			Reason: "Social security numbers are direct identifiers"},
		{ID: "field-credit-card", Match: []string{"credit", "card_number", "cardnum", "cvv", "pan"}, Type: TypeCreditCard, PII: true, Score: 92,
			Reason: "Payment card data is regulated and directly identifying"},
		{ID: "field-medical", Match: []string{"medical", "diagnos", "health", "prescription", "treatment"}, Type: TypeMedical, PII: true, Score: 90,
			Reason: "Health information is sensitive under multiple regimes"},
		{ID: "field-id-number", Match: []string{"passport", "license", "national_id", "tax_id", "drivers"}, Type: TypeIDNumber, PII: true, Score: 88,
			Reason: "Government identifiers are direct identifiers"},
		{ID: "field-birthdate", Match: []string{"birth", "dob"}, Type: TypeBirthdate, PII: true, Score: 85,
			Reason: "Birth dates enable re-identification"},
		{ID: "field-email", Match: []string{"email", "e-mail", "e_mail"}, Type: TypeEmail, PII: true, Score: 80,
			Reason: "Email addresses identify individuals"},
		{ID: "field-phone", Match: []string{"phone", "mobile", "telephone", "fax"}, Type: TypePhone, PII: true, Score: 78,
			Reason: "Phone numbers identify individuals"},
		{ID: "field-address", Match: []string{"address", "street", "city", "zip", "postal"}, Type: TypeAddress, PII: true, Score: 75,
			Reason: "Physical addresses locate individuals"},
		{ID: "field-financial", Match: []string{"salary", "income", "account", "iban", "routing", "balance"}, Type: TypeFinancial, PII: true, Score: 72,
			Reason: "Financial details are sensitive personal data"},
		{ID: "field-name", Match: []string{"name", "firstname", "lastname", "surname"}, Type: TypeName, PII: true, Score: 70,
			Reason: "Personal names identify individuals"},
		{ID: "field-date", Match: []string{"date", "timestamp"}, Type: TypeDate, PII: false, Score: 30,
			Reason: "Dates carry limited residual risk"},
	}
}

// defaultObjectTable classifies objects detected in images.
var defaultObjectTable = map[string]classEntry{
	"person":        {TypePerson, 90, true},
	"face":          {TypePerson, 90, true},
	"child":         {TypePerson, 90, true},
	"document":      {TypeIDNumber, 70, true},
	"screen":        {TypeGeneral, 70, true},
	"license_plate": {TypeIDNumber, 70, true},
	"vehicle":       {TypeGeneral, 40, false},
	"building":      {TypeLocation, 30, false},
	"landmark":      {TypeLocation, 30, false},
	"animal":        {TypeGeneral, 10, false},
	"food":          {TypeGeneral, 10, false},
	"plant":         {TypeGeneral, 10, false},
}

// unknownObject covers object categories the table does not know.
var unknownObject = classEntry{TypeGeneral, 15, false}

// defaultEntityTable classifies entities detected in documents.
var defaultEntityTable = map[string]classEntry{
	"PERSON":       {TypePerson, 85, true},
	"MONEY":        {TypeMoney, 60, true},
	"LOCATION":     {TypeLocation, 55, true},
	"ORGANIZATION": {TypeOrganization, 40, false},
	"DATE":         {TypeDate, 25, false},
}

// unknownEntity covers entity categories the table does not know.
var unknownEntity = classEntry{TypeGeneral, 20, false}
