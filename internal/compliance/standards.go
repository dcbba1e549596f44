package compliance

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/privameter/privameter/internal/classify"
)

// Standard describes one framework's requirement checklist.
type Standard struct {
	ID           Framework     `yaml:"id"`
	Name         string        `yaml:"name"`
	Requirements []Requirement `yaml:"requirements"`
}

// Requirement is a single named obligation within a standard. TriggerTypes
// lists the sensitivity types that put the requirement under strain when they
// show up among an artifact's findings.
type Requirement struct {
	ID           string                     `yaml:"id"`
	Name         string                     `yaml:"name"`
	TriggerTypes []classify.SensitivityType `yaml:"trigger_types"`
}

// builtinStandards is the requirement catalog shipped with the engine.
// Kept as YAML so the catalog reads the same as an external standards file
// and can move to one without a format change.
const builtinStandards = `
- id: GDPR
  name: General Data Protection Regulation
  requirements:
    - id: gdpr-lawful-basis
      name: Lawful basis for processing
      trigger_types: [EMAIL, NAME, PERSON]
    - id: gdpr-data-minimization
      name: Data minimization
      trigger_types: []
    - id: gdpr-right-to-erasure
      name: Right to erasure
      trigger_types: [EMAIL, NAME, PERSON, ID_NUMBER]
    - id: gdpr-consent-management
      name: Consent management
      trigger_types: [EMAIL, PHONE]
    - id: gdpr-breach-notification
      name: Breach notification readiness
      trigger_types: [SSN, CREDIT_CARD, MEDICAL]
- id: HIPAA
  name: Health Insurance Portability and Accountability Act
  requirements:
    - id: hipaa-administrative-safeguards
      name: Administrative safeguards
      trigger_types: [MEDICAL]
    - id: hipaa-technical-safeguards
      name: Technical safeguards
      trigger_types: [MEDICAL, SSN]
    - id: hipaa-physical-safeguards
      name: Physical safeguards
      trigger_types: []
    - id: hipaa-minimum-necessary
      name: Minimum necessary standard
      trigger_types: [MEDICAL, BIRTHDATE]
- id: CCPA
  name: California Consumer Privacy Act
  requirements:
    - id: ccpa-right-to-know
      name: Right to know
      trigger_types: [EMAIL, NAME, PERSON]
    - id: ccpa-right-to-delete
      name: Right to delete
      trigger_types: [EMAIL, NAME, PERSON]
    - id: ccpa-opt-out
      name: Opt-out of sale
      trigger_types: [FINANCIAL, MONEY]
    - id: ccpa-non-discrimination
      name: Non-discrimination
      trigger_types: []
- id: SOX
  name: Sarbanes-Oxley Act
  requirements:
    - id: sox-access-controls
      name: Access controls
      trigger_types: [FINANCIAL]
    - id: sox-audit-trail
      name: Audit trail
      trigger_types: []
    - id: sox-data-integrity
      name: Data integrity
      trigger_types: [FINANCIAL, MONEY]
`

// loadBuiltinStandards parses the embedded catalog. Failure here is a
// construction-time failure; no Assessor exists without a valid catalog.
func loadBuiltinStandards() (map[Framework]Standard, error) {
	var list []Standard
	if err := yaml.Unmarshal([]byte(builtinStandards), &list); err != nil {
		return nil, fmt.Errorf("parsing builtin standards: %w", err)
	}

	standards := make(map[Framework]Standard, len(list))
	for _, std := range list {
		standards[std.ID] = std
	}
	for _, fw := range Frameworks() {
		if _, ok := standards[fw]; !ok {
			return nil, fmt.Errorf("builtin standards missing framework %s", fw)
		}
	}
	return standards, nil
}
