// Package redact masks detected field identifiers before they reach audit
// output. Field names themselves can leak schema details ("patient_ssn"),
// so audit events carry masked forms only.
package redact

import "strings"

const maskRune = '*'

// Mask obscures the interior of an identifier, keeping the first and last
// character so operators can still correlate entries. Short names are fully
// masked.
func Mask(field string) string {
	runes := []rune(field)
	if len(runes) <= 2 {
		return strings.Repeat(string(maskRune), len(runes))
	}

	var sb strings.Builder
	sb.WriteRune(runes[0])
	for i := 1; i < len(runes)-1; i++ {
		sb.WriteRune(maskRune)
	}
	sb.WriteRune(runes[len(runes)-1])
	return sb.String()
}

// MaskFields masks every identifier in a list.
func MaskFields(fields []string) []string {
	result := make([]string, len(fields))
	for i, f := range fields {
		result[i] = Mask(f)
	}
	return result
}
