package redact

import "testing"

func TestMask(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"patient_ssn", "p*********n"},
		{"email", "e***l"},
		{"ab", "**"},
		{"a", "*"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Mask(tt.input); got != tt.expected {
			t.Errorf("Mask(%q): expected %q, got %q", tt.input, tt.expected, got)
		}
	}
}

func TestMaskFields(t *testing.T) {
	got := MaskFields([]string{"ssn", "notes"})
	if got[0] != "s*n" || got[1] != "n***s" {
		t.Errorf("unexpected masking: %v", got)
	}
}
