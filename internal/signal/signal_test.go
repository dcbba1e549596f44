package signal

import (
	"errors"
	"testing"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    ArtifactKind
		wantErr bool
	}{
		{"tabular", KindTabular, false},
		{"image", KindImage, false},
		{"textual", KindTextual, false},
		{"  Tabular ", KindTabular, false},
		{"IMAGE", KindImage, false},
		{"", "", true},
		{"spreadsheet", "", true},
	}
	for _, tt := range tests {
		got, err := ParseKind(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseKind(%q): expected error, got %q", tt.in, got)
			} else if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("ParseKind(%q): error not ErrInvalidInput: %v", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseKind(%q): unexpected error: %v", tt.in, err)
		} else if got != tt.want {
			t.Errorf("ParseKind(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidate(t *testing.T) {
	valid := ArtifactAnalysis{
		ArtifactID: "a-1",
		Name:       "customers.csv",
		Kind:       KindTabular,
		Signals: []ExtractedSignal{
			{Name: "ssn", Kind: SignalFieldName, Confidence: 0.97},
		},
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid analysis rejected: %v", err)
	}

	// No signals at all is still a valid analysis.
	empty := ArtifactAnalysis{ArtifactID: "a-2", Name: "empty.csv", Kind: KindTabular}
	if err := empty.Validate(); err != nil {
		t.Fatalf("empty signal list rejected: %v", err)
	}

	tests := []struct {
		name     string
		analysis ArtifactAnalysis
	}{
		{
			"missing kind",
			ArtifactAnalysis{ArtifactID: "a", Name: "x"},
		},
		{
			"unknown kind",
			ArtifactAnalysis{ArtifactID: "a", Name: "x", Kind: "audio"},
		},
		{
			"blank signal name",
			ArtifactAnalysis{Kind: KindTabular, Signals: []ExtractedSignal{
				{Name: "   ", Kind: SignalFieldName, Confidence: 0.5},
			}},
		},
		{
			"unknown signal kind",
			ArtifactAnalysis{Kind: KindImage, Signals: []ExtractedSignal{
				{Name: "person", Kind: "guess", Confidence: 0.5},
			}},
		},
		{
			"confidence above one",
			ArtifactAnalysis{Kind: KindTabular, Signals: []ExtractedSignal{
				{Name: "email", Kind: SignalFieldName, Confidence: 1.2},
			}},
		},
		{
			"negative confidence",
			ArtifactAnalysis{Kind: KindTabular, Signals: []ExtractedSignal{
				{Name: "email", Kind: SignalFieldName, Confidence: -0.1},
			}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.analysis.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("error not ErrInvalidInput: %v", err)
			}
		})
	}
}

func TestExtractionError(t *testing.T) {
	err := error(&ExtractionError{Reason: "service unreachable"})
	if err.Error() != "extraction failed: service unreachable" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
	if !IsExtractionFailed(err) {
		t.Fatal("IsExtractionFailed should match an ExtractionError")
	}
	if IsExtractionFailed(ErrInvalidInput) {
		t.Fatal("IsExtractionFailed should not match unrelated errors")
	}
}
