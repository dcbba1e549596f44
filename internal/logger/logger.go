package logger

import (
	"encoding/json"
	"os"
	"sync"

	"github.com/privameter/privameter/internal/redact"
)

// AuditEvent is one line of the assessment audit log.
type AuditEvent struct {
	Timestamp        string   `json:"timestamp"`
	SessionID        string   `json:"session_id,omitempty"`
	ArtifactID       string   `json:"artifact_id"`
	ArtifactName     string   `json:"artifact_name,omitempty"`
	Kind             string   `json:"kind"`
	OverallScore     int      `json:"overall_score"`
	RiskLevel        string   `json:"risk_level"`
	SensitivityLevel string   `json:"sensitivity_level"`
	PIIFields        []string `json:"pii_fields,omitempty"`
	Error            string   `json:"error,omitempty"`
}

// AuditLogger appends assessment events to a JSONL file. Safe for concurrent
// use.
type AuditLogger struct {
	file *os.File
	mu   sync.Mutex
}

func New(path string) (*AuditLogger, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return nil, err
	}

	return &AuditLogger{file: file}, nil
}

func (l *AuditLogger) Log(event AuditEvent) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	// Field names can leak schema details; mask before writing.
	event.PIIFields = redact.MaskFields(event.PIIFields)

	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	data = append(data, '\n')
	_, err = l.file.Write(data)
	return err
}

func (l *AuditLogger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}
