package cli

import (
	"fmt"

	"github.com/privameter/privameter/internal/assess"
	"github.com/privameter/privameter/internal/classify"
	"github.com/privameter/privameter/internal/config"
	"github.com/privameter/privameter/internal/logger"
	"github.com/privameter/privameter/internal/session"
)

// loadConfig resolves the effective configuration from flags and defaults.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(rulesDir, logPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if workers > 0 {
		cfg.Engine.Workers = workers
	}
	if storeBackend != "" {
		cfg.Engine.StoreBackend = storeBackend
	}
	return cfg, nil
}

// buildEngine constructs the assessment engine with the built-in rules
// extended by any rule packs found in the configured directory.
func buildEngine(cfg *config.Config) (*assess.Engine, []classify.PackInfo, error) {
	rules, packs, err := classify.LoadRulePacks(cfg.RulesDir, classify.DefaultFieldRules())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load rule packs: %w", err)
	}
	engine, err := assess.NewEngineWithRules(rules)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create engine: %w", err)
	}
	return engine, packs, nil
}

// openStore selects the session store backend.
func openStore(cfg *config.Config) (session.Store, error) {
	switch cfg.Engine.StoreBackend {
	case config.StoreSQLite:
		return session.NewSQLiteStore(cfg.SessionPath)
	case config.StoreMemory, "":
		return session.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Engine.StoreBackend)
	}
}

// auditAssessment appends one assessment to the audit log. Audit failures are
// reported but never fail the command; the assessment already happened.
func auditAssessment(log *logger.AuditLogger, sessionID, timestamp string, a assess.PrivacyAssessment) error {
	var piiFields []string
	for _, f := range a.Sensitivity.Findings {
		if f.IsPII {
			piiFields = append(piiFields, f.Field)
		}
	}
	return log.Log(logger.AuditEvent{
		Timestamp:        timestamp,
		SessionID:        sessionID,
		ArtifactID:       a.ArtifactID,
		ArtifactName:     a.ArtifactName,
		Kind:             string(a.Kind),
		OverallScore:     a.OverallScore,
		RiskLevel:        string(a.RiskLevel),
		SensitivityLevel: string(a.Sensitivity.Level),
		PIIFields:        piiFields,
	})
}
