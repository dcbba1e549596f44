package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/privameter/privameter/internal/logger"
)

var assessCmd = &cobra.Command{
	Use:   "assess <signals.json>",
	Short: "Assess the privacy risk of one artifact from its signal file",
	Long: `Assess one artifact from a JSON signal file produced by a feature
extractor:

  {
    "artifact_id": "optional",
    "name": "customers.csv",
    "kind": "tabular",
    "signals": [
      {"name": "ssn", "kind": "field-name", "confidence": 0.97}
    ]
  }

Prints a privacy report and appends the result to the audit log.`,
	Args: cobra.ExactArgs(1),
	RunE: assessCommand,
}

func init() {
	rootCmd.AddCommand(assessCmd)
}

func assessCommand(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	engine, _, err := buildEngine(cfg)
	if err != nil {
		return err
	}

	analysis, err := loadSignalFile(args[0])
	if err != nil {
		return err
	}
	if analysis.ArtifactID == "" {
		analysis.ArtifactID = uuid.NewString()
	}

	assessment, err := engine.Assess(analysis)
	if err != nil {
		return err
	}

	if log, logErr := logger.New(cfg.LogPath); logErr == nil {
		if err := auditAssessment(log, "", time.Now().UTC().Format(time.RFC3339), assessment); err != nil {
			fmt.Fprintf(os.Stderr, "warning: audit log write failed: %v\n", err)
		}
		log.Close()
	} else {
		fmt.Fprintf(os.Stderr, "warning: audit log unavailable: %v\n", logErr)
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(assessment)
	}

	printAssessment(assessment)
	return nil
}
