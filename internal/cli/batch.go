package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/privameter/privameter/internal/logger"
	"github.com/privameter/privameter/internal/session"
	"github.com/privameter/privameter/internal/signal"
)

var batchCmd = &cobra.Command{
	Use:   "batch <signals.json ...>",
	Short: "Assess a batch of artifacts and print a dashboard summary",
	Long: `Assess several signal files concurrently as one session, then roll
the results up into a dashboard summary (average score, risk distribution,
technique union, PII totals).

A failed artifact is reported and excluded from the summary; it does not stop
the rest of the batch. Directories are expanded to their *.json files.`,
	Args: cobra.MinimumNArgs(1),
	RunE: batchCommand,
}

func init() {
	rootCmd.AddCommand(batchCmd)
}

func batchCommand(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	engine, _, err := buildEngine(cfg)
	if err != nil {
		return err
	}

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	paths, err := expandPaths(args)
	if err != nil {
		return err
	}

	requests := make([]session.ArtifactRequest, 0, len(paths))
	for _, path := range paths {
		kind, name := peekSignalFile(path)
		requests = append(requests, session.ArtifactRequest{
			ArtifactID: uuid.NewString(),
			Name:       name,
			Kind:       kind,
			Metadata:   map[string]string{"path": path},
		})
	}

	runner := session.NewRunner(engine, fileExtractor{}, store, cfg.Engine.Workers)
	result, err := runner.Run(context.Background(), requests)
	if err != nil && !errors.Is(err, session.ErrEmptyBatch) {
		return err
	}
	batchErr := err

	if log, logErr := logger.New(cfg.LogPath); logErr == nil {
		now := time.Now().UTC().Format(time.RFC3339)
		for _, a := range result.Assessments {
			if err := auditAssessment(log, result.BatchID, now, a); err != nil {
				fmt.Fprintf(os.Stderr, "warning: audit log write failed: %v\n", err)
				break
			}
		}
		for _, f := range result.Failures {
			_ = log.Log(logger.AuditEvent{
				Timestamp:  now,
				SessionID:  result.BatchID,
				ArtifactID: f.ArtifactID,
				Error:      f.Error,
			})
		}
		log.Close()
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return err
		}
		return batchErr
	}

	if batchErr == nil {
		printSummary(result)
	} else {
		fmt.Println("No artifact could be assessed:")
		for _, f := range result.Failures {
			fmt.Printf("  %s: %s\n", f.Name, f.Error)
		}
	}
	return batchErr
}

// expandPaths flattens directory arguments into their *.json files.
func expandPaths(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			paths = append(paths, arg)
			continue
		}
		entries, err := os.ReadDir(arg)
		if err != nil {
			return nil, err
		}
		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
				continue
			}
			paths = append(paths, filepath.Join(arg, entry.Name()))
		}
	}
	return paths, nil
}

// peekSignalFile reads just enough of a signal file to name the request.
// A broken file still gets a request; the extractor will report the failure
// properly inside the batch.
func peekSignalFile(path string) (signal.ArtifactKind, string) {
	analysis, err := loadSignalFile(path)
	if err != nil {
		return signal.KindTabular, path
	}
	return analysis.Kind, analysis.Name
}
