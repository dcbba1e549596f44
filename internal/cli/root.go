package cli

import (
	"github.com/spf13/cobra"
)

var (
	rulesDir     string
	logPath      string
	workers      int
	storeBackend string
	jsonOutput   bool
)

var rootCmd = &cobra.Command{
	Use:   "privameter",
	Short: "Privameter - Privacy risk scoring for data artifacts",
	Long: `Privameter assesses the privacy risk of extracted data artifacts
(tabular files, images, documents) and produces a quantitative privacy score,
a regulatory compliance breakdown (GDPR, HIPAA, CCPA, SOX), and a ranked set
of recommended privacy-preserving techniques.

Privameter consumes structured signal files produced by a feature extractor;
it never parses raw data itself.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rulesDir, "rules", "", "Path to rule packs directory (default: ~/.privameter/rules)")
	rootCmd.PersistentFlags().StringVar(&logPath, "log", "", "Path to audit log file (default: ~/.privameter/audit.jsonl)")
	rootCmd.PersistentFlags().IntVar(&workers, "workers", 0, "Concurrent assessments per batch (default: 4)")
	rootCmd.PersistentFlags().StringVar(&storeBackend, "store", "", "Session store backend: memory or sqlite (default: memory)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Emit results as JSON instead of a report")
}

func Execute() error {
	return rootCmd.Execute()
}
