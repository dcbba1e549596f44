package cli

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/privameter/privameter/internal/assess"
	"github.com/privameter/privameter/internal/compliance"
	"github.com/privameter/privameter/internal/session"
)

// fancyOutput reports whether stdout is an interactive terminal; piped output
// gets plain ASCII rules instead of box-drawing characters.
func fancyOutput() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func heavyRule() string {
	if fancyOutput() {
		return strings.Repeat("═", 55)
	}
	return strings.Repeat("=", 55)
}

func lightRule(title string) string {
	if fancyOutput() {
		return "─── " + title + " " + strings.Repeat("─", maxInt(0, 50-len(title)))
	}
	return "--- " + title + " " + strings.Repeat("-", maxInt(0, 50-len(title)))
}

func printAssessment(a assess.PrivacyAssessment) {
	fmt.Println(heavyRule())
	fmt.Printf("  %s  (%s)\n", a.ArtifactName, a.Kind)
	fmt.Println(heavyRule())
	fmt.Println()
	fmt.Printf("  Privacy score:  %d/100\n", a.OverallScore)
	fmt.Printf("  Risk level:     %s\n", a.RiskLevel)
	fmt.Printf("  Sensitivity:    %s (%.1f)\n", a.Sensitivity.Level, a.Sensitivity.OverallScore)
	fmt.Println()

	if len(a.Sensitivity.Findings) > 0 {
		fmt.Println(lightRule("Findings"))
		for _, f := range a.Sensitivity.Findings {
			pii := ""
			if f.IsPII {
				pii = "  [PII]"
			}
			fmt.Printf("  %-24s %-14s score %3d  conf %3d%s\n", f.Field, f.Type, f.Score, f.Confidence, pii)
		}
		fmt.Println()
	}

	fmt.Println(lightRule("Compliance"))
	for _, r := range a.Compliance {
		fmt.Printf("  %-6s %3d  %s\n", r.Framework, r.Score, r.Status)
		for _, req := range r.Requirements {
			if req.Status == "PASS" {
				continue
			}
			fmt.Printf("         - %s: %s (%d)\n", req.Name, req.Status, req.Score)
		}
	}
	fmt.Println()

	if len(a.Recommendations) > 0 {
		fmt.Println(lightRule("Recommendations"))
		for i, rec := range a.Recommendations {
			fmt.Printf("  %d. [%s] %s — %s\n", i+1, rec.Priority, rec.Technique, rec.Reason)
		}
		fmt.Println()
	}

	fmt.Println(lightRule("Summary"))
	fmt.Printf("  %s\n", a.Explanations.Score)
	fmt.Printf("  %s\n", a.Explanations.Risk)
	cs := a.Explanations.Compliance
	fmt.Printf("  Compliant frameworks: %d/%d\n", cs.CompliantCount, cs.TotalFrameworks)
	for _, fa := range cs.NeedsAttention {
		fmt.Printf("    %s needs attention: %d (%s)\n", fa.Framework, fa.Score, fa.Status)
	}
	fmt.Println()
}

func printSummary(result session.BatchResult) {
	s := result.Summary

	fmt.Println(heavyRule())
	fmt.Printf("  Batch %s — %d artifact(s)\n", result.BatchID, s.ArtifactCount)
	fmt.Println(heavyRule())
	fmt.Println()
	fmt.Printf("  Average privacy score:  %.1f/100\n", s.AverageScore)
	fmt.Printf("  Overall risk:           %s\n", s.OverallRisk)
	fmt.Printf("  PII fields:             %d total, %d unique\n", s.TotalPIIFields, s.UniquePIIFields)
	fmt.Println()

	fmt.Println(lightRule("Risk distribution"))
	for _, tier := range []assess.RiskLevel{assess.RiskLow, assess.RiskMedium, assess.RiskHigh, assess.RiskCritical} {
		if n := s.RiskDistribution[tier]; n > 0 {
			fmt.Printf("  %-9s %d\n", tier, n)
		}
	}
	fmt.Println()

	fmt.Println(lightRule("Compliance averages"))
	for _, fw := range compliance.Frameworks() {
		if avg, ok := s.FrameworkAverages[fw]; ok {
			fmt.Printf("  %-6s %.1f\n", fw, avg)
		}
	}
	fmt.Println()

	if len(s.Techniques) > 0 {
		fmt.Println(lightRule("Recommended techniques"))
		for _, tech := range s.Techniques {
			fmt.Printf("  - %s\n", tech)
		}
		fmt.Println()
	}

	if len(result.Failures) > 0 {
		fmt.Println(lightRule("Failures"))
		for _, f := range result.Failures {
			fmt.Printf("  %s (%s): %s\n", f.Name, f.ArtifactID, f.Error)
		}
		fmt.Println()
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
