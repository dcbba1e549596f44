package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/privameter/privameter/internal/classify"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the active classification rules and rule packs",
	RunE:  rulesCommand,
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}

func rulesCommand(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	rules, packs, err := classify.LoadRulePacks(cfg.RulesDir, classify.DefaultFieldRules())
	if err != nil {
		return err
	}

	fmt.Println(lightRule("Tabular field rules"))
	for _, r := range rules {
		pii := ""
		if r.PII {
			pii = "  [PII]"
		}
		fmt.Printf("  %-20s %-12s score %3d  match: %s%s\n",
			r.ID, r.Type, r.Score, strings.Join(r.Match, ", "), pii)
	}
	fmt.Printf("\n  %d rules active (%d built-in)\n\n", len(rules), len(classify.DefaultFieldRules()))

	fmt.Println(lightRule("Rule packs"))
	if len(packs) == 0 {
		fmt.Printf("  No packs in %s\n", cfg.RulesDir)
		return nil
	}
	for _, p := range packs {
		state := "enabled"
		if !p.Enabled {
			state = "disabled"
		}
		fmt.Printf("  %-20s %-8s %d rule(s)  %s\n", p.Name, state, p.RuleCount, p.Path)
		if p.Description != "" {
			fmt.Printf("    %s\n", p.Description)
		}
	}
	return nil
}
