package classify

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// RulePack is a YAML file of additional tabular field rules. Packs let
// deployments classify organization-specific column names (e.g., internal
// employee-id schemes) without rebuilding.
type RulePack struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description"`
	PackVersion string      `yaml:"version"`
	Author      string      `yaml:"author"`
	Rules       []FieldRule `yaml:"rules"`
}

// PackInfo is a summary of a pack for listing.
type PackInfo struct {
	Name        string
	Description string
	Version     string
	Author      string
	Enabled     bool
	Path        string
	RuleCount   int
}

// LoadRulePacks reads all .yaml files from the packs directory and appends
// their rules after the base table. Base rules run first, so packs extend the
// built-in coverage but cannot shadow it. Files prefixed with underscore are
// treated as disabled and skipped.
func LoadRulePacks(packsDir string, base []FieldRule) ([]FieldRule, []PackInfo, error) {
	var infos []PackInfo

	entries, err := os.ReadDir(packsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return base, nil, nil
		}
		return nil, nil, err
	}

	result := make([]FieldRule, len(base))
	copy(result, base)

	for _, entry := range entries {
		if entry.IsDir() || !isYAMLFile(entry.Name()) {
			continue
		}

		path := filepath.Join(packsDir, entry.Name())
		baseName := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		enabled := !strings.HasPrefix(baseName, "_")

		pack, err := loadPack(path)
		if err != nil {
			return nil, nil, err
		}

		info := PackInfo{
			Name:        pack.Name,
			Description: pack.Description,
			Version:     pack.PackVersion,
			Author:      pack.Author,
			Enabled:     enabled,
			Path:        path,
			RuleCount:   len(pack.Rules),
		}
		if info.Name == "" {
			info.Name = baseName
		}
		infos = append(infos, info)

		if !enabled {
			continue
		}

		for _, r := range pack.Rules {
			if err := validatePackRule(r); err != nil {
				return nil, nil, fmt.Errorf("pack %s: %w", path, err)
			}
			result = append(result, r)
		}
	}

	return result, infos, nil
}

func loadPack(path string) (*RulePack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var pack RulePack
	if err := yaml.Unmarshal(data, &pack); err != nil {
		return nil, fmt.Errorf("failed to parse rule pack %s: %w", path, err)
	}

	return &pack, nil
}

func validatePackRule(r FieldRule) error {
	if r.ID == "" {
		return fmt.Errorf("rule with empty id")
	}
	if len(r.Match) == 0 {
		return fmt.Errorf("rule %s has no match patterns", r.ID)
	}
	if r.Type == "" {
		return fmt.Errorf("rule %s has no sensitivity type", r.ID)
	}
	if r.Score < 0 || r.Score > 100 {
		return fmt.Errorf("rule %s score %d out of range [0,100]", r.ID, r.Score)
	}
	return nil
}

func isYAMLFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}
