package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"agroplan/internal/domain/catalog"
)

// LoadSynonyms reads a YAML map of canonical class -> aliases and merges it
// over the built-in table. An empty path returns the built-in table.
//
//	TS:
//	  - TRAT. SEMENTES
//	FUNGICIDA:
//	  - FUNGICIDAS FOLIARES
func LoadSynonyms(path string) (catalog.SynonymTable, error) {
	defaults := catalog.DefaultSynonyms()
	if path == "" {
		return defaults, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read synonyms file: %w", err)
	}

	var extra catalog.SynonymTable
	if err := yaml.Unmarshal(data, &extra); err != nil {
		return nil, fmt.Errorf("failed to parse synonyms file %s: %w", path, err)
	}
	return defaults.Merge(extra), nil
}
