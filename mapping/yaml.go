package mapping

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// LoadDir reads entity mappings from every .yaml/.yml file in dir. Each file
// holds a map of entity type name to mapping:
//
//	team:
//	  class: http://example.org/football/Team
//	  properties:
//	    name: {predicate: "http://schema.org/name", datatype: "http://www.w3.org/2001/XMLSchema#string"}
//	    country_id: {predicate: "http://example.org/football/country", ref: country}
//	  inverse_relations:
//	    players: {predicate: "http://example.org/football/hasPlayer", target: player}
func LoadDir(dir string) ([]EntityMapping, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read mapping dir: %w", err)
	}

	var out []EntityMapping
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		mappings, err := loadFile(path)
		if err != nil {
			return nil, fmt.Errorf("mapping file %s: %w", entry.Name(), err)
		}
		out = append(out, mappings...)
	}
	return out, nil
}

func loadFile(path string) ([]EntityMapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var byType map[string]EntityMapping
	if err := yaml.Unmarshal(data, &byType); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	types := make([]string, 0, len(byType))
	for t := range byType {
		types = append(types, t)
	}
	sort.Strings(types)

	out := make([]EntityMapping, 0, len(byType))
	for _, t := range types {
		m := byType[t]
		m.Type = t
		out = append(out, m)
	}
	return out, nil
}

// Load builds a registry from the built-in mappings with an optional YAML
// overlay directory. Overlay mappings replace built-in mappings of the same
// entity type; new types are added. The merged result is validated as a
// whole, so an overlay cannot leave a dangling reference behind.
func Load(namespace, overlayDir string) (*Registry, error) {
	mappings := DefaultMappings()

	if overlayDir != "" {
		overlay, err := LoadDir(overlayDir)
		if err != nil {
			return nil, err
		}
		merged := make([]EntityMapping, 0, len(mappings)+len(overlay))
		replaced := make(map[string]bool, len(overlay))
		for _, m := range overlay {
			replaced[m.Type] = true
		}
		for _, m := range mappings {
			if !replaced[m.Type] {
				merged = append(merged, m)
			}
		}
		merged = append(merged, overlay...)
		mappings = merged
	}

	return NewRegistry(namespace, mappings)
}
