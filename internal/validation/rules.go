package validation

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SchemaRules is the configurable vocabulary the validator checks events
// against. Membership sets live in configuration, not code, so a deployment
// can widen its event taxonomy without a release.
type SchemaRules struct {
	// EventTypes is the closed set of accepted event_type values.
	EventTypes []string `yaml:"event_types"`

	// Devices is the accepted device set. Empty means any non-empty string,
	// keeping the device dimension open for deployments that don't normalize it.
	Devices []string `yaml:"devices"`
}

// DefaultRules mirrors the canonical e-commerce taxonomy used by the
// synthetic generator.
func DefaultRules() SchemaRules {
	return SchemaRules{
		EventTypes: []string{"view", "add_to_cart", "remove_from_cart", "checkout", "purchase", "search"},
		Devices:    []string{"mobile", "desktop", "tablet"},
	}
}

// LoadRules reads schema rules from a YAML file. An empty path selects the
// built-in defaults. Rules are loaded once at startup, with no hot reload.
func LoadRules(path string) (SchemaRules, error) {
	if path == "" {
		return DefaultRules(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return SchemaRules{}, fmt.Errorf("reading schema rules file %s: %w", path, err)
	}

	var rules SchemaRules
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return SchemaRules{}, fmt.Errorf("parsing schema rules file %s: %w", path, err)
	}

	if len(rules.EventTypes) == 0 {
		return SchemaRules{}, fmt.Errorf("schema rules file %s: event_types must not be empty", path)
	}
	for _, et := range rules.EventTypes {
		if et == "" {
			return SchemaRules{}, fmt.Errorf("schema rules file %s: event_types must not contain empty values", path)
		}
	}

	return rules, nil
}
