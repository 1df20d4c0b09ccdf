package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadRules_EmptyPathUsesDefaults(t *testing.T) {
	rules, err := LoadRules("")
	require.NoError(t, err)
	require.Equal(t, DefaultRules(), rules)
	require.Contains(t, rules.EventTypes, "purchase")
	require.Contains(t, rules.Devices, "mobile")
}

func TestLoadRules_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
event_types:
  - "view"
  - "purchase"
devices: []
`), 0o644))

	rules, err := LoadRules(path)
	require.NoError(t, err)
	require.Equal(t, []string{"view", "purchase"}, rules.EventTypes)
	require.Empty(t, rules.Devices)
}

func TestLoadRules_MissingFile(t *testing.T) {
	_, err := LoadRules(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadRules_EmptyEventTypesRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
devices:
  - "mobile"
`), 0o644))

	_, err := LoadRules(path)
	require.ErrorContains(t, err, "event_types must not be empty")
}

func TestLoadRules_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.yaml")
	require.NoError(t, os.WriteFile(path, []byte("event_types: [unterminated"), 0o644))

	_, err := LoadRules(path)
	require.Error(t, err)
}
