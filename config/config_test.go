package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaultsWithoutPath(t *testing.T) {
	opts, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 20, opts.NumThemes)
	assert.Equal(t, 20, opts.NumRoles)
	assert.Equal(t, 0.1, opts.Beta)
}

func TestLoadOverridesFromYAML(t *testing.T) {
	path := writeYAML(t, "numthemes: 5\nnumroles: 7\nbeta: 0.05\n")
	opts, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, opts.NumThemes)
	assert.Equal(t, 7, opts.NumRoles)
	assert.Equal(t, 0.05, opts.Beta)
	assert.Equal(t, 10000, opts.NumWords) // untouched default
}

func TestLoadAppliesEnvOverrideOverYAML(t *testing.T) {
	path := writeYAML(t, "numthemes: 5\n")
	t.Setenv("ROLELDA_NUMTHEMES", "9")
	opts, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9, opts.NumThemes)
}

func TestLoadRejectsMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidateAcceptsDegenerateThemesOrRoles(t *testing.T) {
	opts := defaults()
	opts.NumThemes = 0
	assert.NoError(t, opts.Validate()) // character-only role LDA

	opts = defaults()
	opts.NumRoles = 0
	assert.NoError(t, opts.Validate()) // book-level theme LDA
}

func TestValidateRejectsZeroTopicsOverall(t *testing.T) {
	opts := defaults()
	opts.NumThemes = 0
	opts.NumRoles = 0
	assert.Error(t, opts.Validate())
}

func TestValidateRejectsNegativeTopicCounts(t *testing.T) {
	opts := defaults()
	opts.NumThemes = -1
	assert.Error(t, opts.Validate())
}

func TestValidateRejectsNonPositiveBeta(t *testing.T) {
	opts := defaults()
	opts.Beta = 0
	assert.Error(t, opts.Validate())
}

func TestEnvIntIgnoresMalformedValue(t *testing.T) {
	t.Setenv("ROLELDA_NUMPROCESSES", "not-a-number")
	opts := defaults()
	applyEnvOverrides(&opts)
	assert.Equal(t, 1, opts.NumProcesses) // default retained
}
