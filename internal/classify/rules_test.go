package classify

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRulesCompile(t *testing.T) {
	rules := DefaultRules()

	assert.Equal(t, DefaultNeverCollect, rules.NeverCollect.Patterns())
	assert.Equal(t, DefaultAlwaysCollect, rules.AlwaysCollect.Patterns())
	assert.Equal(t, DefaultBinaryIndicators, rules.BinaryIndicators)
	assert.Equal(t, DefaultScriptIndicators, rules.ScriptIndicators)
}

func TestRuleSetMatchReturnsFirstRule(t *testing.T) {
	set := MustCompileRuleSet([]string{`\.tar$`, `\.gz$`, `\.tar\.gz$`})

	rule, ok := set.Match("/backups/db.tar.gz")
	require.True(t, ok)
	assert.Equal(t, `\.gz$`, rule.String())

	_, ok = set.Match("/backups/db.zst")
	assert.False(t, ok)
}

func TestRulePatternsAreRegularExpressions(t *testing.T) {
	rule, err := NewRule(`\.db-shm$`)
	require.NoError(t, err)

	assert.True(t, rule.Match("cache.db-shm"))
	assert.False(t, rule.Match("cache.dbXshm"))
	assert.False(t, rule.Match("cache.db-shm.bak"))
}

func TestParseRules(t *testing.T) {
	t.Run("absent keys keep defaults", func(t *testing.T) {
		rules, err := ParseRules([]byte("always_collect: ['\\.elf$']\n"))
		require.NoError(t, err)

		assert.Equal(t, []string{`\.elf$`}, rules.AlwaysCollect.Patterns())
		assert.Equal(t, DefaultNeverCollect, rules.NeverCollect.Patterns())
		assert.Equal(t, DefaultBinaryIndicators, rules.BinaryIndicators)
	})

	t.Run("empty list disables a set", func(t *testing.T) {
		rules, err := ParseRules([]byte("never_collect: []\n"))
		require.NoError(t, err)

		assert.Empty(t, rules.NeverCollect)
		_, ok := rules.NeverCollect.Match("notes.txt")
		assert.False(t, ok)
	})

	t.Run("indicators override", func(t *testing.T) {
		rules, err := ParseRules([]byte("binary_indicators: ['Mach-O', '']\nscript_indicators: ['Python script']\n"))
		require.NoError(t, err)

		assert.Equal(t, []string{"Mach-O"}, rules.BinaryIndicators)
		assert.Equal(t, []string{"Python script"}, rules.ScriptIndicators)
	})

	t.Run("invalid pattern", func(t *testing.T) {
		_, err := ParseRules([]byte("never_collect: ['(unclosed']\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "never_collect")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := ParseRules([]byte("never_collect: {"))
		assert.Error(t, err)
	})
}

func TestLoadRules(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte("never_collect:\n  - '\\.log$'\n"), 0o600))

	rules, err := LoadRules(path)
	require.NoError(t, err)
	assert.Equal(t, []string{`\.log$`}, rules.NeverCollect.Patterns())

	_, err = LoadRules(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
