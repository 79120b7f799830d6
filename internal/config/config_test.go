package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	want := Config{Format: "json", RankDir: "TB", EpsilonLabel: "eps", OutDir: "out", Image: "svg"}
	require.NoError(t, Save(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rankdir: TB\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "TB", cfg.RankDir)
	assert.Equal(t, "dot", cfg.Format)
	assert.Equal(t, "λ", cfg.EpsilonLabel)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{"bad yaml", "format: [", "parse config"},
		{"bad format", "format: png\n", "unknown output format"},
		{"bad rankdir", "rankdir: diagonal\n", "invalid rankdir"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "cfg.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))
			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestDOTOptions(t *testing.T) {
	opts := Default().DOTOptions()
	assert.Equal(t, "LR", opts.RankDir)
	assert.Equal(t, "λ", opts.EpsilonLabel)
}
