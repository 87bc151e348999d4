package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labelport/internal/domain"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLoaderLoad(t *testing.T) {
	t.Run("defaults when no files exist", func(t *testing.T) {
		loader := NewLoaderWithGlobalDir(t.TempDir(), t.TempDir())

		cfg, err := loader.Load()
		require.NoError(t, err)
		assert.Equal(t, domain.NewDefaultConfig(), cfg)
	})

	t.Run("global TOML overrides defaults", func(t *testing.T) {
		globalDir := t.TempDir()
		writeFile(t, filepath.Join(globalDir, GlobalFileName), `
priority = ["sev1", "sev2"]
`)
		loader := NewLoaderWithGlobalDir(t.TempDir(), globalDir)

		cfg, err := loader.Load()
		require.NoError(t, err)
		assert.Equal(t, []string{"sev1", "sev2"}, cfg.Priority)
		// Untouched lists keep their defaults.
		assert.Equal(t, domain.NewDefaultConfig().Effort, cfg.Effort)
	})

	t.Run("repo YAML overrides global TOML", func(t *testing.T) {
		globalDir := t.TempDir()
		writeFile(t, filepath.Join(globalDir, GlobalFileName), `
priority = ["sev1", "sev2"]
effort = ["xs", "xl"]
`)
		repoRoot := t.TempDir()
		writeFile(t, filepath.Join(repoRoot, ".github", RepoFileName), `
priority: [p0, p1, p2]
prs: [11, 12]
`)
		loader := NewLoaderWithGlobalDir(repoRoot, globalDir)

		cfg, err := loader.Load()
		require.NoError(t, err)
		assert.Equal(t, []string{"p0", "p1", "p2"}, cfg.Priority)
		assert.Equal(t, []string{"xs", "xl"}, cfg.Effort)
		assert.Equal(t, []int{11, 12}, cfg.PRs)
	})

	t.Run("empty list in a file keeps the default", func(t *testing.T) {
		repoRoot := t.TempDir()
		writeFile(t, filepath.Join(repoRoot, ".github", RepoFileName), `
priority: []
classification: [bug]
`)
		loader := NewLoaderWithGlobalDir(repoRoot, t.TempDir())

		cfg, err := loader.Load()
		require.NoError(t, err)
		// An empty list in the file does not clear the default.
		assert.Equal(t, domain.NewDefaultConfig().Priority, cfg.Priority)
	})

	t.Run("explicit repo file overrides the default location", func(t *testing.T) {
		repoRoot := t.TempDir()
		writeFile(t, filepath.Join(repoRoot, ".github", RepoFileName), `
priority: [ignored]
`)
		explicit := filepath.Join(t.TempDir(), "custom.yml")
		writeFile(t, explicit, `
priority: [sev1, sev2]
`)
		loader := NewLoaderWithGlobalDir(repoRoot, t.TempDir()).WithRepoFile(explicit)

		cfg, err := loader.Load()
		require.NoError(t, err)
		assert.Equal(t, []string{"sev1", "sev2"}, cfg.Priority)
		assert.Equal(t, explicit, loader.RepoPath())
	})

	t.Run("explicit repo file must exist", func(t *testing.T) {
		loader := NewLoaderWithGlobalDir(t.TempDir(), t.TempDir()).
			WithRepoFile(filepath.Join(t.TempDir(), "absent.yml"))

		_, err := loader.Load()
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("overlapping lists fail validation", func(t *testing.T) {
		repoRoot := t.TempDir()
		writeFile(t, filepath.Join(repoRoot, ".github", RepoFileName), `
priority: [p0, p1]
classification: [p1, bug]
`)
		loader := NewLoaderWithGlobalDir(repoRoot, t.TempDir())

		_, err := loader.Load()
		assert.ErrorIs(t, err, domain.ErrOverlappingCategory)
	})

	t.Run("malformed YAML is an error", func(t *testing.T) {
		repoRoot := t.TempDir()
		writeFile(t, filepath.Join(repoRoot, ".github", RepoFileName), "priority: [unclosed")
		loader := NewLoaderWithGlobalDir(repoRoot, t.TempDir())

		_, err := loader.Load()
		assert.Error(t, err)
	})
}
