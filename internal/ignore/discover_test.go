package ignore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTree creates files under root; map keys are slash-separated relative
// paths, values are file contents. Parent directories are created as needed.
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		full := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
	}
}

func scopes(rs *RuleSet) []string {
	var out []string
	for _, f := range rs.Files() {
		out = append(out, f.Scope)
	}
	return out
}

func patternTexts(f File) []string {
	var out []string
	for _, p := range f.Patterns {
		out = append(out, p.Text)
	}
	return out
}

func TestDiscover_FindsNestedIgnoreFiles(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		".gitignore":          "dist\n",
		"frontend/.gitignore": "!important.tmp\n",
		"frontend/app.js":     "",
	})

	rules, err := Discover(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"", "frontend"}, scopes(rules))
}

func TestDiscover_RootScopeGetsAlwaysIgnoreAndExtras(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		".gitignore": "dist\n",
	})

	rules, err := Discover(root,
		WithOutputName("diagram.txt"),
		WithExtraDirNames([]string{"logs"}),
		WithExtraFileNames([]string{"secrets.env"}),
	)
	require.NoError(t, err)
	require.Equal(t, 1, rules.Len())

	texts := patternTexts(rules.Files()[0])
	// Always-ignore set first, file content in the middle, extras last.
	assert.Equal(t, []string{"diagram.txt", ".git", "dist", "logs", "secrets.env"}, texts)

	assert.True(t, rules.IsExcluded("diagram.txt", "diagram.txt", false))
	assert.True(t, rules.IsExcluded("logs", "logs", true))
	assert.True(t, rules.IsExcluded("secrets.env", "sub/secrets.env", false))
}

func TestDiscover_NeverDescendsIntoExcludedDirectory(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		".gitignore":                 "ignored-at-root\n",
		"build/.gitignore":           "secret/\n",
		"build/secret/.gitignore":    "must-never-load\n",
		"ignored-at-root/.gitignore": "also-never-loaded\n",
	})

	rules, err := Discover(root)
	require.NoError(t, err)

	// build/secret and ignored-at-root are excluded before descent, so
	// their ignore files are never read.
	assert.Equal(t, []string{"", "build"}, scopes(rules))
}

func TestDiscover_EmptyIgnoreFileTreatedAsAbsent(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		".gitignore": "   \n\n\t\n",
		"a/file.txt": "",
	})

	rules, err := Discover(root)
	require.NoError(t, err)
	require.Equal(t, 1, rules.Len())

	// The only file is the synthetic default fallback.
	texts := patternTexts(rules.Files()[0])
	assert.Contains(t, texts, "node_modules")
	assert.Contains(t, texts, ".git")
}

func TestDiscover_FallbackDefaultsWhenNoIgnoreFiles(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"src/main.go":         "",
		"node_modules/x/y.js": "",
		"build/out.bin":       "",
		"notes.log":           "",
		"docs/readme.md":      "",
	})

	rules, err := Discover(root)
	require.NoError(t, err)
	require.Equal(t, 1, rules.Len())
	assert.Equal(t, "", rules.Files()[0].Scope)

	assert.True(t, rules.IsExcluded("node_modules", "node_modules", true))
	assert.True(t, rules.IsExcluded("build", "build", true))
	assert.True(t, rules.IsExcluded("notes.log", "notes.log", false))
	assert.False(t, rules.IsExcluded("src", "src", true))
	assert.False(t, rules.IsExcluded("readme.md", "docs/readme.md", false))
}

func TestDiscover_AllSkipsIgnoreFilesButKeepsBaseline(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		".gitignore":  "src\n",
		"src/main.go": "",
	})

	rules, err := Discover(root, WithAll(true), WithExtraDirNames([]string{"logs"}))
	require.NoError(t, err)
	require.Equal(t, 1, rules.Len())

	assert.False(t, rules.IsExcluded("src", "src", true), "-all disables .gitignore rules")
	assert.True(t, rules.IsExcluded(".git", ".git", true))
	assert.True(t, rules.IsExcluded("tree.txt", "tree.txt", false))
	assert.True(t, rules.IsExcluded("logs", "logs", true), "extras still apply with -all")
}

func TestDiscover_GitDirNeverScanned(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		".git/info/.gitignore": "never-loaded\n",
		"src/main.go":          "",
	})

	rules, err := Discover(root)
	require.NoError(t, err)
	for _, scope := range scopes(rules) {
		assert.NotContains(t, scope, ".git")
	}
}

func TestDiscover_MissingRootStillReturnsRuleSet(t *testing.T) {
	rules, err := Discover(filepath.Join(t.TempDir(), "does-not-exist"))
	require.NoError(t, err)
	// Unreadable directories degrade to a warning; the fallback defaults
	// still apply so rendering has something to work with.
	assert.Equal(t, 1, rules.Len())
}
