package tree

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/bethropolis/tree-dumper/internal/ignore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTree creates files under root; map keys are slash-separated relative
// paths, values are file contents.
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		full := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
	}
}

// renderDir discovers rules under root and renders with the given options.
func renderDir(t *testing.T, root string, opts ...Option) string {
	t.Helper()
	rules, err := ignore.Discover(root)
	require.NoError(t, err)
	rendered, err := New(root, rules, opts...).Render()
	require.NoError(t, err)
	return rendered
}

func TestRender_EndToEndNegationScenario(t *testing.T) {
	root := filepath.Join(t.TempDir(), "proj")
	require.NoError(t, os.MkdirAll(root, 0o755))
	writeTree(t, root, map[string]string{
		".gitignore":             "dist\n*.tmp\n",
		"frontend/.gitignore":    "!important.tmp\n",
		"dist/x.js":              "",
		"a.tmp":                  "",
		"frontend/b.tmp":         "",
		"frontend/important.tmp": "",
	})

	got := renderDir(t, root)
	want := strings.Join([]string{
		"proj/",
		"├── frontend",
		"│   ├── .gitignore",
		"│   └── important.tmp",
		"└── .gitignore",
		"",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestRender_ConnectorsAndSorting(t *testing.T) {
	root := filepath.Join(t.TempDir(), "proj")
	require.NoError(t, os.MkdirAll(root, 0o755))
	writeTree(t, root, map[string]string{
		".gitignore":    "nothing-here\n",
		"zeta.txt":      "",
		"alpha.txt":     "",
		"mid/inner.txt": "",
		"aaa/one.txt":   "",
		"aaa/two.txt":   "",
	})

	got := renderDir(t, root)
	want := strings.Join([]string{
		"proj/",
		"├── aaa",
		"│   ├── one.txt",
		"│   └── two.txt",
		"├── mid",
		"│   └── inner.txt",
		"├── .gitignore",
		"├── alpha.txt",
		"└── zeta.txt",
		"",
	}, "\n")
	assert.Equal(t, want, got, "directories sort before files, names case-sensitive")
}

func TestRender_DepthLimit(t *testing.T) {
	root := filepath.Join(t.TempDir(), "proj")
	require.NoError(t, os.MkdirAll(root, 0o755))
	writeTree(t, root, map[string]string{
		".gitignore":                "nothing-here\n",
		"top.txt":                   "",
		"alpha/child.txt":           "",
		"alpha/beta/grandchild.txt": "",
	})

	got := renderDir(t, root, WithMaxDepth(1))
	want := strings.Join([]string{
		"proj/",
		"├── alpha",
		"├── .gitignore",
		"└── top.txt",
		"",
	}, "\n")
	assert.Equal(t, want, got, "depth 1 renders root-level entries only")
}

func TestRender_DepthLimitTwoLevels(t *testing.T) {
	root := filepath.Join(t.TempDir(), "proj")
	require.NoError(t, os.MkdirAll(root, 0o755))
	writeTree(t, root, map[string]string{
		".gitignore":                "nothing-here\n",
		"alpha/child.txt":           "",
		"alpha/beta/grandchild.txt": "",
	})

	got := renderDir(t, root, WithMaxDepth(2))
	assert.Contains(t, got, "child.txt")
	assert.Contains(t, got, "beta")
	assert.NotContains(t, got, "grandchild.txt")
}

func TestRender_IncludeAndExcludePatterns(t *testing.T) {
	root := filepath.Join(t.TempDir(), "proj")
	require.NoError(t, os.MkdirAll(root, 0o755))
	writeTree(t, root, map[string]string{
		".gitignore":    "nothing-here\n",
		"src/a.js":      "",
		"src/a.test.js": "",
		"src/a.css":     "",
	})

	got := renderDir(t, root,
		WithIncludePattern(regexp.MustCompile(`\.js$`)),
		WithExcludePattern(regexp.MustCompile(`test`)),
	)
	want := strings.Join([]string{
		"proj/",
		"└── src",
		"    └── a.js",
		"",
	}, "\n")
	assert.Equal(t, want, got, "directories are exempt from the include pattern")
}

func TestRender_ExcludePatternRemovesDirectories(t *testing.T) {
	root := filepath.Join(t.TempDir(), "proj")
	require.NoError(t, os.MkdirAll(root, 0o755))
	writeTree(t, root, map[string]string{
		".gitignore":       "nothing-here\n",
		"keep/file.txt":    "",
		"testdata/fixture": "",
	})

	got := renderDir(t, root, WithExcludePattern(regexp.MustCompile(`^testdata$`)))
	assert.Contains(t, got, "keep")
	assert.NotContains(t, got, "testdata")
	assert.NotContains(t, got, "fixture")
}

func TestRender_TracksSkippedEntries(t *testing.T) {
	root := filepath.Join(t.TempDir(), "proj")
	require.NoError(t, os.MkdirAll(root, 0o755))
	writeTree(t, root, map[string]string{
		".gitignore": "*.tmp\n",
		"a.tmp":      "",
		"b.txt":      "",
	})

	rules, err := ignore.Discover(root)
	require.NoError(t, err)
	r := New(root, rules, WithExcludePattern(regexp.MustCompile(`b\.txt`)))
	_, err = r.Render()
	require.NoError(t, err)

	byPath := map[string]SkippedReason{}
	for _, item := range r.Skipped() {
		byPath[item.Path] = item.Reason
	}
	assert.Equal(t, ReasonIgnoredRule, byPath["a.tmp"])
	assert.Equal(t, ReasonExcludeMatch, byPath["b.txt"])
}

func TestRender_Stats(t *testing.T) {
	root := filepath.Join(t.TempDir(), "proj")
	require.NoError(t, os.MkdirAll(root, 0o755))
	writeTree(t, root, map[string]string{
		".gitignore":   "nothing-here\n",
		"sub/file.txt": "",
		"top.txt":      "",
	})

	rules, err := ignore.Discover(root)
	require.NoError(t, err)
	r := New(root, rules)
	_, err = r.Render()
	require.NoError(t, err)

	stats := r.Stats()
	assert.Equal(t, int64(1), stats.Dirs)
	assert.Equal(t, int64(3), stats.Files) // .gitignore, top.txt, sub/file.txt
}

func TestRender_RootMustBeDirectory(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "plain.txt")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	rules, err := ignore.Discover(root)
	require.NoError(t, err)

	_, err = New(file, rules).Render()
	require.Error(t, err)

	_, err = New(filepath.Join(root, "missing"), rules).Render()
	require.Error(t, err)
}
