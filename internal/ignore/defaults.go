package ignore

// IgnoreFileName is the per-directory rule file discovery looks for.
const IgnoreFileName = ".gitignore"

// DefaultOutputName is the output file name excluded from its own listing
// unless the caller overrides it.
const DefaultOutputName = "tree.txt"

// alwaysSkipDirs are never descended into, before any rule is consulted.
var alwaysSkipDirs = map[string]struct{}{
	".git": {},
}

// alwaysIgnoreNames are injected at the root scope on every run: the tool's
// own output and VCS metadata never belong in the diagram.
func alwaysIgnoreNames(outputName string) []string {
	return []string{outputName, ".git"}
}

// defaultPatternNames seed a synthetic root ignore file when the tree has no
// .gitignore anywhere: common build, VCS and editor artifacts.
var defaultPatternNames = []string{
	"node_modules",
	"bower_components",
	".git",
	".svn",
	".hg",
	".idea",
	".vscode",
	".DS_Store",
	"Thumbs.db",
	"dist",
	"build",
	"out",
	"target",
	"vendor",
	"coverage",
	"__pycache__",
	"*.pyc",
	"*.log",
	".cache",
	".next",
}
