// Package setup provides initialization and configuration functions
package setup

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/bethropolis/tree-dumper/internal/ignore"
	"github.com/bethropolis/tree-dumper/internal/tree"
	"github.com/bethropolis/tree-dumper/internal/utils"
)

// Logger defines the minimal logging interface required
type Logger interface {
	utils.Logger
}

// InfoLogger wraps the Info method for status updates
type InfoLogger func(format string, args ...interface{})

// RunConfig holds all parameters needed to configure discovery and rendering
type RunConfig struct {
	All            bool
	ExceptDirs     string
	ExceptFiles    string
	IncludePattern string
	ExcludePattern string
	MaxDepth       int
	OutputName     string
	Logger         Logger
}

// ConfigureRun translates a RunConfig into discovery and renderer options.
// The regular expressions are compiled and validated here, before the core
// ever runs; an invalid pattern is a usage error, not a render-time one.
func ConfigureRun(cfg RunConfig, infoLog InfoLogger) (
	[]ignore.Option,
	[]tree.Option,
	error,
) {
	// --- Parse extra ignore names ---
	extraDirs := splitList(cfg.ExceptDirs)
	extraFiles := splitList(cfg.ExceptFiles)
	if len(extraDirs) > 0 {
		infoLog("Excluding extra directories: %v", extraDirs)
	}
	if len(extraFiles) > 0 {
		infoLog("Excluding extra files: %v", extraFiles)
	}

	// --- Set up discovery options ---
	ignoreOptions := []ignore.Option{
		ignore.WithLogger(cfg.Logger),
		ignore.WithAll(cfg.All),
		ignore.WithOutputName(cfg.OutputName),
	}
	if len(extraDirs) > 0 {
		ignoreOptions = append(ignoreOptions, ignore.WithExtraDirNames(extraDirs))
	}
	if len(extraFiles) > 0 {
		ignoreOptions = append(ignoreOptions, ignore.WithExtraFileNames(extraFiles))
	}
	if cfg.All {
		infoLog("Skipping .gitignore files (-all).")
	}

	// --- Set up renderer options ---
	treeOptions := []tree.Option{
		tree.WithLogger(cfg.Logger),
		tree.WithMaxDepth(cfg.MaxDepth),
	}
	if cfg.IncludePattern != "" {
		re, err := regexp.Compile(cfg.IncludePattern)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid include pattern %q: %w", cfg.IncludePattern, err)
		}
		treeOptions = append(treeOptions, tree.WithIncludePattern(re))
		infoLog("Only including files matching: %s", cfg.IncludePattern)
	}
	if cfg.ExcludePattern != "" {
		re, err := regexp.Compile(cfg.ExcludePattern)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid exclude pattern %q: %w", cfg.ExcludePattern, err)
		}
		treeOptions = append(treeOptions, tree.WithExcludePattern(re))
		infoLog("Excluding entries matching: %s", cfg.ExcludePattern)
	}
	if cfg.MaxDepth > 0 {
		infoLog("Limiting tree depth to %d.", cfg.MaxDepth)
	}

	return ignoreOptions, treeOptions, nil
}

// splitList turns a comma-separated flag value into trimmed names.
func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	var names []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			names = append(names, part)
		}
	}
	return names
}
