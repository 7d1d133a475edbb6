package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/bethropolis/tree-dumper/internal/config"
	"github.com/bethropolis/tree-dumper/internal/ignore"
	"github.com/bethropolis/tree-dumper/internal/logger"
	"github.com/bethropolis/tree-dumper/internal/printer"
	"github.com/bethropolis/tree-dumper/internal/setup"
	"github.com/bethropolis/tree-dumper/internal/summary"
	"github.com/bethropolis/tree-dumper/internal/tree"
	"github.com/fatih/color"
)

// App encapsulates the main application functionality
type App struct {
	cfg    *config.Config
	log    *logger.Logger
	Output io.Writer
}

// New creates a new App instance
func New(cfg *config.Config) *App {
	// Configure color globally
	color.NoColor = !cfg.UseColors

	// Set up logger
	log := logger.New(os.Stderr, cfg.Debug, cfg.UseColors)

	// Apply log level if specified (overrides debug/quiet flags)
	if cfg.Debug {
		log.WithLevel(logger.LevelDebug)
	} else if cfg.LogLevel != "" {
		log.SetLevel(cfg.LogLevel)
	} else if cfg.Quiet {
		log.WithLevel(logger.LevelWarn)
	}

	return &App{
		cfg:    cfg,
		log:    log,
		Output: os.Stdout,
	}
}

// Run executes the main application logic
func (a *App) Run() {
	startTime := time.Now()

	// Show version and exit if requested
	if a.cfg.ShowVersion {
		fmt.Printf("tree-dumper version %s\n", a.cfg.Version)
		os.Exit(0)
	}

	// Helper for info messages, suppressed by quiet flag
	infoLog := func(format string, args ...interface{}) {
		if !a.cfg.Quiet {
			a.log.Info(format, args...)
		}
	}

	if a.log.DebugEnabled() {
		a.log.Debug("Debug mode enabled")
		a.log.Debug("Color output: %v", a.cfg.UseColors)
		a.log.Debug("Directory: %s", a.cfg.RootDir)
		a.log.Debug("Filter settings: all=%v, max-depth=%d", a.cfg.All, a.cfg.MaxDepth)
		if a.cfg.IncludePattern != "" {
			a.log.Debug("Include pattern: %s", a.cfg.IncludePattern)
		}
		if a.cfg.ExcludePattern != "" {
			a.log.Debug("Exclude pattern: %s", a.cfg.ExcludePattern)
		}
	}

	// --- Directory validation ---
	absRootDir, err := filepath.Abs(a.cfg.RootDir)
	if err != nil {
		a.log.Error("Invalid root directory path '%s': %v", a.cfg.RootDir, err)
		os.Exit(1)
	}

	dirInfo, err := os.Stat(absRootDir)
	if err != nil {
		if os.IsNotExist(err) {
			a.log.Error("Root directory '%s' not found.", absRootDir)
		} else {
			a.log.Error("Could not access root directory '%s': %v", absRootDir, err)
		}
		os.Exit(1)
	}
	if !dirInfo.IsDir() {
		a.log.Error("Specified path '%s' is not a directory.", absRootDir)
		os.Exit(1)
	}

	// --- Configure discovery and rendering ---
	ignoreOptions, treeOptions, err := setup.ConfigureRun(setup.RunConfig{
		All:            a.cfg.All,
		ExceptDirs:     a.cfg.ExceptDirs,
		ExceptFiles:    a.cfg.ExceptFiles,
		IncludePattern: a.cfg.IncludePattern,
		ExcludePattern: a.cfg.ExcludePattern,
		MaxDepth:       a.cfg.MaxDepth,
		OutputName:     a.cfg.OutputName,
		Logger:         a.log,
	}, infoLog)
	if err != nil {
		a.log.Error("%v", err)
		os.Exit(1)
	}

	// --- Discover ignore rules ---
	infoLog("Scanning directory: %s", absRootDir)
	rules, err := ignore.Discover(absRootDir, ignoreOptions...)
	if err != nil {
		a.log.Error("Error discovering ignore rules: %v", err)
		os.Exit(1)
	}
	infoLog("Using %d ignore file(s).", rules.Len())

	// --- Render the tree ---
	renderer := tree.New(absRootDir, rules, treeOptions...)
	rendered, err := renderer.Render()
	if err != nil {
		a.log.Error("Error rendering tree: %v", err)
		os.Exit(1)
	}

	// --- Write the output ---
	p := printer.New()
	p.WithOutput(a.Output)
	p.WithDryRun(a.cfg.DryRun)

	outputDir := a.cfg.OutputPath
	if outputDir == "" {
		outputDir = absRootDir
	}
	outputFile := filepath.Join(outputDir, a.cfg.OutputName)

	if err := p.Write(rendered, outputFile); err != nil {
		a.log.Error("Error writing output: %v", err)
		os.Exit(1)
	}
	if a.cfg.DryRun {
		infoLog("Dry run: no file written.")
	} else {
		infoLog("Wrote %s", outputFile)
	}

	// --- Show results summary ---
	summary.DisplayResults(a.log, renderer.Stats(), time.Since(startTime), a.cfg.Quiet)

	if a.cfg.ShowSkipped {
		summary.DisplaySkippedItems(a.log, renderer.Skipped(), os.Stderr, a.cfg.Quiet)
	}
}
