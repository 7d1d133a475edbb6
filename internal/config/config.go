package config

import (
	"flag"
	"os"

	"github.com/mattn/go-isatty"
)

// Config holds all application configuration settings
type Config struct {
	// Directory settings
	RootDir string

	// Logging settings
	Debug       bool
	Quiet       bool
	LogLevel    string
	NoColor     bool
	UseColors   bool
	ShowSkipped bool

	// Filtering settings
	All            bool
	ExceptDirs     string
	ExceptFiles    string
	IncludePattern string
	ExcludePattern string
	MaxDepth       int

	// Output settings
	DryRun     bool
	OutputName string
	OutputPath string

	// Version info
	ShowVersion bool
	Version     string
}

// New creates a new Config with values from command-line flags
func New() *Config {
	c := &Config{
		Version: "1.0.0", // Update this when releasing new versions
	}

	// Parse command-line flags
	flag.StringVar(&c.RootDir, "dir", ".", "The root directory to diagram")
	flag.BoolVar(&c.All, "all", false, "Skip .gitignore files entirely (always-ignore set still applies)")
	flag.StringVar(&c.ExceptDirs, "except-dir", "", "Extra directory names to exclude (comma-separated)")
	flag.StringVar(&c.ExceptFiles, "except-file", "", "Extra file names to exclude (comma-separated)")
	flag.IntVar(&c.MaxDepth, "max-depth", 0, "Maximum tree depth to render (0 = unlimited)")
	flag.StringVar(&c.IncludePattern, "include-pattern", "", "Only render files matching this regular expression")
	flag.StringVar(&c.ExcludePattern, "exclude-pattern", "", "Remove files/directories matching this regular expression")
	flag.BoolVar(&c.DryRun, "dry-run", false, "Print the diagram to stdout instead of writing a file")
	flag.StringVar(&c.OutputName, "output-name", "tree.txt", "Name of the output file")
	flag.StringVar(&c.OutputPath, "output-path", "", "Directory to write the output file to (defaults to the root directory)")
	flag.BoolVar(&c.Debug, "debug", false, "Enable debug logging")
	flag.BoolVar(&c.Quiet, "quiet", false, "Suppress INFO messages (only show WARN, ERROR)")
	flag.StringVar(&c.LogLevel, "log-level", "INFO", "Set the logging level (DEBUG, INFO, WARN, ERROR)")
	flag.BoolVar(&c.NoColor, "no-color", false, "Disable color output")
	flag.BoolVar(&c.ShowSkipped, "show-skipped", false, "Show a list of skipped entries and reasons at the end")
	flag.BoolVar(&c.ShowVersion, "version", false, "Show version information")

	flag.Parse()

	// Determine if colors should be used
	c.UseColors = !c.NoColor && isatty.IsTerminal(os.Stderr.Fd())

	return c
}
