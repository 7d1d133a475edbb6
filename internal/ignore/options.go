package ignore

import "github.com/bethropolis/tree-dumper/internal/utils"

// Option functions for configuring discovery
type Option func(*discoverer)

// WithLogger sets the logger used during discovery and resolution.
func WithLogger(log utils.Logger) Option {
	return func(d *discoverer) {
		if log != nil {
			d.log = log
		}
	}
}

// WithAll disables .gitignore reading and the default-pattern fallback;
// only the always-ignore set and caller-supplied extras remain.
func WithAll(all bool) Option {
	return func(d *discoverer) {
		d.all = all
	}
}

// WithOutputName overrides the output file name added to the always-ignore
// set so the diagram never lists itself.
func WithOutputName(name string) Option {
	return func(d *discoverer) {
		if name != "" {
			d.outputName = name
		}
	}
}

// WithExtraDirNames appends directory names to exclude at the root scope.
func WithExtraDirNames(names []string) Option {
	return func(d *discoverer) {
		d.extraDirs = names
	}
}

// WithExtraFileNames appends file names to exclude at the root scope.
func WithExtraFileNames(names []string) Option {
	return func(d *discoverer) {
		d.extraFiles = names
	}
}
