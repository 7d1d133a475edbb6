package tree

import (
	"regexp"

	"github.com/bethropolis/tree-dumper/internal/utils"
)

// Option is a functional option for configuring the Renderer
type Option func(*Renderer)

// WithLogger sets a custom logger for the renderer
func WithLogger(log utils.Logger) Option {
	return func(r *Renderer) {
		if log != nil {
			r.log = log
		}
	}
}

// WithMaxDepth limits recursion depth; 0 or below means unlimited.
func WithMaxDepth(depth int) Option {
	return func(r *Renderer) {
		r.maxDepth = depth
	}
}

// WithIncludePattern keeps only files matching re; directories are always
// retained for structural context. A nil re disables the filter.
func WithIncludePattern(re *regexp.Regexp) Option {
	return func(r *Renderer) {
		r.include = re
	}
}

// WithExcludePattern drops files and directories matching re. A nil re
// disables the filter.
func WithExcludePattern(re *regexp.Regexp) Option {
	return func(r *Renderer) {
		r.exclude = re
	}
}
