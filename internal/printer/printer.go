// Package printer handles writing the rendered diagram to its destination
package printer

import (
	"fmt"
	"io"
	"os"
)

// Printer writes the rendered tree either to a file or, in dry-run mode, to
// the configured writer (stdout by default).
type Printer struct {
	out    io.Writer
	dryRun bool
}

// New creates a new Printer with default settings
func New() *Printer {
	return &Printer{out: os.Stdout}
}

// WithOutput sets the writer used in dry-run mode
func (p *Printer) WithOutput(w io.Writer) *Printer {
	p.out = w
	return p
}

// WithDryRun enables printing instead of writing a file
func (p *Printer) WithDryRun(enabled bool) *Printer {
	p.dryRun = enabled
	return p
}

// Write delivers the rendered diagram. In dry-run mode it goes to the
// configured writer and outputPath is ignored; otherwise the file at
// outputPath is created or truncated.
func (p *Printer) Write(rendered, outputPath string) error {
	if p.dryRun {
		_, err := io.WriteString(p.out, rendered)
		return err
	}
	if err := os.WriteFile(outputPath, []byte(rendered), 0o644); err != nil {
		return fmt.Errorf("printer: failed to write %q: %w", outputPath, err)
	}
	return nil
}
