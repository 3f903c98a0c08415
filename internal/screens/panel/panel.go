// Package panel holds the output region shared by the generation forms:
// generated text, status lines and export to a file.
package panel

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/prepgenius/prepgenius/internal/export"
	"github.com/prepgenius/prepgenius/internal/ui/components"
	"github.com/prepgenius/prepgenius/internal/ui/layout"
	"github.com/prepgenius/prepgenius/internal/ui/theme"
)

// ExportHint is the footer hint for the export key.
var ExportHint = layout.KeyHint{Key: "Ctrl+S", Description: "Download"}

// Output is a form's output region with export support.
type Output struct {
	components.Output

	exporter *export.Exporter
	filename string
	logger   *log.Logger
	notice   string
	failed   bool
}

// NewOutput creates an output region exporting to filename inside dir.
func NewOutput(dir, filename string, logger *log.Logger) *Output {
	o := &Output{filename: filename, logger: logger}
	o.exporter = export.New(dir, export.AlertFunc(func(message string) {
		o.notice = message
	}))
	return o
}

// Filename returns the export file name.
func (o *Output) Filename() string {
	return o.filename
}

// Export writes the raw output text to the export file and records a
// notice describing the outcome.
func (o *Output) Export() {
	o.notice = ""
	o.failed = false
	path, err := o.exporter.Download(o.Text(), o.filename)
	switch {
	case errors.Is(err, export.ErrNothingToDownload):
		// The alert already set the notice.
	case err != nil:
		o.logger.Error("export failed", "file", o.filename, "err", err)
		o.notice = fmt.Sprintf("Download failed: %v", err)
		o.failed = true
	default:
		o.logger.Info("exported output", "path", path)
		o.notice = "Saved to " + path
	}
}

// Notice returns the last export notice.
func (o *Output) Notice() string {
	return o.notice
}

// ClearNotice removes the export notice.
func (o *Output) ClearNotice() {
	o.notice = ""
	o.failed = false
}

// View renders the output and any export notice.
func (o *Output) View(width int) string {
	out := o.Output.View(width)
	switch {
	case o.failed:
		out += "\n\n" + theme.ErrorText.Render(o.notice)
	case o.notice != "":
		out += "\n\n" + theme.Hint.Render(o.notice)
	}
	return out
}
