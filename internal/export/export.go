// Package export saves the text of an output region as a plain-text file.
package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// NothingMessage is the alert shown when there is nothing to save.
const NothingMessage = "Nothing to download yet."

// ErrNothingToDownload is returned when the region text is blank.
var ErrNothingToDownload = errors.New("nothing to download")

// Alerter shows a blocking notice to the user.
type Alerter interface {
	Alert(message string)
}

// AlertFunc adapts a function to Alerter.
type AlertFunc func(message string)

func (f AlertFunc) Alert(message string) { f(message) }

// Exporter writes files into a directory.
type Exporter struct {
	dir   string
	alert Alerter
}

// New creates an Exporter writing into dir.
func New(dir string, alert Alerter) *Exporter {
	if dir == "" {
		dir = "."
	}
	return &Exporter{dir: dir, alert: alert}
}

// Dir returns the directory files are written to.
func (e *Exporter) Dir() string {
	return e.dir
}

// Download writes the trimmed text to filename in the export directory and
// returns the written path. Blank text alerts and writes nothing.
func (e *Exporter) Download(text, filename string) (string, error) {
	content := strings.TrimSpace(text)
	if content == "" {
		if e.alert != nil {
			e.alert.Alert(NothingMessage)
		}
		return "", ErrNothingToDownload
	}

	name := filepath.Base(filename)
	if name == "." || name == string(filepath.Separator) {
		return "", fmt.Errorf("invalid file name %q", filename)
	}

	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	tmp, err := os.CreateTemp(e.dir, "."+name+".*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	_, werr := tmp.WriteString(content)
	cerr := tmp.Close()
	if werr != nil || cerr != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("write export: %w", errors.Join(werr, cerr))
	}

	dest := filepath.Join(e.dir, name)
	if err := os.Rename(tmpPath, dest); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("finalize export: %w", err)
	}
	return dest, nil
}
