package panel

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prepgenius/prepgenius/internal/export"
)

func TestOutput_ExportEmptyAlerts(t *testing.T) {
	dir := t.TempDir()
	o := NewOutput(dir, "notes.txt", log.New(&bytes.Buffer{}))
	o.SetContent("   \n")

	o.Export()

	assert.Equal(t, export.NothingMessage, o.Notice())
	_, err := os.Stat(filepath.Join(dir, "notes.txt"))
	assert.True(t, os.IsNotExist(err))
}

func TestOutput_ExportWritesRawText(t *testing.T) {
	dir := t.TempDir()
	o := NewOutput(dir, "notes.txt", log.New(&bytes.Buffer{}))
	o.SetContent("  # Notes\n- cells  \n")

	o.Export()

	data, err := os.ReadFile(filepath.Join(dir, "notes.txt"))
	require.NoError(t, err)
	assert.Equal(t, "# Notes\n- cells", string(data))
	assert.Contains(t, o.Notice(), "Saved to")
	assert.Contains(t, o.View(80), "Saved to")
}

func TestOutput_ExportFailure(t *testing.T) {
	notDir := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(notDir, []byte("x"), 0o644))
	o := NewOutput(notDir, "notes.txt", log.New(&bytes.Buffer{}))
	o.SetContent("text")

	o.Export()

	assert.Contains(t, o.Notice(), "Download failed")
}
