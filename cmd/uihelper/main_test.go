package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	uierrors "github.com/alexisbeaulieu97/uihelper/pkg/errors"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := newRootCmd()
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x * 16), G: uint8(y * 16), B: 128, A: 255})
		}
	}
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestVersionCommandOutputsBuildInfo(t *testing.T) {
	originalVersion := version
	originalCommit := commit
	originalDate := date
	t.Cleanup(func() {
		version = originalVersion
		commit = originalCommit
		date = originalDate
	})

	version = "1.2.3"
	commit = "abcdef1"
	date = "2025-10-03"

	output, _, err := execute(t, "version")
	require.NoError(t, err)

	require.Contains(t, output, "uihelper 1.2.3")
	require.Contains(t, output, "abcdef1")
	require.Contains(t, output, "2025-10-03")
}

func TestRenderPrintsFrame(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ui.yaml")
	writeFile(t, path, `
window: {window_title: Greeting}
layout:
  vbox:
    - label: Hello there
    - button: Continue
`)

	output, _, err := execute(t, "render", path, "--width", "40", "--height", "8")
	require.NoError(t, err)

	assert.Contains(t, output, "Greeting")
	assert.Contains(t, output, "Hello there")
	assert.Contains(t, output, "Continue")
}

func TestRenderUsesConfiguredMarkup(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "screens", "main.yaml"), "layout:\n  label: from config\n")
	cfgPath := filepath.Join(dir, "uihelper.yaml")
	writeFile(t, cfgPath, "name: Demo\nmarkup: screens/main.yaml\n")

	output, _, err := execute(t, "--config", cfgPath, "render")
	require.NoError(t, err)

	assert.Contains(t, output, "from config")
}

func TestRenderRequiresMarkup(t *testing.T) {
	_, _, err := execute(t, "render")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "markup file is required")
}

func TestRenderReportsMarkupErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ui.yaml")
	writeFile(t, path, "layout:\n  gizmo: {}\n")

	_, _, err := execute(t, "render", path)

	assert.ErrorIs(t, err, uierrors.ErrType)
}

func TestRenderRejectsInvalidConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "uihelper.yaml")
	writeFile(t, cfgPath, "log:\n  level: chatty\n")

	_, _, err := execute(t, "--config", cfgPath, "render", "ui.yaml")

	assert.ErrorIs(t, err, uierrors.ErrValidation)
}

func TestDemoLoggerStaticOutput(t *testing.T) {
	output, _, err := execute(t, "demo", "logger", "--count", "3", "--workers", "2")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(output), "\n")
	assert.Len(t, lines, 6)
	for _, want := range []string{"worker-1", "worker-2", "message 1", "message 3"} {
		assert.Contains(t, output, want)
	}
}

func TestDemoLoggerWritesStructuredFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "uihelper.yaml")
	writeFile(t, cfgPath, "log:\n  console: false\n  structured: records.jsonl\n  level: warning\n")

	_, _, err := execute(t, "--config", cfgPath, "demo", "logger", "--count", "4", "--workers", "1")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "records.jsonl"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	// Worker 1 logs warning, error, debug then info.
	assert.Len(t, lines, 2)
}

func TestDemoLoggerNeedsWorkers(t *testing.T) {
	_, _, err := execute(t, "demo", "logger", "--workers", "0")

	require.Error(t, err)
}

func TestDemoLoggerIntervalChecks(t *testing.T) {
	opts := demoLoggerOptions{workers: 1}

	assert.NoError(t, opts.validate(false), "static output ignores the interval")
	assert.Error(t, opts.validate(true))

	opts.interval = -time.Second
	assert.Error(t, opts.validate(true))

	opts.interval = 10 * time.Millisecond
	assert.NoError(t, opts.validate(true))
}

func TestIconsListsGlyphs(t *testing.T) {
	output, _, err := execute(t, "icons")
	require.NoError(t, err)

	assert.Contains(t, output, "✖  ma-error")
	assert.Contains(t, output, "ma-warning")

	filtered, _, err := execute(t, "icons", "err")
	require.NoError(t, err)
	assert.Contains(t, filtered, "ma-error")
	assert.NotContains(t, filtered, "ma-warning")
}

func TestIconsShowDrawsCatalogIcon(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "material-icons", "ma-test.png"), 8, 8)

	output, _, err := execute(t, "icons", "show", "ma-test", "--catalog", dir, "--width", "4", "--height", "4", "--color", "255,0,0,255")
	require.NoError(t, err)

	assert.Equal(t, 8, strings.Count(output, "▀"))
}

func TestIconsShowRejectsBadName(t *testing.T) {
	_, _, err := execute(t, "icons", "show", "test", "--catalog", t.TempDir())

	assert.ErrorIs(t, err, uierrors.ErrValue)
}

func TestViewPrintsImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pic.png")
	writePNG(t, path, 8, 8)

	output, _, err := execute(t, "view", path, "--width", "4", "--height", "2")
	require.NoError(t, err)

	assert.Equal(t, 8, strings.Count(output, "▀"))
}

func TestViewMissingImage(t *testing.T) {
	_, _, err := execute(t, "view", filepath.Join(t.TempDir(), "none.png"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "open image")
}

func TestDemoDialogsNeedsTerminal(t *testing.T) {
	_, _, err := execute(t, "demo", "dialogs")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "needs a terminal")
}
