package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sinplot/pkg/config"
	"sinplot/pkg/errs"
)

func TestRunWritesPlot(t *testing.T) {
	dir := t.TempDir()
	file := config.DefaultFile()
	file.Seed = 42
	file.Plot.Output = filepath.Join(dir, "images", "plot.png")
	csvPath := filepath.Join(dir, "samples.csv")

	require.NoError(t, run(file, job{csvPath: csvPath, mkdir: true}))

	f, err := os.Open(file.Plot.Output)
	require.NoError(t, err)
	defer f.Close()

	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 640, cfg.Width)
	assert.Equal(t, 480, cfg.Height)

	data, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "input,output\n")
}

func TestRunInvalidBounds(t *testing.T) {
	dir := t.TempDir()
	file := config.DefaultFile()
	file.Plot.XMin, file.Plot.XMax = 5.0, 1.0
	file.Plot.Output = filepath.Join(dir, "images", "plot.png")

	err := run(file, job{mkdir: true})
	require.ErrorIs(t, err, errs.ErrConfig)

	// nothing was created, not even the directory
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRunUnknownFunction(t *testing.T) {
	file := config.DefaultFile()
	file.Function.Name = "sawtooth"
	file.Plot.Output = filepath.Join(t.TempDir(), "plot.png")

	assert.ErrorIs(t, run(file, job{}), errs.ErrConfig)
}

func TestRunMissingDirectory(t *testing.T) {
	file := config.DefaultFile()
	file.Plot.Output = filepath.Join(t.TempDir(), "images", "plot.png")

	err := run(file, job{mkdir: false})
	require.ErrorIs(t, err, errs.ErrIO)
	assert.Contains(t, err.Error(), "render: save:")
}

func TestRunExportFailureStillRenders(t *testing.T) {
	dir := t.TempDir()
	file := config.DefaultFile()
	file.Seed = 3
	file.Plot.Output = filepath.Join(dir, "plot.png")

	require.NoError(t, run(file, job{csvPath: filepath.Join(dir, "missing", "samples.csv")}))

	_, err := os.Stat(file.Plot.Output)
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
