package lib

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSinkCommit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plot.png")

	sink, err := OpenSink(path)
	require.NoError(t, err)
	assert.Equal(t, path, sink.Path())

	_, err = sink.WriteString("hello")
	require.NoError(t, err)

	// nothing is visible before the commit
	_, err = os.Stat(path)
	assert.ErrorIs(t, err, os.ErrNotExist)

	require.NoError(t, sink.Commit())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	assert.ErrorIs(t, sink.Commit(), ErrSinkClosed)
}

func TestSinkReplacesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))

	sink, err := OpenSink(path)
	require.NoError(t, err)
	_, err = sink.WriteString("new")
	require.NoError(t, err)
	require.NoError(t, sink.Commit())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestSinkAbort(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plot.png")

	sink, err := OpenSink(path)
	require.NoError(t, err)
	_, err = sink.WriteString("partial")
	require.NoError(t, err)

	sink.Abort()
	sink.Abort()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.ErrorIs(t, sink.Commit(), ErrSinkClosed)
}

func TestSinkMissingDirectory(t *testing.T) {
	_, err := OpenSink(filepath.Join(t.TempDir(), "nope", "plot.png"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
