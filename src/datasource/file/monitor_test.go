package file

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileMonitorSeesNewExport(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	monitor, err := NewFileMonitor(dir, "penguins")
	require.NoError(t, err)
	defer monitor.Close()

	events := make(chan string, 16)
	done := make(chan error, 1)
	go func() {
		done <- monitor.Watch(func(path string) { events <- path })
	}()

	// The non-matching file lands first; if the filter leaked, its event
	// would arrive ahead of the matching one.
	writeFile(t, filepath.Join(dir, "notes.txt"), "scratch")
	target := filepath.Join(dir, "penguins_raw.csv")
	writeFile(t, target, rawCSV)

	select {
	case got := <-events:
		assert.Equal(t, target, got)
	case <-time.After(5 * time.Second):
		t.Fatal("no event for the new raw file")
	}

	require.NoError(t, monitor.Close())
	select {
	case err := <-done:
		assert.NoError(t, err, "Watch should return cleanly after Close")
	case <-time.After(5 * time.Second):
		t.Fatal("Watch did not return after Close")
	}
}

func TestFileMonitorMatches(t *testing.T) {
	t.Parallel()

	monitor, err := NewFileMonitor(t.TempDir(), "penguins")
	require.NoError(t, err)
	defer monitor.Close()

	assert.True(t, monitor.matches("/data/penguins_raw.csv"))
	assert.True(t, monitor.matches("/data/penguins.XLSX"), "extension match is case-insensitive")
	assert.False(t, monitor.matches("/data/penguins.txt"))
	assert.False(t, monitor.matches("/data/flights.csv"))
}

func TestFileMonitorFreshDedupes(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	monitor, err := NewFileMonitor(dir, "penguins")
	require.NoError(t, err)
	defer monitor.Close()

	path := filepath.Join(dir, "penguins.csv")
	writeFile(t, path, rawCSV)

	assert.True(t, monitor.fresh(path), "first sighting is fresh")
	assert.False(t, monitor.fresh(path), "an unchanged modtime is stale")
	assert.False(t, monitor.fresh(filepath.Join(dir, "gone.csv")), "unreadable files are never fresh")
}

func TestNewFileMonitorRejectsMissingDir(t *testing.T) {
	t.Parallel()

	_, err := NewFileMonitor(filepath.Join(t.TempDir(), "absent"), "penguins")
	require.Error(t, err)
}
