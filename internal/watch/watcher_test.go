package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu    sync.Mutex
	paths []string
}

func (r *recorder) handle(_ context.Context, path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paths = append(r.paths, path)
	return nil
}

func (r *recorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.paths...)
}

func TestNewRequiresHandler(t *testing.T) {
	_, err := New(t.TempDir(), time.Second, nil)
	assert.Error(t, err)
}

func TestWatcherDebouncesWrites(t *testing.T) {
	dir := t.TempDir()
	rec := &recorder{}

	w, err := New(dir, 150*time.Millisecond, rec.handle)
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	roster := filepath.Join(dir, "roster.xlsx")
	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(roster, []byte{byte(i)}, 0644))
		time.Sleep(20 * time.Millisecond)
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "~$roster.xlsx"), []byte("x"), 0644))

	require.Eventually(t, func() bool {
		return len(rec.snapshot()) == 1
	}, 3*time.Second, 20*time.Millisecond)

	// give a second run the chance to show up
	time.Sleep(300 * time.Millisecond)
	assert.Equal(t, []string{roster}, rec.snapshot())

	stats := w.Stats()
	assert.Equal(t, 1, stats.Runs)
	assert.Equal(t, 0, stats.Failures)
	assert.Equal(t, roster, stats.LastPath)
	assert.GreaterOrEqual(t, stats.Events, 1)
}

func TestWatcherCountsFailures(t *testing.T) {
	dir := t.TempDir()
	failing := func(context.Context, string) error { return os.ErrInvalid }

	w, err := New(dir, 50*time.Millisecond, failing)
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "week.xlsm"), []byte("x"), 0644))

	require.Eventually(t, func() bool {
		return w.Stats().Failures == 1
	}, 3*time.Second, 20*time.Millisecond)
}

func TestWatcherStopsOnContextCancel(t *testing.T) {
	rec := &recorder{}
	w, err := New(t.TempDir(), time.Second, rec.handle)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, w.Start(ctx))
	cancel()

	select {
	case <-w.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
	w.Stop()
}

func TestWatcherStartMissingDir(t *testing.T) {
	rec := &recorder{}
	w, err := New(filepath.Join(t.TempDir(), "missing"), time.Second, rec.handle)
	require.NoError(t, err)
	assert.Error(t, w.Start(context.Background()))

	// the fsnotify watcher is released on failure
	assert.ErrorIs(t, w.watcher.Add(t.TempDir()), fsnotify.ErrClosed)
	w.Stop()
}
