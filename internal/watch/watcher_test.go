package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("requires paths", func(t *testing.T) {
		_, err := New(nil, time.Second)
		assert.Error(t, err)
	})

	t.Run("deduplicates directories", func(t *testing.T) {
		dir := t.TempDir()
		w, err := New([]string{
			filepath.Join(dir, "a.txt"),
			filepath.Join(dir, "b.txt"),
		}, time.Second)
		require.NoError(t, err)
		assert.Len(t, w.files, 2)
		assert.Equal(t, []string{dir}, w.dirs)
	})
}

func TestWatcher_Relevant(t *testing.T) {
	dir := t.TempDir()
	watched := filepath.Join(dir, "a.txt")
	w, err := New([]string{watched}, time.Second)
	require.NoError(t, err)

	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"write", fsnotify.Event{Name: watched, Op: fsnotify.Write}, true},
		{"create", fsnotify.Event{Name: watched, Op: fsnotify.Create}, true},
		{"rename", fsnotify.Event{Name: watched, Op: fsnotify.Rename}, true},
		{"remove", fsnotify.Event{Name: watched, Op: fsnotify.Remove}, true},
		{"chmod", fsnotify.Event{Name: watched, Op: fsnotify.Chmod}, false},
		{"other file", fsnotify.Event{Name: filepath.Join(dir, "b.txt"), Op: fsnotify.Write}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, w.relevant(tt.event))
		})
	}
}

func TestWatcher_RunsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(path, []byte("one"), 0600))

	w, err := New([]string{path}, 10*time.Millisecond)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var runs atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func(context.Context) error {
			runs.Add(1)
			cancel()
			return nil
		})
	}()

	// Keep writing until the watcher has registered and fired.
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()
loop:
	for {
		select {
		case <-ctx.Done():
			break loop
		case <-ticker.C:
			require.NoError(t, os.WriteFile(path, []byte("two"), 0600))
		}
	}

	require.NoError(t, <-done)
	assert.GreaterOrEqual(t, runs.Load(), int32(1))
}

func TestWatcher_StopsOnCancel(t *testing.T) {
	dir := t.TempDir()
	w, err := New([]string{filepath.Join(dir, "a.txt")}, time.Second)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = w.Run(ctx, func(context.Context) error { return nil })
	assert.NoError(t, err)
}
