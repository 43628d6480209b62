package config

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// logBuffer collects log output written from the watcher goroutine.
type logBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *logBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *logBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func captureLog(t *testing.T) *logBuffer {
	t.Helper()
	out := &logBuffer{}
	prev := log.Logger
	log.Logger = zerolog.New(out)
	t.Cleanup(func() { log.Logger = prev })
	return out
}

// waitFor receives from w until a published value satisfies match.
func waitFor(t *testing.T, w *Watcher, match func(WindowSettings) bool) WindowSettings {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case s := <-w.Changes():
			if match(s) {
				return s
			}
		case <-deadline:
			t.Fatal("no matching change published")
		}
	}
}

func TestWatcherPublishesChanges(t *testing.T) {
	path := writeFile(t, "settings.json", `{"window": {"res": [800, 600]}}`)

	w, err := Watch(context.Background(), path)
	require.NoError(t, err)
	defer w.Close()

	// Unrelated files in the same directory are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(path), "other.json"), []byte("{}"), 0o644))
	// Invalid content is skipped.
	require.NoError(t, os.WriteFile(path, []byte(`{"window": {"res": [0, 0]}}`), 0o644))
	require.NoError(t, os.WriteFile(path, []byte(`{"window": {"res": [1024, 768], "fullscreen": true}}`), 0o644))

	s := waitFor(t, w, func(s WindowSettings) bool { return s.Width() == 1024 })
	assert.Equal(t, 768.0, s.Height())
	assert.True(t, s.IsFullscreen())
}

func TestWatcherQuietOnWrite(t *testing.T) {
	out := captureLog(t)
	path := filepath.Join(t.TempDir(), "settings.json")
	c := Default(path)
	require.NoError(t, c.Write())

	w, err := Watch(context.Background(), path)
	require.NoError(t, err)
	defer w.Close()

	for range 50 {
		c.ToggleFullscreen()
		require.NoError(t, c.Write())
	}
	c.Window.Res = []float64{777, 555}
	require.NoError(t, c.Write())

	waitFor(t, w, func(s WindowSettings) bool { return s.Width() == 777 })
	require.NoError(t, w.Close())

	assert.NotContains(t, out.String(), "ignoring settings change")
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1, "no temporary files left behind")
	assert.Equal(t, "settings.json", entries[0].Name())
}

func TestWatcherPublishKeepsLatest(t *testing.T) {
	w := &Watcher{changes: make(chan WindowSettings, 1)}
	w.publish(WindowSettings{Res: []float64{1, 1}})
	w.publish(WindowSettings{Res: []float64{2, 2}})

	assert.Equal(t, []float64{2, 2}, (<-w.Changes()).Res)
}

func TestWatcherClose(t *testing.T) {
	path := writeFile(t, "settings.toml", "[window]\nres = [10.0, 10.0]\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w, err := Watch(ctx, path)
	require.NoError(t, err)
	assert.NoError(t, w.Close())
}

func TestWatchMissingDirectory(t *testing.T) {
	_, err := Watch(context.Background(), filepath.Join(t.TempDir(), "nope", "settings.json"))
	assert.Error(t, err)
}
