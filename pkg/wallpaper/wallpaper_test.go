package wallpaper

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemProvider(t *testing.T) {
	lookupErr := errors.New("lookup failed")

	tests := []struct {
		name    string
		path    string
		err     error
		want    string
		wantErr error
	}{
		{name: "found", path: "/pictures/bg.png", want: "/pictures/bg.png"},
		{name: "none", path: "", wantErr: ErrNoWallpaper},
		{name: "error", err: lookupErr, wantErr: lookupErr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &SystemProvider{lookup: func(context.Context) (string, error) {
				return tt.path, tt.err
			}}

			got, err := p.Path(context.Background())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOverrideProvider(t *testing.T) {
	override := ""
	p := &OverrideProvider{
		Override: func() string { return override },
		Fallback: Static("/system/bg.heic"),
	}

	got, err := p.Path(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/system/bg.heic", got)

	override = "/custom/bg.png"
	got, err = p.Path(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/custom/bg.png", got)

	_, err = (&OverrideProvider{}).Path(context.Background())
	assert.ErrorIs(t, err, ErrNoWallpaper)
}

func TestStaticEmpty(t *testing.T) {
	_, err := Static("").Path(context.Background())
	assert.ErrorIs(t, err, ErrNoWallpaper)
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "bg.png")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))

	assert.True(t, Exists(file))
	assert.False(t, Exists(dir))
	assert.False(t, Exists(filepath.Join(dir, "missing.png")))
}

func newTestWatcher(t *testing.T) *Watcher {
	t.Helper()
	w, err := NewWatcher(nil)
	require.NoError(t, err)
	w.debounce = 20 * time.Millisecond
	t.Cleanup(func() { _ = w.Close() })
	return w
}

func watchedPath(w *Watcher) string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.target
}

func waitEvent(t *testing.T, w *Watcher) string {
	t.Helper()
	select {
	case path := <-w.events:
		return path
	case <-time.After(3 * time.Second):
		t.Fatal("no wallpaper change reported")
		return ""
	}
}

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "bg.png")
	require.NoError(t, os.WriteFile(target, []byte("one"), 0o600))

	w := newTestWatcher(t)
	require.NoError(t, w.SetTarget(target))

	require.NoError(t, os.WriteFile(target, []byte("two"), 0o600))
	assert.Equal(t, target, waitEvent(t, w))
}

func TestWatcherReportsReplaceByRename(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "bg.png")
	require.NoError(t, os.WriteFile(target, []byte("one"), 0o600))

	w := newTestWatcher(t)
	require.NoError(t, w.SetTarget(target))

	tmp := filepath.Join(dir, "bg.png.tmp")
	require.NoError(t, os.WriteFile(tmp, []byte("two"), 0o600))
	require.NoError(t, os.Rename(tmp, target))

	assert.Equal(t, target, waitEvent(t, w))
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "bg.png")
	require.NoError(t, os.WriteFile(target, []byte("one"), 0o600))

	w := newTestWatcher(t)
	require.NoError(t, w.SetTarget(target))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.png"), []byte("x"), 0o600))

	select {
	case path := <-w.events:
		t.Fatalf("unexpected change for %s", path)
	case <-time.After(150 * time.Millisecond):
	}
}

func TestWatcherDebouncesBursts(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "bg.png")
	require.NoError(t, os.WriteFile(target, []byte("0"), 0o600))

	w := newTestWatcher(t)
	w.debounce = 100 * time.Millisecond
	require.NoError(t, w.SetTarget(target))

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(target, []byte{byte('a' + i)}, 0o600))
	}

	assert.Equal(t, target, waitEvent(t, w))
	select {
	case <-w.events:
		t.Fatal("burst should collapse into one change")
	case <-time.After(250 * time.Millisecond):
	}
}

func TestWatcherRetarget(t *testing.T) {
	first := filepath.Join(t.TempDir(), "a.png")
	second := filepath.Join(t.TempDir(), "b.png")
	require.NoError(t, os.WriteFile(first, []byte("a"), 0o600))
	require.NoError(t, os.WriteFile(second, []byte("b"), 0o600))

	w := newTestWatcher(t)
	require.NoError(t, w.SetTarget(first))
	require.NoError(t, w.SetTarget(second))
	assert.Equal(t, second, watchedPath(w))

	require.NoError(t, os.WriteFile(second, []byte("bb"), 0o600))
	assert.Equal(t, second, waitEvent(t, w))

	require.NoError(t, w.SetTarget(""))
	assert.Empty(t, watchedPath(w))
}

func TestWatcherMissingDirectory(t *testing.T) {
	w := newTestWatcher(t)
	err := w.SetTarget(filepath.Join(t.TempDir(), "nope", "bg.png"))

	assert.Error(t, err)
	assert.Empty(t, watchedPath(w))
}

func TestWatcherRunStopsOnCancel(t *testing.T) {
	w := newTestWatcher(t)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		w.Run(ctx, func(string) {})
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
