package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilters(t *testing.T) {
	files := Files("/src/a.vira", "/src/lib/../b.vira")
	assert.True(t, files("/src/a.vira"))
	assert.True(t, files("/src/b.vira"))
	assert.False(t, files("/src/c.vira"))

	ext := Ext(".vira")
	assert.True(t, ext("main.vira"))
	assert.False(t, ext("main.vir"))
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "main.vira")

	w, err := New([]string{dir}, Ext(".vira"))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan string, 16)
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func(path string) {
			changed <- path
		})
	}()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("skip"), 0o644))
	require.NoError(t, os.WriteFile(target, []byte("write 1\n"), 0o644))

	select {
	case path := <-changed:
		assert.Equal(t, target, path)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for a change")
	}

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestNewMissingDirectory(t *testing.T) {
	_, err := New([]string{filepath.Join(t.TempDir(), "missing")}, Ext(".vira"))
	assert.Error(t, err)
}

func TestRunReportsLastWrite(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "main.vira")

	w, err := New([]string{dir}, Ext(".vira"))
	require.NoError(t, err)
	w.Delay = 200 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	contents := make(chan string, 16)
	go func() {
		_ = w.Run(ctx, func(path string) {
			buf, err := os.ReadFile(path)
			if err == nil {
				contents <- string(buf)
			}
		})
	}()

	f, err := os.Create(target)
	require.NoError(t, err)
	defer f.Close()

	_, err = f.WriteString("let x = 1\n")
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)

	_, err = f.WriteString("let y = )\n")
	require.NoError(t, err)

	select {
	case content := <-contents:
		assert.Equal(t, "let x = 1\nlet y = )\n", content)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for a change")
	}

	// any later report carries the same content
	timeout := time.After(3 * w.Delay)
	for {
		select {
		case content := <-contents:
			assert.Equal(t, "let x = 1\nlet y = )\n", content)
		case <-timeout:
			return
		}
	}
}
