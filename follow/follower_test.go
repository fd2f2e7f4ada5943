package follow

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/formatkit/placeholder"
)

func writeTemplate(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestNew_MissingFile(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "nope.tmpl"), nil)
	require.Error(t, err)
}

func TestFollower_Render(t *testing.T) {
	path := filepath.Join(t.TempDir(), "greeting.tmpl")
	writeTemplate(t, path, "Hello, %(name)!")

	f, err := New(path, map[string]string{"name": "Alice"})
	require.NoError(t, err)
	assert.Equal(t, path, f.Path())

	out, err := f.Render()
	require.NoError(t, err)
	assert.Equal(t, "Hello, Alice!", out)
}

func TestFollower_Render_CustomEngine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "greeting.tmpl")
	writeTemplate(t, path, "Hello, ${name}!")

	e := placeholder.NewEngineWithSyntax(placeholder.Syntax{
		Escape: '$', Open: '{', Close: '}', Sep: ',',
	})
	f, err := New(path, map[string]string{"name": "Alice"})
	require.NoError(t, err)

	out, err := f.WithEngine(e).Render()
	require.NoError(t, err)
	assert.Equal(t, "Hello, Alice!", out)
}

func TestFollower_Follow(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "greeting.tmpl")
	writeTemplate(t, path, "Hello, %(name)!")

	f, err := New(path, map[string]string{"name": "Alice"})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := f.Follow(ctx)

	// The current content is emitted first.
	select {
	case out := <-ch:
		assert.Equal(t, "Hello, Alice!", out)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for initial render")
	}

	// Give the watcher a moment to arm before modifying the file.
	time.Sleep(100 * time.Millisecond)
	writeTemplate(t, path, "Goodbye, %(name)!")

	// A truncate-then-write save can surface an intermediate render, so
	// wait until the final content comes through.
	deadline := time.After(5 * time.Second)
waitRerender:
	for {
		select {
		case out := <-ch:
			if out == "Goodbye, Alice!" {
				break waitRerender
			}
		case <-deadline:
			t.Fatal("timed out waiting for re-render")
		}
	}

	// Cancelling closes the channel.
	cancel()
	deadline = time.After(5 * time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for channel close")
		}
	}
}
