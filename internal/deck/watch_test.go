package deck

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatch_ReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.md")
	require.NoError(t, os.WriteFile(path, []byte("# One\n"), 0644))

	reloaded := make(chan *Deck, 4)
	w, err := Watch(path, testOptions(), func(d *Deck, err error) {
		if err == nil {
			reloaded <- d
		}
	})
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte("# One\n\n---\n\n# Two\n"), 0644))

	select {
	case d := <-reloaded:
		assert.Equal(t, 2, d.Info.SlideCount)
	case <-time.After(5 * time.Second):
		t.Fatal("deck was not reloaded")
	}
}

func TestWatch_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deck.md")
	require.NoError(t, os.WriteFile(path, []byte("# One\n"), 0644))

	called := make(chan struct{}, 1)
	w, err := Watch(path, testOptions(), func(*Deck, error) { called <- struct{}{} })
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))

	select {
	case <-called:
		t.Fatal("unrelated file triggered a reload")
	case <-time.After(400 * time.Millisecond):
	}
}

func TestWatch_CloseIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.md")
	require.NoError(t, os.WriteFile(path, []byte("# One\n"), 0644))

	w, err := Watch(path, testOptions(), func(*Deck, error) {})
	require.NoError(t, err)
	assert.NoError(t, w.Close())
	assert.NoError(t, w.Close())
}

func TestWatch_MissingDirectory(t *testing.T) {
	_, err := Watch(filepath.Join(t.TempDir(), "nope", "deck.md"), testOptions(), func(*Deck, error) {})
	assert.Error(t, err)
}
