package learngl

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReloaderReportsWrites(t *testing.T) {
	dir := t.TempDir()
	watched := filepath.Join(dir, "fragment.frag")
	other := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(watched, []byte(testFragment), 0o644))

	r, err := NewReloader(nil, watched)
	require.NoError(t, err)
	defer r.Close()

	assert.False(t, r.Changed())

	// Files outside the watch list are ignored.
	require.NoError(t, os.WriteFile(other, []byte("x"), 0o644))
	time.Sleep(100 * time.Millisecond)
	assert.False(t, r.Changed())

	require.NoError(t, os.WriteFile(watched, []byte(testFragment+"\n"), 0o644))
	assert.Eventually(t, r.Changed, 2*time.Second, 10*time.Millisecond)
}

func TestReloaderMissingDirectory(t *testing.T) {
	_, err := NewReloader(nil, filepath.Join(t.TempDir(), "nope", "vertex.vert"))
	assert.Error(t, err)
}

func TestReloaderCloseTwice(t *testing.T) {
	r, err := NewReloader(nil, filepath.Join(t.TempDir(), "vertex.vert"))
	require.NoError(t, err)
	require.NoError(t, r.Close())
	assert.NoError(t, r.Close())
}
