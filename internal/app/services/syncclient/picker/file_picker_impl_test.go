package picker

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilePicker_PickImage(t *testing.T) {
	dir := t.TempDir()
	imagePath := filepath.Join(dir, "rx-1.JPG")
	require.NoError(t, os.WriteFile(imagePath, []byte{0xff, 0xd8, 0xff}, 0o600))

	t.Run("Returns File URI", func(t *testing.T) {
		uri, canceled, err := NewFilePicker(imagePath).PickImage(context.Background())
		require.NoError(t, err)
		assert.False(t, canceled)
		assert.Equal(t, "file://"+filepath.ToSlash(imagePath), uri)
	})

	t.Run("Empty Path Is Canceled", func(t *testing.T) {
		uri, canceled, err := NewFilePicker("").PickImage(context.Background())
		require.NoError(t, err)
		assert.True(t, canceled)
		assert.Empty(t, uri)
	})

	t.Run("Rejects Non Image", func(t *testing.T) {
		notesPath := filepath.Join(dir, "notes.txt")
		require.NoError(t, os.WriteFile(notesPath, []byte("hello"), 0o600))

		_, _, err := NewFilePicker(notesPath).PickImage(context.Background())
		assert.ErrorIs(t, err, ErrNotAnImage)
	})

	t.Run("Missing File", func(t *testing.T) {
		_, canceled, err := NewFilePicker(filepath.Join(dir, "missing.png")).PickImage(context.Background())
		require.Error(t, err)
		assert.False(t, canceled)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
