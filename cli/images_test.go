package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"wardrobeapi/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

var (
	pngHeader  = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0x0D, 'I', 'H', 'D', 'R'}
	jpegHeader = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0, 0x10, 'J', 'F', 'I', 'F', 0}
)

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestReadImagesKeepsArgumentOrder(t *testing.T) {
	defer goleak.VerifyNone(t)
	dir := t.TempDir()

	var paths []string
	for i := 0; i < 12; i++ {
		data := append([]byte{}, pngHeader...)
		kind := "png"
		if i%3 == 0 {
			data = append([]byte{}, jpegHeader...)
			kind = "jpg"
		}
		data = append(data, byte(i))
		paths = append(paths, writeFile(t, dir, "item"+strings.Repeat("x", i)+"."+kind, data))
	}

	images, err := ReadImages(context.Background(), paths)
	require.NoError(t, err)
	require.Len(t, images, len(paths))
	for i, image := range images {
		mimeType, data, err := services.ParseDataURL(image)
		require.NoError(t, err)
		assert.Equal(t, byte(i), data[len(data)-1])
		if i%3 == 0 {
			assert.Equal(t, "image/jpeg", mimeType)
		} else {
			assert.Equal(t, "image/png", mimeType)
		}
	}
}

func TestReadImagesRejectsNonImages(t *testing.T) {
	defer goleak.VerifyNone(t)
	dir := t.TempDir()
	paths := []string{
		writeFile(t, dir, "ok.png", pngHeader),
		writeFile(t, dir, "notes.txt", []byte("just some text")),
	}

	_, err := ReadImages(context.Background(), paths)
	assert.ErrorContains(t, err, "notes.txt is not a supported image")
}

func TestReadImagesMissingFile(t *testing.T) {
	defer goleak.VerifyNone(t)
	_, err := ReadImages(context.Background(), []string{filepath.Join(t.TempDir(), "nope.png")})
	assert.ErrorIs(t, err, os.ErrNotExist)
}
