package views

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/santequera1/taskAppDTGrowthPartners/internal/images"
	"github.com/santequera1/taskAppDTGrowthPartners/internal/models"
)

func writeTestPNG(t *testing.T, dir string) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 40, 30))
	for x := 0; x < 40; x++ {
		for y := 0; y < 30; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 6), G: uint8(y * 8), B: 120, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	path := filepath.Join(dir, "captura.png")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

func newTestForm(t *testing.T) *TaskFormView {
	t.Helper()
	bv, co := newTestBoard(t)
	blobs, err := images.NewBlobStore(t.TempDir())
	require.NoError(t, err)
	return NewTaskFormView(context.Background(), co, bv.team, nil, blobs)
}

func TestFormAttachImage(t *testing.T) {
	v := newTestForm(t)
	path := writeTestPNG(t, t.TempDir())

	require.True(t, v.attachImage(path))
	require.Len(t, v.attached, 1)
	assert.True(t, strings.HasPrefix(v.attached[0], "data:image/jpeg"))
	assert.Empty(t, v.imgErr)
}

func TestFormAttachRejectsUnreadablePath(t *testing.T) {
	v := newTestForm(t)

	assert.False(t, v.attachImage(filepath.Join(t.TempDir(), "no-existe.png")))
	assert.Empty(t, v.attached)
	assert.NotEmpty(t, v.imgErr)
}

func TestFormAttachRejectsNonImage(t *testing.T) {
	v := newTestForm(t)
	path := filepath.Join(t.TempDir(), "notas.txt")
	require.NoError(t, os.WriteFile(path, []byte("esto no es una imagen"), 0o644))

	assert.False(t, v.attachImage(path))
	assert.Empty(t, v.attached)
	assert.NotEmpty(t, v.imgErr)
}

func TestFormAttachCeilingShortCircuits(t *testing.T) {
	v := newTestForm(t)
	path := writeTestPNG(t, t.TempDir())

	for i := 0; i < models.MaxTaskImages; i++ {
		require.True(t, v.attachImage(path))
	}
	require.Len(t, v.attached, models.MaxTaskImages)

	// The sixth attachment fails before any file read or encode work
	assert.False(t, v.attachImage(filepath.Join(t.TempDir(), "no-se-lee.png")))
	assert.Len(t, v.attached, models.MaxTaskImages)
	assert.NotEmpty(t, v.imgErr)
}
