package debug

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaptureFromPixelsFlips(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	sc := NewScreenshotCapture(dir, "cylinder")
	sc.now = func() time.Time { return time.Date(2024, 5, 6, 7, 8, 9, 10e6, time.UTC) }

	// 2x2, bottom row red, top row blue (GL order: bottom row first)
	pixels := []byte{
		255, 0, 0, 255, 255, 0, 0, 255,
		0, 0, 255, 255, 0, 0, 255, 255,
	}

	path, err := sc.CaptureFromPixels(pixels, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "cylinder_2024-05-06_07-08-09.010.png"), path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)

	assert.Equal(t, color.RGBA{0, 0, 255, 255}, color.RGBAModel.Convert(img.At(0, 0)))
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, color.RGBAModel.Convert(img.At(1, 1)))
}

func TestCaptureFromPixelsSizeMismatch(t *testing.T) {
	sc := NewScreenshotCapture(t.TempDir(), "cylinder")

	_, err := sc.CaptureFromPixels(make([]byte, 10), 2, 2)
	assert.Error(t, err)
}
