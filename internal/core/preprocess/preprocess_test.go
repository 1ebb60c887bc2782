package preprocess

import (
	"bytes"
	"image"
	"image/color"
	_ "image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testImage(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestForOCR(t *testing.T) {
	processed, img, err := ForOCR(testImage(t, 200, 300))
	require.NoError(t, err)
	require.NotNil(t, img)
	assert.NotEmpty(t, processed)

	// small images keep their dimensions
	bounds := img.Bounds()
	assert.Equal(t, 200, bounds.Dx())
	assert.Equal(t, 300, bounds.Dy())

	// output is a JPEG stream
	_, format, err := image.DecodeConfig(bytes.NewReader(processed))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
}

func TestForOCR_InvalidData(t *testing.T) {
	_, _, err := ForOCR([]byte("not an image"))
	assert.Error(t, err)
}
