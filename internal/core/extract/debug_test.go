package extract

import (
	"bytes"
	"image"
	"image/jpeg"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/egatdev/receipt-ocr-be/internal/core/ocr"
)

func TestBoxAnnotator_Annotate(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 100))
	kw := ocr.Token{Text: "TOTAL", Left: 10, Top: 10, Width: 40, Height: 12}
	matches := []Match{
		{Field: FieldTotalAmount, Source: "keyword", Keyword: &kw},
		{Field: FieldEGATTaxID, Source: "pattern"}, // no geometry, skipped
	}

	data, err := NewBoxAnnotator().Annotate(img, matches)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	out, err := jpeg.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), out.Bounds())

	// box border lands on the keyword token edge; green dominates there
	r, g, b, _ := out.At(10, 10).RGBA()
	assert.Greater(t, g, r)
	assert.Greater(t, g, b)
}

func TestBoxAnnotator_BoxOutsideImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 50, 50))
	kw := ocr.Token{Text: "x", Left: 200, Top: 200, Width: 30, Height: 10}

	data, err := NewBoxAnnotator().Annotate(img, []Match{{Field: FieldPlateNo, Keyword: &kw}})
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
