package extract

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
)

// Annotator renders the match anchors onto the processed receipt image so a
// reviewer can see which printed word resolved each field.
type Annotator interface {
	Annotate(img image.Image, matches []Match) ([]byte, error)
}

// BoxAnnotator draws a rectangle around every keyword token that anchored a
// field. Pattern matches carry no geometry and are skipped.
type BoxAnnotator struct {
	Color     color.RGBA
	Thickness int
}

// NewBoxAnnotator returns an annotator drawing green two-pixel boxes
func NewBoxAnnotator() *BoxAnnotator {
	return &BoxAnnotator{
		Color:     color.RGBA{R: 0, G: 200, B: 0, A: 255},
		Thickness: 2,
	}
}

func (a *BoxAnnotator) Annotate(img image.Image, matches []Match) ([]byte, error) {
	bounds := img.Bounds()
	canvas := image.NewRGBA(bounds)
	draw.Draw(canvas, bounds, img, bounds.Min, draw.Src)

	for _, m := range matches {
		if m.Keyword == nil {
			continue
		}
		box := image.Rect(
			m.Keyword.Left,
			m.Keyword.Top,
			m.Keyword.Left+m.Keyword.Width,
			m.Keyword.Top+m.Keyword.Height,
		).Intersect(bounds)
		if box.Empty() {
			continue
		}
		a.drawRect(canvas, box)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, canvas, &jpeg.Options{Quality: 90}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (a *BoxAnnotator) drawRect(canvas *image.RGBA, box image.Rectangle) {
	t := a.Thickness
	if t < 1 {
		t = 1
	}
	for off := 0; off < t; off++ {
		for x := box.Min.X; x < box.Max.X; x++ {
			canvas.SetRGBA(x, box.Min.Y+off, a.Color)
			canvas.SetRGBA(x, box.Max.Y-1-off, a.Color)
		}
		for y := box.Min.Y; y < box.Max.Y; y++ {
			canvas.SetRGBA(box.Min.X+off, y, a.Color)
			canvas.SetRGBA(box.Max.X-1-off, y, a.Color)
		}
	}
}
