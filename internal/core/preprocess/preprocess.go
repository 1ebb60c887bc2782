package preprocess

import (
	"bytes"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// maxDim bounds either image side before OCR; receipt photos straight off a
// phone are far larger than tesseract needs.
const maxDim = 2048

// ForOCR prepares a receipt photo for the OCR engine: decode, grayscale,
// contrast boost and sharpen against uneven receipt lighting, then bound the
// size. Returns the processed JPEG bytes together with the decoded image for
// later debug annotation.
func ForOCR(imageData []byte) ([]byte, image.Image, error) {
	src, err := imaging.Decode(bytes.NewReader(imageData), imaging.AutoOrientation(true))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode image: %w", err)
	}

	img := imaging.Grayscale(src)
	img = imaging.AdjustContrast(img, 30)
	img = imaging.Sharpen(img, 1.5)

	if img.Bounds().Dx() > maxDim || img.Bounds().Dy() > maxDim {
		img = imaging.Fit(img, maxDim, maxDim, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(95)); err != nil {
		return nil, nil, fmt.Errorf("failed to encode processed image: %w", err)
	}

	return buf.Bytes(), img, nil
}
