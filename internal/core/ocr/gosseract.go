package ocr

import (
	"context"
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// GosseractProvider implements OCR through the gosseract CGo binding,
// avoiding the per-request exec/tempfile round trip of TesseractProvider.
type GosseractProvider struct {
	languages []string
}

// NewGosseractProvider creates a new in-process tesseract provider.
// language is a tesseract language string, e.g. "eng+tha".
func NewGosseractProvider(language string) *GosseractProvider {
	if language == "" {
		language = "eng+tha"
	}
	return &GosseractProvider{languages: strings.Split(language, "+")}
}

// ExtractText extracts text and word tokens from an image
func (p *GosseractProvider) ExtractText(ctx context.Context, imageData []byte) (*Result, error) {
	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(p.languages...); err != nil {
		return nil, fmt.Errorf("failed to set languages: %w", err)
	}
	if err := client.SetImageFromBytes(imageData); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return nil, fmt.Errorf("failed to extract text: %w", err)
	}

	boxes, err := client.GetBoundingBoxesVerbose()
	if err != nil {
		return nil, fmt.Errorf("failed to get word boxes: %w", err)
	}

	tokens := make([]Token, 0, len(boxes))
	var confSum float64
	for _, b := range boxes {
		word := strings.TrimSpace(b.Word)
		if word == "" {
			continue
		}
		tokens = append(tokens, Token{
			Text:       word,
			Left:       b.Box.Min.X,
			Top:        b.Box.Min.Y,
			Width:      b.Box.Dx(),
			Height:     b.Box.Dy(),
			LineNum:    b.LineNum,
			BlockNum:   b.BlockNum,
			Confidence: b.Confidence / 100,
		})
		confSum += b.Confidence
	}

	var confidence float64
	if len(tokens) > 0 {
		confidence = confSum / float64(len(tokens)) / 100
	}

	return &Result{
		FullText:   strings.TrimSpace(text),
		Tokens:     tokens,
		Confidence: confidence,
	}, nil
}

// GetProviderName returns the name of the provider
func (p *GosseractProvider) GetProviderName() string {
	return "Tesseract OCR (gosseract)"
}
