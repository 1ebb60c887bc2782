package ocr

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// TesseractProvider implements OCR by shelling out to the tesseract binary.
// It requests both the plain-text and TSV configs in one invocation; the TSV
// output carries per-word geometry, line/block numbers and confidences, which
// the keyword matcher needs.
type TesseractProvider struct {
	tesseractPath string
	language      string
}

// NewTesseractProvider creates a new tesseract provider.
// language is a tesseract language string, e.g. "eng+tha".
func NewTesseractProvider(tesseractPath, language string) *TesseractProvider {
	if tesseractPath == "" {
		tesseractPath = "tesseract" // assumes tesseract is in PATH
	}
	if language == "" {
		language = "eng+tha"
	}
	return &TesseractProvider{
		tesseractPath: tesseractPath,
		language:      language,
	}
}

// ExtractText extracts text and word tokens from an image using tesseract
func (p *TesseractProvider) ExtractText(ctx context.Context, imageData []byte) (*Result, error) {
	tempDir := os.TempDir()
	id := uuid.New().String()
	tempImagePath := filepath.Join(tempDir, fmt.Sprintf("ocr_image_%s.jpg", id))
	tempOutputPath := filepath.Join(tempDir, fmt.Sprintf("ocr_output_%s", id))

	if err := os.WriteFile(tempImagePath, imageData, 0644); err != nil {
		return nil, fmt.Errorf("failed to write temp image: %w", err)
	}
	defer os.Remove(tempImagePath)

	// tesseract input.jpg output -l eng+tha txt tsv
	cmd := exec.CommandContext(ctx, p.tesseractPath, tempImagePath, tempOutputPath, "-l", p.language, "txt", "tsv")

	output, err := cmd.CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("tesseract command failed: %w, output: %s", err, string(output))
	}

	txtPath := tempOutputPath + ".txt"
	tsvPath := tempOutputPath + ".tsv"
	defer os.Remove(txtPath)
	defer os.Remove(tsvPath)

	textBytes, err := os.ReadFile(txtPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read tesseract text output: %w", err)
	}

	tsvBytes, err := os.ReadFile(tsvPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read tesseract tsv output: %w", err)
	}

	tokens, confidence := ParseTSV(string(tsvBytes))

	return &Result{
		FullText:   strings.TrimSpace(string(textBytes)),
		Tokens:     tokens,
		Confidence: confidence,
	}, nil
}

// GetProviderName returns the name of the provider
func (p *TesseractProvider) GetProviderName() string {
	return "Tesseract OCR"
}
