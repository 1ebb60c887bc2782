package ocr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

// OCRSpaceProvider implements OCR using the OCR.space API
type OCRSpaceProvider struct {
	apiKey string
	client *http.Client
}

// NewOCRSpaceProvider creates a new OCR.space provider
func NewOCRSpaceProvider(apiKey string) *OCRSpaceProvider {
	return &OCRSpaceProvider{
		apiKey: apiKey,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// GetProviderName returns the provider name
func (p *OCRSpaceProvider) GetProviderName() string {
	return "OCR.space"
}

// OCR.space API response structure
type ocrSpaceResponse struct {
	ParsedResults []struct {
		TextOverlay struct {
			Lines []struct {
				Words []struct {
					WordText string  `json:"WordText"`
					Left     float64 `json:"Left"`
					Top      float64 `json:"Top"`
					Height   float64 `json:"Height"`
					Width    float64 `json:"Width"`
				} `json:"Words"`
			} `json:"Lines"`
		} `json:"TextOverlay"`
		ParsedText        string `json:"ParsedText"`
		FileParseExitCode int    `json:"FileParseExitCode"`
	} `json:"ParsedResults"`
	OCRExitCode                  int      `json:"OCRExitCode"`
	IsErroredOnProcessing        bool     `json:"IsErroredOnProcessing"`
	ErrorMessage                 []string `json:"ErrorMessage,omitempty"`
	ProcessingTimeInMilliseconds string   `json:"ProcessingTimeInMilliseconds"`
}

// ExtractText extracts text and word tokens from an image using the OCR.space API
func (p *OCRSpaceProvider) ExtractText(ctx context.Context, imageData []byte) (*Result, error) {
	// Create multipart form data
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", "image.jpg")
	if err != nil {
		return nil, fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := part.Write(imageData); err != nil {
		return nil, fmt.Errorf("failed to write image data: %w", err)
	}

	if err := writer.WriteField("apikey", p.apiKey); err != nil {
		return nil, fmt.Errorf("failed to write api key: %w", err)
	}

	// OCR.space has no combined eng+tha mode; tha covers both scripts on
	// Thai receipts well enough for the fallback role this provider plays.
	if err := writer.WriteField("language", "tha"); err != nil {
		return nil, fmt.Errorf("failed to write language: %w", err)
	}

	// Word overlay carries the per-word geometry for the keyword matcher
	if err := writer.WriteField("isOverlayRequired", "true"); err != nil {
		return nil, fmt.Errorf("failed to write overlay flag: %w", err)
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to close writer: %w", err)
	}

	url := "https://api.ocr.space/parse/image"
	req, err := http.NewRequestWithContext(ctx, "POST", url, &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ocrspace request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ocrspace error (status: %d): %s", resp.StatusCode, string(body))
	}

	var ocrResp ocrSpaceResponse
	if err := json.Unmarshal(body, &ocrResp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if ocrResp.IsErroredOnProcessing {
		errMsg := "unknown error"
		if len(ocrResp.ErrorMessage) > 0 {
			errMsg = ocrResp.ErrorMessage[0]
		}
		return nil, fmt.Errorf("ocrspace processing error: %s", errMsg)
	}

	if ocrResp.OCRExitCode != 1 {
		return nil, fmt.Errorf("ocrspace exit code: %d", ocrResp.OCRExitCode)
	}

	if len(ocrResp.ParsedResults) == 0 {
		return &Result{}, nil
	}

	parsed := ocrResp.ParsedResults[0]

	var tokens []Token
	for lineIdx, line := range parsed.TextOverlay.Lines {
		for _, w := range line.Words {
			word := strings.TrimSpace(w.WordText)
			if word == "" {
				continue
			}
			tokens = append(tokens, Token{
				Text:    word,
				Left:    int(w.Left),
				Top:     int(w.Top),
				Width:   int(w.Width),
				Height:  int(w.Height),
				LineNum: lineIdx + 1,
				// OCR.space overlay has no block structure
				BlockNum:   1,
				Confidence: 0.85,
			})
		}
	}

	// OCR.space doesn't report a confidence score, use default
	return &Result{
		FullText:   strings.TrimSpace(parsed.ParsedText),
		Tokens:     tokens,
		Confidence: 0.85,
	}, nil
}
