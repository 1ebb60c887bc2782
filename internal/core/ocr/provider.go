package ocr

import "context"

// Token is a single OCR-recognized word together with its page geometry.
// LineNum and BlockNum follow tesseract's TSV numbering: both restart at 1
// for every page, and LineNum restarts inside each block.
type Token struct {
	Text       string  `json:"text"`
	Left       int     `json:"left"`
	Top        int     `json:"top"`
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	LineNum    int     `json:"line_num"`
	BlockNum   int     `json:"block_num"`
	Confidence float64 `json:"confidence"`
}

// Result contains the whole-page transcription plus the word stream
type Result struct {
	FullText   string  `json:"full_text"`
	Tokens     []Token `json:"tokens"`
	Confidence float64 `json:"confidence"` // mean word confidence (0-1)
}

// Provider interface for OCR engines
type Provider interface {
	// ExtractText runs OCR over image bytes and returns text plus word tokens
	ExtractText(ctx context.Context, imageData []byte) (*Result, error)

	// GetProviderName returns the provider name
	GetProviderName() string
}

// Service wraps the OCR provider
type Service struct {
	provider Provider
}

// NewService creates a new OCR service with the given provider
func NewService(provider Provider) *Service {
	return &Service{provider: provider}
}

// ExtractText extracts text from image using the configured provider
func (s *Service) ExtractText(ctx context.Context, imageData []byte) (*Result, error) {
	return s.provider.ExtractText(ctx, imageData)
}

// GetProviderName returns the name of the current provider
func (s *Service) GetProviderName() string {
	return s.provider.GetProviderName()
}
