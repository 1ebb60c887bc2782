package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL string
	Port        string
	Env         string

	// OCR engine settings
	OCRProvider    string // "tesseract", "gosseract" or "ocrspace"
	TesseractPath  string
	OCRLanguages   string // tesseract language string, e.g. "eng+tha"
	OCRSpaceAPIKey string

	// Upload / debug image handling
	ProcessedDir     string
	MaxUploadSizeMB  int
	DebugRetainHours int
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ .env file not found, using system environment variables")
	}

	cfg := &Config{
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		Port:           os.Getenv("PORT"),
		Env:            os.Getenv("ENV"),
		OCRProvider:    os.Getenv("OCR_PROVIDER"),
		TesseractPath:  os.Getenv("TESSERACT_PATH"),
		OCRLanguages:   os.Getenv("OCR_LANGUAGES"),
		OCRSpaceAPIKey: os.Getenv("OCRSPACE_API_KEY"),
		ProcessedDir:   os.Getenv("PROCESSED_UPLOAD_DIR"),
	}

	// Default values
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.Env == "" {
		cfg.Env = "development"
	}
	if cfg.OCRProvider == "" {
		cfg.OCRProvider = "tesseract"
	}
	if cfg.TesseractPath == "" {
		cfg.TesseractPath = "tesseract"
	}
	if cfg.OCRLanguages == "" {
		// Thai receipts mix both scripts
		cfg.OCRLanguages = "eng+tha"
	}
	if cfg.ProcessedDir == "" {
		cfg.ProcessedDir = "processed_uploads"
	}

	cfg.MaxUploadSizeMB = envInt("MAX_UPLOAD_SIZE_MB", 20)
	cfg.DebugRetainHours = envInt("DEBUG_IMAGE_RETAIN_HOURS", 72)

	return cfg
}

func envInt(key string, def int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
