package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/robfig/cron/v3"

	"github.com/egatdev/receipt-ocr-be/internal/core/export"
	"github.com/egatdev/receipt-ocr-be/internal/core/extract"
	"github.com/egatdev/receipt-ocr-be/internal/core/jobs"
	"github.com/egatdev/receipt-ocr-be/internal/core/ocr"
	"github.com/egatdev/receipt-ocr-be/internal/modules/receipts/handlers"
	"github.com/egatdev/receipt-ocr-be/internal/modules/receipts/repositories"
	"github.com/egatdev/receipt-ocr-be/internal/modules/receipts/services"
	"github.com/egatdev/receipt-ocr-be/internal/shared/config"
	"github.com/egatdev/receipt-ocr-be/internal/shared/database"
	"github.com/egatdev/receipt-ocr-be/internal/shared/utils"
)

func main() {
	utils.InitLogger()

	cfg := config.LoadConfig()
	log.Printf("🚀 Starting receipt-ocr-api on port %s", cfg.Port)

	db := database.NewDB(cfg.DatabaseURL)
	defer db.Close()

	// OCR provider selection
	ocrService := ocr.NewService(buildOCRProvider(cfg))
	log.Printf("🔍 OCR provider: %s", ocrService.GetProviderName())

	// Repositories
	receiptRepo := repositories.NewReceiptRepo(db.GORM)
	masterDataRepo := repositories.NewMasterDataRepo(db.GORM)

	// Services
	annotator := extract.NewBoxAnnotator()
	receiptService := services.NewReceiptService(ocrService, receiptRepo, annotator, cfg.ProcessedDir)

	// Background re-extraction worker
	queue := jobs.NewQueue(db.GORM)
	workerCfg := jobs.DefaultWorkerConfig()
	workerCfg.Queue = "receipts"
	worker := jobs.NewWorker(queue, workerCfg)
	worker.RegisterHandler(services.NewReextractHandler(receiptService, receiptRepo))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := worker.Start(ctx); err != nil {
		log.Fatalf("❌ Failed to start job worker: %v", err)
	}

	// Handlers
	receiptHandler := handlers.NewReceiptHandler(receiptService, receiptRepo, cfg.MaxUploadSizeMB)
	masterDataHandler := handlers.NewMasterDataHandler(masterDataRepo)
	jobHandler := handlers.NewJobHandler(queue)
	exportHandler := handlers.NewExportHandler(receiptRepo, export.NewExcelExporter())

	// Scheduled maintenance: prune old debug images and finished jobs
	scheduler := cron.New()
	scheduler.AddFunc("@hourly", func() {
		pruneDebugImages(cfg.ProcessedDir, time.Duration(cfg.DebugRetainHours)*time.Hour)
		if deleted, err := queue.DeleteOldJobs(context.Background(), 7*24*time.Hour); err == nil && deleted > 0 {
			utils.LogInfo("🧹 Pruned old jobs", map[string]interface{}{"deleted": deleted})
		}
	})
	scheduler.Start()
	defer scheduler.Stop()

	app := fiber.New(fiber.Config{
		AppName:   "Receipt OCR API",
		BodyLimit: (cfg.MaxUploadSizeMB + 1) * 1024 * 1024,
	})

	app.Use(cors.New())

	// Debug annotation images
	app.Static("/processed_uploads", cfg.ProcessedDir)

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":       "ok",
			"service":      "receipt-ocr-api",
			"ocr_provider": ocrService.GetProviderName(),
		})
	})

	// Receipt routes
	app.Post("/api/receipts/process-image", receiptHandler.ProcessReceipt)
	app.Get("/api/receipts", receiptHandler.GetReceipts)
	app.Get("/api/receipts/export", exportHandler.ExportReceipts)
	app.Get("/api/receipts/:id", receiptHandler.GetReceipt)
	app.Put("/api/receipts/:id", receiptHandler.UpdateReceipt)
	app.Delete("/api/receipts/:id", receiptHandler.DeleteReceipt)

	// Master data routes
	app.Get("/api/master-data", masterDataHandler.GetMasterData)
	app.Post("/api/master-data", masterDataHandler.UpsertMasterData)

	// Background job routes
	app.Post("/api/jobs/reextract", jobHandler.EnqueueReextract)
	app.Get("/api/jobs", jobHandler.ListJobs)
	app.Get("/api/jobs/:id", jobHandler.GetJob)

	// Graceful shutdown
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		log.Println("🛑 Shutting down...")
		cancel()
		worker.Stop()
		app.Shutdown()
	}()

	log.Printf("✅ receipt-ocr-api running at :%s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Server stopped: %v", err)
	}
}

// buildOCRProvider picks the OCR engine from config
func buildOCRProvider(cfg *config.Config) ocr.Provider {
	switch cfg.OCRProvider {
	case "gosseract":
		return ocr.NewGosseractProvider(cfg.OCRLanguages)
	case "ocrspace":
		return ocr.NewOCRSpaceProvider(cfg.OCRSpaceAPIKey)
	default:
		return ocr.NewTesseractProvider(cfg.TesseractPath, cfg.OCRLanguages)
	}
}

// pruneDebugImages removes debug annotation images past their retention
func pruneDebugImages(dir string, retain time.Duration) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	cutoff := time.Now().Add(-retain)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(dir, entry.Name())); err == nil {
			removed++
		}
	}
	if removed > 0 {
		utils.LogInfo("🧹 Pruned debug images", map[string]interface{}{"removed": removed})
	}
}
