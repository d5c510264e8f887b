package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"time"

	"github.com/dfrestrepo/guia-notify/internal/common"
	"github.com/dfrestrepo/guia-notify/internal/extract"
	"github.com/dfrestrepo/guia-notify/internal/ocr"
)

// parseguia runs OCR and field extraction on one document and prints the
// result as JSON. No database, no gateway: a dry run for tuning patterns
// against real guide samples.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "parseguia <document-path>")
		os.Exit(2)
	}
	path := os.Args[1]

	cfg := common.LoadConfig()
	source := ocr.NewSource(ocr.Config{
		Pdftotext:     cfg.OCR.Pdftotext,
		Pdftoppm:      cfg.OCR.Pdftoppm,
		Tesseract:     cfg.OCR.Tesseract,
		TesseractLang: cfg.OCR.TesseractLang,
	}, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	start := time.Now()
	res, err := source.Text(ctx, path)
	if err != nil {
		logger.Error("text extraction failed", "path", path, "error", err)
		os.Exit(1)
	}
	logger.Info("text extraction OK",
		"method", res.Method,
		"pages", res.Pages,
		"bytes", len(res.Text),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	extractor := extract.NewExtractor(logger)
	class := extractor.Classify(res.Text)
	rec, err := extractor.Extract(res.Text)
	if err != nil {
		logger.Error("extraction failed", "path", path, "class", string(class), "error", err)
		os.Exit(1)
	}

	out := map[string]any{
		"class":  string(class),
		"record": rec,
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		logger.Error("encode result", "error", err)
		os.Exit(1)
	}
}
