// Package ocr supplies raw document text for guide files: pdftotext for
// digital PDFs, pdftoppm+tesseract for scans and label photos. Guides are
// Spanish-language documents, so tesseract defaults to "spa".
package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/dfrestrepo/guia-notify/constants"
)

type Config struct {
	Pdftotext string // binary name or absolute path; if empty -> "pdftotext"
	Pdftoppm  string // binary name or absolute path; if empty -> "pdftoppm"
	Tesseract string // binary name or absolute path; if empty -> "tesseract"

	TesseractLang string // default "spa"
	DPI           int    // rasterization DPI for scanned PDFs, default 300
	MaxPages      int    // 0 = no limit
	TessdataDir   string
}

// Result is the outcome of pulling text out of one guide document.
type Result struct {
	Text     string
	Pages    int
	Format   string // constants.PDF | constants.IMAGE
	Method   string // "pdf-text" | "pdf-ocr" | "image-ocr"
	Duration time.Duration
	Warnings []string
}

// Source reads guide documents into plain text.
type Source struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewSource(cfg Config, logger *slog.Logger) *Source {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftotext == "" {
		cfg.Pdftotext = "pdftotext"
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.TesseractLang == "" {
		cfg.TesseractLang = "spa"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 300
	}
	return &Source{cfg: cfg, runner: execRunner{logger: logger}, logger: logger}
}

// minPDFTextBytes is the threshold below which an extracted PDF text layer
// is treated as a scan and re-run through rasterized OCR.
const minPDFTextBytes = 120

// Text picks a strategy based on file extension.
func (s *Source) Text(ctx context.Context, path string) (Result, error) {
	start := time.Now()
	ext := constants.NormalizeExt(filepath.Ext(path))
	s.logger.Debug("ocr.start", "path", path, "ext", ext)

	switch constants.MapExtToFormat(ext) {
	case constants.PDF:
		res, err := s.extractPDF(ctx, path)
		res.Duration = time.Since(start)
		return res, err
	case constants.IMAGE:
		res, err := s.extractImage(ctx, path)
		res.Duration = time.Since(start)
		return res, err
	default:
		s.logger.Error("ocr.unsupported_extension", "extension", ext)
		return Result{}, fmt.Errorf("unsupported extension: %q", ext)
	}
}

func (s *Source) extractPDF(ctx context.Context, path string) (Result, error) {
	text, pages, warns, err := s.pdfToText(ctx, path)
	if err == nil && len(strings.TrimSpace(text)) >= minPDFTextBytes {
		return Result{Text: text, Pages: pages, Format: constants.PDF, Method: "pdf-text", Warnings: warns}, nil
	}
	if err != nil {
		warns = append(warns, fmt.Sprintf("pdftotext: %v", err))
	} else {
		warns = append(warns, "pdf text layer too thin, falling back to ocr")
	}

	text, pages, ocrWarns, err := s.pdfToOCR(ctx, path)
	warns = append(warns, ocrWarns...)
	if err != nil {
		return Result{Format: constants.PDF, Warnings: warns}, err
	}
	return Result{Text: text, Pages: pages, Format: constants.PDF, Method: "pdf-ocr", Warnings: warns}, nil
}

func (s *Source) extractImage(ctx context.Context, path string) (Result, error) {
	text, warns, err := s.tesseract(ctx, path)
	if err != nil {
		return Result{Format: constants.IMAGE, Warnings: warns}, err
	}
	return Result{Text: text, Pages: 1, Format: constants.IMAGE, Method: "image-ocr", Warnings: warns}, nil
}
