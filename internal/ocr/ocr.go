// Package ocr shells out to tesseract to turn uploaded images into raw text.
// PDFs are deliberately not handled here: the pipeline treats them as empty
// text, which routes them to the vision tier.
package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

type Config struct {
	Tesseract     string // binary name or absolute path; if empty -> "tesseract"
	TesseractLang string // default "eng"
	TessdataDir   string
	WorkDir       string // scratch dir for upload bytes; default "./tmp"
}

type Extractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.TesseractLang == "" {
		cfg.TesseractLang = "eng"
	}
	if cfg.WorkDir == "" {
		cfg.WorkDir = "./tmp"
	}
	return &Extractor{cfg: cfg, runner: execRunner{}, logger: logger}
}

// Recognize runs tesseract over the uploaded image bytes and returns
// normalized text. The bytes are spooled to a scratch file because tesseract
// reads from disk; the file is removed before returning.
func (e *Extractor) Recognize(ctx context.Context, imageBytes []byte) (string, error) {
	start := time.Now()

	if err := os.MkdirAll(e.cfg.WorkDir, 0o755); err != nil {
		return "", fmt.Errorf("ocr workdir: %w", err)
	}
	path := filepath.Join(e.cfg.WorkDir, uuid.New().String()+".img")
	if err := os.WriteFile(path, imageBytes, 0o644); err != nil {
		return "", fmt.Errorf("ocr spool: %w", err)
	}
	defer func() {
		if err := os.Remove(path); err != nil {
			e.logger.Warn("ocr scratch file remove failed", "path", path, "error", err)
		}
	}()

	args := []string{path, "stdout", "-l", e.cfg.TesseractLang}
	if e.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", e.cfg.TessdataDir)
	}

	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, args...)
	if err != nil {
		return "", fmt.Errorf("tesseract: %w (stderr: %s)", err, truncate(string(errb), 512))
	}

	txt := Normalize(string(out))
	e.logger.Debug("ocr.recognize.ok",
		"bytes_in", len(imageBytes),
		"text_len", len(txt),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return txt, nil
}
