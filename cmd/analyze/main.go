// Command analyze runs the extraction pipeline over a single file and prints
// the structured result as JSON. It talks to OCR and the completion service
// but never to the database, which makes it useful for tuning patterns and
// prompts against sample reports.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/forecourt-labs/shiftscan/constants"
	"github.com/forecourt-labs/shiftscan/internal/common"
	"github.com/forecourt-labs/shiftscan/internal/llm/openai"
	"github.com/forecourt-labs/shiftscan/internal/ocr"
	"github.com/forecourt-labs/shiftscan/internal/pipeline"
)

func main() {
	var (
		path    = flag.String("file", "", "path to a shift report image or PDF")
		pretty  = flag.Bool("pretty", true, "indent the JSON output")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()
	if *path == "" {
		fmt.Fprintln(os.Stderr, "usage: analyze -file <report.jpg|report.pdf>")
		os.Exit(2)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg := common.LoadConfig()
	if cfg.LLM.APIKey == "" {
		fmt.Fprintln(os.Stderr, "ERROR: OPENAI_API_KEY env var is required")
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	content, err := os.ReadFile(*path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "reading %s: %v\n", *path, err)
		os.Exit(1)
	}
	mimeType := mimeFromPath(*path)
	if mimeType == "" {
		fmt.Fprintf(os.Stderr, "unsupported file extension %q\n", filepath.Ext(*path))
		os.Exit(2)
	}

	completer, err := openai.NewClient(openai.FromAppConfig(cfg.LLM), logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "completion client: %v\n", err)
		os.Exit(2)
	}
	recognizer := ocr.NewExtractor(ocr.Config{
		Tesseract:     cfg.OCR.Tesseract,
		TesseractLang: cfg.OCR.TesseractLang,
		TessdataDir:   cfg.OCR.TessdataDir,
		WorkDir:       cfg.OCR.WorkDir,
	}, logger)

	analyzer := pipeline.NewAnalyzer(recognizer, completer, logger)
	result, err := analyzer.Analyze(ctx, content, mimeType)
	if err != nil {
		fmt.Fprintf(os.Stderr, "analyze: %v\n", err)
		os.Exit(1)
	}

	logger.Info("analyze.done",
		"method", result.Method,
		"confidence", result.Extract.ExtractionConfidence,
		"quality_score", result.Quality.Score,
		"recommendation", result.Quality.Recommendation,
	)

	var out []byte
	if *pretty {
		out, err = json.MarshalIndent(result.Extract, "", "  ")
	} else {
		out, err = json.Marshal(result.Extract)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "marshal: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}

func mimeFromPath(path string) string {
	switch constants.NormalizeExt(filepath.Ext(path)) {
	case "pdf":
		return "application/pdf"
	case "jpg", "jpeg":
		return "image/jpeg"
	case "png":
		return "image/png"
	default:
		return ""
	}
}
