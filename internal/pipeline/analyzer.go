// Package pipeline coordinates one document's journey from upload bytes to a
// validated ShiftReport: OCR acquisition, quality scoring, the deterministic
// parse, and the tiered completion-service fallbacks.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/forecourt-labs/shiftscan/constants"
	"github.com/forecourt-labs/shiftscan/internal/common"
	"github.com/forecourt-labs/shiftscan/internal/extract"
	"github.com/forecourt-labs/shiftscan/internal/llm"
	"github.com/forecourt-labs/shiftscan/internal/parser"
	"github.com/forecourt-labs/shiftscan/internal/quality"
)

// Recognizer is the OCR collaborator: image bytes in, raw text out, may fail.
type Recognizer interface {
	Recognize(ctx context.Context, imageBytes []byte) (string, error)
}

// Result is what Analyze hands back: the validated extract, the tier that
// produced it, and the quality score that drove the routing.
type Result struct {
	Extract *extract.ShiftReport
	Method  extract.Method
	Quality quality.Result
}

type Analyzer struct {
	logger     *slog.Logger
	recognizer Recognizer
	completer  llm.Completer
}

// NewAnalyzer wires the pipeline's collaborators. Both are injected so tests
// can substitute deterministic fakes.
func NewAnalyzer(recognizer Recognizer, completer llm.Completer, logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{
		logger:     logger,
		recognizer: recognizer,
		completer:  completer,
	}
}

// Analyze runs the strict tier procedure for one uploaded document:
//
//  1. acquire raw text (images via OCR; PDFs yield empty text by design,
//     forcing the vision tier — page rasterization is a future extension)
//  2. score the text
//  3. run the deterministic parser unconditionally (cheap; reused if accepted)
//  4. accept deterministic only if BOTH the score recommends it AND the parse
//     confidence clears its own floor
//  5. text-normalization completion tier (failures fall through)
//  6. vision completion tier (failures are fatal — the last resort)
//
// The caller gets either a fully validated extract or an error; there is no
// partial result.
func (a *Analyzer) Analyze(ctx context.Context, fileBytes []byte, mimeType string) (*Result, error) {
	format := constants.MapMIMEToFormat(mimeType)
	if format == "" {
		return nil, common.NewAppError("UNSUPPORTED_TYPE", fmt.Sprintf("unsupported mime type %q", mimeType), common.ErrInvalidInput)
	}

	rawText := a.acquireText(ctx, fileBytes, format)
	score := quality.Score(rawText)
	a.logger.Info("pipeline.scored",
		"format", format,
		"text_len", score.TextLength,
		"score", score.Score,
		"money_patterns", score.MoneyPatternCount,
		"keyword_hits", score.KeywordHits,
		"recommendation", score.Recommendation,
	)

	det := parser.Parse(rawText)

	if score.Recommendation == quality.AcceptDeterministic &&
		det.ExtractionConfidence >= constants.MinDeterministicConfidence {
		out := a.acceptDeterministic(det, rawText)
		if out.kind != outcomeOK {
			return nil, out.err
		}
		return &Result{Extract: out.extract, Method: extract.MethodDeterministic, Quality: score}, nil
	}

	if score.Recommendation == quality.NormalizeText && len(rawText) > constants.MinTextLenForAIText {
		out := a.runTextTier(ctx, rawText)
		switch out.kind {
		case outcomeOK:
			return &Result{Extract: out.extract, Method: extract.MethodAIText, Quality: score}, nil
		case outcomeFatal:
			return nil, out.err
		}
		a.logger.Warn("pipeline.tier.text.fallthrough", "error", out.err)
	}

	out := a.runVisionTier(ctx, fileBytes, mimeType, rawText)
	if out.kind != outcomeOK {
		return nil, out.err
	}
	return &Result{Extract: out.extract, Method: extract.MethodAIVision, Quality: score}, nil
}

// acquireText returns raw recognized text for the document. OCR failures are
// logged and degrade to empty text rather than aborting; the vision tier
// remains as the backstop.
func (a *Analyzer) acquireText(ctx context.Context, fileBytes []byte, format string) string {
	if format != constants.IMAGE {
		return ""
	}
	text, err := a.recognizer.Recognize(ctx, fileBytes)
	if err != nil {
		a.logger.Warn("pipeline.ocr.failed", "error", fmt.Errorf("%w: %v", common.ErrAcquisition, err))
		return ""
	}
	return text
}

func (a *Analyzer) acceptDeterministic(det *extract.ShiftReport, rawText string) tierOutcome {
	det.Stamp(rawText, extract.MethodDeterministic)
	if err := validateExtract(det); err != nil {
		return tierFatal(err)
	}
	a.logger.Info("pipeline.tier.deterministic.accepted", "confidence", det.ExtractionConfidence)
	return tierOK(det)
}

// runTextTier asks the completion service to reconstruct the record from the
// noisy OCR text. Any failure here is retryable: the vision tier follows.
func (a *Analyzer) runTextTier(ctx context.Context, rawText string) tierOutcome {
	content, err := a.completer.CompleteText(ctx, llm.BuildSystemPrompt(), llm.BuildTextUserPrompt(rawText))
	if err != nil {
		return tierRetry(err)
	}
	rep, err := a.decodeCompletion(content, rawText, extract.MethodAIText)
	if err != nil {
		return tierRetry(err)
	}
	a.logger.Info("pipeline.tier.text.accepted", "confidence", rep.ExtractionConfidence)
	return tierOK(rep)
}

// runVisionTier sends the original document bytes to the multimodal endpoint.
// This is the pipeline's last resort: its failures propagate to the caller.
func (a *Analyzer) runVisionTier(ctx context.Context, fileBytes []byte, mimeType, rawText string) tierOutcome {
	content, err := a.completer.CompleteVision(ctx, llm.BuildVisionPrompt(), fileBytes, mimeType)
	if err != nil {
		return tierFatal(fmt.Errorf("vision extraction: %w", err))
	}
	rep, err := a.decodeCompletion(content, rawText, extract.MethodAIVision)
	if err != nil {
		return tierFatal(fmt.Errorf("vision extraction: %w", err))
	}
	a.logger.Info("pipeline.tier.vision.accepted", "confidence", rep.ExtractionConfidence)
	return tierOK(rep)
}

// decodeCompletion turns a completion response into a stamped, validated
// extract: fences stripped, sanitized, schema-checked, then unmarshaled.
func (a *Analyzer) decodeCompletion(content, rawText string, method extract.Method) (*extract.ShiftReport, error) {
	cleaned, _, err := llm.NormalizeAndSanitizeJSON([]byte(llm.StripCodeFences(content)), a.logger)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrCompletion, err)
	}
	if err := llm.ValidateJSONAgainstSchema(llm.BuildShiftReportJSONSchema(), cleaned); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrCompletion, err)
	}
	var rep extract.ShiftReport
	if err := json.Unmarshal(cleaned, &rep); err != nil {
		return nil, fmt.Errorf("%w: unmarshal extract: %v", common.ErrCompletion, err)
	}
	rep.Stamp(rawText, method)
	if err := validateExtract(&rep); err != nil {
		return nil, err
	}
	return &rep, nil
}

// validateExtract is the final contract check on any tier's output.
// Failure here is never recovered from.
func validateExtract(rep *extract.ShiftReport) error {
	b, err := json.Marshal(rep)
	if err != nil {
		return fmt.Errorf("%w: marshal extract: %v", common.ErrValidation, err)
	}
	if err := llm.ValidateJSONAgainstSchema(llm.BuildStoredReportJSONSchema(), b); err != nil {
		return fmt.Errorf("%w: %v", common.ErrValidation, err)
	}
	return nil
}
