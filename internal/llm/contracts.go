package llm

import "context"

// Completer is the completion-service interface the pipeline depends on.
// Implementations return the raw message content of the completion; callers
// own fence-stripping, sanitizing, and schema validation.
type Completer interface {
	// CompleteText sends a system+user prompt pair and requests JSON-only output.
	CompleteText(ctx context.Context, system, user string) (string, error)
	// CompleteVision sends a single user message holding the prompt plus the
	// base64-embedded image. The returned text may be wrapped in Markdown fences.
	CompleteVision(ctx context.Context, prompt string, imageBytes []byte, mimeType string) (string, error)
}
