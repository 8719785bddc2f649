package llm

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"maps"
	"strings"
)

// StripCodeFences removes a Markdown code-fence wrapper (```json ... ```)
// from a completion response, if present. Vision responses in particular come
// back fenced despite JSON-only instructions.
func StripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	// drop a language tag on the opening fence ("json", "JSON", ...)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		first := strings.TrimSpace(s[:i])
		if len(first) <= 10 && !strings.ContainsAny(first, "{}[]") {
			s = s[i+1:]
		}
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

var sectionKeys = map[string]struct{}{
	"storeMetadata": {}, "balances": {}, "salesSummary": {}, "fuel": {},
	"insideSales": {}, "tenders": {}, "safeActivity": {},
	"departmentSales": {}, "itemSales": {}, "exceptions": {},
}

// NormalizeAndSanitizeJSON makes a completion response acceptable to the strict
// schema without touching its substance:
//   - drops null-valued sections and unknown top-level keys
//     (including rawText/extractionMethod, which the pipeline stamps itself)
//   - clamps section confidences into [0,1], defaulting missing ones to 0.5
//
// Returns the cleaned document plus the list of keys it dropped.
func NormalizeAndSanitizeJSON(raw []byte, logger *slog.Logger) ([]byte, []string, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, nil, fmt.Errorf("sanitize: decode: %w", err)
	}

	var dropped []string
	for k, v := range maps.Clone(m) {
		if _, known := sectionKeys[k]; !known {
			delete(m, k)
			dropped = append(dropped, k+"(unknown)")
			continue
		}
		if v == nil {
			delete(m, k)
			dropped = append(dropped, k+"(null)")
		}
	}

	for k, v := range m {
		sec, ok := v.(map[string]any)
		if !ok {
			continue
		}
		switch c := sec["confidence"].(type) {
		case float64:
			if c < 0 {
				sec["confidence"] = 0.0
			} else if c > 1 {
				sec["confidence"] = 1.0
			}
		case nil:
			sec["confidence"] = 0.5
			dropped = append(dropped, k+".confidence(defaulted)")
		}
	}

	out, err := json.Marshal(m)
	if err != nil {
		return nil, dropped, fmt.Errorf("sanitize: encode: %w", err)
	}
	if len(dropped) > 0 {
		logger.Warn("llm.sanitize.applied", "dropped", dropped)
	}
	return out, dropped, nil
}
