// Package compiler turns finalized instructions (or a raw prompt) into a
// complete, self-contained HTML document via a one-shot model call, and
// validates the result against the playback host's wire contract.
package compiler

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/c-varun14/Yugantar/pkg/prompt"
)

// requiredMarkers are the structural substrings a complete document must
// contain, matched case-insensitively. Absence of any is a non-fatal
// warning, not a rejection.
var requiredMarkers = []string{
	"<!doctype",
	"<html",
	"</html>",
	"<head",
	"</head>",
	"<body",
	"</body>",
}

// StripMarkdownFences removes a surrounding code fence (triple backticks,
// optionally tagged with a language) from the start and end of model output.
// Idempotent: a second application is a no-op.
func StripMarkdownFences(text string) string {
	s := strings.TrimSpace(text)

	if strings.HasPrefix(s, "```") {
		// Drop the opening fence line, including any language tag.
		if nl := strings.IndexByte(s, '\n'); nl >= 0 {
			s = s[nl+1:]
		} else {
			s = strings.TrimPrefix(s, "```")
		}
	}
	if strings.HasSuffix(strings.TrimSpace(s), "```") {
		s = strings.TrimSpace(s)
		s = strings.TrimSuffix(s, "```")
	}
	return strings.TrimSpace(s)
}

// IsLikelyCompleteHTML reports whether the document contains every required
// structural marker, regardless of attributes or whitespace between tags.
func IsLikelyCompleteHTML(html string) bool {
	return len(missingMarkers(html)) == 0
}

// missingMarkers returns the required structural markers absent from the
// document, lower-case matched.
func missingMarkers(html string) []string {
	lower := strings.ToLower(html)
	var missing []string
	for _, marker := range requiredMarkers {
		if !strings.Contains(lower, marker) {
			missing = append(missing, marker)
		}
	}
	return missing
}

// canvasIDPattern matches the contract canvas id in either attribute order.
var canvasIDPattern = regexp.MustCompile(`(?i)<canvas[^>]*\bid\s*=\s*["']?animationCanvas["']?`)

// ValidateDocumentContract checks the generated document against the fixed
// wire contract: exactly one canvas#animationCanvas, the four global entry
// points, and a message listener. Violations are warnings — the host's
// control relay degrades to silent no-ops on missing entry points, so a
// partially conforming document is still worth rendering.
func ValidateDocumentContract(html string) []string {
	var warnings []string

	switch n := len(canvasIDPattern.FindAllStringIndex(html, -1)); {
	case n == 0:
		warnings = append(warnings, fmt.Sprintf("document has no canvas with id %q", prompt.CanvasID))
	case n > 1:
		warnings = append(warnings, fmt.Sprintf("document has %d canvases with id %q, expected exactly one", n, prompt.CanvasID))
	}

	for _, fn := range prompt.EntryPoints {
		if !hasGlobalFunction(html, fn) {
			warnings = append(warnings, fmt.Sprintf("document does not define entry point %q", fn))
		}
	}

	if !strings.Contains(html, `addEventListener("message"`) &&
		!strings.Contains(html, `addEventListener('message'`) {
		warnings = append(warnings, "document does not register a message listener")
	}

	return warnings
}

// hasGlobalFunction detects either declaration style the models produce:
// `function name(` or `window.name =`.
func hasGlobalFunction(html, name string) bool {
	return strings.Contains(html, "function "+name+"(") ||
		strings.Contains(html, "window."+name+" =") ||
		strings.Contains(html, "window."+name+"=")
}
