package compiler

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const conformingDocument = `<!DOCTYPE html>
<html>
<head><title>v</title><style>body{margin:0}</style></head>
<body>
<canvas id="animationCanvas" width="800" height="450"></canvas>
<div class="controls"><button onclick="playAnimation()">Play</button></div>
<script>
var isPlaying = false, speed = 1, currentFrame = 0, totalFrames = 120;
function stepForward() { currentFrame++; }
function stepBackward() { currentFrame--; }
function resetAnimation() { currentFrame = 0; }
function playAnimation() { isPlaying = true; }
window.addEventListener("message", function (e) {
  if (e.data.type === "stepForward") stepForward();
  if (e.data.type === "stepBackward") stepBackward();
});
</script>
</body>
</html>`

func TestStripMarkdownFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no fences", "<!DOCTYPE html><html></html>", "<!DOCTYPE html><html></html>"},
		{"plain fences", "```\n<html></html>\n```", "<html></html>"},
		{"language tag", "```html\n<html></html>\n```", "<html></html>"},
		{"leading whitespace", "  \n```html\n<html></html>\n```  ", "<html></html>"},
		{"empty fenced block", "```html\n```", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StripMarkdownFences(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, StripMarkdownFences(got), "stripping must be idempotent")
		})
	}
}

func TestIsLikelyCompleteHTML(t *testing.T) {
	assert.True(t, IsLikelyCompleteHTML(conformingDocument))
	assert.True(t, IsLikelyCompleteHTML(strings.ToUpper(conformingDocument)), "matching is case-insensitive")

	tests := []struct {
		name   string
		remove string
	}{
		{"missing doctype", "<!DOCTYPE html>"},
		{"missing head close", "</head>"},
		{"missing body close", "</body>"},
		{"missing html close", "</html>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mutated := strings.Replace(conformingDocument, tt.remove, "", 1)
			assert.False(t, IsLikelyCompleteHTML(mutated))
		})
	}
}

func TestValidateDocumentContract(t *testing.T) {
	t.Run("conforming document has no warnings", func(t *testing.T) {
		assert.Empty(t, ValidateDocumentContract(conformingDocument))
	})

	t.Run("missing canvas", func(t *testing.T) {
		mutated := strings.Replace(conformingDocument, `id="animationCanvas"`, `id="other"`, 1)
		warnings := ValidateDocumentContract(mutated)
		assert.Contains(t, strings.Join(warnings, "\n"), "no canvas")
	})

	t.Run("duplicate canvas", func(t *testing.T) {
		dup := strings.Replace(conformingDocument, "</body>",
			`<canvas id="animationCanvas"></canvas></body>`, 1)
		warnings := ValidateDocumentContract(dup)
		assert.Contains(t, strings.Join(warnings, "\n"), "expected exactly one")
	})

	t.Run("missing entry point", func(t *testing.T) {
		mutated := strings.Replace(conformingDocument, "function resetAnimation()", "function resetIt()", 1)
		warnings := ValidateDocumentContract(mutated)
		assert.Contains(t, strings.Join(warnings, "\n"), `"resetAnimation"`)
	})

	t.Run("window assignment style counts as entry point", func(t *testing.T) {
		mutated := strings.Replace(conformingDocument,
			"function resetAnimation() { currentFrame = 0; }",
			"window.resetAnimation = function () { currentFrame = 0; };", 1)
		assert.Empty(t, ValidateDocumentContract(mutated))
	})

	t.Run("missing message listener", func(t *testing.T) {
		mutated := strings.Replace(conformingDocument, `addEventListener("message"`, `addEventListener("keydown"`, 1)
		warnings := ValidateDocumentContract(mutated)
		assert.Contains(t, strings.Join(warnings, "\n"), "message listener")
	})

	t.Run("single-quoted listener registration", func(t *testing.T) {
		mutated := strings.Replace(conformingDocument, `addEventListener("message"`, `addEventListener('message'`, 1)
		assert.Empty(t, ValidateDocumentContract(mutated))
	})
}
