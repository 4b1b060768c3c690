package instructions

import (
	"encoding/json"
	"strings"
)

// GuideCallback is invoked at most once, the first time a narrativeGuide
// becomes parseable from the accumulating stream. The guide passed in is
// already normalized.
type GuideCallback func(guide *NarrativeGuide)

// Decoder accumulates text chunks from a live model stream and attempts a
// best-effort extraction of the instruction document after every chunk.
// Mid-stream parse failures are an expected state, not an error: the decoder
// stays silent and keeps accumulating. It is not safe for concurrent use —
// feed it from the single goroutine that owns the stream.
type Decoder struct {
	buf      strings.Builder
	onGuide  GuideCallback
	guide    *NarrativeGuide
	surfaced bool
}

// NewDecoder creates a decoder. onGuide may be nil when the caller only
// needs the final document.
func NewDecoder(onGuide GuideCallback) *Decoder {
	return &Decoder{onGuide: onGuide}
}

// Feed appends a chunk and re-attempts extraction of the instruction object
// from the full buffer. Surfaces the narrative guide through the callback on
// the first successful parse that carries one, even while the outer object's
// later fields (animations, timeline) may still be truncated.
func (d *Decoder) Feed(chunk string) {
	if chunk == "" {
		return
	}
	d.buf.WriteString(chunk)

	if doc, ok := d.tryParse(); ok {
		d.surfaceGuide(doc)
		return
	}
	d.tryEarlyGuide()
}

// tryEarlyGuide extracts the narrativeGuide sub-object before the outer
// document closes, so narration can render while animations and timeline are
// still streaming. Each key occurrence must be followed by a ':' and an
// object-opening '{' — a null value (or stray key text) must not cause the
// next unrelated object to be surfaced as the guide.
func (d *Decoder) tryEarlyGuide() {
	if d.surfaced {
		return
	}
	const key = `"narrativeGuide"`
	text := d.buf.String()
	for idx := strings.Index(text, key); idx >= 0; {
		rest := text[idx+len(key):]
		if span, ok := guideValueSpan(rest); ok {
			var guide NarrativeGuide
			if err := json.Unmarshal([]byte(span), &guide); err == nil {
				d.surfaceGuide(&Document{NarrativeGuide: &guide})
				return
			}
		}
		next := strings.Index(rest, key)
		if next < 0 {
			return
		}
		idx += len(key) + next
	}
}

// guideValueSpan locates the object value bound to a just-matched key: skip
// whitespace, require ':', skip whitespace, require '{', then extract the
// balanced span.
func guideValueSpan(rest string) (string, bool) {
	i := 0
	for i < len(rest) && isJSONSpace(rest[i]) {
		i++
	}
	if i >= len(rest) || rest[i] != ':' {
		return "", false
	}
	i++
	for i < len(rest) && isJSONSpace(rest[i]) {
		i++
	}
	if i >= len(rest) || rest[i] != '{' {
		return "", false
	}
	return extractObjectSpan(rest[i:])
}

func isJSONSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// Guide returns the narrative guide surfaced so far, or nil.
func (d *Decoder) Guide() *NarrativeGuide {
	return d.guide
}

// Len reports the number of bytes accumulated.
func (d *Decoder) Len() int {
	return d.buf.Len()
}

// Finalize runs one last parse attempt over the complete buffer and returns
// the raw accumulated text together with the parsed document, which is nil
// when the stream ended malformed. The raw text is forwarded downstream
// either way so the compiler can attempt a best-effort generation.
func (d *Decoder) Finalize() (raw string, doc *Document) {
	raw = d.buf.String()
	parsed, ok := d.tryParse()
	if !ok {
		return raw, nil
	}
	d.surfaceGuide(parsed)
	return raw, parsed
}

// tryParse extracts the first balanced JSON object span from the buffer and
// unmarshals it. Returns false while no complete object has arrived.
func (d *Decoder) tryParse() (*Document, bool) {
	span, ok := extractObjectSpan(d.buf.String())
	if !ok {
		return nil, false
	}
	var doc Document
	if err := json.Unmarshal([]byte(span), &doc); err != nil {
		return nil, false
	}
	return &doc, true
}

func (d *Decoder) surfaceGuide(doc *Document) {
	if d.surfaced || doc.NarrativeGuide == nil {
		return
	}
	doc.NarrativeGuide.Normalize()
	d.guide = doc.NarrativeGuide
	d.surfaced = true
	if d.onGuide != nil {
		d.onGuide(doc.NarrativeGuide)
	}
}

// extractObjectSpan scans for the first '{' and walks the text with a
// string-aware depth counter until the matching '}'. This replaces the
// regex-match approach: a narration string containing balanced braces cannot
// close the object early, because brace characters inside JSON strings are
// skipped.
func extractObjectSpan(text string) (string, bool) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}
	return "", false
}
