package interpret

import (
	"encoding/json"
	"strings"

	"codeberg.org/snonux/lingo/internal/provider"
	"codeberg.org/snonux/lingo/internal/result"
)

// payload mirrors the translate_text fields when the model emits them as a
// JSON block inside free text instead of a function call
type payload struct {
	Text           string  `json:"text"`
	SourceLang     string  `json:"sourceLang"`
	TargetLang     string  `json:"targetLang"`
	TranslatedText string  `json:"translatedText"`
	Confidence     float64 `json:"confidence"`
	CulturalNotes  string  `json:"culturalNotes"`
}

// Interpreter extracts a translation result from a raw model response. The
// model is not contractually guaranteed to honor the structured-output
// schema, so extraction degrades: function-call payload, then the first
// balanced JSON span in the free text, then raw-text passthrough.
type Interpreter struct{}

// New creates a new interpreter
func New() *Interpreter {
	return &Interpreter{}
}

// Interpret maps a model response onto the canonical result shape.
// expectStructured says whether the request attached the translate_text
// schema: when it did and no structured payload could be recovered, the raw
// passthrough is a partial success; when it did not, raw text is exactly
// what the prompt asked for and counts as success.
func (in *Interpreter) Interpret(resp *provider.Response, targetLanguage, sourceLanguage string, expectStructured bool) result.TranslationResult {
	if r, ok := in.fromCall(resp.Call, targetLanguage); ok {
		return r
	}

	raw := strings.TrimSpace(resp.Text)

	span, found := extractBalancedSpan(raw)
	if found {
		if r, ok := in.fromSpan(span, targetLanguage, sourceLanguage); ok {
			return r
		}
		// a JSON-looking span that does not parse is a degraded response
		return in.passthrough(raw, targetLanguage, sourceLanguage, result.StatusPartialSuccess,
			"structured parsing failed: response contained a malformed JSON block")
	}

	if expectStructured {
		return in.passthrough(raw, targetLanguage, sourceLanguage, result.StatusPartialSuccess,
			"structured parsing failed: no function call or JSON block in response")
	}
	return in.passthrough(raw, targetLanguage, sourceLanguage, result.StatusSuccess, "")
}

// fromCall uses a function-call payload when all required fields are present
// and non-empty
func (in *Interpreter) fromCall(call *provider.StructuredCall, targetLanguage string) (result.TranslationResult, bool) {
	if call == nil {
		return result.TranslationResult{}, false
	}
	sourceLang := argString(call.Args, "sourceLang")
	targetLang := argString(call.Args, "targetLang")
	translated := argString(call.Args, "translatedText")
	if sourceLang == "" || targetLang == "" || translated == "" {
		return result.TranslationResult{}, false
	}
	return result.Normalize(result.TranslationResult{
		SourceLanguage: sourceLang,
		TargetLanguage: targetLang,
		TranslatedText: translated,
		Status:         result.StatusSuccess,
		Confidence:     argFloat(call.Args, "confidence"),
		CulturalNotes:  argString(call.Args, "culturalNotes"),
	}, targetLanguage), true
}

// fromSpan parses a balanced JSON span scraped from free text
func (in *Interpreter) fromSpan(span, targetLanguage, sourceLanguage string) (result.TranslationResult, bool) {
	var p payload
	if err := json.Unmarshal([]byte(span), &p); err != nil {
		return result.TranslationResult{}, false
	}
	if p.TranslatedText == "" {
		return result.TranslationResult{}, false
	}
	if p.SourceLang == "" {
		p.SourceLang = sourceLanguage
	}
	if p.TargetLang == "" {
		p.TargetLang = targetLanguage
	}
	return result.Normalize(result.TranslationResult{
		SourceLanguage: p.SourceLang,
		TargetLanguage: p.TargetLang,
		TranslatedText: p.TranslatedText,
		Status:         result.StatusSuccess,
		Confidence:     p.Confidence,
		CulturalNotes:  p.CulturalNotes,
	}, targetLanguage), true
}

func (in *Interpreter) passthrough(raw, targetLanguage, sourceLanguage string, status result.Status, diagnostic string) result.TranslationResult {
	r := result.TranslationResult{
		SourceLanguage: sourceLanguage,
		TargetLanguage: targetLanguage,
		TranslatedText: raw,
		Status:         status,
		Error:          diagnostic,
	}
	return result.Normalize(r, targetLanguage)
}

// extractBalancedSpan returns the first balanced {...} span in s. Braces
// inside JSON string literals do not count toward the balance.
func extractBalancedSpan(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
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
				return s[start : i+1], true
			}
		}
	}
	return "", false
}

func argString(args map[string]any, key string) string {
	if args == nil {
		return ""
	}
	v, _ := args[key].(string)
	return v
}

func argFloat(args map[string]any, key string) float64 {
	if args == nil {
		return 0
	}
	switch v := args[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return 0
}
