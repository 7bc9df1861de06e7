package glossary

import (
	"strings"

	"codeberg.org/snonux/lingo/internal/result"
)

// Cultural notes marking which retrieval path produced a result. Callers may
// compare against these to tell glossary-served results from model output.
const (
	NoteGlossaryRetrieved = "Retrieved from glossary"
	NoteTokenComposed     = "Composed word-by-word from glossary entries"
)

// Resolve attempts to satisfy a request from the glossary before any model
// is involved. It tries an exact phrase hit first, then a compositional
// word-by-word reconstruction. The second return value is false on a miss;
// resolution then proceeds to the model path. Resolve never fails: empty
// text is simply a miss.
func (s *Store) Resolve(text, targetLanguage, sourceLanguage string) (result.TranslationResult, bool) {
	normalized := NormalizeKey(text)
	if normalized == "" {
		return result.TranslationResult{}, false
	}

	if translation, ok := s.Lookup(normalized, targetLanguage); ok {
		return result.Normalize(result.TranslationResult{
			SourceLanguage: sourceLanguage,
			TargetLanguage: targetLanguage,
			TranslatedText: translation,
			Status:         result.StatusSuccess,
			Confidence:     1.0,
			CulturalNotes:  NoteGlossaryRetrieved,
		}, targetLanguage), true
	}

	// Compositional fallback: every whitespace token must have its own
	// entry. Punctuation stuck to a token makes that token miss, which
	// correctly falls through to the model path. A composed match never
	// inherits a caller-supplied source language.
	tokens := strings.Fields(normalized)
	if len(tokens) < 2 {
		return result.TranslationResult{}, false
	}
	translated := make([]string, 0, len(tokens))
	for _, token := range tokens {
		translation, ok := s.Lookup(token, targetLanguage)
		if !ok {
			return result.TranslationResult{}, false
		}
		translated = append(translated, translation)
	}

	return result.Normalize(result.TranslationResult{
		SourceLanguage: result.AutoDetected,
		TargetLanguage: targetLanguage,
		TranslatedText: strings.Join(translated, " "),
		Status:         result.StatusSuccess,
		Confidence:     0.9,
		CulturalNotes:  NoteTokenComposed,
	}, targetLanguage), true
}
