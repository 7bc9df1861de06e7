package result

import "time"

// Status describes the outcome of a translation request
type Status string

const (
	// StatusSuccess means the translation completed and the output is trusted
	StatusSuccess Status = "success"
	// StatusPartialSuccess means raw model text was used because structured
	// output was requested but could not be parsed
	StatusPartialSuccess Status = "partial_success"
	// StatusError means the model boundary failed and no translation exists
	StatusError Status = "error"
)

// AutoDetected is the source language recorded when the caller did not supply
// one and the model was asked to detect it
const AutoDetected = "auto-detected"

// TranslationResult is the canonical output shape. Every path through the
// pipeline (glossary hit, structured extraction, raw fallback, upstream
// failure) produces one of these.
type TranslationResult struct {
	SourceLanguage string    `json:"sourceLanguage"`
	TargetLanguage string    `json:"targetLanguage"`
	TranslatedText string    `json:"translatedText"`
	Status         Status    `json:"status"`
	Timestamp      time.Time `json:"timestamp"`
	Confidence     float64   `json:"confidence"`
	CulturalNotes  string    `json:"culturalNotes"`
	Error          string    `json:"error,omitempty"`
}

// Normalize fills every required field with its default: sourceLanguage
// "auto-detected", targetLanguage from the caller, empty translated text,
// status success, confidence 1.0 and a fresh timestamp. Normalizing an
// already-normalized result only refreshes the timestamp.
func Normalize(r TranslationResult, targetLanguage string) TranslationResult {
	if r.SourceLanguage == "" {
		r.SourceLanguage = AutoDetected
	}
	if r.TargetLanguage == "" {
		r.TargetLanguage = targetLanguage
	}
	if r.Status == "" {
		r.Status = StatusSuccess
	}
	// zero value means unset; out-of-range values fall back to the default too
	if r.Confidence <= 0 || r.Confidence > 1 {
		r.Confidence = 1.0
	}
	// status=success implies no error message; status=error requires one
	if r.Status == StatusSuccess {
		r.Error = ""
	}
	if r.Status == StatusError && r.Error == "" {
		r.Error = "unknown error"
	}
	r.Timestamp = time.Now()
	return r
}

// Errorf builds a normalized error result with the given diagnostic message
func Errorf(targetLanguage, sourceLanguage, message string) TranslationResult {
	return Normalize(TranslationResult{
		SourceLanguage: sourceLanguage,
		TargetLanguage: targetLanguage,
		Status:         StatusError,
		Error:          message,
	}, targetLanguage)
}
