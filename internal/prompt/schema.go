package prompt

import "codeberg.org/snonux/lingo/internal/provider"

// TranslateFunctionName is the structured-output function the model is asked
// to answer through
const TranslateFunctionName = "translate_text"

// TranslationSchema returns the translate_text function descriptor. Required
// string fields mirror the canonical result; confidence and culturalNotes are
// optional extras the model may supply.
func TranslationSchema() *provider.FunctionSchema {
	return &provider.FunctionSchema{
		Name:        TranslateFunctionName,
		Description: "Return the translation of the given text as structured fields",
		Properties: map[string]provider.Property{
			"text": {
				Type:        "string",
				Description: "The original input text",
			},
			"sourceLang": {
				Type:        "string",
				Description: "The source language of the input text",
			},
			"targetLang": {
				Type:        "string",
				Description: "The target language of the translation",
			},
			"translatedText": {
				Type:        "string",
				Description: "The translated text",
			},
			"confidence": {
				Type:        "number",
				Description: "Translation confidence between 0 and 1",
			},
			"culturalNotes": {
				Type:        "string",
				Description: "Optional notes on cultural context or ambiguity",
			},
		},
		Required: []string{"text", "sourceLang", "targetLang", "translatedText"},
	}
}
