package prompt

import (
	"bytes"
	"fmt"
	"text/template"

	"codeberg.org/snonux/lingo/internal/classify"
	"codeberg.org/snonux/lingo/internal/provider"
)

// templateData is the shared render contract for all strategy templates
type templateData struct {
	Text           string
	TargetLanguage string
	SourceLanguage string
}

const minimalTemplate = `Translate the following text to {{.TargetLanguage}}.
{{- if .SourceLanguage}} The source language is {{.SourceLanguage}}.
{{- else}} Detect the source language automatically.
{{- end}} Respond with only the translation, nothing else.

Text: "{{.Text}}"`

const singleExampleTemplate = `Translate the following text to {{.TargetLanguage}}.
{{- if .SourceLanguage}} The source language is {{.SourceLanguage}}.
{{- else}} Detect the source language automatically.
{{- end}} Respond with only the translation, nothing else.

Example:
Text: "Good morning" (English to Spanish)
Translation: Buenos días

Text: "{{.Text}}"`

const multiExampleTemplate = `Translate the following text to {{.TargetLanguage}}.
{{- if .SourceLanguage}} The source language is {{.SourceLanguage}}.
{{- else}} Detect the source language automatically.
{{- end}} Call the translate_text function with the translation. If you cannot call the function, respond with only the translation, nothing else.

Examples:
Text: "Good morning" (English to Spanish)
Translation: Buenos días

Text: "It is raining" (English to French)
Translation: Il pleut

Text: "Danke schön" (German to English)
Translation: Thank you very much

Text: "{{.Text}}"`

const stepwiseReasoningTemplate = `Translate the following text to {{.TargetLanguage}}. Work through these steps before answering:
1. Detect the source language{{if .SourceLanguage}} (the caller says it is {{.SourceLanguage}}){{end}}.
2. Identify idioms, names and culturally bound phrases that must not be translated literally.
3. Produce a draft translation into {{.TargetLanguage}}.
4. Review the draft for grammar, register and natural phrasing.
5. Emit the final translation by calling the translate_text function. If you cannot call the function, respond with only the final translation, nothing else.

Text: "{{.Text}}"`

// Builder renders the chosen strategy's template into a model request.
// Templates are parsed once at construction; a parse failure there is a
// programming error and panics via template.Must.
type Builder struct {
	templates map[classify.Strategy]*template.Template
}

// NewBuilder creates a builder with the built-in strategy templates
func NewBuilder() *Builder {
	parse := func(name, body string) *template.Template {
		return template.Must(template.New(name).Parse(body))
	}
	return &Builder{
		templates: map[classify.Strategy]*template.Template{
			classify.StrategyMinimal:           parse("minimal", minimalTemplate),
			classify.StrategySingleExample:     parse("single-example", singleExampleTemplate),
			classify.StrategyMultiExample:      parse("multi-example", multiExampleTemplate),
			classify.StrategyStepwiseReasoning: parse("stepwise-reasoning", stepwiseReasoningTemplate),
		},
	}
}

// Build renders the strategy template for the given request fields. The
// multi-example and stepwise-reasoning strategies additionally attach the
// translate_text schema; the plain strategies rely on text-only output.
func (b *Builder) Build(strategy classify.Strategy, text, targetLanguage, sourceLanguage string) (provider.Request, error) {
	tpl, ok := b.templates[strategy]
	if !ok {
		return provider.Request{}, fmt.Errorf("no template for strategy: %s", strategy)
	}

	var buf bytes.Buffer
	data := templateData{
		Text:           text,
		TargetLanguage: targetLanguage,
		SourceLanguage: sourceLanguage,
	}
	if err := tpl.Execute(&buf, data); err != nil {
		return provider.Request{}, fmt.Errorf("failed to render %s template: %w", strategy, err)
	}

	req := provider.Request{Prompt: buf.String()}
	if UsesSchema(strategy) {
		req.Schema = TranslationSchema()
	}
	return req, nil
}

// UsesSchema reports whether the strategy attaches the structured-output
// schema to the model request
func UsesSchema(strategy classify.Strategy) bool {
	return strategy == classify.StrategyMultiExample || strategy == classify.StrategyStepwiseReasoning
}
