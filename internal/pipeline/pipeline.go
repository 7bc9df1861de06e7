package pipeline

import (
	"context"
	"fmt"
	"os"
	"strings"

	"codeberg.org/snonux/lingo/internal"
	"codeberg.org/snonux/lingo/internal/classify"
	"codeberg.org/snonux/lingo/internal/glossary"
	"codeberg.org/snonux/lingo/internal/interpret"
	"codeberg.org/snonux/lingo/internal/prompt"
	"codeberg.org/snonux/lingo/internal/provider"
	"codeberg.org/snonux/lingo/internal/result"
)

// Request describes one translation to resolve. Immutable once constructed.
type Request struct {
	Text           string
	TargetLanguage string
	SourceLanguage string // empty means auto-detect
}

// Options tune how the pipeline resolves requests
type Options struct {
	// StrategyOverride forces a prompt strategy instead of classifying.
	// This is the only way to reach stepwise-reasoning.
	StrategyOverride classify.Strategy
	// Temperature and MaxTokens are passed to the model boundary
	Temperature float32
	MaxTokens   int
	// BypassGlossary skips retrieval and always invokes the model
	BypassGlossary bool
	// SaveToGlossary records successful model translations back into the
	// glossary (save-on-mutation)
	SaveToGlossary bool
	Verbose        bool
}

// Pipeline resolves translation requests: glossary retrieval first, then
// classification, prompt building, model invocation and response
// interpretation. Every path ends in a normalized TranslationResult; the
// pipeline never returns an error for non-empty input.
type Pipeline struct {
	store       *glossary.Store
	classifier  classify.Classifier
	builder     *prompt.Builder
	invoker     provider.Invoker
	interpreter *interpret.Interpreter
	opts        Options
}

// New creates a pipeline. A nil classifier gets the heuristic default.
func New(store *glossary.Store, classifier classify.Classifier, invoker provider.Invoker, opts Options) *Pipeline {
	if classifier == nil {
		classifier = classify.NewHeuristicClassifier()
	}
	return &Pipeline{
		store:       store,
		classifier:  classifier,
		builder:     prompt.NewBuilder(),
		invoker:     invoker,
		interpreter: interpret.New(),
		opts:        opts,
	}
}

// Translate resolves one request. Retrieval always completes before any
// model call; the model is never invoked speculatively.
func (p *Pipeline) Translate(ctx context.Context, req Request) result.TranslationResult {
	if strings.TrimSpace(req.Text) == "" {
		return result.Errorf(req.TargetLanguage, req.SourceLanguage, "input text is empty")
	}
	if req.TargetLanguage == "" {
		return result.Errorf(req.TargetLanguage, req.SourceLanguage, "target language is required")
	}

	id := internal.GenerateRequestID(req.Text)

	if !p.opts.BypassGlossary && p.store != nil {
		if r, hit := p.store.Resolve(req.Text, req.TargetLanguage, req.SourceLanguage); hit {
			p.logf("[%s] Glossary hit for %q (confidence %.1f)\n", id, req.Text, r.Confidence)
			return r
		}
	}

	strategy := p.opts.StrategyOverride
	if strategy == "" {
		strategy = p.classifier.Classify(req.Text)
	}
	p.logf("[%s] Using %s strategy for %q\n", id, strategy, req.Text)

	modelReq, err := p.builder.Build(strategy, req.Text, req.TargetLanguage, req.SourceLanguage)
	if err != nil {
		return result.Errorf(req.TargetLanguage, req.SourceLanguage, fmt.Sprintf("failed to build prompt: %v", err))
	}
	modelReq.Temperature = p.opts.Temperature
	modelReq.MaxTokens = p.opts.MaxTokens

	resp, err := p.invoker.Invoke(ctx, modelReq)
	if err != nil {
		return result.Errorf(req.TargetLanguage, req.SourceLanguage, fmt.Sprintf("model invocation failed: %v", err))
	}

	res := p.interpreter.Interpret(resp, req.TargetLanguage, req.SourceLanguage, prompt.UsesSchema(strategy))

	if p.opts.SaveToGlossary && p.store != nil &&
		res.Status == result.StatusSuccess && res.TranslatedText != "" {
		p.store.Add(req.Text, req.TargetLanguage, res.TranslatedText)
		if err := p.store.Save(); err != nil {
			// not persisted; the result itself is still good
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}

	return res
}

func (p *Pipeline) logf(format string, args ...any) {
	if p.opts.Verbose {
		fmt.Printf(format, args...)
	}
}
