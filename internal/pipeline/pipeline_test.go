package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"

	"codeberg.org/snonux/lingo/internal/classify"
	"codeberg.org/snonux/lingo/internal/glossary"
	"codeberg.org/snonux/lingo/internal/provider"
	"codeberg.org/snonux/lingo/internal/result"
	"codeberg.org/snonux/lingo/internal/testutil"
)

func newTestStore(backend *testutil.MockBackend) *glossary.Store {
	if backend == nil {
		backend = &testutil.MockBackend{}
	}
	return glossary.NewStore(backend)
}

func TestTranslate_GlossaryHit(t *testing.T) {
	invoker := &testutil.MockInvoker{}
	p := New(newTestStore(nil), nil, invoker, Options{})

	r := p.Translate(context.Background(), Request{Text: "hello", TargetLanguage: "Spanish"})

	if r.TranslatedText != "hola" {
		t.Errorf("TranslatedText = %q, want hola", r.TranslatedText)
	}
	if r.Status != result.StatusSuccess {
		t.Errorf("Status = %q, want success", r.Status)
	}
	if r.Confidence != 1.0 {
		t.Errorf("Confidence = %f, want 1.0", r.Confidence)
	}
	if r.CulturalNotes != glossary.NoteGlossaryRetrieved {
		t.Errorf("CulturalNotes = %q, want the glossary retrieval marker", r.CulturalNotes)
	}
	// retrieval satisfied the request: the model must not be invoked
	if len(invoker.Calls) != 0 {
		t.Errorf("Model invoked %d times for a glossary hit", len(invoker.Calls))
	}
}

func TestTranslate_CompositionalHit(t *testing.T) {
	invoker := &testutil.MockInvoker{}
	p := New(newTestStore(nil), nil, invoker, Options{})

	r := p.Translate(context.Background(), Request{Text: "hello goodbye", TargetLanguage: "French"})

	if r.TranslatedText != "bonjour au revoir" {
		t.Errorf("TranslatedText = %q, want 'bonjour au revoir'", r.TranslatedText)
	}
	if r.Status != result.StatusSuccess {
		t.Errorf("Status = %q, want success", r.Status)
	}
	if r.Confidence != 0.9 {
		t.Errorf("Confidence = %f, want 0.9", r.Confidence)
	}
	if r.CulturalNotes != glossary.NoteTokenComposed {
		t.Errorf("CulturalNotes = %q, want the composition marker", r.CulturalNotes)
	}
	if len(invoker.Calls) != 0 {
		t.Errorf("Model invoked %d times for a compositional hit", len(invoker.Calls))
	}
}

// Unknown short text misses the glossary, gets the minimal strategy and the
// raw model text becomes the translation.
func TestTranslate_PlainTextFallback(t *testing.T) {
	invoker := &testutil.MockInvoker{
		Response: &provider.Response{Text: "plugh xyzzy"},
	}
	p := New(newTestStore(nil), nil, invoker, Options{})

	r := p.Translate(context.Background(), Request{Text: "xyzzy plugh", TargetLanguage: "French"})

	if r.TranslatedText != "plugh xyzzy" {
		t.Errorf("TranslatedText = %q, want 'plugh xyzzy'", r.TranslatedText)
	}
	if r.Status != result.StatusSuccess {
		t.Errorf("Status = %q, want success", r.Status)
	}
	if len(invoker.Calls) != 1 {
		t.Fatalf("Model invoked %d times, want 1", len(invoker.Calls))
	}
	// two plain words: minimal strategy, no schema attached
	if invoker.Calls[0].Schema != nil {
		t.Error("Minimal strategy must not attach the structured-output schema")
	}
	if !strings.Contains(invoker.Calls[0].Prompt, `"xyzzy plugh"`) {
		t.Error("Prompt does not embed the quoted input text")
	}
}

func TestTranslate_StructuredResponse(t *testing.T) {
	invoker := &testutil.MockInvoker{
		Response: testutil.StructuredTranslationResponse(
			"a long and winding sentence", "English", "Spanish", "una frase larga y sinuosa", 0.85),
	}
	p := New(newTestStore(nil), nil, invoker, Options{})

	text := strings.TrimSpace(strings.Repeat("long winding sentence ", 7))
	r := p.Translate(context.Background(), Request{Text: text, TargetLanguage: "Spanish"})

	if r.Status != result.StatusSuccess {
		t.Errorf("Status = %q, want success", r.Status)
	}
	if r.TranslatedText != "una frase larga y sinuosa" {
		t.Errorf("TranslatedText = %q", r.TranslatedText)
	}
	if r.SourceLanguage != "English" {
		t.Errorf("SourceLanguage = %q, want English", r.SourceLanguage)
	}
	if r.Confidence != 0.85 {
		t.Errorf("Confidence = %f, want 0.85", r.Confidence)
	}
	// 21 words: multi-example strategy carries the schema
	if len(invoker.Calls) != 1 || invoker.Calls[0].Schema == nil {
		t.Error("Expected one model call with the structured-output schema attached")
	}
}

func TestTranslate_UpstreamFailure(t *testing.T) {
	invoker := &testutil.MockInvoker{Err: errors.New("quota exhausted")}
	p := New(newTestStore(nil), nil, invoker, Options{})

	r := p.Translate(context.Background(), Request{Text: "xyzzy plugh", TargetLanguage: "French"})

	if r.Status != result.StatusError {
		t.Errorf("Status = %q, want error", r.Status)
	}
	if r.TranslatedText != "" {
		t.Errorf("TranslatedText = %q, want empty", r.TranslatedText)
	}
	if !strings.Contains(r.Error, "quota exhausted") {
		t.Errorf("Error = %q, want the upstream diagnostic", r.Error)
	}
}

func TestTranslate_EmptyText(t *testing.T) {
	invoker := &testutil.MockInvoker{}
	p := New(newTestStore(nil), nil, invoker, Options{})

	for _, text := range []string{"", "   "} {
		r := p.Translate(context.Background(), Request{Text: text, TargetLanguage: "French"})
		if r.Status != result.StatusError {
			t.Errorf("Translate(%q) status = %q, want error", text, r.Status)
		}
	}
	if len(invoker.Calls) != 0 {
		t.Error("Model must not be invoked for empty input")
	}
}

func TestTranslate_MissingTargetLanguage(t *testing.T) {
	p := New(newTestStore(nil), nil, &testutil.MockInvoker{}, Options{})

	r := p.Translate(context.Background(), Request{Text: "hello"})
	if r.Status != result.StatusError {
		t.Errorf("Status = %q, want error", r.Status)
	}
}

func TestTranslate_StrategyOverride(t *testing.T) {
	invoker := &testutil.MockInvoker{Response: &provider.Response{Text: "salut"}}
	p := New(newTestStore(nil), nil, invoker, Options{
		StrategyOverride: classify.StrategyStepwiseReasoning,
	})

	p.Translate(context.Background(), Request{Text: "xyzzy", TargetLanguage: "French"})

	if len(invoker.Calls) != 1 {
		t.Fatalf("Model invoked %d times, want 1", len(invoker.Calls))
	}
	if invoker.Calls[0].Schema == nil {
		t.Error("Stepwise-reasoning override must attach the structured-output schema")
	}
	if !strings.Contains(invoker.Calls[0].Prompt, "steps") {
		t.Error("Expected the stepwise prompt to be used")
	}
}

func TestTranslate_BypassGlossary(t *testing.T) {
	invoker := &testutil.MockInvoker{Response: &provider.Response{Text: "hola"}}
	p := New(newTestStore(nil), nil, invoker, Options{BypassGlossary: true})

	p.Translate(context.Background(), Request{Text: "hello", TargetLanguage: "Spanish"})

	if len(invoker.Calls) != 1 {
		t.Errorf("Model invoked %d times, want 1 with glossary bypassed", len(invoker.Calls))
	}
}

func TestTranslate_SavesToGlossary(t *testing.T) {
	backend := &testutil.MockBackend{}
	store := newTestStore(backend)
	invoker := &testutil.MockInvoker{Response: &provider.Response{Text: "plugh xyzzy"}}
	p := New(store, nil, invoker, Options{SaveToGlossary: true})

	p.Translate(context.Background(), Request{Text: "xyzzy plugh", TargetLanguage: "French"})

	if backend.SaveCalls != 1 {
		t.Errorf("SaveCalls = %d, want 1", backend.SaveCalls)
	}

	// the second identical request is now served from the glossary
	r := p.Translate(context.Background(), Request{Text: "xyzzy plugh", TargetLanguage: "French"})
	if r.TranslatedText != "plugh xyzzy" || r.Confidence != 1.0 {
		t.Errorf("Second request = %q (confidence %f), want glossary hit", r.TranslatedText, r.Confidence)
	}
	if len(invoker.Calls) != 1 {
		t.Errorf("Model invoked %d times, want 1", len(invoker.Calls))
	}
}

func TestTranslate_NoSaveOnError(t *testing.T) {
	backend := &testutil.MockBackend{}
	store := newTestStore(backend)
	invoker := &testutil.MockInvoker{Err: errors.New("network down")}
	p := New(store, nil, invoker, Options{SaveToGlossary: true})

	p.Translate(context.Background(), Request{Text: "xyzzy plugh", TargetLanguage: "French"})

	if backend.SaveCalls != 0 {
		t.Errorf("SaveCalls = %d, want 0 after an upstream failure", backend.SaveCalls)
	}
}

func TestTranslate_GenerationOptionsForwarded(t *testing.T) {
	invoker := &testutil.MockInvoker{Response: &provider.Response{Text: "ok"}}
	p := New(newTestStore(nil), nil, invoker, Options{Temperature: 0.7, MaxTokens: 256})

	p.Translate(context.Background(), Request{Text: "xyzzy", TargetLanguage: "French"})

	if len(invoker.Calls) != 1 {
		t.Fatalf("Model invoked %d times, want 1", len(invoker.Calls))
	}
	if invoker.Calls[0].Temperature != 0.7 {
		t.Errorf("Temperature = %f, want 0.7", invoker.Calls[0].Temperature)
	}
	if invoker.Calls[0].MaxTokens != 256 {
		t.Errorf("MaxTokens = %d, want 256", invoker.Calls[0].MaxTokens)
	}
}
