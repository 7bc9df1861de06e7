package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/lingo/internal/batch"
	"codeberg.org/snonux/lingo/internal/classify"
	"codeberg.org/snonux/lingo/internal/cli"
	"codeberg.org/snonux/lingo/internal/glossary"
	"codeberg.org/snonux/lingo/internal/models"
	"codeberg.org/snonux/lingo/internal/pipeline"
	"codeberg.org/snonux/lingo/internal/provider"
	"codeberg.org/snonux/lingo/internal/result"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	// Handle --archive-glossary flag
	if flags.ArchiveGlossary {
		return glossary.Archive(flags.GlossaryPath)
	}

	// Handle --list-models flag
	if flags.ListModels {
		lister := models.NewLister(cli.GetOpenAIKey())
		return lister.ListAvailableModels()
	}

	if flags.BatchFile == "" && len(args) == 0 {
		return cmd.Help()
	}

	p, err := buildPipeline(flags)
	if err != nil {
		return err
	}

	ctx := context.Background()

	// Handle batch processing
	if flags.BatchFile != "" {
		return runBatch(ctx, p, flags)
	}

	// Single text: all positional args form the input
	text := strings.Join(args, " ")
	res := p.Translate(ctx, pipeline.Request{
		Text:           text,
		TargetLanguage: flags.TargetLanguage,
		SourceLanguage: flags.SourceLanguage,
	})
	if err := printResult(res, flags.JSONOutput); err != nil {
		return err
	}
	if res.Status == result.StatusError {
		os.Exit(1)
	}
	return nil
}

// buildPipeline wires the glossary store, model backend and options from flags
func buildPipeline(flags *cli.Flags) (*pipeline.Pipeline, error) {
	var strategy classify.Strategy
	if flags.Strategy != "" {
		var err error
		strategy, err = classify.ParseStrategy(flags.Strategy)
		if err != nil {
			return nil, err
		}
	}

	invoker, err := provider.NewInvoker(&provider.Config{
		Provider:  flags.Provider,
		Model:     flags.Model,
		OpenAIKey: cli.GetOpenAIKey(),
		GeminiKey: cli.GetGeminiKey(),
	})
	if err != nil {
		return nil, err
	}

	store, err := glossary.Open(flags.GlossaryPath)
	if err != nil {
		return nil, err
	}

	opts := pipeline.Options{
		StrategyOverride: strategy,
		Temperature:      float32(flags.Temperature),
		MaxTokens:        flags.MaxTokens,
		BypassGlossary:   flags.NoGlossary,
		SaveToGlossary:   !flags.NoSave,
		Verbose:          flags.Verbose,
	}
	return pipeline.New(store, nil, invoker, opts), nil
}

func runBatch(ctx context.Context, p *pipeline.Pipeline, flags *cli.Flags) error {
	entries, err := batch.ReadBatchFile(flags.BatchFile)
	if err != nil {
		return err
	}

	translated := 0
	cached := 0
	failed := 0

	for i, entry := range entries {
		target := entry.TargetLanguage
		if target == "" {
			target = flags.TargetLanguage
		}

		fmt.Printf("\nProcessing %d/%d: %s -> %s\n", i+1, len(entries), entry.Text, target)
		res := p.Translate(ctx, pipeline.Request{
			Text:           entry.Text,
			TargetLanguage: target,
			SourceLanguage: flags.SourceLanguage,
		})
		if err := printResult(res, flags.JSONOutput); err != nil {
			return err
		}

		switch {
		case res.Status == result.StatusError:
			failed++
		case servedFromGlossary(res):
			cached++
		default:
			translated++
		}
	}

	fmt.Printf("\n=== Batch Summary ===\n")
	fmt.Printf("Total texts: %d\n", len(entries))
	fmt.Printf("Translated: %d\n", translated)
	fmt.Printf("From glossary: %d\n", cached)
	if failed > 0 {
		fmt.Printf("Failed: %d\n", failed)
	}
	return nil
}

// servedFromGlossary reports whether a result came from the glossary rather
// than a model call, for the batch summary counters
func servedFromGlossary(res result.TranslationResult) bool {
	return res.CulturalNotes == glossary.NoteGlossaryRetrieved ||
		res.CulturalNotes == glossary.NoteTokenComposed
}

func printResult(res result.TranslationResult, asJSON bool) error {
	if asJSON {
		data, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	if res.Status == result.StatusError {
		fmt.Fprintf(os.Stderr, "Error: %s\n", res.Error)
		return nil
	}

	fmt.Println(res.TranslatedText)
	if res.Status == result.StatusPartialSuccess {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", res.Error)
	}
	if res.CulturalNotes != "" {
		fmt.Fprintf(os.Stderr, "Note: %s\n", res.CulturalNotes)
	}
	return nil
}
