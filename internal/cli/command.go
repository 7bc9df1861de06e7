package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/lingo/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "lingo [text]",
		Short: "Glossary-backed AI translator",
		Long: `lingo translates text into a target language while minimizing calls
to the model API.

Known phrases are served from a persistent glossary, word-by-word when
possible; everything else goes to OpenAI or Gemini with a prompt style
picked to match the complexity of the input.

Examples:
  lingo --target Spanish "hello"            # Served from the glossary
  lingo --target French "a longer sentence" # Translated by the model
  lingo --batch texts.txt --target German   # Process inputs from file
  lingo --strategy stepwise-reasoning --target Japanese "break a leg"`,
		Args:    cobra.ArbitraryArgs,
		Version: internal.Version,
	}

	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.lingo.yaml)")

	// Local flags
	cmd.Flags().StringVarP(&flags.TargetLanguage, "target", "t", flags.TargetLanguage, "Target language")
	cmd.Flags().StringVarP(&flags.SourceLanguage, "source", "s", "", "Source language (default: auto-detect)")
	cmd.Flags().StringVar(&flags.Strategy, "strategy", "", "Force a prompt strategy: minimal, single-example, multi-example, stepwise-reasoning")
	cmd.Flags().StringVar(&flags.BatchFile, "batch", "", "Process texts from file (one per line, optional 'text = Language')")
	cmd.Flags().BoolVar(&flags.JSONOutput, "json", false, "Print the full result as JSON")
	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List available OpenAI chat models for the current API key")
	cmd.Flags().BoolVar(&flags.ArchiveGlossary, "archive-glossary", false, "Move the glossary file into a timestamped archive and exit")
	cmd.Flags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Print resolution details")

	// Glossary flags
	cmd.Flags().StringVar(&flags.GlossaryPath, "glossary", flags.GlossaryPath, "Glossary file (.json) or database (.db, .sqlite)")
	cmd.Flags().BoolVar(&flags.NoGlossary, "no-glossary", false, "Skip glossary retrieval, always invoke the model")
	cmd.Flags().BoolVar(&flags.NoSave, "no-save", false, "Do not record model translations into the glossary")

	// Model flags
	cmd.Flags().StringVar(&flags.Provider, "provider", flags.Provider, "Model provider: openai or gemini")
	cmd.Flags().StringVar(&flags.Model, "model", "", "Model ID (default depends on provider)")
	cmd.Flags().Float64Var(&flags.Temperature, "temperature", flags.Temperature, "Sampling temperature (0 to 1)")
	cmd.Flags().IntVar(&flags.MaxTokens, "max-tokens", flags.MaxTokens, "Maximum output tokens per model call")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("translate.target_language", cmd.Flags().Lookup("target"))
	viper.BindPFlag("translate.source_language", cmd.Flags().Lookup("source"))
	viper.BindPFlag("translate.strategy", cmd.Flags().Lookup("strategy"))
	viper.BindPFlag("translate.provider", cmd.Flags().Lookup("provider"))
	viper.BindPFlag("translate.model", cmd.Flags().Lookup("model"))
	viper.BindPFlag("translate.temperature", cmd.Flags().Lookup("temperature"))
	viper.BindPFlag("translate.max_tokens", cmd.Flags().Lookup("max-tokens"))
	viper.BindPFlag("glossary.path", cmd.Flags().Lookup("glossary"))
	viper.BindPFlag("glossary.disabled", cmd.Flags().Lookup("no-glossary"))
	viper.BindPFlag("glossary.no_save", cmd.Flags().Lookup("no-save"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".lingo" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".lingo")
	}

	// Environment variables
	viper.SetEnvPrefix("LINGO")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	// First check environment variable
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}

	// Then check config file
	return viper.GetString("openai.api_key")
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}

	return viper.GetString("gemini.api_key")
}
