package cli

import (
	"os"
	"path/filepath"
)

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile         string
	TargetLanguage  string
	SourceLanguage  string
	Strategy        string
	BatchFile       string
	JSONOutput      bool
	ListModels      bool
	ArchiveGlossary bool
	Verbose         bool

	// Glossary flags
	GlossaryPath string
	NoGlossary   bool
	NoSave       bool

	// Model flags
	Provider    string
	Model       string
	Temperature float64
	MaxTokens   int
}

// DefaultGlossaryPath returns the default glossary file location
func DefaultGlossaryPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "state", "lingo", "glossary.json")
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		TargetLanguage: "English",
		Provider:       "gemini",
		Temperature:    0.3,
		MaxTokens:      1024,
		GlossaryPath:   DefaultGlossaryPath(),
	}
}
