package cli

import (
	"reflect"
	"strings"
	"testing"
)

func TestNewFlags(t *testing.T) {
	flags := NewFlags()

	// Test default values
	tests := []struct {
		name     string
		got      interface{}
		expected interface{}
	}{
		{"TargetLanguage", flags.TargetLanguage, "English"},
		{"Provider", flags.Provider, "gemini"},
		{"Temperature", flags.Temperature, 0.3},
		{"MaxTokens", flags.MaxTokens, 1024},
		{"GlossaryPath", flags.GlossaryPath, DefaultGlossaryPath()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !reflect.DeepEqual(tt.got, tt.expected) {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.expected)
			}
		})
	}

	// Test boolean defaults (should be false)
	boolTests := []struct {
		name  string
		value bool
	}{
		{"JSONOutput", flags.JSONOutput},
		{"ListModels", flags.ListModels},
		{"ArchiveGlossary", flags.ArchiveGlossary},
		{"Verbose", flags.Verbose},
		{"NoGlossary", flags.NoGlossary},
		{"NoSave", flags.NoSave},
	}

	for _, tt := range boolTests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != false {
				t.Errorf("%s = %v, want false", tt.name, tt.value)
			}
		})
	}

	// Test string defaults (should be empty)
	stringTests := []struct {
		name  string
		value string
	}{
		{"CfgFile", flags.CfgFile},
		{"SourceLanguage", flags.SourceLanguage},
		{"Strategy", flags.Strategy},
		{"BatchFile", flags.BatchFile},
		{"Model", flags.Model},
	}

	for _, tt := range stringTests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Errorf("%s = %v, want empty string", tt.name, tt.value)
			}
		})
	}
}

func TestDefaultGlossaryPath(t *testing.T) {
	path := DefaultGlossaryPath()

	if !strings.HasSuffix(path, "glossary.json") {
		t.Errorf("Expected default glossary path to end in glossary.json, got %s", path)
	}
	if !strings.Contains(path, "lingo") {
		t.Errorf("Expected default glossary path to live under a lingo directory, got %s", path)
	}
}
