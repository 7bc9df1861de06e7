package batch

import (
	"fmt"
	"os"
	"strings"
)

// Entry represents one input line with an optional target language override
type Entry struct {
	Text           string
	TargetLanguage string // empty means use the configured default target
}

// ReadBatchFile reads translation inputs from a file and returns Entry slice
// Supports formats:
// - Text only: "hello world" (translated to the default target language)
// - With target: "hello world = French" (per-line target override)
// Empty lines and lines starting with '#' are skipped.
func ReadBatchFile(filename string) ([]Entry, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	var entries []Entry
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// The separator is the last '=' so text containing '=' still works
		// as long as a target override is present
		if idx := strings.LastIndex(line, "="); idx >= 0 {
			text := strings.TrimSpace(line[:idx])
			target := strings.TrimSpace(line[idx+1:])
			if text != "" && target != "" {
				entries = append(entries, Entry{Text: text, TargetLanguage: target})
				continue
			}
			// Lines like "= French" carry no text; ignore them
			if text == "" {
				continue
			}
		}

		entries = append(entries, Entry{Text: line})
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("no inputs found in batch file: %s", filename)
	}
	return entries, nil
}
