package glossary

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileBackend persists the glossary as a nested JSON document:
// phrase -> language -> translation
type FileBackend struct {
	path string
}

// NewFileBackend creates a backend for the JSON file at path
func NewFileBackend(path string) *FileBackend {
	return &FileBackend{path: path}
}

// Load reads and parses the glossary file
func (b *FileBackend) Load() (map[string]map[string]string, error) {
	data, err := os.ReadFile(b.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read glossary file: %w", err)
	}

	var entries map[string]map[string]string
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse glossary file: %w", err)
	}
	return entries, nil
}

// Save writes the glossary file, creating parent directories as needed
func (b *FileBackend) Save(entries map[string]map[string]string) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal glossary: %w", err)
	}

	dir := filepath.Dir(b.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create glossary directory: %w", err)
	}

	if err := os.WriteFile(b.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write glossary file: %w", err)
	}
	return nil
}
