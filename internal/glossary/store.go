package glossary

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Backend loads and saves the persistent phrase mapping. Implementations:
// FileBackend (JSON document) and SQLiteBackend.
type Backend interface {
	// Load reads the full mapping from durable storage
	Load() (map[string]map[string]string, error)

	// Save writes the full mapping to durable storage
	Save(entries map[string]map[string]string) error
}

// Store holds the in-memory glossary view: normalized phrase -> target
// language -> translation. It is loaded once at construction; a load failure
// is recoverable and falls back to the built-in default set. Writes are
// last-writer-wins with no transactional isolation.
type Store struct {
	mu      sync.RWMutex
	backend Backend
	entries map[string]map[string]string
}

// NewStore creates a store over the given backend. Missing or corrupt
// storage is not an error: the built-in defaults are used instead.
func NewStore(backend Backend) *Store {
	entries, err := backend.Load()
	if err != nil || len(entries) == 0 {
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not load glossary, using defaults: %v\n", err)
		}
		entries = DefaultEntries()
	}
	return &Store{backend: backend, entries: entries}
}

// Open creates a store backed by the file at path. Paths ending in .db or
// .sqlite get the SQLite backend, everything else the JSON file backend.
func Open(path string) (*Store, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite":
		backend, err := NewSQLiteBackend(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open glossary database: %w", err)
		}
		return NewStore(backend), nil
	default:
		return NewStore(NewFileBackend(path)), nil
	}
}

// NormalizeKey maps a phrase onto its glossary key: lowercased with
// surrounding whitespace trimmed
func NormalizeKey(phrase string) string {
	return strings.ToLower(strings.TrimSpace(phrase))
}

// Lookup returns the stored translation of phrase into lang
func (s *Store) Lookup(phrase, lang string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	langs, ok := s.entries[NormalizeKey(phrase)]
	if !ok {
		return "", false
	}
	translation, ok := langs[lang]
	return translation, ok
}

// Add records a translation for phrase into lang, overwriting any previous
// value for the same pair. The change is in-memory until Save.
func (s *Store) Add(phrase, lang, translation string) {
	key := NormalizeKey(phrase)
	if key == "" || lang == "" || translation == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.entries[key] == nil {
		s.entries[key] = make(map[string]string)
	}
	s.entries[key][lang] = translation
}

// Save writes the current mapping to the backend. On failure the entry is
// not persisted and the in-memory view should not be trusted to match
// storage; callers retry later.
func (s *Store) Save() error {
	s.mu.RLock()
	snapshot := make(map[string]map[string]string, len(s.entries))
	for phrase, langs := range s.entries {
		copied := make(map[string]string, len(langs))
		for lang, translation := range langs {
			copied[lang] = translation
		}
		snapshot[phrase] = copied
	}
	s.mu.RUnlock()

	if err := s.backend.Save(snapshot); err != nil {
		return fmt.Errorf("failed to save glossary: %w", err)
	}
	return nil
}

// Len returns the number of phrases in the glossary
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
