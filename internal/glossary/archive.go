package glossary

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Archive moves the glossary file aside into a timestamped archive directory
// next to it, so the next run starts from the built-in defaults
func Archive(glossaryPath string) error {
	if _, err := os.Stat(glossaryPath); os.IsNotExist(err) {
		return fmt.Errorf("glossary file does not exist: %s", glossaryPath)
	}

	parentDir := filepath.Dir(glossaryPath)
	archiveDir := filepath.Join(parentDir, "archive")

	if err := os.MkdirAll(archiveDir, 0755); err != nil {
		return fmt.Errorf("failed to create archive directory: %w", err)
	}

	timestamp := time.Now().Format("20060102-150405")
	archiveName := fmt.Sprintf("glossary-%s%s", timestamp, filepath.Ext(glossaryPath))
	archivePath := filepath.Join(archiveDir, archiveName)

	// Unlikely collision with a same-second archive
	if _, err := os.Stat(archivePath); err == nil {
		timestamp = time.Now().Format("20060102-150405.000000")
		archiveName = fmt.Sprintf("glossary-%s%s", timestamp, filepath.Ext(glossaryPath))
		archivePath = filepath.Join(archiveDir, archiveName)
	}

	if err := os.Rename(glossaryPath, archivePath); err != nil {
		return fmt.Errorf("failed to archive glossary: %w", err)
	}

	fmt.Printf("Glossary archived to: %s\n", archivePath)
	return nil
}
