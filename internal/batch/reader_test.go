package batch

import (
	"path/filepath"
	"testing"

	"codeberg.org/snonux/lingo/internal/testutil"
)

func TestReadBatchFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "inputs.txt")
	content := `# phrases for the trip
hello world
good morning = Spanish

# mixed content
how are you = French
thank you
`
	testutil.CreateTestFile(t, path, []byte(content))

	entries, err := ReadBatchFile(path)
	if err != nil {
		t.Fatalf("ReadBatchFile failed: %v", err)
	}

	want := []Entry{
		{Text: "hello world"},
		{Text: "good morning", TargetLanguage: "Spanish"},
		{Text: "how are you", TargetLanguage: "French"},
		{Text: "thank you"},
	}
	if len(entries) != len(want) {
		t.Fatalf("Got %d entries, want %d: %v", len(entries), len(want), entries)
	}
	for i, w := range want {
		if entries[i] != w {
			t.Errorf("Entry %d = %+v, want %+v", i, entries[i], w)
		}
	}
}

func TestReadBatchFile_TextContainingEquals(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "inputs.txt")
	testutil.CreateTestFile(t, path, []byte("2 + 2 = 4 is true = German\n"))

	entries, err := ReadBatchFile(path)
	if err != nil {
		t.Fatalf("ReadBatchFile failed: %v", err)
	}

	if len(entries) != 1 {
		t.Fatalf("Got %d entries, want 1", len(entries))
	}
	if entries[0].Text != "2 + 2 = 4 is true" {
		t.Errorf("Text = %q, want '2 + 2 = 4 is true'", entries[0].Text)
	}
	if entries[0].TargetLanguage != "German" {
		t.Errorf("TargetLanguage = %q, want German", entries[0].TargetLanguage)
	}
}

func TestReadBatchFile_Empty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.txt")
	testutil.CreateTestFile(t, path, []byte("# only comments\n\n  \n"))

	if _, err := ReadBatchFile(path); err == nil {
		t.Error("Expected error for a file with no inputs")
	}
}

func TestReadBatchFile_Missing(t *testing.T) {
	if _, err := ReadBatchFile(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Error("Expected error for a missing file")
	}
}
