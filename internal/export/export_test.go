package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"docsum/internal/extract"
)

func TestSaveText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.txt")

	if err := Save("Key point one.\n\nKey point two.", "report.pdf", path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	got := string(b)

	if !strings.HasPrefix(got, "# Document Summary\n\n") {
		t.Errorf("missing heading:\n%s", got)
	}
	if !strings.Contains(got, "Original file: report.pdf") {
		t.Errorf("missing source file line:\n%s", got)
	}
	if !strings.Contains(got, "Key point one.\n\nKey point two.") {
		t.Errorf("summary body mangled:\n%s", got)
	}
}

func TestSaveTextWithoutSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.md")

	if err := Save("just the summary", "", path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(b), "Original file:") {
		t.Errorf("source line must be omitted when no source name is given")
	}
}

func TestSaveDocxRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.docx")

	summary := "First point & emphasis.\n\nSecond <point>."
	if err := Save(summary, "report.docx", path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Написанный документ должен читаться нашим же extractor'ом
	got, err := extract.Text(path)
	if err != nil {
		t.Fatalf("extracting written docx failed: %v", err)
	}

	for _, want := range []string{
		"Document Summary",
		"Original file: report.docx",
		"First point & emphasis.",
		"Second <point>.",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("round-tripped document missing %q:\n%s", want, got)
		}
	}
}
