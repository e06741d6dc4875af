// Package export сериализует итоговое саммари в файл:
// plain text/markdown или минимальный OOXML .docx.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Save выбирает формат по расширению outPath: .docx пишется как
// word-документ, всё остальное как текст.
func Save(summary, sourceName, outPath string) error {
	if strings.ToLower(filepath.Ext(outPath)) == ".docx" {
		return SaveDocx(summary, sourceName, outPath)
	}
	return SaveText(summary, sourceName, outPath)
}

// SaveText пишет саммари с заголовком и именем исходного файла.
func SaveText(summary, sourceName, outPath string) error {
	var buf strings.Builder

	buf.WriteString("# Document Summary\n\n")
	if sourceName != "" {
		buf.WriteString(fmt.Sprintf("Original file: %s\n\n", sourceName))
	}
	buf.WriteString(summary)
	buf.WriteString("\n")

	if err := os.WriteFile(outPath, []byte(buf.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	return nil
}
