package extract

import (
	"path/filepath"
	"strings"
)

// Extractor достаёт плоский текст из файла одного формата.
type Extractor interface {
	// Extract читает файл и возвращает его текст
	Extract(path string) (string, error)

	// Name возвращает название extractor'а для логирования
	Name() string
}

// ForFile возвращает подходящий extractor по расширению файла.
func ForFile(path string) Extractor {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".pdf":
		return &PDFExtractor{}
	case ".docx":
		return &DocxExtractor{}
	case ".md", ".markdown":
		return &MarkdownExtractor{}
	default:
		// Всё остальное читаем как plain text
		return &TextExtractor{}
	}
}

// Text извлекает текст из файла любого поддерживаемого формата.
func Text(path string) (string, error) {
	return ForFile(path).Extract(path)
}
