package extract

import (
	"fmt"
	"os"
	"strings"
)

// TextExtractor читает файл как UTF-8 текст.
type TextExtractor struct{}

func (e *TextExtractor) Name() string { return "text" }

func (e *TextExtractor) Extract(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	// Некорректные байты отбрасываем, а не падаем
	return strings.ToValidUTF8(string(b), ""), nil
}
