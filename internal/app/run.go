package app

import (
	"context"
	"fmt"
	"log"
	"path/filepath"

	"docsum/internal/extract"
)

// Summarize обрабатывает один документ: извлечение текста, сегментация,
// последовательная суммаризация через бэкенд.
func (a *App) Summarize(ctx context.Context, path string) (*Result, error) {
	extractor := extract.ForFile(path)

	text, err := extractor.Extract(path)
	if err != nil {
		return nil, fmt.Errorf("failed to extract text: %w", err)
	}

	log.Printf("📄 [%s] Extracted %d characters from %s", extractor.Name(), len(text), filepath.Base(path))

	segments := 0
	summary, err := a.pipeline.Run(ctx, text, a.cfg.Model, func(current, total int) {
		segments = total
		log.Printf("⏳ Summarizing part %d/%d...", current, total)
	})
	if err != nil {
		return nil, fmt.Errorf("summarization failed: %w", err)
	}

	if segments == 0 {
		log.Printf("⚠️  Document is empty, nothing to summarize")
	} else {
		log.Printf("✅ Summarized %d segment(s)", segments)
	}

	return &Result{
		FileName: filepath.Base(path),
		Text:     text,
		Summary:  summary,
		Segments: segments,
	}, nil
}
