package pipeline

import (
	"context"
	"fmt"
	"strings"

	"docsum/internal/segmenter"
)

// Separator ставится между частичными саммари в итоговом тексте.
const Separator = "\n\n"

// Backend суммаризирует один сегмент текста.
type Backend interface {
	Summarize(ctx context.Context, model, segment string) (string, error)
}

// ProgressFunc вызывается перед обработкой каждого сегмента.
// current - 1-based номер сегмента, total - общее количество.
type ProgressFunc func(current, total int)

// Progress - событие прогресса для канального адаптера.
type Progress struct {
	Current int
	Total   int
}

// Pipeline последовательно прогоняет сегменты текста через бэкенд.
type Pipeline struct {
	backend Backend
	budget  int
}

// New создаёт pipeline. budget <= 0 означает бюджет по умолчанию.
func New(backend Backend, budget int) *Pipeline {
	if budget <= 0 {
		budget = segmenter.DefaultBudget
	}
	return &Pipeline{backend: backend, budget: budget}
}

// Run суммаризирует текст: сегментация, по одному вызову бэкенда на
// сегмент строго по порядку, сборка итога через пустую строку.
//
// Empty text returns "" without touching the backend or the callback.
// Segments are processed strictly one at a time: the backend is assumed
// to be a single local inference engine. A backend error aborts the run,
// remaining segments are not attempted and no partial result is returned.
func (p *Pipeline) Run(ctx context.Context, text, model string, onProgress ProgressFunc) (string, error) {
	segments, err := segmenter.Split(text, p.budget)
	if err != nil {
		return "", fmt.Errorf("segmentation failed: %w", err)
	}

	total := len(segments)
	if total == 0 {
		return "", nil
	}

	parts := make([]string, 0, total)
	for i, seg := range segments {
		notify(onProgress, i+1, total)

		part, err := p.backend.Summarize(ctx, model, seg)
		if err != nil {
			return "", fmt.Errorf("segment %d/%d: %w", i+1, total, err)
		}
		parts = append(parts, part)
	}

	return strings.Join(parts, Separator), nil
}

// notify изолирует паники из callback - прогресс чисто информационный
// и не должен ронять pipeline.
func notify(fn ProgressFunc, current, total int) {
	if fn == nil {
		return
	}
	defer func() {
		_ = recover()
	}()
	fn(current, total)
}

// ChannelProgress адаптирует канал в ProgressFunc с неблокирующей
// отправкой: медленный потребитель теряет события, но не тормозит
// обработку сегментов.
func ChannelProgress(ch chan<- Progress) ProgressFunc {
	return func(current, total int) {
		select {
		case ch <- Progress{Current: current, Total: total}:
		default:
		}
	}
}
