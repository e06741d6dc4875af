package segmenter

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// DefaultBudget is the operating character budget per segment.
const DefaultBudget = 20000

// Split разбивает текст на сегменты по границам строк.
//
// Lines are accumulated until adding the next one would push the running
// character count (line lengths only, separators not counted) over budget.
// A single line longer than budget is never split further and becomes its
// own segment. Empty input yields no segments.
func Split(text string, budget int) ([]string, error) {
	if budget <= 0 {
		return nil, fmt.Errorf("segment budget must be positive, got %d", budget)
	}

	if text == "" {
		return nil, nil
	}

	lines := strings.Split(text, "\n")

	var segments []string
	var current []string
	count := 0

	for _, line := range lines {
		// Бюджет считаем в символах, не в байтах
		n := utf8.RuneCountInString(line)
		if count+n > budget && len(current) > 0 {
			segments = append(segments, strings.Join(current, "\n"))
			current = []string{line}
			count = n
		} else {
			current = append(current, line)
			count += n
		}
	}

	if len(current) > 0 {
		segments = append(segments, strings.Join(current, "\n"))
	}

	return segments, nil
}
