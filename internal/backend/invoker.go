package backend

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// Шаблон промпта фиксированный, сегмент вставляется как есть.
const (
	promptHead = "The following is the summary content：\n"
	promptTail = "\n\nPlease extract the key points of this passage in English and output a concise summary："
)

// Invoker запускает CLI бэкенда (ollama) для суммаризации одного сегмента.
type Invoker struct {
	bin     string
	timeout time.Duration
}

// New создаёт invoker для указанного бинарника. Пустое имя = "ollama".
// timeout 0 means no limit: a call may block until the backend answers.
func New(bin string, timeout time.Duration) *Invoker {
	if bin == "" {
		bin = "ollama"
	}
	return &Invoker{bin: bin, timeout: timeout}
}

// Available проверяет, что бинарник бэкенда есть в PATH.
func (i *Invoker) Available() error {
	if _, err := exec.LookPath(i.bin); err != nil {
		return fmt.Errorf("backend binary %q not found: %w", i.bin, err)
	}
	return nil
}

// BuildPrompt оборачивает сегмент в фиксированный шаблон.
func BuildPrompt(segment string) string {
	return promptHead + segment + promptTail
}

// Summarize выполняет `<bin> run <model> <prompt>` и ждёт завершения.
//
// stdout is preferred; stderr is the fallback when stdout is blank. The
// exit status is not inspected: a backend that writes its answer to stderr
// and exits non-zero still counts as answered. An error is returned only
// when the process cannot be started at all or ctx ends first.
func (i *Invoker) Summarize(ctx context.Context, model, segment string) (string, error) {
	if i.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, i.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, i.bin, "run", model, BuildPrompt(segment))

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", fmt.Errorf("backend %s interrupted: %w", i.bin, ctxErr)
		}
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			// Процесс не стартовал: нет бинарника, нет прав и т.п.
			return "", fmt.Errorf("failed to start backend %s: %w", i.bin, err)
		}
	}

	out := clean(stdout.String())
	if out != "" {
		return out, nil
	}
	return clean(stderr.String()), nil
}

// clean отбрасывает некорректные UTF-8 байты и обрезает пробелы.
func clean(s string) string {
	return strings.TrimSpace(strings.ToValidUTF8(s, ""))
}
