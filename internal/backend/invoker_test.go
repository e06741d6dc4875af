//go:build unix

package backend

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// writeScript кладёт исполняемый shell-скрипт во временную директорию.
func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fake-ollama")
	script := "#!/bin/sh\n" + body + "\n"
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("failed to write script: %v", err)
	}
	return path
}

func TestBuildPrompt(t *testing.T) {
	segment := "first line\nsecond line"
	prompt := BuildPrompt(segment)

	if !strings.HasPrefix(prompt, "The following is the summary content：\n") {
		t.Errorf("prompt missing header: %q", prompt)
	}
	if !strings.Contains(prompt, segment) {
		t.Errorf("segment not embedded verbatim")
	}
	if !strings.HasSuffix(prompt, "output a concise summary：") {
		t.Errorf("prompt missing instruction tail: %q", prompt)
	}
}

func TestSummarizeCommandShape(t *testing.T) {
	// Скрипт печатает subcommand и модель, которые ему передали
	bin := writeScript(t, `echo "$1 $2"`)

	inv := New(bin, 0)
	out, err := inv.Summarize(context.Background(), "test-model", "segment text")
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	if out != "run test-model" {
		t.Fatalf("command shape = %q, want %q", out, "run test-model")
	}
}

func TestSummarizeStdoutPreferred(t *testing.T) {
	bin := writeScript(t, `echo "from stdout"; echo "from stderr" >&2`)

	inv := New(bin, 0)
	out, err := inv.Summarize(context.Background(), "m", "s")
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	if out != "from stdout" {
		t.Fatalf("output = %q, want stdout content", out)
	}
}

func TestSummarizeStderrFallback(t *testing.T) {
	// stdout пустой, ненулевой код выхода - это всё ещё валидный ответ
	bin := writeScript(t, `echo "diagnostic answer" >&2; exit 3`)

	inv := New(bin, 0)
	out, err := inv.Summarize(context.Background(), "m", "s")
	if err != nil {
		t.Fatalf("non-zero exit must be tolerated, got error: %v", err)
	}
	if out != "diagnostic answer" {
		t.Fatalf("output = %q, want stderr fallback", out)
	}
}

func TestSummarizeEmptyResult(t *testing.T) {
	bin := writeScript(t, `exit 0`)

	inv := New(bin, 0)
	out, err := inv.Summarize(context.Background(), "m", "s")
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	if out != "" {
		t.Fatalf("output = %q, want empty string", out)
	}
}

func TestSummarizeLossyDecode(t *testing.T) {
	// \xff - невалидный UTF-8 байт, он должен быть отброшен
	bin := writeScript(t, `printf 'ok\377done'`)

	inv := New(bin, 0)
	out, err := inv.Summarize(context.Background(), "m", "s")
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	if out != "okdone" {
		t.Fatalf("output = %q, want malformed bytes dropped", out)
	}
}

func TestSummarizeMissingBinary(t *testing.T) {
	inv := New(filepath.Join(t.TempDir(), "no-such-backend"), 0)

	if _, err := inv.Summarize(context.Background(), "m", "s"); err == nil {
		t.Fatal("expected start error for missing binary")
	}
}

func TestSummarizeContextCancel(t *testing.T) {
	bin := writeScript(t, `sleep 10`)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	inv := New(bin, 0)
	if _, err := inv.Summarize(ctx, "m", "s"); err == nil {
		t.Fatal("expected error after context deadline")
	}
}

func TestSummarizeConfiguredTimeout(t *testing.T) {
	bin := writeScript(t, `sleep 10`)

	inv := New(bin, 50*time.Millisecond)
	if _, err := inv.Summarize(context.Background(), "m", "s"); err == nil {
		t.Fatal("expected error after configured timeout")
	}
}

func TestAvailable(t *testing.T) {
	if err := New("sh", 0).Available(); err != nil {
		t.Fatalf("sh must be available: %v", err)
	}
	if err := New("definitely-not-installed-backend", 0).Available(); err == nil {
		t.Fatal("expected error for unknown binary")
	}
}
