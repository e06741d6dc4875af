package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"docsum/internal/app"
	"docsum/internal/config"
	"docsum/internal/export"

	"github.com/joho/godotenv"
)

func main() {
	// Парсим флаги командной строки
	model := flag.String("model", "", "Backend model name (overrides MODEL env)")
	output := flag.String("output", "", "Save summary to file: .txt, .md or .docx (optional)")
	chunkSize := flag.Int("chunk-size", 0, "Segment budget in characters (overrides CHUNK_SIZE env)")
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatal("Error: input file is required\nUsage: docsum [flags] /path/to/document.pdf")
	}
	inputFile := flag.Arg(0)

	// Проверяем существование файла
	if _, err := os.Stat(inputFile); os.IsNotExist(err) {
		log.Fatalf("Error: input file not found: %s", inputFile)
	}

	// Флаги транслируем в env перед разбором конфига
	if *model != "" {
		os.Setenv("MODEL", *model)
	}
	if *chunkSize > 0 {
		os.Setenv("CHUNK_SIZE", strconv.Itoa(*chunkSize))
	}

	// Загружаем .env (опционально)
	_ = godotenv.Load()

	// Загружаем конфиг
	cfg := config.Config{}
	if err := config.Init(&cfg); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	log.Printf("Input document: %s", inputFile)
	log.Printf("Backend model: %s", cfg.Model)

	// Создаём app
	a, err := app.New(&cfg)
	if err != nil {
		log.Fatalf("failed to create app: %v", err)
	}

	// Проверяем бэкенд до начала работы
	if err := a.Init(); err != nil {
		log.Fatalf("failed to initialize app: %v", err)
	}

	// Контекст с сигналами завершения
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	result, err := a.Summarize(ctx, inputFile)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	fmt.Println("=== Original text preview ===")
	fmt.Println(preview(result.Text, 500))
	fmt.Println()
	fmt.Println("=== Final Summary ===")
	fmt.Println(result.Summary)

	// Сохраняем саммари в файл (если указан)
	if *output != "" {
		if err := export.Save(result.Summary, result.FileName, *output); err != nil {
			log.Fatalf("❌ Failed to save summary: %v", err)
		}
		log.Printf("💾 Summary saved to: %s", *output)
	}
}

// preview возвращает первые n символов текста.
func preview(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
