package app

import (
	"fmt"

	"docsum/internal/backend"
	"docsum/internal/config"
	"docsum/internal/pipeline"
)

type App struct {
	cfg      *config.Config
	invoker  *backend.Invoker
	pipeline *pipeline.Pipeline
}

// Result - итог одного прогона: извлечённый текст и его саммари.
// Между прогонами App не хранит никакого состояния.
type Result struct {
	FileName string
	Text     string
	Summary  string
	Segments int
}

func New(cfg *config.Config) (*App, error) {
	if cfg.ChunkSize <= 0 {
		return nil, fmt.Errorf("invalid chunk size: %d", cfg.ChunkSize)
	}

	invoker := backend.New(cfg.OllamaPath, cfg.InvokeTimeout)

	return &App{
		cfg:      cfg,
		invoker:  invoker,
		pipeline: pipeline.New(invoker, cfg.ChunkSize),
	}, nil
}

// Init проверяет доступность бэкенда до того, как читать документ.
func (a *App) Init() error {
	if err := a.invoker.Available(); err != nil {
		return fmt.Errorf("backend check failed: %w", err)
	}
	return nil
}
