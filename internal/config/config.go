package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

type Config struct {
	OllamaPath    string        `env:"OLLAMA_PATH" envDefault:"ollama"`
	Model         string        `env:"MODEL" envDefault:"deepseek-r1:14b"`
	ChunkSize     int           `env:"CHUNK_SIZE" envDefault:"20000"`
	InvokeTimeout time.Duration `env:"INVOKE_TIMEOUT" envDefault:"0"`
}

func Init(cfg interface{}) error {
	return env.Parse(cfg)
}
