// Package web wires configuration and startup for the site server command.
package web

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/modegarage/website/internal/ai"
	"github.com/modegarage/website/internal/cms"
	"github.com/modegarage/website/internal/platform/config"
	"github.com/modegarage/website/internal/storage/bbolt"
	"github.com/modegarage/website/internal/web"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr     string `env:"MODEGARAGE_HTTP_ADDR" envDefault:":8080"`
	DBPath       string `env:"MODEGARAGE_DB_PATH" envDefault:"data/modegarage.db"`
	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	GeminiModel  string `env:"MODEGARAGE_GEMINI_MODEL"`
}

// ParseConfig loads the environment and parses flags into a Config. Flags win
// over environment variables.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "path to the site database file")
	fs.StringVar(&cfg.GeminiModel, "gemini-model", cfg.GeminiModel, "Gemini model override")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Run starts the site server and blocks until the context ends.
func Run(ctx context.Context, cfg Config) error {
	db, err := openDB(cfg.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()

	store, err := cms.NewStore(ctx, db)
	if err != nil {
		return fmt.Errorf("init cms store: %w", err)
	}

	aiClient, err := ai.NewClient(ctx, ai.Config{
		APIKey: cfg.GeminiAPIKey,
		Model:  cfg.GeminiModel,
	})
	if err != nil {
		return fmt.Errorf("init ai client: %w", err)
	}

	server, err := web.NewServer(web.Config{
		HTTPAddr: cfg.HTTPAddr,
		Store:    store,
		AI:       aiClient,
	})
	if err != nil {
		return fmt.Errorf("init web server: %w", err)
	}

	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve web: %w", err)
	}
	return nil
}

func openDB(path string) (*bbolt.Store, error) {
	cleanPath := filepath.Clean(path)
	if cleanPath == "." || cleanPath == "" {
		return nil, fmt.Errorf("db path is required")
	}
	if dir := filepath.Dir(cleanPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}
	db, err := bbolt.Open(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("open site database: %w", err)
	}
	return db, nil
}
