// Package main provides a CLI for seeding the site database with the demo
// garage content, posts, and settings.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/modegarage/website/internal/cms"
	"github.com/modegarage/website/internal/platform/config"
	"github.com/modegarage/website/internal/storage"
	"github.com/modegarage/website/internal/storage/bbolt"
)

func main() {
	var dbPath string
	var force bool

	flag.StringVar(&dbPath, "db-path", defaultDBPath(), "path to the site database file")
	flag.BoolVar(&force, "force", false, "overwrite existing data")
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	if err := run(ctx, dbPath, force); err != nil {
		config.Exitf("Error: %v", err)
	}
}

func run(ctx context.Context, dbPath string, force bool) error {
	cleanPath := filepath.Clean(dbPath)
	if cleanPath == "." || cleanPath == "" {
		return fmt.Errorf("db path is required")
	}
	if dir := filepath.Dir(cleanPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create storage dir: %w", err)
		}
	}

	db, err := bbolt.Open(cleanPath)
	if err != nil {
		return fmt.Errorf("open site database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: close site database: %v\n", err)
		}
	}()

	if !force {
		var existing map[cms.Language]cms.SiteContent
		err := db.Load(ctx, storage.KeyContent, &existing)
		if err == nil {
			return fmt.Errorf("database already seeded (use -force to overwrite)")
		}
		if !errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("check existing content: %w", err)
		}
	}

	if err := db.Save(ctx, storage.KeyContent, cms.SeedContent()); err != nil {
		return fmt.Errorf("save content: %w", err)
	}
	if err := db.Save(ctx, storage.KeyPosts, cms.SeedPosts()); err != nil {
		return fmt.Errorf("save posts: %w", err)
	}
	if err := db.Save(ctx, storage.KeySettings, cms.SeedSettings()); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}

	fmt.Printf("Seeded %s with demo content, posts, and settings\n", cleanPath)
	return nil
}

func defaultDBPath() string {
	path := os.Getenv("MODEGARAGE_DB_PATH")
	if path == "" {
		path = filepath.Join("data", "modegarage.db")
	}
	return path
}
