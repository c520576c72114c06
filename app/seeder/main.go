package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/sarveshramani/portfolio/config"
	"github.com/sarveshramani/portfolio/internal/logger"
	"github.com/sarveshramani/portfolio/internal/seed"
	"github.com/sarveshramani/portfolio/internal/services"
	"github.com/sarveshramani/portfolio/internal/storage"
)

func main() {
	file := flag.String("file", "", "YAML seed file (defaults to the bundled portfolio content)")
	flag.Parse()

	if err := run(*file); err != nil {
		logrus.WithError(err).Fatal("seeding failed")
	}
}

func run(file string) error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	log := logger.New(cfg.LogLevel)

	data, err := seed.Default()
	if file != "" {
		data, err = seed.Load(file)
	}
	if err != nil {
		return err
	}

	ctx := context.Background()
	backend, err := storage.Open(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("storage initialization failed: %w", err)
	}
	defer func() { _ = backend.Close(context.Background()) }()

	_, err = seed.Run(ctx, services.New(backend.Stores), data, log)
	return err
}
