package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/personalab/persona-board/internal/adapter"
	"github.com/personalab/persona-board/internal/config"
	"github.com/personalab/persona-board/internal/logger"
	"github.com/personalab/persona-board/internal/store"
	"github.com/personalab/persona-board/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("persona-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter := adapter.NewHTTPServerAdapter(adapter.HTTPClientConfig{
		BaseURL: cfg.Client.ServerURL,
		Timeout: cfg.Client.Timeout,
	})

	cache, err := store.NewPersonaCache(cfg.Client.CachePath, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error opening persona cache")
	}
	defer cache.Close()

	ui, err := tui.New(serverAdapter, cache, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	if err = ui.Run(context.Background()); err != nil && !errors.Is(err, tui.ErrUserQuit) {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
