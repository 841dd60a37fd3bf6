package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"analizador/internal/config"
	"analizador/internal/core"
	"analizador/internal/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load("config.yaml")
	if err != nil {
		fmt.Printf("❌ Error loading config: %v\n", err)
		os.Exit(1)
	}

	// The alternate screen owns stdout, log to a file instead.
	if cfg.Log.Output == "" {
		cfg.Log.Output = "file"
		cfg.Log.FilePath = "logs/analizador-tui.log"
	}
	if err := logger.Init(cfg.Log); err != nil {
		fmt.Printf("❌ Error initializing logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	toolkit, err := core.NewToolkit(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize toolkit")
	}

	program := tea.NewProgram(newModel(toolkit), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		fmt.Printf("❌ Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
