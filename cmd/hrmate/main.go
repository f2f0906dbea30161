// Package main runs the HR Mate terminal assistant.
package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"google.golang.org/genai"

	"github.com/techcorp/hrmate/internal/assistant"
	"github.com/techcorp/hrmate/internal/assistant/toolset"
	"github.com/techcorp/hrmate/internal/config"
	"github.com/techcorp/hrmate/internal/provider/gemini"
	"github.com/techcorp/hrmate/internal/store"
	"github.com/techcorp/hrmate/internal/ui"
	logx "github.com/techcorp/hrmate/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "hrmate: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logx.Init(logx.LoggerOpts{Environment: cfg.Environment()})

	ctx := context.Background()

	genaiClient, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: cfg.APIKey})
	if err != nil {
		return fmt.Errorf("failed to create Gemini client: %w", err)
	}

	geminiProvider := gemini.New(gemini.NewRealGeminiClient(genaiClient), cfg.Model)

	dataStore := store.New()
	notifier := ui.NewChannelNotifier()
	tools := toolset.All(dataStore, notifier)

	gateway, err := assistant.NewGateway(ctx, geminiProvider, dataStore, tools)
	if err != nil {
		return fmt.Errorf("failed to initialise gateway: %w", err)
	}

	session := assistant.NewSession(
		gateway,
		assistant.NewFastPath(dataStore),
		assistant.NewNormalizer(dataStore),
	)

	logx.Info().Str("model", cfg.Model).Msg("starting HR Mate")

	program := tea.NewProgram(
		ui.NewModel(session, dataStore, notifier, cfg.Model),
		tea.WithAltScreen(),
	)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("UI error: %w", err)
	}
	return nil
}
