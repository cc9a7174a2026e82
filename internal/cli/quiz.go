package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"printscout/internal/api"
	"printscout/internal/config"
	"printscout/internal/logging"
	"printscout/internal/tui/wizard"
)

func newQuizCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quiz",
		Short: "Get personalized printer recommendations",
		Long:  "Answer a few questions about your experience, use case, budget, and feature preferences; the backend scores the catalog and returns ranked matches.",
		RunE:  runQuiz,
	}
}

// newAPIClient loads config, applies flag overrides, and wires the gateway
// client with file logging. Shared by the quiz and browse commands.
func newAPIClient() (*api.Client, error) {
	cfgPath := config.ConfigFilePath()
	cfg, err := config.LoadFromFile(cfgPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = config.Defaults()
	}

	if flagBackend != "" {
		cfg.Backend.URL = flagBackend
	}

	logger, err := logging.Setup(config.LogFilePath(), flagVerbose)
	if err != nil {
		logger = slog.New(logging.NopHandler{})
	}

	return api.NewClient(cfg.Backend.URL, cfg.Timeout(), logger), nil
}

func runQuiz(cmd *cobra.Command, args []string) error {
	client, err := newAPIClient()
	if err != nil {
		return err
	}

	p := tea.NewProgram(wizard.New(client), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running quiz: %w", err)
	}
	return nil
}
