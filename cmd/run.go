package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/calctutor/internal/app"
	"github.com/abhisek/calctutor/internal/assistant"
	"github.com/abhisek/calctutor/internal/explain"
	"github.com/abhisek/calctutor/internal/llm"
	"github.com/abhisek/calctutor/internal/logging"
)

// env holds what every command builds from its settings.
type env struct {
	settings  settings
	logger    *zap.Logger
	assistant *assistant.Assistant
	cleanup   func()
}

func setup(cmd *cobra.Command) (*env, error) {
	s := resolveSettings(cmd)
	logger, cleanup, err := logging.New(logging.Config{
		Level:      s.logLevel,
		Format:     "json",
		OutputPath: s.logFile,
	})
	if err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}
	logger = logger.With(zap.String("command", cmd.Name()))

	a := assistant.New(assistant.Config{
		KnowledgePath: s.knowledge,
		ProblemsPath:  s.problems,
	}, logger)
	return &env{settings: s, logger: logger, assistant: a, cleanup: cleanup}, nil
}

// newExplainer builds the AI tutor from the environment. It returns nil
// when no provider is configured, which turns the tutor off.
func newExplainer(ctx context.Context, logger *zap.Logger) (*explain.Service, string) {
	provider, cfg, err := llm.NewProviderFromEnv(ctx, logger)
	if err != nil {
		logger.Info("AI tutor unavailable", zap.Error(err))
		return nil, ""
	}
	logger.Info("AI tutor configured",
		zap.String("provider", cfg.Provider),
		zap.String("model", provider.ModelID()))
	return explain.NewService(provider, explain.DefaultConfig()), provider.ModelID()
}

// runApp builds dependencies and launches the TUI.
func runApp(cmd *cobra.Command) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.cleanup()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	explainer, model := newExplainer(ctx, e.logger)
	if explainer == nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured; the AI tutor is off.")
	}

	return app.Run(app.Options{
		Assistant:  e.assistant,
		Explainer:  explainer,
		TutorLabel: model,
		Logger:     e.logger,
	})
}
