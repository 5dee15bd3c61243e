// Package app wires configuration into the provider, tool, agent, and
// workflow layers shared by the CLI and the server.
package app

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/your-org/swot-reporter/internal/config"
	"github.com/your-org/swot-reporter/llm/agents"
	"github.com/your-org/swot-reporter/llm/agents/sub-agents/analyst"
	"github.com/your-org/swot-reporter/llm/agents/sub-agents/comparison"
	"github.com/your-org/swot-reporter/llm/agents/sub-agents/reporter"
	"github.com/your-org/swot-reporter/llm/agents/sub-agents/searcher"
	"github.com/your-org/swot-reporter/llm/agents/sub-agents/swot"
	"github.com/your-org/swot-reporter/llm/providers"
	"github.com/your-org/swot-reporter/llm/providers/groq"
	"github.com/your-org/swot-reporter/llm/tools"
	"github.com/your-org/swot-reporter/llm/tools/tavily"
	"github.com/your-org/swot-reporter/llm/workflow"
	"github.com/your-org/swot-reporter/llm/workflow/storage"
)

// App holds the assembled components of the report generator
type App struct {
	Config    *config.Config
	Logger    zerolog.Logger
	Providers *providers.Registry
	Tools     *tools.Registry
	Agents    *agents.Registry
	Store     storage.SessionStore
	Generator *workflow.ReportGenerator
}

// New assembles the application from configuration
func New(cfg *config.Config) (*App, error) {
	logger := NewLogger(cfg)

	groqProvider, err := groq.NewProvider(groq.Config{
		APIKey:       cfg.Groq.APIKey,
		BaseURL:      cfg.Groq.BaseURL,
		DefaultModel: cfg.Groq.Model,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create groq provider: %w", err)
	}

	providerRegistry := providers.NewRegistry()
	providerRegistry.Register(groqProvider)

	toolRegistry := tools.NewRegistry()
	toolRegistry.Register(tavily.NewSearchTool(tavily.Config{
		APIKey:      cfg.Tavily.APIKey,
		BaseURL:     cfg.Tavily.BaseURL,
		SearchDepth: cfg.Tavily.SearchDepth,
		MaxResults:  cfg.Tavily.MaxResults,
	}))

	opts := agents.Options{
		Model:       cfg.Groq.Model,
		Temperature: cfg.Groq.Temperature,
		MaxTokens:   cfg.Groq.MaxTokens,
	}

	agentRegistry := agents.NewRegistry(toolRegistry, groqProvider, logger)
	agentRegistry.Register(searcher.NewSearcherAgent(groqProvider, toolRegistry, opts, logger))
	agentRegistry.Register(analyst.NewAnalystAgent(groqProvider, opts))
	agentRegistry.Register(comparison.NewComparisonAgent(groqProvider, opts))
	agentRegistry.Register(swot.NewSWOTAgent(groqProvider, opts))
	agentRegistry.Register(reporter.NewReportAgent(groqProvider, opts))

	store, err := storage.NewSQLiteStore(cfg.Storage.DBFile, cfg.Storage.Table)
	if err != nil {
		return nil, fmt.Errorf("failed to open session store: %w", err)
	}

	generator := workflow.NewReportGenerator(agentRegistry, store, workflow.Config{
		MaxSearchAttempts: cfg.Workflow.MaxSearchAttempts,
	}, logger)

	return &App{
		Config:    cfg,
		Logger:    logger,
		Providers: providerRegistry,
		Tools:     toolRegistry,
		Agents:    agentRegistry,
		Store:     store,
		Generator: generator,
	}, nil
}

// Close releases held resources
func (a *App) Close() error {
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}

// NewLogger builds the zerolog logger from config
func NewLogger(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if cfg.LogPretty {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		logger = zerolog.New(os.Stderr)
	}
	return logger.Level(level).With().Timestamp().Logger()
}
