// Package workflow chains the five agents into the report generation
// pipeline: search, preprocess, compare, SWOT, report. Completed reports are
// cached per topic in the session store.
package workflow

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/your-org/swot-reporter/llm/agents"
	"github.com/your-org/swot-reporter/llm/workflow/storage"
)

// ErrNoSearchResults is returned when every search attempt came back empty.
var ErrNoSearchResults = errors.New("no search results found for topic")

// Report is the output of a workflow run
type Report struct {
	RunID   string   `json:"run_id"`
	Topic   string   `json:"topic"`
	Content string   `json:"content"`
	Cached  bool     `json:"cached"`
	Stats   RunStats `json:"stats"`
}

// RunStats aggregates token usage and timing across stages
type RunStats struct {
	TotalTokens int            `json:"total_tokens"`
	Duration    time.Duration  `json:"duration"`
	StageTokens map[string]int `json:"stage_tokens,omitempty"`
}

// Options configures a single workflow run
type Options struct {
	UseCache bool
}

// ReportGenerator runs the report pipeline
type ReportGenerator struct {
	agents            *agents.Registry
	store             storage.SessionStore
	logger            zerolog.Logger
	maxSearchAttempts int
}

// Config holds workflow configuration
type Config struct {
	MaxSearchAttempts int
}

// NewReportGenerator creates a new report generator
func NewReportGenerator(registry *agents.Registry, store storage.SessionStore, cfg Config, logger zerolog.Logger) *ReportGenerator {
	attempts := cfg.MaxSearchAttempts
	if attempts <= 0 {
		attempts = 3
	}
	return &ReportGenerator{
		agents:            registry,
		store:             store,
		logger:            logger,
		maxSearchAttempts: attempts,
	}
}

// Run generates a competitor analysis report for the topic
func (g *ReportGenerator) Run(ctx context.Context, topic string, opts Options) (*Report, error) {
	if topic == "" {
		return nil, fmt.Errorf("topic is required")
	}

	start := time.Now()
	runID := uuid.NewString()
	log := g.logger.With().Str("run_id", runID).Str("topic", topic).Logger()

	log.Info().Msg("generating SWOT analysis report")

	if opts.UseCache {
		if cached := g.cachedReport(ctx, topic); cached != nil {
			log.Info().Msg("serving report from cache")
			cached.RunID = runID
			return cached, nil
		}
	}

	stats := RunStats{StageTokens: make(map[string]int)}

	searchResults, err := g.searchStage(ctx, topic, &stats, log)
	if err != nil {
		return nil, err
	}

	preprocessed, err := g.stage(ctx, "analyst", map[string]interface{}{
		"search_results": searchResults,
	}, &stats, log)
	if err != nil {
		return nil, err
	}

	comparison, err := g.stage(ctx, "comparison", map[string]interface{}{
		"topic":          topic,
		"search_results": preprocessed,
	}, &stats, log)
	if err != nil {
		return nil, err
	}

	swotAnalysis, err := g.stage(ctx, "swot", map[string]interface{}{
		"topic":          topic,
		"search_results": preprocessed,
		"comparison":     comparison,
	}, &stats, log)
	if err != nil {
		return nil, err
	}

	content, err := g.stage(ctx, "reporter", map[string]interface{}{
		"topic":          topic,
		"search_results": preprocessed,
		"comparison":     comparison,
		"swot_analysis":  swotAnalysis,
	}, &stats, log)
	if err != nil {
		return nil, err
	}

	stats.Duration = time.Since(start)

	report := &Report{
		RunID:   runID,
		Topic:   topic,
		Content: content,
		Stats:   stats,
	}

	g.cacheReport(ctx, report, log)

	log.Info().
		Int("total_tokens", stats.TotalTokens).
		Dur("duration", stats.Duration).
		Msg("report generated")

	return report, nil
}

// searchStage runs the searcher agent with bounded retries. An error or an
// empty response counts as a failed attempt.
func (g *ReportGenerator) searchStage(ctx context.Context, topic string, stats *RunStats, log zerolog.Logger) (string, error) {
	for attempt := 1; attempt <= g.maxSearchAttempts; attempt++ {
		result, err := g.agents.Execute(ctx, "searcher", &agents.AgentInput{Query: topic})
		if err != nil {
			log.Warn().Int("attempt", attempt).Int("max_attempts", g.maxSearchAttempts).
				Err(err).Msg("search attempt failed")
			continue
		}
		if result == nil || !result.Success || result.Content == "" {
			log.Warn().Int("attempt", attempt).Int("max_attempts", g.maxSearchAttempts).
				Msg("empty searcher response")
			continue
		}

		stats.TotalTokens += result.TokensUsed
		stats.StageTokens["searcher"] = result.TokensUsed
		return result.Content, nil
	}

	log.Error().Int("max_attempts", g.maxSearchAttempts).Msg("failed to get search results")
	return "", fmt.Errorf("%w: %s", ErrNoSearchResults, topic)
}

// stage runs a single downstream agent and records its token usage
func (g *ReportGenerator) stage(ctx context.Context, name string, data map[string]interface{}, stats *RunStats, log zerolog.Logger) (string, error) {
	stageStart := time.Now()
	log.Info().Str("stage", name).Msg("running stage")

	result, err := g.agents.Execute(ctx, name, &agents.AgentInput{Data: data})
	if err != nil {
		return "", fmt.Errorf("stage %s failed: %w", name, err)
	}
	if !result.Success {
		return "", fmt.Errorf("stage %s failed: %v", name, result.Metadata["error"])
	}
	if result.Content == "" {
		return "", fmt.Errorf("stage %s returned empty content", name)
	}

	stats.TotalTokens += result.TokensUsed
	stats.StageTokens[name] = result.TokensUsed

	log.Debug().Str("stage", name).
		Int("tokens", result.TokensUsed).
		Dur("duration", time.Since(stageStart)).
		Msg("stage complete")

	return result.Content, nil
}

// cachedReport returns the stored report for a topic, or nil on miss. Store
// errors degrade to a miss.
func (g *ReportGenerator) cachedReport(ctx context.Context, topic string) *Report {
	if g.store == nil {
		return nil
	}

	session, err := g.store.Get(ctx, topic)
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	if err != nil {
		g.logger.Warn().Err(err).Msg("cache lookup failed")
		return nil
	}

	return &Report{
		Topic:   session.Topic,
		Content: session.Content,
		Cached:  true,
	}
}

// cacheReport stores a finished report. A store failure is logged, not fatal.
func (g *ReportGenerator) cacheReport(ctx context.Context, report *Report, log zerolog.Logger) {
	if g.store == nil {
		return
	}

	session := &storage.Session{
		SessionID: fmt.Sprintf("generate-report-on-%s", storage.TopicKey(report.Topic)),
		Topic:     report.Topic,
		Content:   report.Content,
	}
	if err := g.store.Put(ctx, session); err != nil {
		log.Warn().Err(err).Msg("failed to cache report")
	}
}
