// Package analyzer runs the query pipeline: build prompt, invoke the model
// fallback chain, parse the plan, execute the primary and visualization SQL
// against the store, and assemble the normalized response. One linear pass
// per request; the only cross-request state is the per-session last-result
// slot.
package analyzer

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"salesql/api/models"
	"salesql/apimodels"
	"salesql/internal/config"
	"salesql/internal/llm"
	"salesql/internal/schema"
	"salesql/internal/session"
	"salesql/internal/store"
)

const defaultChartColor = "#8884d8"

type Analyzer struct {
	store    *store.Store
	chain    *llm.Chain
	sessions *session.Manager
	cfg      config.AnalysisConfig
}

func New(st *store.Store, chain *llm.Chain, sessions *session.Manager, cfg config.AnalysisConfig) *Analyzer {
	return &Analyzer{
		store:    st,
		chain:    chain,
		sessions: sessions,
		cfg:      cfg,
	}
}

// Analyze answers one natural language query. Fatal pipeline errors (model
// tiers exhausted, unparseable output, primary SQL failure) come back as an
// error; the handler wraps them into a failed payload via Failure.
func (a *Analyzer) Analyze(ctx context.Context, req models.AnalysisRequest) (*apimodels.AnalysisResponse, error) {
	slog.Info("starting analysis", "query", req.Query)
	startTime := time.Now()

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = a.sessions.NewID()
	}

	// Chart-conversion follow-ups reuse the session's previous result
	// without touching the model or the database.
	if chartType, ok := conversionChartType(req.Query); ok {
		if resp, converted := a.convertLast(sessionID, chartType); converted {
			slog.Info("converted previous result", "chart_type", chartType, "session", sessionID)
			resp.ExecutionTime = roundSeconds(time.Since(startTime))
			return resp, nil
		}
		// No previous visualization: fall through and answer from scratch.
	}

	plan, usage, err := a.generatePlan(ctx, req)
	if err != nil {
		return nil, err
	}

	mainSQL := store.CleanSQL(plan.SQLQuery)
	result, err := a.store.Query(ctx, mainSQL, a.cfg.RowLimit)
	if err != nil {
		slog.Error("primary query failed", "error", err)
		return nil, err
	}
	slog.Info("primary query executed", "rows", result.RowCount, "tokens", usage.TotalTokens)

	visualizations := a.runVisualizations(ctx, plan.Visualizations)

	resp := &apimodels.AnalysisResponse{
		Status:          "complete",
		Answer:          answerWithRowCount(plan.Answer, result.RowCount),
		SQLQuery:        mainSQL,
		Visualizations:  visualizations,
		Recommendations: plan.Recommendations,
		RowCount:        result.RowCount,
		ExecutionTime:   roundSeconds(time.Since(startTime)),
		SessionID:       sessionID,
	}
	if resp.Recommendations == nil {
		resp.Recommendations = []string{}
	}

	// Detailed text summary is best effort; a failure here never fails
	// the request.
	if result.RowCount > 0 {
		resp.TextSummary = a.summarize(ctx, req.Query, result)
	}

	a.sessions.Put(sessionID, visualizations)

	return resp, nil
}

// generatePlan builds the prompt, runs the fallback chain, and parses the
// model output into a QueryPlan.
func (a *Analyzer) generatePlan(ctx context.Context, req models.AnalysisRequest) (*QueryPlan, llm.Usage, error) {
	system, user := buildPrompt(req.Query)

	effort := schema.EffortForQuery(req.Query)
	if req.Options.DeepReasoning {
		effort = "high"
	}

	opts := []llm.Option{
		llm.WithJSONMode(),
		llm.WithReasoningEffort(effort),
	}
	if req.Options.MaxTokens != 0 {
		opts = append(opts, llm.WithMaxTokens(req.Options.MaxTokens))
	}
	if req.Options.Temperature != 0 {
		opts = append(opts, llm.WithTemperature(req.Options.Temperature))
	}

	chain := a.chain
	if req.Options.Model != "" {
		chain = chain.WithPrimary(req.Options.Model)
	}

	llmResp, err := chain.Complete(ctx, system, user, opts...)
	if err != nil {
		slog.Error("model chain failed", "error", err)
		return nil, llm.Usage{}, err
	}
	slog.Debug("model responded", "model", llmResp.Model, "length", len(llmResp.Content))

	plan, err := parsePlan(llmResp.Content)
	if err != nil {
		slog.Error("could not parse model output", "error", err, "model", llmResp.Model)
		return nil, llmResp.Usage, err
	}

	return plan, llmResp.Usage, nil
}

// runVisualizations executes each chart query independently. A failing
// chart is logged and dropped; the remaining charts and the response
// survive.
func (a *Analyzer) runVisualizations(ctx context.Context, specs []VisualizationSpec) []apimodels.Visualization {
	if len(specs) > a.cfg.ChartLimit {
		specs = specs[:a.cfg.ChartLimit]
	}

	visualizations := make([]apimodels.Visualization, 0, len(specs))
	for i, spec := range specs {
		if spec.SQLForChart == "" {
			continue
		}

		chartSQL := store.CleanSQL(spec.SQLForChart)
		result, err := a.store.Query(ctx, chartSQL, a.cfg.ChartRowLimit)
		if err != nil {
			slog.Warn("visualization query failed, dropping chart", "chart", i+1, "error", err)
			continue
		}
		slog.Debug("visualization query executed", "chart", i+1, "rows", result.RowCount)

		visualizations = append(visualizations, apimodels.Visualization{
			Type:   chartTypeOrDefault(spec.Type),
			Title:  chartTitleOrDefault(spec.Title, i),
			Data:   recordsToData(result.Records),
			Config: chartConfigOrDefault(spec.ChartConfig, result.Columns),
		})
	}
	return visualizations
}

// summarize makes the second, best-effort model call that formats the top
// rows into a numbered text list. Errors leave the summary empty.
func (a *Analyzer) summarize(ctx context.Context, query string, result *store.Result) string {
	records := result.Records
	if len(records) > a.cfg.SummaryRowLimit {
		records = records[:a.cfg.SummaryRowLimit]
	}

	system, user, err := buildSummaryPrompt(query, records)
	if err != nil {
		slog.Warn("could not build summary prompt", "error", err)
		return ""
	}

	resp, err := a.chain.Complete(ctx, system, user,
		llm.WithTemperature(0.1),
		llm.WithMaxTokens(1500),
	)
	if err != nil {
		slog.Warn("text summary generation failed", "error", err)
		return ""
	}
	return resp.Content
}

// Failure builds the structured error payload returned when the pipeline
// fails fatally: status "failed", the underlying error text, and canned
// recovery suggestions.
func Failure(err error) *apimodels.AnalysisResponse {
	return &apimodels.AnalysisResponse{
		Status:         "failed",
		Answer:         fmt.Sprintf("I encountered an error processing your query: %v", err),
		Error:          err.Error(),
		Visualizations: []apimodels.Visualization{},
		Recommendations: []string{
			"Try rephrasing your question",
			"Use simpler queries like 'Show top 5 customers'",
			"Check if the data exists for your query",
		},
	}
}

func answerWithRowCount(answer string, rowCount int) string {
	if answer == "" {
		answer = "Query completed successfully."
	}
	switch {
	case rowCount == 0:
		return answer
	case rowCount <= 10:
		return fmt.Sprintf("%s\n\nFound %d results.", answer, rowCount)
	default:
		return fmt.Sprintf("%s\n\nFound %d total results (showing top entries).", answer, rowCount)
	}
}

func chartTypeOrDefault(chartType string) string {
	if chartType == "" {
		return "bar"
	}
	return chartType
}

func chartTitleOrDefault(title string, index int) string {
	if title == "" {
		return fmt.Sprintf("Chart %d", index+1)
	}
	return title
}

// chartConfigOrDefault keeps the model's axis/color config when present,
// otherwise derives one from the result's column order.
func chartConfigOrDefault(cfg map[string]any, columns []string) map[string]any {
	if len(cfg) > 0 {
		if _, ok := cfg["color"]; !ok {
			cfg["color"] = defaultChartColor
		}
		return cfg
	}

	xAxis, yAxis := "x", "y"
	if len(columns) > 0 {
		xAxis = columns[0]
	}
	if len(columns) > 1 {
		yAxis = columns[1]
	}
	return map[string]any{
		"xAxis": xAxis,
		"yAxis": yAxis,
		"color": defaultChartColor,
	}
}

func recordsToData(records []store.Record) []map[string]any {
	data := make([]map[string]any, len(records))
	for i, record := range records {
		data[i] = record
	}
	return data
}

func roundSeconds(d time.Duration) float64 {
	return math.Round(d.Seconds()*100) / 100
}
