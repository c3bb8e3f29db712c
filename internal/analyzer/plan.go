package analyzer

import (
	"encoding/json"
	"errors"
	"fmt"

	"salesql/internal/extract"
)

// ErrMissingSQL means the model returned valid JSON that lacks the one
// required field.
var ErrMissingSQL = errors.New("model response is missing sql_query")

// QueryPlan is the parsed model output: one primary SQL statement, an
// answer, visualization specs, and textual recommendations. Lives for one
// request.
type QueryPlan struct {
	SQLQuery        string              `json:"sql_query"`
	Answer          string              `json:"answer"`
	Visualizations  []VisualizationSpec `json:"visualizations"`
	Recommendations []string            `json:"recommendations"`
}

// VisualizationSpec is one chart the model proposed, before its SQL runs.
type VisualizationSpec struct {
	Type        string         `json:"type"`
	Title       string         `json:"title"`
	SQLForChart string         `json:"sql_for_chart"`
	ChartConfig map[string]any `json:"chart_config"`
}

// parsePlan recovers a QueryPlan from raw model text, tolerating markdown
// fences and surrounding prose.
func parsePlan(raw string) (*QueryPlan, error) {
	data, err := extract.JSON(raw)
	if err != nil {
		return nil, err
	}

	var plan QueryPlan
	if err := json.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("%w: %v", extract.ErrNoJSON, err)
	}

	if plan.SQLQuery == "" {
		return nil, ErrMissingSQL
	}

	return &plan, nil
}
