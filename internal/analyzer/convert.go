package analyzer

import (
	"fmt"
	"strings"

	"salesql/apimodels"
)

// Phrases that ask for the previous result re-rendered as another chart
// type rather than a fresh analysis.
var conversionPhrases = []string{
	"pie chart for this", "convert to pie", "make it pie", "show as pie", "give me pie",
	"bar chart for this", "convert to bar", "make it bar", "show as bar",
	"line chart for this", "convert to line", "make it line", "show as line",
}

// conversionChartType reports whether the query is a chart-conversion
// follow-up and which chart type it asks for.
func conversionChartType(query string) (string, bool) {
	lower := strings.ToLower(query)

	matched := false
	for _, phrase := range conversionPhrases {
		if strings.Contains(lower, phrase) {
			matched = true
			break
		}
	}
	if !matched {
		return "", false
	}

	switch {
	case strings.Contains(lower, "pie"):
		return "pie", true
	case strings.Contains(lower, "line"):
		return "line", true
	case strings.Contains(lower, "bar"):
		return "bar", true
	default:
		return "pie", true
	}
}

// convertLast re-tags the session's previous visualization with the
// requested chart type. No model call, no query execution.
func (a *Analyzer) convertLast(sessionID, chartType string) (*apimodels.AnalysisResponse, bool) {
	previous, ok := a.sessions.Last(sessionID)
	if !ok || len(previous) == 0 {
		return nil, false
	}

	last := previous[0]
	converted := apimodels.Visualization{
		Type:   chartType,
		Title:  last.Title,
		Data:   last.Data,
		Config: last.Config,
	}

	a.sessions.Put(sessionID, []apimodels.Visualization{converted})

	return &apimodels.AnalysisResponse{
		Status:          "complete",
		Answer:          fmt.Sprintf("Here's the same data as a %s chart:", chartType),
		Visualizations:  []apimodels.Visualization{converted},
		Recommendations: []string{},
		RowCount:        len(converted.Data),
		SessionID:       sessionID,
	}, true
}
