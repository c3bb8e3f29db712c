package apimodels

// AnalysisResponse is the full answer to one natural language query.
type AnalysisResponse struct {
	// "complete" or "failed"
	Status string `json:"status"`

	// Natural language answer, with a row-count suffix appended
	Answer string `json:"answer"`

	// Detailed per-row text formatting of the top results, best effort
	TextSummary string `json:"text_summary,omitempty"`

	// The primary SQL statement that was executed
	SQLQuery string `json:"sql_query"`

	// Chart-ready series; one entry per visualization query that succeeded
	Visualizations []Visualization `json:"visualizations"`

	// Follow-up suggestions from the model (or canned recovery hints on failure)
	Recommendations []string `json:"recommendations"`

	// Rows returned by the primary query
	RowCount int `json:"row_count"`

	// Wall-clock pipeline duration in seconds
	ExecutionTime float64 `json:"execution_time"`

	// Session the result was stored under, for chart-conversion follow-ups
	SessionID string `json:"session_id,omitempty"`

	// Underlying error text when Status is "failed"
	Error string `json:"error,omitempty"`
}

// Visualization is one renderable chart: a type tag, a title, normalized
// data records, and an axis/color configuration for the frontend.
type Visualization struct {
	Type   string           `json:"type"`
	Title  string           `json:"title"`
	Data   []map[string]any `json:"data"`
	Config map[string]any   `json:"config"`
}

// StreamEvent is one server-sent event frame on the streaming endpoint.
type StreamEvent struct {
	Status  string            `json:"status"`
	Message string            `json:"message,omitempty"`
	Error   string            `json:"error,omitempty"`
	Result  *AnalysisResponse `json:"result,omitempty"`
}
