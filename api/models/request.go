package models

type AnalysisRequest struct {
	// Query is the natural language question about the CRM data
	Query string `json:"query"`

	// SessionID ties follow-up requests (e.g. "convert to pie chart")
	// to this client's previous result. Assigned by the server when empty.
	SessionID string `json:"session_id,omitempty"`

	// Optional parameters to control analysis behavior
	Options AnalysisOptions `json:"options,omitempty"`
}

type AnalysisOptions struct {
	// Model overrides the primary model tier (e.g. "gpt-4-turbo-preview")
	Model string `json:"model,omitempty"`

	// MaxTokens limits the LLM response length
	MaxTokens int64 `json:"maxTokens,omitempty"`

	// Temperature controls randomness (0.0-1.0)
	Temperature float64 `json:"temperature,omitempty"`

	// DeepReasoning forces the high reasoning-effort tier
	DeepReasoning bool `json:"deepReasoning,omitempty"`
}
