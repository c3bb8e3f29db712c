package llm

import "context"

type Provider interface {
	// Complete sends one system+user prompt pair and returns the raw
	// model output
	Complete(ctx context.Context, system, user string, opts ...Option) (*Response, error)
}

type Usage struct {
	PromptTokens     int64
	CompletionTokens int64
	TotalTokens      int64
}

type Option func(*Options)

type Options struct {
	Model           string
	MaxTokens       int64
	Temperature     float64
	ReasoningEffort string
	JSONOnly        bool
}

func WithModel(model string) Option {
	return func(o *Options) { o.Model = model }
}

func WithMaxTokens(n int64) Option {
	return func(o *Options) { o.MaxTokens = n }
}

func WithTemperature(t float64) Option {
	return func(o *Options) { o.Temperature = t }
}

// WithReasoningEffort sets the coarse difficulty tier ("minimal", "low",
// "medium", "high") passed to models that accept one.
func WithReasoningEffort(effort string) Option {
	return func(o *Options) { o.ReasoningEffort = effort }
}

// WithJSONMode forces the json_object response format so the model returns
// a bare JSON document instead of prose.
func WithJSONMode() Option {
	return func(o *Options) { o.JSONOnly = true }
}

// Response is the raw text result of one completion call.
type Response struct {
	Content string
	Model   string
	Usage   Usage
}
