// Package llm exposes the OpenAI-compatible chat endpoint behind the small
// text-generation surface the services need. Availability is decided once
// at process start: a process either runs with a model or stays in template
// mode for its whole lifetime.
package llm

import (
	"context"

	"github.com/matisaar/T661-Checker/config"
)

// GenerateOptions are per-call sampling knobs. Zero values fall back to the
// model's configured defaults.
type GenerateOptions struct {
	MaxTokens   int
	Temperature float32
}

// Capability is the generation surface injected into services. Callers
// treat a nil Capability as "no model": they must route to templates and
// never probe again mid-session.
type Capability interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string, opts GenerateOptions) (string, error)
}

// Load builds the chat model from config. It returns a nil Capability and
// a diagnostic reason when no model can be used; that is a mode downgrade,
// not an error.
func Load(cfg *config.Config) (Capability, string) {
	if cfg.LLM.APIKey == "" {
		return nil, "no API key configured; set OPENAI_API_KEY or llm.api_key"
	}

	cm, err := NewChatModel(cfg)
	if err != nil {
		return nil, err.Error()
	}
	return cm, ""
}
