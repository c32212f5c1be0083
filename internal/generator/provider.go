package generator

import (
	"context"

	"github.com/nguyentantai21042004/vidkit/internal/config"
)

// SelectProvider is the default ProviderFactory.
func SelectProvider(ctx context.Context, gen config.GenerationConfig) (Provider, error) {
	name := gen.ResolveProvider()
	model := gen.ModelFor(name)

	switch name {
	case config.ProviderOpenAI:
		return NewOpenAIProvider(config.ProviderOpenAI, gen.OpenAI.APIKey, gen.OpenAI.BaseURL, model, true), nil
	case config.ProviderGemini:
		return NewGeminiProvider(gen.Gemini.APIKey, gen.Gemini.BaseURL, model), nil
	default:
		return NewOpenAIProvider(config.ProviderOllama, gen.Ollama.APIKey, gen.Ollama.BaseURL, model, false), nil
	}
}
