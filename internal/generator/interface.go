package generator

import (
	"context"

	"github.com/invopop/jsonschema"
	"github.com/nguyentantai21042004/vidkit/internal/config"
	"github.com/nguyentantai21042004/vidkit/internal/schema"
)

// Generator produces validated video content from a transcript.
type Generator interface {
	Generate(ctx context.Context, transcript string) (*schema.Output, error)
}

// Request is one chat-style generation call. A nil Schema asks for free-form
// text; providers without schema support ignore it.
type Request struct {
	System string
	User   string
	Schema *jsonschema.Schema
}

// Provider is a text-generation backend returning the raw response text.
type Provider interface {
	Name() string
	Complete(ctx context.Context, req Request) (string, error)
}

// ProviderFactory picks a provider from the current generation settings.
type ProviderFactory func(ctx context.Context, cfg config.GenerationConfig) (Provider, error)
