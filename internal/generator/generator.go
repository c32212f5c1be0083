package generator

import (
	"context"
	"errors"

	"github.com/nguyentantai21042004/vidkit/internal/schema"
)

// Generate asks the configured provider for content and validates it. The
// provider and profile are resolved from the configuration on every call.
func (g *implGenerator) Generate(ctx context.Context, transcript string) (*schema.Output, error) {
	gen := g.cfg.Generation
	profile := gen.ResolveProfile()

	provider, err := g.factory(ctx, gen)
	if err != nil {
		return nil, err
	}

	req := Request{
		System: SystemPrompt(profile),
		User:   UserPrompt(transcript),
	}
	if profile.NativeSchema {
		req.Schema = schema.JSONSchema(profile.IncludeBlog)
	}

	g.logger.Info(ctx, "Generating content via %s (profile %s)", provider.Name(), profile.Name)

	raw, err := provider.Complete(ctx, req)
	if err != nil {
		var berr *BackendError
		if errors.As(err, &berr) {
			return nil, err
		}
		return nil, &BackendError{Provider: provider.Name(), Err: err}
	}

	candidate, err := Extract(raw)
	if err != nil {
		g.logger.Warn(ctx, "Provider %s returned no parseable JSON (%d bytes)", provider.Name(), len(raw))
		return nil, err
	}

	out, err := schema.Validate(candidate, schema.Options{
		RequireBlog:    profile.IncludeBlog,
		StrictChapters: gen.StrictChapters,
	})
	if err != nil {
		return nil, err
	}

	g.logger.Debug(ctx, "Generated content validated: %q", out.YouTube.Title)
	return out, nil
}
