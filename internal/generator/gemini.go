package generator

import (
	"context"
	"errors"
	"fmt"

	"github.com/invopop/jsonschema"
	"google.golang.org/genai"
)

type geminiProvider struct {
	apiKey  string
	baseURL string
	model   string
}

// NewGeminiProvider uses the Gemini API. A request schema is passed as a
// native response schema.
func NewGeminiProvider(apiKey, baseURL, model string) Provider {
	return &geminiProvider{
		apiKey:  apiKey,
		baseURL: baseURL,
		model:   model,
	}
}

func (p *geminiProvider) Name() string {
	return "gemini"
}

func (p *geminiProvider) Complete(ctx context.Context, req Request) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      p.apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: p.baseURL},
	})
	if err != nil {
		return "", &BackendError{Provider: p.Name(), Err: fmt.Errorf("create client: %w", err)}
	}

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(req.System, genai.RoleUser),
	}
	if req.Schema != nil {
		cfg.ResponseMIMEType = "application/json"
		cfg.ResponseSchema = toGenaiSchema(req.Schema)
	}

	result, err := client.Models.GenerateContent(ctx, p.model, genai.Text(req.User), cfg)
	if err != nil {
		return "", &BackendError{Provider: p.Name(), Err: fmt.Errorf("generate content: %w", err)}
	}

	if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
		var text string
		for _, part := range result.Candidates[0].Content.Parts {
			if part.Text != "" {
				text += part.Text
			}
		}
		if text != "" {
			return text, nil
		}
	}

	return "", &BackendError{Provider: p.Name(), Err: errors.New("empty response from Gemini")}
}

// toGenaiSchema converts the subset of JSON Schema produced by reflecting the
// output types.
func toGenaiSchema(s *jsonschema.Schema) *genai.Schema {
	if s == nil {
		return nil
	}

	out := &genai.Schema{
		Description: s.Description,
		Required:    s.Required,
	}

	switch s.Type {
	case "object":
		out.Type = genai.TypeObject
	case "array":
		out.Type = genai.TypeArray
	case "string":
		out.Type = genai.TypeString
	case "integer":
		out.Type = genai.TypeInteger
	case "number":
		out.Type = genai.TypeNumber
	case "boolean":
		out.Type = genai.TypeBoolean
	}

	out.MinLength = toInt64(s.MinLength)
	out.MaxLength = toInt64(s.MaxLength)
	out.MinItems = toInt64(s.MinItems)
	out.MaxItems = toInt64(s.MaxItems)

	if s.Items != nil {
		out.Items = toGenaiSchema(s.Items)
	}

	if s.Properties != nil && s.Properties.Len() > 0 {
		out.Properties = make(map[string]*genai.Schema, s.Properties.Len())
		for pair := s.Properties.Oldest(); pair != nil; pair = pair.Next() {
			out.Properties[pair.Key] = toGenaiSchema(pair.Value)
			out.PropertyOrdering = append(out.PropertyOrdering, pair.Key)
		}
	}

	return out
}

func toInt64(v *uint64) *int64 {
	if v == nil {
		return nil
	}
	n := int64(*v)
	return &n
}
