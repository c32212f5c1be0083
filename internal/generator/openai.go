package generator

import (
	"context"
	"errors"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
)

type openAIProvider struct {
	name   string
	client openai.Client
	model  string
	native bool
}

// NewOpenAIProvider talks to an OpenAI-compatible chat completions API. When
// native is false the request schema is never sent and the model answers in
// free-form text.
func NewOpenAIProvider(name, apiKey, baseURL, model string, native bool) Provider {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	return &openAIProvider{
		name:   name,
		client: openai.NewClient(opts...),
		model:  model,
		native: native,
	}
}

func (p *openAIProvider) Name() string {
	return p.name
}

func (p *openAIProvider) Complete(ctx context.Context, req Request) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(p.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(req.System),
			openai.UserMessage(req.User),
		},
	}

	if p.native && req.Schema != nil {
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{
				JSONSchema: openai.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:   "video_content",
					Schema: req.Schema,
					Strict: openai.Bool(false),
				},
			},
		}
	}

	resp, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", &BackendError{Provider: p.name, Err: err}
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", &BackendError{Provider: p.name, Err: errors.New("empty response")}
	}

	return resp.Choices[0].Message.Content, nil
}
