package gateway

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"google.golang.org/genai"
)

// DefaultModel is used when no generative model is configured.
const DefaultModel = "gemini-2.0-flash"

// ErrEmptyExplanation is returned when the model answers without any text.
var ErrEmptyExplanation = errors.New("generative model returned no text")

// Explainer turns a code snippet into a prose explanation.
type Explainer interface {
	Explain(ctx context.Context, language, code string) (string, error)
}

// GenAIExplainer asks a Gemini model to explain code.
type GenAIExplainer struct {
	client *genai.Client
	model  string
	logger zerolog.Logger
}

// NewGenAIExplainer creates an explainer backed by the Gemini API.
func NewGenAIExplainer(ctx context.Context, apiKey, model string, logger zerolog.Logger) (*GenAIExplainer, error) {
	if model == "" {
		model = DefaultModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create generative-language client: %w", err)
	}
	return &GenAIExplainer{
		client: client,
		model:  model,
		logger: logger,
	}, nil
}

func (e *GenAIExplainer) Explain(ctx context.Context, language, code string) (string, error) {
	e.logger.Debug().Str("model", e.model).Int("bytes", len(code)).Msg("requesting code explanation")
	resp, err := e.client.Models.GenerateContent(ctx, e.model, genai.Text(explainPrompt(language, code)), nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate explanation: %w", err)
	}
	text := resp.Text()
	if text == "" {
		return "", ErrEmptyExplanation
	}
	return text, nil
}

func explainPrompt(language, code string) string {
	subject := "code"
	if language != "" {
		subject = language + " code"
	}
	return fmt.Sprintf(
		"Explain what this %s does for a developer reading a portfolio. "+
			"Be concise and mention the key idea and any notable edge cases.\n\n```\n%s\n```",
		subject, code)
}
