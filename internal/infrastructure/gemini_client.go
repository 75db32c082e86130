package infrastructure

import (
	"context"
	"fmt"

	"project_travelSafe/internal/config"
	"project_travelSafe/internal/entities"
	apperrors "project_travelSafe/internal/errors"
	"project_travelSafe/internal/interfaces"

	"google.golang.org/genai"
)

// GeminiClient implements interfaces.AIClient against the Gemini API.
type GeminiClient struct {
	client *genai.Client
	model  string
	gen    *genai.GenerateContentConfig
}

func NewGeminiClient(ctx context.Context, apiKey, model string, gen config.GenerationConfig) (interfaces.AIClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &GeminiClient{
		client: client,
		model:  model,
		gen: &genai.GenerateContentConfig{
			Temperature:     genai.Ptr[float32](gen.Temperature),
			TopP:            genai.Ptr[float32](gen.TopP),
			TopK:            genai.Ptr[float32](gen.TopK),
			MaxOutputTokens: gen.MaxOutputTokens,
		},
	}, nil
}

// SendTurn forwards the full history in order. Assistant messages are
// relabeled to the "model" role Gemini expects.
func (g *GeminiClient) SendTurn(ctx context.Context, history []entities.Message) (string, error) {
	contents := make([]*genai.Content, 0, len(history))
	for _, msg := range history {
		var role genai.Role = genai.RoleUser
		if msg.Role == entities.RoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(msg.Content, role))
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, g.gen)
	if err != nil {
		return "", apperrors.NewModelError(err)
	}

	text := resp.Text()
	if text == "" {
		return "", apperrors.NewModelError(fmt.Errorf("empty model response"))
	}
	return text, nil
}
