package services

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/KatrinaAgni/ankAsa-Career/internal/models"
)

// GeminiService is the adapter boundary to the hosted model. One call in,
// one raw JSON document out; no retries.
type GeminiService interface {
	GenerateJSON(ctx context.Context, prompt string, attachment *models.DataURI, schema *genai.Schema) (string, error)
}

type geminiService struct {
	client    *genai.Client
	modelName string
}

func NewGeminiService(apiKey, modelName string) (GeminiService, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiService{
		client:    client,
		modelName: modelName,
	}, nil
}

// GenerateJSON implements GeminiService. The prompt travels as a text part;
// an optional binary attachment rides alongside it as inline data. The
// declared schema constrains the model to a single structured JSON reply.
func (g *geminiService) GenerateJSON(ctx context.Context, prompt string, attachment *models.DataURI, schema *genai.Schema) (string, error) {
	temperature := float32(0.3)
	config := &genai.GenerateContentConfig{
		Temperature:      &temperature,
		MaxOutputTokens:  4096,
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	}

	parts := []*genai.Part{genai.NewPartFromText(prompt)}
	if attachment != nil {
		parts = append(parts, &genai.Part{
			InlineData: &genai.Blob{
				MIMEType: attachment.MediaType,
				Data:     attachment.Data,
			},
		})
	}

	contents := []*genai.Content{{
		Role:  genai.RoleUser,
		Parts: parts,
	}}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, contents, config)
	if err != nil {
		return "", &InvocationError{Err: err}
	}

	if resp == nil {
		return "", &OutputShapeError{Err: fmt.Errorf("no response generated (nil response)")}
	}

	text := resp.Text()
	if text == "" {
		return "", &OutputShapeError{Err: fmt.Errorf("no text content in response")}
	}

	return text, nil
}
