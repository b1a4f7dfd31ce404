package describe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiGenerator implements Generator using Google's Gemini API.
type GeminiGenerator struct {
	client  *genai.Client
	modelID string
}

// NewGeminiGenerator creates a Gemini-backed generator.
func NewGeminiGenerator(ctx context.Context, apiKey, modelID string) (*GeminiGenerator, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("describe: gemini api key is required")
	}
	if strings.TrimSpace(modelID) == "" {
		modelID = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("describe: failed to create gemini client: %w", err)
	}

	return &GeminiGenerator{client: client, modelID: modelID}, nil
}

// Close releases the underlying API client.
func (g *GeminiGenerator) Close() error {
	return g.client.Close()
}

// descriptionResponse is the JSON shape the model is constrained to return.
type descriptionResponse struct {
	Description string `json:"description"`
}

// Describe asks the model for a single-sentence service description. The
// response is constrained to a JSON object with one "description" field.
func (g *GeminiGenerator) Describe(ctx context.Context, businessName, serviceName string) (string, error) {
	model := g.client.GenerativeModel(g.modelID)
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"description": {Type: genai.TypeString},
		},
		Required: []string{"description"},
	}

	prompt := fmt.Sprintf(
		"Write a short, professional, and catchy 1-sentence description for a %s service at a business called %s.",
		serviceName, businessName,
	)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("describe: generate content: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("describe: empty response from model")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}

	var parsed descriptionResponse
	if err := json.Unmarshal([]byte(sb.String()), &parsed); err != nil {
		return "", fmt.Errorf("describe: parse model response: %w", err)
	}
	if strings.TrimSpace(parsed.Description) == "" {
		return "", errors.New("describe: model returned empty description")
	}

	return parsed.Description, nil
}
