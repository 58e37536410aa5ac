package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"talent-match/internal/logger"
)

// EmbeddingService is the text-embedding collaborator: deterministic
// fixed-dimension vectors for identical input.
type EmbeddingService interface {
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
}

// Entity is one span the entity-recognition collaborator found.
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// EntityRecognizer is the named-entity-recognition collaborator. Labels of
// interest are PERSON, ORG and PRODUCT.
type EntityRecognizer interface {
	RecognizeEntities(ctx context.Context, text string) ([]Entity, error)
}

type GeminiService interface {
	EmbeddingService
	EntityRecognizer
}

type geminiService struct {
	client        *genai.Client
	embedModel    string
	nerModel      string
	promptBuilder *PromptBuilder
	maxRetries    int
}

func NewGeminiService(apiKey, embedModel, nerModel string) (GeminiService, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiService{
		client:        client,
		embedModel:    embedModel,
		nerModel:      nerModel,
		promptBuilder: NewPromptBuilder(),
		maxRetries:    3,
	}, nil
}

// GenerateEmbedding implements EmbeddingService.
func (g *geminiService) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	// Truncate text if too long (max ~10000 tokens for embedding)
	if len(text) > 40000 {
		text = text[:40000]
	}

	result, err := g.client.Models.EmbedContent(ctx, g.embedModel, genai.Text(text), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to generate embedding: %w", err)
	}

	if result == nil || len(result.Embeddings) == 0 {
		return nil, fmt.Errorf("empty embedding result")
	}

	return result.Embeddings[0].Values, nil
}

// RecognizeEntities implements EntityRecognizer.
func (g *geminiService) RecognizeEntities(ctx context.Context, text string) ([]Entity, error) {
	prompt := g.promptBuilder.BuildEntityExtractionPrompt(text)

	response, err := g.generateTextWithRetry(ctx, prompt, 0.0, g.maxRetries)
	if err != nil {
		return nil, fmt.Errorf("failed to recognize entities: %w", err)
	}

	var entities []Entity
	if err := json.Unmarshal([]byte(extractJSON(response)), &entities); err != nil {
		return nil, fmt.Errorf("failed to parse entity response: %w", err)
	}

	out := entities[:0]
	for _, ent := range entities {
		ent.Text = strings.TrimSpace(ent.Text)
		ent.Label = strings.ToUpper(strings.TrimSpace(ent.Label))
		if ent.Text == "" || ent.Label == "" {
			continue
		}
		out = append(out, ent)
	}
	return out, nil
}

func (g *geminiService) generateText(ctx context.Context, prompt string, temperature float32) (string, error) {
	config := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: 4096,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.nerModel, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("failed to generate text: %w", err)
	}
	if resp == nil {
		return "", fmt.Errorf("no response generated (nil response)")
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("no text content in response")
	}
	return text, nil
}

func (g *geminiService) generateTextWithRetry(ctx context.Context, prompt string, temperature float32, maxRetries int) (string, error) {
	var lastErr error

	for attempt := 1; attempt <= maxRetries; attempt++ {
		result, err := g.generateText(ctx, prompt, temperature)
		if err == nil {
			return result, nil
		}
		lastErr = err

		select {
		case <-ctx.Done():
			return "", fmt.Errorf("context cancelled: %w", ctx.Err())
		default:
		}

		if attempt < maxRetries {
			logger.Warn().Err(err).Int("attempt", attempt).Msg("gemini call failed, retrying")
		}
	}

	return "", fmt.Errorf("failed after %d attempts: %w", maxRetries, lastErr)
}

// extractJSON tries to extract JSON from text that might contain markdown or other formatting
func extractJSON(text string) string {
	// Remove markdown code blocks
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	// Find JSON object or array boundaries
	startObj := strings.Index(text, "{")
	startArr := strings.Index(text, "[")
	endObj := strings.LastIndex(text, "}")
	endArr := strings.LastIndex(text, "]")

	if startArr != -1 && endArr != -1 && endArr > startArr {
		return text[startArr : endArr+1]
	} else if startObj != -1 && endObj != -1 && endObj > startObj {
		return text[startObj : endObj+1]
	}

	return text
}
