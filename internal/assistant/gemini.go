package assistant

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

const DefaultModel = "gemini-3-flash-preview"

// ErrEmptyReply — модель ответила без текста
var ErrEmptyReply = errors.New("empty reply from model")

// GeminiGenerator вызывает Gemini API один раз на запрос
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

// NewGeminiGenerator создаёт клиент Gemini
func NewGeminiGenerator(ctx context.Context, apiKey, model string) (*GeminiGenerator, error) {
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &GeminiGenerator{client: client, model: model}, nil
}

// Generate отправляет prompt одним сообщением пользователя
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", ErrEmptyReply
	}
	return text, nil
}

// ErrNoCredential возвращает офлайн-генератор, когда API ключ
// не задан
var ErrNoCredential = errors.New("assistant credential is not configured")

// Unavailable всегда падает, поэтому каждый запрос получает fallback
func Unavailable() Generator {
	return GeneratorFunc(func(context.Context, string) (string, error) {
		return "", ErrNoCredential
	})
}
