package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/lshigami/certprep/config"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

// TextGenerator turns a prompt into free text. Every failure is a *GenerationError.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type geminiTextGenerator struct {
	client *genai.GenerativeModel
	cfg    *config.Config
}

// NewGeminiTextGenerator returns a disabled generator when GEMINI_API_KEY is empty.
func NewGeminiTextGenerator(cfg *config.Config) (TextGenerator, error) {
	if cfg.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. Exam analysis will be skipped.")
		return &geminiTextGenerator{cfg: cfg, client: nil}, nil
	}
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	model := client.GenerativeModel(cfg.GeminiModel)
	return &geminiTextGenerator{client: model, cfg: cfg}, nil
}

func (g *geminiTextGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if g.client == nil {
		return "", &GenerationError{Reason: "gemini client not initialized"}
	}

	resp, err := g.client.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Error().Err(err).Str("model", g.cfg.GeminiModel).Msg("Generate: Gemini API error")
		return "", &GenerationError{Reason: "gemini api call", Err: err}
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		log.Warn().Msg("Generate: Gemini returned no candidates or parts in response")
		return "", &GenerationError{Reason: "gemini returned no content"}
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			text.WriteString(string(txt))
		}
	}

	out := strings.TrimSpace(text.String())
	if out == "" {
		return "", &GenerationError{Reason: "gemini returned no text content"}
	}
	return out, nil
}
