package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"google.golang.org/genai"

	"bar-bike/logx"
)

const (
	PitchUnavailable = "תיאור לא זמין כרגע."
	PitchFallback    = "חווה את חופש הרכיבה ברמה חדשה לגמרי."

	pitchCachePrefix = "product_pitch_"
	pitchCacheTTL    = 24 * time.Hour
)

// TextGenerator produces free text for a prompt.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

type GeminiGenerator struct {
	client *genai.Client
	model  string
}

func NewGeminiGenerator(ctx context.Context, apiKey, model string) (*GeminiGenerator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating Gemini client: %w", err)
	}
	return &GeminiGenerator{client: client, model: model}, nil
}

func (g *GeminiGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

// PitchService writes short marketing lines for products. It never fails:
// generator errors and a missing generator both produce a canned sentence.
type PitchService struct {
	generator TextGenerator
	cache     *redis.Client
	timeout   time.Duration
}

func NewPitchService(generator TextGenerator, cache *redis.Client, timeout time.Duration) *PitchService {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &PitchService{
		generator: generator,
		cache:     cache,
		timeout:   timeout,
	}
}

func PitchPrompt(name, category string) string {
	return fmt.Sprintf(
		"Write a short, exciting, and persuasive sales pitch (max 40 words) in Hebrew for a bicycle named %q which is in the %q category. Focus on lifestyle and freedom. No markdown, just text.",
		name, category,
	)
}

func (s *PitchService) Generate(ctx context.Context, name, category string) string {
	if s.generator == nil {
		return PitchFallback
	}

	key := pitchCachePrefix + category + "_" + name
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, key).Result(); err == nil && cached != "" {
			return cached
		}
	}

	genCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	text, err := s.generator.GenerateText(genCtx, PitchPrompt(name, category))
	if err != nil {
		logx.Error().Err(err).Str("product", name).Msg("Error generating content")
		return PitchFallback
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return PitchUnavailable
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, text, pitchCacheTTL).Err(); err != nil {
			logx.Warn().Err(err).Msg("pitch cache write failed")
		}
	}
	return text
}
