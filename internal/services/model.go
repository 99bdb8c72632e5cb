package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

var ErrModelNotConfigured = errors.New("language model is not configured")

type GenerationOptions struct {
	Temperature     float32
	TopP            float32
	MaxOutputTokens int32
}

// DefaultGenerationOptions samples moderately and caps output at 512 tokens.
var DefaultGenerationOptions = GenerationOptions{
	Temperature:     0.7,
	TopP:            0.9,
	MaxOutputTokens: 512,
}

type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string, opts GenerationOptions) (string, error)
}

type geminiGenerator struct {
	client    *genai.Client
	modelName string
}

func NewGeminiGenerator(ctx context.Context, apiKey, modelName string) (TextGenerator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiGenerator{
		client:    client,
		modelName: modelName,
	}, nil
}

// GenerateText implements TextGenerator.
func (g *geminiGenerator) GenerateText(ctx context.Context, prompt string, opts GenerationOptions) (string, error) {
	temperature := opts.Temperature
	topP := opts.TopP
	config := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		TopP:            &topP,
		MaxOutputTokens: opts.MaxOutputTokens,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("failed to generate text: %w", err)
	}
	if resp == nil {
		return "", fmt.Errorf("no response generated (nil response)")
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("no text content in response")
	}
	return text, nil
}

// ModelLoader builds a TextGenerator. It is called at most once per successful load.
type ModelLoader func(ctx context.Context) (TextGenerator, error)

func GeminiLoader(apiKey, modelName string) ModelLoader {
	return func(ctx context.Context) (TextGenerator, error) {
		if apiKey == "" {
			return nil, ErrModelNotConfigured
		}
		return NewGeminiGenerator(ctx, apiKey, modelName)
	}
}

// ModelHandle is a lazily initialised, process-lifetime cache of the language
// model. A failed load is not cached; the next caller retries.
type ModelHandle struct {
	mu      sync.Mutex
	load    ModelLoader
	model   TextGenerator
	metrics *Metrics
	log     *zap.Logger
}

// NewModelHandle wraps load. A nil loader yields a handle whose Get always reports
// ErrModelNotConfigured.
func NewModelHandle(load ModelLoader, metrics *Metrics, log *zap.Logger) *ModelHandle {
	if load == nil {
		load = func(context.Context) (TextGenerator, error) {
			return nil, ErrModelNotConfigured
		}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &ModelHandle{
		load:    load,
		metrics: metrics,
		log:     log,
	}
}

func (h *ModelHandle) Get(ctx context.Context) (TextGenerator, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.model != nil {
		return h.model, nil
	}

	model, err := h.load(ctx)
	if err != nil {
		h.metrics.RecordModelLoad("failed")
		return nil, fmt.Errorf("failed to load language model: %w", err)
	}

	h.metrics.RecordModelLoad("loaded")
	h.log.Info("language model loaded")
	h.model = model
	return model, nil
}

func (h *ModelHandle) Loaded() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.model != nil
}
