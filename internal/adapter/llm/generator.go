package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"samayak/internal/config"
	"samayak/internal/domain"
	"samayak/internal/logger"
	"samayak/internal/util"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"
)

// ErrEmptyResponse is returned when the model produced no choices.
var ErrEmptyResponse = errors.New("llm returned no content")

// Generator implements domain.ContentGenerator over any langchaingo model.
// Replies are requested in JSON mode and the response schema is spelled out in the prompt.
type Generator struct {
	model       llms.Model
	temperature float64
}

// NewGenerator wraps an existing langchaingo model.
func NewGenerator(model llms.Model, temperature float64) *Generator {
	return &Generator{model: model, temperature: temperature}
}

// NewFromConfig builds the model selected by cfg.LLM.Provider.
func NewFromConfig(cfg *config.Config, httpClient *http.Client) (*Generator, error) {
	var (
		model llms.Model
		err   error
	)
	switch cfg.LLM.Provider {
	case config.ProviderOllama:
		model, err = ollama.New(
			ollama.WithServerURL(cfg.Ollama.ServerURL),
			ollama.WithModel(cfg.LLM.Model),
			ollama.WithHTTPClient(httpClient),
		)
	case config.ProviderOpenAI:
		model, err = openai.New(
			openai.WithToken(cfg.OpenAI.APIKey),
			openai.WithModel(cfg.LLM.Model),
			openai.WithHTTPClient(httpClient),
		)
	default:
		return nil, fmt.Errorf("provider %q is not served by langchaingo", cfg.LLM.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create %s client: %w", cfg.LLM.Provider, err)
	}
	return NewGenerator(model, cfg.LLM.Temperature), nil
}

// Generate sends a single human message and returns the first choice with <think> blocks removed.
func (g *Generator) Generate(ctx context.Context, req domain.GenerationRequest) (string, error) {
	prompt, err := promptWithSchema(req)
	if err != nil {
		return "", err
	}

	parts := make([]llms.ContentPart, 0, 2)
	if req.Attachment != nil {
		parts = append(parts, llms.BinaryPart(req.Attachment.MediaType, req.Attachment.Data))
	}
	parts = append(parts, llms.TextContent{Text: prompt})

	messages := []llms.MessageContent{{Role: llms.ChatMessageTypeHuman, Parts: parts}}
	opts := []llms.CallOption{llms.WithTemperature(g.temperature)}
	if req.Schema != nil {
		opts = append(opts, llms.WithJSONMode())
	}

	resp, err := g.model.GenerateContent(ctx, messages, opts...)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", fmt.Errorf("LLM request timed out: %w", err)
		}
		return "", fmt.Errorf("LLM call failed: %w", err)
	}
	if resp == nil || len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}

	text := strings.TrimSpace(util.StripThinkBlocks(resp.Choices[0].Content))
	logger.Get().Debug("LLM reply received", zap.Int("length", len(text)))
	return text, nil
}

func promptWithSchema(req domain.GenerationRequest) (string, error) {
	if req.Schema == nil {
		return req.Prompt, nil
	}
	schemaJSON, err := json.MarshalIndent(req.Schema.JSON(), "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to render response schema: %w", err)
	}
	return fmt.Sprintf("%s\n\nRespond with ONLY a JSON object that conforms to this JSON schema:\n%s", req.Prompt, schemaJSON), nil
}

var _ domain.ContentGenerator = (*Generator)(nil)
