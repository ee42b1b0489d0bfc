package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"samayak/internal/config"
	"samayak/internal/domain"

	"cloud.google.com/go/auth/oauth2adapt"
	"go.uber.org/zap"
	"golang.org/x/oauth2/google"
	"google.golang.org/genai"
)

const jsonMIMEType = "application/json"

var adcScopes = []string{"https://www.googleapis.com/auth/cloud-platform"}

// ErrEmptyResponse is returned when the model produced no text.
var ErrEmptyResponse = errors.New("gemini returned no content")

// Generator implements domain.ContentGenerator on top of the Gemini API.
type Generator struct {
	client      *genai.Client
	modelName   string
	temperature float32
	logger      *zap.Logger
}

// NewGenerator creates a Gemini client authenticated with an API key or, when
// cfg.UseADC is set, with Application Default Credentials against Vertex AI.
func NewGenerator(ctx context.Context, cfg config.GeminiConfig, llmCfg config.LLMConfig, logger *zap.Logger) (*Generator, error) {
	if llmCfg.Model == "" {
		return nil, fmt.Errorf("gemini model name cannot be empty")
	}
	cc, err := clientConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	logger.Info("Initialized Gemini generator", zap.String("model", llmCfg.Model), zap.Bool("adc", cfg.UseADC))
	return &Generator{
		client:      client,
		modelName:   llmCfg.Model,
		temperature: float32(llmCfg.Temperature),
		logger:      logger,
	}, nil
}

func clientConfig(ctx context.Context, cfg config.GeminiConfig) (*genai.ClientConfig, error) {
	httpOptions := genai.HTTPOptions{BaseURL: cfg.BaseURL}

	if cfg.UseADC {
		creds, err := google.FindDefaultCredentials(ctx, adcScopes...)
		if err != nil {
			return nil, fmt.Errorf("failed to load application default credentials: %w", err)
		}
		project := cfg.Project
		if project == "" {
			project = creds.ProjectID
		}
		if project == "" {
			return nil, fmt.Errorf("gemini project must be set when using application default credentials")
		}
		return &genai.ClientConfig{
			Backend:     genai.BackendVertexAI,
			Project:     project,
			Location:    cfg.Location,
			Credentials: oauth2adapt.AuthCredentialsFromOauth2Credentials(creds),
			HTTPOptions: httpOptions,
		}, nil
	}

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("Gemini API key cannot be empty")
	}
	return &genai.ClientConfig{
		Backend:     genai.BackendGeminiAPI,
		APIKey:      cfg.APIKey,
		HTTPOptions: httpOptions,
	}, nil
}

// Generate sends one request and returns the concatenated text of the first candidate.
func (g *Generator) Generate(ctx context.Context, req domain.GenerationRequest) (string, error) {
	contents := []*genai.Content{genai.NewContentFromParts(buildParts(req), genai.RoleUser)}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, contents, generateConfig(req, g.temperature))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text, err := responseText(resp)
	if err != nil {
		return "", err
	}
	g.logger.Debug("Gemini reply received",
		zap.Int("length", len(text)),
		zap.Bool("grounded", req.SearchGrounded),
		zap.Int("grounding_chunks", groundingChunkCount(resp)),
	)
	return text, nil
}

// generateConfig maps a request onto Gemini options.
// The API rejects a JSON response schema alongside the search tool, so a grounded
// request relies on the prompt for the JSON layout and on the caller to normalize the reply.
func generateConfig(req domain.GenerationRequest, temperature float32) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{Temperature: genai.Ptr(temperature)}
	if req.SearchGrounded {
		cfg.Tools = []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}}
		return cfg
	}
	if req.Schema != nil {
		cfg.ResponseMIMEType = jsonMIMEType
		cfg.ResponseSchema = toGenaiSchema(req.Schema)
	}
	return cfg
}

// Close is a no-op; the client holds no long-lived connections.
func (g *Generator) Close() error {
	return nil
}

func buildParts(req domain.GenerationRequest) []*genai.Part {
	parts := make([]*genai.Part, 0, 2)
	if req.Attachment != nil {
		parts = append(parts, genai.NewPartFromBytes(req.Attachment.Data, req.Attachment.MediaType))
	}
	return append(parts, genai.NewPartFromText(req.Prompt))
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", ErrEmptyResponse
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", ErrEmptyResponse
	}

	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		if part == nil || part.Thought {
			continue
		}
		sb.WriteString(part.Text)
	}
	if sb.Len() == 0 {
		return "", ErrEmptyResponse
	}
	return sb.String(), nil
}

func groundingChunkCount(resp *genai.GenerateContentResponse) int {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].GroundingMetadata == nil {
		return 0
	}
	return len(resp.Candidates[0].GroundingMetadata.GroundingChunks)
}

func toGenaiSchema(s *domain.Schema) *genai.Schema {
	if s == nil {
		return nil
	}
	out := &genai.Schema{Required: s.Required}
	switch s.Type {
	case domain.SchemaObject:
		out.Type = genai.TypeObject
	case domain.SchemaArray:
		out.Type = genai.TypeArray
	default:
		out.Type = genai.TypeString
	}
	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for name, prop := range s.Properties {
			out.Properties[name] = toGenaiSchema(prop)
		}
	}
	out.Items = toGenaiSchema(s.Items)
	return out
}

var _ domain.ContentGenerator = (*Generator)(nil)
