package llm

import (
	"context"
	"errors"
	"testing"

	"samayak/internal/config"
	"samayak/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
)

type stubModel struct {
	reply    *llms.ContentResponse
	err      error
	messages []llms.MessageContent
	options  llms.CallOptions
}

func (m *stubModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	m.messages = messages
	for _, opt := range options {
		opt(&m.options)
	}
	return m.reply, m.err
}

func (m *stubModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, m, prompt, options...)
}

func reply(text string) *llms.ContentResponse {
	return &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: text}}}
}

func TestGenerator_Generate(t *testing.T) {
	model := &stubModel{reply: reply("<think>let me see</think>\n{\"topics\":[\"a\"]}")}
	g := NewGenerator(model, 0.3)

	out, err := g.Generate(context.Background(), domain.GenerationRequest{
		Prompt: "List topics",
		Schema: &domain.Schema{Type: domain.SchemaObject, Properties: map[string]*domain.Schema{
			"topics": {Type: domain.SchemaArray, Items: &domain.Schema{Type: domain.SchemaString}},
		}},
	})

	require.NoError(t, err)
	assert.Equal(t, `{"topics":["a"]}`, out)
	assert.True(t, model.options.JSONMode)
	assert.InDelta(t, 0.3, model.options.Temperature, 0.0001)

	require.Len(t, model.messages, 1)
	assert.Equal(t, llms.ChatMessageTypeHuman, model.messages[0].Role)
	require.Len(t, model.messages[0].Parts, 1)
	text, ok := model.messages[0].Parts[0].(llms.TextContent)
	require.True(t, ok)
	assert.Contains(t, text.Text, "List topics")
	assert.Contains(t, text.Text, `"topics"`)
}

func TestGenerator_GenerateWithAttachment(t *testing.T) {
	model := &stubModel{reply: reply(`{"quiz":[]}`)}
	g := NewGenerator(model, 0.7)

	_, err := g.Generate(context.Background(), domain.GenerationRequest{
		Prompt:     "quiz me",
		Attachment: &domain.Attachment{MediaType: domain.MediaTypePDF, Data: []byte("%PDF")},
	})

	require.NoError(t, err)
	require.Len(t, model.messages[0].Parts, 2)
	bin, ok := model.messages[0].Parts[0].(llms.BinaryContent)
	require.True(t, ok)
	assert.Equal(t, domain.MediaTypePDF, bin.MIMEType)
	assert.False(t, model.options.JSONMode)
}

func TestGenerator_GenerateErrors(t *testing.T) {
	g := NewGenerator(&stubModel{err: errors.New("connection refused")}, 0.7)
	_, err := g.Generate(context.Background(), domain.GenerationRequest{Prompt: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")

	g = NewGenerator(&stubModel{err: context.DeadlineExceeded}, 0.7)
	_, err = g.Generate(context.Background(), domain.GenerationRequest{Prompt: "x"})
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	g = NewGenerator(&stubModel{reply: &llms.ContentResponse{}}, 0.7)
	_, err = g.Generate(context.Background(), domain.GenerationRequest{Prompt: "x"})
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestNewFromConfig_UnsupportedProvider(t *testing.T) {
	cfg := &config.Config{LLM: config.LLMConfig{Provider: config.ProviderGemini, Model: "gemini-2.5-flash"}}
	_, err := NewFromConfig(cfg, nil)
	assert.Error(t, err)
}
