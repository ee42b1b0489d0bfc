package domain

import (
	"context"
)

// SchemaType names a JSON value type in a response schema.
type SchemaType string

const (
	SchemaObject SchemaType = "object"
	SchemaArray  SchemaType = "array"
	SchemaString SchemaType = "string"
)

// Schema describes the JSON shape a generator is asked to return.
type Schema struct {
	Type       SchemaType
	Properties map[string]*Schema
	Items      *Schema
	Required   []string
}

// JSON renders the schema as a JSON-schema document.
func (s *Schema) JSON() map[string]interface{} {
	if s == nil {
		return nil
	}
	out := map[string]interface{}{"type": string(s.Type)}
	if len(s.Properties) > 0 {
		props := make(map[string]interface{}, len(s.Properties))
		for name, prop := range s.Properties {
			props[name] = prop.JSON()
		}
		out["properties"] = props
	}
	if s.Items != nil {
		out["items"] = s.Items.JSON()
	}
	if len(s.Required) > 0 {
		out["required"] = s.Required
	}
	return out
}

// Attachment is binary content sent alongside the prompt.
type Attachment struct {
	MediaType string
	Data      []byte
}

// GenerationRequest is one call to a generative backend.
type GenerationRequest struct {
	Prompt     string
	Attachment *Attachment
	// Schema asks for schema-constrained JSON output when the backend supports it.
	Schema *Schema
	// SearchGrounded asks for web-search-augmented generation. Backends without a search tool ignore it.
	SearchGrounded bool
}

// ContentGenerator submits a prompt to a generative AI service and returns its text reply.
type ContentGenerator interface {
	Generate(ctx context.Context, req GenerationRequest) (string, error)
}

// QuizGateway turns a topic or document into a validated quiz.
type QuizGateway interface {
	// GenerateQuiz makes exactly one call to the generator and never returns a partial quiz.
	GenerateQuiz(ctx context.Context, source QuizSource, questionCount int) (Quiz, error)

	// TrendingTopics returns topic suggestions; ok is false on any failure.
	TrendingTopics(ctx context.Context) (topics []string, ok bool)
}
