package validation

import (
	"encoding/json"
	"fmt"
	"strings"

	"samayak/internal/domain"

	"github.com/samber/lo"
	"github.com/xeipuuv/gojsonschema"
)

// questionSchema is stricter than the schema sent to the model: it pins the option count.
const questionSchema = `{
	"type": "object",
	"properties": {
		"question": {"type": "string", "minLength": 1},
		"options": {"type": "array", "items": {"type": "string"}, "minItems": 4, "maxItems": 4},
		"correctAnswer": {"type": "string", "minLength": 1},
		"explanation": {"type": "string"},
		"sources": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {
					"title": {"type": "string"},
					"uri": {"type": "string"}
				}
			}
		}
	},
	"required": ["question", "options", "correctAnswer", "explanation"]
}`

// QuestionValidator re-checks generated questions against the contract the model was asked to honour.
type QuestionValidator struct {
	schema *gojsonschema.Schema
}

// NewQuestionValidator compiles the question schema.
func NewQuestionValidator() (*QuestionValidator, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(questionSchema))
	if err != nil {
		return nil, fmt.Errorf("compile question schema: %w", err)
	}
	return &QuestionValidator{schema: schema}, nil
}

// ValidateRaw checks the raw JSON of one question.
func (v *QuestionValidator) ValidateRaw(raw json.RawMessage) error {
	result, err := v.schema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	if !result.Valid() {
		msgs := lo.Map(result.Errors(), func(e gojsonschema.ResultError, _ int) string {
			return e.String()
		})
		return fmt.Errorf("question failed schema validation: %s", strings.Join(msgs, "; "))
	}
	return nil
}

// ValidateQuestion checks invariants the schema cannot express.
func (v *QuestionValidator) ValidateQuestion(q domain.Question) error {
	if !lo.Contains(q.Options, q.CorrectAnswer) {
		return fmt.Errorf("correct answer %q is not one of the options", q.CorrectAnswer)
	}
	if len(lo.Uniq(q.Options)) != len(q.Options) {
		return fmt.Errorf("options contain duplicates")
	}
	return nil
}
