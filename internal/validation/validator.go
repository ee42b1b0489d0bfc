package validation

import (
	"fmt"
	"strings"

	"samayak/internal/domain"
)

// Validator checks generation requests before anything is sent to the AI service.
type Validator struct {
	maxQuestions     int
	maxDocumentBytes int64
}

// NewValidator creates a validator with the given limits.
func NewValidator(maxQuestions int, maxDocumentBytes int64) *Validator {
	return &Validator{
		maxQuestions:     maxQuestions,
		maxDocumentBytes: maxDocumentBytes,
	}
}

// ValidateQuestionCount checks that count is within 1..maxQuestions.
func (v *Validator) ValidateQuestionCount(count int) error {
	if count <= 0 || count > v.maxQuestions {
		return domain.NewInvalidInputError(fmt.Sprintf("question count must be between 1 and %d", v.maxQuestions)).
			WithContext("field", "count").
			WithContext("value", count)
	}
	return nil
}

// ValidateSource checks a topic or document source.
func (v *Validator) ValidateSource(source domain.QuizSource) error {
	if source.IsDocument() {
		return v.validateDocument(source)
	}
	if strings.TrimSpace(source.Topic) == "" {
		return domain.NewInvalidInputError("topic is required").WithContext("field", "topic")
	}
	return nil
}

func (v *Validator) validateDocument(source domain.QuizSource) error {
	if mt := source.BaseMediaType(); mt != domain.MediaTypePDF {
		return domain.NewInvalidInputError("Invalid file type. Please upload a PDF.").
			WithContext("field", "file").
			WithContext("media_type", source.MediaType)
	}
	if len(source.Data) == 0 {
		return domain.NewInvalidInputError("the uploaded document is empty").WithContext("field", "file")
	}
	if v.maxDocumentBytes > 0 && int64(len(source.Data)) > v.maxDocumentBytes {
		return domain.NewInvalidInputError(fmt.Sprintf("the uploaded document exceeds %d bytes", v.maxDocumentBytes)).
			WithContext("field", "file").
			WithContext("size", len(source.Data))
	}
	return nil
}

// Validate runs every request check.
func (v *Validator) Validate(source domain.QuizSource, count int) error {
	if err := v.ValidateSource(source); err != nil {
		return err
	}
	return v.ValidateQuestionCount(count)
}
