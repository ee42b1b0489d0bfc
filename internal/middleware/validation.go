package middleware

import (
	"io"
	"strconv"
	"strings"

	"samayak/internal/domain"
	"samayak/internal/dto"
	"samayak/internal/validation"

	"github.com/gofiber/fiber/v2"
)

const (
	ValidatedSourceKey = "validated_source"
	ValidatedCountKey  = "validated_count"
	DocumentFormField  = "file"
)

// ValidationMiddleware turns generation requests into a checked source and count.
type ValidationMiddleware struct {
	validator    *validation.Validator
	defaultCount int
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware(validator *validation.Validator, defaultCount int) *ValidationMiddleware {
	return &ValidationMiddleware{
		validator:    validator,
		defaultCount: defaultCount,
	}
}

// ValidateQuizRequest accepts either a JSON topic body or a multipart upload with a "file" part.
// The parsed source and count are stored in the context for handlers to use.
func (vm *ValidationMiddleware) ValidateQuizRequest() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var (
			source domain.QuizSource
			count  int
			err    error
		)
		if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
			source, count, err = parseMultipart(c)
		} else {
			source, count, err = parseJSON(c)
		}
		if err != nil {
			return err
		}

		if count == 0 {
			count = vm.defaultCount
		}
		if err := vm.validator.Validate(source, count); err != nil {
			return err
		}

		c.Locals(ValidatedSourceKey, source)
		c.Locals(ValidatedCountKey, count)
		return c.Next()
	}
}

func parseJSON(c *fiber.Ctx) (domain.QuizSource, int, error) {
	var req dto.GenerateQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.QuizSource{}, 0, domain.NewInvalidInputError("request body is not valid JSON").WithContext("cause", err.Error())
	}
	return domain.TopicSource(req.Topic), req.Count, nil
}

func parseMultipart(c *fiber.Ctx) (domain.QuizSource, int, error) {
	count, err := parseCount(c.FormValue("count"))
	if err != nil {
		return domain.QuizSource{}, 0, err
	}

	header, err := c.FormFile(DocumentFormField)
	if err != nil {
		// No file part: a form-encoded topic request.
		return domain.TopicSource(c.FormValue("topic")), count, nil
	}

	f, err := header.Open()
	if err != nil {
		return domain.QuizSource{}, 0, domain.NewInvalidInputError("could not read the uploaded document").WithContext("field", DocumentFormField)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return domain.QuizSource{}, 0, domain.NewInvalidInputError("could not read the uploaded document").WithContext("field", DocumentFormField)
	}

	return domain.DocumentSource(header.Filename, header.Header.Get(fiber.HeaderContentType), data), count, nil
}

// parseCount reads an optional count form value; empty means the default.
func parseCount(countStr string) (int, error) {
	countStr = strings.TrimSpace(countStr)
	if countStr == "" {
		return 0, nil
	}
	count, err := strconv.Atoi(countStr)
	if err != nil {
		return 0, domain.NewInvalidInputError("count must be a number").
			WithContext("field", "count").
			WithContext("value", countStr)
	}
	if count <= 0 {
		return 0, domain.NewInvalidInputError("count must be greater than 0").
			WithContext("field", "count").
			WithContext("value", count)
	}
	return count, nil
}
