package handler

import (
	"samayak/internal/domain"
	"samayak/internal/logger"
	"samayak/internal/middleware"
	"samayak/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// QuizHandler handles quiz-related HTTP requests
type QuizHandler struct {
	service service.QuizService
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService) *QuizHandler {
	return &QuizHandler{
		service: service,
	}
}

// GenerateQuiz godoc
// @Summary Generate a quiz
// @Description Generates multiple-choice questions from a topic (JSON body) or an uploaded PDF (multipart "file" part)
// @Tags quiz
// @Accept json,mpfd
// @Produce json
// @Param request body dto.GenerateQuizRequest false "Topic and question count"
// @Param file formData file false "PDF document"
// @Success 200 {object} dto.QuizResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 422 {object} middleware.ErrorResponse
// @Failure 502 {object} middleware.ErrorResponse
// @Router /quiz [post]
func (h *QuizHandler) GenerateQuiz(c *fiber.Ctx) error {
	source, count, err := validatedRequest(c)
	if err != nil {
		return err
	}

	quiz, err := h.service.GenerateQuiz(c.UserContext(), source, count)
	if err != nil {
		logger.Get().Error("Failed to generate quiz",
			zap.Error(err),
			zap.String("title", source.Title()),
			zap.Int("count", count),
		)
		return err
	}
	return c.JSON(quiz)
}

// TrendingTopics godoc
// @Summary Suggest trending topics
// @Description Returns up to five current topics; the list is empty when suggestions are unavailable
// @Tags quiz
// @Produce json
// @Success 200 {object} dto.TrendingTopicsResponse
// @Router /topics/trending [get]
func (h *QuizHandler) TrendingTopics(c *fiber.Ctx) error {
	return c.JSON(h.service.TrendingTopics(c.UserContext()))
}

// validatedRequest reads what ValidationMiddleware stored for this request.
func validatedRequest(c *fiber.Ctx) (domain.QuizSource, int, error) {
	source, ok := c.Locals(middleware.ValidatedSourceKey).(domain.QuizSource)
	if !ok {
		return domain.QuizSource{}, 0, domain.NewInternalError("quiz request was not validated", nil)
	}
	count, _ := c.Locals(middleware.ValidatedCountKey).(int)
	return source, count, nil
}
