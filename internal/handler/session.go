package handler

import (
	"samayak/internal/domain"
	"samayak/internal/dto"
	"samayak/internal/middleware"
	"samayak/internal/service"

	"github.com/gofiber/fiber/v2"
)

// SessionHandler exposes interactive quiz play.
type SessionHandler struct {
	service service.SessionService
}

func NewSessionHandler(service service.SessionService) *SessionHandler {
	return &SessionHandler{service: service}
}

// StartSession godoc
// @Summary Start a quiz session
// @Description Generates a quiz and opens a session on its first question. The returned token authorizes the session routes.
// @Tags sessions
// @Accept json,mpfd
// @Produce json
// @Param request body dto.GenerateQuizRequest false "Topic and question count"
// @Param file formData file false "PDF document"
// @Success 201 {object} dto.SessionCreatedResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 422 {object} middleware.ErrorResponse
// @Failure 502 {object} middleware.ErrorResponse
// @Router /sessions [post]
func (h *SessionHandler) StartSession(c *fiber.Ctx) error {
	source, count, err := validatedRequest(c)
	if err != nil {
		return err
	}
	created, err := h.service.Start(c.UserContext(), source, count)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// GetSession godoc
// @Summary Get session state
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 200 {object} dto.SessionStateResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /sessions/{id} [get]
func (h *SessionHandler) GetSession(c *fiber.Ctx) error {
	state, err := h.service.State(c.UserContext(), sessionID(c))
	if err != nil {
		return err
	}
	return c.JSON(state)
}

// SubmitAnswer godoc
// @Summary Answer the current question
// @Description Records the first answer for the current question. Later answers are ignored and reported with accepted=false.
// @Tags sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Param request body dto.AnswerRequest true "Selected option"
// @Success 200 {object} dto.AnswerResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /sessions/{id}/answer [post]
func (h *SessionHandler) SubmitAnswer(c *fiber.Ctx) error {
	var req dto.AnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("request body is not valid JSON")
	}
	resp, err := h.service.Answer(c.UserContext(), sessionID(c), req.Answer)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// AdvanceSession godoc
// @Summary Move to the next question
// @Description Only allowed once the explanation for the answered question is showing
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 200 {object} dto.SessionStateResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /sessions/{id}/advance [post]
func (h *SessionHandler) AdvanceSession(c *fiber.Ctx) error {
	state, err := h.service.Advance(c.UserContext(), sessionID(c))
	if err != nil {
		return err
	}
	return c.JSON(state)
}

// RestartSession godoc
// @Summary Restart a session
// @Description Discards the quiz and score. Load a new quiz with POST /sessions/{id}/quiz.
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 200 {object} dto.SessionStateResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /sessions/{id} [delete]
func (h *SessionHandler) RestartSession(c *fiber.Ctx) error {
	state, err := h.service.Restart(c.UserContext(), sessionID(c))
	if err != nil {
		return err
	}
	return c.JSON(state)
}

// ReloadSession godoc
// @Summary Load a new quiz into a session
// @Tags sessions
// @Accept json,mpfd
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Param request body dto.GenerateQuizRequest false "Topic and question count"
// @Param file formData file false "PDF document"
// @Success 200 {object} dto.SessionStateResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 502 {object} middleware.ErrorResponse
// @Router /sessions/{id}/quiz [post]
func (h *SessionHandler) ReloadSession(c *fiber.Ctx) error {
	source, count, err := validatedRequest(c)
	if err != nil {
		return err
	}
	state, err := h.service.Reload(c.UserContext(), sessionID(c), source, count)
	if err != nil {
		return err
	}
	return c.JSON(state)
}

func sessionID(c *fiber.Ctx) string {
	if id, ok := c.Locals(middleware.SessionIDKey).(string); ok {
		return id
	}
	return c.Params(middleware.SessionIDParam)
}
