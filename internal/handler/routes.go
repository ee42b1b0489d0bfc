package handler

import (
	"samayak/internal/middleware"
	"samayak/internal/service"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the API under /api.
func RegisterRoutes(app *fiber.App, quiz *QuizHandler, sessions *SessionHandler, validator *middleware.ValidationMiddleware, tokens service.SessionTokenService) {
	api := app.Group("/api")

	api.Post("/quiz", validator.ValidateQuizRequest(), quiz.GenerateQuiz)
	api.Get("/topics/trending", quiz.TrendingTopics)

	api.Post("/sessions", validator.ValidateQuizRequest(), sessions.StartSession)

	auth := middleware.SessionToken(tokens)
	api.Get("/sessions/:id", auth, sessions.GetSession)
	api.Post("/sessions/:id/answer", auth, sessions.SubmitAnswer)
	api.Post("/sessions/:id/advance", auth, sessions.AdvanceSession)
	api.Delete("/sessions/:id", auth, sessions.RestartSession)
	api.Post("/sessions/:id/quiz", auth, validator.ValidateQuizRequest(), sessions.ReloadSession)
}
