package handler_test

import (
	"context"

	"samayak/internal/domain"
	"samayak/internal/dto"
)

// --- Manual Mocks ---

type MockQuizService struct {
	GenerateQuizFunc   func(ctx context.Context, source domain.QuizSource, count int) (*dto.QuizResponse, error)
	TrendingTopicsFunc func(ctx context.Context) *dto.TrendingTopicsResponse
}

func (m *MockQuizService) GenerateQuiz(ctx context.Context, source domain.QuizSource, count int) (*dto.QuizResponse, error) {
	if m.GenerateQuizFunc != nil {
		return m.GenerateQuizFunc(ctx, source, count)
	}
	panic("MockQuizService.GenerateQuizFunc not implemented")
}

func (m *MockQuizService) TrendingTopics(ctx context.Context) *dto.TrendingTopicsResponse {
	if m.TrendingTopicsFunc != nil {
		return m.TrendingTopicsFunc(ctx)
	}
	panic("MockQuizService.TrendingTopicsFunc not implemented")
}

type MockSessionService struct {
	StartFunc   func(ctx context.Context, source domain.QuizSource, count int) (*dto.SessionCreatedResponse, error)
	StateFunc   func(ctx context.Context, sessionID string) (*dto.SessionStateResponse, error)
	AnswerFunc  func(ctx context.Context, sessionID, answer string) (*dto.AnswerResponse, error)
	AdvanceFunc func(ctx context.Context, sessionID string) (*dto.SessionStateResponse, error)
	RestartFunc func(ctx context.Context, sessionID string) (*dto.SessionStateResponse, error)
	ReloadFunc  func(ctx context.Context, sessionID string, source domain.QuizSource, count int) (*dto.SessionStateResponse, error)
}

func (m *MockSessionService) Start(ctx context.Context, source domain.QuizSource, count int) (*dto.SessionCreatedResponse, error) {
	if m.StartFunc != nil {
		return m.StartFunc(ctx, source, count)
	}
	panic("MockSessionService.StartFunc not implemented")
}

func (m *MockSessionService) State(ctx context.Context, sessionID string) (*dto.SessionStateResponse, error) {
	if m.StateFunc != nil {
		return m.StateFunc(ctx, sessionID)
	}
	panic("MockSessionService.StateFunc not implemented")
}

func (m *MockSessionService) Answer(ctx context.Context, sessionID, answer string) (*dto.AnswerResponse, error) {
	if m.AnswerFunc != nil {
		return m.AnswerFunc(ctx, sessionID, answer)
	}
	panic("MockSessionService.AnswerFunc not implemented")
}

func (m *MockSessionService) Advance(ctx context.Context, sessionID string) (*dto.SessionStateResponse, error) {
	if m.AdvanceFunc != nil {
		return m.AdvanceFunc(ctx, sessionID)
	}
	panic("MockSessionService.AdvanceFunc not implemented")
}

func (m *MockSessionService) Restart(ctx context.Context, sessionID string) (*dto.SessionStateResponse, error) {
	if m.RestartFunc != nil {
		return m.RestartFunc(ctx, sessionID)
	}
	panic("MockSessionService.RestartFunc not implemented")
}

func (m *MockSessionService) Reload(ctx context.Context, sessionID string, source domain.QuizSource, count int) (*dto.SessionStateResponse, error) {
	if m.ReloadFunc != nil {
		return m.ReloadFunc(ctx, sessionID, source, count)
	}
	panic("MockSessionService.ReloadFunc not implemented")
}
