package service

import (
	"context"

	"samayak/internal/domain"
	"samayak/internal/dto"
	"samayak/internal/logger"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// SessionService drives quiz sessions over HTTP.
type SessionService interface {
	Start(ctx context.Context, source domain.QuizSource, count int) (*dto.SessionCreatedResponse, error)
	State(ctx context.Context, sessionID string) (*dto.SessionStateResponse, error)
	Answer(ctx context.Context, sessionID, answer string) (*dto.AnswerResponse, error)
	Advance(ctx context.Context, sessionID string) (*dto.SessionStateResponse, error)
	Restart(ctx context.Context, sessionID string) (*dto.SessionStateResponse, error)
	// Reload generates a new quiz into an existing session, typically after Restart.
	Reload(ctx context.Context, sessionID string, source domain.QuizSource, count int) (*dto.SessionStateResponse, error)
}

type sessionServiceImpl struct {
	gateway      domain.QuizGateway
	registry     *SessionRegistry
	tokens       SessionTokenService
	defaultCount int
}

func NewSessionService(gateway domain.QuizGateway, registry *SessionRegistry, tokens SessionTokenService, defaultCount int) SessionService {
	return &sessionServiceImpl{
		gateway:      gateway,
		registry:     registry,
		tokens:       tokens,
		defaultCount: defaultCount,
	}
}

func (s *sessionServiceImpl) Start(ctx context.Context, source domain.QuizSource, count int) (*dto.SessionCreatedResponse, error) {
	quiz, err := s.gateway.GenerateQuiz(ctx, source, questionCount(count, s.defaultCount))
	if err != nil {
		return nil, err
	}

	ps, err := s.registry.Create(source.Title(), quiz)
	if err != nil {
		return nil, err
	}

	token, expiresAt, err := s.tokens.Issue(ps.ID, ps.Title())
	if err != nil {
		s.registry.Remove(ps.ID)
		logger.Get().Error("Failed to issue session token", zap.Error(err), zap.String("session_id", ps.ID))
		return nil, domain.NewInternalError("failed to issue session token", err)
	}

	return &dto.SessionCreatedResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		State:     toStateResponse(ps),
	}, nil
}

func (s *sessionServiceImpl) State(ctx context.Context, sessionID string) (*dto.SessionStateResponse, error) {
	ps, err := s.registry.Get(sessionID)
	if err != nil {
		return nil, err
	}
	state := toStateResponse(ps)
	return &state, nil
}

func (s *sessionServiceImpl) Answer(ctx context.Context, sessionID, answer string) (*dto.AnswerResponse, error) {
	ps, err := s.registry.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if answer == "" {
		return nil, domain.NewInvalidInputError("answer is required").WithContext("field", "answer")
	}
	if q, err := ps.Session.CurrentQuestion(); err == nil && !lo.Contains(q.Options, answer) {
		return nil, domain.NewInvalidInputError("answer must be one of the options").WithContext("field", "answer")
	}

	accepted, err := ps.Session.SelectAnswer(answer)
	if err != nil {
		return nil, err
	}
	return &dto.AnswerResponse{Accepted: accepted, State: toStateResponse(ps)}, nil
}

func (s *sessionServiceImpl) Advance(ctx context.Context, sessionID string) (*dto.SessionStateResponse, error) {
	ps, err := s.registry.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if err := ps.Session.Advance(); err != nil {
		return nil, err
	}
	state := toStateResponse(ps)
	return &state, nil
}

func (s *sessionServiceImpl) Restart(ctx context.Context, sessionID string) (*dto.SessionStateResponse, error) {
	ps, err := s.registry.Get(sessionID)
	if err != nil {
		return nil, err
	}
	ps.Session.Restart()
	ps.setTitle("")
	logger.Get().Info("Session restarted", zap.String("session_id", sessionID))
	state := toStateResponse(ps)
	return &state, nil
}

func (s *sessionServiceImpl) Reload(ctx context.Context, sessionID string, source domain.QuizSource, count int) (*dto.SessionStateResponse, error) {
	ps, err := s.registry.Get(sessionID)
	if err != nil {
		return nil, err
	}
	quiz, err := s.gateway.GenerateQuiz(ctx, source, questionCount(count, s.defaultCount))
	if err != nil {
		return nil, err
	}
	if err := ps.Session.Load(quiz); err != nil {
		return nil, err
	}
	ps.setTitle(source.Title())
	state := toStateResponse(ps)
	return &state, nil
}

