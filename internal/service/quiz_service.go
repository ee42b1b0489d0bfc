package service

import (
	"context"

	"samayak/internal/domain"
	"samayak/internal/dto"

	"github.com/samber/lo"
)

// QuizService serves stateless generation and topic suggestions.
type QuizService interface {
	GenerateQuiz(ctx context.Context, source domain.QuizSource, count int) (*dto.QuizResponse, error)
	TrendingTopics(ctx context.Context) *dto.TrendingTopicsResponse
}

type quizServiceImpl struct {
	gateway      domain.QuizGateway
	defaultCount int
}

func NewQuizService(gateway domain.QuizGateway, defaultCount int) QuizService {
	return &quizServiceImpl{gateway: gateway, defaultCount: defaultCount}
}

func (s *quizServiceImpl) GenerateQuiz(ctx context.Context, source domain.QuizSource, count int) (*dto.QuizResponse, error) {
	quiz, err := s.gateway.GenerateQuiz(ctx, source, questionCount(count, s.defaultCount))
	if err != nil {
		return nil, err
	}
	return &dto.QuizResponse{
		Title:     source.Title(),
		Count:     len(quiz),
		Questions: lo.Map(quiz, func(q domain.Question, _ int) dto.QuestionResponse { return toQuestionResponse(q) }),
	}, nil
}

// TrendingTopics never fails; unavailable suggestions are an empty list.
func (s *quizServiceImpl) TrendingTopics(ctx context.Context) *dto.TrendingTopicsResponse {
	topics, ok := s.gateway.TrendingTopics(ctx)
	if !ok || topics == nil {
		topics = []string{}
	}
	return &dto.TrendingTopicsResponse{Topics: topics}
}

// questionCount applies the default when the caller did not ask for a count.
func questionCount(requested, defaultCount int) int {
	if requested == 0 {
		return defaultCount
	}
	return requested
}
