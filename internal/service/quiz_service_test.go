package service_test

import (
	"context"
	"testing"

	"samayak/internal/domain"
	"samayak/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestQuizService_GenerateQuiz(t *testing.T) {
	gw := new(MockQuizGateway)
	src := domain.DocumentSource("notes.pdf", domain.MediaTypePDF, []byte("%PDF"))
	gw.On("GenerateQuiz", mock.Anything, src, 10).Return(testQuiz(2), nil)
	svc := service.NewQuizService(gw, 10)

	resp, err := svc.GenerateQuiz(context.Background(), src, 0)

	require.NoError(t, err)
	assert.Equal(t, "notes.pdf", resp.Title)
	assert.Equal(t, 2, resp.Count)
	require.Len(t, resp.Questions, 2)
	assert.Equal(t, "B", resp.Questions[0].CorrectAnswer)
	assert.Equal(t, "https://example.com", resp.Questions[0].Sources[0].URI)
	gw.AssertExpectations(t)
}

func TestQuizService_GenerateQuizError(t *testing.T) {
	gw := new(MockQuizGateway)
	gw.On("GenerateQuiz", mock.Anything, mock.Anything, 7).Return(nil, domain.NewInvalidQuizDataError("empty"))
	svc := service.NewQuizService(gw, 10)

	resp, err := svc.GenerateQuiz(context.Background(), domain.TopicSource("x"), 7)

	assert.Nil(t, resp)
	assert.True(t, domain.IsCode(err, domain.CodeInvalidQuizData))
}

func TestQuizService_TrendingTopics(t *testing.T) {
	gw := new(MockQuizGateway)
	gw.On("TrendingTopics", mock.Anything).Return([]string{"a", "b"}, true).Once()
	gw.On("TrendingTopics", mock.Anything).Return(nil, false).Once()
	svc := service.NewQuizService(gw, 10)

	assert.Equal(t, []string{"a", "b"}, svc.TrendingTopics(context.Background()).Topics)

	resp := svc.TrendingTopics(context.Background())
	assert.NotNil(t, resp.Topics)
	assert.Empty(t, resp.Topics)
}
