package service_test

import (
	"context"
	"testing"
	"time"

	"samayak/internal/domain"
	"samayak/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSessionSecret = "0123456789abcdef0123456789abcdef"

func newTestSessionService(t *testing.T, gw *MockQuizGateway) (service.SessionService, service.SessionTokenService) {
	t.Helper()
	tokens, err := service.NewSessionTokenService(testSessionSecret, time.Hour)
	require.NoError(t, err)
	registry := service.NewSessionRegistry(time.Hour, 0)
	return service.NewSessionService(gw, registry, tokens, 10), tokens
}

func TestSessionService_Start(t *testing.T) {
	gw := new(MockQuizGateway)
	gw.On("GenerateQuiz", mock.Anything, domain.TopicSource("Volcanoes"), 10).Return(testQuiz(3), nil)
	svc, tokens := newTestSessionService(t, gw)

	created, err := svc.Start(context.Background(), domain.TopicSource("Volcanoes"), 0)

	require.NoError(t, err)
	gw.AssertExpectations(t)
	assert.Equal(t, "Volcanoes", created.State.Title)
	assert.Equal(t, string(domain.PhaseAnswering), created.State.Phase)
	assert.Equal(t, 3, created.State.Total)
	assert.Equal(t, "Question 1 of 3", created.State.ProgressLabel)
	require.NotNil(t, created.State.Question)
	assert.Empty(t, created.State.Question.CorrectAnswer, "answer hidden before selection")
	assert.Empty(t, created.State.Question.Explanation)

	claims, err := tokens.Verify(created.Token)
	require.NoError(t, err)
	assert.Equal(t, created.State.SessionID, claims.Subject)
}

func TestSessionService_StartPropagatesGatewayError(t *testing.T) {
	gw := new(MockQuizGateway)
	gw.On("GenerateQuiz", mock.Anything, mock.Anything, 5).Return(nil, domain.NewMalformedResponseError(assert.AnError))
	svc, _ := newTestSessionService(t, gw)

	created, err := svc.Start(context.Background(), domain.TopicSource("x"), 5)

	assert.Nil(t, created)
	assert.True(t, domain.IsCode(err, domain.CodeMalformedResponse))
}

func TestSessionService_PlayThrough(t *testing.T) {
	gw := new(MockQuizGateway)
	gw.On("GenerateQuiz", mock.Anything, mock.Anything, 3).Return(testQuiz(3), nil)
	svc, _ := newTestSessionService(t, gw)
	ctx := context.Background()

	created, err := svc.Start(ctx, domain.TopicSource("Letters"), 3)
	require.NoError(t, err)
	id := created.State.SessionID

	answers := []string{"B", "A", "C"}
	for i, answer := range answers {
		resp, err := svc.Answer(ctx, id, answer)
		require.NoError(t, err)
		assert.True(t, resp.Accepted)
		require.NotNil(t, resp.State.Correct)
		assert.Equal(t, i == 0, *resp.State.Correct)
		assert.Equal(t, "B", resp.State.Question.CorrectAnswer)
		assert.True(t, resp.State.ExplanationVisible)
		assert.Equal(t, "Because B.", resp.State.Question.Explanation)

		again, err := svc.Answer(ctx, id, "B")
		require.NoError(t, err)
		assert.False(t, again.Accepted)
		assert.Equal(t, answer, *again.State.SelectedAnswer)

		_, err = svc.Advance(ctx, id)
		require.NoError(t, err)
	}

	state, err := svc.State(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, string(domain.PhaseFinished), state.Phase)
	assert.Nil(t, state.Question)
	require.NotNil(t, state.Summary)
	assert.Equal(t, 1, state.Summary.Score)
	assert.Equal(t, 3, state.Summary.Total)
	assert.Equal(t, 33, state.Summary.Percentage)
	assert.Equal(t, string(domain.BandRetry), state.Summary.Band)
	assert.InDelta(t, 100.0, state.Progress, 0.001)
}

func TestSessionService_AnswerValidation(t *testing.T) {
	gw := new(MockQuizGateway)
	gw.On("GenerateQuiz", mock.Anything, mock.Anything, 10).Return(testQuiz(1), nil)
	svc, _ := newTestSessionService(t, gw)
	ctx := context.Background()

	created, err := svc.Start(ctx, domain.TopicSource("x"), 10)
	require.NoError(t, err)
	id := created.State.SessionID

	_, err = svc.Answer(ctx, id, "")
	assert.True(t, domain.IsCode(err, domain.CodeInvalidInput))

	_, err = svc.Answer(ctx, id, "Z")
	assert.True(t, domain.IsCode(err, domain.CodeInvalidInput))

	_, err = svc.Advance(ctx, id)
	assert.True(t, domain.IsCode(err, domain.CodeInvalidState))

	_, err = svc.Answer(ctx, "unknown", "A")
	assert.True(t, domain.IsCode(err, domain.CodeSessionNotFound))
}

func TestSessionService_RestartAndReload(t *testing.T) {
	gw := new(MockQuizGateway)
	gw.On("GenerateQuiz", mock.Anything, domain.TopicSource("first"), 2).Return(testQuiz(2), nil)
	gw.On("GenerateQuiz", mock.Anything, domain.TopicSource("second"), 4).Return(testQuiz(4), nil)
	svc, _ := newTestSessionService(t, gw)
	ctx := context.Background()

	created, err := svc.Start(ctx, domain.TopicSource("first"), 2)
	require.NoError(t, err)
	id := created.State.SessionID

	state, err := svc.Restart(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, string(domain.PhaseIdle), state.Phase)
	assert.Equal(t, 0, state.Total)
	assert.Nil(t, state.Question)
	assert.Empty(t, state.Title)

	_, err = svc.Answer(ctx, id, "A")
	assert.True(t, domain.IsCode(err, domain.CodeInvalidState))

	state, err = svc.Reload(ctx, id, domain.TopicSource("second"), 4)
	require.NoError(t, err)
	assert.Equal(t, string(domain.PhaseAnswering), state.Phase)
	assert.Equal(t, 4, state.Total)
	assert.Equal(t, "second", state.Title)
	gw.AssertExpectations(t)
}
