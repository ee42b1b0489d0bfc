package service_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"samayak/internal/domain"

	"github.com/stretchr/testify/mock"
)

// ManualMockCache for domain.Cache interface
type ManualMockCache struct {
	GetFunc    func(ctx context.Context, key string) (string, error)
	SetFunc    func(ctx context.Context, key string, value string, ttl time.Duration) error
	DeleteFunc func(ctx context.Context, key string) error
	PingFunc   func(ctx context.Context) error
}

func (m *ManualMockCache) Get(ctx context.Context, key string) (string, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	return "", errors.New("GetFunc not set")
}

func (m *ManualMockCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, ttl)
	}
	return errors.New("SetFunc not set")
}

func (m *ManualMockCache) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	return errors.New("DeleteFunc not set")
}

func (m *ManualMockCache) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return errors.New("PingFunc not set")
}

// stubGenerator records every request and replies with a fixed text or error.
type stubGenerator struct {
	mu       sync.Mutex
	reply    string
	err      error
	release  chan struct{}
	requests []domain.GenerationRequest
}

func (g *stubGenerator) Generate(ctx context.Context, req domain.GenerationRequest) (string, error) {
	g.mu.Lock()
	g.requests = append(g.requests, req)
	release := g.release
	g.mu.Unlock()

	if release != nil {
		<-release
	}
	return g.reply, g.err
}

func (g *stubGenerator) Calls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.requests)
}

func (g *stubGenerator) LastRequest() domain.GenerationRequest {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.requests[len(g.requests)-1]
}

// MockQuizGateway is a testify mock of domain.QuizGateway.
type MockQuizGateway struct {
	mock.Mock
}

func (m *MockQuizGateway) GenerateQuiz(ctx context.Context, source domain.QuizSource, questionCount int) (domain.Quiz, error) {
	args := m.Called(ctx, source, questionCount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.Quiz), args.Error(1)
}

func (m *MockQuizGateway) TrendingTopics(ctx context.Context) ([]string, bool) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).([]string), args.Bool(1)
}

func questionJSON(i int, withSources bool) string {
	sources := `[]`
	if withSources {
		sources = fmt.Sprintf(`[{"title":"Source %d","uri":"https://example.com/%d"}]`, i, i)
	}
	return fmt.Sprintf(`{"question":"Question %d?","options":["A%d","B%d","C%d","D%d"],"correctAnswer":"B%d","explanation":"Because B%d.","sources":%s}`,
		i, i, i, i, i, i, i, sources)
}

func quizJSON(n int, withSources bool) string {
	items := make([]string, n)
	for i := range items {
		items[i] = questionJSON(i+1, withSources)
	}
	return `{"quiz":[` + strings.Join(items, ",") + `]}`
}

func testQuiz(n int) domain.Quiz {
	quiz := make(domain.Quiz, n)
	for i := range quiz {
		quiz[i] = domain.Question{
			Question:      fmt.Sprintf("Question %d?", i+1),
			Options:       []string{"A", "B", "C", "D"},
			CorrectAnswer: "B",
			Explanation:   "Because B.",
			Sources:       []domain.Source{{Title: "Ref", URI: "https://example.com"}},
		}
	}
	return quiz
}
