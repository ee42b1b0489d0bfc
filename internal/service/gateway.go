package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"samayak/internal/config"
	"samayak/internal/domain"
	"samayak/internal/logger"
	"samayak/internal/util"
	"samayak/internal/validation"

	"github.com/samber/lo"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const trendingFlightKey = "trending_topics"

// quizGateway implements domain.QuizGateway.
type quizGateway struct {
	generator         domain.ContentGenerator
	validator         *validation.Validator
	questionValidator *validation.QuestionValidator
	trending          TrendingTopicsCache
	trendingTimeout   time.Duration
	group             singleflight.Group
}

// NewQuizGateway creates the gateway. Generated questions are re-validated when cfg.ValidateQuestions is set.
func NewQuizGateway(generator domain.ContentGenerator, cfg config.QuizConfig, trending TrendingTopicsCache, trendingTimeout time.Duration) (domain.QuizGateway, error) {
	if generator == nil {
		return nil, fmt.Errorf("content generator is required")
	}
	if trending == nil {
		trending = NewTrendingTopicsCache(nil, "", 0)
	}
	g := &quizGateway{
		generator:       generator,
		validator:       validation.NewValidator(cfg.MaxQuestions, cfg.MaxDocumentBytes()),
		trending:        trending,
		trendingTimeout: trendingTimeout,
	}
	if cfg.ValidateQuestions {
		qv, err := validation.NewQuestionValidator()
		if err != nil {
			return nil, err
		}
		g.questionValidator = qv
	}
	return g, nil
}

// GenerateQuiz validates the input locally, makes one generator call and never returns a partial quiz.
func (g *quizGateway) GenerateQuiz(ctx context.Context, source domain.QuizSource, questionCount int) (domain.Quiz, error) {
	if err := g.validator.Validate(source, questionCount); err != nil {
		return nil, err
	}

	req := buildGenerationRequest(source, questionCount)
	l := logger.Get().With(zap.String("title", source.Title()), zap.Int("count", questionCount), zap.Bool("document", source.IsDocument()))
	l.Info("Requesting quiz generation")

	text, err := g.generator.Generate(ctx, req)
	if err != nil {
		l.Error("Quiz generation call failed", zap.Error(err))
		if domain.CodeOf(err) != "" {
			return nil, err
		}
		return nil, domain.NewTransportError(err)
	}

	quiz, err := g.parseQuiz(text, l)
	if err != nil {
		return nil, err
	}
	if source.IsDocument() {
		for i := range quiz {
			quiz[i].Sources = []domain.Source{}
		}
	}

	l.Info("Quiz generated", zap.Int("questions", len(quiz)))
	return quiz, nil
}

func buildGenerationRequest(source domain.QuizSource, count int) domain.GenerationRequest {
	if source.IsDocument() {
		return domain.GenerationRequest{
			Prompt: documentPrompt(count),
			Attachment: &domain.Attachment{
				MediaType: domain.MediaTypePDF,
				Data:      source.Data,
			},
			Schema: quizResponseSchema,
		}
	}
	return domain.GenerationRequest{
		Prompt:         topicPrompt(strings.TrimSpace(source.Topic), count),
		Schema:         quizResponseSchema,
		SearchGrounded: true,
	}
}

// parseQuiz normalizes the reply, then separates unparseable text from well-formed JSON of the wrong shape.
func (g *quizGateway) parseQuiz(text string, l *zap.Logger) (domain.Quiz, error) {
	normalized := util.NormalizeJSONText(text)

	var parsed interface{}
	if err := json.Unmarshal([]byte(normalized), &parsed); err != nil {
		l.Debug("Raw reply that failed to parse", zap.String("raw", text))
		l.Error("Failed to parse quiz reply as JSON", zap.Error(err), zap.String("normalized", normalized))
		return nil, domain.NewMalformedResponseError(err)
	}

	obj, ok := parsed.(map[string]interface{})
	if !ok {
		l.Error("Quiz reply is not a JSON object", zap.Any("parsed", parsed))
		return nil, domain.NewInvalidQuizDataError("reply is not a JSON object")
	}
	items, ok := obj["quiz"].([]interface{})
	if !ok || len(items) == 0 {
		l.Error("Quiz reply does not contain a non-empty quiz array", zap.Any("parsed", parsed))
		return nil, domain.NewInvalidQuizDataError("missing or empty quiz array")
	}

	var envelope struct {
		Quiz []json.RawMessage `json:"quiz"`
	}
	if err := json.Unmarshal([]byte(normalized), &envelope); err != nil {
		return nil, domain.NewInvalidQuizDataError(err.Error())
	}

	quiz := make(domain.Quiz, 0, len(envelope.Quiz))
	for i, raw := range envelope.Quiz {
		q, err := g.decodeQuestion(raw)
		if err != nil {
			l.Error("Generated question is invalid", zap.Int("index", i), zap.Error(err), zap.ByteString("question", raw))
			return nil, domain.NewInvalidQuizDataError(fmt.Sprintf("question %d: %v", i+1, err)).WithContext("index", i)
		}
		quiz = append(quiz, q)
	}
	return quiz, nil
}

func (g *quizGateway) decodeQuestion(raw json.RawMessage) (domain.Question, error) {
	if g.questionValidator != nil {
		if err := g.questionValidator.ValidateRaw(raw); err != nil {
			return domain.Question{}, err
		}
	}

	var q domain.Question
	if err := json.Unmarshal(raw, &q); err != nil {
		return domain.Question{}, err
	}
	if q.Sources == nil {
		q.Sources = []domain.Source{}
	}

	if g.questionValidator != nil {
		if err := g.questionValidator.ValidateQuestion(q); err != nil {
			return domain.Question{}, err
		}
	}
	return q, nil
}

// TrendingTopics serves cached suggestions when possible. Concurrent misses share one generator call.
// Failures are logged and reported as ok == false.
func (g *quizGateway) TrendingTopics(ctx context.Context) ([]string, bool) {
	if topics, ok := g.trending.Get(ctx); ok {
		return topics, true
	}

	v, err, shared := g.group.Do(trendingFlightKey, func() (interface{}, error) {
		// Detached so one caller giving up does not fail the others waiting on the same flight.
		fetchCtx := context.WithoutCancel(ctx)
		if g.trendingTimeout > 0 {
			var cancel context.CancelFunc
			fetchCtx, cancel = context.WithTimeout(fetchCtx, g.trendingTimeout)
			defer cancel()
		}
		topics, err := g.fetchTrendingTopics(fetchCtx)
		if err != nil {
			return nil, err
		}
		if len(topics) > 0 {
			g.trending.Put(fetchCtx, topics)
		}
		return topics, nil
	})
	if err != nil {
		logger.Get().Warn("Trending topics unavailable", zap.Error(err), zap.Bool("shared", shared))
		return nil, false
	}

	topics := v.([]string)
	return append([]string(nil), topics...), true
}

func (g *quizGateway) fetchTrendingTopics(ctx context.Context) ([]string, error) {
	text, err := g.generator.Generate(ctx, domain.GenerationRequest{
		Prompt: trendingTopicsPrompt(),
		Schema: trendingResponseSchema,
	})
	if err != nil {
		return nil, fmt.Errorf("generate trending topics: %w", err)
	}

	var parsed interface{}
	if err := json.Unmarshal([]byte(util.NormalizeJSONText(text)), &parsed); err != nil {
		return nil, fmt.Errorf("parse trending topics: %w", err)
	}
	obj, ok := parsed.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("trending topics reply is not a JSON object")
	}
	items, ok := obj["topics"].([]interface{})
	if !ok {
		return nil, fmt.Errorf("trending topics reply has no topics array")
	}

	topics := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("trending topic %v is not a string", item)
		}
		if s = strings.TrimSpace(s); s != "" {
			topics = append(topics, s)
		}
	}
	return lo.Uniq(topics), nil
}
