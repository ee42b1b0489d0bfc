package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"samayak/internal/adapter"
	"samayak/internal/cache"
	"samayak/internal/config"
	"samayak/internal/domain"
	"samayak/internal/logger"
	"samayak/internal/service"

	"go.uber.org/zap"
)

// errQuit is returned once standard input is closed.
var errQuit = errors.New("input closed")

func main() {
	os.Exit(run())
}

func run() int {
	topic := flag.String("topic", "", "topic to generate a quiz about")
	file := flag.String("file", "", "PDF document to generate a quiz from")
	count := flag.Int("count", 0, "number of questions (default from config)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		return 1
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		return 1
	}
	defer logger.Sync()

	ctx := context.Background()

	generator, closeGenerator, err := adapter.NewContentGenerator(ctx, cfg)
	if err != nil {
		logger.Get().Error("Failed to create content generator", zap.Error(err))
		return 1
	}
	defer closeGenerator()

	var cacheAdapter domain.Cache
	if redisClient, err := cache.NewRedisClient(ctx, cfg.Redis); err != nil {
		logger.Get().Warn("Redis unavailable, trending topics will not be cached", zap.Error(err))
	} else if redisClient != nil {
		defer redisClient.Close()
		cacheAdapter = adapter.NewRedisCacheAdapter(redisClient)
	}

	gateway, err := service.NewQuizGateway(generator, cfg.Quiz,
		service.NewTrendingTopicsCache(cacheAdapter, cfg.LLM.Model, cfg.Trending.TTL), cfg.LLM.Timeout)
	if err != nil {
		logger.Get().Error("Failed to create quiz gateway", zap.Error(err))
		return 1
	}

	if *count == 0 {
		*count = cfg.Quiz.DefaultQuestions
	}

	p := newPlayer(ctx, gateway, os.Stdin, os.Stdout, *count, cfg.Quiz.RevealDelay)
	if err := p.run(*topic, *file); err != nil && !errors.Is(err, errQuit) {
		fmt.Println(err)
		return 1
	}
	return 0
}

type player struct {
	ctx         context.Context
	gateway     domain.QuizGateway
	in          *bufio.Scanner
	out         io.Writer
	count       int
	revealDelay time.Duration
	revealed    chan int
}

func newPlayer(ctx context.Context, gateway domain.QuizGateway, in io.Reader, out io.Writer, count int, revealDelay time.Duration) *player {
	return &player{
		ctx:         ctx,
		gateway:     gateway,
		in:          bufio.NewScanner(in),
		out:         out,
		count:       count,
		revealDelay: revealDelay,
		revealed:    make(chan int, 1),
	}
}

// run plays quizzes until the player declines another round or input ends.
func (p *player) run(topic, file string) error {
	next := func() (domain.QuizSource, error) { return p.initialSource(topic, file) }

	var session *domain.Session
	for {
		quiz, title, err := p.loadQuiz(next)
		if err != nil {
			return err
		}
		next = p.askSource

		if session == nil {
			session, err = domain.NewSession(quiz,
				domain.WithRevealDelay(p.revealDelay),
				domain.WithRevealHook(func(position int) { p.revealed <- position }),
			)
		} else {
			err = session.Load(quiz)
		}
		if err != nil {
			return err
		}

		if err := p.playQuiz(session, title); err != nil {
			return err
		}

		again, err := p.confirm("Play another quiz? [y/N] ")
		if err != nil || !again {
			return err
		}
		session.Restart()
	}
}

// loadQuiz keeps asking for a source until a quiz is generated.
// Every generation error is shown to the player, who is then asked for another source.
func (p *player) loadQuiz(next func() (domain.QuizSource, error)) (domain.Quiz, string, error) {
	for {
		source, err := next()
		if errors.Is(err, errQuit) {
			return nil, "", err
		}
		if err == nil {
			var quiz domain.Quiz
			if quiz, err = p.generate(source); err == nil {
				return quiz, source.Title(), nil
			}
		}
		fmt.Fprintf(p.out, "\n%s\n", userMessage(err))
		next = p.askSource
	}
}

func (p *player) playQuiz(session *domain.Session, title string) error {
	fmt.Fprintf(p.out, "\n=== %s ===\n", title)
	for session.Phase() != domain.PhaseFinished {
		if err := p.playQuestion(session); err != nil {
			return err
		}
	}

	summary, err := session.Summary()
	if err != nil {
		return err
	}
	fmt.Fprintf(p.out, "\n%s\nYou scored %d / %d (%d%%)\n", summary.Message, summary.Score, summary.Total, summary.Percentage)
	return nil
}

func (p *player) playQuestion(session *domain.Session) error {
	q, err := session.CurrentQuestion()
	if err != nil {
		return err
	}
	fmt.Fprintf(p.out, "\nQuestion %d of %d\n%s\n", session.Position()+1, session.Total(), q.Question)
	for i, opt := range q.Options {
		fmt.Fprintf(p.out, "  %d) %s\n", i+1, opt)
	}

	answer, err := p.askOption(q.Options)
	if err != nil {
		return err
	}
	if _, err := session.SelectAnswer(answer); err != nil {
		return err
	}
	if q.IsCorrect(answer) {
		fmt.Fprintln(p.out, "Correct!")
	} else {
		fmt.Fprintf(p.out, "Incorrect. The answer is: %s\n", q.CorrectAnswer)
	}

	<-p.revealed
	fmt.Fprintf(p.out, "\n%s\n", q.Explanation)
	for _, src := range q.Sources {
		fmt.Fprintf(p.out, "  - %s <%s>\n", src.Title, src.URI)
	}

	if _, err := p.prompt("Press Enter to continue..."); err != nil {
		return err
	}
	return session.Advance()
}

func (p *player) generate(source domain.QuizSource) (domain.Quiz, error) {
	fmt.Fprintf(p.out, "Generating %d questions about %q...\n", p.count, source.Title())
	return p.gateway.GenerateQuiz(p.ctx, source, p.count)
}

func (p *player) initialSource(topic, file string) (domain.QuizSource, error) {
	switch {
	case file != "":
		return documentSource(file)
	case topic != "":
		return domain.TopicSource(topic), nil
	default:
		return p.askSource()
	}
}

// askSource offers trending topics and reads a topic or a path to a PDF.
func (p *player) askSource() (domain.QuizSource, error) {
	topics, ok := p.gateway.TrendingTopics(p.ctx)
	if !ok || len(topics) == 0 {
		line, err := p.prompt("Type a topic or give a path to a PDF: ")
		if err != nil {
			return domain.QuizSource{}, err
		}
		return sourceFromInput(line)
	}

	fmt.Fprintln(p.out, "Trending topics:")
	for i, t := range topics {
		fmt.Fprintf(p.out, "  %d) %s\n", i+1, t)
	}
	line, err := p.prompt("Pick a number, type a topic, or give a path to a PDF: ")
	if err != nil {
		return domain.QuizSource{}, err
	}
	if n, err := strconv.Atoi(line); err == nil && n >= 1 && n <= len(topics) {
		return domain.TopicSource(topics[n-1]), nil
	}
	return sourceFromInput(line)
}

func sourceFromInput(line string) (domain.QuizSource, error) {
	if strings.EqualFold(filepath.Ext(line), ".pdf") {
		return documentSource(line)
	}
	return domain.TopicSource(line), nil
}

func documentSource(path string) (domain.QuizSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.QuizSource{}, domain.NewInvalidInputError(fmt.Sprintf("Could not read %s.", path)).WithContext("cause", err.Error())
	}
	mediaType := mime.TypeByExtension(filepath.Ext(path))
	return domain.DocumentSource(filepath.Base(path), mediaType, data), nil
}

func (p *player) askOption(options []string) (string, error) {
	for {
		line, err := p.prompt("Your answer: ")
		if err != nil {
			return "", err
		}
		if n, err := strconv.Atoi(line); err == nil && n >= 1 && n <= len(options) {
			return options[n-1], nil
		}
		fmt.Fprintf(p.out, "Enter a number between 1 and %d.\n", len(options))
	}
}

func (p *player) confirm(question string) (bool, error) {
	line, err := p.prompt(question)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(line, "y"), nil
}

func (p *player) prompt(text string) (string, error) {
	fmt.Fprint(p.out, text)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", errQuit
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// userMessage is the text shown for a failed attempt.
func userMessage(err error) string {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Message
	}
	return err.Error()
}
