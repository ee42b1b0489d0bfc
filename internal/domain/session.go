package domain

import (
	"sync"
	"time"
)

// Phase is the state of a quiz session.
type Phase string

const (
	// PhaseIdle means no quiz is loaded; a new one must be generated.
	PhaseIdle      Phase = "idle"
	PhaseAnswering Phase = "answering"
	PhaseRevealed  Phase = "revealed"
	PhaseFinished  Phase = "finished"
)

// DefaultRevealDelay is how long feedback plays before the explanation shows.
const DefaultRevealDelay = 1500 * time.Millisecond

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithRevealDelay overrides DefaultRevealDelay. Zero or less reveals immediately.
func WithRevealDelay(d time.Duration) SessionOption {
	return func(s *Session) {
		s.revealDelay = d
	}
}

// WithRevealHook registers fn to run when an explanation becomes visible.
// fn receives the position of the revealed question and runs without the session lock held.
func WithRevealHook(fn func(position int)) SessionOption {
	return func(s *Session) {
		s.onReveal = fn
	}
}

// Session walks one player through one quiz.
//
// A selection is scored immediately; the explanation becomes visible after the
// reveal delay, and only then can the session advance. Each scheduled reveal is
// tagged with a generation number so a timer that fires after the question has
// changed, or after a restart, does nothing.
type Session struct {
	mu sync.Mutex

	quiz               Quiz
	position           int
	selected           string
	hasSelection       bool
	correct            bool
	score              int
	phase              Phase
	explanationVisible bool

	revealDelay time.Duration
	onReveal    func(position int)
	timer       *time.Timer
	generation  uint64
}

// NewSession starts a session at the first question.
func NewSession(quiz Quiz, opts ...SessionOption) (*Session, error) {
	s := &Session{
		phase:       PhaseIdle,
		revealDelay: DefaultRevealDelay,
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.Load(quiz); err != nil {
		return nil, err
	}
	return s, nil
}

// Load replaces whatever the session holds with a fresh play of quiz.
func (s *Session) Load(quiz Quiz) error {
	if len(quiz) == 0 {
		return NewInvalidInputError("a session needs at least one question")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelRevealLocked()
	s.quiz = quiz
	s.position = 0
	s.score = 0
	s.clearSelectionLocked()
	s.phase = PhaseAnswering
	return nil
}

// SelectAnswer records answer for the current question.
// It returns false without error when the question was already answered.
func (s *Session) SelectAnswer(answer string) (bool, error) {
	s.mu.Lock()
	switch s.phase {
	case PhaseIdle:
		s.mu.Unlock()
		return false, NewInvalidStateError("no quiz is loaded")
	case PhaseFinished:
		s.mu.Unlock()
		return false, NewInvalidStateError("the quiz is already finished")
	}
	if s.hasSelection {
		s.mu.Unlock()
		return false, nil
	}

	s.selected = answer
	s.hasSelection = true
	s.correct = s.quiz[s.position].IsCorrect(answer)
	if s.correct {
		s.score++
	}
	s.phase = PhaseRevealed
	s.generation++
	gen := s.generation

	if s.revealDelay <= 0 {
		hook, pos := s.revealLocked()
		s.mu.Unlock()
		if hook != nil {
			hook(pos)
		}
		return true, nil
	}

	s.timer = time.AfterFunc(s.revealDelay, func() { s.reveal(gen) })
	s.mu.Unlock()
	return true, nil
}

func (s *Session) reveal(gen uint64) {
	s.mu.Lock()
	if gen != s.generation || s.phase != PhaseRevealed || s.explanationVisible {
		s.mu.Unlock()
		return
	}
	hook, pos := s.revealLocked()
	s.mu.Unlock()
	if hook != nil {
		hook(pos)
	}
}

func (s *Session) revealLocked() (func(int), int) {
	s.explanationVisible = true
	s.timer = nil
	return s.onReveal, s.position
}

// Advance moves past the current question once its explanation is showing.
func (s *Session) Advance() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhaseRevealed {
		return NewInvalidStateError("no answered question to advance from")
	}
	if !s.explanationVisible {
		return NewInvalidStateError("the explanation is not showing yet")
	}

	s.cancelRevealLocked()
	s.clearSelectionLocked()
	s.position++
	if s.position == len(s.quiz) {
		s.phase = PhaseFinished
	} else {
		s.phase = PhaseAnswering
	}
	return nil
}

// Restart discards the quiz. A new quiz must be loaded before play resumes.
func (s *Session) Restart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelRevealLocked()
	s.quiz = nil
	s.position = 0
	s.score = 0
	s.clearSelectionLocked()
	s.phase = PhaseIdle
}

// CurrentQuestion returns the question being played.
func (s *Session) CurrentQuestion() (Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase == PhaseIdle || s.phase == PhaseFinished {
		return Question{}, NewInvalidStateError("there is no current question")
	}
	return s.quiz[s.position], nil
}

// Summary reports the final score; only valid once finished.
func (s *Session) Summary() (Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhaseFinished {
		return Summary{}, NewInvalidStateError("the quiz is not finished")
	}
	return NewSummary(s.score, len(s.quiz)), nil
}

func (s *Session) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

func (s *Session) Score() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.score
}

func (s *Session) Position() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.position
}

func (s *Session) Total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.quiz)
}

func (s *Session) ExplanationVisible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.explanationVisible
}

// SessionSnapshot is a consistent read of the session state.
type SessionSnapshot struct {
	Phase              Phase
	Position           int
	Total              int
	Score              int
	SelectedAnswer     *string
	Correct            *bool
	ExplanationVisible bool
	// Question is nil when idle or finished.
	Question *Question
	// Progress is the share of questions already passed, 0 to 100.
	Progress float64
}

// Snapshot returns all state under a single lock.
func (s *Session) Snapshot() SessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := SessionSnapshot{
		Phase:              s.phase,
		Position:           s.position,
		Total:              len(s.quiz),
		Score:              s.score,
		ExplanationVisible: s.explanationVisible,
	}
	if s.hasSelection {
		selected, correct := s.selected, s.correct
		snap.SelectedAnswer = &selected
		snap.Correct = &correct
	}
	if s.phase == PhaseAnswering || s.phase == PhaseRevealed {
		q := s.quiz[s.position]
		snap.Question = &q
	}
	if len(s.quiz) > 0 {
		snap.Progress = float64(s.position) / float64(len(s.quiz)) * 100
	}
	return snap
}

func (s *Session) clearSelectionLocked() {
	s.selected = ""
	s.hasSelection = false
	s.correct = false
	s.explanationVisible = false
}

func (s *Session) cancelRevealLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.generation++
}
