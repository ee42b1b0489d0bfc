package service

import (
	"context"
	"sync"
	"time"

	"samayak/internal/domain"
	"samayak/internal/logger"
	"samayak/internal/util"

	"go.uber.org/zap"
)

// PlaySession is a registered session and the quiz title shown with it.
type PlaySession struct {
	ID        string
	Session   *domain.Session
	CreatedAt time.Time

	mu    sync.Mutex
	title string
}

func (p *PlaySession) Title() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.title
}

func (p *PlaySession) setTitle(title string) {
	p.mu.Lock()
	p.title = title
	p.mu.Unlock()
}

// SessionRegistry keeps sessions in memory and drops them ttl after creation,
// the same lifetime as the session token issued with them.
type SessionRegistry struct {
	mu          sync.RWMutex
	sessions    map[string]*PlaySession
	ttl         time.Duration
	revealDelay time.Duration
	now         func() time.Time
}

func NewSessionRegistry(ttl, revealDelay time.Duration) *SessionRegistry {
	return &SessionRegistry{
		sessions:    make(map[string]*PlaySession),
		ttl:         ttl,
		revealDelay: revealDelay,
		now:         time.Now,
	}
}

// Create registers a new session playing quiz.
func (r *SessionRegistry) Create(title string, quiz domain.Quiz) (*PlaySession, error) {
	id := util.NewULID()
	s, err := domain.NewSession(quiz,
		domain.WithRevealDelay(r.revealDelay),
		domain.WithRevealHook(func(position int) {
			logger.Get().Debug("Explanation revealed", zap.String("session_id", id), zap.Int("position", position))
		}),
	)
	if err != nil {
		return nil, err
	}

	now := r.now()
	ps := &PlaySession{ID: id, Session: s, CreatedAt: now, title: title}

	r.mu.Lock()
	r.sessions[id] = ps
	r.mu.Unlock()

	logger.Get().Info("Session created", zap.String("session_id", id), zap.String("title", title), zap.Int("questions", len(quiz)))
	return ps, nil
}

// Get returns a live session.
func (r *SessionRegistry) Get(id string) (*PlaySession, error) {
	r.mu.RLock()
	ps, ok := r.sessions[id]
	r.mu.RUnlock()
	if !ok {
		return nil, domain.NewSessionNotFoundError(id)
	}

	now := r.now()
	if r.expired(ps, now) {
		r.Remove(id)
		return nil, domain.NewSessionNotFoundError(id)
	}
	return ps, nil
}

// Remove stops the session's pending reveal and forgets it.
func (r *SessionRegistry) Remove(id string) {
	r.mu.Lock()
	ps, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()
	if ok {
		ps.Session.Restart()
	}
}

// Sweep removes expired sessions and returns how many were removed.
func (r *SessionRegistry) Sweep() int {
	now := r.now()

	r.mu.Lock()
	var expired []*PlaySession
	for id, ps := range r.sessions {
		if r.expired(ps, now) {
			expired = append(expired, ps)
			delete(r.sessions, id)
		}
	}
	r.mu.Unlock()

	for _, ps := range expired {
		ps.Session.Restart()
	}
	return len(expired)
}

// Run sweeps every interval until ctx is done.
func (r *SessionRegistry) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.Sweep(); n > 0 {
				logger.Get().Info("Expired sessions removed", zap.Int("count", n))
			}
		}
	}
}

func (r *SessionRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

func (r *SessionRegistry) expired(ps *PlaySession, now time.Time) bool {
	return r.ttl > 0 && now.Sub(ps.CreatedAt) > r.ttl
}
