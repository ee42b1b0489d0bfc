package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"samayak/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func registryQuiz() domain.Quiz {
	return domain.Quiz{{
		Question:      "Q?",
		Options:       []string{"a", "b", "c", "d"},
		CorrectAnswer: "a",
		Explanation:   "a is right",
		Sources:       []domain.Source{},
	}}
}

func newTestRegistry(ttl time.Duration) (*SessionRegistry, *fakeClock) {
	clock := &fakeClock{now: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
	r := NewSessionRegistry(ttl, 0)
	r.now = clock.Now
	return r, clock
}

func TestSessionRegistry_CreateAndGet(t *testing.T) {
	r, _ := newTestRegistry(time.Hour)

	ps, err := r.Create("Go", registryQuiz())
	require.NoError(t, err)
	assert.Len(t, ps.ID, 26)
	assert.Equal(t, "Go", ps.Title())
	assert.Equal(t, domain.PhaseAnswering, ps.Session.Phase())

	got, err := r.Get(ps.ID)
	require.NoError(t, err)
	assert.Same(t, ps, got)
	assert.Equal(t, 1, r.Len())
}

func TestSessionRegistry_CreateEmptyQuiz(t *testing.T) {
	r, _ := newTestRegistry(time.Hour)
	_, err := r.Create("empty", domain.Quiz{})
	assert.True(t, domain.IsCode(err, domain.CodeInvalidInput))
	assert.Equal(t, 0, r.Len())
}

func TestSessionRegistry_GetUnknown(t *testing.T) {
	r, _ := newTestRegistry(time.Hour)
	_, err := r.Get("missing")
	assert.True(t, domain.IsCode(err, domain.CodeSessionNotFound))
}

func TestSessionRegistry_ExpiresTTLAfterCreation(t *testing.T) {
	r, clock := newTestRegistry(time.Hour)
	ps, err := r.Create("Go", registryQuiz())
	require.NoError(t, err)

	clock.Advance(50 * time.Minute)
	_, err = r.Get(ps.ID)
	require.NoError(t, err)

	clock.Advance(11 * time.Minute)
	_, err = r.Get(ps.ID)
	assert.True(t, domain.IsCode(err, domain.CodeSessionNotFound), "activity does not extend the lifetime")
	assert.Equal(t, 0, r.Len())
	assert.Equal(t, domain.PhaseIdle, ps.Session.Phase())
}

func TestSessionRegistry_LifetimeMatchesToken(t *testing.T) {
	const ttl = 2 * time.Hour
	r, clock := newTestRegistry(ttl)
	svc, err := NewSessionTokenService(testSecret, ttl)
	require.NoError(t, err)
	svc.(*sessionTokenServiceImpl).now = clock.Now

	ps, err := r.Create("Go", registryQuiz())
	require.NoError(t, err)
	token, expiresAt, err := svc.Issue(ps.ID, ps.Title())
	require.NoError(t, err)
	assert.Equal(t, ps.CreatedAt.Add(ttl), expiresAt)

	for _, step := range []time.Duration{30 * time.Minute, 60 * time.Minute, 29 * time.Minute} {
		clock.Advance(step)
		_, getErr := r.Get(ps.ID)
		_, verifyErr := svc.Verify(token)
		require.NoError(t, getErr)
		require.NoError(t, verifyErr)
	}

	clock.Advance(31 * time.Minute)
	_, getErr := r.Get(ps.ID)
	_, verifyErr := svc.Verify(token)
	assert.True(t, domain.IsCode(getErr, domain.CodeSessionNotFound))
	assert.ErrorIs(t, verifyErr, ErrInvalidSessionToken)
}

func TestSessionRegistry_Sweep(t *testing.T) {
	r, clock := newTestRegistry(time.Hour)
	old, err := r.Create("old", registryQuiz())
	require.NoError(t, err)
	clock.Advance(45 * time.Minute)
	fresh, err := r.Create("fresh", registryQuiz())
	require.NoError(t, err)

	clock.Advance(30 * time.Minute)
	assert.Equal(t, 1, r.Sweep())

	_, err = r.Get(old.ID)
	assert.Error(t, err)
	_, err = r.Get(fresh.ID)
	assert.NoError(t, err)
}

func TestSessionRegistry_RunStopsWithContext(t *testing.T) {
	r, clock := newTestRegistry(time.Minute)
	_, err := r.Create("Go", registryQuiz())
	require.NoError(t, err)
	clock.Advance(2 * time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		r.Run(ctx, 5*time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool { return r.Len() == 0 }, time.Second, 5*time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestSessionRegistry_Remove(t *testing.T) {
	r, _ := newTestRegistry(time.Hour)
	ps, err := r.Create("Go", registryQuiz())
	require.NoError(t, err)

	r.Remove(ps.ID)
	r.Remove(ps.ID)

	assert.Equal(t, 0, r.Len())
	assert.Equal(t, domain.PhaseIdle, ps.Session.Phase())
}
