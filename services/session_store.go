package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru"
	"go.uber.org/zap"

	"wemovies/libs"
	"wemovies/models"
)

const DefaultMaxSessions = 10000

// Session is one browser session: a cart shared by all its views and the
// catalog view of its latest page load.
type Session struct {
	ID   string
	Cart *CartStore

	mu       sync.Mutex
	view     *CatalogView
	shown    *CatalogView
	lastSeen time.Time
}

func (s *Session) CatalogView() *CatalogView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

// MarkShown records that view's terminal state was rendered to the user. Only
// a shown Empty or Error view is replaced on the next page load.
func (s *Session) MarkShown(view *CatalogView) {
	if !view.State().Status.Terminal() {
		return
	}
	s.mu.Lock()
	s.shown = view
	s.mu.Unlock()
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// SessionStore keeps sessions in memory only; a restart forgets every cart.
// Past maxSessions the least recently used session is evicted.
type SessionStore struct {
	catalog    CatalogFetcher
	minLoading time.Duration
	sessions   *lru.Cache
}

func NewSessionStore(catalog CatalogFetcher, minLoading time.Duration, maxSessions int) *SessionStore {
	if maxSessions <= 0 {
		maxSessions = DefaultMaxSessions
	}
	// lru.NewWithEvict only fails for non-positive sizes.
	sessions, _ := lru.NewWithEvict(maxSessions, func(key, _ interface{}) {
		libs.Log.Debug("session evicted", zap.Any("session", key))
	})
	return &SessionStore{
		catalog:    catalog,
		minLoading: minLoading,
		sessions:   sessions,
	}
}

// Resolve returns the session for id, creating a fresh one when id is empty
// or unknown. The second result reports whether a session was created.
func (s *SessionStore) Resolve(id string) (*Session, bool) {
	now := time.Now()
	if id != "" {
		if v, ok := s.sessions.Get(id); ok {
			sess := v.(*Session)
			sess.touch(now)
			return sess, false
		}
	}

	sess := &Session{ID: uuid.NewString(), Cart: NewCartStore(), lastSeen: now}
	s.sessions.Add(sess.ID, sess)

	libs.SetActiveSessions(s.sessions.Len())
	return sess, true
}

// CatalogForPage returns the view a catalog page load should render. A new
// view is mounted when the session has none, when reload is requested, or
// when the previous one ended Empty or Error and that state was already shown.
// A Loaded view is reused so cart intents posted from it do not refetch the
// catalog.
func (s *SessionStore) CatalogForPage(ctx context.Context, sess *Session, reload bool) *CatalogView {
	sess.mu.Lock()
	if reload || sess.view == nil || (sess.shown == sess.view && needsRemount(sess.view.State())) {
		sess.view = NewCatalogView(s.catalog, s.minLoading)
	}
	view := sess.view
	sess.mu.Unlock()

	view.Mount(ctx)
	return view
}

func needsRemount(state models.CatalogState) bool {
	return state.Status == models.CatalogEmpty || state.Status == models.CatalogError
}

// CurrentCatalog returns the session's catalog view, mounting one if the
// session has never loaded the catalog.
func (s *SessionStore) CurrentCatalog(ctx context.Context, sess *Session) *CatalogView {
	sess.mu.Lock()
	if sess.view == nil {
		sess.view = NewCatalogView(s.catalog, s.minLoading)
	}
	view := sess.view
	sess.mu.Unlock()

	view.Mount(ctx)
	return view
}

func (s *SessionStore) Len() int {
	return s.sessions.Len()
}

// Sweep drops sessions idle for longer than maxIdle and returns how many.
func (s *SessionStore) Sweep(maxIdle time.Duration) int {
	cutoff := time.Now().Add(-maxIdle)

	removed := 0
	for _, key := range s.sessions.Keys() {
		v, ok := s.sessions.Peek(key)
		if !ok {
			continue
		}
		if v.(*Session).idleSince().Before(cutoff) {
			s.sessions.Remove(key)
			removed++
		}
	}

	libs.SetActiveSessions(s.sessions.Len())
	return removed
}

// RunJanitor sweeps idle sessions every interval until ctx is done.
func (s *SessionStore) RunJanitor(ctx context.Context, interval, maxIdle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Sweep(maxIdle); n > 0 {
				libs.Log.Info("swept idle sessions", zap.Int("removed", n), zap.Int("active", s.Len()))
			}
		}
	}
}
