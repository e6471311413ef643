package dialogue

import (
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/jonathan/resume-builder-bot/internal/types"
)

// Session is one user's in-progress collection run: the step being waited on
// and the record accumulated so far.
type Session struct {
	State  State
	Resume types.Resume
}

// storePurgeInterval is how often expired sessions are swept.
const storePurgeInterval = 10 * time.Minute

// Store holds active sessions keyed by session ID. Abandoned sessions expire
// after the configured TTL; touching a session on every step keeps active
// ones alive.
type Store struct {
	cache *cache.Cache
}

// NewStore creates a session store whose entries expire ttl after their last
// update.
func NewStore(ttl time.Duration) *Store {
	return &Store{cache: cache.New(ttl, storePurgeInterval)}
}

// Get returns the session for sessionID, if one is active.
func (s *Store) Get(sessionID string) (*Session, bool) {
	if x, found := s.cache.Get(sessionID); found {
		return x.(*Session), true
	}
	return nil, false
}

// Put saves session under sessionID and resets its expiration.
func (s *Store) Put(sessionID string, session *Session) {
	s.cache.Set(sessionID, session, cache.DefaultExpiration)
}

// Delete discards the session for sessionID, if any.
func (s *Store) Delete(sessionID string) {
	s.cache.Delete(sessionID)
}
