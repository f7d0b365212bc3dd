package session

import (
	"errors"
	"time"

	"github.com/bluele/gcache"
	"github.com/google/uuid"
	"github.com/travigo/shuttle-planner/pkg/metrics"
	"github.com/travigo/shuttle-planner/pkg/planner"
)

var ErrSessionNotFound = errors.New("session not found")

// Store keeps the live sessions of the web API. Sessions expire after ttl
// without use and the least recently used ones are dropped beyond maxSessions.
type Store struct {
	sessions gcache.Cache
	planner  *planner.Planner
	options  Options
}

func NewStore(tripPlanner *planner.Planner, maxSessions int, ttl time.Duration, options Options) *Store {
	return &Store{
		sessions: gcache.New(maxSessions).LRU().Expiration(ttl).Build(),
		planner:  tripPlanner,
		options:  options,
	}
}

func (s *Store) Create() (*Session, error) {
	session := New(uuid.NewString(), s.planner, s.options)

	if err := s.sessions.Set(session.ID, session); err != nil {
		return nil, err
	}
	s.updateGauge()

	return session, nil
}

// Get returns the session and pushes its expiry back.
func (s *Store) Get(id string) (*Session, error) {
	value, err := s.sessions.Get(id)
	if errors.Is(err, gcache.KeyNotFoundError) {
		return nil, ErrSessionNotFound
	} else if err != nil {
		return nil, err
	}

	session := value.(*Session)
	if err := s.sessions.Set(id, session); err != nil {
		return nil, err
	}

	return session, nil
}

func (s *Store) Delete(id string) bool {
	removed := s.sessions.Remove(id)
	s.updateGauge()

	return removed
}

func (s *Store) Len() int {
	return s.sessions.Len(true)
}

func (s *Store) updateGauge() {
	metrics.ActiveSessionsGauge.Set(float64(s.sessions.Len(true)))
}
