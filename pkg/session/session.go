package session

import (
	"errors"
	"fmt"
	"sync"

	"github.com/bluele/gcache"
	"github.com/rs/zerolog/log"
	"github.com/travigo/shuttle-planner/pkg/importer"
	"github.com/travigo/shuttle-planner/pkg/metrics"
	"github.com/travigo/shuttle-planner/pkg/planner"
	"github.com/travigo/shuttle-planner/pkg/trips"
)

var ErrAwaitingUpload = errors.New("awaiting file upload")

type Options struct {
	MemoSize   int
	MonthOrder trips.MonthOrder
}

// Session owns the trip table of one uploaded file. It starts out awaiting an
// upload, and every failed upload puts it back there so no stale views are served.
type Session struct {
	ID string

	mutex      sync.Mutex
	planner    *planner.Planner
	monthOrder trips.MonthOrder

	filename string
	table    trips.TripTable
	months   []string
	loaded   bool

	memo gcache.Cache
}

func New(id string, tripPlanner *planner.Planner, options Options) *Session {
	memoSize := options.MemoSize
	if memoSize <= 0 {
		memoSize = 1
	}

	return &Session{
		ID:         id,
		planner:    tripPlanner,
		monthOrder: options.MonthOrder,
		memo:       gcache.New(memoSize).LRU().Build(),
	}
}

// Upload replaces the session table with the contents of a new file and returns
// the months that can be selected.
func (s *Session) Upload(filename string, data []byte) ([]string, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.reset()

	table, formatName, err := importer.Import(filename, data)
	if err == nil {
		table, err = trips.Enrich(table)
	}
	metrics.RecordUpload(string(formatName), table.Len(), err)

	if err != nil {
		log.Warn().Str("session", s.ID).Str("file", filename).Err(err).Msg("Rejected upload")
		return nil, err
	}

	s.filename = filename
	s.table = table
	s.months = table.Months(s.monthOrder)
	s.loaded = true

	log.Info().Str("session", s.ID).Str("file", filename).Int("records", table.Len()).Strs("months", s.months).Msg("Loaded trip table")

	return s.selectableMonths()
}

func (s *Session) Months() ([]string, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.selectableMonths()
}

func (s *Session) selectableMonths() ([]string, error) {
	if !s.loaded {
		return nil, ErrAwaitingUpload
	}

	months := make([]string, len(s.months))
	copy(months, s.months)

	return months, nil
}

func (s *Session) Filename() string {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.filename
}

func (s *Session) Loaded() bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.loaded
}

// Plan returns the views for a month and traffic level, computing them only when
// the memo does not already hold them.
func (s *Session) Plan(month string, traffic string) (*planner.Plan, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if !s.loaded {
		return nil, ErrAwaitingUpload
	}

	level, err := planner.ParseTrafficLevel(traffic)
	if err != nil {
		return nil, err
	}

	key := memoKey(month, level)
	if cached, err := s.memo.Get(key); err == nil {
		metrics.PlanMemoHitsTotal.Inc()
		return cached.(*planner.Plan), nil
	}

	plan, err := s.planner.Compute(s.table, month, level)
	if err != nil {
		return nil, err
	}
	metrics.PlansComputedTotal.WithLabelValues(string(level)).Inc()

	if err := s.memo.Set(key, plan); err != nil {
		log.Error().Err(err).Str("session", s.ID).Msg("Failed to memoise plan")
	}

	return plan, nil
}

// Reset drops the current table and returns the session to awaiting an upload.
func (s *Session) Reset() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.reset()
}

func (s *Session) reset() {
	s.filename = ""
	s.table = trips.TripTable{}
	s.months = nil
	s.loaded = false
	s.memo.Purge()
}

func memoKey(month string, level planner.TrafficLevel) string {
	return fmt.Sprintf("%s|%s", month, level)
}
