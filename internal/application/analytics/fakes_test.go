package analytics

import (
	"context"
	"errors"
	"maps"
	"sort"
	"time"

	"github.com/doorshop/backend/internal/domain/analytics"
	"github.com/doorshop/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

var errInjected = errors.New("injected failure")

// memoryStore keeps analytics tables in maps and emulates transaction rollback by snapshot
type memoryStore struct {
	products   map[uuid.UUID]bool
	events     []analytics.Event
	sessions   map[string]analytics.Session
	summaries  map[string]analytics.DailySummary
	rankings   map[uuid.UUID]analytics.Ranking
	popularity map[uuid.UUID]float64

	failSummarySave bool
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		products:   make(map[uuid.UUID]bool),
		sessions:   make(map[string]analytics.Session),
		summaries:  make(map[string]analytics.DailySummary),
		rankings:   make(map[uuid.UUID]analytics.Ranking),
		popularity: make(map[uuid.UUID]float64),
	}
}

func (s *memoryStore) addProduct(inStock bool) uuid.UUID {
	id := uuid.New()
	s.products[id] = inStock
	return id
}

func summaryKey(productID uuid.UUID, day time.Time) string {
	return productID.String() + "|" + analytics.DayKey(day)
}

func (s *memoryStore) summary(productID uuid.UUID, day time.Time) (analytics.DailySummary, bool) {
	row, ok := s.summaries[summaryKey(productID, day)]
	return row, ok
}

// Execute implements TransactionScope
func (s *memoryStore) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	events := append([]analytics.Event(nil), s.events...)
	sessions := maps.Clone(s.sessions)
	summaries := maps.Clone(s.summaries)
	rankings := maps.Clone(s.rankings)
	popularity := maps.Clone(s.popularity)

	if err := fn(memoryRepos{s}); err != nil {
		s.events, s.sessions, s.summaries, s.rankings, s.popularity = events, sessions, summaries, rankings, popularity
		return err
	}
	return nil
}

type memoryRepos struct{ s *memoryStore }

func (r memoryRepos) EventRepo() analytics.EventRepository     { return memoryEventRepo{r.s} }
func (r memoryRepos) SessionRepo() analytics.SessionRepository { return memorySessionRepo{r.s} }
func (r memoryRepos) SummaryRepo() analytics.SummaryRepository { return memorySummaryRepo{r.s} }
func (r memoryRepos) RankingRepo() analytics.RankingRepository { return memoryRankingRepo{r.s} }

type memoryEventRepo struct{ s *memoryStore }

func (r memoryEventRepo) SaveBatch(_ context.Context, events []*analytics.Event) error {
	for _, e := range events {
		r.s.events = append(r.s.events, *e)
	}
	return nil
}

func (r memoryEventRepo) CountByProduct(_ context.Context, productID uuid.UUID, since time.Time) (map[analytics.EventType]int64, error) {
	out := make(map[analytics.EventType]int64)
	for _, e := range r.s.events {
		if e.ProductID == productID && !e.CreatedAt.Before(since) {
			out[e.EventType]++
		}
	}
	return out, nil
}

type memorySessionRepo struct{ s *memoryStore }

func (r memorySessionRepo) FindBySessionID(_ context.Context, sessionID string) (*analytics.Session, error) {
	session, ok := r.s.sessions[sessionID]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return &session, nil
}

func (r memorySessionRepo) FindOrCreate(_ context.Context, candidate *analytics.Session) (*analytics.Session, error) {
	if _, ok := r.s.sessions[candidate.SessionID]; !ok {
		r.s.sessions[candidate.SessionID] = *candidate
	}
	session := r.s.sessions[candidate.SessionID]
	return &session, nil
}

func (r memorySessionRepo) Save(_ context.Context, session *analytics.Session) error {
	r.s.sessions[session.SessionID] = *session
	return nil
}

type memorySummaryRepo struct{ s *memoryStore }

func (r memorySummaryRepo) FindOrCreate(_ context.Context, productID uuid.UUID, day time.Time) (*analytics.DailySummary, error) {
	key := summaryKey(productID, day)
	row, ok := r.s.summaries[key]
	if !ok {
		row = *analytics.NewDailySummary(productID, day)
		r.s.summaries[key] = row
	}
	return &row, nil
}

func (r memorySummaryRepo) Save(_ context.Context, summary *analytics.DailySummary) error {
	if r.s.failSummarySave {
		return errInjected
	}
	r.s.summaries[summaryKey(summary.ProductID, summary.Date)] = *summary
	return nil
}

func (r memorySummaryRepo) ListByProduct(_ context.Context, productID uuid.UUID, since time.Time) ([]analytics.DailySummary, error) {
	var rows []analytics.DailySummary
	for _, row := range r.s.summaries {
		if row.ProductID == productID && !row.Date.Before(since) {
			rows = append(rows, row)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Date.After(rows[j].Date) })
	return rows, nil
}

func (r memorySummaryRepo) ListSince(_ context.Context, since time.Time) (map[uuid.UUID][]analytics.DailySummary, error) {
	out := make(map[uuid.UUID][]analytics.DailySummary)
	for _, row := range r.s.summaries {
		if !row.Date.Before(since) {
			out[row.ProductID] = append(out[row.ProductID], row)
		}
	}
	return out, nil
}

type memoryRankingRepo struct{ s *memoryStore }

func (r memoryRankingRepo) FindByProductID(_ context.Context, productID uuid.UUID) (*analytics.Ranking, error) {
	ranking, ok := r.s.rankings[productID]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return &ranking, nil
}

func (r memoryRankingRepo) FindOrCreate(ctx context.Context, productID uuid.UUID) (*analytics.Ranking, error) {
	if _, ok := r.s.rankings[productID]; !ok {
		r.s.rankings[productID] = *analytics.NewRanking(productID)
	}
	return r.FindByProductID(ctx, productID)
}

func (r memoryRankingRepo) Save(_ context.Context, ranking *analytics.Ranking) error {
	r.s.rankings[ranking.ProductID] = *ranking
	return nil
}

func (r memoryRankingRepo) ForEachBatch(_ context.Context, size int, fn func(rankings []analytics.Ranking) error) error {
	all := make([]analytics.Ranking, 0, len(r.s.rankings))
	for _, ranking := range r.s.rankings {
		all = append(all, ranking)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID.String() < all[j].ID.String() })
	for start := 0; start < len(all); start += size {
		end := min(start+size, len(all))
		if err := fn(all[start:end]); err != nil {
			return err
		}
	}
	return nil
}

func (r memoryRankingRepo) CreateMissing(_ context.Context) (int64, error) {
	var created int64
	for id := range r.s.products {
		if _, ok := r.s.rankings[id]; !ok {
			r.s.rankings[id] = *analytics.NewRanking(id)
			created++
		}
	}
	return created, nil
}

func (r memoryRankingRepo) StockStatus(_ context.Context, productIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	out := make(map[uuid.UUID]bool)
	for _, id := range productIDs {
		if inStock, ok := r.s.products[id]; ok {
			out[id] = inStock
		}
	}
	return out, nil
}

func (r memoryRankingRepo) SyncPopularity(_ context.Context, productID uuid.UUID, score float64) error {
	r.s.popularity[productID] = score
	return nil
}

// MockEventPublisher is a mock implementation of EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}

// recordingMetrics counts what the services report
type recordingMetrics struct {
	stored       map[string]int
	deduplicated int
	recalcRuns   int
	recalcErr    error
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{stored: make(map[string]int)}
}

func (m *recordingMetrics) EventStored(_ context.Context, eventType string) {
	m.stored[eventType]++
}

func (m *recordingMetrics) ViewsDeduplicated(_ context.Context, n int) {
	m.deduplicated += n
}

func (m *recordingMetrics) RecalculationFinished(_ context.Context, _ time.Duration, err error) {
	m.recalcRuns++
	m.recalcErr = err
}

var (
	_ TransactionScope            = (*memoryStore)(nil)
	_ analytics.RankingRepository = memoryRankingRepo{}
	_ analytics.SummaryRepository = memorySummaryRepo{}
	_ analytics.EventRepository   = memoryEventRepo{}
	_ analytics.SessionRepository = memorySessionRepo{}
	_ Metrics                     = (*recordingMetrics)(nil)
	_ shared.EventPublisher       = (*MockEventPublisher)(nil)
)
