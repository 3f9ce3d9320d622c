package analytics

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/doorshop/backend/internal/domain/analytics"
	"github.com/doorshop/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxEventTypeLength = 50

// ErrProductNotFound is returned by single-product tracking calls for unknown products
var ErrProductNotFound = shared.NewDomainError(shared.CodeNotFound, "Product not found")

// TrackingConfig controls event ingestion
type TrackingConfig struct {
	MaxBatchSize int
}

// TrackingService ingests storefront events and folds them into rankings,
// daily summaries and sessions. Every request commits in one transaction.
type TrackingService struct {
	txScope        TransactionScope
	dedup          shared.IdempotencyStore
	config         TrackingConfig
	eventPublisher shared.EventPublisher
	metrics        Metrics
	logger         *zap.Logger
	now            func() time.Time
}

// NewTrackingService creates a new TrackingService
func NewTrackingService(
	txScope TransactionScope,
	dedup shared.IdempotencyStore,
	config TrackingConfig,
	logger *zap.Logger,
) *TrackingService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TrackingService{
		txScope: txScope,
		dedup:   dedup,
		config:  config,
		metrics: noopMetrics{},
		logger:  logger,
		now:     time.Now,
	}
}

// SetEventPublisher sets the publisher for AnalyticsBatchApplied events
func (s *TrackingService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// SetMetrics sets the pipeline metrics sink
func (s *TrackingService) SetMetrics(metrics Metrics) {
	if metrics != nil {
		s.metrics = metrics
	}
}

// trackedEvent is a parsed event with its resolved session key
type trackedEvent struct {
	event       *analytics.Event
	sessionKey  string
	duration    float64
	interaction analytics.InteractionType
}

// sessionUpdate accumulates what one request did to one session
type sessionUpdate struct {
	client   analytics.ClientInfo
	activity analytics.SessionActivity
}

// ProcessBatch stores a batch of events and applies the deduplicated activity
func (s *TrackingService) ProcessBatch(ctx context.Context, req BatchRequest, meta RequestMeta) (*BatchResult, error) {
	if len(req.Events) == 0 {
		return nil, shared.NewValidationError("events must not be empty")
	}
	if s.config.MaxBatchSize > 0 && len(req.Events) > s.config.MaxBatchSize {
		return nil, shared.NewValidationError(
			fmt.Sprintf("batch exceeds the limit of %d events", s.config.MaxBatchSize))
	}

	parsed := make([]trackedEvent, 0, len(req.Events))
	malformed := 0
	for _, in := range req.Events {
		te, ok := s.parseEvent(in, req.SessionData, meta)
		if !ok {
			malformed++
			continue
		}
		parsed = append(parsed, te)
	}

	result := &BatchResult{Skipped: malformed}
	if len(parsed) == 0 {
		return result, nil
	}

	now := s.now().UTC()
	guard := newDedupGuard(s.dedup, s.logger)
	var stored []*analytics.Event

	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		*result = BatchResult{Skipped: malformed}
		stored = stored[:0]

		known, err := repos.RankingRepo().StockStatus(ctx, distinctProducts(parsed))
		if err != nil {
			return fmt.Errorf("failed to look up products: %w", err)
		}

		activity := make(map[uuid.UUID]*analytics.ProductActivity)
		var productOrder []uuid.UUID
		sessions := make(map[string]*sessionUpdate)
		var sessionOrder []string

		for _, te := range parsed {
			productID := te.event.ProductID
			if _, ok := known[productID]; !ok {
				result.Skipped++
				continue
			}
			stored = append(stored, te.event)

			a, ok := activity[productID]
			if !ok {
				a = &analytics.ProductActivity{ProductID: productID}
				activity[productID] = a
				productOrder = append(productOrder, productID)
			}
			su, ok := sessions[te.sessionKey]
			if !ok {
				su = &sessionUpdate{client: clientFromEvent(te.event)}
				sessions[te.sessionKey] = su
				sessionOrder = append(sessionOrder, te.sessionKey)
			}
			su.activity.PageViews++
			if te.event.PageURL != "" {
				su.activity.LastPage = te.event.PageURL
			}

			if guard.mark(ctx, analytics.SessionTouchKey(te.sessionKey, productID, now)) {
				a.NewSessions++
				su.activity.ProductsViewed++
			}

			switch te.event.EventType {
			case analytics.EventCardView, analytics.EventDetailView:
				if !guard.mark(ctx, analytics.ViewDedupKey(te.sessionKey, productID, te.event.EventType, now)) {
					result.Deduplicated++
					continue
				}
				if te.event.EventType == analytics.EventCardView {
					a.Views++
				} else {
					a.DetailViews++
				}
			case analytics.EventViewDuration:
				a.Duration += te.duration
			case analytics.EventInteraction:
				a.Interactions = append(a.Interactions, te.interaction)
				su.activity.Interactions++
			}
		}

		if err := repos.EventRepo().SaveBatch(ctx, stored); err != nil {
			return fmt.Errorf("failed to store events: %w", err)
		}

		for _, productID := range productOrder {
			a := activity[productID]
			if !a.HasScoreInput() {
				continue
			}
			if err := applyActivity(ctx, repos, a, now); err != nil {
				return err
			}
			result.Products++
		}

		for _, key := range sessionOrder {
			su := sessions[key]
			if err := upsertSession(ctx, repos.SessionRepo(), su.client, su.activity, now); err != nil {
				return err
			}
		}

		result.Processed = len(stored)
		return nil
	})
	if err != nil {
		guard.release(ctx)
		s.logger.Error("analytics batch rolled back",
			zap.Int("events", len(req.Events)),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to process analytics batch: %w", err)
	}

	for _, e := range stored {
		s.metrics.EventStored(ctx, string(e.EventType))
	}
	s.metrics.ViewsDeduplicated(ctx, result.Deduplicated)

	if result.Products > 0 {
		s.publish(ctx, analytics.NewAnalyticsBatchAppliedEvent(result.Products))
	}

	s.logger.Debug("analytics batch processed",
		zap.Int("processed", result.Processed),
		zap.Int("skipped", result.Skipped),
		zap.Int("deduplicated", result.Deduplicated),
		zap.Int("products", result.Products),
	)
	return result, nil
}

// TrackProductView records a single card view; repeated views of the same session and day do not count
func (s *TrackingService) TrackProductView(ctx context.Context, req ProductViewRequest, meta RequestMeta) (*ProductViewResult, error) {
	productID, err := parseProductID(req.ProductID)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	client := s.clientInfo(req.SessionData, meta, "", req.SessionData.PageURL)
	event := analytics.NewEvent(productID, analytics.EventCardView, "", nil, client)
	event.CreatedAt = now

	guard := newDedupGuard(s.dedup, s.logger)
	result := &ProductViewResult{}

	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		if err := ensureProduct(ctx, repos, productID); err != nil {
			return err
		}
		if err := repos.EventRepo().SaveBatch(ctx, []*analytics.Event{event}); err != nil {
			return fmt.Errorf("failed to store event: %w", err)
		}

		firstTouch := guard.mark(ctx, analytics.SessionTouchKey(client.SessionID, productID, now))
		result.Counted = guard.mark(ctx, analytics.ViewDedupKey(client.SessionID, productID, analytics.EventCardView, now))

		act := analytics.SessionActivity{PageViews: 1, LastPage: client.PageURL}
		if firstTouch {
			act.ProductsViewed = 1
		}
		if result.Counted {
			ranking, err := repos.RankingRepo().FindOrCreate(ctx, productID)
			if err != nil {
				return fmt.Errorf("failed to load ranking: %w", err)
			}
			ranking.ApplyView()
			if err := repos.RankingRepo().Save(ctx, ranking); err != nil {
				return fmt.Errorf("failed to save ranking: %w", err)
			}
		}

		delta := analytics.SummaryDelta{}
		if result.Counted {
			delta.Views = 1
		}
		if firstTouch {
			delta.NewSessions = 1
		}
		if err := addToSummary(ctx, repos.SummaryRepo(), productID, delta, now); err != nil {
			return err
		}
		return upsertSession(ctx, repos.SessionRepo(), client, act, now)
	})
	if err != nil {
		guard.release(ctx)
		if errors.Is(err, ErrProductNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to track product view: %w", err)
	}

	s.metrics.EventStored(ctx, string(analytics.EventCardView))
	if !result.Counted {
		s.metrics.ViewsDeduplicated(ctx, 1)
	}
	return result, nil
}

// TrackInteraction applies one weighted interaction to the product's score
func (s *TrackingService) TrackInteraction(ctx context.Context, req InteractionRequest, meta RequestMeta) (*InteractionResult, error) {
	productID, err := parseProductID(req.ProductID)
	if err != nil {
		return nil, err
	}
	interaction := analytics.InteractionType(strings.TrimSpace(req.InteractionType))
	if interaction == "" || len(interaction) > maxEventTypeLength {
		return nil, shared.NewValidationError("interaction_type is required")
	}

	now := s.now().UTC()
	weight := analytics.InteractionWeight(interaction, req.InteractionData)
	client := s.clientInfo(req.SessionData, meta, "", req.SessionData.PageURL)
	event := analytics.NewEvent(productID, analytics.EventInteraction, string(interaction), req.InteractionData, client)
	event.CreatedAt = now

	result := &InteractionResult{Weight: weight}
	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		if err := ensureProduct(ctx, repos, productID); err != nil {
			return err
		}
		if err := repos.EventRepo().SaveBatch(ctx, []*analytics.Event{event}); err != nil {
			return fmt.Errorf("failed to store event: %w", err)
		}

		ranking, err := repos.RankingRepo().FindOrCreate(ctx, productID)
		if err != nil {
			return fmt.Errorf("failed to load ranking: %w", err)
		}
		ranking.ApplyInteraction(weight)
		if err := repos.RankingRepo().Save(ctx, ranking); err != nil {
			return fmt.Errorf("failed to save ranking: %w", err)
		}
		result.RankingScore = ranking.RankingScore

		if err := addToSummary(ctx, repos.SummaryRepo(), productID, analytics.SummaryDelta{Interactions: 1}, now); err != nil {
			return err
		}
		return upsertSession(ctx, repos.SessionRepo(), client,
			analytics.SessionActivity{PageViews: 1, Interactions: 1, LastPage: client.PageURL}, now)
	})
	if err != nil {
		if errors.Is(err, ErrProductNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to track interaction: %w", err)
	}

	s.metrics.EventStored(ctx, string(analytics.EventInteraction))
	return result, nil
}

// parseEvent validates a raw event; false means skip it
func (s *TrackingService) parseEvent(in EventInput, sd SessionData, meta RequestMeta) (trackedEvent, bool) {
	eventType := analytics.EventType(strings.TrimSpace(in.Type))
	if eventType == "" || len(eventType) > maxEventTypeLength || strings.TrimSpace(in.ProductID) == "" {
		return trackedEvent{}, false
	}
	productID, err := uuid.Parse(strings.TrimSpace(in.ProductID))
	if err != nil {
		return trackedEvent{}, false
	}

	pageURL := in.PageURL
	if pageURL == "" {
		pageURL = sd.PageURL
	}
	client := s.clientInfo(sd, meta, in.SessionID, pageURL)

	te := trackedEvent{sessionKey: client.SessionID}
	var (
		subtype string
		data    shared.JSONMap
	)
	switch eventType {
	case analytics.EventViewDuration:
		te.duration = max(in.DurationSeconds, 0)
		data = shared.JSONMap{"duration_seconds": te.duration}
	case analytics.EventInteraction:
		te.interaction = analytics.InteractionType(strings.TrimSpace(in.InteractionType))
		if te.interaction == "" || len(te.interaction) > maxEventTypeLength {
			return trackedEvent{}, false
		}
		subtype = string(te.interaction)
		data = in.InteractionData
	}

	te.event = analytics.NewEvent(productID, eventType, subtype, data, client)
	te.event.CreatedAt = s.now().UTC()
	return te, true
}

// clientInfo resolves the session key: the event's id, then the batch's, then the header, then a hash of IP and agent
func (s *TrackingService) clientInfo(sd SessionData, meta RequestMeta, eventSessionID, pageURL string) analytics.ClientInfo {
	userAgent := sd.UserAgent
	if userAgent == "" {
		userAgent = meta.UserAgent
	}
	referrer := sd.Referrer
	if referrer == "" {
		referrer = meta.Referrer
	}
	deviceType := sd.DeviceType
	if deviceType == "" {
		deviceType = analytics.DetectDeviceType(userAgent)
	}
	return analytics.ClientInfo{
		SessionID:  analytics.ResolveSessionKey(meta.IPAddress, userAgent, eventSessionID, sd.SessionID, meta.SessionHeader),
		UserAgent:  userAgent,
		DeviceType: deviceType,
		Referrer:   referrer,
		PageURL:    pageURL,
		IPAddress:  meta.IPAddress,
	}
}

func (s *TrackingService) publish(ctx context.Context, event shared.DomainEvent) {
	if s.eventPublisher == nil {
		return
	}
	if err := s.eventPublisher.Publish(ctx, event); err != nil {
		s.logger.Warn("failed to publish analytics event",
			zap.String("event_type", event.EventType()),
			zap.Error(err),
		)
	}
}

func parseProductID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, shared.NewValidationError("product_id must be a valid id")
	}
	return id, nil
}

func ensureProduct(ctx context.Context, repos TransactionalRepositories, productID uuid.UUID) error {
	known, err := repos.RankingRepo().StockStatus(ctx, []uuid.UUID{productID})
	if err != nil {
		return fmt.Errorf("failed to look up product: %w", err)
	}
	if _, ok := known[productID]; !ok {
		return ErrProductNotFound
	}
	return nil
}

func distinctProducts(events []trackedEvent) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(events))
	ids := make([]uuid.UUID, 0, len(events))
	for _, te := range events {
		if _, ok := seen[te.event.ProductID]; ok {
			continue
		}
		seen[te.event.ProductID] = struct{}{}
		ids = append(ids, te.event.ProductID)
	}
	return ids
}

func clientFromEvent(e *analytics.Event) analytics.ClientInfo {
	return analytics.ClientInfo{
		SessionID:  e.SessionID,
		UserAgent:  e.UserAgent,
		DeviceType: e.DeviceType,
		Referrer:   e.Referrer,
		PageURL:    e.PageURL,
		IPAddress:  e.IPAddress,
	}
}

// applyActivity bumps the ranking and the daily summary of one product
func applyActivity(ctx context.Context, repos TransactionalRepositories, a *analytics.ProductActivity, now time.Time) error {
	if a.Views > 0 || a.ScoreIncrease() != 0 {
		ranking, err := repos.RankingRepo().FindOrCreate(ctx, a.ProductID)
		if err != nil {
			return fmt.Errorf("failed to load ranking: %w", err)
		}
		ranking.ApplyActivity(a)
		if err := repos.RankingRepo().Save(ctx, ranking); err != nil {
			return fmt.Errorf("failed to save ranking: %w", err)
		}
	}
	return addToSummary(ctx, repos.SummaryRepo(), a.ProductID, a.SummaryDelta(), now)
}

func addToSummary(ctx context.Context, repo analytics.SummaryRepository, productID uuid.UUID, delta analytics.SummaryDelta, now time.Time) error {
	if delta.IsZero() {
		return nil
	}
	summary, err := repo.FindOrCreate(ctx, productID, now)
	if err != nil {
		return fmt.Errorf("failed to load daily summary: %w", err)
	}
	summary.Add(delta)
	if err := repo.Save(ctx, summary); err != nil {
		return fmt.Errorf("failed to save daily summary: %w", err)
	}
	return nil
}

func upsertSession(ctx context.Context, repo analytics.SessionRepository, client analytics.ClientInfo, act analytics.SessionActivity, now time.Time) error {
	session, err := repo.FindOrCreate(ctx, analytics.NewSession(client, now))
	if err != nil {
		return fmt.Errorf("failed to load session: %w", err)
	}
	session.Record(act, now)
	if err := repo.Save(ctx, session); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// dedupGuard marks dedup keys and remembers them so a rolled back request can release them
type dedupGuard struct {
	store  shared.IdempotencyStore
	logger *zap.Logger
	marked []string
}

func newDedupGuard(store shared.IdempotencyStore, logger *zap.Logger) *dedupGuard {
	return &dedupGuard{store: store, logger: logger}
}

// mark reports whether key was seen for the first time. Store failures count as first sight.
func (g *dedupGuard) mark(ctx context.Context, key string) bool {
	if g.store == nil {
		return true
	}
	fresh, err := g.store.MarkProcessed(ctx, key, analytics.DedupTTL)
	if err != nil {
		g.logger.Warn("dedup store unavailable, counting view", zap.Error(err))
		return true
	}
	if fresh {
		g.marked = append(g.marked, key)
	}
	return fresh
}

func (g *dedupGuard) release(ctx context.Context) {
	for _, key := range g.marked {
		if err := g.store.Release(ctx, key); err != nil {
			g.logger.Warn("failed to release dedup key", zap.String("key", key), zap.Error(err))
		}
	}
	g.marked = nil
}
