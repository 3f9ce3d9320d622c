package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	appanalytics "github.com/doorshop/backend/internal/application/analytics"
	"github.com/doorshop/backend/internal/domain/analytics"
	"github.com/doorshop/backend/internal/domain/catalog"
	"github.com/doorshop/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormSummaryRepository_FindOrCreate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormSummaryRepository(db)
	ctx := context.Background()

	productID := uuid.New()
	at := time.Date(2026, 3, 10, 17, 45, 0, 0, time.UTC)

	first, err := repo.FindOrCreate(ctx, productID, at)
	require.NoError(t, err)
	assert.Equal(t, analytics.Day(at), first.Date.UTC())

	first.Add(analytics.SummaryDelta{Views: 3, Duration: 90})
	require.NoError(t, repo.Save(ctx, first))

	again, err := repo.FindOrCreate(ctx, productID, at.Add(3*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)
	assert.Equal(t, 3, again.ViewsCount)
	assert.Equal(t, 30, again.AvgViewDuration)

	_, err = repo.FindOrCreate(ctx, productID, at.Add(-24*time.Hour))
	require.NoError(t, err)

	rows, err := repo.ListByProduct(ctx, productID, at.Add(-30*24*time.Hour))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.True(t, rows[0].Date.After(rows[1].Date), "newest first")

	grouped, err := repo.ListSince(ctx, at)
	require.NoError(t, err)
	assert.Len(t, grouped[productID], 1)
}

func TestGormRankingRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormRankingRepository(db)
	ctx := context.Background()

	ranked := createProduct(t, db, "Ranked")
	bare := createProduct(t, db, "Bare")
	soldOut := createProduct(t, db, "Sold Out", func(p *catalog.Product) { p.InStock = false })
	createRanking(t, db, ranked.ID, 42)

	t.Run("find or create", func(t *testing.T) {
		r, err := repo.FindOrCreate(ctx, ranked.ID)
		require.NoError(t, err)
		assert.Equal(t, 42.0, r.RankingScore)

		_, err = repo.FindByProductID(ctx, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("create missing", func(t *testing.T) {
		created, err := repo.CreateMissing(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(2), created)

		created, err = repo.CreateMissing(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(0), created)

		r, err := repo.FindByProductID(ctx, bare.ID)
		require.NoError(t, err)
		assert.Equal(t, 1.0, r.ProductTypeMultiplier)
	})

	t.Run("walks every record in batches", func(t *testing.T) {
		seen := 0
		batches := 0
		err := repo.ForEachBatch(ctx, 2, func(rankings []analytics.Ranking) error {
			seen += len(rankings)
			batches++
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, seen)
		assert.Equal(t, 2, batches)
	})

	t.Run("stock status and popularity sync", func(t *testing.T) {
		stock, err := repo.StockStatus(ctx, []uuid.UUID{ranked.ID, soldOut.ID})
		require.NoError(t, err)
		assert.True(t, stock[ranked.ID])
		assert.False(t, stock[soldOut.ID])

		require.NoError(t, repo.SyncPopularity(ctx, ranked.ID, 77.5))
		var score float64
		require.NoError(t, db.Table("products").Select("popularity_score").Where("id = ?", ranked.ID).Scan(&score).Error)
		assert.Equal(t, 77.5, score)
	})
}

func TestGormEventRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormEventRepository(db)
	ctx := context.Background()

	productID := uuid.New()
	client := analytics.ClientInfo{SessionID: "s1", UserAgent: "test"}
	events := []*analytics.Event{
		analytics.NewEvent(productID, analytics.EventCardView, "", nil, client),
		analytics.NewEvent(productID, analytics.EventCardView, "", nil, client),
		analytics.NewEvent(productID, analytics.EventInteraction, "share", shared.JSONMap{"channel": "vk"}, client),
	}
	require.NoError(t, repo.SaveBatch(ctx, events))
	require.NoError(t, repo.SaveBatch(ctx, nil))

	counts, err := repo.CountByProduct(ctx, productID, time.Now().UTC().Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts[analytics.EventCardView])
	assert.Equal(t, int64(1), counts[analytics.EventInteraction])
}

func TestGormSessionRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormSessionRepository(db)
	ctx := context.Background()

	_, err := repo.FindBySessionID(ctx, "missing")
	assert.ErrorIs(t, err, shared.ErrNotFound)

	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	s := analytics.NewSession(analytics.ClientInfo{SessionID: "abc", PageURL: "/"}, start)
	s.Record(analytics.SessionActivity{PageViews: 2, LastPage: "/doors"}, start.Add(time.Minute))
	require.NoError(t, repo.Save(ctx, s))

	s.Record(analytics.SessionActivity{PageViews: 1}, start.Add(2*time.Minute))
	require.NoError(t, repo.Save(ctx, s))

	found, err := repo.FindBySessionID(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, 3, found.PageViews)
	assert.Equal(t, 120, found.DurationSeconds)
	assert.Equal(t, "/doors", found.LastPage)
}

func TestGormAnalyticsTransactionScope_RollsBack(t *testing.T) {
	db := setupTestDB(t)
	scope := NewGormAnalyticsTransactionScope(db)
	ctx := context.Background()

	productID := uuid.New()
	boom := errors.New("boom")
	err := scope.Execute(ctx, func(repos appanalytics.TransactionalRepositories) error {
		event := analytics.NewEvent(productID, analytics.EventDetailView, "", nil, analytics.ClientInfo{})
		if err := repos.EventRepo().SaveBatch(ctx, []*analytics.Event{event}); err != nil {
			return err
		}
		if _, err := repos.RankingRepo().FindOrCreate(ctx, productID); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	var events, rankings int64
	require.NoError(t, db.Model(&analytics.Event{}).Count(&events).Error)
	require.NoError(t, db.Model(&analytics.Ranking{}).Count(&rankings).Error)
	assert.Zero(t, events)
	assert.Zero(t, rankings)
}

func TestGormRankingRepository_SyncPopularity_SQL(t *testing.T) {
	db, mock, mockDB := newMockDB(t)
	defer mockDB.Close()
	repo := NewGormRankingRepository(db)

	productID := uuid.New()
	mock.ExpectExec(`UPDATE "products" SET "popularity_score"=\$1 WHERE id = \$2`).
		WithArgs(12.5, productID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SyncPopularity(context.Background(), productID, 12.5))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormRankingRepository_FindOrCreate_LocksRow(t *testing.T) {
	db, mock, mockDB := newMockDB(t)
	defer mockDB.Close()
	repo := NewGormRankingRepository(db)

	productID := uuid.New()
	mock.ExpectQuery(`SELECT \* FROM "product_rankings" WHERE product_id = \$1 .*FOR UPDATE`).
		WithArgs(productID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "product_id", "ranking_score"}).
			AddRow(uuid.NewString(), productID.String(), 42.0))

	ranking, err := repo.FindOrCreate(context.Background(), productID)
	require.NoError(t, err)
	assert.Equal(t, 42.0, ranking.RankingScore)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormSummaryRepository_FindOrCreate_InsertsThenLocks(t *testing.T) {
	db, mock, mockDB := newMockDB(t)
	defer mockDB.Close()
	repo := NewGormSummaryRepository(db)

	productID := uuid.New()
	mock.ExpectQuery(`SELECT \* FROM "analytics_daily_summary" WHERE product_id = \$1 AND date = \$2 .*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectExec(`INSERT INTO "analytics_daily_summary" .*ON CONFLICT \("product_id","date"\) DO NOTHING`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT \* FROM "analytics_daily_summary" WHERE product_id = \$1 AND date = \$2 .*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "product_id", "views_count"}).
			AddRow(uuid.NewString(), productID.String(), 7))

	summary, err := repo.FindOrCreate(context.Background(), productID, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 7, summary.ViewsCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormSessionRepository_FindOrCreate_Upserts(t *testing.T) {
	db, mock, mockDB := newMockDB(t)
	defer mockDB.Close()
	repo := NewGormSessionRepository(db)

	// a concurrent request already stored "abc": the insert is a no-op and the stored row wins
	mock.ExpectExec(`INSERT INTO "analytics_sessions" .*ON CONFLICT \("session_id"\) DO NOTHING`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	stored := uuid.New()
	mock.ExpectQuery(`SELECT \* FROM "analytics_sessions" WHERE session_id = \$1 .*FOR UPDATE`).
		WithArgs("abc", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "session_id", "page_views"}).
			AddRow(stored.String(), "abc", 4))

	candidate := analytics.NewSession(analytics.ClientInfo{SessionID: "abc"}, time.Now().UTC())
	session, err := repo.FindOrCreate(context.Background(), candidate)
	require.NoError(t, err)
	assert.Equal(t, stored, session.ID)
	assert.Equal(t, 4, session.PageViews)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormSessionRepository_FindOrCreate_KeepsExisting(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormSessionRepository(db)
	ctx := context.Background()
	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

	first, err := repo.FindOrCreate(ctx, analytics.NewSession(analytics.ClientInfo{SessionID: "dup", PageURL: "/a"}, start))
	require.NoError(t, err)
	first.Record(analytics.SessionActivity{PageViews: 1}, start)
	require.NoError(t, repo.Save(ctx, first))

	second, err := repo.FindOrCreate(ctx, analytics.NewSession(analytics.ClientInfo{SessionID: "dup", PageURL: "/b"}, start.Add(time.Minute)))
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "/a", second.FirstPage)
	assert.Equal(t, 1, second.PageViews)
}
