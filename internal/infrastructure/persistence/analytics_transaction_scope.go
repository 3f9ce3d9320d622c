package persistence

import (
	"context"

	appanalytics "github.com/doorshop/backend/internal/application/analytics"
	"github.com/doorshop/backend/internal/domain/analytics"
	"gorm.io/gorm"
)

// GormAnalyticsTransactionScope implements TransactionScope using GORM transactions.
// All writes of one analytics request commit or roll back together.
type GormAnalyticsTransactionScope struct {
	db *gorm.DB
}

// NewGormAnalyticsTransactionScope creates a new GormAnalyticsTransactionScope
func NewGormAnalyticsTransactionScope(db *gorm.DB) *GormAnalyticsTransactionScope {
	return &GormAnalyticsTransactionScope{db: db}
}

// Execute runs fn inside a transaction, rolling back when it returns an error
func (s *GormAnalyticsTransactionScope) Execute(ctx context.Context, fn func(repos appanalytics.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormAnalyticsRepositories{tx: tx})
	})
}

type gormAnalyticsRepositories struct {
	tx *gorm.DB
}

func (r *gormAnalyticsRepositories) EventRepo() analytics.EventRepository {
	return NewGormEventRepository(r.tx)
}

func (r *gormAnalyticsRepositories) SessionRepo() analytics.SessionRepository {
	return NewGormSessionRepository(r.tx)
}

func (r *gormAnalyticsRepositories) SummaryRepo() analytics.SummaryRepository {
	return NewGormSummaryRepository(r.tx)
}

func (r *gormAnalyticsRepositories) RankingRepo() analytics.RankingRepository {
	return NewGormRankingRepository(r.tx)
}

// Ensure GormAnalyticsTransactionScope implements TransactionScope
var _ appanalytics.TransactionScope = (*GormAnalyticsTransactionScope)(nil)

// Ensure gormAnalyticsRepositories implements TransactionalRepositories
var _ appanalytics.TransactionalRepositories = (*gormAnalyticsRepositories)(nil)
