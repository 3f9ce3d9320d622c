package analytics

import (
	"context"

	"github.com/doorshop/backend/internal/domain/analytics"
)

// TransactionScope runs a function with repositories bound to one database transaction.
// Returning an error from fn rolls every write back.
type TransactionScope interface {
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories exposes the analytics repositories inside a transaction
type TransactionalRepositories interface {
	EventRepo() analytics.EventRepository
	SessionRepo() analytics.SessionRepository
	SummaryRepo() analytics.SummaryRepository
	RankingRepo() analytics.RankingRepository
}
