package persistence

import (
	"errors"
	"strings"

	"github.com/doorshop/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// likeOperator returns ILIKE on postgres; other dialects match case-insensitively with LIKE
func likeOperator(db *gorm.DB) string {
	if db.Dialector != nil && db.Dialector.Name() == "postgres" {
		return "ILIKE"
	}
	return "LIKE"
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern wraps the trimmed term in %, escaping LIKE wildcards with a backslash
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(strings.TrimSpace(s)) + "%"
}

// containsAny matches term as a literal substring of any of columns
func containsAny(db *gorm.DB, term string, columns ...string) (string, []any) {
	op := likeOperator(db)
	pattern := containsPattern(term)
	conds := make([]string, 0, len(columns))
	args := make([]any, 0, len(columns))
	for _, col := range columns {
		conds = append(conds, col+" "+op+` ? ESCAPE '\'`)
		args = append(args, pattern)
	}
	return "(" + strings.Join(conds, " OR ") + ")", args
}

// lockForUpdate locks the selected rows until the transaction ends; the sqlite dialect omits the clause
func lockForUpdate(db *gorm.DB) *gorm.DB {
	return db.Clauses(clause.Locking{Strength: "UPDATE"})
}

// paginate applies offset and limit from the filter
func paginate(query *gorm.DB, filter shared.Filter) *gorm.DB {
	size := filter.PageSize
	if size <= 0 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	page := filter.Page
	if page < 1 {
		page = 1
	}
	return query.Offset((page - 1) * size).Limit(size)
}

// translateError maps gorm.ErrRecordNotFound to shared.ErrNotFound
func translateError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return shared.ErrNotFound
	}
	return err
}

// countRow scans one grouped count
type countRow struct {
	ID    uuid.UUID
	Count int64
}

func countsByID(rows []countRow) map[uuid.UUID]int64 {
	out := make(map[uuid.UUID]int64, len(rows))
	for _, row := range rows {
		out[row.ID] = row.Count
	}
	return out
}
