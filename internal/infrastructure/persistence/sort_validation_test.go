package persistence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSortOrder(t *testing.T) {
	assert.Equal(t, "ASC", ValidateSortOrder(" asc "))
	assert.Equal(t, "DESC", ValidateSortOrder("desc"))
	assert.Equal(t, "DESC", ValidateSortOrder("; DROP TABLE posts"))
	assert.Equal(t, "DESC", ValidateSortOrder(""))
}

func TestValidateSortField(t *testing.T) {
	assert.Equal(t, "views_count", ValidateSortField("views_count", PostSortFields, "created_at"))
	assert.Equal(t, "created_at", ValidateSortField("password", PostSortFields, "created_at"))
	assert.Equal(t, "created_at", ValidateSortField("", PostSortFields, "created_at"))
	assert.Equal(t, "price", ValidateSortField("price", CategoryProductSortFields, "name"))
}

func TestContainsPattern(t *testing.T) {
	assert.Equal(t, "%oak%", containsPattern("  oak "))
	assert.Equal(t, `%50\%\_off%`, containsPattern("50%_off"))
	assert.Equal(t, `%a\\b%`, containsPattern(`a\b`))
}
