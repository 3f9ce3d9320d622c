package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decPtr(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

func TestNewProduct(t *testing.T) {
	t.Run("derives slug and defaults", func(t *testing.T) {
		p, err := NewProduct("Steel Door Alfa", "", decimal.NewFromInt(1000))
		require.NoError(t, err)
		assert.Equal(t, "steel-door-alfa", p.Slug)
		assert.True(t, p.IsActive)
		assert.True(t, p.InStock)
		assert.Len(t, p.UUID, 36)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewProduct("  ", "", decimal.Zero)
		assert.Error(t, err)
	})

	t.Run("rejects negative price", func(t *testing.T) {
		_, err := NewProduct("Door", "", decimal.NewFromInt(-1))
		assert.Error(t, err)
	})
}

func TestProduct_DiscountMath(t *testing.T) {
	p, err := NewProduct("Door", "door", decimal.NewFromInt(1000))
	require.NoError(t, err)

	t.Run("no discount", func(t *testing.T) {
		assert.False(t, p.HasDiscount())
		assert.Equal(t, 0.0, p.DiscountPercent())
		assert.True(t, p.Savings().IsZero())
		assert.True(t, p.EffectivePrice().Equal(decimal.NewFromInt(1000)))
	})

	t.Run("discount below price", func(t *testing.T) {
		require.NoError(t, p.SetDiscountPrice(decPtr("750")))
		assert.True(t, p.HasDiscount())
		assert.Equal(t, 25.0, p.DiscountPercent())
		assert.True(t, p.Savings().Equal(decimal.NewFromInt(250)))
		assert.True(t, p.EffectivePrice().Equal(decimal.NewFromInt(750)))
	})

	t.Run("discount not below price is ignored", func(t *testing.T) {
		require.NoError(t, p.SetDiscountPrice(decPtr("1200")))
		assert.False(t, p.HasDiscount())
		assert.Equal(t, 0.0, p.DiscountPercent())
	})

	t.Run("negative discount rejected", func(t *testing.T) {
		assert.Error(t, p.SetDiscountPrice(decPtr("-5")))
	})
}

func TestProduct_DealScore(t *testing.T) {
	p, err := NewProduct("Door", "door", decimal.NewFromInt(200))
	require.NoError(t, err)
	require.NoError(t, p.SetDiscountPrice(decPtr("150")))
	p.Rating = 4
	p.PopularityScore = 50

	// 25*0.5 + 4*10*0.3 + 50*0.2
	assert.InDelta(t, 12.5+12+10, p.DealScore(), 1e-9)
}

func TestProduct_MainImage(t *testing.T) {
	p := &Product{}
	assert.Equal(t, "", p.MainImage())

	p.Images = []ProductImage{{URL: "a.jpg"}, {URL: "b.jpg"}}
	assert.Equal(t, "a.jpg", p.MainImage())

	p.Images[1].IsMain = true
	assert.Equal(t, "b.jpg", p.MainImage())
}

func TestParseProductSort(t *testing.T) {
	s, err := ParseProductSort("")
	require.NoError(t, err)
	assert.Equal(t, SortSmart, s)

	s, err = ParseProductSort("price_desc")
	require.NoError(t, err)
	assert.Equal(t, SortPriceDesc, s)

	_, err = ParseProductSort("cheapest")
	assert.Error(t, err)
}
