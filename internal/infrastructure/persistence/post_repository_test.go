package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/doorshop/backend/internal/domain/blog"
	"github.com/doorshop/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createPost(t *testing.T, db *gorm.DB, title string, published bool, mutate ...func(*blog.Post)) *blog.Post {
	t.Helper()
	p := &blog.Post{
		BaseEntity: shared.NewBaseEntity(),
		Title:      title,
		Slug:       uuid.NewString()[:8] + "-" + title,
		Content:    "body of " + title,
		Status:     blog.PostStatusDraft,
	}
	if published {
		p.Publish(time.Now().UTC())
	}
	for _, m := range mutate {
		m(p)
	}
	require.NoError(t, db.Create(p).Error)
	return p
}

func TestGormPostRepository_Search(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormPostRepository(db)
	ctx := context.Background()

	tag := &blog.Tag{BaseEntity: shared.NewBaseEntity(), Name: "Guides", Slug: "guides", IsActive: true}
	require.NoError(t, db.Create(tag).Error)

	guide := createPost(t, db, "How to pick a door", true, func(p *blog.Post) {
		p.ViewsCount = 5
		p.Tags = []blog.Tag{*tag}
	})
	createPost(t, db, "Door news", true, func(p *blog.Post) { p.ViewsCount = 50 })
	createPost(t, db, "Door draft", false)

	t.Run("only published posts match", func(t *testing.T) {
		posts, total, err := repo.Search(ctx, blog.PostSearch{
			Filter: shared.Filter{Page: 1, PageSize: 10, OrderBy: "views_count", OrderDir: "desc"},
			Query:  "door",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		require.Len(t, posts, 2)
		assert.Equal(t, "Door news", posts[0].Title)
	})

	t.Run("tag filter", func(t *testing.T) {
		posts, total, err := repo.Search(ctx, blog.PostSearch{
			Filter:  shared.Filter{Page: 1, PageSize: 10},
			TagSlug: "guides",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, posts, 1)
		assert.Equal(t, guide.ID, posts[0].ID)
		require.Len(t, posts[0].Tags, 1)
	})

	t.Run("invalid order field falls back", func(t *testing.T) {
		_, total, err := repo.Search(ctx, blog.PostSearch{
			Filter: shared.Filter{Page: 1, PageSize: 10, OrderBy: "content); --"},
		})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
	})
}

func TestGormPostRepository_FindPublishedBySlug(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormPostRepository(db)
	ctx := context.Background()

	live := createPost(t, db, "live", true)
	draft := createPost(t, db, "draft", false)

	found, err := repo.FindPublishedBySlug(ctx, live.Slug)
	require.NoError(t, err)
	assert.Equal(t, live.ID, found.ID)

	_, err = repo.FindPublishedBySlug(ctx, draft.Slug)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormPostRepository_RecordView(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormPostRepository(db)
	ctx := context.Background()

	post := createPost(t, db, "counted", true)
	newView := func(ip, day string) *blog.PostView {
		return &blog.PostView{ID: uuid.New(), PostID: post.ID, IPHash: ip, ViewedOn: day, ViewedAt: time.Now().UTC()}
	}

	counted, views, err := repo.RecordView(ctx, newView("ip-a", "2026-03-10"))
	require.NoError(t, err)
	assert.True(t, counted)
	assert.Equal(t, 1, views)

	counted, views, err = repo.RecordView(ctx, newView("ip-a", "2026-03-10"))
	require.NoError(t, err)
	assert.False(t, counted)
	assert.Equal(t, 1, views)

	counted, views, err = repo.RecordView(ctx, newView("ip-a", "2026-03-11"))
	require.NoError(t, err)
	assert.True(t, counted)
	assert.Equal(t, 2, views)

	_, _, err = repo.RecordView(ctx, &blog.PostView{ID: uuid.New(), PostID: uuid.New(), IPHash: "x", ViewedOn: "2026-03-10"})
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormPostRepository_RecordLike(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormPostRepository(db)
	ctx := context.Background()

	post := createPost(t, db, "liked", true)

	liked, likes, err := repo.RecordLike(ctx, &blog.PostLike{ID: uuid.New(), PostID: post.ID, IPHash: "ip-a", CreatedAt: time.Now().UTC()})
	require.NoError(t, err)
	assert.True(t, liked)
	assert.Equal(t, 1, likes)

	liked, likes, err = repo.RecordLike(ctx, &blog.PostLike{ID: uuid.New(), PostID: post.ID, IPHash: "ip-a", CreatedAt: time.Now().UTC()})
	require.NoError(t, err)
	assert.False(t, liked)
	assert.Equal(t, 1, likes)
}

func TestGormTagRepository_Popular(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormTagRepository(db)

	tags := []blog.Tag{
		{BaseEntity: shared.NewBaseEntity(), Name: "A", Slug: "a", PostsCount: 1, IsActive: true},
		{BaseEntity: shared.NewBaseEntity(), Name: "B", Slug: "b", PostsCount: 9, IsActive: true},
		{BaseEntity: shared.NewBaseEntity(), Name: "C", Slug: "c", PostsCount: 20, IsActive: false},
	}
	require.NoError(t, db.Create(&tags).Error)

	popular, err := repo.Popular(context.Background(), 8)
	require.NoError(t, err)
	require.Len(t, popular, 2)
	assert.Equal(t, "B", popular[0].Name)
}
