package handler

import (
	blogapp "github.com/doorshop/backend/internal/application/blog"
	"github.com/doorshop/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// PostHandler handles blog post endpoints
type PostHandler struct {
	BaseHandler
	postService *blogapp.PostService
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postService *blogapp.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// tagPostsQuery pages through the posts of a tag
type tagPostsQuery struct {
	Page    int `form:"page" binding:"omitempty,min=1"`
	PerPage int `form:"per_page" binding:"omitempty,min=1,max=100"`
}

// Featured godoc
// @ID           listFeaturedPosts
// @Summary      Featured posts
// @Tags         posts
// @Produce      json
// @Param        limit query int false "Number of posts" default(6) maximum(50)
// @Success      200 {object} APIResponse[[]blogapp.PostCard]
// @Failure      500 {object} ErrorResponse
// @Router       /posts/featured [get]
func (h *PostHandler) Featured(c *gin.Context) {
	posts, err := h.postService.Featured(c.Request.Context(), queryLimit(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, posts)
}

// Recent godoc
// @ID           listRecentPosts
// @Summary      Recent posts
// @Tags         posts
// @Produce      json
// @Param        limit query int false "Number of posts" default(12) maximum(50)
// @Success      200 {object} APIResponse[[]blogapp.PostCard]
// @Failure      500 {object} ErrorResponse
// @Router       /posts/recent [get]
func (h *PostHandler) Recent(c *gin.Context) {
	posts, err := h.postService.Recent(c.Request.Context(), queryLimit(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, posts)
}

// Pinned godoc
// @ID           listPinnedPosts
// @Summary      Pinned posts
// @Tags         posts
// @Produce      json
// @Param        limit query int false "Number of posts" default(5) maximum(50)
// @Success      200 {object} APIResponse[[]blogapp.PostCard]
// @Failure      500 {object} ErrorResponse
// @Router       /posts/pinned [get]
func (h *PostHandler) Pinned(c *gin.Context) {
	posts, err := h.postService.Pinned(c.Request.Context(), queryLimit(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, posts)
}

// Popular godoc
// @ID           listPopularPosts
// @Summary      Popular posts
// @Description  Published posts by views
// @Tags         posts
// @Produce      json
// @Param        limit query int false "Number of posts" default(10) maximum(50)
// @Success      200 {object} APIResponse[[]blogapp.PostCard]
// @Failure      500 {object} ErrorResponse
// @Router       /posts/popular [get]
func (h *PostHandler) Popular(c *gin.Context) {
	posts, err := h.postService.Popular(c.Request.Context(), queryLimit(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, posts)
}

// Search godoc
// @ID           searchPosts
// @Summary      Search posts
// @Tags         posts
// @Produce      json
// @Param        q query string false "Search text, at least 2 characters"
// @Param        tag_slug query string false "Tag slug"
// @Param        author_id query string false "Author ID" format(uuid)
// @Param        is_featured query bool false "Featured flag"
// @Param        order_by query string false "Sort field" Enums(created_at, published_at, views_count, likes_count, title)
// @Param        order_dir query string false "Sort direction" Enums(asc, desc)
// @Param        page query int false "Page number" default(1)
// @Param        per_page query int false "Page size" default(12) maximum(100)
// @Success      200 {object} APIResponse[shared.Paginated[blogapp.PostCard]]
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /posts/search [get]
func (h *PostHandler) Search(c *gin.Context) {
	var q blogapp.SearchQuery
	if !h.BindQuery(c, &q) {
		return
	}
	page, err := h.postService.Search(c.Request.Context(), q)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, page)
}

// PopularTags godoc
// @ID           listPopularPostTags
// @Summary      Popular tags
// @Tags         posts
// @Produce      json
// @Param        limit query int false "Number of tags" default(8) maximum(50)
// @Success      200 {object} APIResponse[[]blogapp.TagResponse]
// @Failure      500 {object} ErrorResponse
// @Router       /posts/tags/popular [get]
func (h *PostHandler) PopularTags(c *gin.Context) {
	tags, err := h.postService.PopularTags(c.Request.Context(), queryLimit(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, tags)
}

// TagBySlug godoc
// @ID           getPostTag
// @Summary      Get tag
// @Description  A tag with one page of its published posts
// @Tags         posts
// @Produce      json
// @Param        slug path string true "Tag slug"
// @Param        page query int false "Page number" default(1)
// @Param        per_page query int false "Page size" default(12) maximum(100)
// @Success      200 {object} APIResponse[blogapp.TagDetail]
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /posts/tags/{slug} [get]
func (h *PostHandler) TagBySlug(c *gin.Context) {
	var q tagPostsQuery
	if !h.BindQuery(c, &q) {
		return
	}
	detail, err := h.postService.TagBySlug(c.Request.Context(), c.Param("slug"), q.Page, q.PerPage)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, detail)
}

// GetBySlug godoc
// @ID           getPostBySlug
// @Summary      Get post
// @Tags         posts
// @Produce      json
// @Param        slug path string true "Post slug"
// @Success      200 {object} APIResponse[blogapp.PostDetail]
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /posts/{slug} [get]
func (h *PostHandler) GetBySlug(c *gin.Context) {
	post, err := h.postService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, post)
}

// RecordView godoc
// @ID           recordPostView
// @Summary      Record a post view
// @Description  Counts at most once per client IP per UTC day
// @Tags         posts
// @Produce      json
// @Param        id path string true "Post ID" format(uuid)
// @Success      200 {object} APIResponse[blogapp.ViewResult]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /posts/{id}/view [post]
func (h *PostHandler) RecordView(c *gin.Context) {
	id, ok := h.pathUUID(c, "id")
	if !ok {
		return
	}
	res, err := h.postService.RecordView(c.Request.Context(), id, middleware.ClientIP(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, res)
}

// Like godoc
// @ID           likePost
// @Summary      Like a post
// @Description  At most one like per client IP
// @Tags         posts
// @Produce      json
// @Param        id path string true "Post ID" format(uuid)
// @Success      200 {object} APIResponse[blogapp.LikeResult]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /posts/{id}/like [post]
func (h *PostHandler) Like(c *gin.Context) {
	id, ok := h.pathUUID(c, "id")
	if !ok {
		return
	}
	res, err := h.postService.Like(c.Request.Context(), id, middleware.ClientIP(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, res)
}
