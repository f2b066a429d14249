package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/readtracker/internal/reading"
	"github.com/mrlokans/readtracker/internal/tracker"
)

type ArticlesController struct {
	store ArticleStore
}

func NewArticlesController(store ArticleStore) *ArticlesController {
	return &ArticlesController{store: store}
}

// ListArticles handles GET /api/articles?status=read|unread
func (ac *ArticlesController) ListArticles(c *gin.Context) {
	status := reading.ArticleStatus(c.Query("status"))
	switch status {
	case "", reading.ArticleStatusRead, reading.ArticleStatusUnread:
	default:
		respondBadRequest(c, "unknown article status "+string(status))
		return
	}

	articles, err := ac.store.ListArticles(c.Request.Context(), status)
	if err != nil {
		respondTrackerError(c, err, "list articles")
		return
	}
	respondList(c, articles, len(articles))
}

// CreateArticle handles POST /api/articles
func (ac *ArticlesController) CreateArticle(c *gin.Context) {
	var req tracker.NewArticle
	if !bindJSON(c, &req) {
		return
	}

	article, err := ac.store.AddArticle(c.Request.Context(), req)
	if err != nil {
		respondTrackerError(c, err, "add article")
		return
	}
	respondCreated(c, article)
}

// GetArticle handles GET /api/articles/:id
func (ac *ArticlesController) GetArticle(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	article, err := ac.store.GetArticleDetails(c.Request.Context(), id)
	if err != nil {
		respondTrackerError(c, err, "get article")
		return
	}
	c.JSON(http.StatusOK, article)
}

// UpdateArticle handles PUT /api/articles/:id
func (ac *ArticlesController) UpdateArticle(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req tracker.NewArticle
	if !bindJSON(c, &req) {
		return
	}

	article, err := ac.store.EditArticle(c.Request.Context(), id, req)
	if err != nil {
		respondTrackerError(c, err, "edit article")
		return
	}
	c.JSON(http.StatusOK, article)
}

// DeleteArticle handles DELETE /api/articles/:id
func (ac *ArticlesController) DeleteArticle(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ac.store.DeleteArticle(c.Request.Context(), id); err != nil {
		respondTrackerError(c, err, "delete article")
		return
	}
	respondSuccess(c, "article deleted")
}

// MarkRead handles POST /api/articles/:id/read
func (ac *ArticlesController) MarkRead(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req tracker.ArticleRead
	if !bindJSON(c, &req) {
		return
	}

	if _, err := ac.store.MarkArticleRead(c.Request.Context(), id, req); err != nil {
		respondTrackerError(c, err, "mark article read")
		return
	}
	article, err := ac.store.GetArticleDetails(c.Request.Context(), id)
	if err != nil {
		respondTrackerError(c, err, "get article")
		return
	}
	c.JSON(http.StatusOK, article)
}

// GetSessions handles GET /api/articles/:id/sessions
func (ac *ArticlesController) GetSessions(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	sessions, err := ac.store.GetArticleReadingHistory(c.Request.Context(), id)
	if err != nil {
		respondTrackerError(c, err, "article reading history")
		return
	}
	respondList(c, sessions, len(sessions))
}
