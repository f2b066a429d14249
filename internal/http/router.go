package http

import (
	"github.com/gin-gonic/gin"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	health := NewHealthController(cfg)
	router.GET("/health", health.Status)

	api := router.Group("/api")
	api.Use(NewReadOnlyMiddleware(cfg.ReadOnly).Handler())

	books := NewBooksController(cfg.Books)
	api.GET("/books", books.ListBooks)
	api.POST("/books", books.CreateBook)
	api.GET("/books/:id", books.GetBook)
	api.PUT("/books/:id", books.UpdateBook)
	api.DELETE("/books/:id", books.DeleteBook)
	api.POST("/books/:id/progress", books.RecordProgress)
	api.POST("/books/:id/finish", books.FinishBook)
	api.POST("/books/:id/pause", books.PauseBook)
	api.GET("/books/:id/sessions", books.GetSessions)

	articles := NewArticlesController(cfg.Articles)
	api.GET("/articles", articles.ListArticles)
	api.POST("/articles", articles.CreateArticle)
	api.GET("/articles/:id", articles.GetArticle)
	api.PUT("/articles/:id", articles.UpdateArticle)
	api.DELETE("/articles/:id", articles.DeleteArticle)
	api.POST("/articles/:id/read", articles.MarkRead)
	api.GET("/articles/:id/sessions", articles.GetSessions)

	stats := NewStatsController(cfg.Stats, cfg.ActivityDays)
	api.GET("/stats/summary", stats.Summary)
	api.GET("/stats/activity", stats.Activity)

	reports := NewReportsController(cfg.TaskQueue, cfg.ActivityDays)
	api.POST("/reports/export", reports.Export)
	api.GET("/reports/export/:id", reports.ExportStatus)

	return router
}
