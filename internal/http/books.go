package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/readtracker/internal/reading"
	"github.com/mrlokans/readtracker/internal/tracker"
)

type BooksController struct {
	store BookStore
}

func NewBooksController(store BookStore) *BooksController {
	return &BooksController{store: store}
}

// ListBooks handles GET /api/books?status=reading|paused|unread|finished
func (bc *BooksController) ListBooks(c *gin.Context) {
	filter, err := reading.ParseBookFilter(c.Query("status"))
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	books, err := bc.store.ListBooks(c.Request.Context(), filter)
	if err != nil {
		respondTrackerError(c, err, "list books")
		return
	}
	respondList(c, books, len(books))
}

// CreateBook handles POST /api/books
func (bc *BooksController) CreateBook(c *gin.Context) {
	var req tracker.NewBook
	if !bindJSON(c, &req) {
		return
	}

	book, err := bc.store.AddBook(c.Request.Context(), req)
	if err != nil {
		respondTrackerError(c, err, "add book")
		return
	}
	respondCreated(c, book)
}

// GetBook handles GET /api/books/:id
func (bc *BooksController) GetBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	book, err := bc.store.GetBookDetails(c.Request.Context(), id)
	if err != nil {
		respondTrackerError(c, err, "get book")
		return
	}
	c.JSON(http.StatusOK, book)
}

// UpdateBook handles PUT /api/books/:id
func (bc *BooksController) UpdateBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req tracker.BookEdit
	if !bindJSON(c, &req) {
		return
	}

	book, err := bc.store.EditBook(c.Request.Context(), id, req)
	if err != nil {
		respondTrackerError(c, err, "edit book")
		return
	}
	c.JSON(http.StatusOK, book)
}

// DeleteBook handles DELETE /api/books/:id
func (bc *BooksController) DeleteBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := bc.store.DeleteBook(c.Request.Context(), id); err != nil {
		respondTrackerError(c, err, "delete book")
		return
	}
	respondSuccess(c, "book deleted")
}

// RecordProgress handles POST /api/books/:id/progress
func (bc *BooksController) RecordProgress(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var entry tracker.ProgressEntry
	if !bindJSON(c, &entry) {
		return
	}

	session, err := bc.store.RecordBookProgress(c.Request.Context(), id, entry)
	if err != nil {
		respondTrackerError(c, err, "record progress")
		return
	}
	book, err := bc.store.GetBookDetails(c.Request.Context(), id)
	if err != nil {
		respondTrackerError(c, err, "get book")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"session": session, "book": book})
}

// FinishBook handles POST /api/books/:id/finish
func (bc *BooksController) FinishBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req tracker.BookFinish
	if !bindJSON(c, &req) {
		return
	}

	book, err := bc.store.FinishBook(c.Request.Context(), id, req)
	if err != nil {
		respondTrackerError(c, err, "finish book")
		return
	}
	c.JSON(http.StatusOK, book)
}

// PauseBook handles POST /api/books/:id/pause
func (bc *BooksController) PauseBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	book, err := bc.store.PauseBook(c.Request.Context(), id)
	if err != nil {
		respondTrackerError(c, err, "pause book")
		return
	}
	c.JSON(http.StatusOK, book)
}

// GetSessions handles GET /api/books/:id/sessions
func (bc *BooksController) GetSessions(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	sessions, err := bc.store.GetReadingHistory(c.Request.Context(), id)
	if err != nil {
		respondTrackerError(c, err, "reading history")
		return
	}
	respondList(c, sessions, len(sessions))
}
