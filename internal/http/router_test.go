package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mikestefanello/backlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/readtracker/internal/database"
	"github.com/mrlokans/readtracker/internal/tracker"
)

type fakeQueue struct {
	mu       sync.Mutex
	enqueued []backlite.Task
	statuses map[string]backlite.TaskStatus
	err      error
}

func (q *fakeQueue) Enqueue(_ context.Context, ts ...backlite.Task) ([]string, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.err != nil {
		return nil, q.err
	}
	q.enqueued = append(q.enqueued, ts...)
	return []string{"task-123"}, nil
}

func (q *fakeQueue) Status(_ context.Context, id string) (backlite.TaskStatus, error) {
	if status, ok := q.statuses[id]; ok {
		return status, nil
	}
	return backlite.TaskStatusNotFound, nil
}

type failingPinger struct{}

func (failingPinger) Ping() error { return errors.New("database is locked") }

func setupTestRouter(t *testing.T, queue TaskQueue) (*gin.Engine, *tracker.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.NewDatabase(filepath.Join(t.TempDir(), "api.db"), database.WithLogLevel(logger.Silent))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	svc := tracker.NewService(db)
	router := NewRouter(RouterConfig{
		Books:        svc,
		Articles:     svc,
		Stats:        svc,
		Database:     db,
		TaskQueue:    queue,
		ActivityDays: 7,
		Version:      "test",
	})
	return router, svc
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
