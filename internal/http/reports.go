package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mikestefanello/backlite"

	"github.com/mrlokans/readtracker/internal/exporters"
	"github.com/mrlokans/readtracker/internal/tasks"
)

type ReportsController struct {
	queue       TaskQueue
	defaultDays int
}

func NewReportsController(queue TaskQueue, defaultDays int) *ReportsController {
	return &ReportsController{queue: queue, defaultDays: defaultDays}
}

// ExportRequest is the body of POST /api/reports/export.
type ExportRequest struct {
	Days    *int     `json:"days"`
	Formats []string `json:"formats"`
}

// Export handles POST /api/reports/export
// Enqueues a report export and returns the task ID.
func (rc *ReportsController) Export(c *gin.Context) {
	if rc.queue == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "task queue is disabled"})
		return
	}

	var req ExportRequest
	if !bindJSON(c, &req) {
		return
	}

	days := rc.defaultDays
	if req.Days != nil {
		days = *req.Days
	}
	if days < 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "days cannot be negative", Field: "days"})
		return
	}
	for _, format := range req.Formats {
		if format != exporters.FormatMarkdown && format != exporters.FormatXLSX {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unknown export format " + format, Field: "formats"})
			return
		}
	}

	ids, err := rc.queue.Enqueue(c.Request.Context(), tasks.ExportReportTask{
		Days:    days,
		Formats: req.Formats,
		Trigger: "api",
	})
	if err != nil {
		respondInternalError(c, err, "enqueue export")
		return
	}
	respondAccepted(c, "export enqueued", gin.H{"task_id": ids[0]})
}

// ExportStatus handles GET /api/reports/export/:id
func (rc *ReportsController) ExportStatus(c *gin.Context) {
	if rc.queue == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "task queue is disabled"})
		return
	}

	taskID := c.Param("id")
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	status, err := rc.queue.Status(ctx, taskID)
	if err != nil {
		respondInternalError(c, err, "task status")
		return
	}
	if status == backlite.TaskStatusNotFound {
		respondNotFound(c, "task "+taskID+" not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":     taskID,
		"status": taskStatusToString(status),
	})
}

func taskStatusToString(status backlite.TaskStatus) string {
	switch status {
	case backlite.TaskStatusPending:
		return "pending"
	case backlite.TaskStatusRunning:
		return "running"
	case backlite.TaskStatusSuccess:
		return "success"
	case backlite.TaskStatusFailure:
		return "failure"
	case backlite.TaskStatusNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}
