package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	healthOK       = "ok"
	healthDegraded = "unhealthy"
)

// HealthResponse reports component checks plus the server's operating mode.
type HealthResponse struct {
	Status   string            `json:"status"`
	Time     string            `json:"time"`
	Version  string            `json:"version,omitempty"`
	ReadOnly bool              `json:"read_only"`
	Checks   map[string]string `json:"checks"`
}

type HealthController struct {
	cfg RouterConfig
}

func NewHealthController(cfg RouterConfig) *HealthController {
	return &HealthController{cfg: cfg}
}

// Status answers 503 only when the tracker database is unreachable. A
// missing task queue disables exports but leaves the tracker usable.
func (h *HealthController) Status(c *gin.Context) {
	checks := map[string]string{
		"database":   h.databaseCheck(),
		"task_queue": "disabled",
	}
	if h.cfg.TaskQueue != nil {
		checks["task_queue"] = healthOK
	}

	status, code := healthOK, http.StatusOK
	if checks["database"] != healthOK && checks["database"] != "not configured" {
		status, code = healthDegraded, http.StatusServiceUnavailable
	}

	c.IndentedJSON(code, HealthResponse{
		Status:   status,
		Time:     time.Now().UTC().Format(time.RFC3339),
		Version:  h.cfg.Version,
		ReadOnly: h.cfg.ReadOnly,
		Checks:   checks,
	})
}

func (h *HealthController) databaseCheck() string {
	if h.cfg.Database == nil {
		return "not configured"
	}
	if err := h.cfg.Database.Ping(); err != nil {
		return "error: " + err.Error()
	}
	return healthOK
}
