package handlers

import (
	"net/http"
	"time"

	"icongallery/internal/catalog"
	"icongallery/internal/contextutil"
	"icongallery/internal/service"
)

// HealthHandler handles HTTP requests for health checks.
type HealthHandler struct {
	iconService service.IconService
	now         func() time.Time
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(iconService service.IconService) *HealthHandler {
	return &HealthHandler{
		iconService: iconService,
		now:         time.Now,
	}
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	// Overall health status: "healthy", "degraded", or "unhealthy"
	Status string `json:"status"`

	// Timestamp of the health check
	Timestamp string `json:"timestamp"`

	// Individual check results
	Checks map[string]string `json:"checks"`

	// List of issues (only present if status is degraded or unhealthy)
	Issues []string `json:"issues,omitempty"`
}

// ServeHTTP handles HTTP requests for health checks.
//
// Returns 200 when icons are loaded (degraded if the last reload failed)
// and 503 when no icons are available.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodGet {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	st := h.iconService.Status(ctx)
	checks := make(map[string]string)
	var issues []string

	if st.IconCount > 0 {
		checks["icon_index"] = "ok"
	} else {
		checks["icon_index"] = "empty"
		issues = append(issues, "no_icons_loaded")
	}

	switch {
	case st.State == catalog.StateLoading:
		checks["token_source"] = "loading"
	case st.Error != "":
		checks["token_source"] = "error"
		issues = append(issues, "last_load_failed")
	default:
		checks["token_source"] = "ok"
	}

	// Determine overall status
	status := "healthy"
	httpStatus := http.StatusOK
	if st.IconCount == 0 {
		status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable
	} else if len(issues) > 0 {
		status = "degraded"
	}

	writeJSON(ctx, w, httpStatus, HealthResponse{
		Status:    status,
		Timestamp: h.now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Issues:    issues,
	})
}
