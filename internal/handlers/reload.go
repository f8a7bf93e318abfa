package handlers

import (
	"net/http"
	"strconv"

	"icongallery/internal/catalog"
	"icongallery/internal/contextutil"
	"icongallery/internal/service"
)

// ReloadHandler handles HTTP requests for reloading the icon tokens.
type ReloadHandler struct {
	iconService service.IconService
}

// NewReloadHandler creates a new ReloadHandler.
func NewReloadHandler(iconService service.IconService) *ReloadHandler {
	return &ReloadHandler{
		iconService: iconService,
	}
}

// ReloadResponse represents the response from the reload endpoint.
type ReloadResponse struct {
	Message string          `json:"message"`
	Status  string          `json:"status"`
	Catalog *catalog.Status `json:"catalog,omitempty"`
}

// ServeHTTP handles POST /api/reload. By default the reload runs in the
// background and the handler answers 202; with ?wait=true it answers once
// the reload has finished.
func (h *ReloadHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodPost {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	wait, _ := strconv.ParseBool(r.URL.Query().Get("wait"))
	if wait {
		logger.InfoContext(ctx, "reload triggered via API", "wait", true)
		if err := h.iconService.Reload(ctx); err != nil {
			handleServiceError(ctx, w, err, "Failed to reload icons")
			return
		}
		st := h.iconService.Status(ctx)
		writeJSON(ctx, w, http.StatusOK, ReloadResponse{
			Message: "Icons reloaded.",
			Status:  "ok",
			Catalog: &st,
		})
		return
	}

	logger.InfoContext(ctx, "reload triggered via API")

	// Detached context so the reload continues after the response is sent.
	reloadCtx := contextutil.Detach(ctx)
	go func() {
		if err := h.iconService.Reload(reloadCtx); err != nil {
			logger.ErrorContext(reloadCtx, "background reload failed", "error", err)
		}
	}()

	writeJSON(ctx, w, http.StatusAccepted, ReloadResponse{
		Message: "Reload started. Check /api/status for progress.",
		Status:  "accepted",
	})
}
