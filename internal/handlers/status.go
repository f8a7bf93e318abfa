package handlers

import (
	"net/http"
	"strconv"
	"time"

	"icongallery/internal/service"
)

const defaultHistoryLimit = 10

// StatusHandler reports the catalog state and the stored load history.
type StatusHandler struct {
	iconService service.IconService
}

// NewStatusHandler creates a new StatusHandler.
func NewStatusHandler(iconService service.IconService) *StatusHandler {
	return &StatusHandler{iconService: iconService}
}

// LoadResponse describes one stored load.
type LoadResponse struct {
	ID        string    `json:"id"`
	Source    string    `json:"source"`
	RootPath  string    `json:"root_path"`
	IconCount int       `json:"icon_count"`
	LoadedAt  time.Time `json:"loaded_at"`
}

// HistoryResponse is the response of the load history endpoint.
type HistoryResponse struct {
	Loads []LoadResponse `json:"loads"`
}

// Status handles GET /api/status.
func (h *StatusHandler) Status(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	writeJSON(ctx, w, http.StatusOK, h.iconService.Status(ctx))
}

// History handles GET /api/loads?limit=.
func (h *StatusHandler) History(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit := defaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "limit must be an integer")
			return
		}
		limit = n
	}

	loads, err := h.iconService.History(ctx, limit)
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to list loads")
		return
	}

	resp := HistoryResponse{Loads: make([]LoadResponse, 0, len(loads))}
	for _, l := range loads {
		resp.Loads = append(resp.Loads, LoadResponse{
			ID:        l.ID,
			Source:    l.Source,
			RootPath:  l.RootPath,
			IconCount: l.IconCount,
			LoadedAt:  l.LoadedAt,
		})
	}
	writeJSON(ctx, w, http.StatusOK, resp)
}
