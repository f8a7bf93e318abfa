package handlers

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"icongallery/internal/catalog"
	"icongallery/internal/contextutil"
	"icongallery/internal/icons"
	"icongallery/internal/service"
)

// IconsHandler serves the icon JSON API and SVG downloads.
type IconsHandler struct {
	iconService service.IconService
}

// NewIconsHandler creates a new IconsHandler.
func NewIconsHandler(iconService service.IconService) *IconsHandler {
	return &IconsHandler{
		iconService: iconService,
	}
}

// ListResponse is the response of the icon search endpoint.
type ListResponse struct {
	// Query echoes the filter that was applied.
	Query string `json:"query"`
	// Total is the number of icons before filtering.
	Total int `json:"total"`
	// Count is the number of icons returned.
	Count int `json:"count"`
	// Icons are the matching icons in index order.
	Icons []icons.Definition `json:"icons"`
	// Status is the catalog status at the time of the search.
	Status catalog.Status `json:"status"`
}

// DetailResponse is the response of the single icon endpoint.
type DetailResponse struct {
	Icon        icons.Definition `json:"icon"`
	DisplayName string           `json:"display_name"`
	FileName    string           `json:"file_name"`
}

// List handles GET /api/icons?q=.
func (h *IconsHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query().Get("q")

	res, err := h.iconService.Search(ctx, service.SearchRequest{Query: query})
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to search icons")
		return
	}

	matched := res.Icons
	if matched == nil {
		matched = []icons.Definition{}
	}
	writeJSON(ctx, w, http.StatusOK, ListResponse{
		Query:  query,
		Total:  res.Total,
		Count:  len(matched),
		Icons:  matched,
		Status: res.Status,
	})
}

// Get handles GET /api/icons/{key}.
func (h *IconsHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	key, ok := iconKey(w, r)
	if !ok {
		return
	}

	detail, err := h.iconService.Get(ctx, key)
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to get icon")
		return
	}

	writeJSON(ctx, w, http.StatusOK, DetailResponse{
		Icon:        detail.Icon,
		DisplayName: detail.DisplayName,
		FileName:    detail.FileName,
	})
}

// Download handles GET /api/icons/{key}/download and returns the raw SVG as
// an attachment named after the icon key.
func (h *IconsHandler) Download(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	key, ok := iconKey(w, r)
	if !ok {
		return
	}

	detail, err := h.iconService.Get(ctx, key)
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to get icon")
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q; filename*=UTF-8''%s",
		detail.FileName, url.PathEscape(detail.FileName)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(detail.Icon.Value)); err != nil {
		logger.WarnContext(ctx, "failed to write icon download", "key", detail.Icon.Key, "error", err)
	}
}

// iconKey returns the unescaped {key} URL parameter. chi matches on the raw
// path, so a key containing "/" arrives as "%2F". It writes a 400 and
// returns false when the parameter is not a valid escape sequence.
func iconKey(w http.ResponseWriter, r *http.Request) (string, bool) {
	key, err := url.PathUnescape(chi.URLParam(r, "key"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid icon key")
		return "", false
	}
	return key, true
}
