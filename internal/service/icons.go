package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_catalog.go -package=mocks icongallery/internal/service Catalog
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_icon_service.go -package=mocks -mock_names=IconService=MockIconService icongallery/internal/service IconService

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/singleflight"

	"icongallery/internal/catalog"
	"icongallery/internal/contextutil"
	"icongallery/internal/icons"
	"icongallery/internal/storage"
)

// MaxHistoryLimit bounds how many stored loads can be listed at once.
const MaxHistoryLimit = 100

// Catalog is the icon index owner as seen by the service layer.
// This interface is defined from the service layer's perspective (consumer-first).
type Catalog interface {
	// Snapshot returns the current immutable index snapshot.
	Snapshot() *catalog.Snapshot
	// Status reports loading state and the last load error.
	Status() catalog.Status
	// Reload fetches the token document and replaces the index.
	Reload(ctx context.Context) error
	// History lists stored loads, newest first.
	History(ctx context.Context, limit int) ([]storage.LoadRecord, error)
}

// SearchRequest represents a search in the domain layer.
type SearchRequest struct {
	Query string
}

// SearchResult is the filtered view of one snapshot.
type SearchResult struct {
	Icons  []icons.Definition
	Total  int // Icons in the snapshot before filtering
	Status catalog.Status
}

// IconDetail is a single icon with the names derived for display and download.
type IconDetail struct {
	Icon        icons.Definition
	DisplayName string
	FileName    string
}

// IconService provides icon search and lookup.
type IconService interface {
	// Search filters the current index by keyword substring.
	Search(ctx context.Context, req SearchRequest) (SearchResult, error)
	// Get returns one icon by key.
	Get(ctx context.Context, key string) (IconDetail, error)
	// Chrome returns the reserved icons used by the gallery controls that are present.
	Chrome(ctx context.Context) map[string]icons.Definition
	// Reload replaces the index with a freshly fetched one.
	Reload(ctx context.Context) error
	// Status reports the catalog status.
	Status(ctx context.Context) catalog.Status
	// History lists stored loads, newest first.
	History(ctx context.Context, limit int) ([]storage.LoadRecord, error)
}

// iconService implements IconService.
type iconService struct {
	catalog Catalog
	reloads singleflight.Group
}

// NewIconService creates a new IconService.
func NewIconService(c Catalog) IconService {
	return &iconService{catalog: c}
}

// Search filters the current snapshot. Any query is accepted; one that
// matches no keyword yields an empty result.
func (s *iconService) Search(ctx context.Context, req SearchRequest) (SearchResult, error) {
	logger := contextutil.LoggerFromContext(ctx)

	snap := s.catalog.Snapshot()
	matched := icons.Filter(snap.Index, req.Query)

	logger.DebugContext(ctx, "icon search", "query", req.Query, "matched", len(matched), "total", snap.Index.Len())
	return SearchResult{
		Icons:  matched,
		Total:  snap.Index.Len(),
		Status: s.catalog.Status(),
	}, nil
}

// Get looks up one icon.
func (s *iconService) Get(ctx context.Context, key string) (IconDetail, error) {
	if key == "" {
		return IconDetail{}, &ValidationError{
			Field:   "key",
			Message: "cannot be empty",
		}
	}

	def, ok := s.catalog.Snapshot().Index.Get(key)
	if !ok {
		contextutil.LoggerFromContext(ctx).DebugContext(ctx, "icon not found", "key", key)
		return IconDetail{}, fmt.Errorf("icon %q: %w", key, ErrNotFound)
	}

	return IconDetail{
		Icon:        def,
		DisplayName: icons.DisplayName(def),
		FileName:    icons.FileName(def),
	}, nil
}

// Chrome returns the reserved control icons found in the current snapshot.
func (s *iconService) Chrome(ctx context.Context) map[string]icons.Definition {
	idx := s.catalog.Snapshot().Index
	out := make(map[string]icons.Definition, 4)
	for _, key := range []string{icons.ChromeCopy, icons.ChromeSuccess, icons.ChromeClose, icons.ChromeDownload} {
		if def, ok := idx.Get(key); ok {
			out[key] = def
		}
	}
	return out
}

// Reload replaces the index.
func (s *iconService) Reload(ctx context.Context) error {
	logger := contextutil.LoggerFromContext(ctx)

	// Callers arriving while a reload is running share its result.
	_, err, shared := s.reloads.Do("reload", func() (any, error) {
		return nil, s.catalog.Reload(ctx)
	})
	if err != nil {
		logger.ErrorContext(ctx, "icon reload failed", "error", err, "shared", shared)
		return WrapError(classifyLoadError(err), "failed to reload icons")
	}

	logger.InfoContext(ctx, "icon reload completed", slog.Int("icons", s.catalog.Snapshot().Index.Len()), slog.Bool("shared", shared))
	return nil
}

// Status reports the catalog status.
func (s *iconService) Status(ctx context.Context) catalog.Status {
	return s.catalog.Status()
}

// History lists stored loads.
func (s *iconService) History(ctx context.Context, limit int) ([]storage.LoadRecord, error) {
	if limit <= 0 || limit > MaxHistoryLimit {
		return nil, &ValidationError{
			Field:   "limit",
			Message: fmt.Sprintf("must be between 1 and %d", MaxHistoryLimit),
		}
	}

	loads, err := s.catalog.History(ctx, limit)
	if err != nil {
		contextutil.LoggerFromContext(ctx).ErrorContext(ctx, "failed to list stored loads", "error", err)
		return nil, WrapError(err, "failed to list stored loads")
	}
	return loads, nil
}
