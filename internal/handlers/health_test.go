package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"icongallery/internal/catalog"
	service_mocks "icongallery/internal/service/mocks"
)

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name           string
		status         catalog.Status
		expectedStatus int
		expectedHealth string
		expectedSource string
	}{
		{
			name:           "healthy",
			status:         catalog.Status{State: catalog.StateReady, IconCount: 12},
			expectedStatus: http.StatusOK,
			expectedHealth: "healthy",
			expectedSource: "ok",
		},
		{
			name:           "degraded after failed reload",
			status:         catalog.Status{State: catalog.StateFailed, Error: "fetch failed", IconCount: 12},
			expectedStatus: http.StatusOK,
			expectedHealth: "degraded",
			expectedSource: "error",
		},
		{
			name:           "loading with icons",
			status:         catalog.Status{State: catalog.StateLoading, Loading: true, IconCount: 12},
			expectedStatus: http.StatusOK,
			expectedHealth: "healthy",
			expectedSource: "loading",
		},
		{
			name:           "unhealthy before first load",
			status:         catalog.Status{State: catalog.StateLoading, Loading: true},
			expectedStatus: http.StatusServiceUnavailable,
			expectedHealth: "unhealthy",
			expectedSource: "loading",
		},
		{
			name:           "unhealthy after failed first load",
			status:         catalog.Status{State: catalog.StateFailed, Error: "fetch failed"},
			expectedStatus: http.StatusServiceUnavailable,
			expectedHealth: "unhealthy",
			expectedSource: "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := service_mocks.NewMockIconService(ctrl)
			mockService.EXPECT().Status(gomock.Any()).Return(tt.status)

			handler := NewHealthHandler(mockService)
			handler.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))

			if w.Code != tt.expectedStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.expectedStatus)
			}

			var resp HealthResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp.Status != tt.expectedHealth {
				t.Errorf("health = %q, want %q", resp.Status, tt.expectedHealth)
			}
			if resp.Checks["token_source"] != tt.expectedSource {
				t.Errorf("token_source = %q, want %q", resp.Checks["token_source"], tt.expectedSource)
			}
			if resp.Timestamp != "2024-01-02T03:04:05Z" {
				t.Errorf("timestamp = %q", resp.Timestamp)
			}
		})
	}
}

func TestHealthHandler_MethodNotAllowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewHealthHandler(service_mocks.NewMockIconService(ctrl))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/health", nil))

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", w.Code, http.StatusMethodNotAllowed)
	}
}
