package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bagdasarian/squad-builder/internal/handler"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestSetupRoutes(t *testing.T) {
	router := SetupRoutes(handler.NewHandler(nil, nil, nil, nil), zap.NewNop())

	tests := []struct {
		name       string
		method     string
		target     string
		wantStatus int
	}{
		{"healthz", http.MethodGet, "/healthz", http.StatusOK},
		{"список схем", http.MethodGet, "/formations", http.StatusOK},
		{"неизвестный путь", http.MethodGet, "/teams", http.StatusNotFound},
		{"неверный метод", http.MethodDelete, "/formations", http.StatusMethodNotAllowed},
		{"нечисловой слот до сервиса не доходит", http.MethodDelete, "/squads/s-1/lineup/x", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.target, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
