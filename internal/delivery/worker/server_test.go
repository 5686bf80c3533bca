package worker

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"aunerarroz/config"
	"aunerarroz/internal/delivery/worker/handler"
	mockSvc "aunerarroz/internal/mocks/service"

	"github.com/stretchr/testify/assert"
)

func TestNewEcho_Routes(t *testing.T) {
	cfg := &config.Config{Worker: &config.WorkerConfig{Port: 8081}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	pushHandler := handler.NewPushHandler(handler.PushHandlerParams{
		Config: cfg,
		Logger: logger,
		Mailer: mockSvc.NewMockMailer(t),
	})

	e := NewEcho(cfg, logger, pushHandler)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(`{"message":{"data":"!!"}}`))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
