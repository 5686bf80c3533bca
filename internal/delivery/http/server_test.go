package http

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"aunerarroz/config"
	"aunerarroz/internal/delivery/http/middleware"
	"aunerarroz/internal/delivery/http/router"
	"aunerarroz/internal/delivery/http/router/handler"
	"aunerarroz/internal/domain/entity"
	mockUsecase "aunerarroz/internal/mocks/usecase"
	"aunerarroz/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const adminToken = "admin-token"

func setupMediaServer(t *testing.T) (*echo.Echo, *mockUsecase.MockMenuUsecase) {
	t.Helper()

	cfg := &config.Config{Media: &config.MediaConfig{MaxImageSize: 2 << 10, MaxVideoSize: 4 << 10}}
	cfg.HTTP.MaxRequestBodySize = "1KB"
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	sessions := mockUsecase.NewMockSessionUsecase(t)
	sessions.EXPECT().
		ResolveOnStart(mock.Anything, mock.AnythingOfType("*entity.AppState"), adminToken).
		RunAndReturn(func(_ context.Context, state *entity.AppState, _ string) entity.Actor {
			actor := entity.AdminActor()
			state.Resolve(actor, nil)

			return actor
		}).
		Maybe()
	menuUC := mockUsecase.NewMockMenuUsecase(t)

	e := NewEcho(cfg, logger)
	router.NewRouter(router.RouterParams{
		Config:         cfg,
		MenuHandler:    handler.NewMenuHandler(handler.MenuHandlerParams{MenuUC: menuUC, Logger: logger}),
		AuthMiddleware: middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{Sessions: sessions}),
	}).RegisterRoutes(e)

	return e, menuUC
}

func uploadRequest(t *testing.T, size int) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", "dish.mp4")
	require.NoError(t, err)
	_, err = part.Write(bytes.Repeat([]byte{'x'}, size))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/admin/media/video", body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+adminToken)

	return req
}

func TestNewEcho_MediaUploadBodyLimit(t *testing.T) {
	t.Run("above the global limit but within the media limit", func(t *testing.T) {
		e, menuUC := setupMediaServer(t)
		menuUC.EXPECT().
			UploadMedia(mock.Anything, entity.MediaVideo, mock.AnythingOfType("usecase.MediaUploadInput")).
			Return(&usecase.MediaUploadOutput{URL: "https://cdn.example.com/videos/a.mp4", Key: "videos/a.mp4"}, nil).
			Once()

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, uploadRequest(t, 3<<10))

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("above the media limit", func(t *testing.T) {
		e, _ := setupMediaServer(t)

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, uploadRequest(t, 8<<10))

		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	})

	t.Run("other routes keep the global limit", func(t *testing.T) {
		e, _ := setupMediaServer(t)

		req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(strings.Repeat("x", 2<<10)))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	})
}
