package handler

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"aunerarroz/internal/domain/entity"
	domainerrors "aunerarroz/internal/domain/errors"
	mockUsecase "aunerarroz/internal/mocks/usecase"
	"aunerarroz/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupMenuHandler(t *testing.T) (*echo.Echo, *mockUsecase.MockMenuUsecase) {
	menuUC := mockUsecase.NewMockMenuUsecase(t)
	h := NewMenuHandler(MenuHandlerParams{MenuUC: menuUC, Logger: newDiscardLogger()})

	e := newTestEcho()
	e.GET("/menu/dishes", h.ListDishes)
	g := e.Group("/admin", asActor(entity.AdminActor(), nil))
	g.GET("/dishes", h.ListAllDishes)
	g.POST("/dishes", h.CreateDish)
	g.PUT("/dishes/:id", h.UpdateDish)
	g.DELETE("/dishes/:id", h.DeleteDish)
	g.POST("/media/:kind", h.UploadMedia)

	return e, menuUC
}

func TestMenuHandler_ListDishes(t *testing.T) {
	e, menuUC := setupMenuHandler(t)

	menuUC.EXPECT().
		ListDishes(mock.Anything, entity.CategoryExtra).
		Return([]*entity.Dish{{ID: uuid.New(), Name: "Huevo frito", Price: 2000, Category: entity.CategoryExtra, Active: true}}, nil)

	rec, env := serve(t, e, http.MethodGet, "/menu/dishes?category=adicional", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var dishes []entity.Dish
	decodeData(t, env, &dishes)
	require.Len(t, dishes, 1)
	assert.Equal(t, "Huevo frito", dishes[0].Name)
}

func TestMenuHandler_CreateDish_DefaultsToActive(t *testing.T) {
	e, menuUC := setupMenuHandler(t)

	menuUC.EXPECT().
		CreateDish(mock.Anything, usecase.DishInput{Name: "Arroz chino", Price: 18000, Category: entity.CategoryMenu, Active: true}).
		Return(&entity.Dish{ID: uuid.New(), Name: "Arroz chino", Price: 18000, Category: entity.CategoryMenu, Active: true}, nil)

	rec, _ := serve(t, e, http.MethodPost, "/admin/dishes", `{"name":"Arroz chino","price":18000,"category":"menu"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestMenuHandler_UpdateDish_Inactive(t *testing.T) {
	e, menuUC := setupMenuHandler(t)
	id := uuid.New()

	menuUC.EXPECT().
		UpdateDish(mock.Anything, id, usecase.DishInput{Name: "Arroz chino", Price: 19000, Category: entity.CategoryMenu, Active: false}).
		Return(nil, domainerrors.ErrDishNotFound)

	rec, env := serve(t, e, http.MethodPut, "/admin/dishes/"+id.String(),
		`{"name":"Arroz chino","price":19000,"category":"menu","active":false}`)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "DISH_NOT_FOUND", env.Error.Code)
}

func TestMenuHandler_CreateDish_Validation(t *testing.T) {
	e, _ := setupMenuHandler(t)

	rec, env := serve(t, e, http.MethodPost, "/admin/dishes", `{"name":"Jugo","price":0,"category":"bebida"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Contains(t, env.Error.Details, "price")
	assert.Contains(t, env.Error.Details, "category")
}

func TestMenuHandler_DeleteDish(t *testing.T) {
	e, menuUC := setupMenuHandler(t)
	id := uuid.New()

	menuUC.EXPECT().DeleteDish(mock.Anything, id).Return(nil)

	rec, _ := serve(t, e, http.MethodDelete, "/admin/dishes/"+id.String(), "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestMenuHandler_UploadMedia(t *testing.T) {
	e, menuUC := setupMenuHandler(t)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	partHeader := make(textproto.MIMEHeader)
	partHeader.Set("Content-Disposition", `form-data; name="file"; filename="plato.png"`)
	partHeader.Set("Content-Type", "image/png")
	part, err := writer.CreatePart(partHeader)
	require.NoError(t, err)
	_, err = part.Write([]byte("png bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	menuUC.EXPECT().
		UploadMedia(mock.Anything, entity.MediaImage, mock.AnythingOfType("usecase.MediaUploadInput")).
		RunAndReturn(func(_ context.Context, _ entity.MediaKind, input usecase.MediaUploadInput) (*usecase.MediaUploadOutput, error) {
			assert.Equal(t, "plato.png", input.Filename)
			assert.Equal(t, "image/png", input.ContentType)
			assert.Equal(t, int64(9), input.Size)
			data, err := io.ReadAll(input.Body)
			require.NoError(t, err)
			assert.Equal(t, "png bytes", string(data))

			return &usecase.MediaUploadOutput{Key: "image/abc.png", URL: "https://cdn.example.com/image/abc.png"}, nil
		})

	req := httptest.NewRequest(http.MethodPost, "/admin/media/image", &body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "https://cdn.example.com/image/abc.png")
}

func TestMenuHandler_UploadMedia_UnknownKind(t *testing.T) {
	e, _ := setupMenuHandler(t)

	rec, env := serve(t, e, http.MethodPost, "/admin/media/audio", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_MEDIA_KIND", env.Error.Code)
}
