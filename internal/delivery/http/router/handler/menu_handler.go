package handler

import (
	"log/slog"
	"net/http"

	"aunerarroz/internal/delivery/http/response"
	"aunerarroz/internal/domain/entity"
	domainerrors "aunerarroz/internal/domain/errors"
	"aunerarroz/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const mediaFormField = "file"

// MenuHandlerParams holds dependencies for MenuHandler, injected by Fx.
type MenuHandlerParams struct {
	fx.In

	MenuUC usecase.MenuUsecase
	Logger *slog.Logger
}

// MenuHandler serves the public menu and the menu editor.
type MenuHandler struct {
	menuUC usecase.MenuUsecase
	logger *slog.Logger
}

// NewMenuHandler is the constructor for MenuHandler
func NewMenuHandler(params MenuHandlerParams) *MenuHandler {
	return &MenuHandler{
		menuUC: params.MenuUC,
		logger: params.Logger,
	}
}

// DishRequest represents the editable fields of a dish. Active defaults to true.
type DishRequest struct {
	Name        string `json:"name" validate:"required,max=120"`
	Description string `json:"description" validate:"max=500"`
	Price       int64  `json:"price" validate:"required,gt=0"`
	Category    string `json:"category" validate:"required,oneof=menu adicional"`
	ImageURL    string `json:"image_url" validate:"omitempty,url"`
	VideoURL    string `json:"video_url" validate:"omitempty,url"`
	Active      *bool  `json:"active"`
}

func (r DishRequest) toInput() usecase.DishInput {
	active := true
	if r.Active != nil {
		active = *r.Active
	}

	return usecase.DishInput{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Category:    entity.DishCategory(r.Category),
		ImageURL:    r.ImageURL,
		VideoURL:    r.VideoURL,
		Active:      active,
	}
}

// ListDishes returns the active menu, ?category=menu|adicional
func (h *MenuHandler) ListDishes(c echo.Context) error {
	dishes, err := h.menuUC.ListDishes(c.Request().Context(), entity.DishCategory(c.QueryParam("category")))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, dishes)
}

// ListAllDishes returns every dish for the menu editor
func (h *MenuHandler) ListAllDishes(c echo.Context) error {
	dishes, err := h.menuUC.ListAllDishes(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, dishes)
}

// CreateDish adds a dish to the menu
func (h *MenuHandler) CreateDish(c echo.Context) error {
	var req DishRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	dish, err := h.menuUC.CreateDish(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, dish)
}

// UpdateDish replaces the editable fields of a dish
func (h *MenuHandler) UpdateDish(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req DishRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	dish, err := h.menuUC.UpdateDish(c.Request().Context(), id, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, dish)
}

// DeleteDish removes a dish
func (h *MenuHandler) DeleteDish(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.menuUC.DeleteDish(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// UploadMedia stores a multipart "file" as an image or video and returns its URL
func (h *MenuHandler) UploadMedia(c echo.Context) error {
	kind := entity.MediaKind(c.Param("kind"))
	if !kind.IsValid() {
		return domainerrors.ErrInvalidMediaKind
	}

	header, err := c.FormFile(mediaFormField)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Adjunta el archivo en el campo \""+mediaFormField+"\"")
	}

	file, err := header.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded file")
	}
	defer file.Close()

	output, err := h.menuUC.UploadMedia(c.Request().Context(), kind, usecase.MediaUploadInput{
		Filename:    header.Filename,
		ContentType: header.Header.Get(echo.HeaderContentType),
		Size:        header.Size,
		Body:        file,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output)
}
