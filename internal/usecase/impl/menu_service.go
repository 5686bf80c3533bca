package impl

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"mime"
	"path/filepath"
	"strings"

	"aunerarroz/config"
	deliverycontext "aunerarroz/internal/delivery/context"
	"aunerarroz/internal/domain/entity"
	domainerrors "aunerarroz/internal/domain/errors"
	"aunerarroz/internal/domain/repository"
	"aunerarroz/internal/domain/service"
	"aunerarroz/internal/usecase"
	"aunerarroz/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultMaxImageSize int64 = 5 << 20
	defaultMaxVideoSize int64 = 50 << 20
)

// MenuServiceParams holds dependencies for the menu service, injected by Fx.
type MenuServiceParams struct {
	fx.In

	Config    *config.Config
	TxManager repository.TransactionManager
	Storage   service.MediaStorage
	Logger    *slog.Logger
}

type menuService struct {
	txManager    repository.TransactionManager
	storage      service.MediaStorage
	logger       *slog.Logger
	maxImageSize int64
	maxVideoSize int64
}

// NewMenuService is the constructor for menuService.
func NewMenuService(params MenuServiceParams) usecase.MenuUsecase {
	srv := &menuService{
		txManager:    params.TxManager,
		storage:      params.Storage,
		logger:       params.Logger,
		maxImageSize: defaultMaxImageSize,
		maxVideoSize: defaultMaxVideoSize,
	}
	if params.Config != nil && params.Config.Media != nil {
		if params.Config.Media.MaxImageSize > 0 {
			srv.maxImageSize = params.Config.Media.MaxImageSize
		}
		if params.Config.Media.MaxVideoSize > 0 {
			srv.maxVideoSize = params.Config.Media.MaxVideoSize
		}
	}

	return srv
}

func (srv *menuService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListDishes returns the public menu.
func (srv *menuService) ListDishes(ctx context.Context, category entity.DishCategory) ([]*entity.Dish, error) {
	if category != "" && !category.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown category")
	}

	return srv.listDishes(ctx, repository.DishFilter{Category: category, ActiveOnly: true})
}

func (srv *menuService) ListAllDishes(ctx context.Context) ([]*entity.Dish, error) {
	return srv.listDishes(ctx, repository.DishFilter{})
}

func (srv *menuService) listDishes(ctx context.Context, filter repository.DishFilter) ([]*entity.Dish, error) {
	var dishes []*entity.Dish
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		dishes, err = repoFactory.DishRepo().List(ctx, filter)
		if err != nil {
			return errors.Wrap(err, "failed to list dishes")
		}

		return nil
	})
	if err != nil {
		return nil, surfaceError(err)
	}
	if dishes == nil {
		dishes = []*entity.Dish{}
	}

	return dishes, nil
}

func (srv *menuService) CreateDish(ctx context.Context, input usecase.DishInput) (*entity.Dish, error) {
	if err := validateDishInput(&input); err != nil {
		return nil, err
	}

	dish := &entity.Dish{ID: uuid.New()}
	applyDishInput(dish, input)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return errors.Wrap(repoFactory.DishRepo().Create(ctx, dish), "failed to create dish")
	})
	if err != nil {
		return nil, surfaceError(err)
	}

	srv.log(ctx).Info("Dish created", slog.Any("dish_id", dish.ID), slog.String("name", dish.Name))

	return dish, nil
}

func (srv *menuService) UpdateDish(ctx context.Context, id uuid.UUID, input usecase.DishInput) (*entity.Dish, error) {
	if err := validateDishInput(&input); err != nil {
		return nil, err
	}

	var dish *entity.Dish
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		dishRepo := repoFactory.DishRepo()

		var err error
		dish, err = dishRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrDishNotFound) {
				return domainerrors.ErrDishNotFound
			}

			return errors.Wrap(err, "failed to find dish")
		}

		applyDishInput(dish, input)

		if err := dishRepo.Update(ctx, dish); err != nil {
			if errors.Is(err, repository.ErrDishNotFound) {
				return domainerrors.ErrDishNotFound
			}

			return errors.Wrap(err, "failed to update dish")
		}

		return nil
	})
	if err != nil {
		return nil, surfaceError(err)
	}

	srv.log(ctx).Info("Dish updated", slog.Any("dish_id", id))

	return dish, nil
}

func (srv *menuService) DeleteDish(ctx context.Context, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.DishRepo().Delete(ctx, id); err != nil {
			if errors.Is(err, repository.ErrDishNotFound) {
				return domainerrors.ErrDishNotFound
			}

			return errors.Wrap(err, "failed to delete dish")
		}

		return nil
	})
	if err != nil {
		return surfaceError(err)
	}

	srv.log(ctx).Info("Dish deleted", slog.Any("dish_id", id))

	return nil
}

// UploadMedia stores the file under a content-addressed key so the same
// upload twice yields the same URL.
func (srv *menuService) UploadMedia(ctx context.Context, kind entity.MediaKind, input usecase.MediaUploadInput) (*usecase.MediaUploadOutput, error) {
	if !kind.IsValid() {
		return nil, domainerrors.ErrInvalidMediaKind
	}

	contentType := strings.ToLower(strings.TrimSpace(input.ContentType))
	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
		contentType = mediaType
	}
	if !strings.HasPrefix(contentType, string(kind)+"/") {
		return nil, domainerrors.ErrInvalidMediaKind.WithDetails(contentType)
	}

	limit := srv.maxImageSize
	if kind == entity.MediaVideo {
		limit = srv.maxVideoSize
	}
	if input.Size > limit {
		return nil, domainerrors.ErrMediaTooLarge.WithDetails(util.FormatBytes(limit))
	}

	// Size is client supplied; the read limit is what enforces it.
	data, err := io.ReadAll(io.LimitReader(input.Body, limit+1))
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "failed to read upload")
	}
	if int64(len(data)) > limit {
		return nil, domainerrors.ErrMediaTooLarge.WithDetails(util.FormatBytes(limit))
	}
	if len(data) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("empty file")
	}

	checksum, err := util.ContentChecksum(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInternalError, err.Error())
	}

	key := string(kind) + "/" + checksum + mediaExtension(input.Filename, contentType)

	url, err := srv.storage.Upload(ctx, key, contentType, bytes.NewReader(data))
	if err != nil {
		srv.log(ctx).Error("Failed to store media", slog.String("key", key), slog.Any("error", err))

		return nil, surfaceError(err)
	}

	srv.log(ctx).Info("Media uploaded", slog.String("key", key), slog.String("size", util.FormatBytes(int64(len(data)))))

	return &usecase.MediaUploadOutput{URL: url, Key: key}, nil
}

func validateDishInput(input *usecase.DishInput) error {
	input.Name = strings.TrimSpace(input.Name)
	input.Description = strings.TrimSpace(input.Description)

	switch {
	case input.Name == "":
		return domainerrors.ErrValidationFailed.WithDetails("name is required")
	case input.Price <= 0:
		return domainerrors.ErrValidationFailed.WithDetails("price must be positive")
	case !input.Category.IsValid():
		return domainerrors.ErrValidationFailed.WithDetails("category must be menu or adicional")
	}

	return nil
}

func applyDishInput(dish *entity.Dish, input usecase.DishInput) {
	dish.Name = input.Name
	dish.Description = input.Description
	dish.Price = input.Price
	dish.Category = input.Category
	dish.ImageURL = strings.TrimSpace(input.ImageURL)
	dish.VideoURL = strings.TrimSpace(input.VideoURL)
	dish.Active = input.Active
}

// mediaExtension keeps the uploaded file's extension, falling back to one
// registered for the content type.
func mediaExtension(filename, contentType string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext != "" && len(ext) <= 6 {
		return ext
	}

	if exts, err := mime.ExtensionsByType(contentType); err == nil && len(exts) > 0 {
		return exts[0]
	}

	return ""
}
