package impl

import (
	"context"
	"io"
	"strings"
	"testing"

	"aunerarroz/internal/domain/entity"
	domainerrors "aunerarroz/internal/domain/errors"
	"aunerarroz/internal/domain/repository"
	mockRepo "aunerarroz/internal/mocks/repository"
	mockSvc "aunerarroz/internal/mocks/service"
	"aunerarroz/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// menuServiceFixtures holds all test dependencies for menu service tests.
type menuServiceFixtures struct {
	service   usecase.MenuUsecase
	txManager *mockRepo.MockTransactionManager
	dishRepo  *mockRepo.MockDishRepository
	storage   *mockSvc.MockMediaStorage
}

func createTestMenuService(t *testing.T) menuServiceFixtures {
	fx := menuServiceFixtures{
		txManager: mockRepo.NewMockTransactionManager(t),
		dishRepo:  mockRepo.NewMockDishRepository(t),
		storage:   mockSvc.NewMockMediaStorage(t),
	}
	fx.service = NewMenuService(MenuServiceParams{
		Config:    newTestConfig(),
		TxManager: fx.txManager,
		Storage:   fx.storage,
		Logger:    newDiscardLogger(),
	})

	return fx
}

func (fx menuServiceFixtures) expectDishTx(t *testing.T) {
	expectTx(t, fx.txManager, func(f *mockRepo.MockRepositoryFactory) {
		f.EXPECT().DishRepo().Return(fx.dishRepo)
	})
}

func TestMenuService_ListDishes_ActiveOnly(t *testing.T) {
	fx := createTestMenuService(t)
	ctx := context.Background()

	dishes := []*entity.Dish{{ID: uuid.New(), Name: "Arroz con pollo", Active: true}}
	fx.expectDishTx(t)
	fx.dishRepo.EXPECT().
		List(ctx, repository.DishFilter{Category: entity.CategoryMenu, ActiveOnly: true}).
		Return(dishes, nil)

	result, err := fx.service.ListDishes(ctx, entity.CategoryMenu)

	require.NoError(t, err)
	assert.Equal(t, dishes, result)
}

func TestMenuService_ListDishes_UnknownCategory(t *testing.T) {
	fx := createTestMenuService(t)

	_, err := fx.service.ListDishes(context.Background(), "bebidas")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestMenuService_ListAllDishes_EmptyIsNotNil(t *testing.T) {
	fx := createTestMenuService(t)
	ctx := context.Background()

	fx.expectDishTx(t)
	fx.dishRepo.EXPECT().List(ctx, repository.DishFilter{}).Return(nil, nil)

	result, err := fx.service.ListAllDishes(ctx)

	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestMenuService_CreateDish(t *testing.T) {
	fx := createTestMenuService(t)
	ctx := context.Background()

	fx.expectDishTx(t)
	fx.dishRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Dish")).Return(nil)

	dish, err := fx.service.CreateDish(ctx, usecase.DishInput{
		Name:     "  Arroz chino ",
		Price:    18000,
		Category: entity.CategoryMenu,
		Active:   true,
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, dish.ID)
	assert.Equal(t, "Arroz chino", dish.Name)
	assert.Equal(t, int64(18000), dish.Price)
	assert.True(t, dish.Active)
}

func TestMenuService_CreateDish_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input usecase.DishInput
	}{
		{name: "missing name", input: usecase.DishInput{Price: 1000, Category: entity.CategoryMenu}},
		{name: "zero price", input: usecase.DishInput{Name: "Jugo", Category: entity.CategoryExtra}},
		{name: "bad category", input: usecase.DishInput{Name: "Jugo", Price: 3000, Category: "bebida"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestMenuService(t)

			_, err := fx.service.CreateDish(context.Background(), tt.input)

			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestMenuService_UpdateDish_NotFound(t *testing.T) {
	fx := createTestMenuService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.expectDishTx(t)
	fx.dishRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrDishNotFound)

	_, err := fx.service.UpdateDish(ctx, id, usecase.DishInput{Name: "x", Price: 1, Category: entity.CategoryMenu})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrDishNotFound))
}

func TestMenuService_UpdateDish(t *testing.T) {
	fx := createTestMenuService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.expectDishTx(t)
	fx.dishRepo.EXPECT().FindByID(ctx, id).Return(&entity.Dish{ID: id, Name: "Viejo", Price: 1000, Category: entity.CategoryMenu, Active: true}, nil)
	fx.dishRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(d *entity.Dish) bool {
			return d.ID == id && d.Name == "Nuevo" && d.Price == 2000 && !d.Active
		})).
		Return(nil)

	dish, err := fx.service.UpdateDish(ctx, id, usecase.DishInput{Name: "Nuevo", Price: 2000, Category: entity.CategoryMenu})

	require.NoError(t, err)
	assert.Equal(t, "Nuevo", dish.Name)
}

func TestMenuService_DeleteDish_NotFound(t *testing.T) {
	fx := createTestMenuService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.expectDishTx(t)
	fx.dishRepo.EXPECT().Delete(ctx, id).Return(repository.ErrDishNotFound)

	err := fx.service.DeleteDish(ctx, id)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrDishNotFound))
}

func TestMenuService_UploadMedia(t *testing.T) {
	fx := createTestMenuService(t)
	ctx := context.Background()

	fx.storage.EXPECT().
		Upload(ctx, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "image/") && strings.HasSuffix(key, ".png")
		}), "image/png", mock.Anything).
		RunAndReturn(func(_ context.Context, key, _ string, r io.Reader) (string, error) {
			data, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, "tiny png", string(data))

			return "https://cdn.example.com/" + key, nil
		})

	out, err := fx.service.UploadMedia(ctx, entity.MediaImage, usecase.MediaUploadInput{
		Filename:    "Plato.PNG",
		ContentType: "image/png",
		Size:        8,
		Body:        strings.NewReader("tiny png"),
	})

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/"+out.Key, out.URL)
}

func TestMenuService_UploadMedia_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		kind     entity.MediaKind
		input    usecase.MediaUploadInput
		expected *domainerrors.BaseError
	}{
		{
			name:     "unknown kind",
			kind:     "audio",
			input:    usecase.MediaUploadInput{ContentType: "audio/mpeg", Body: strings.NewReader("x")},
			expected: domainerrors.ErrInvalidMediaKind,
		},
		{
			name:     "content type mismatch",
			kind:     entity.MediaImage,
			input:    usecase.MediaUploadInput{ContentType: "video/mp4", Body: strings.NewReader("x")},
			expected: domainerrors.ErrInvalidMediaKind,
		},
		{
			name:     "declared size too large",
			kind:     entity.MediaImage,
			input:    usecase.MediaUploadInput{ContentType: "image/jpeg", Size: 17, Body: strings.NewReader("x")},
			expected: domainerrors.ErrMediaTooLarge,
		},
		{
			name:     "body larger than declared",
			kind:     entity.MediaImage,
			input:    usecase.MediaUploadInput{ContentType: "image/jpeg", Size: 1, Body: strings.NewReader(strings.Repeat("x", 17))},
			expected: domainerrors.ErrMediaTooLarge,
		},
		{
			name:     "empty body",
			kind:     entity.MediaVideo,
			input:    usecase.MediaUploadInput{ContentType: "video/mp4", Body: strings.NewReader("")},
			expected: domainerrors.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestMenuService(t)

			_, err := fx.service.UploadMedia(context.Background(), tt.kind, tt.input)

			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.expected))
		})
	}
}
