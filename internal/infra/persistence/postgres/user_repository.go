package postgres

import (
	"context"
	"time"

	"aunerarroz/internal/domain/entity"
	domainerrors "aunerarroz/internal/domain/errors"
	"aunerarroz/internal/domain/repository"
	"aunerarroz/internal/infra/persistence/model"
	"aunerarroz/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface using GORM Gen.
type userRepository struct {
	fx.In

	q *query.Query
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		q: query.Use(db),
	}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	userM, err := repo.q.UserModel.WithContext(ctx).
		Where(repo.q.UserModel.ID.Eq(id)).
		First()

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(userM), nil
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	userM, err := repo.q.UserModel.WithContext(ctx).
		Where(repo.q.UserModel.Email.Eq(email)).
		First()

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(userM), nil
}

// Create persists a new user row.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.q.UserModel.WithContext(ctx).Create(userM); err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrUserAlreadyExists
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// IncrementPoints adds delta to the stored balance in one statement and returns the new balance.
func (repo *userRepository) IncrementPoints(ctx context.Context, id uuid.UUID, delta int) (int, error) {
	var userM model.UserModel

	u := repo.q.UserModel
	result, err := u.WithContext(ctx).
		Returning(&userM, "points").
		Where(u.ID.Eq(id)).
		UpdateColumnSimple(u.Points.Add(delta))

	if err != nil {
		if isCheckConstraintViolation(err) {
			return 0, repository.ErrInsufficientBalance
		}

		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to increment points")
	}

	if result.RowsAffected == 0 {
		return 0, repository.ErrUserNotFound
	}

	return userM.Points, nil
}

// DecrementPoints subtracts amount only when the balance covers it.
func (repo *userRepository) DecrementPoints(ctx context.Context, id uuid.UUID, amount int) (int, error) {
	var userM model.UserModel

	u := repo.q.UserModel
	result, err := u.WithContext(ctx).
		Returning(&userM, "points").
		Where(u.ID.Eq(id), u.Points.Gte(amount)).
		UpdateColumnSimple(u.Points.Sub(amount))

	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to decrement points")
	}

	if result.RowsAffected == 0 {
		count, err := u.WithContext(ctx).Where(u.ID.Eq(id)).Count()
		if err != nil {
			return 0, errors.Wrap(err, "failed to check user existence")
		}
		if count == 0 {
			return 0, repository.ErrUserNotFound
		}

		return 0, repository.ErrInsufficientBalance
	}

	return userM.Points, nil
}

// ListByRole returns every user with the given role, ordered by name.
func (repo *userRepository) ListByRole(ctx context.Context, role entity.Role) ([]*entity.User, error) {
	userModels, err := repo.q.UserModel.WithContext(ctx).
		Where(repo.q.UserModel.Role.Eq(string(role))).
		Order(repo.q.UserModel.FullName).
		Find()

	if err != nil {
		return nil, errors.Wrap(err, "failed to list users by role")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

// CountByRoleSince counts users with the role created at or after since.
func (repo *userRepository) CountByRoleSince(ctx context.Context, role entity.Role, since time.Time) (int, error) {
	count, err := repo.q.UserModel.WithContext(ctx).
		Where(
			repo.q.UserModel.Role.Eq(string(role)),
			repo.q.UserModel.CreatedAt.Gte(since),
		).
		Count()

	if err != nil {
		return 0, errors.Wrap(err, "failed to count users")
	}

	return int(count), nil
}

// --- Mapper Functions ---

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:        data.ID,
		Email:     data.Email,
		FullName:  data.FullName,
		Points:    data.Points,
		Role:      entity.Role(data.Role),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	role := data.Role
	if role == "" {
		role = entity.RoleCustomer
	}

	return &model.UserModel{
		ID:       data.ID,
		Email:    data.Email,
		FullName: data.FullName,
		Points:   data.Points,
		Role:     string(role),
	}
}
