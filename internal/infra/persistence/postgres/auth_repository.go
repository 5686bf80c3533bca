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

// authRepository implements the repository.AuthRepository interface.
type authRepository struct {
	fx.In

	q *query.Query
}

// NewAuthRepository is the constructor for authRepository.
func NewAuthRepository(db *gorm.DB) repository.AuthRepository {
	return &authRepository{
		q: query.Use(db),
	}
}

// CreateAuthentication persists a new authentication method record.
func (repo *authRepository) CreateAuthentication(ctx context.Context, auth *entity.Authentication) error {
	authM := &model.AuthenticationModel{
		ID:             auth.ID,
		UserID:         auth.UserID,
		Provider:       auth.Provider,
		ProviderUserID: auth.ProviderUserID,
		PasswordHash:   auth.PasswordHash,
	}

	if err := repo.q.AuthenticationModel.WithContext(ctx).Create(authM); err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrUserAlreadyExists
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create authentication")
	}

	auth.ID = authM.ID
	auth.CreatedAt = authM.CreatedAt

	return nil
}

// FindAuthentication retrieves an authentication record by its provider and provider-specific ID.
func (repo *authRepository) FindAuthentication(ctx context.Context, provider string, providerUserID string) (*entity.Authentication, error) {
	authM, err := repo.q.AuthenticationModel.WithContext(ctx).
		Where(
			repo.q.AuthenticationModel.Provider.Eq(provider),
			repo.q.AuthenticationModel.ProviderUserID.Eq(providerUserID),
		).
		First()

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAuthNotFound
		}

		return nil, errors.WithStack(err)
	}

	return &entity.Authentication{
		ID:             authM.ID,
		UserID:         authM.UserID,
		Provider:       authM.Provider,
		ProviderUserID: authM.ProviderUserID,
		PasswordHash:   authM.PasswordHash,
		CreatedAt:      authM.CreatedAt,
	}, nil
}

// UpdatePasswordHash replaces the email credential's hash for a user.
func (repo *authRepository) UpdatePasswordHash(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	a := repo.q.AuthenticationModel
	result, err := a.WithContext(ctx).
		Where(a.UserID.Eq(userID), a.Provider.Eq(entity.ProviderEmail)).
		UpdateColumnSimple(a.PasswordHash.Value(passwordHash))

	if err != nil {
		return errors.Wrap(err, "failed to update password hash")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAuthNotFound
	}

	return nil
}

// CreateRefreshToken persists a new refresh token, representing a customer session.
func (repo *authRepository) CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error {
	tokenM := &model.RefreshTokenModel{
		ID:        token.ID,
		UserID:    token.UserID,
		TokenHash: token.TokenHash,
		ExpiresAt: token.ExpiresAt,
	}

	if err := repo.q.RefreshTokenModel.WithContext(ctx).Create(tokenM); err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrRefreshTokenInvalid.WrapMessage("refresh token already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create refresh token")
	}

	token.ID = tokenM.ID
	token.CreatedAt = tokenM.CreatedAt

	return nil
}

// FindRefreshTokenByID retrieves a refresh token record by its unique ID.
func (repo *authRepository) FindRefreshTokenByID(ctx context.Context, id uuid.UUID) (*entity.RefreshToken, error) {
	tokenM, err := repo.q.RefreshTokenModel.WithContext(ctx).
		Where(repo.q.RefreshTokenModel.ID.Eq(id)).
		First()

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTokenNotFound
		}

		return nil, errors.WithStack(err)
	}

	return &entity.RefreshToken{
		ID:        tokenM.ID,
		UserID:    tokenM.UserID,
		TokenHash: tokenM.TokenHash,
		ExpiresAt: tokenM.ExpiresAt,
		CreatedAt: tokenM.CreatedAt,
	}, nil
}

// DeleteRefreshTokenByHash ends a customer session.
func (repo *authRepository) DeleteRefreshTokenByHash(ctx context.Context, hash string) error {
	result, err := repo.q.RefreshTokenModel.WithContext(ctx).
		Where(repo.q.RefreshTokenModel.TokenHash.Eq(hash)).
		Delete()

	if err != nil {
		return errors.Wrap(err, "failed to delete refresh token")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTokenNotFound
	}

	return nil
}

// DeleteRefreshTokenByID ends the session an access token belongs to.
func (repo *authRepository) DeleteRefreshTokenByID(ctx context.Context, id uuid.UUID) error {
	result, err := repo.q.RefreshTokenModel.WithContext(ctx).
		Where(repo.q.RefreshTokenModel.ID.Eq(id)).
		Delete()

	if err != nil {
		return errors.Wrap(err, "failed to delete refresh token")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTokenNotFound
	}

	return nil
}

// CreateOneTimeCode stores a fresh recovery code and retires any older unused ones for the same email.
func (repo *authRepository) CreateOneTimeCode(ctx context.Context, code *entity.OneTimeCode) error {
	c := repo.q.OneTimeCodeModel
	if _, err := c.WithContext(ctx).
		Where(c.Email.Eq(code.Email), c.UsedAt.IsNull()).
		UpdateColumnSimple(c.UsedAt.Value(time.Now())); err != nil {
		return errors.Wrap(err, "failed to retire previous one-time codes")
	}

	codeM := &model.OneTimeCodeModel{
		ID:        code.ID,
		Email:     code.Email,
		CodeHash:  code.CodeHash,
		ExpiresAt: code.ExpiresAt,
	}

	if err := c.WithContext(ctx).Create(codeM); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create one-time code")
	}

	code.ID = codeM.ID
	code.CreatedAt = codeM.CreatedAt

	return nil
}

// FindLatestOneTimeCode returns the newest unused, unexpired code for the email.
func (repo *authRepository) FindLatestOneTimeCode(ctx context.Context, email string, now time.Time) (*entity.OneTimeCode, error) {
	c := repo.q.OneTimeCodeModel
	codeM, err := c.WithContext(ctx).
		Where(c.Email.Eq(email), c.UsedAt.IsNull(), c.ExpiresAt.Gt(now)).
		Order(c.CreatedAt.Desc()).
		First()

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOneTimeCodeNotFound
		}

		return nil, errors.WithStack(err)
	}

	return &entity.OneTimeCode{
		ID:        codeM.ID,
		Email:     codeM.Email,
		CodeHash:  codeM.CodeHash,
		ExpiresAt: codeM.ExpiresAt,
		UsedAt:    codeM.UsedAt,
		CreatedAt: codeM.CreatedAt,
	}, nil
}

// MarkOneTimeCodeUsed consumes a code. A code that was already used reports not found.
func (repo *authRepository) MarkOneTimeCodeUsed(ctx context.Context, id uuid.UUID, at time.Time) error {
	c := repo.q.OneTimeCodeModel
	result, err := c.WithContext(ctx).
		Where(c.ID.Eq(id), c.UsedAt.IsNull()).
		UpdateColumnSimple(c.UsedAt.Value(at))

	if err != nil {
		return errors.Wrap(err, "failed to mark one-time code used")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOneTimeCodeNotFound
	}

	return nil
}
