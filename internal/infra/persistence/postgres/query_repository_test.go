package postgres

import (
	"context"
	"testing"
	"time"

	"aunerarroz/internal/domain/entity"
	"aunerarroz/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	t.Cleanup(func() { assert.NoError(t, sqlMock.ExpectationsWereMet()) })

	return db, sqlMock
}

func TestUserRepository_IncrementPoints(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("returns the new balance", func(t *testing.T) {
		db, sqlMock := newMockDB(t)
		sqlMock.ExpectQuery(`UPDATE "users" SET .+ WHERE .+ RETURNING "points"`).
			WillReturnRows(sqlmock.NewRows([]string{"points"}).AddRow(42))

		balance, err := NewUserRepository(db).IncrementPoints(ctx, userID, 10)

		require.NoError(t, err)
		assert.Equal(t, 42, balance)
	})

	t.Run("unknown user", func(t *testing.T) {
		db, sqlMock := newMockDB(t)
		sqlMock.ExpectQuery(`UPDATE "users" SET .+ RETURNING "points"`).
			WillReturnRows(sqlmock.NewRows([]string{"points"}))

		_, err := NewUserRepository(db).IncrementPoints(ctx, userID, 10)

		assert.ErrorIs(t, err, repository.ErrUserNotFound)
	})
}

func TestUserRepository_DecrementPoints_InsufficientBalance(t *testing.T) {
	ctx := context.Background()
	db, sqlMock := newMockDB(t)

	sqlMock.ExpectQuery(`UPDATE "users" SET .+ RETURNING "points"`).
		WillReturnRows(sqlmock.NewRows([]string{"points"}))
	sqlMock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	_, err := NewUserRepository(db).DecrementPoints(ctx, uuid.New(), 500)

	assert.ErrorIs(t, err, repository.ErrInsufficientBalance)
}

func TestUserRepository_CountByRoleSince(t *testing.T) {
	db, sqlMock := newMockDB(t)
	since := time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC)

	sqlMock.ExpectQuery(`SELECT count\(\*\) FROM "users" WHERE "users"."role" = \$1 AND "users"."created_at" >= \$2`).
		WithArgs(string(entity.RoleCustomer), since).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	count, err := NewUserRepository(db).CountByRoleSince(context.Background(), entity.RoleCustomer, since)

	require.NoError(t, err)
	assert.Equal(t, 7, count)
}

func TestAuthRepository_RefreshTokenByID(t *testing.T) {
	ctx := context.Background()
	tokenID := uuid.New()
	userID := uuid.New()
	expiresAt := time.Now().Add(time.Hour).UTC()

	t.Run("found", func(t *testing.T) {
		db, sqlMock := newMockDB(t)
		sqlMock.ExpectQuery(`SELECT \* FROM "refresh_tokens" WHERE "refresh_tokens"."id" = \$1`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "token_hash", "expires_at", "created_at"}).
				AddRow(tokenID.String(), userID.String(), "hash", expiresAt, expiresAt.Add(-time.Hour)))

		token, err := NewAuthRepository(db).FindRefreshTokenByID(ctx, tokenID)

		require.NoError(t, err)
		assert.Equal(t, tokenID, token.ID)
		assert.Equal(t, userID, token.UserID)
		assert.Equal(t, "hash", token.TokenHash)
	})

	t.Run("missing", func(t *testing.T) {
		db, sqlMock := newMockDB(t)
		sqlMock.ExpectQuery(`SELECT \* FROM "refresh_tokens"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := NewAuthRepository(db).FindRefreshTokenByID(ctx, tokenID)

		assert.ErrorIs(t, err, repository.ErrTokenNotFound)
	})

	t.Run("delete of an ended session", func(t *testing.T) {
		db, sqlMock := newMockDB(t)
		sqlMock.ExpectExec(`DELETE FROM "refresh_tokens" WHERE "refresh_tokens"."id" = \$1`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := NewAuthRepository(db).DeleteRefreshTokenByID(ctx, tokenID)

		assert.ErrorIs(t, err, repository.ErrTokenNotFound)
	})
}

func TestCodeRepository_ConsumeCode(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	at := time.Now().UTC()

	t.Run("consumes an unused code", func(t *testing.T) {
		db, sqlMock := newMockDB(t)
		codeID := uuid.New()
		sqlMock.ExpectQuery(`UPDATE "points_codes" SET .+ WHERE .+ RETURNING \*`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "code", "type", "used"}).
				AddRow(codeID.String(), "ABC123", string(entity.CodeKindVisit), true))

		code, err := NewCodeRepository(db).ConsumeCode(ctx, "ABC123", userID, at)

		require.NoError(t, err)
		assert.Equal(t, codeID, code.ID)
		assert.Equal(t, entity.CodeKindVisit, code.Kind)
		assert.True(t, code.Consumed)
	})

	t.Run("already consumed", func(t *testing.T) {
		db, sqlMock := newMockDB(t)
		sqlMock.ExpectQuery(`UPDATE "points_codes" SET .+ RETURNING \*`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := NewCodeRepository(db).ConsumeCode(ctx, "ABC123", userID, at)

		assert.ErrorIs(t, err, repository.ErrCodeNotFound)
	})
}
