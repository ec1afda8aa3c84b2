package usecase

import (
	"context"
	"io"
	"testing"

	"practice-management-api/internal/delivery/dto"
	"practice-management-api/internal/infrastructure/database"
	"practice-management-api/internal/repository"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB opens an in-memory sqlite store with the full schema and
// foreign keys enforced.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.NewSQLiteConnection(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.MigrateSQLite(db))

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newUserUsecaseForTest(t *testing.T) (UserUsecase, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewUserUsecase(db, newTestLogger(), repository.NewUserRepository()), db
}

// mustCreateUser seeds a user and returns its read shape.
func mustCreateUser(t *testing.T, u UserUsecase, username, email string) *dto.UserResponse {
	t.Helper()
	user, err := u.Create(context.Background(), &dto.CreateUserRequest{
		Username:  username,
		Password:  "pw123456",
		Email:     email,
		FirstName: "Test",
		LastName:  "User",
	})
	require.NoError(t, err)
	return user
}
