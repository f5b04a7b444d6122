package service_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workout-tracker/internal/models"
	"github.com/workout-tracker/internal/repository"
	"github.com/workout-tracker/internal/service"
	"github.com/workout-tracker/pkg/password"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newAuthService(t *testing.T, verifier password.Verifier) (*service.AuthService, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	return service.NewAuthService(repository.NewUserRepository(db), verifier), db
}

func TestRegisterThenLogin(t *testing.T) {
	svc, db := newAuthService(t, password.Plain{})

	user, err := svc.Register("alice", "secret")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	got, err := svc.Login("alice", "secret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, "alice", got.Username)
}

func TestRegisterTakenUsername(t *testing.T) {
	svc, db := newAuthService(t, password.Plain{})

	_, err := svc.Register("alice", "secret")
	require.NoError(t, err)

	_, err = svc.Register("alice", "other")
	assert.ErrorIs(t, err, service.ErrUsernameTaken)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _ := newAuthService(t, password.Plain{})

	_, err := svc.Register("alice", "secret")
	require.NoError(t, err)

	_, err = svc.Login("alice", "wrong")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	// Comparison is case-sensitive with the plain scheme.
	_, err = svc.Login("alice", "Secret")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	_, err = svc.Login("nobody", "secret")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestBcryptSchemeSwapsInWithoutRouteChanges(t *testing.T) {
	svc, db := newAuthService(t, password.Bcrypt{})

	_, err := svc.Register("alice", "secret")
	require.NoError(t, err)

	// Stored form is a hash, not the raw password.
	var user models.User
	require.NoError(t, db.Where("username = ?", "alice").First(&user).Error)
	assert.NotEqual(t, "secret", user.Password)

	_, err = svc.Login("alice", "secret")
	assert.NoError(t, err)

	_, err = svc.Login("alice", "wrong")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}
