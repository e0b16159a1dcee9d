package services_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/jobsync-app/jobsync-backend/internal/apperr"
	"github.com/jobsync-app/jobsync-backend/internal/dto"
	"github.com/jobsync-app/jobsync-backend/internal/models"
	"github.com/jobsync-app/jobsync-backend/internal/repository"
	"github.com/jobsync-app/jobsync-backend/internal/services"
)

const testSecret = "test-secret"

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Institute{},
		&models.Client{},
		&models.Worker{},
		&models.Task{},
		&models.User{},
	))
	return db
}

func newAuthService(t *testing.T) *services.AuthService {
	t.Helper()
	db := openTestDB(t)
	return services.NewAuthService(repository.NewUserRepository(db), testSecret, time.Hour)
}

func TestSignupAndLogin(t *testing.T) {
	auth := newAuthService(t)

	resp, err := auth.Signup(&dto.SignupRequest{
		Name:     "Grace Hopper",
		Email:    "grace@example.com",
		Username: "grace",
		Password: "correct horse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "grace", resp.User.Username)
	assert.Equal(t, models.RoleViewer, resp.User.Role)

	login, err := auth.Login(&dto.LoginRequest{EmailOrUsername: "grace", Password: "correct horse"})
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, login.User.ID)
}

func TestTokenSubjectResolvesToUser(t *testing.T) {
	auth := newAuthService(t)

	resp, err := auth.Signup(&dto.SignupRequest{
		Name:     "Grace Hopper",
		Username: "grace",
		Password: "correct horse",
	})
	require.NoError(t, err)

	var claims services.Claims
	_, err = jwt.ParseWithClaims(resp.AccessToken, &claims, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	assert.Equal(t, "grace", claims.Username)

	id, err := uuid.Parse(claims.Subject)
	require.NoError(t, err)

	user, err := auth.UserByID(id)
	require.NoError(t, err)
	assert.Equal(t, "grace", user.Username)
}

func TestLoginByEmailOrUsername(t *testing.T) {
	auth := newAuthService(t)

	_, err := auth.Signup(&dto.SignupRequest{
		Name:     "Grace Hopper",
		Email:    "grace@example.com",
		Username: "grace",
		Password: "correct horse",
	})
	require.NoError(t, err)

	_, err = auth.Login(&dto.LoginRequest{EmailOrUsername: "grace@example.com", Password: "correct horse"})
	require.NoError(t, err)

	_, err = auth.Login(&dto.LoginRequest{EmailOrUsername: "grace", Password: "correct horse"})
	require.NoError(t, err)
}

// A username that happens to contain "@" still logs in through the fallback
// lookup.
func TestLoginFallbackForAtSignUsername(t *testing.T) {
	auth := newAuthService(t)

	_, err := auth.Signup(&dto.SignupRequest{
		Name:     "Odd Name",
		Username: "odd@name",
		Password: "correct horse",
	})
	require.NoError(t, err)

	_, err = auth.Login(&dto.LoginRequest{EmailOrUsername: "odd@name", Password: "correct horse"})
	require.NoError(t, err)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	auth := newAuthService(t)

	_, err := auth.Signup(&dto.SignupRequest{
		Name:     "Grace Hopper",
		Username: "grace",
		Password: "correct horse",
	})
	require.NoError(t, err)

	_, wrongPassword := auth.Login(&dto.LoginRequest{EmailOrUsername: "grace", Password: "wrong"})
	_, unknownUser := auth.Login(&dto.LoginRequest{EmailOrUsername: "nobody", Password: "wrong"})

	require.Error(t, wrongPassword)
	require.Error(t, unknownUser)
	assert.True(t, apperr.IsKind(wrongPassword, apperr.KindUnauthorized))
	assert.True(t, apperr.IsKind(unknownUser, apperr.KindUnauthorized))
	assert.Equal(t, wrongPassword.Error(), unknownUser.Error())
}

func TestSignupConflicts(t *testing.T) {
	auth := newAuthService(t)

	_, err := auth.Signup(&dto.SignupRequest{
		Name:     "Grace Hopper",
		Email:    "grace@example.com",
		Username: "grace",
		Password: "correct horse",
	})
	require.NoError(t, err)

	_, err = auth.Signup(&dto.SignupRequest{
		Name:     "Other",
		Username: "grace",
		Password: "password1",
	})
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))

	_, err = auth.Signup(&dto.SignupRequest{
		Name:     "Other",
		Email:    "grace@example.com",
		Username: "grace2",
		Password: "password1",
	})
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
}

func TestEnsureAdminIdempotent(t *testing.T) {
	auth := newAuthService(t)

	require.NoError(t, auth.EnsureAdmin("admin", "bootstrap-pass"))
	require.NoError(t, auth.EnsureAdmin("admin", "bootstrap-pass"))

	resp, err := auth.Login(&dto.LoginRequest{EmailOrUsername: "admin", Password: "bootstrap-pass"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, resp.User.Role)
}
