package service_test

import (
	"context"
	"testing"

	"github.com/agarza/hoopstats/internal/repository/postgres"
	"github.com/agarza/hoopstats/internal/service"
	"github.com/agarza/hoopstats/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestAuthService_Register(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	authService := service.NewAuthService(repos.User, repos.UserSession, testutil.TestConfig())
	ctx := context.Background()

	result, err := authService.Register(ctx, service.RegisterInput{
		Username:    "Shooter",
		Password:    "password123",
		DisplayName: "Shooter McGavin",
	})
	require.NoError(t, err)

	assert.Equal(t, "shooter", result.User.Username, "usernames are stored lowercase")
	assert.Equal(t, "Shooter McGavin", result.User.DisplayName)
	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)
	assert.NotEqual(t, "password123", result.User.PasswordHash)
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	authService := service.NewAuthService(repos.User, repos.UserSession, testutil.TestConfig())
	ctx := context.Background()

	_, err := authService.Register(ctx, service.RegisterInput{
		Username:    "shooter",
		Password:    "password123",
		DisplayName: "First",
	})
	require.NoError(t, err)

	// Case differs, but usernames are compared lowercase
	_, err = authService.Register(ctx, service.RegisterInput{
		Username:    "SHOOTER",
		Password:    "otherpassword",
		DisplayName: "Second",
	})
	assert.ErrorIs(t, err, service.ErrUsernameExists)
}

func TestAuthService_Login(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	authService := service.NewAuthService(repos.User, repos.UserSession, testutil.TestConfig())
	ctx := context.Background()

	user, password := testutil.NewUserBuilder().Build(t, testDB.DB)

	result, err := authService.Login(ctx, service.LoginInput{
		Username: user.Username,
		Password: password,
	})
	require.NoError(t, err)

	assert.Equal(t, user.ID, result.User.ID)
	assert.NotEmpty(t, result.AccessToken)

	claims, err := authService.ValidateToken(result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), (*claims)["sub"])
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	authService := service.NewAuthService(repos.User, repos.UserSession, testutil.TestConfig())
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	_, err := authService.Login(ctx, service.LoginInput{
		Username: user.Username,
		Password: "not-the-password",
	})
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	authService := service.NewAuthService(repos.User, repos.UserSession, testutil.TestConfig())
	ctx := context.Background()

	_, err := authService.Login(ctx, service.LoginInput{
		Username: "nobody",
		Password: "password123",
	})
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestAuthService_ValidateToken_Invalid(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	authService := service.NewAuthService(repos.User, repos.UserSession, testutil.TestConfig())

	_, err := authService.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestAuthService_GetUserByID_NotFound(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	authService := service.NewAuthService(repos.User, repos.UserSession, testutil.TestConfig())
	ctx := context.Background()

	_, err := authService.GetUserByID(ctx, uuid.New())
	assert.ErrorIs(t, err, service.ErrUserNotFound)
}

func TestAuthService_Logout(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	authService := service.NewAuthService(repos.User, repos.UserSession, testutil.TestConfig())
	ctx := context.Background()

	user, password := testutil.NewUserBuilder().Build(t, testDB.DB)

	_, err := authService.Login(ctx, service.LoginInput{Username: user.Username, Password: password})
	require.NoError(t, err)

	session, err := repos.UserSession.GetByUserID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, session)

	require.NoError(t, authService.Logout(ctx, user.ID))

	_, err = repos.UserSession.GetByUserID(ctx, user.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
