package auth

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	testAccessExp  = "1h"
	testRefreshExp = "24h"
	testSecret     = "test-secret-key-for-jwt"
	testUserID     = "2c9a4f1e-7b3d-4e8a-9f6c-0d1b2a3c4e5f"
	testEmail      = "admin@example.com"
	testPassword   = "password123"
)

type inlineTx struct{}

func (inlineTx) WithTransaction(ctx context.Context, fn func(txCtx context.Context) error) error {
	return fn(ctx)
}

type fakeUserRepo struct {
	user.UserRepository
	users map[string]user.User
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

type storedToken struct {
	userID  string
	revoked bool
}

type fakeTokenRepo struct {
	tokens map[string]*storedToken
}

func (f *fakeTokenRepo) CreateRefreshToken(_ context.Context, userID string, token string, _ int64, _ auth.SessionTrackingRequest) error {
	f.tokens[token] = &storedToken{userID: userID}
	return nil
}

func (f *fakeTokenRepo) IsRefreshTokenRevoked(_ context.Context, token string) (string, bool, error) {
	st, ok := f.tokens[token]
	if !ok {
		return "", false, auth.ErrInvalidToken
	}
	return st.userID, st.revoked, nil
}

func (f *fakeTokenRepo) RevokeRefreshToken(_ context.Context, token string) error {
	if st, ok := f.tokens[token]; ok {
		st.revoked = true
	}
	return nil
}

func newTestAuthService(t *testing.T) (auth.AuthService, *fakeTokenRepo, jwt.Service) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	users := &fakeUserRepo{users: map[string]user.User{
		testUserID: {ID: testUserID, Email: testEmail, PasswordHash: string(hash), Role: user.RoleAdmin},
	}}
	tokens := &fakeTokenRepo{tokens: map[string]*storedToken{}}
	jwtService := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp, false)

	return NewAuthService(inlineTx{}, users, jwtService, tokens), tokens, jwtService
}

var session = auth.SessionTrackingRequest{IPAddress: "127.0.0.1", UserAgent: "Mozilla/5.0"}

func TestAuthService_Login_Success(t *testing.T) {
	svc, tokens, _ := newTestAuthService(t)

	resp, err := svc.Login(context.Background(), auth.LoginRequest{Email: testEmail, Password: testPassword}, session)
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Greater(t, resp.AccessTokenExpiresIn, int64(0))
	assert.Greater(t, resp.RefreshTokenExpiresIn, int64(0))
	assert.Equal(t, testEmail, resp.User.Email)
	assert.Contains(t, tokens.tokens, resp.RefreshToken)
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{Email: testEmail, Password: "wrongpassword"}, session)
	assert.Equal(t, auth.ErrInvalidCredentials, err)
}

func TestAuthService_Login_UserNotFound(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{Email: "nobody@example.com", Password: testPassword}, session)
	assert.Equal(t, auth.ErrInvalidCredentials, err)
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctx := context.Background()
	svc, _, jwtService := newTestAuthService(t)

	login, err := svc.Login(ctx, auth.LoginRequest{Email: testEmail, Password: testPassword}, session)
	require.NoError(t, err)

	t.Run("issues a new access token", func(t *testing.T) {
		resp, err := svc.RefreshToken(ctx, auth.RefreshTokenRequest{RefreshToken: login.RefreshToken})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
	})

	t.Run("access token is not a refresh token", func(t *testing.T) {
		_, err := svc.RefreshToken(ctx, auth.RefreshTokenRequest{RefreshToken: login.AccessToken})
		assert.Equal(t, auth.ErrInvalidToken, err)
	})

	t.Run("unknown but well signed token", func(t *testing.T) {
		other, _, err := jwtService.GenerateRefreshToken(testUserID)
		require.NoError(t, err)

		_, err = svc.RefreshToken(ctx, auth.RefreshTokenRequest{RefreshToken: other})
		assert.Equal(t, auth.ErrInvalidToken, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.RefreshToken(ctx, auth.RefreshTokenRequest{RefreshToken: "not.a.jwt"})
		assert.Equal(t, auth.ErrInvalidToken, err)
	})

	t.Run("revoked after logout", func(t *testing.T) {
		require.NoError(t, svc.Logout(ctx, login.RefreshToken))

		_, err := svc.RefreshToken(ctx, auth.RefreshTokenRequest{RefreshToken: login.RefreshToken})
		assert.Equal(t, auth.ErrRefreshTokenRevoked, err)
	})
}

func TestAuthService_Logout_UnknownToken(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	assert.NoError(t, svc.Logout(context.Background(), "never-issued"))
}

func TestAuthService_Me(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	me, err := svc.Me(context.Background(), testUserID)
	require.NoError(t, err)
	assert.Equal(t, user.RoleAdmin, me.Role)

	_, err = svc.Me(context.Background(), "missing")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}
