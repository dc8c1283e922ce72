package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"cabradar/config"
	"cabradar/internal/domain/entity"
	domainerrors "cabradar/internal/domain/errors"
	"cabradar/internal/domain/repository"
	"cabradar/internal/errors"
	"cabradar/internal/infra/auth"
	"cabradar/internal/infra/credential"
	"cabradar/internal/infra/persistence/memory"
	mockSvc "cabradar/internal/mocks/service"
	"cabradar/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func strPtr(s string) *string { return &s }

// authServiceFixtures holds the mocked collaborators of the auth service.
type authServiceFixtures struct {
	service *authService
	store   *mockSvc.MockCredentialStore
	hasher  *mockSvc.MockPasswordHasher
	tokens  *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	store := mockSvc.NewMockCredentialStore(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokens := mockSvc.NewMockTokenService(t)

	srv := NewAuthService(AuthServiceParams{
		Store:        store,
		Hasher:       hasher,
		TokenService: tokens,
		Config:       &config.Config{Auth: &config.AuthConfig{DefaultName: "User"}},
		Logger:       discardLogger(),
	}).(*authService)
	srv.now = func() time.Time { return fixedNow }

	return authServiceFixtures{service: srv, store: store, hasher: hasher, tokens: tokens}
}

// newRealAuthService wires the auth service to the in-memory store, the
// sha256 hasher and a real JWT service.
func newRealAuthService(t *testing.T) *authService {
	t.Helper()

	cfg := &config.Config{
		SecretKey: config.SecretKeyConfig{Access: "integration-test-secret"},
		Auth:      &config.AuthConfig{Hasher: config.HasherSHA256, TokenTTL: 24 * time.Hour, DefaultName: "User"},
	}
	hasher := auth.NewSHA256Hasher()
	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	store := credential.NewStore(credential.StoreParams{
		Repo:   memory.NewCredentialRepository(),
		Hasher: hasher,
		Logger: discardLogger(),
	})

	srv := NewAuthService(AuthServiceParams{
		Store:        store,
		Hasher:       hasher,
		TokenService: tokens,
		Config:       cfg,
		Logger:       discardLogger(),
	}).(*authService)
	srv.now = func() time.Time { return fixedNow }

	return srv
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.store.EXPECT().
		Register(ctx, "a@b.c", "pw", "Alice").
		Return(&entity.User{Email: "a@b.c", Name: "Alice", PasswordDigest: "digest"}, nil)
	fx.tokens.EXPECT().
		Issue("a@b.c", "Alice", fixedNow).
		Return("signed", &entity.TokenClaims{Email: "a@b.c", Name: "Alice", ExpiresAt: fixedNow.Add(24 * time.Hour)}, nil)

	out, err := fx.service.Register(ctx, usecase.RegisterInput{Email: "a@b.c", Password: "pw", Name: strPtr("Alice")})
	require.NoError(t, err)
	assert.Equal(t, "signed", out.Token)
	assert.Equal(t, usecase.UserView{Email: "a@b.c", Name: "Alice"}, out.User)
}

func TestAuthService_Register_DefaultName(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.store.EXPECT().
		Register(ctx, "a@b.c", "pw", "User").
		Return(&entity.User{Email: "a@b.c", Name: "User"}, nil)
	fx.tokens.EXPECT().
		Issue("a@b.c", "User", fixedNow).
		Return("signed", &entity.TokenClaims{}, nil)

	out, err := fx.service.Register(ctx, usecase.RegisterInput{Email: "a@b.c", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "User", out.User.Name)
}

func TestAuthService_Register_ExplicitEmptyNameIsKept(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.store.EXPECT().
		Register(ctx, "a@b.c", "pw", "").
		Return(&entity.User{Email: "a@b.c", Name: ""}, nil)
	fx.tokens.EXPECT().
		Issue("a@b.c", "", fixedNow).
		Return("signed", &entity.TokenClaims{}, nil)

	out, err := fx.service.Register(ctx, usecase.RegisterInput{Email: "a@b.c", Password: "pw", Name: strPtr("")})
	require.NoError(t, err)
	assert.Empty(t, out.User.Name)
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	tests := []struct {
		name  string
		input usecase.RegisterInput
	}{
		{name: "no email", input: usecase.RegisterInput{Password: "pw"}},
		{name: "no password", input: usecase.RegisterInput{Email: "a@b.c"}},
		{name: "nothing", input: usecase.RegisterInput{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t)

			out, err := fx.service.Register(context.Background(), tt.input)
			assert.Nil(t, out)
			assert.ErrorIs(t, err, domainerrors.ErrMissingFields)
		})
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.store.EXPECT().
		Register(ctx, "a@b.c", "pw", "User").
		Return(nil, repository.ErrUserAlreadyExists)

	out, err := fx.service.Register(ctx, usecase.RegisterInput{Email: "a@b.c", Password: "pw"})
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAuthService_Register_StoreFailure(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.store.EXPECT().
		Register(ctx, "a@b.c", "pw", "User").
		Return(nil, errors.New("disk on fire"))

	out, err := fx.service.Register(ctx, usecase.RegisterInput{Email: "a@b.c", Password: "pw"})
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrInternal)
}

func TestAuthService_Register_IssueFailure(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.store.EXPECT().
		Register(ctx, "a@b.c", "pw", "User").
		Return(&entity.User{Email: "a@b.c", Name: "User"}, nil)
	fx.tokens.EXPECT().
		Issue("a@b.c", "User", fixedNow).
		Return("", nil, errors.New("signing failed"))

	out, err := fx.service.Register(ctx, usecase.RegisterInput{Email: "a@b.c", Password: "pw"})
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrInternal)
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.store.EXPECT().
		Find(ctx, "demo@test.com").
		Return(&entity.User{Email: "demo@test.com", Name: "Demo User", PasswordDigest: "digest"}, nil)
	fx.hasher.EXPECT().Check("password123", "digest").Return(true)
	fx.tokens.EXPECT().
		Issue("demo@test.com", "Demo User", fixedNow).
		Return("signed", &entity.TokenClaims{}, nil)

	out, err := fx.service.Login(ctx, usecase.LoginInput{Email: "demo@test.com", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, "signed", out.Token)
	assert.Equal(t, usecase.UserView{Email: "demo@test.com", Name: "Demo User"}, out.User)
}

func TestAuthService_Login_UnknownEmailAndWrongPasswordLookAlike(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.store.EXPECT().Find(ctx, "ghost@test.com").Return(nil, repository.ErrUserNotFound)
	fx.store.EXPECT().
		Find(ctx, "demo@test.com").
		Return(&entity.User{Email: "demo@test.com", PasswordDigest: "digest"}, nil)
	fx.hasher.EXPECT().Check("wrong", "digest").Return(false)

	_, unknownErr := fx.service.Login(ctx, usecase.LoginInput{Email: "ghost@test.com", Password: "whatever"})
	_, wrongErr := fx.service.Login(ctx, usecase.LoginInput{Email: "demo@test.com", Password: "wrong"})

	assert.ErrorIs(t, unknownErr, domainerrors.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongErr, domainerrors.ErrInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestAuthService_Login_MissingFields(t *testing.T) {
	fx := createTestAuthService(t)

	_, err := fx.service.Login(context.Background(), usecase.LoginInput{Email: "demo@test.com"})
	assert.ErrorIs(t, err, domainerrors.ErrMissingFields)
}

func TestAuthService_Login_StoreFailure(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.store.EXPECT().Find(ctx, "demo@test.com").Return(nil, errors.New("connection reset"))

	_, err := fx.service.Login(ctx, usecase.LoginInput{Email: "demo@test.com", Password: "pw"})
	assert.ErrorIs(t, err, domainerrors.ErrInternal)
}

func TestAuthService_VerifyToken(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.tokens.EXPECT().
		Verify("Bearer good", fixedNow).
		Return(&entity.TokenClaims{Email: "demo@test.com", Name: "Demo User", ExpiresAt: fixedNow.Add(time.Hour)}, nil)
	fx.tokens.EXPECT().
		Verify("", fixedNow).
		Return(nil, domainerrors.ErrTokenMissing)

	out, err := fx.service.VerifyToken(ctx, "Bearer good")
	require.NoError(t, err)
	assert.Equal(t, usecase.UserView{Email: "demo@test.com", Name: "Demo User"}, out.User)

	out, err = fx.service.VerifyToken(ctx, "")
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrTokenMissing)
}

func TestAuthService_RoundTrip(t *testing.T) {
	srv := newRealAuthService(t)
	ctx := context.Background()

	registered, err := srv.Register(ctx, usecase.RegisterInput{Email: "rider@test.com", Password: "s3cret", Name: strPtr("Rider")})
	require.NoError(t, err)

	verified, err := srv.VerifyToken(ctx, "Bearer "+registered.Token)
	require.NoError(t, err)
	assert.Equal(t, usecase.UserView{Email: "rider@test.com", Name: "Rider"}, verified.User)

	loggedIn, err := srv.Login(ctx, usecase.LoginInput{Email: "rider@test.com", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, registered.User, loggedIn.User)

	verified, err = srv.VerifyToken(ctx, loggedIn.Token)
	require.NoError(t, err)
	assert.Equal(t, "rider@test.com", verified.User.Email)
}

func TestAuthService_DuplicateRegistrationKeepsOriginalPassword(t *testing.T) {
	srv := newRealAuthService(t)
	ctx := context.Background()

	_, err := srv.Register(ctx, usecase.RegisterInput{Email: "rider@test.com", Password: "first", Name: strPtr("First")})
	require.NoError(t, err)

	_, err = srv.Register(ctx, usecase.RegisterInput{Email: "rider@test.com", Password: "second", Name: strPtr("Second")})
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)

	out, err := srv.Login(ctx, usecase.LoginInput{Email: "rider@test.com", Password: "first"})
	require.NoError(t, err)
	assert.Equal(t, "First", out.User.Name)

	_, err = srv.Login(ctx, usecase.LoginInput{Email: "rider@test.com", Password: "second"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_TokenValidUntilExpiry(t *testing.T) {
	srv := newRealAuthService(t)
	ctx := context.Background()

	out, err := srv.Register(ctx, usecase.RegisterInput{Email: "rider@test.com", Password: "pw"})
	require.NoError(t, err)

	srv.now = func() time.Time { return fixedNow.Add(24 * time.Hour) }
	_, err = srv.VerifyToken(ctx, out.Token)
	require.NoError(t, err)

	srv.now = func() time.Time { return fixedNow.Add(24*time.Hour + time.Second) }
	_, err = srv.VerifyToken(ctx, out.Token)
	assert.ErrorIs(t, err, domainerrors.ErrTokenExpired)
}

