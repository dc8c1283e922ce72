// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"cabradar/config"
	deliverycontext "cabradar/internal/delivery/context"
	domainerrors "cabradar/internal/domain/errors"
	"cabradar/internal/domain/repository"
	"cabradar/internal/domain/service"
	"cabradar/internal/errors"
	"cabradar/internal/usecase"

	"go.uber.org/fx"
)

const fallbackDisplayName = "User"

// authService implements the AuthUsecase interface.
type authService struct {
	store       service.CredentialStore
	hasher      service.PasswordHasher
	tokens      service.TokenService
	defaultName string
	now         func() time.Time
	logger      *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	Store        service.CredentialStore
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	defaultName := fallbackDisplayName
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.DefaultName != "" {
		defaultName = params.Config.Auth.DefaultName
	}

	return &authService{
		store:       params.Store,
		hasher:      params.Hasher,
		tokens:      params.TokenService,
		defaultName: defaultName,
		now:         time.Now,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a credential record and signs a token for it.
func (srv *authService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.AuthOutput, error) {
	if input.Email == "" || input.Password == "" {
		return nil, domainerrors.ErrMissingFields
	}

	name := srv.defaultName
	if input.Name != nil {
		name = *input.Name
	}

	user, err := srv.store.Register(ctx, input.Email, input.Password, name)
	if errors.Is(err, repository.ErrUserAlreadyExists) {
		srv.log(ctx).Info("Registration rejected, email taken", slog.String("email", input.Email))

		return nil, domainerrors.ErrUserAlreadyExists
	}
	if err != nil {
		srv.log(ctx).Error("Failed to register user", slog.String("email", input.Email), slog.Any("error", err))

		return nil, domainerrors.ErrInternal
	}

	output, err := srv.issue(ctx, user.Email, user.Name)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("User registered", slog.String("email", user.Email))

	return output, nil
}

// Login checks the password against the stored digest. An unknown email and a
// wrong password both yield ErrInvalidCredentials.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	if input.Email == "" || input.Password == "" {
		return nil, domainerrors.ErrMissingFields
	}

	user, err := srv.store.Find(ctx, input.Email)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Debug("Login failed", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		srv.log(ctx).Error("Failed to look up credentials", slog.String("email", input.Email), slog.Any("error", err))

		return nil, domainerrors.ErrInternal
	}

	if !srv.hasher.Check(input.Password, user.PasswordDigest) {
		srv.log(ctx).Debug("Login failed", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials
	}

	return srv.issue(ctx, user.Email, user.Name)
}

// VerifyToken validates the token without consulting the credential store, so
// a token stays valid until it expires.
func (srv *authService) VerifyToken(ctx context.Context, authorization string) (*usecase.VerifyOutput, error) {
	claims, err := srv.tokens.Verify(authorization, srv.now())
	if err != nil {
		srv.log(ctx).Debug("Token rejected", slog.Any("error", err))

		return nil, err
	}

	return &usecase.VerifyOutput{
		User: usecase.UserView{Email: claims.Email, Name: claims.Name},
	}, nil
}

func (srv *authService) issue(ctx context.Context, email, name string) (*usecase.AuthOutput, error) {
	token, _, err := srv.tokens.Issue(email, name, srv.now())
	if err != nil {
		srv.log(ctx).Error("Failed to issue token", slog.String("email", email), slog.Any("error", err))

		return nil, domainerrors.ErrInternal
	}

	return &usecase.AuthOutput{
		Token: token,
		User:  usecase.UserView{Email: email, Name: name},
	}, nil
}
