package auth

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"cabradar/config"
	"cabradar/internal/domain/entity"
	domainerrors "cabradar/internal/domain/errors"
	"cabradar/internal/domain/service"
	"cabradar/internal/errors"
)

const (
	bearerPrefix    = "Bearer "
	defaultTokenTTL = 24 * time.Hour
)

// ErrMissingSecret is returned when the service is built without a signing secret.
var ErrMissingSecret = errors.New("jwt secret must be provided")

// tokenClaims is the JWT payload: {email, name, exp, iat}.
type tokenClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

// jwtService implements TokenService with HS256-signed JWTs.
type jwtService struct {
	secret []byte
	ttl    time.Duration
	method jwt.SigningMethod
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if strings.TrimSpace(cfg.SecretKey.Access) == "" {
		return nil, ErrMissingSecret
	}

	ttl := defaultTokenTTL
	if cfg.Auth != nil && cfg.Auth.TokenTTL > 0 {
		ttl = cfg.Auth.TokenTTL
	}

	return &jwtService{
		secret: []byte(cfg.SecretKey.Access),
		ttl:    ttl,
		method: jwt.SigningMethodHS256,
	}, nil
}

// Issue creates a signed token for the given identity.
func (s *jwtService) Issue(email, name string, now time.Time) (string, *entity.TokenClaims, error) {
	expiresAt := jwt.NewNumericDate(now.Add(s.ttl))
	claims := tokenClaims{
		Email: email,
		Name:  name,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: expiresAt,
		},
	}

	signed, err := jwt.NewWithClaims(s.method, claims).SignedString(s.secret)
	if err != nil {
		return "", nil, errors.Wrap(err, "failed to sign token")
	}

	return signed, &entity.TokenClaims{
		Email:     email,
		Name:      name,
		ExpiresAt: expiresAt.Time,
	}, nil
}

// Verify checks structure, signature and expiry, in that order.
func (s *jwtService) Verify(token string, now time.Time) (*entity.TokenClaims, error) {
	if token == "" {
		return nil, domainerrors.ErrTokenMissing
	}

	tokenString := strings.TrimPrefix(token, bearerPrefix)
	if tokenString == "" {
		return nil, domainerrors.ErrTokenMalformed
	}

	claims := &tokenClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (any, error) {
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{s.method.Alg()}),
		jwt.WithExpirationRequired(),
		// Reject non-canonical base64url, where unused trailing bits could be flipped.
		jwt.WithStrictDecoding(),
		jwt.WithTimeFunc(func() time.Time { return now }),
		// A token is still valid at the exact second it expires.
		jwt.WithLeeway(time.Nanosecond),
	)
	if err != nil {
		return nil, classifyTokenError(err)
	}

	if claims.Email == "" {
		return nil, domainerrors.ErrTokenMalformed.WrapMessage("token has no email claim")
	}

	return &entity.TokenClaims{
		Email:     claims.Email,
		Name:      claims.Name,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// classifyTokenError maps jwt parse failures onto the token error taxonomy.
func classifyTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return domainerrors.ErrTokenSignatureInvalid.WrapMessage(err.Error())
	case errors.Is(err, jwt.ErrTokenExpired):
		return domainerrors.ErrTokenExpired.WrapMessage(err.Error())
	default:
		return domainerrors.ErrTokenMalformed.WrapMessage(err.Error())
	}
}
