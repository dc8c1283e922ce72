// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import "context"

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Name     *string `json:"name"` // Optional; the configured default name applies when nil.
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// --- Output DTOs ---

// UserView is the public part of a user record.
type UserView struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// AuthOutput is returned by a successful register or login.
type AuthOutput struct {
	Token string   `json:"token"`
	User  UserView `json:"user"`
}

// VerifyOutput is returned for a valid token. The expiry is not exposed.
type VerifyOutput struct {
	User UserView `json:"user"`
}

// AuthUsecase defines the register, login and token verification operations.
// This is the contract that the delivery layer depends on.
type AuthUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input LoginInput) (*AuthOutput, error)
	// VerifyToken accepts the raw Authorization header value.
	VerifyToken(ctx context.Context, authorization string) (*VerifyOutput, error)
}
