// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"

	"cabradar/internal/delivery/http/response"
	domainerrors "cabradar/internal/domain/errors"
	"cabradar/internal/errors"
	"cabradar/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RegisterRequest is the body of POST /register.
type RegisterRequest struct {
	Email    string  `json:"email" validate:"required"`
	Password string  `json:"password" validate:"required"`
	Name     *string `json:"name"`
}

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler serves register, login and verify.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// Register handles POST /register.
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.authUC.Register(c.Request().Context(), usecase.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, output)
}

// Login handles POST /login.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.authUC.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, output)
}

// Verify handles GET /verify. The token comes from the Authorization header,
// with or without the Bearer prefix.
func (h *AuthHandler) Verify(c echo.Context) error {
	output, err := h.authUC.VerifyToken(c.Request().Context(), c.Request().Header.Get(echo.HeaderAuthorization))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, output)
}

// bindAndValidate maps unparseable bodies to ErrInvalidRequest and missing
// required fields to ErrMissingFields.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrInvalidRequest.WrapMessage(err.Error())
	}

	if err := c.Validate(req); err != nil {
		return domainerrors.ErrMissingFields.WrapMessage(err.Error())
	}

	return nil
}
