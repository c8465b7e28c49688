package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/smartfin/smartfin/internal/auth"
	"github.com/smartfin/smartfin/internal/middleware"
	"github.com/smartfin/smartfin/internal/models"
	"github.com/smartfin/smartfin/internal/storage"
)

// AuthHandler serves registration, login, and profile routes.
type AuthHandler struct {
	authenticator auth.Authenticator
	jwtManager    *auth.JWTManager
	store         storage.Store
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(authenticator auth.Authenticator, jwtManager *auth.JWTManager, store storage.Store) *AuthHandler {
	return &AuthHandler{authenticator: authenticator, jwtManager: jwtManager, store: store}
}

type authResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// Register creates a new account and returns a session token.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Email == "" || req.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name and email are required")
	}

	user, err := h.authenticator.Register(c.Request().Context(), req.Email, req.Name, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrEmailExists):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		case errors.Is(err, auth.ErrWeakPassword):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return httpError(err)
	}

	token, err := h.jwtManager.Generate(user)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, authResponse{User: user, Token: token})
}

// Login authenticates a user and returns a session token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Email == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email and password are required")
	}

	user, err := h.authenticator.Authenticate(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, auth.ErrInvalidCredentials.Error())
	}

	token, err := h.jwtManager.Generate(user)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, authResponse{User: user, Token: token})
}

// Me returns the authenticated user's profile.
func (h *AuthHandler) Me(c echo.Context) error {
	user, err := h.store.GetUserByID(c.Request().Context(), middleware.GetUserID(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateProfile updates the authenticated user's display fields.
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	var req profileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}

	ctx := c.Request().Context()
	user, err := h.store.GetUserByID(ctx, middleware.GetUserID(c))
	if err != nil {
		return httpError(err)
	}

	user.Name = req.Name
	user.Phone = req.Phone
	user.Avatar = req.Avatar
	if err := h.store.UpdateUser(ctx, user); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, user)
}
