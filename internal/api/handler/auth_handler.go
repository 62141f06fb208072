package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/yamato-seiki/schedule-api/internal/core/domain"
	"github.com/yamato-seiki/schedule-api/internal/core/ports"
)

// AuthHandler handles registration, login and user selection lists.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerRequest struct {
	Username   string `json:"username" validate:"required,max=150"`
	Password   string `json:"password" validate:"required,min=8"`
	Email      string `json:"email,omitempty" validate:"omitempty,email"`
	FirstName  string `json:"first_name,omitempty"`
	LastName   string `json:"last_name,omitempty"`
	Department string `json:"department,omitempty" validate:"max=100"`
	Phone      string `json:"phone,omitempty" validate:"max=20"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token string       `json:"token,omitempty"`
	User  *domain.User `json:"user,omitempty"`
}

type userOption struct {
	ID          string `json:"id"`
	UserNo      int    `json:"user_no"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Department  string `json:"department,omitempty"`
}

// Register creates a new account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Account details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	user, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Username:   req.Username,
		Password:   req.Password,
		Email:      req.Email,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Department: req.Department,
		Phone:      req.Phone,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, authResponse{User: user})
}

// Login authenticates a user and returns a JWT.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Do not leak which usernames exist.
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
		}
		return err
	}

	return c.JSON(http.StatusOK, authResponse{Token: token, User: user})
}

// AssignableUsers lists who the caller may assign a project to.
//
// @Summary      List assignable users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   userOption
// @Failure      403  {object}  map[string]string
// @Router       /v1/users/assignable [get]
func (h *AuthHandler) AssignableUsers(c echo.Context) error {
	viewer, err := ViewerFrom(c)
	if err != nil {
		return err
	}

	users, err := h.authService.AssignableUsers(c.Request().Context(), viewer)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserOptions(users))
}

func toUserOptions(users []*domain.User) []userOption {
	options := make([]userOption, 0, len(users))
	for _, u := range users {
		options = append(options, userOption{
			ID:          u.ID,
			UserNo:      u.UserNo,
			Username:    u.Username,
			DisplayName: u.DisplayName(),
			Department:  u.Department,
		})
	}
	return options
}
