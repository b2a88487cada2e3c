package admin

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"eventdeck/internal/api"
	"eventdeck/internal/database"
	"eventdeck/internal/model"
	"eventdeck/internal/service"
	"eventdeck/internal/store"

	"github.com/labstack/echo/v4"
)

const accessTokenTTL = 24 * time.Hour

var (
	hashPassword     = service.HashPassword
	comparePassword  = service.ComparePassword
	issueAccessToken = service.IssueAccessToken
	createAdmin      = store.CreateAdmin
	getAdminByName   = store.GetAdminByName
)

// @Summary     Register a new admin
// @Description Creates an admin account and returns it with an access token
// @Tags        admin
// @Accept      json
// @Produce     json
// @Param       request body api.RegisterRequest true "registration payload"
// @Success     201 {object} api.AuthResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /admin/register [post]
func RegisterHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		hash, err := hashPassword(req.Password)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to hash password"})
		}

		admin, err := createAdmin(c.Request().Context(), db, &model.Admin{
			Name:         req.Name,
			Email:        strings.ToLower(req.Email),
			PasswordHash: hash,
		})
		if err != nil {
			if errors.Is(err, store.ErrDuplicate) {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "username or email already registered"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to create admin"})
		}

		token, err := issueAccessToken(admin.ID, service.RoleAdmin, accessTokenTTL)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to issue token"})
		}

		return c.JSON(http.StatusCreated, api.AuthResponse{
			User: api.UserResponse{
				ID:        admin.ID,
				Name:      admin.Name,
				Email:     admin.Email,
				CreatedAt: admin.CreatedAt,
			},
			AccessToken: token,
		})
	}
}

// @Summary     Log in an admin
// @Description Verifies admin credentials and returns an access token
// @Tags        admin
// @Accept      json
// @Produce     json
// @Param       request body api.LoginRequest true "login payload"
// @Success     200 {object} api.AuthResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /admin/login [post]
func LoginHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		admin, err := getAdminByName(c.Request().Context(), db, req.Name)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid credentials"})
		}
		if err := comparePassword(admin.PasswordHash, req.Password); err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid credentials"})
		}

		token, err := issueAccessToken(admin.ID, service.RoleAdmin, accessTokenTTL)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to issue token"})
		}

		return c.JSON(http.StatusOK, api.AuthResponse{
			User: api.UserResponse{
				ID:        admin.ID,
				Name:      admin.Name,
				Email:     admin.Email,
				CreatedAt: admin.CreatedAt,
			},
			AccessToken: token,
		})
	}
}
