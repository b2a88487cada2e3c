package users

import (
	"net/http"

	"eventdeck/internal/api"
	"eventdeck/internal/database"
	"eventdeck/internal/middleware"
	"eventdeck/internal/service"
	"eventdeck/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	getUserByID     = store.GetUserByID
	listRSVPsByUser = store.ListRSVPsByUser
)

// @Summary     Current user
// @Description Returns the account behind the bearer token
// @Tags        users
// @Produce     json
// @Success     200 {object} api.UserResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /user [get]
func GetMeHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := c.Get(middleware.ContextUserKey).(*service.CustomClaims)
		if !ok || claims.ID == 0 {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}
		user, err := getUserByID(c.Request().Context(), db, claims.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to load user"})
		}
		return c.JSON(http.StatusOK, api.UserResponse{
			ID:        user.ID,
			Name:      user.Name,
			Email:     user.Email,
			CreatedAt: user.CreatedAt,
		})
	}
}

// @Summary     Current user's RSVPs
// @Description Lists the caller's rsvps joined with their events
// @Tags        users
// @Produce     json
// @Success     200 {array} model.UserRSVP
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /rsvps [get]
func ListMyRSVPsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := c.Get(middleware.ContextUserKey).(*service.CustomClaims)
		if !ok || claims.ID == 0 {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}
		rsvps, err := listRSVPsByUser(c.Request().Context(), db, claims.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to list RSVPs"})
		}
		return c.JSON(http.StatusOK, rsvps)
	}
}
