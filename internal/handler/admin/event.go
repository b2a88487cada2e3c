package admin

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"eventdeck/internal/api"
	"eventdeck/internal/cache"
	"eventdeck/internal/database"
	"eventdeck/internal/model"
	"eventdeck/internal/storage"
	"eventdeck/internal/store"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

var (
	createEvent = store.CreateEvent
	deleteEvent = store.DeleteEvent
	newPosterKeyID = uuid.NewString
)

// @Summary     Create an event with a poster image
// @Description Uploads the poster to object storage and inserts the event
// @Tags        admin
// @Accept      multipart/form-data
// @Produce     json
// @Param       poster      formData file   true  "poster image"
// @Param       title       formData string true  "event title"
// @Param       description formData string false "event description"
// @Param       starts_at   formData string true  "start time (RFC3339)"
// @Param       location    formData string true  "event location"
// @Param       price       formData number false "ticket price"
// @Success     201 {object} api.EventResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /admin/upload-event [post]
func UploadEventHandler(db database.DB, rdb cache.Cache, up storage.Uploader) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.UploadEventRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		startsAt, err := time.Parse(time.RFC3339, req.StartsAt)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "starts_at must be RFC3339"})
		}

		fileHeader, err := c.FormFile("poster")
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "poster file is required"})
		}
		file, err := fileHeader.Open()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to read poster"})
		}
		defer file.Close()

		contentType := fileHeader.Header.Get("Content-Type")
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		key := fmt.Sprintf("posters/%s%s", newPosterKeyID(), filepath.Ext(fileHeader.Filename))

		posterURL, err := up.Upload(c.Request().Context(), key, contentType, file)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to store poster"})
		}

		ev, err := createEvent(c.Request().Context(), db, &model.Event{
			Title:       req.Title,
			Description: req.Description,
			StartsAt:    startsAt,
			Location:    req.Location,
			PosterURL:   posterURL,
			Price:       req.Price,
		})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to create event"})
		}

		// The listing cache is now stale.
		rdb.Del(c.Request().Context(), cache.EventsKey)

		return c.JSON(http.StatusCreated, api.EventResponse{
			ID:          ev.ID,
			Title:       ev.Title,
			Description: ev.Description,
			StartsAt:    ev.StartsAt,
			Location:    ev.Location,
			PosterURL:   ev.PosterURL,
			Price:       ev.Price,
			RSVPCount:   ev.RSVPCount,
			CreatedAt:   ev.CreatedAt,
		})
	}
}

// @Summary     Delete an event
// @Description Removes the event and its rsvps
// @Tags        admin
// @Param       eventId path int true "event ID"
// @Success     204 "No Content"
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /events/{eventId} [delete]
func DeleteEventHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("eventId"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid event ID"})
		}
		if err := deleteEvent(c.Request().Context(), db, id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "event not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to delete event"})
		}
		rdb.Del(c.Request().Context(), cache.EventsKey)
		return c.NoContent(http.StatusNoContent)
	}
}
