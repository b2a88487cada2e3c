package events

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"eventdeck/internal/api"
	"eventdeck/internal/cache"
	"eventdeck/internal/database"
	"eventdeck/internal/middleware"
	"eventdeck/internal/model"
	"eventdeck/internal/service"
	"eventdeck/internal/store"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// listCacheTTL bounds staleness of the public listing between mutations.
const listCacheTTL = 30 * time.Second

var (
	listEvents   = store.ListEvents
	getEventByID = store.GetEventByID
	createRSVP   = store.CreateRSVP
	getRSVP      = store.GetRSVP
	ticketPNG    = service.TicketPNG
	newTicketID  = uuid.NewString
)

// @Summary     List events
// @Description Returns all events, newest start first served from cache when warm
// @Tags        events
// @Produce     json
// @Success     200 {array} api.EventResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /events [get]
func ListEventsHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		if cached, err := rdb.Get(ctx, cache.EventsKey).Result(); err == nil {
			return c.JSONBlob(http.StatusOK, []byte(cached))
		} else if !errors.Is(err, redis.Nil) {
			// Redis being down degrades to a DB read, not an error.
			c.Logger().Warnf("events cache read: %v", err)
		}

		evs, err := listEvents(ctx, db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to list events"})
		}

		out := make([]api.EventResponse, 0, len(evs))
		for _, ev := range evs {
			out = append(out, api.EventResponse{
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

		if buf, err := json.Marshal(out); err == nil {
			rdb.Set(ctx, cache.EventsKey, buf, listCacheTTL)
		}
		return c.JSON(http.StatusOK, out)
	}
}

// @Summary     RSVP to an event
// @Description Creates the caller's rsvp and increments the event counter
// @Tags        events
// @Produce     json
// @Param       eventId path int true "event ID"
// @Success     201 {object} api.RSVPResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /events/{eventId}/rsvp [post]
func RSVPHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := c.Get(middleware.ContextUserKey).(*service.CustomClaims)

		eventID, err := strconv.Atoi(c.Param("eventId"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid event ID"})
		}

		r, err := createRSVP(c.Request().Context(), db, &model.RSVP{
			UserID:   claims.ID,
			EventID:  eventID,
			TicketID: newTicketID(),
		})
		if err != nil {
			switch {
			case errors.Is(err, store.ErrDuplicate):
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "already RSVP'd to this event"})
			case errors.Is(err, store.ErrNotFound):
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "event not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to RSVP"})
		}

		rdb.Del(c.Request().Context(), cache.EventsKey)

		return c.JSON(http.StatusCreated, api.RSVPResponse{
			EventID:   r.EventID,
			TicketID:  r.TicketID,
			CreatedAt: r.CreatedAt,
		})
	}
}

// @Summary     Ticket QR code
// @Description Returns a PNG QR code for the caller's ticket to the event
// @Tags        events
// @Produce     png
// @Param       eventId path int true "event ID"
// @Success     200 {file} binary
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /events/{eventId}/qrcode [get]
func TicketQRHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := c.Get(middleware.ContextUserKey).(*service.CustomClaims)

		eventID, err := strconv.Atoi(c.Param("eventId"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid event ID"})
		}

		r, err := getRSVP(c.Request().Context(), db, claims.ID, eventID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "no RSVP for this event"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to load RSVP"})
		}

		png, err := ticketPNG(r)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to render ticket"})
		}
		return c.Blob(http.StatusOK, "image/png", png)
	}
}
