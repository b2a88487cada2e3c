package events

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"eventdeck/internal/api"
	"eventdeck/internal/database"
	"eventdeck/internal/mail"
	"eventdeck/internal/middleware"
	"eventdeck/internal/service"
	"eventdeck/internal/store"
	"eventdeck/internal/worker"

	"github.com/labstack/echo/v4"
)

// mailTimeout caps how long a queued confirmation send may take once a
// worker picks it up.
const mailTimeout = 30 * time.Second

var getUserByID = store.GetUserByID

// @Summary     Confirm payment for an event
// @Description Verifies the caller's rsvp and queues a confirmation email
// @Tags        events
// @Accept      json
// @Produce     json
// @Param       request body api.PayRequest true "payment payload"
// @Success     202 "Accepted"
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /pay [post]
func PayHandler(db database.DB, mailer mail.Mailer, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := c.Get(middleware.ContextUserKey).(*service.CustomClaims)

		var req api.PayRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		ctx := c.Request().Context()
		r, err := getRSVP(ctx, db, claims.ID, req.EventID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "no RSVP for this event"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to load RSVP"})
		}

		ev, err := getEventByID(ctx, db, req.EventID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to load event"})
		}
		user, err := getUserByID(ctx, db, claims.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to load user"})
		}

		// The send runs off the request path; SMTP failures are logged,
		// never surfaced to the payer.
		logger := c.Logger()
		to, title, ticketID := user.Email, ev.Title, r.TicketID
		price := ev.Price
		wp.Submit(func() {
			ctx, cancel := context.WithTimeout(context.Background(), mailTimeout)
			defer cancel()
			body := fmt.Sprintf(
				"Your payment of %.2f for %q was received.\nTicket: %s\nShow the QR code from your account at the door.",
				price, title, ticketID,
			)
			if err := mailer.Send(ctx, to, "Payment confirmed: "+title, body); err != nil {
				logger.Errorf("confirmation mail to %s: %v", to, err)
			}
		})

		return c.NoContent(http.StatusAccepted)
	}
}
