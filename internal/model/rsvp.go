package model

import "time"

// RSVP records a user's confirmed intent to attend an event. TicketID is the
// value encoded into the QR ticket.
type RSVP struct {
	ID        int       `db:"id" json:"id"`
	UserID    int       `db:"user_id" json:"user_id"`
	EventID   int       `db:"event_id" json:"event_id"`
	TicketID  string    `db:"ticket_id" json:"ticket_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// UserRSVP is the read shape for GET /api/rsvps: the rsvp joined with the
// event it belongs to.
type UserRSVP struct {
	EventID  int       `db:"event_id" json:"event_id"`
	Title    string    `db:"title" json:"title"`
	StartsAt time.Time `db:"starts_at" json:"starts_at"`
	TicketID string    `db:"ticket_id" json:"ticket_id"`
}
