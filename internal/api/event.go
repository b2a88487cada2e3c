package api

import "time"

// UploadEventRequest is the metadata part of the multipart upload; the
// poster file arrives as the "poster" form file.
// swagger:model api.UploadEventRequest
type UploadEventRequest struct {
	Title       string  `json:"title" form:"title" validate:"required" example:"GopherCon"`
	Description string  `json:"description" form:"description" example:"Annual Go conference"`
	StartsAt    string  `json:"starts_at" form:"starts_at" validate:"required" example:"2026-09-12T18:00:00Z"`
	Location    string  `json:"location" form:"location" validate:"required" example:"Berlin"`
	Price       float64 `json:"price" form:"price" validate:"gte=0" example:"25.50"`
}

// swagger:model api.EventResponse
type EventResponse struct {
	ID          int       `json:"id" example:"1"`
	Title       string    `json:"title" example:"GopherCon"`
	Description string    `json:"description" example:"Annual Go conference"`
	StartsAt    time.Time `json:"starts_at"`
	Location    string    `json:"location" example:"Berlin"`
	PosterURL   string    `json:"poster_url" example:"https://cdn.example.com/posters/abc.png"`
	Price       float64   `json:"price" example:"25.50"`
	RSVPCount   int       `json:"rsvp_count" example:"42"`
	CreatedAt   time.Time `json:"created_at"`
}

// swagger:model api.RSVPResponse
type RSVPResponse struct {
	EventID   int       `json:"event_id" example:"1"`
	TicketID  string    `json:"ticket_id" example:"7a9c2f1e-7c3d-4e61-9f2a-df54c1b30a11"`
	CreatedAt time.Time `json:"created_at"`
}

// swagger:model api.PayRequest
type PayRequest struct {
	EventID int `json:"event_id" form:"event_id" validate:"required,gt=0" example:"1"`
}
