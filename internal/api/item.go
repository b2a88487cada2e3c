package api

import (
	"encoding/json"
	"time"
)

// swagger:model api.ItemRequest
type ItemRequest struct {
	Data json.RawMessage `json:"data" validate:"required"`
}

// swagger:model api.ItemResponse
type ItemResponse struct {
	ID        int             `json:"id" example:"1"`
	Data      json.RawMessage `json:"data"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
