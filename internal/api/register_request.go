package api

// RegisterRequest covers both user and admin registration.
// swagger:model api.RegisterRequest
type RegisterRequest struct {
	Name     string `json:"name" form:"name" validate:"required" example:"alice"`
	Email    string `json:"email" form:"email" validate:"required,email" example:"alice@example.com"`
	Password string `json:"password" form:"password" validate:"required,min=8" example:"Secret123!"`
}
