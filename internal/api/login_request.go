package api

// swagger:model api.LoginRequest
type LoginRequest struct {
	Name     string `json:"name" form:"name" validate:"required" example:"alice"`
	Password string `json:"password" form:"password" validate:"required" example:"Secret123!"`
}
