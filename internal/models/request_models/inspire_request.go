package request_models

type InspireRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}
