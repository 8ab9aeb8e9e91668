package domain

type SuccessResponse struct {
	Success bool `json:"success"`
}
