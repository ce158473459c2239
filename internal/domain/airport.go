package domain

type Airport struct {
	ID   string `json:"id" validate:"required"`
	Name string `json:"name"`
	City string `json:"city"`
}
