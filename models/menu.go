package models

type MenuItem struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	CategoryID string  `json:"category"`
	ImageID    string  `json:"image,omitempty"`
}
