package models

type Service struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Duration int     `json:"duration"` // minutes
	IsActive bool    `json:"isActive"`
}
