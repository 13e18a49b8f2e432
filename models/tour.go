package models

import "time"

// Tour representa um passeio disponível para reserva.
type Tour struct {
	ID        int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	Name      string     `gorm:"not null;unique" json:"name" form:"name"`
	Rating    float64    `gorm:"default:0" json:"rating" form:"rating"`
	Price     float64    `json:"price" form:"price"`
	CreatedAt *time.Time `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

func (tour Tour) MissingFields() string {
	if tour.Name == "" {
		return "name"
	}
	return ""
}
