package entity

import "time"

// Shop tienda cliente a la que se vende mercancía.
type Shop struct {
	ID            string
	Name          string
	Address       string
	City          string
	District      string
	ContactNumber string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
