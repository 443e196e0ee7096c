package domain

import "time"

type Product struct {
	ID        string
	Name      string
	Balance   int
	CreatedAt time.Time
	UpdatedAt time.Time
}
