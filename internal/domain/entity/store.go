package entity

import "time"

// Store representa una sucursal de la cadena de sastrerías.
type Store struct {
	ID        string
	Name      string
	OwnerName string
	Mobile    string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
