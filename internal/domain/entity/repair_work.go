package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// RepairWork representa un servicio de reparación del catálogo (nombre + precio).
// El precio nunca es negativo.
type RepairWork struct {
	ID        string
	Name      string
	Price     decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}
