package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateRepairWorkRequest body para POST /api/repairWorks.
type CreateRepairWorkRequest struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// UpdateRepairWorkRequest body para PUT /api/repairWorks/:id.
type UpdateRepairWorkRequest struct {
	Name  *string          `json:"name"`
	Price *decimal.Decimal `json:"price"`
}

// RepairWorkResponse servicio del catálogo en respuestas.
type RepairWorkResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}
