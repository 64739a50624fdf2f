package dto

import "time"

// CreateStoreRequest body para POST /api/stores.
type CreateStoreRequest struct {
	Name      string `json:"name"`
	OwnerName string `json:"ownerName"`
	Mobile    string `json:"mobile"`
	Address   string `json:"address"`
}

// UpdateStoreRequest body para PUT /api/stores/:id. Los campos ausentes se
// conservan (merge).
type UpdateStoreRequest struct {
	Name      *string `json:"name"`
	OwnerName *string `json:"ownerName"`
	Mobile    *string `json:"mobile"`
	Address   *string `json:"address"`
}

// StoreResponse sucursal en respuestas.
type StoreResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	OwnerName string    `json:"ownerName"`
	Mobile    string    `json:"mobile"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
