package dto

import "time"

// MovementRequest body para POST /api/movements y PUT /api/movements/:id.
// Los enums aceptan el valor almacenado o un alias corto (ej. "order", "corte").
type MovementRequest struct {
	ProductType string `json:"productType" validate:"required,product_type"`
	Size        string `json:"size" validate:"required,size"`
	Type        string `json:"type" validate:"required,movement_type"`
	Quantity    int    `json:"quantity" validate:"min=1,max=1000000"` // entity.MaxQuantity
	Notes       string `json:"notes" validate:"max=500"`
}

// MovementResponse representación de un movimiento en la API.
type MovementResponse struct {
	ID          string    `json:"id"`
	Date        time.Time `json:"date"`
	ProductType string    `json:"productType"`
	Size        string    `json:"size"`
	Type        string    `json:"type"`
	Quantity    int       `json:"quantity"`
	Notes       string    `json:"notes,omitempty"`
}

// MovementListResponse listado analítico (más reciente primero).
type MovementListResponse struct {
	Total int                `json:"total"`
	Query string             `json:"query,omitempty"`
	Items []MovementResponse `json:"items"`
}

// CatalogResponse enumeraciones para construir el formulario de captura.
type CatalogResponse struct {
	ProductTypes  []string             `json:"productTypes"`
	Sizes         []string             `json:"sizes"`
	MovementTypes []MovementTypeOption `json:"movementTypes"`
}

// MovementTypeOption tipo de movimiento con su texto de ayuda.
type MovementTypeOption struct {
	Value string `json:"value"`
	Hint  string `json:"hint"`
}
