package dto

import "github.com/shopspring/decimal"

// CreateProductRequest entrada para crear un producto. El mismo cuerpo
// se usa en PUT (reemplazo completo de los campos mutables).
// CurrentStock solo aplica al crear; después únicamente lo mutan los
// movimientos de stock.
type CreateProductRequest struct {
	Name             string          `json:"name" validate:"required,min=1,max=200"`
	SKU              *string         `json:"sku" validate:"omitempty,min=1,max=100"`
	CostPrice        decimal.Decimal `json:"cost_price"`
	SalePrice        decimal.Decimal `json:"sale_price"`
	CurrentStock     *int            `json:"current_stock" validate:"omitempty,gte=0"`
	ReorderThreshold *int            `json:"reorder_threshold" validate:"omitempty,gte=0"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID               int64           `json:"id"`
	Name             string          `json:"name"`
	SKU              *string         `json:"sku"`
	CostPrice        decimal.Decimal `json:"cost_price"`
	SalePrice        decimal.Decimal `json:"sale_price"`
	CurrentStock     int             `json:"current_stock"`
	ReorderThreshold int             `json:"reorder_threshold"`
}
