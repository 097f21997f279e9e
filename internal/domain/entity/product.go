package entity

import "github.com/shopspring/decimal"

// Product representa un producto del inventario de la pyme.
// CurrentStock solo lo muta el motor de movimientos (aparte del stock
// inicial opcional al crear); ReorderThreshold es informativo (alerta
// de bajo stock), ninguna operación lo impone.
type Product struct {
	ID               int64
	Name             string
	SKU              *string // opcional, único cuando no es nil
	CostPrice        decimal.Decimal
	SalePrice        decimal.Decimal
	CurrentStock     int
	ReorderThreshold int // por defecto 5
}

// LowStock indica si el producto está en o por debajo de su umbral de reposición.
func (p *Product) LowStock() bool {
	return p.CurrentStock <= p.ReorderThreshold
}
