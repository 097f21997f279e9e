package dto

import "time"

// RegisterMovementRequest body para POST /movimientos/.
// El tipo se valida en el borde: cualquier valor fuera de la
// enumeración se rechaza antes de llegar al motor.
type RegisterMovementRequest struct {
	ProductID int64   `json:"product_id" validate:"required,gt=0"`
	Kind      string  `json:"kind" validate:"required,oneof=INCOMING OUTGOING"`
	Quantity  int     `json:"quantity" validate:"required,gt=0"`
	Reason    *string `json:"reason" validate:"omitempty,max=500"`
}

// MovementResponse salida de un movimiento del ledger. Product es el
// snapshot actual del producto asociado (null si fue borrado).
type MovementResponse struct {
	ID        int64            `json:"id"`
	ProductID int64            `json:"product_id"`
	Kind      string           `json:"kind"`
	Quantity  int              `json:"quantity"`
	Reason    *string          `json:"reason"`
	Timestamp time.Time        `json:"timestamp"`
	Product   *ProductResponse `json:"product"`
}
