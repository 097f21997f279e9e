package entity

import "time"

// Tipos de movimiento de stock (enumeración cerrada).
const (
	MovementKindIncoming = "INCOMING" // entrada
	MovementKindOutgoing = "OUTGOING" // salida
)

// ValidMovementKind reporta si kind pertenece a la enumeración cerrada.
func ValidMovementKind(kind string) bool {
	return kind == MovementKindIncoming || kind == MovementKindOutgoing
}

// StockMovement es una entrada inmutable del ledger de movimientos.
// Solo se crea vía el motor de movimientos; nunca se actualiza ni borra.
type StockMovement struct {
	ID        int64
	ProductID int64
	Kind      string // INCOMING u OUTGOING
	Quantity  int    // siempre positivo
	Reason    *string
	Timestamp time.Time // asignado por el servidor al crear

	// Product es el snapshot del producto asociado al momento de la
	// lectura (no al del movimiento); nil si el producto fue borrado.
	Product *Product
}
