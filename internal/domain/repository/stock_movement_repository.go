package repository

import "github.com/jose-aranguiz/inventario-pyme/internal/domain/entity"

// StockMovementRepository define el puerto de persistencia del ledger (DIP).
// El ledger es append-only: no hay Update ni Delete.
type StockMovementRepository interface {
	// Create persiste el movimiento y asigna su ID.
	Create(movement *entity.StockMovement) error
	// GetByID devuelve el movimiento con su producto unido; nil, nil si no existe.
	GetByID(id int64) (*entity.StockMovement, error)
	// List devuelve movimientos ordenados por timestamp descendente,
	// cada uno con su producto unido (nil si fue borrado).
	List(limit, offset int) ([]*entity.StockMovement, error)
	// ListByProduct lista los movimientos de un producto, timestamp descendente.
	ListByProduct(productID int64, limit, offset int) ([]*entity.StockMovement, error)
}
