package repository

import "github.com/jose-aranguiz/inventario-pyme/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	// Create persiste el producto y asigna su ID. Devuelve
	// domain.ErrDuplicateSKU si el SKU ya existe en otra fila.
	Create(product *entity.Product) error
	// GetByID devuelve nil, nil si el producto no existe.
	GetByID(id int64) (*entity.Product, error)
	// GetBySKU devuelve nil, nil si ningún producto tiene ese SKU.
	GetBySKU(sku string) (*entity.Product, error)
	// GetForUpdate obtiene el producto bloqueando su fila dentro de la
	// transacción en curso (SELECT ... FOR UPDATE). nil, nil si no existe.
	GetForUpdate(id int64) (*entity.Product, error)
	Update(product *entity.Product) error
	// UpdateStock actualiza solo el contador de stock (usado por el
	// motor de movimientos dentro de su transacción).
	UpdateStock(id int64, stock int) error
	List(limit, offset int) ([]*entity.Product, error)
	// ListLowStock lista productos con CurrentStock <= ReorderThreshold.
	ListLowStock(limit, offset int) ([]*entity.Product, error)
	// Delete devuelve domain.ErrNotFound si el id no existe. No toca el
	// ledger: los movimientos del producto borrado quedan huérfanos.
	Delete(id int64) error
}
