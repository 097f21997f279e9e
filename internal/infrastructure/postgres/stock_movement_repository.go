package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/jose-aranguiz/inventario-pyme/internal/domain/entity"
	"github.com/jose-aranguiz/inventario-pyme/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementación del ledger sobre PostgreSQL (usable con pool o tx).
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create persiste un movimiento y asigna el ID de la secuencia.
// El ledger es append-only: no existen Update ni Delete.
func (r *StockMovementRepo) Create(movement *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (product_id, kind, quantity, reason, timestamp)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		movement.ProductID, movement.Kind, movement.Quantity, movement.Reason, movement.Timestamp,
	).Scan(&movement.ID)
	if err != nil {
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

// LEFT JOIN: los movimientos huérfanos (producto borrado) se devuelven
// con producto nulo en vez de desaparecer del ledger.
const movementSelect = `
	SELECT m.id, m.product_id, m.kind, m.quantity, m.reason, m.timestamp,
	       p.id, p.name, p.sku, p.cost_price, p.sale_price, p.current_stock, p.reorder_threshold
	FROM stock_movements m
	LEFT JOIN products p ON p.id = m.product_id`

// GetByID obtiene un movimiento con su producto unido. nil, nil si no existe.
func (r *StockMovementRepo) GetByID(id int64) (*entity.StockMovement, error) {
	row := r.q.QueryRow(context.Background(), movementSelect+` WHERE m.id = $1`, id)
	m, err := scanMovement(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return m, nil
}

// List devuelve movimientos ordenados por timestamp descendente (más
// recientes primero), con el snapshot actual del producto unido.
func (r *StockMovementRepo) List(limit, offset int) ([]*entity.StockMovement, error) {
	query := movementSelect + ` ORDER BY m.timestamp DESC, m.id DESC LIMIT $1 OFFSET $2`
	return r.list(query, "list movements", limit, offset)
}

// ListByProduct lista los movimientos de un producto, timestamp descendente.
func (r *StockMovementRepo) ListByProduct(productID int64, limit, offset int) ([]*entity.StockMovement, error) {
	query := movementSelect + ` WHERE m.product_id = $1 ORDER BY m.timestamp DESC, m.id DESC LIMIT $2 OFFSET $3`
	return r.list(query, "list movements by product", productID, limit, offset)
}

func (r *StockMovementRepo) list(query, op string, args ...any) ([]*entity.StockMovement, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

func scanMovement(row pgx.Row) (*entity.StockMovement, error) {
	var m entity.StockMovement
	var (
		pID        *int64
		pName      *string
		pSKU       *string
		pCost      *decimal.Decimal
		pSale      *decimal.Decimal
		pStock     *int
		pThreshold *int
	)
	err := row.Scan(&m.ID, &m.ProductID, &m.Kind, &m.Quantity, &m.Reason, &m.Timestamp,
		&pID, &pName, &pSKU, &pCost, &pSale, &pStock, &pThreshold)
	if err != nil {
		return nil, err
	}
	if pID != nil {
		m.Product = &entity.Product{
			ID:               *pID,
			Name:             *pName,
			SKU:              pSKU,
			CostPrice:        *pCost,
			SalePrice:        *pSale,
			CurrentStock:     *pStock,
			ReorderThreshold: *pThreshold,
		}
	}
	return &m, nil
}
