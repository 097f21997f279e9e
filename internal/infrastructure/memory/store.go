// Package memory implementa los puertos de persistencia sobre
// estructuras en memoria. Se usa en los tests de casos de uso y
// handlers, donde un PostgreSQL real no aporta nada.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/jose-aranguiz/inventario-pyme/internal/application/inventory"
	"github.com/jose-aranguiz/inventario-pyme/internal/domain"
	"github.com/jose-aranguiz/inventario-pyme/internal/domain/entity"
	"github.com/jose-aranguiz/inventario-pyme/internal/domain/repository"
)

// Store estado compartido de productos y ledger. Como una BD, entrega
// y recibe copias: los punteros devueltos no comparten memoria con el
// estado interno.
type Store struct {
	mu             sync.Mutex
	products       map[int64]entity.Product
	movements      []entity.StockMovement
	nextProductID  int64
	nextMovementID int64
}

// NewStore construye un store vacío.
func NewStore() *Store {
	return &Store{products: make(map[int64]entity.Product)}
}

// Products devuelve el repositorio de productos sobre este store.
func (s *Store) Products() repository.ProductRepository { return &productRepo{s: s} }

// Movements devuelve el repositorio del ledger sobre este store.
func (s *Store) Movements() repository.StockMovementRepository { return &movementRepo{s: s} }

// TxRunner devuelve un runner que imita la atomicidad de una
// transacción: si fn falla, el estado vuelve al snapshot previo.
func (s *Store) TxRunner() inventory.TxRunner { return &txRunner{s: s} }

type productRepo struct {
	s *Store
}

func (r *productRepo) Create(product *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if product.SKU != nil {
		for _, p := range r.s.products {
			if p.SKU != nil && *p.SKU == *product.SKU {
				return domain.ErrDuplicateSKU
			}
		}
	}
	r.s.nextProductID++
	product.ID = r.s.nextProductID
	r.s.products[product.ID] = cloneProduct(*product)
	return nil
}

func (r *productRepo) GetByID(id int64) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	c := cloneProduct(p)
	return &c, nil
}

func (r *productRepo) GetBySKU(sku string) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.products {
		if p.SKU != nil && *p.SKU == sku {
			c := cloneProduct(p)
			return &c, nil
		}
	}
	return nil, nil
}

func (r *productRepo) GetForUpdate(id int64) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *productRepo) Update(product *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	current, ok := r.s.products[product.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if product.SKU != nil {
		for id, p := range r.s.products {
			if id != product.ID && p.SKU != nil && *p.SKU == *product.SKU {
				return domain.ErrDuplicateSKU
			}
		}
	}
	updated := cloneProduct(*product)
	updated.CurrentStock = current.CurrentStock
	r.s.products[product.ID] = updated
	return nil
}

func (r *productRepo) UpdateStock(id int64, stock int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.CurrentStock = stock
	r.s.products[id] = p
	return nil
}

func (r *productRepo) List(limit, offset int) ([]*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return page(r.sortedLocked(func(entity.Product) bool { return true }), limit, offset), nil
}

func (r *productRepo) ListLowStock(limit, offset int) ([]*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return page(r.sortedLocked(func(p entity.Product) bool {
		return p.CurrentStock <= p.ReorderThreshold
	}), limit, offset), nil
}

func (r *productRepo) Delete(id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[id]; !ok {
		return domain.ErrNotFound
	}
	// El ledger no se toca: los movimientos quedan huérfanos, como en
	// el esquema real sin constraint FK.
	delete(r.s.products, id)
	return nil
}

// sortedLocked devuelve los productos que cumplen keep en orden de
// inserción (id ascendente). Requiere el lock tomado.
func (r *productRepo) sortedLocked(keep func(entity.Product) bool) []*entity.Product {
	var list []*entity.Product
	for _, p := range r.s.products {
		if keep(p) {
			c := cloneProduct(p)
			list = append(list, &c)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list
}

type movementRepo struct {
	s *Store
}

func (r *movementRepo) Create(movement *entity.StockMovement) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.nextMovementID++
	movement.ID = r.s.nextMovementID
	c := *movement
	c.Product = nil
	r.s.movements = append(r.s.movements, c)
	return nil
}

func (r *movementRepo) GetByID(id int64) (*entity.StockMovement, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, m := range r.s.movements {
		if m.ID == id {
			c := r.withProductLocked(m)
			return &c, nil
		}
	}
	return nil, nil
}

func (r *movementRepo) List(limit, offset int) ([]*entity.StockMovement, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.listLocked(func(entity.StockMovement) bool { return true }, limit, offset), nil
}

func (r *movementRepo) ListByProduct(productID int64, limit, offset int) ([]*entity.StockMovement, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.listLocked(func(m entity.StockMovement) bool {
		return m.ProductID == productID
	}, limit, offset), nil
}

// listLocked replica el ORDER BY timestamp DESC, id DESC del adaptador
// PostgreSQL. Requiere el lock tomado.
func (r *movementRepo) listLocked(keep func(entity.StockMovement) bool, limit, offset int) []*entity.StockMovement {
	var list []*entity.StockMovement
	for _, m := range r.s.movements {
		if keep(m) {
			c := r.withProductLocked(m)
			list = append(list, &c)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		if !list[i].Timestamp.Equal(list[j].Timestamp) {
			return list[i].Timestamp.After(list[j].Timestamp)
		}
		return list[i].ID > list[j].ID
	})
	return page(list, limit, offset)
}

// withProductLocked une el snapshot actual del producto (nil si fue
// borrado), como el LEFT JOIN del adaptador PostgreSQL.
func (r *movementRepo) withProductLocked(m entity.StockMovement) entity.StockMovement {
	if p, ok := r.s.products[m.ProductID]; ok {
		c := cloneProduct(p)
		m.Product = &c
	}
	return m
}

type txRunner struct {
	s *Store
}

// Run ejecuta fn contra el store; si fn devuelve error, restaura el
// snapshot previo (ninguna escritura parcial queda visible).
func (t *txRunner) Run(_ context.Context, fn func(
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	t.s.mu.Lock()
	products := make(map[int64]entity.Product, len(t.s.products))
	for id, p := range t.s.products {
		products[id] = cloneProduct(p)
	}
	movements := append([]entity.StockMovement(nil), t.s.movements...)
	nextProductID, nextMovementID := t.s.nextProductID, t.s.nextMovementID
	t.s.mu.Unlock()

	if err := fn(&movementRepo{s: t.s}, &productRepo{s: t.s}); err != nil {
		t.s.mu.Lock()
		t.s.products = products
		t.s.movements = movements
		t.s.nextProductID, t.s.nextMovementID = nextProductID, nextMovementID
		t.s.mu.Unlock()
		return err
	}
	return nil
}

func cloneProduct(p entity.Product) entity.Product {
	if p.SKU != nil {
		sku := *p.SKU
		p.SKU = &sku
	}
	return p
}

func page[T any](list []*T, limit, offset int) []*T {
	if offset >= len(list) {
		return nil
	}
	list = list[offset:]
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list
}
