package inventory

import (
	"github.com/jose-aranguiz/inventario-pyme/internal/application/dto"
	"github.com/jose-aranguiz/inventario-pyme/internal/application/usecase"
	"github.com/jose-aranguiz/inventario-pyme/internal/domain"
	"github.com/jose-aranguiz/inventario-pyme/internal/domain/entity"
	"github.com/jose-aranguiz/inventario-pyme/internal/domain/repository"
)

// LedgerUseCase consultas de solo lectura sobre el ledger de movimientos.
type LedgerUseCase struct {
	movRepo     repository.StockMovementRepository
	productRepo repository.ProductRepository
}

// NewLedgerUseCase construye el caso de uso de consulta.
func NewLedgerUseCase(movRepo repository.StockMovementRepository, productRepo repository.ProductRepository) *LedgerUseCase {
	return &LedgerUseCase{movRepo: movRepo, productRepo: productRepo}
}

// List devuelve los movimientos más recientes primero, cada uno con el
// snapshot actual de su producto (null si fue borrado).
func (uc *LedgerUseCase) List(limit, offset int) ([]dto.MovementResponse, error) {
	list, err := uc.movRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	return toMovementResponses(list), nil
}

// GetByID devuelve un movimiento por ID. nil, nil si no existe.
func (uc *LedgerUseCase) GetByID(id int64) (*dto.MovementResponse, error) {
	m, err := uc.movRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, nil
	}
	return toMovementResponse(m, m.Product), nil
}

// ListByProduct devuelve el ledger de un producto, más recientes primero.
// Falla con ErrNotFound si el producto no existe.
func (uc *LedgerUseCase) ListByProduct(productID int64, limit, offset int) ([]dto.MovementResponse, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.movRepo.ListByProduct(productID, limit, offset)
	if err != nil {
		return nil, err
	}
	return toMovementResponses(list), nil
}

func toMovementResponses(list []*entity.StockMovement) []dto.MovementResponse {
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, dto.MovementResponse{
			ID:        m.ID,
			ProductID: m.ProductID,
			Kind:      m.Kind,
			Quantity:  m.Quantity,
			Reason:    m.Reason,
			Timestamp: m.Timestamp,
			Product:   usecase.ToProductResponse(m.Product),
		})
	}
	return items
}
