package inventory

import (
	"context"
	"time"

	"github.com/jose-aranguiz/inventario-pyme/internal/application/dto"
	"github.com/jose-aranguiz/inventario-pyme/internal/application/usecase"
	"github.com/jose-aranguiz/inventario-pyme/internal/domain"
	"github.com/jose-aranguiz/inventario-pyme/internal/domain/entity"
	"github.com/jose-aranguiz/inventario-pyme/internal/domain/repository"
)

// RegisterMovementUseCase registra movimientos de stock de forma
// transaccional (INCOMING/OUTGOING) con bloqueo de fila
// (SELECT FOR UPDATE) y Commit/Rollback.
type RegisterMovementUseCase struct {
	txRunner TxRunner
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(txRunner TxRunner) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{txRunner: txRunner}
}

// RegisterMovement inicia una transacción, bloquea la fila del producto,
// valida contra el stock actual, aplica la suma o resta y agrega la
// entrada al ledger; Commit si todo ok, Rollback si algo falla.
// Dos salidas concurrentes sobre el mismo producto se serializan en el
// lock: la segunda ve el stock ya decrementado y no puede dejarlo negativo.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, in dto.RegisterMovementRequest) (*dto.MovementResponse, error) {
	if !entity.ValidMovementKind(in.Kind) {
		return nil, domain.ErrInvalidMovementType
	}
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	var out *dto.MovementResponse
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		product, err := productRepo.GetForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		switch in.Kind {
		case entity.MovementKindIncoming:
			product.CurrentStock += in.Quantity
		case entity.MovementKindOutgoing:
			if in.Quantity > product.CurrentStock {
				return domain.ErrInsufficientStock
			}
			product.CurrentStock -= in.Quantity
		default:
			return domain.ErrInvalidMovementType
		}

		if err := productRepo.UpdateStock(product.ID, product.CurrentStock); err != nil {
			return err
		}
		movement := &entity.StockMovement{
			ProductID: product.ID,
			Kind:      in.Kind,
			Quantity:  in.Quantity,
			Reason:    in.Reason,
			Timestamp: time.Now(),
		}
		if err := movRepo.Create(movement); err != nil {
			return err
		}
		out = toMovementResponse(movement, product)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func toMovementResponse(m *entity.StockMovement, p *entity.Product) *dto.MovementResponse {
	return &dto.MovementResponse{
		ID:        m.ID,
		ProductID: m.ProductID,
		Kind:      m.Kind,
		Quantity:  m.Quantity,
		Reason:    m.Reason,
		Timestamp: m.Timestamp,
		Product:   usecase.ToProductResponse(p),
	}
}
