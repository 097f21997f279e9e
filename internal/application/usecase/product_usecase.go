package usecase

import (
	"github.com/jose-aranguiz/inventario-pyme/internal/application/dto"
	"github.com/jose-aranguiz/inventario-pyme/internal/domain"
	"github.com/jose-aranguiz/inventario-pyme/internal/domain/entity"
	"github.com/jose-aranguiz/inventario-pyme/internal/domain/repository"
)

// DefaultReorderThreshold umbral de reposición por defecto (alerta si
// el stock baja de 5 unidades).
const DefaultReorderThreshold = 5

// ProductUseCase casos de uso CRUD para productos. CurrentStock se
// maneja vía movimientos (salvo el stock inicial opcional al crear).
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un producto nuevo. SKU nulo nunca entra en conflicto;
// SKU presente debe ser único entre todos los productos.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.CostPrice.IsNegative() || in.SalePrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.SKU != nil {
		existing, err := uc.repo.GetBySKU(*in.SKU)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicateSKU
		}
	}
	product := &entity.Product{
		Name:             in.Name,
		SKU:              in.SKU,
		CostPrice:        in.CostPrice,
		SalePrice:        in.SalePrice,
		CurrentStock:     0,
		ReorderThreshold: DefaultReorderThreshold,
	}
	if in.CurrentStock != nil {
		product.CurrentStock = *in.CurrentStock
	}
	if in.ReorderThreshold != nil {
		product.ReorderThreshold = *in.ReorderThreshold
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return ToProductResponse(product), nil
}

// GetByID obtiene un producto por ID. nil, nil si no existe.
func (uc *ProductUseCase) GetByID(id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return ToProductResponse(product), nil
}

// Update reemplaza los campos mutables del producto. No toca
// CurrentStock (se maneja vía movimientos). Si el SKU cambia se
// revalida la unicidad contra las demás filas.
func (uc *ProductUseCase) Update(id int64, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.CostPrice.IsNegative() || in.SalePrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.SKU != nil {
		other, err := uc.repo.GetBySKU(*in.SKU)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != id {
			return nil, domain.ErrDuplicateSKU
		}
	}
	product.Name = in.Name
	product.SKU = in.SKU
	product.CostPrice = in.CostPrice
	product.SalePrice = in.SalePrice
	product.ReorderThreshold = DefaultReorderThreshold
	if in.ReorderThreshold != nil {
		product.ReorderThreshold = *in.ReorderThreshold
	}
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return ToProductResponse(product), nil
}

// List lista productos con paginación.
func (uc *ProductUseCase) List(limit, offset int) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *ToProductResponse(p))
	}
	return items, nil
}

// ListLowStock lista productos en o por debajo de su umbral de reposición.
func (uc *ProductUseCase) ListLowStock(limit, offset int) ([]dto.ProductResponse, error) {
	list, err := uc.repo.ListLowStock(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *ToProductResponse(p))
	}
	return items, nil
}

// Delete elimina un producto. Los movimientos del ledger que lo
// referencian se conservan (quedan huérfanos por decisión explícita).
func (uc *ProductUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}

// ToProductResponse convierte la entidad al DTO de salida.
func ToProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:               p.ID,
		Name:             p.Name,
		SKU:              p.SKU,
		CostPrice:        p.CostPrice,
		SalePrice:        p.SalePrice,
		CurrentStock:     p.CurrentStock,
		ReorderThreshold: p.ReorderThreshold,
	}
}
