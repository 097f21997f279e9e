package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrDuplicateSKU        = errors.New("el SKU ya está registrado en otro producto")
	ErrInsufficientStock   = errors.New("stock insuficiente")
	ErrInvalidMovementType = errors.New("tipo de movimiento inválido")
)
