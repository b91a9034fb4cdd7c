package domain

import "errors"

// Categorías de error de dominio (sin dependencias externas).
// La capa HTTP traduce cada categoría a un código de estado.
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrConflict     = errors.New("conflicto con el estado actual")
	ErrInvalidInput = errors.New("entrada inválida")
)

// Errores concretos del inventario. errors.Is los reconoce también como su categoría.
var (
	ErrStockNotFound        = newKindError("stock no encontrado", ErrNotFound)
	ErrProductNotFound      = newKindError("producto no encontrado", ErrNotFound)
	ErrProductAlreadyExists = newKindError("el producto ya existe", ErrConflict)
	ErrIncorrectStock       = newKindError("el id del stock no coincide con el de la ruta", ErrConflict)
	ErrProductNotAvailable  = newKindError("producto no disponible", ErrConflict)
)

type kindError struct {
	msg  string
	kind error
}

func newKindError(msg string, kind error) error {
	return &kindError{msg: msg, kind: kind}
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() error { return e.kind }
