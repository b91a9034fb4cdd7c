package repository

import (
	"context"

	"github.com/jhoicas/stock-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	// GetBySerial devuelve (nil, nil) si no hay producto con ese serial.
	GetBySerial(ctx context.Context, serialNo string) (*entity.Product, error)
	// Save inserta si product.ID es 0; un serial repetido devuelve domain.ErrProductAlreadyExists.
	Save(ctx context.Context, product *entity.Product) error
	ListByStock(ctx context.Context, stockID int) ([]*entity.Product, error)
}
