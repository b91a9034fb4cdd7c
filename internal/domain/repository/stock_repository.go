package repository

import (
	"context"

	"github.com/jhoicas/stock-api/internal/domain/entity"
)

// StockRepository define el puerto de persistencia para Stock (DIP).
// GetByID devuelve (nil, nil) si no existe.
type StockRepository interface {
	GetByID(ctx context.Context, id int) (*entity.Stock, error)
	// Save inserta si stock.ID es 0 (y asigna el ID generado); si no, actualiza la fila.
	Save(ctx context.Context, stock *entity.Stock) error
	List(ctx context.Context, page PageRequest) ([]*entity.Stock, error)
}
