package ports

import (
	"context"
	"time"

	"github.com/jhoicas/stock-api/internal/domain/entity"
)

// StockReportGenerator define el puerto de salida para el reporte de inventario.
// Cualquier adaptador (PDF, CSV, mock) debe implementar esta interfaz.
type StockReportGenerator interface {
	// GenerateStockReport devuelve el documento con una fila por stock y totales.
	GenerateStockReport(ctx context.Context, stocks []*entity.Stock, generatedAt time.Time) ([]byte, error)
}
