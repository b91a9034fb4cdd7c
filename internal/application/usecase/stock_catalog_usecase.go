package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/stock-api/internal/application/dto"
	"github.com/jhoicas/stock-api/internal/application/inventory"
	"github.com/jhoicas/stock-api/internal/application/ports"
	"github.com/jhoicas/stock-api/internal/domain/entity"
	"github.com/jhoicas/stock-api/internal/domain/repository"
)

// reportPageSize tamaño de página al recorrer todos los stocks para el reporte.
const reportPageSize = 100

// StockCatalogUseCase arma las respuestas de stock (con sus productos) sobre el núcleo de inventario.
type StockCatalogUseCase struct {
	core   *inventory.StockUseCase
	report ports.StockReportGenerator
	now    func() time.Time
}

// NewStockCatalogUseCase construye el caso de uso. report puede ser nil si no se expone el reporte.
func NewStockCatalogUseCase(
	core *inventory.StockUseCase,
	report ports.StockReportGenerator,
) *StockCatalogUseCase {
	return &StockCatalogUseCase{
		core:   core,
		report: report,
		now:    time.Now,
	}
}

// Get obtiene un stock con sus productos.
func (uc *StockCatalogUseCase) Get(ctx context.Context, id int) (*dto.StockResponse, error) {
	view, err := uc.core.GetStockView(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewStockResponse(view.Stock, view.Products), nil
}

// Create crea un stock. Un stock nuevo no tiene productos.
func (uc *StockCatalogUseCase) Create(ctx context.Context, in dto.StockRequest) (*dto.StockResponse, error) {
	stock, err := uc.core.AddStock(ctx, in.ToEntity())
	if err != nil {
		return nil, err
	}
	return dto.NewStockResponse(stock, nil), nil
}

// Update reemplaza el stock id con el payload.
func (uc *StockCatalogUseCase) Update(ctx context.Context, id int, in dto.StockRequest) (*dto.StockResponse, error) {
	if _, err := uc.core.UpdateStock(ctx, id, in.ToEntity()); err != nil {
		return nil, err
	}
	return uc.Get(ctx, id)
}

// List devuelve una página de stocks, cada uno con sus productos.
func (uc *StockCatalogUseCase) List(ctx context.Context, q dto.PageQuery) ([]dto.StockResponse, error) {
	views, err := uc.core.GetStockViews(ctx, q.ToPageRequest())
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockResponse, 0, len(views))
	for _, v := range views {
		out = append(out, *dto.NewStockResponse(v.Stock, v.Products))
	}
	return out, nil
}

// Report genera el reporte de inventario con todos los stocks ordenados por nombre.
func (uc *StockCatalogUseCase) Report(ctx context.Context) ([]byte, error) {
	if uc.report == nil {
		return nil, fmt.Errorf("generador de reporte no configurado")
	}
	var all []*entity.Stock
	for page := 0; ; page++ {
		req := repository.NewPageRequest(page, reportPageSize, dto.DefaultSort, dto.DefaultOrder)
		list, err := uc.core.GetStocks(ctx, req)
		if err != nil {
			return nil, err
		}
		all = append(all, list...)
		if len(list) < reportPageSize {
			break
		}
	}
	return uc.report.GenerateStockReport(ctx, all, uc.now())
}
