package inventory

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/stock-api/internal/domain"
	"github.com/jhoicas/stock-api/internal/domain/entity"
	lifecycle "github.com/jhoicas/stock-api/internal/domain/inventory"
	"github.com/jhoicas/stock-api/internal/domain/repository"
	"github.com/jhoicas/stock-api/pkg/logger"
)

// StockUseCase gestiona stocks y el ciclo de vida de sus productos
// (alta, venta, reserva y anulación de reserva).
//
// Cada operación de escritura hace como máximo dos escrituras: producto y luego stock,
// o solo stock en alta y actualización.
type StockUseCase struct {
	txRunner    TxRunner
	stockRepo   repository.StockRepository
	productRepo repository.ProductRepository
	log         *logger.Logger
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(
	txRunner TxRunner,
	stockRepo repository.StockRepository,
	productRepo repository.ProductRepository,
	log *logger.Logger,
) *StockUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &StockUseCase{
		txRunner:    txRunner,
		stockRepo:   stockRepo,
		productRepo: productRepo,
		log:         log.Named("inventory"),
	}
}

// GetStock obtiene un stock por ID o domain.ErrStockNotFound.
func (uc *StockUseCase) GetStock(ctx context.Context, id int) (*entity.Stock, error) {
	return findStock(ctx, uc.stockRepo, id)
}

// GetProduct obtiene un producto por serial o domain.ErrProductNotFound.
func (uc *StockUseCase) GetProduct(ctx context.Context, serialNo string) (*entity.Product, error) {
	return findProduct(ctx, uc.productRepo, serialNo)
}

// GetProducts devuelve todos los productos del stock; stock y productos se leen en la misma tx.
func (uc *StockUseCase) GetProducts(ctx context.Context, stockID int) ([]*entity.Product, error) {
	var products []*entity.Product
	err := uc.txRunner.Run(ctx, func(stockRepo repository.StockRepository, productRepo repository.ProductRepository) error {
		stock, err := findStock(ctx, stockRepo, stockID)
		if err != nil {
			return err
		}
		products, err = productRepo.ListByStock(ctx, stock.ID)
		if err != nil {
			return fmt.Errorf("listar productos del stock %d: %w", stock.ID, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []*entity.Product{}
	}
	return products, nil
}

// StockView un stock junto a sus productos, leídos en la misma tx.
type StockView struct {
	Stock    *entity.Stock
	Products []*entity.Product
}

// GetStockView obtiene el stock id con sus productos o domain.ErrStockNotFound.
func (uc *StockUseCase) GetStockView(ctx context.Context, id int) (*StockView, error) {
	var view *StockView
	err := uc.txRunner.Run(ctx, func(stockRepo repository.StockRepository, productRepo repository.ProductRepository) error {
		stock, err := findStock(ctx, stockRepo, id)
		if err != nil {
			return err
		}
		view, err = loadView(ctx, productRepo, stock)
		return err
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// GetStockViews devuelve una página de stocks con sus productos; página y productos se leen en una sola tx.
func (uc *StockUseCase) GetStockViews(ctx context.Context, page repository.PageRequest) ([]StockView, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}
	views := []StockView{}
	err := uc.txRunner.Run(ctx, func(stockRepo repository.StockRepository, productRepo repository.ProductRepository) error {
		stocks, err := stockRepo.List(ctx, page)
		if err != nil {
			return fmt.Errorf("listar stocks: %w", err)
		}
		for _, s := range stocks {
			view, err := loadView(ctx, productRepo, s)
			if err != nil {
				return err
			}
			views = append(views, *view)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}

func loadView(ctx context.Context, productRepo repository.ProductRepository, stock *entity.Stock) (*StockView, error) {
	products, err := productRepo.ListByStock(ctx, stock.ID)
	if err != nil {
		return nil, fmt.Errorf("listar productos del stock %d: %w", stock.ID, err)
	}
	if products == nil {
		products = []*entity.Product{}
	}
	return &StockView{Stock: stock, Products: products}, nil
}

// SellProduct pasa el producto a SOLD desde IN_STOCK o RESERVED y descuenta 1 al stock.
func (uc *StockUseCase) SellProduct(ctx context.Context, serialNo string) error {
	return uc.transition(ctx, serialNo, lifecycle.OpSell)
}

// ReserveProduct pasa el producto de IN_STOCK a RESERVED y descuenta 1 al stock.
func (uc *StockUseCase) ReserveProduct(ctx context.Context, serialNo string) error {
	return uc.transition(ctx, serialNo, lifecycle.OpReserve)
}

// UnReserveProduct devuelve el producto de RESERVED a IN_STOCK y suma 1 al stock.
func (uc *StockUseCase) UnReserveProduct(ctx context.Context, serialNo string) error {
	return uc.transition(ctx, serialNo, lifecycle.OpUnreserve)
}

func (uc *StockUseCase) transition(ctx context.Context, serialNo string, op lifecycle.Operation) error {
	return uc.txRunner.Run(ctx, func(stockRepo repository.StockRepository, productRepo repository.ProductRepository) error {
		product, err := findProduct(ctx, productRepo, serialNo)
		if err != nil {
			return err
		}
		stock, err := findStock(ctx, stockRepo, product.StockID)
		if err != nil {
			return err
		}
		from := product.Status
		if err := lifecycle.Apply(op, product, stock); err != nil {
			return err
		}
		if err := productRepo.Save(ctx, product); err != nil {
			uc.log.Error().Err(err).Str("serial", serialNo).Msg("guardar producto")
			return fmt.Errorf("guardar producto %s: %w", serialNo, err)
		}
		if err := stockRepo.Save(ctx, stock); err != nil {
			uc.log.Error().Err(err).Int("stock_id", stock.ID).Msg("guardar stock")
			return fmt.Errorf("guardar stock %d: %w", stock.ID, err)
		}
		uc.log.Debug().
			Str("op", string(op)).
			Str("serial", serialNo).
			Str("from", string(from)).
			Str("to", string(product.Status)).
			Int("stock_id", stock.ID).
			Int("quantity", stock.Quantity).
			Msg("transición aplicada")
		return nil
	})
}

// AddProduct crea un producto IN_STOCK en el stock y suma 1 a su cantidad.
// Devuelve el producto creado.
func (uc *StockUseCase) AddProduct(ctx context.Context, stockID int, serialNo string) (*entity.Product, error) {
	if strings.TrimSpace(serialNo) == "" {
		return nil, fmt.Errorf("serial vacío: %w", domain.ErrInvalidInput)
	}
	var created *entity.Product
	err := uc.txRunner.Run(ctx, func(stockRepo repository.StockRepository, productRepo repository.ProductRepository) error {
		stock, err := findStock(ctx, stockRepo, stockID)
		if err != nil {
			return err
		}
		existing, err := productRepo.GetBySerial(ctx, serialNo)
		if err != nil {
			return fmt.Errorf("buscar producto %s: %w", serialNo, err)
		}
		if existing != nil {
			return domain.ErrProductAlreadyExists
		}
		product := entity.NewProduct(stock.ID, serialNo)
		if err := productRepo.Save(ctx, product); err != nil {
			return err
		}
		stock.AdjustQuantity(+1)
		if err := stockRepo.Save(ctx, stock); err != nil {
			return fmt.Errorf("guardar stock %d: %w", stock.ID, err)
		}
		created = product
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Debug().Str("serial", serialNo).Int("stock_id", stockID).Msg("producto agregado")
	return created, nil
}

// AddProducts agrega los seriales en orden. El primer error corta el resto;
// los ya agregados no se revierten y se devuelven junto al error.
func (uc *StockUseCase) AddProducts(ctx context.Context, stockID int, serials []string) ([]*entity.Product, error) {
	added := make([]*entity.Product, 0, len(serials))
	for _, serial := range serials {
		p, err := uc.AddProduct(ctx, stockID, serial)
		if err != nil {
			return added, err
		}
		added = append(added, p)
	}
	return added, nil
}

// AddStock persiste un stock nuevo tal como llega; el ID lo asigna el repositorio.
func (uc *StockUseCase) AddStock(ctx context.Context, stock *entity.Stock) (*entity.Stock, error) {
	stock.ID = 0
	if err := uc.stockRepo.Save(ctx, stock); err != nil {
		return nil, fmt.Errorf("crear stock: %w", err)
	}
	return stock, nil
}

// UpdateStock reemplaza el estado del stock id. El ID del payload debe coincidir con id.
func (uc *StockUseCase) UpdateStock(ctx context.Context, id int, stock *entity.Stock) (*entity.Stock, error) {
	if _, err := findStock(ctx, uc.stockRepo, id); err != nil {
		return nil, err
	}
	if stock.ID != id {
		return nil, domain.ErrIncorrectStock
	}
	if err := uc.stockRepo.Save(ctx, stock); err != nil {
		return nil, fmt.Errorf("actualizar stock %d: %w", id, err)
	}
	return stock, nil
}

// GetStocks devuelve una página de stocks ordenada.
func (uc *StockUseCase) GetStocks(ctx context.Context, page repository.PageRequest) ([]*entity.Stock, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}
	list, err := uc.stockRepo.List(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("listar stocks: %w", err)
	}
	if list == nil {
		list = []*entity.Stock{}
	}
	return list, nil
}

func findStock(ctx context.Context, repo repository.StockRepository, id int) (*entity.Stock, error) {
	stock, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("obtener stock %d: %w", id, err)
	}
	if stock == nil {
		return nil, domain.ErrStockNotFound
	}
	return stock, nil
}

func findProduct(ctx context.Context, repo repository.ProductRepository, serialNo string) (*entity.Product, error) {
	product, err := repo.GetBySerial(ctx, serialNo)
	if err != nil {
		return nil, fmt.Errorf("obtener producto %s: %w", serialNo, err)
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	return product, nil
}
