package inventory_test

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-api/internal/application/inventory"
	"github.com/jhoicas/stock-api/internal/domain"
	"github.com/jhoicas/stock-api/internal/domain/entity"
	"github.com/jhoicas/stock-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake en memoria: arena de stocks y productos por ID, cuenta escrituras.
// Devuelve copias para que el caso de uso no mute el estado sin Save.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	stocks      map[int]entity.Stock
	products    map[int]entity.Product
	nextStock   int
	nextProduct int
	stockSaves  int
	prodSaves   int
	txs         int
	failSave    error
}

func newMemStore() *memStore {
	return &memStore{stocks: map[int]entity.Stock{}, products: map[int]entity.Product{}}
}

func (m *memStore) Run(_ context.Context, fn func(repository.StockRepository, repository.ProductRepository) error) error {
	m.txs++
	return fn(stockRepo{m}, productRepo{m})
}

type stockRepo struct{ m *memStore }

func (r stockRepo) GetByID(_ context.Context, id int) (*entity.Stock, error) {
	s, ok := r.m.stocks[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (r stockRepo) Save(_ context.Context, s *entity.Stock) error {
	if r.m.failSave != nil {
		return r.m.failSave
	}
	if s.ID == 0 {
		r.m.nextStock++
		s.ID = r.m.nextStock
	}
	r.m.stocks[s.ID] = *s
	r.m.stockSaves++
	return nil
}

func (r stockRepo) List(_ context.Context, page repository.PageRequest) ([]*entity.Stock, error) {
	var all []*entity.Stock
	for _, s := range r.m.stocks {
		s := s
		all = append(all, &s)
	}
	sort.Slice(all, func(i, j int) bool {
		if page.Direction == repository.SortDesc {
			return all[i].Name > all[j].Name
		}
		return all[i].Name < all[j].Name
	})
	from := page.Offset()
	if from >= len(all) {
		return nil, nil
	}
	to := from + page.Size
	if to > len(all) {
		to = len(all)
	}
	return all[from:to], nil
}

type productRepo struct{ m *memStore }

func (r productRepo) GetBySerial(_ context.Context, serial string) (*entity.Product, error) {
	for _, p := range r.m.products {
		if p.SerialNo == serial {
			p := p
			return &p, nil
		}
	}
	return nil, nil
}

func (r productRepo) Save(ctx context.Context, p *entity.Product) error {
	if p.ID == 0 {
		if existing, _ := r.GetBySerial(ctx, p.SerialNo); existing != nil {
			return domain.ErrProductAlreadyExists
		}
		r.m.nextProduct++
		p.ID = r.m.nextProduct
	}
	r.m.products[p.ID] = *p
	r.m.prodSaves++
	return nil
}

func (r productRepo) ListByStock(_ context.Context, stockID int) ([]*entity.Product, error) {
	var out []*entity.Product
	for id := 1; id <= r.m.nextProduct; id++ {
		if p, ok := r.m.products[id]; ok && p.StockID == stockID {
			out = append(out, &p)
		}
	}
	return out, nil
}

// seed deja el stock 1 (quantity=10) con el producto "1" IN_STOCK.
func seed(t *testing.T) (*inventory.StockUseCase, *memStore) {
	t.Helper()
	m := newMemStore()
	m.stocks[1] = entity.Stock{ID: 1, Name: "S1", ShortDescription: "s", LongDescription: "l", Price: decimal.NewFromInt(5), Quantity: 10}
	m.nextStock = 1
	m.products[1] = entity.Product{ID: 1, SerialNo: "1", Status: entity.ProductStatusInStock, StockID: 1}
	m.nextProduct = 1
	return inventory.NewStockUseCase(m, stockRepo{m}, productRepo{m}, nil), m
}

func (m *memStore) resetCounters() {
	m.stockSaves, m.prodSaves, m.txs = 0, 0, 0
}

// ──────────────────────────────────────────────────────────────────────────────
// Lecturas
// ──────────────────────────────────────────────────────────────────────────────

func TestGetStock_NoExiste(t *testing.T) {
	m := newMemStore()
	uc := inventory.NewStockUseCase(m, stockRepo{m}, productRepo{m}, nil)
	_, err := uc.GetStock(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrStockNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetProduct_NoExiste(t *testing.T) {
	uc, _ := seed(t)
	_, err := uc.GetProduct(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestGetProducts_UsaTransaccionYNuncaNil(t *testing.T) {
	ctx := context.Background()
	uc, m := seed(t)
	m.stocks[2] = entity.Stock{ID: 2, Name: "vacío"}

	list, err := uc.GetProducts(ctx, 2)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
	assert.Equal(t, 1, m.txs)

	_, err = uc.GetProducts(ctx, 42)
	assert.ErrorIs(t, err, domain.ErrStockNotFound)
}

func TestGetStockViews_UnaTxConProductos(t *testing.T) {
	ctx := context.Background()
	uc, m := seed(t)
	m.stocks[2] = entity.Stock{ID: 2, Name: "S2"}

	views, err := uc.GetStockViews(ctx, repository.NewPageRequest(0, 10, "name", "ASC"))
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, 1, m.txs)
	require.Len(t, views[0].Products, 1)
	assert.Equal(t, "1", views[0].Products[0].SerialNo)
	assert.NotNil(t, views[1].Products)
	assert.Empty(t, views[1].Products)

	_, err = uc.GetStockViews(ctx, repository.NewPageRequest(0, 10, "color", "ASC"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 1, m.txs)

	view, err := uc.GetStockView(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "S1", view.Stock.Name)
	_, err = uc.GetStockView(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrStockNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ciclo de vida
// ──────────────────────────────────────────────────────────────────────────────

func TestCicloDeVida_ReservarVenderAnular(t *testing.T) {
	ctx := context.Background()
	uc, m := seed(t)

	require.NoError(t, uc.ReserveProduct(ctx, "1"))
	assert.Equal(t, entity.ProductStatusReserved, m.products[1].Status)
	assert.Equal(t, 9, m.stocks[1].Quantity)

	require.NoError(t, uc.SellProduct(ctx, "1"))
	assert.Equal(t, entity.ProductStatusSold, m.products[1].Status)
	assert.Equal(t, 8, m.stocks[1].Quantity)

	m.resetCounters()
	err := uc.UnReserveProduct(ctx, "1")
	assert.ErrorIs(t, err, domain.ErrProductNotAvailable)
	assert.Equal(t, 8, m.stocks[1].Quantity)
	assert.Zero(t, m.stockSaves+m.prodSaves, "un fallo no debe escribir")
}

func TestTransicion_DosEscriturasProductoYStock(t *testing.T) {
	uc, m := seed(t)
	require.NoError(t, uc.SellProduct(context.Background(), "1"))
	assert.Equal(t, 1, m.prodSaves)
	assert.Equal(t, 1, m.stockSaves)
	assert.Equal(t, 1, m.txs)
}

func TestReservar_YaReservadoOVendido(t *testing.T) {
	ctx := context.Background()
	uc, m := seed(t)
	require.NoError(t, uc.ReserveProduct(ctx, "1"))
	assert.ErrorIs(t, uc.ReserveProduct(ctx, "1"), domain.ErrProductNotAvailable)

	require.NoError(t, uc.SellProduct(ctx, "1"))
	assert.ErrorIs(t, uc.ReserveProduct(ctx, "1"), domain.ErrProductNotAvailable)
	assert.ErrorIs(t, uc.SellProduct(ctx, "1"), domain.ErrProductNotAvailable)
	assert.Equal(t, 8, m.stocks[1].Quantity)
}

func TestAnularReserva_SumaUno(t *testing.T) {
	ctx := context.Background()
	uc, m := seed(t)
	require.NoError(t, uc.ReserveProduct(ctx, "1"))
	require.NoError(t, uc.UnReserveProduct(ctx, "1"))
	assert.Equal(t, entity.ProductStatusInStock, m.products[1].Status)
	assert.Equal(t, 10, m.stocks[1].Quantity)
}

func TestTransiciones_ProductoInexistente(t *testing.T) {
	ctx := context.Background()
	uc, _ := seed(t)
	assert.ErrorIs(t, uc.SellProduct(ctx, "x"), domain.ErrProductNotFound)
	assert.ErrorIs(t, uc.ReserveProduct(ctx, "x"), domain.ErrProductNotFound)
	assert.ErrorIs(t, uc.UnReserveProduct(ctx, "x"), domain.ErrProductNotFound)
}

func TestTransicion_ErrorAlPersistirSePropaga(t *testing.T) {
	uc, m := seed(t)
	boom := errors.New("disco lleno")
	m.failSave = boom
	err := uc.ReserveProduct(context.Background(), "1")
	assert.ErrorIs(t, err, boom)
	assert.False(t, errors.Is(err, domain.ErrConflict))
}

// ──────────────────────────────────────────────────────────────────────────────
// Altas
// ──────────────────────────────────────────────────────────────────────────────

func TestAddProduct_CreaInStockYSumaUno(t *testing.T) {
	ctx := context.Background()
	uc, m := seed(t)

	p, err := uc.AddProduct(ctx, 1, "2")
	require.NoError(t, err)
	assert.NotZero(t, p.ID)
	assert.Equal(t, entity.ProductStatusInStock, p.Status)
	assert.Equal(t, 1, p.StockID)
	assert.Equal(t, 11, m.stocks[1].Quantity)

	m.resetCounters()
	_, err = uc.AddProduct(ctx, 1, "2")
	assert.ErrorIs(t, err, domain.ErrProductAlreadyExists)
	assert.Equal(t, 11, m.stocks[1].Quantity)
	assert.Zero(t, m.stockSaves+m.prodSaves)
}

func TestAddProduct_StockInexistenteYSerialVacio(t *testing.T) {
	ctx := context.Background()
	uc, _ := seed(t)
	_, err := uc.AddProduct(ctx, 99, "2")
	assert.ErrorIs(t, err, domain.ErrStockNotFound)

	_, err = uc.AddProduct(ctx, 1, "   ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// El serial se guarda tal cual llega y se busca con el mismo valor.
func TestAddProduct_SerialSinNormalizar(t *testing.T) {
	ctx := context.Background()
	uc, _ := seed(t)

	p, err := uc.AddProduct(ctx, 1, " X ")
	require.NoError(t, err)
	assert.Equal(t, " X ", p.SerialNo)

	got, err := uc.GetProduct(ctx, " X ")
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)
	require.NoError(t, uc.ReserveProduct(ctx, " X "))

	_, err = uc.GetProduct(ctx, "X")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestAddProducts_AgregaEnOrden(t *testing.T) {
	ctx := context.Background()
	uc, m := seed(t)

	added, err := uc.AddProducts(ctx, 1, []string{"13", "14"})
	require.NoError(t, err)
	require.Len(t, added, 2)
	assert.Equal(t, 12, m.stocks[1].Quantity)

	for _, serial := range []string{"13", "14"} {
		p, err := uc.GetProduct(ctx, serial)
		require.NoError(t, err)
		assert.Equal(t, 1, p.StockID)
	}
}

func TestAddProducts_ParcialSinRollback(t *testing.T) {
	ctx := context.Background()
	uc, m := seed(t)

	added, err := uc.AddProducts(ctx, 1, []string{"A", "1", "B"})
	assert.ErrorIs(t, err, domain.ErrProductAlreadyExists)
	require.Len(t, added, 1)
	assert.Equal(t, "A", added[0].SerialNo)
	assert.Equal(t, 11, m.stocks[1].Quantity)

	_, err = uc.GetProduct(ctx, "B")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestAddStock_AsignaID(t *testing.T) {
	uc, m := seed(t)
	s, err := uc.AddStock(context.Background(), &entity.Stock{ID: 50, Name: "Nuevo", Quantity: 3})
	require.NoError(t, err)
	assert.Equal(t, 2, s.ID)
	assert.Equal(t, "Nuevo", m.stocks[2].Name)
}

// ──────────────────────────────────────────────────────────────────────────────
// Actualización y listado
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateStock(t *testing.T) {
	ctx := context.Background()
	uc, m := seed(t)

	_, err := uc.UpdateStock(ctx, 1, &entity.Stock{ID: 2, Name: "X"})
	assert.ErrorIs(t, err, domain.ErrIncorrectStock)
	assert.Equal(t, "S1", m.stocks[1].Name)

	_, err = uc.UpdateStock(ctx, 7, &entity.Stock{ID: 7, Name: "X"})
	assert.ErrorIs(t, err, domain.ErrStockNotFound)

	out, err := uc.UpdateStock(ctx, 1, &entity.Stock{ID: 1, Name: "Renombrado", Quantity: 4})
	require.NoError(t, err)
	assert.Equal(t, "Renombrado", out.Name)
	assert.Equal(t, 4, m.stocks[1].Quantity)
}

func TestGetStocks_ValidaYNuncaNil(t *testing.T) {
	ctx := context.Background()
	uc, _ := seed(t)

	_, err := uc.GetStocks(ctx, repository.NewPageRequest(0, 10, "color", "ASC"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	list, err := uc.GetStocks(ctx, repository.NewPageRequest(5, 10, "name", "ASC"))
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}
