package sqlite_test

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-api/internal/domain"
	"github.com/jhoicas/stock-api/internal/domain/entity"
	"github.com/jhoicas/stock-api/internal/domain/repository"
	"github.com/jhoicas/stock-api/internal/infrastructure/sqlite"
)

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sqlite.Open(context.Background(), filepath.Join(t.TempDir(), "stock.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newStock(name string, price string, qty int) *entity.Stock {
	return &entity.Stock{
		Name:             name,
		ShortDescription: name + " corto",
		LongDescription:  name + " largo",
		Price:            decimal.RequireFromString(price),
		Quantity:         qty,
	}
}

// ────────────────────────────────────────────────────────────────
// Stock
// ────────────────────────────────────────────────────────────────

func TestStockRepo_InsertaYLee(t *testing.T) {
	ctx := context.Background()
	repo := sqlite.NewStockRepository(openDB(t))

	s := newStock("Teclado", "19.99", 3)
	require.NoError(t, repo.Save(ctx, s))
	assert.NotZero(t, s.ID)

	got, err := repo.GetByID(ctx, s.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Teclado", got.Name)
	assert.True(t, decimal.RequireFromString("19.99").Equal(got.Price))
	assert.Equal(t, 3, got.Quantity)
}

func TestStockRepo_NoExisteDevuelveNil(t *testing.T) {
	repo := sqlite.NewStockRepository(openDB(t))
	got, err := repo.GetByID(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStockRepo_Actualiza(t *testing.T) {
	ctx := context.Background()
	repo := sqlite.NewStockRepository(openDB(t))
	s := newStock("Mouse", "5", 1)
	require.NoError(t, repo.Save(ctx, s))

	s.Name = "Mouse inalámbrico"
	s.Quantity = 7
	require.NoError(t, repo.Save(ctx, s))

	got, err := repo.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mouse inalámbrico", got.Name)
	assert.Equal(t, 7, got.Quantity)
}

func TestStockRepo_ListPaginaYOrdena(t *testing.T) {
	ctx := context.Background()
	repo := sqlite.NewStockRepository(openDB(t))
	for _, s := range []*entity.Stock{
		newStock("C", "100", 1),
		newStock("A", "9.5", 2),
		newStock("B", "20", 3),
	} {
		require.NoError(t, repo.Save(ctx, s))
	}

	list, err := repo.List(ctx, repository.NewPageRequest(0, 2, "name", "asc"))
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "A", list[0].Name)
	assert.Equal(t, "B", list[1].Name)

	list, err = repo.List(ctx, repository.NewPageRequest(1, 2, "name", "ASC"))
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "C", list[0].Name)

	// Orden numérico aunque el precio se guarde como texto.
	list, err = repo.List(ctx, repository.NewPageRequest(0, 10, "price", "DESC"))
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "C", list[0].Name)
	assert.Equal(t, "B", list[1].Name)
	assert.Equal(t, "A", list[2].Name)
}

func TestStockRepo_ListRechazaCampoDesconocido(t *testing.T) {
	repo := sqlite.NewStockRepository(openDB(t))
	_, err := repo.List(context.Background(), repository.NewPageRequest(0, 10, "name; DROP TABLE stock", "ASC"))
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

// ────────────────────────────────────────────────────────────────
// Product
// ────────────────────────────────────────────────────────────────

func TestProductRepo_InsertaActualizaYLista(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)
	stocks := sqlite.NewStockRepository(db)
	products := sqlite.NewProductRepository(db)

	s := newStock("Monitor", "300", 0)
	require.NoError(t, stocks.Save(ctx, s))

	p1 := entity.NewProduct(s.ID, "SN-1")
	p2 := entity.NewProduct(s.ID, "SN-2")
	require.NoError(t, products.Save(ctx, p1))
	require.NoError(t, products.Save(ctx, p2))

	p1.Status = entity.ProductStatusReserved
	require.NoError(t, products.Save(ctx, p1))

	got, err := products.GetBySerial(ctx, "SN-1")
	require.NoError(t, err)
	assert.Equal(t, entity.ProductStatusReserved, got.Status)
	assert.Equal(t, s.ID, got.StockID)

	list, err := products.ListByStock(ctx, s.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "SN-1", list[0].SerialNo)
	assert.Equal(t, "SN-2", list[1].SerialNo)
}

func TestProductRepo_SerialDuplicado(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)
	stocks := sqlite.NewStockRepository(db)
	products := sqlite.NewProductRepository(db)

	s := newStock("Cable", "1", 0)
	require.NoError(t, stocks.Save(ctx, s))
	require.NoError(t, products.Save(ctx, entity.NewProduct(s.ID, "DUP")))

	err := products.Save(ctx, entity.NewProduct(s.ID, "DUP"))
	assert.ErrorIs(t, err, domain.ErrProductAlreadyExists)
}

func TestProductRepo_SerialInexistente(t *testing.T) {
	got, err := sqlite.NewProductRepository(openDB(t)).GetBySerial(context.Background(), "nada")
	require.NoError(t, err)
	assert.Nil(t, got)
}

// ────────────────────────────────────────────────────────────────
// TxRunner
// ────────────────────────────────────────────────────────────────

func TestTxRunner_RollbackAnteError(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)
	runner := sqlite.NewTxRunner(db)
	boom := errors.New("boom")

	err := runner.Run(ctx, func(stockRepo repository.StockRepository, _ repository.ProductRepository) error {
		if err := stockRepo.Save(ctx, newStock("Temporal", "1", 1)); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	list, err := sqlite.NewStockRepository(db).List(ctx, repository.NewPageRequest(0, 10, "id", "ASC"))
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestTxRunner_CommitPersiste(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)
	var id int
	err := sqlite.NewTxRunner(db).Run(ctx, func(stockRepo repository.StockRepository, _ repository.ProductRepository) error {
		s := newStock("Persistente", "2.50", 4)
		if err := stockRepo.Save(ctx, s); err != nil {
			return err
		}
		id = s.ID
		return nil
	})
	require.NoError(t, err)

	got, err := sqlite.NewStockRepository(db).GetByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Persistente", got.Name)
}
