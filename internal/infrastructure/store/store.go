// Package store elige el backend de persistencia según STORE_DRIVER.
package store

import (
	"context"
	"fmt"

	"github.com/jhoicas/stock-api/internal/application/inventory"
	"github.com/jhoicas/stock-api/internal/domain/repository"
	"github.com/jhoicas/stock-api/internal/infrastructure/postgres"
	"github.com/jhoicas/stock-api/internal/infrastructure/sqlite"
	"github.com/jhoicas/stock-api/pkg/config"
)

// Store repositorios y runner de transacciones de un mismo backend.
type Store struct {
	TxRunner inventory.TxRunner
	Stocks   repository.StockRepository
	Products repository.ProductRepository
	Close    func()
}

// Open abre el backend configurado y deja el esquema aplicado.
func Open(ctx context.Context, cfg *config.Config) (*Store, error) {
	switch cfg.Store.Driver {
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		return &Store{
			TxRunner: postgres.NewTxRunner(pool),
			Stocks:   postgres.NewStockRepository(pool),
			Products: postgres.NewProductRepository(pool),
			Close:    pool.Close,
		}, nil
	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLite.Path)
		if err != nil {
			return nil, err
		}
		return &Store{
			TxRunner: sqlite.NewTxRunner(db),
			Stocks:   sqlite.NewStockRepository(db),
			Products: sqlite.NewProductRepository(db),
			Close:    func() { _ = db.Close() },
		}, nil
	default:
		return nil, fmt.Errorf("STORE_DRIVER %q no soportado", cfg.Store.Driver)
	}
}
