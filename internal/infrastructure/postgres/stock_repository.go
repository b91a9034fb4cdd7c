package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stock-api/internal/domain/entity"
	"github.com/jhoicas/stock-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

const stockColumns = `id, name, short_description, long_description, price, quantity`

// GetByID obtiene un stock por ID; (nil, nil) si no existe.
func (r *StockRepo) GetByID(ctx context.Context, id int) (*entity.Stock, error) {
	query := `SELECT ` + stockColumns + ` FROM stock WHERE id = $1`
	var s entity.Stock
	err := r.q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Name, &s.ShortDescription, &s.LongDescription, &s.Price, &s.Quantity,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

// Save inserta (ID 0) o actualiza el stock.
func (r *StockRepo) Save(ctx context.Context, stock *entity.Stock) error {
	if stock.ID == 0 {
		query := `
			INSERT INTO stock (name, short_description, long_description, price, quantity)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id`
		err := r.q.QueryRow(ctx, query,
			stock.Name, stock.ShortDescription, stock.LongDescription, stock.Price, stock.Quantity,
		).Scan(&stock.ID)
		if err != nil {
			return fmt.Errorf("insert stock: %w", err)
		}
		return nil
	}

	query := `
		UPDATE stock SET name = $2, short_description = $3, long_description = $4, price = $5, quantity = $6
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		stock.ID, stock.Name, stock.ShortDescription, stock.LongDescription, stock.Price, stock.Quantity,
	)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("update stock %d: sin filas afectadas", stock.ID)
	}
	return nil
}

// List devuelve una página ordenada. La columna de orden sale de la lista blanca de PageRequest.
func (r *StockRepo) List(ctx context.Context, page repository.PageRequest) ([]*entity.Stock, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`SELECT %s FROM stock ORDER BY %s %s, id %s LIMIT $1 OFFSET $2`,
		stockColumns, page.SortColumn(), page.Direction, page.Direction)
	rows, err := r.q.Query(ctx, query, page.Size, page.Offset())
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()
	var list []*entity.Stock
	for rows.Next() {
		var s entity.Stock
		if err := rows.Scan(&s.ID, &s.Name, &s.ShortDescription, &s.LongDescription, &s.Price, &s.Quantity); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
