package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jhoicas/stock-api/internal/domain/entity"
	"github.com/jhoicas/stock-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo StockRepository sobre SQLite. El precio se guarda como TEXT decimal exacto.
type StockRepo struct {
	q Querier
}

func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

const stockColumns = `id, name, short_description, long_description, price, quantity`

func (r *StockRepo) GetByID(ctx context.Context, id int) (*entity.Stock, error) {
	var s entity.Stock
	err := r.q.QueryRowContext(ctx, `SELECT `+stockColumns+` FROM stock WHERE id = ?`, id).Scan(
		&s.ID, &s.Name, &s.ShortDescription, &s.LongDescription, &s.Price, &s.Quantity,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

func (r *StockRepo) Save(ctx context.Context, stock *entity.Stock) error {
	if stock.ID == 0 {
		res, err := r.q.ExecContext(ctx,
			`INSERT INTO stock (name, short_description, long_description, price, quantity) VALUES (?, ?, ?, ?, ?)`,
			stock.Name, stock.ShortDescription, stock.LongDescription, stock.Price.String(), stock.Quantity,
		)
		if err != nil {
			return fmt.Errorf("insert stock: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("insert stock: %w", err)
		}
		stock.ID = int(id)
		return nil
	}

	res, err := r.q.ExecContext(ctx,
		`UPDATE stock SET name = ?, short_description = ?, long_description = ?, price = ?, quantity = ? WHERE id = ?`,
		stock.Name, stock.ShortDescription, stock.LongDescription, stock.Price.String(), stock.Quantity, stock.ID,
	)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("update stock %d: sin filas afectadas", stock.ID)
	}
	return nil
}

// List pagina con ORDER BY sobre la columna validada. price es TEXT: se ordena numéricamente.
func (r *StockRepo) List(ctx context.Context, page repository.PageRequest) ([]*entity.Stock, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}
	col := page.SortColumn()
	if col == "price" {
		col = "CAST(price AS REAL)"
	}
	query := fmt.Sprintf(`SELECT %s FROM stock ORDER BY %s %s, id %s LIMIT ? OFFSET ?`,
		stockColumns, col, page.Direction, page.Direction)
	rows, err := r.q.QueryContext(ctx, query, page.Size, page.Offset())
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
