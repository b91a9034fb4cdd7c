package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jhoicas/stock-api/internal/domain"
	"github.com/jhoicas/stock-api/internal/domain/entity"
	"github.com/jhoicas/stock-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

type ProductRepo struct {
	q Querier
}

func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

func (r *ProductRepo) GetBySerial(ctx context.Context, serialNo string) (*entity.Product, error) {
	var p entity.Product
	var status string
	err := r.q.QueryRowContext(ctx,
		`SELECT id, serial_no, status, id_stock FROM product WHERE serial_no = ?`, serialNo,
	).Scan(&p.ID, &p.SerialNo, &status, &p.StockID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by serial: %w", err)
	}
	p.Status = entity.ProductStatus(status)
	return &p, nil
}

func (r *ProductRepo) Save(ctx context.Context, product *entity.Product) error {
	if product.ID == 0 {
		res, err := r.q.ExecContext(ctx,
			`INSERT INTO product (serial_no, status, id_stock) VALUES (?, ?, ?)`,
			product.SerialNo, string(product.Status), product.StockID,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrProductAlreadyExists
			}
			return fmt.Errorf("insert product: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("insert product: %w", err)
		}
		product.ID = int(id)
		return nil
	}

	res, err := r.q.ExecContext(ctx, `UPDATE product SET status = ? WHERE id = ?`, string(product.Status), product.ID)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("update product %d: sin filas afectadas", product.ID)
	}
	return nil
}

func (r *ProductRepo) ListByStock(ctx context.Context, stockID int) ([]*entity.Product, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT id, serial_no, status, id_stock FROM product WHERE id_stock = ? ORDER BY id`, stockID)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		var status string
		if err := rows.Scan(&p.ID, &p.SerialNo, &status, &p.StockID); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		p.Status = entity.ProductStatus(status)
		list = append(list, &p)
	}
	return list, rows.Err()
}
