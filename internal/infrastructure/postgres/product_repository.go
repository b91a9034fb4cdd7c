package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stock-api/internal/domain"
	"github.com/jhoicas/stock-api/internal/domain/entity"
	"github.com/jhoicas/stock-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// GetBySerial obtiene un producto por número de serie.
func (r *ProductRepo) GetBySerial(ctx context.Context, serialNo string) (*entity.Product, error) {
	query := `SELECT id, serial_no, status, id_stock FROM product WHERE serial_no = $1`
	p, err := scanProduct(r.q.QueryRow(ctx, query, serialNo))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by serial: %w", err)
	}
	return p, nil
}

// Save inserta (ID 0) o actualiza el estado del producto. El stock dueño no cambia nunca.
func (r *ProductRepo) Save(ctx context.Context, product *entity.Product) error {
	if product.ID == 0 {
		query := `INSERT INTO product (serial_no, status, id_stock) VALUES ($1, $2, $3) RETURNING id`
		err := r.q.QueryRow(ctx, query, product.SerialNo, string(product.Status), product.StockID).Scan(&product.ID)
		if err != nil {
			if isUniqueViolation(err, constraintProductSerial) {
				return domain.ErrProductAlreadyExists
			}
			return fmt.Errorf("insert product: %w", err)
		}
		return nil
	}

	cmd, err := r.q.Exec(ctx, `UPDATE product SET status = $2 WHERE id = $1`, product.ID, string(product.Status))
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("update product %d: sin filas afectadas", product.ID)
	}
	return nil
}

// ListByStock lista los productos de un stock por ID ascendente.
func (r *ProductRepo) ListByStock(ctx context.Context, stockID int) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, serial_no, status, id_stock FROM product WHERE id_stock = $1 ORDER BY id`, stockID)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	var status string
	if err := row.Scan(&p.ID, &p.SerialNo, &status, &p.StockID); err != nil {
		return nil, err
	}
	p.Status = entity.ProductStatus(status)
	return &p, nil
}
