package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Constraints del esquema que se traducen a errores de dominio.
const constraintProductSerial = "uq_product_serial_no"

// isUniqueViolation verifica si err es una violación de unique (23505) sobre constraint.
// Con constraint vacío acepta cualquier unique.
func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}
