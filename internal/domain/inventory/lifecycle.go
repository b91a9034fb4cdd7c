package inventory

import (
	"fmt"

	"github.com/jhoicas/stock-api/internal/domain"
	"github.com/jhoicas/stock-api/internal/domain/entity"
)

// Operation transición solicitada sobre un producto.
type Operation string

const (
	OpReserve   Operation = "reserve"
	OpUnreserve Operation = "unreserve"
	OpSell      Operation = "sell"
)

type transition struct {
	from  []entity.ProductStatus
	to    entity.ProductStatus
	delta int // ajuste sobre Stock.Quantity
}

// SOLD es terminal: ninguna operación lo acepta como origen.
// sell descuenta 1 también desde RESERVED, aunque la reserva ya había descontado.
var transitions = map[Operation]transition{
	OpReserve: {
		from:  []entity.ProductStatus{entity.ProductStatusInStock},
		to:    entity.ProductStatusReserved,
		delta: -1,
	},
	OpUnreserve: {
		from:  []entity.ProductStatus{entity.ProductStatusReserved},
		to:    entity.ProductStatusInStock,
		delta: +1,
	},
	OpSell: {
		from:  []entity.ProductStatus{entity.ProductStatusInStock, entity.ProductStatusReserved},
		to:    entity.ProductStatusSold,
		delta: -1,
	},
}

// CanApply indica si op es válida desde el estado actual.
func CanApply(op Operation, status entity.ProductStatus) bool {
	t, ok := transitions[op]
	if !ok {
		return false
	}
	for _, s := range t.from {
		if s == status {
			return true
		}
	}
	return false
}

// Apply aplica op sobre el producto y ajusta la cantidad del stock dueño.
// Si la transición no es válida devuelve domain.ErrProductNotAvailable sin mutar nada.
func Apply(op Operation, product *entity.Product, stock *entity.Stock) error {
	t, ok := transitions[op]
	if !ok {
		return fmt.Errorf("operación desconocida %q: %w", op, domain.ErrInvalidInput)
	}
	if product.StockID != stock.ID {
		return fmt.Errorf("producto %s no pertenece al stock %d", product.SerialNo, stock.ID)
	}
	if !CanApply(op, product.Status) {
		return domain.ErrProductNotAvailable
	}
	product.Status = t.to
	stock.AdjustQuantity(t.delta)
	return nil
}
