package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-api/internal/domain"
	"github.com/jhoicas/stock-api/internal/domain/entity"
	"github.com/jhoicas/stock-api/internal/domain/inventory"
)

func TestApply_Transiciones(t *testing.T) {
	tests := []struct {
		name       string
		op         inventory.Operation
		from       entity.ProductStatus
		wantStatus entity.ProductStatus
		wantQty    int
		wantErr    error
	}{
		{"reservar desde IN_STOCK", inventory.OpReserve, entity.ProductStatusInStock, entity.ProductStatusReserved, 9, nil},
		{"reservar desde RESERVED", inventory.OpReserve, entity.ProductStatusReserved, entity.ProductStatusReserved, 10, domain.ErrProductNotAvailable},
		{"reservar desde SOLD", inventory.OpReserve, entity.ProductStatusSold, entity.ProductStatusSold, 10, domain.ErrProductNotAvailable},
		{"anular desde RESERVED", inventory.OpUnreserve, entity.ProductStatusReserved, entity.ProductStatusInStock, 11, nil},
		{"anular desde IN_STOCK", inventory.OpUnreserve, entity.ProductStatusInStock, entity.ProductStatusInStock, 10, domain.ErrProductNotAvailable},
		{"anular desde SOLD", inventory.OpUnreserve, entity.ProductStatusSold, entity.ProductStatusSold, 10, domain.ErrProductNotAvailable},
		{"vender desde IN_STOCK", inventory.OpSell, entity.ProductStatusInStock, entity.ProductStatusSold, 9, nil},
		{"vender desde RESERVED descuenta otra vez", inventory.OpSell, entity.ProductStatusReserved, entity.ProductStatusSold, 9, nil},
		{"vender desde SOLD", inventory.OpSell, entity.ProductStatusSold, entity.ProductStatusSold, 10, domain.ErrProductNotAvailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stock := &entity.Stock{ID: 1, Quantity: 10}
			product := &entity.Product{ID: 1, SerialNo: "1", Status: tt.from, StockID: 1}

			err := inventory.Apply(tt.op, product, stock)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, domain.ErrConflict)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantStatus, product.Status)
			assert.Equal(t, tt.wantQty, stock.Quantity)
		})
	}
}

func TestApply_OperacionDesconocida(t *testing.T) {
	stock := &entity.Stock{ID: 1, Quantity: 3}
	product := entity.NewProduct(1, "A")
	err := inventory.Apply("transfer", product, stock)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, entity.ProductStatusInStock, product.Status)
	assert.Equal(t, 3, stock.Quantity)
}

func TestApply_StockAjeno(t *testing.T) {
	stock := &entity.Stock{ID: 2, Quantity: 3}
	product := entity.NewProduct(1, "A")
	require.Error(t, inventory.Apply(inventory.OpReserve, product, stock))
	assert.Equal(t, entity.ProductStatusInStock, product.Status)
	assert.Equal(t, 3, stock.Quantity)
}

func TestCanApply(t *testing.T) {
	assert.True(t, inventory.CanApply(inventory.OpSell, entity.ProductStatusReserved))
	assert.False(t, inventory.CanApply(inventory.OpUnreserve, entity.ProductStatusSold))
	assert.False(t, inventory.CanApply("otra", entity.ProductStatusInStock))
}
