package entity

// ProductStatus estado del ciclo de vida de un producto.
type ProductStatus string

const (
	ProductStatusInStock  ProductStatus = "IN_STOCK"
	ProductStatusReserved ProductStatus = "RESERVED"
	ProductStatusSold     ProductStatus = "SOLD"
)

// Valid indica si el estado es uno de los conocidos.
func (s ProductStatus) Valid() bool {
	switch s {
	case ProductStatusInStock, ProductStatusReserved, ProductStatusSold:
		return true
	}
	return false
}

// Product es una unidad rastreable con número de serie único (clave de negocio).
// Guarda el ID del stock dueño en lugar de una referencia; el producto nunca cambia de stock.
type Product struct {
	ID       int
	SerialNo string
	Status   ProductStatus
	StockID  int
}

// NewProduct crea un producto IN_STOCK perteneciente a stockID.
func NewProduct(stockID int, serialNo string) *Product {
	return &Product{
		SerialNo: serialNo,
		Status:   ProductStatusInStock,
		StockID:  stockID,
	}
}
