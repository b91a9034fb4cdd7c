package entity

import "github.com/shopspring/decimal"

// Stock representa un grupo de inventario con sus metadatos y el contador de unidades disponibles.
// Quantity se mantiene de forma incremental: alta de productos y transiciones lo ajustan, nunca se recalcula.
type Stock struct {
	ID               int
	Name             string
	ShortDescription string
	LongDescription  string
	Price            decimal.Decimal
	Quantity         int
}

// AdjustQuantity suma delta (positivo o negativo) al contador de unidades.
func (s *Stock) AdjustQuantity(delta int) {
	s.Quantity += delta
}
