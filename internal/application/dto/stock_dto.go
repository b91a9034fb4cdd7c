package dto

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-api/internal/domain/entity"
)

func init() {
	// price viaja como número JSON, no como string.
	decimal.MarshalJSONWithoutQuotes = true
}

// StockRequest entrada para crear o actualizar un stock.
// Los punteros permiten distinguir un campo ausente de un valor cero.
type StockRequest struct {
	ID               *int             `json:"id"`
	Name             *string          `json:"name"`
	ShortDescription *string          `json:"shortDescription"`
	LongDescription  *string          `json:"longDescription"`
	Price            *decimal.Decimal `json:"price"`
	Quantity         *int             `json:"quantity"`
}

// Validate comprueba presencia y rango de los campos obligatorios.
func (r StockRequest) Validate() []FieldError {
	errs := []FieldError{}
	if r.Name == nil || strings.TrimSpace(*r.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Description: "name es requerido"})
	}
	if r.ShortDescription == nil || strings.TrimSpace(*r.ShortDescription) == "" {
		errs = append(errs, FieldError{Field: "shortDescription", Description: "shortDescription es requerido"})
	}
	if r.LongDescription == nil || strings.TrimSpace(*r.LongDescription) == "" {
		errs = append(errs, FieldError{Field: "longDescription", Description: "longDescription es requerido"})
	}
	if r.Price == nil {
		errs = append(errs, FieldError{Field: "price", Description: "price es requerido"})
	} else if r.Price.IsNegative() {
		errs = append(errs, FieldError{Field: "price", Description: "price no puede ser negativo"})
	}
	if r.Quantity == nil {
		errs = append(errs, FieldError{Field: "quantity", Description: "quantity es requerido"})
	} else if *r.Quantity < 0 {
		errs = append(errs, FieldError{Field: "quantity", Description: "quantity no puede ser negativo"})
	}
	return errs
}

// ToEntity construye la entidad; llamar solo tras Validate sin errores.
func (r StockRequest) ToEntity() *entity.Stock {
	s := &entity.Stock{
		Name:             strings.TrimSpace(*r.Name),
		ShortDescription: strings.TrimSpace(*r.ShortDescription),
		LongDescription:  strings.TrimSpace(*r.LongDescription),
		Price:            *r.Price,
		Quantity:         *r.Quantity,
	}
	if r.ID != nil {
		s.ID = *r.ID
	}
	return s
}

// StockResponse salida de un stock con sus productos.
type StockResponse struct {
	ID               int               `json:"id"`
	Name             string            `json:"name"`
	ShortDescription string            `json:"shortDescription"`
	LongDescription  string            `json:"longDescription"`
	Price            decimal.Decimal   `json:"price"`
	Quantity         int               `json:"quantity"`
	Products         []ProductResponse `json:"products"`
}

// NewStockResponse mapea el stock y sus productos.
func NewStockResponse(s *entity.Stock, products []*entity.Product) *StockResponse {
	return &StockResponse{
		ID:               s.ID,
		Name:             s.Name,
		ShortDescription: s.ShortDescription,
		LongDescription:  s.LongDescription,
		Price:            s.Price,
		Quantity:         s.Quantity,
		Products:         NewProductResponses(products),
	}
}
