package repository

import (
	"fmt"
	"math"
	"strings"

	"github.com/jhoicas/stock-api/internal/domain"
)

// SortDirection dirección de ordenamiento de un listado.
type SortDirection string

const (
	SortAsc  SortDirection = "ASC"
	SortDesc SortDirection = "DESC"
)

// StockSortColumns campos de ordenamiento admitidos (nombre JSON -> columna).
var StockSortColumns = map[string]string{
	"id":               "id",
	"name":             "name",
	"shortDescription": "short_description",
	"longDescription":  "long_description",
	"price":            "price",
	"quantity":         "quantity",
}

// PageRequest paginación con orden: Page empieza en 0.
type PageRequest struct {
	Page      int
	Size      int
	SortField string
	Direction SortDirection
}

// NewPageRequest normaliza la dirección (acepta asc/desc en cualquier caso).
func NewPageRequest(page, size int, sortField, direction string) PageRequest {
	return PageRequest{
		Page:      page,
		Size:      size,
		SortField: sortField,
		Direction: SortDirection(strings.ToUpper(strings.TrimSpace(direction))),
	}
}

// Validate rechaza página negativa, tamaño < 1, offset fuera de rango, campo o dirección desconocidos.
func (p PageRequest) Validate() error {
	if p.Page < 0 {
		return fmt.Errorf("page debe ser >= 0: %w", domain.ErrInvalidInput)
	}
	if p.Size < 1 {
		return fmt.Errorf("count debe ser >= 1: %w", domain.ErrInvalidInput)
	}
	if p.Page > math.MaxInt/p.Size {
		return fmt.Errorf("page %d fuera de rango para count %d: %w", p.Page, p.Size, domain.ErrInvalidInput)
	}
	if _, ok := StockSortColumns[p.SortField]; !ok {
		return fmt.Errorf("campo de orden %q no admitido: %w", p.SortField, domain.ErrInvalidInput)
	}
	if p.Direction != SortAsc && p.Direction != SortDesc {
		return fmt.Errorf("dirección %q no admitida: %w", p.Direction, domain.ErrInvalidInput)
	}
	return nil
}

// Offset filas a saltar.
func (p PageRequest) Offset() int {
	return p.Page * p.Size
}

// SortColumn columna SQL ya validada; vacío si el campo no está admitido.
func (p PageRequest) SortColumn() string {
	return StockSortColumns[p.SortField]
}
