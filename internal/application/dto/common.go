package dto

import (
	"strings"

	"github.com/jhoicas/stock-api/internal/domain/repository"
)

// Valores por defecto del listado /stocks.
const (
	DefaultPage      = 0
	DefaultPageCount = 10
	DefaultOrder     = "ASC"
	DefaultSort      = "name"
)

// PageQuery parámetros de paginación de /stocks.
type PageQuery struct {
	Page  int    `query:"page"`
	Count int    `query:"count"`
	Order string `query:"order"`
	Sort  string `query:"sort"`
}

// ToPageRequest aplica defaults a Order/Sort vacíos y construye el PageRequest del repositorio.
func (q PageQuery) ToPageRequest() repository.PageRequest {
	order := q.Order
	if strings.TrimSpace(order) == "" {
		order = DefaultOrder
	}
	sort := q.Sort
	if strings.TrimSpace(sort) == "" {
		sort = DefaultSort
	}
	return repository.NewPageRequest(q.Page, q.Count, sort, order)
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Fields  []FieldError `json:"fields,omitempty"`
}

// FieldError error de validación de un campo del payload.
type FieldError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}
