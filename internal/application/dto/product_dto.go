package dto

import "github.com/jhoicas/stock-api/internal/domain/entity"

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID       int    `json:"id"`
	SerialNo string `json:"serialNo"`
	Status   string `json:"status"`
	StockID  int    `json:"stockId"`
}

// AddProductsRequest alta de varios seriales en un stock.
type AddProductsRequest struct {
	Serials []string `json:"serials"`
}

// NewProductResponse mapea la entidad a su representación JSON.
func NewProductResponse(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:       p.ID,
		SerialNo: p.SerialNo,
		Status:   string(p.Status),
		StockID:  p.StockID,
	}
}

// NewProductResponses mapea una lista; nunca devuelve nil.
func NewProductResponses(list []*entity.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, NewProductResponse(p))
	}
	return out
}
