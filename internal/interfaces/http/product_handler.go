package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-api/internal/application/dto"
	"github.com/jhoicas/stock-api/internal/application/inventory"
)

// ProductHandler maneja las peticiones HTTP del ciclo de vida de productos.
type ProductHandler struct {
	uc *inventory.StockUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *inventory.StockUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// GetBySerial godoc
// @Summary      Obtener producto por serial
// @Tags         products
// @Produce      json
// @Param        serial  path  string  true  "Número de serie"
// @Success      200     {object}  dto.ProductResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /product/{serial} [get]
func (h *ProductHandler) GetBySerial(c *fiber.Ctx) error {
	serial, err := pathSerial(c)
	if err != nil {
		return badRequest(c, "INVALID_SERIAL", "serial mal codificado")
	}
	p, err := h.uc.GetProduct(c.UserContext(), serial)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewProductResponse(p))
}

// Sell godoc
// @Summary      Vender producto
// @Description  IN_STOCK o RESERVED pasa a SOLD y descuenta 1 al stock.
// @Tags         products
// @Param        serial  path  string  true  "Número de serie"
// @Success      200
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /product/sell/{serial} [put]
func (h *ProductHandler) Sell(c *fiber.Ctx) error {
	serial, err := pathSerial(c)
	if err != nil {
		return badRequest(c, "INVALID_SERIAL", "serial mal codificado")
	}
	if err := h.uc.SellProduct(c.UserContext(), serial); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusOK)
}

// Reserve godoc
// @Summary      Reservar producto
// @Tags         products
// @Param        serial  path  string  true  "Número de serie"
// @Success      200
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /product/reserve/{serial} [put]
func (h *ProductHandler) Reserve(c *fiber.Ctx) error {
	serial, err := pathSerial(c)
	if err != nil {
		return badRequest(c, "INVALID_SERIAL", "serial mal codificado")
	}
	if err := h.uc.ReserveProduct(c.UserContext(), serial); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusOK)
}

// Unreserve godoc
// @Summary      Anular reserva de producto
// @Tags         products
// @Param        serial  path  string  true  "Número de serie"
// @Success      200
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /product/unreserve/{serial} [put]
func (h *ProductHandler) Unreserve(c *fiber.Ctx) error {
	serial, err := pathSerial(c)
	if err != nil {
		return badRequest(c, "INVALID_SERIAL", "serial mal codificado")
	}
	if err := h.uc.UnReserveProduct(c.UserContext(), serial); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusOK)
}

// ListByStock godoc
// @Summary      Listar productos de un stock
// @Tags         products
// @Produce      json
// @Param        idstock  path  int  true  "ID del stock"
// @Success      200      {array}   dto.ProductResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Router       /stock/{idstock}/products [get]
func (h *ProductHandler) ListByStock(c *fiber.Ctx) error {
	stockID, err := pathInt(c, "idstock")
	if err != nil {
		return badRequest(c, "INVALID_ID", "idstock debe ser numérico")
	}
	list, err := h.uc.GetProducts(c.UserContext(), stockID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewProductResponses(list))
}

// AddToStock godoc
// @Summary      Agregar producto a un stock
// @Tags         products
// @Produce      json
// @Param        idstock  path  int     true  "ID del stock"
// @Param        serial   path  string  true  "Número de serie"
// @Success      200      {object}  dto.ProductResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Failure      409      {object}  dto.ErrorResponse
// @Router       /stock/{idstock}/{serial} [put]
func (h *ProductHandler) AddToStock(c *fiber.Ctx) error {
	stockID, err := pathInt(c, "idstock")
	if err != nil {
		return badRequest(c, "INVALID_ID", "idstock debe ser numérico")
	}
	serial, err := pathSerial(c)
	if err != nil {
		return badRequest(c, "INVALID_SERIAL", "serial mal codificado")
	}
	p, err := h.uc.AddProduct(c.UserContext(), stockID, serial)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewProductResponse(p))
}

// AddMany godoc
// @Summary      Agregar varios productos a un stock
// @Description  Se agregan en orden; el primer error corta el resto sin revertir los ya agregados.
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        idstock  path  int                     true  "ID del stock"
// @Param        body     body  dto.AddProductsRequest  true  "Seriales"
// @Success      200      {array}   dto.ProductResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Failure      409      {object}  dto.ErrorResponse
// @Router       /stock/{idstock}/products [post]
func (h *ProductHandler) AddMany(c *fiber.Ctx) error {
	stockID, err := pathInt(c, "idstock")
	if err != nil {
		return badRequest(c, "INVALID_ID", "idstock debe ser numérico")
	}
	var in dto.AddProductsRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if len(in.Serials) == 0 {
		return validationFailed(c, []dto.FieldError{{Field: "serials", Description: "serials es requerido"}})
	}
	added, err := h.uc.AddProducts(c.UserContext(), stockID, in.Serials)
	if err != nil {
		requestLogger(c).Warn().Int("agregados", len(added)).Err(err).Msg("alta múltiple interrumpida")
		return writeError(c, err)
	}
	return c.JSON(dto.NewProductResponses(added))
}
