package http

import (
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-api/internal/application/dto"
	"github.com/jhoicas/stock-api/internal/application/usecase"
)

// StockHandler maneja las peticiones HTTP de Stock.
type StockHandler struct {
	uc *usecase.StockCatalogUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *usecase.StockCatalogUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// Create godoc
// @Summary      Crear stock
// @Tags         stocks
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockRequest  true  "Datos del stock"
// @Success      200   {object}  dto.StockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /stock/ [put]
func (h *StockHandler) Create(c *fiber.Ctx) error {
	var in dto.StockRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if fields := in.Validate(); len(fields) > 0 {
		return validationFailed(c, fields)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar stock
// @Description  El id del payload debe coincidir con el de la ruta.
// @Tags         stocks
// @Accept       json
// @Produce      json
// @Param        idStock  path  int               true  "ID del stock"
// @Param        body     body  dto.StockRequest  true  "Nuevo estado del stock"
// @Success      200      {object}  dto.StockResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Failure      409      {object}  dto.ErrorResponse
// @Router       /stock/{idStock} [put]
func (h *StockHandler) Update(c *fiber.Ctx) error {
	id, err := pathInt(c, "idStock")
	if err != nil {
		return badRequest(c, "INVALID_ID", "idStock debe ser numérico")
	}
	var in dto.StockRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if fields := in.Validate(); len(fields) > 0 {
		return validationFailed(c, fields)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener stock por ID
// @Tags         stocks
// @Produce      json
// @Param        idStock  path  int  true  "ID del stock"
// @Success      200      {object}  dto.StockResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Router       /stock/{idStock} [get]
func (h *StockHandler) GetByID(c *fiber.Ctx) error {
	id, err := pathInt(c, "idStock")
	if err != nil {
		return badRequest(c, "INVALID_ID", "idStock debe ser numérico")
	}
	out, err := h.uc.Get(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar stocks paginados
// @Tags         stocks
// @Produce      json
// @Param        page   query  int     false  "Página (desde 0)"  default(0)
// @Param        count  query  int     false  "Tamaño de página"  default(10)
// @Param        order  query  string  false  "ASC o DESC"        default(ASC)
// @Param        sort   query  string  false  "Campo de orden"    default(name)
// @Success      200    {array}   dto.StockResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /stocks [get]
func (h *StockHandler) List(c *fiber.Ctx) error {
	q := dto.PageQuery{
		Page:  dto.DefaultPage,
		Count: dto.DefaultPageCount,
		Order: dto.DefaultOrder,
		Sort:  dto.DefaultSort,
	}
	if err := c.QueryParser(&q); err != nil {
		return badRequest(c, "INVALID_QUERY", "parámetros de paginación inválidos")
	}
	out, err := h.uc.List(c.UserContext(), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Report godoc
// @Summary      Reporte de inventario en PDF
// @Tags         stocks
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /stocks/report [get]
func (h *StockHandler) Report(c *fiber.Ctx) error {
	doc, err := h.uc.Report(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="inventario.pdf"`)
	return c.Send(doc)
}

func pathInt(c *fiber.Ctx, name string) (int, error) {
	return strconv.Atoi(c.Params(name))
}

// pathSerial decodifica el serial del path: fiber entrega los parámetros sin decodificar.
func pathSerial(c *fiber.Ctx) (string, error) {
	return url.PathUnescape(c.Params("serial"))
}
