package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/gestor-irrigacion/internal/application/dto"
	"github.com/jhoicas/gestor-irrigacion/internal/application/purchasing"
	"github.com/jhoicas/gestor-irrigacion/pkg/validation"
)

// PurchaseOrderHandler maneja las peticiones HTTP de Órdenes de Compra (protegido).
type PurchaseOrderHandler struct {
	create   *purchasing.CreatePurchaseOrderUseCase
	draft    *purchasing.DraftUseCase
	query    *purchasing.OrderQueryUseCase
	summary  *purchasing.SummaryUseCase
	document *purchasing.DocumentUseCase
}

// NewPurchaseOrderHandler construye el handler.
func NewPurchaseOrderHandler(
	create *purchasing.CreatePurchaseOrderUseCase,
	draft *purchasing.DraftUseCase,
	query *purchasing.OrderQueryUseCase,
	summary *purchasing.SummaryUseCase,
	document *purchasing.DocumentUseCase,
) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{create: create, draft: draft, query: query, summary: summary, document: document}
}

// Draft godoc
// @Summary      Borrador de OC: numeración sugerida, totales y monto en letras
// @Description  No reserva numeración ni persiste nada; los números se recalculan al confirmar.
// @Tags         purchase-orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.PrepareDraftRequest  true  "expediente, renglones opcionales, condición IVA"
// @Success      200   {object}  dto.DraftResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/purchase-orders/draft [post]
func (h *PurchaseOrderHandler) Draft(c *fiber.Ctx) error {
	var in dto.PrepareDraftRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := validation.Struct(in); err != nil {
		return orderInputError(c, err)
	}
	out, err := h.draft.PrepareDraft(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear OC con renglones (numeración, tipo de contratación, IVA y monto en letras)
// @Tags         purchase-orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreatePurchaseOrderRequest  true  "cabecera y renglones"
// @Success      201   {object}  dto.PurchaseOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/purchase-orders [post]
func (h *PurchaseOrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePurchaseOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := validation.Struct(in); err != nil {
		return orderInputError(c, err)
	}
	res, err := h.create.CreatePurchaseOrder(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(res.Response())
}

// List godoc
// @Summary      Listar OC (fecha y pedido_nro descendente)
// @Tags         purchase-orders
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query  int  false  "máximo 100"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {object}  dto.PurchaseOrderListResponse
// @Router       /api/purchase-orders [get]
func (h *PurchaseOrderHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_INPUT", Message: "limit/offset inválidos"})
	}
	page.DefaultPage()
	if err := validation.Struct(page); err != nil {
		return writeError(c, err)
	}
	out, err := h.query.ListPurchaseOrders(c.Context(), page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Summary godoc
// @Summary      Resumen anual por tipo de contratación
// @Tags         purchase-orders
// @Produce      json
// @Security     BearerAuth
// @Param        year  query  int  false  "año calendario (por defecto el actual)"
// @Success      200   {object}  dto.PurchasingSummaryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/purchase-orders/summary [get]
func (h *PurchaseOrderHandler) Summary(c *fiber.Ctx) error {
	year := c.QueryInt("year", 0)
	out, err := h.summary.Summary(c.Context(), year)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener OC con renglones y monto en letras
// @Tags         purchase-orders
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID de la OC"
// @Success      200  {object}  dto.PurchaseOrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/purchase-orders/{id} [get]
func (h *PurchaseOrderHandler) GetByID(c *fiber.Ctx) error {
	res, err := h.query.GetPurchaseOrder(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(res.Response())
}

// Document godoc
// @Summary      Descargar la OC como PDF o planilla XLSX
// @Tags         purchase-orders
// @Produce      application/pdf
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     BearerAuth
// @Param        id           path   string  true   "ID de la OC"
// @Param        format       query  string  false  "pdf (por defecto) o xlsx"
// @Param        supplier_id  query  string  false  "proveedor a imprimir en el documento"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/purchase-orders/{id}/document [get]
func (h *PurchaseOrderHandler) Document(c *fiber.Ctx) error {
	doc, err := h.document.ExportDocument(c.Context(), c.Params("id"), c.Query("supplier_id"), c.Query("format"))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, doc.ContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+doc.Filename+`"`)
	return c.Send(doc.Content)
}
