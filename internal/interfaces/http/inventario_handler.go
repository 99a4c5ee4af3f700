package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Patrimonio-api/internal/application/dto"
	"github.com/jhoicas/Patrimonio-api/internal/application/inventario"
)

// InventarioHandler trata campanhas de inventário e conferência de itens.
type InventarioHandler struct {
	uc *inventario.InventarioUseCase
}

// NewInventarioHandler constrói o handler.
func NewInventarioHandler(uc *inventario.InventarioUseCase) *InventarioHandler {
	return &InventarioHandler{uc: uc}
}

// Abrir godoc
// @Summary      Abrir inventário (GERAL inscreve todos os bens ativos)
// @Tags         inventarios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AbrirInventarioRequest  true  "Dados do inventário"
// @Success      201   {object}  dto.InventarioResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventarios [post]
func (h *InventarioHandler) Abrir(c *fiber.Ctx) error {
	var in dto.AbrirInventarioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Abrir(c.Context(), GetUserID(c), in)
	if err != nil {
		return responderErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Listar godoc
// @Summary      Listar inventários
// @Tags         inventarios
// @Security     Bearer
// @Produce      json
// @Param        page   query  int  false  "Página"  default(1)
// @Param        limit  query  int  false  "Limite"  default(20)
// @Success      200  {array}  dto.InventarioResponse
// @Router       /api/inventarios [get]
func (h *InventarioHandler) Listar(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parâmetros de consulta inválidos"})
	}
	out, err := h.uc.Listar(page)
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// BuscarPorID godoc
// @Summary      Obter inventário por ID
// @Tags         inventarios
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do inventário"
// @Success      200  {object}  dto.InventarioResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventarios/{id} [get]
func (h *InventarioHandler) BuscarPorID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é requerido"})
	}
	out, err := h.uc.BuscarPorID(id)
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// Fechar godoc
// @Summary      Fechar inventário (terminal; não reabre)
// @Tags         inventarios
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do inventário"
// @Success      200  {object}  dto.InventarioResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/inventarios/{id}/fechar [post]
func (h *InventarioHandler) Fechar(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é requerido"})
	}
	out, err := h.uc.Fechar(id)
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// AdicionarItem godoc
// @Summary      Inscrever bem no inventário
// @Tags         inventarios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do inventário"
// @Param        body  body  dto.AdicionarItemRequest  true  "Dados do item"
// @Success      201   {object}  dto.ItemInventarioResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventarios/{id}/itens [post]
func (h *InventarioHandler) AdicionarItem(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é requerido"})
	}
	var in dto.AdicionarItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	in.InventarioID = id
	out, err := h.uc.AdicionarItem(in)
	if err != nil {
		return responderErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListarItens godoc
// @Summary      Itens do inventário com classificação e progresso
// @Tags         inventarios
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do inventário"
// @Success      200  {object}  dto.ItensInventarioResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventarios/{id}/itens [get]
func (h *InventarioHandler) ListarItens(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é requerido"})
	}
	out, err := h.uc.ListarItens(id)
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// ConferirItem godoc
// @Summary      Registrar conferência física de um item
// @Tags         inventarios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        itemId  path  string  true  "ID do item"
// @Param        body    body  dto.ConferirItemRequest  true  "Campos da conferência"
// @Success      200     {object}  dto.ItemInventarioResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Failure      409     {object}  dto.ErrorResponse
// @Router       /api/inventarios/itens/{itemId} [patch]
func (h *InventarioHandler) ConferirItem(c *fiber.Ctx) error {
	itemID := c.Params("itemId")
	if itemID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "itemId é requerido"})
	}
	var in dto.ConferirItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.ConferirItem(itemID, GetUserID(c), in)
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// Relatorio godoc
// @Summary      Relatório do inventário em PDF
// @Tags         inventarios
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID do inventário"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventarios/{id}/relatorio [get]
func (h *InventarioHandler) Relatorio(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é requerido"})
	}
	pdf, err := h.uc.Relatorio(id)
	if err != nil {
		return responderErro(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="inventario.pdf"`)
	return c.Send(pdf)
}
