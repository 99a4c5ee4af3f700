package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Patrimonio-api/internal/application/dto"
	"github.com/jhoicas/Patrimonio-api/internal/application/patrimonio"
)

// BemHandler trata as requisições HTTP do cadastro de bens (protegido).
type BemHandler struct {
	uc *patrimonio.BemUseCase
}

// NewBemHandler constrói o handler.
func NewBemHandler(uc *patrimonio.BemUseCase) *BemHandler {
	return &BemHandler{uc: uc}
}

// Criar godoc
// @Summary      Cadastrar bem patrimonial
// @Tags         bens
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CriarBemRequest  true  "Dados do bem"
// @Success      201   {object}  dto.BemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/bens [post]
func (h *BemHandler) Criar(c *fiber.Ctx) error {
	var in dto.CriarBemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Criar(GetUserID(c), in)
	if err != nil {
		return responderErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// BuscarPorID godoc
// @Summary      Obter bem por ID
// @Tags         bens
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do bem"
// @Success      200  {object}  dto.BemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/bens/{id} [get]
func (h *BemHandler) BuscarPorID(c *fiber.Ctx) error {
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

// Listar godoc
// @Summary      Listar bens
// @Tags         bens
// @Security     Bearer
// @Produce      json
// @Param        page               query  int     false  "Página"   default(1)
// @Param        limit              query  int     false  "Limite"   default(20)
// @Param        setorId            query  string  false  "Filtra por setor"
// @Param        situacao           query  string  false  "Filtra por situação"
// @Param        numeroPatrimonial  query  string  false  "Busca parcial pelo número"
// @Success      200  {object}  dto.BemListResponse
// @Router       /api/bens [get]
func (h *BemHandler) Listar(c *fiber.Ctx) error {
	var in dto.FiltroBensRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parâmetros de consulta inválidos"})
	}
	out, err := h.uc.Listar(in)
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// Atualizar godoc
// @Summary      Atualizar bem (parcial)
// @Tags         bens
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do bem"
// @Param        body  body  dto.AtualizarBemRequest  true  "Campos a atualizar"
// @Success      200   {object}  dto.BemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/bens/{id} [patch]
func (h *BemHandler) Atualizar(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é requerido"})
	}
	var in dto.AtualizarBemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Atualizar(id, GetUserID(c), in)
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// Excluir godoc
// @Summary      Excluir bem (soft delete)
// @Tags         bens
// @Security     Bearer
// @Param        id  path  string  true  "ID do bem"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/bens/{id} [delete]
func (h *BemHandler) Excluir(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é requerido"})
	}
	if err := h.uc.Excluir(id, GetUserID(c)); err != nil {
		return responderErro(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Historico godoc
// @Summary      Histórico de auditoria do bem
// @Tags         bens
// @Security     Bearer
// @Produce      json
// @Param        id     path   string  true   "ID do bem"
// @Param        limit  query  int     false  "Máximo de registros"  default(50)
// @Success      200  {array}  dto.RegistroAuditoriaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/bens/{id}/historico [get]
func (h *BemHandler) Historico(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é requerido"})
	}
	limit := c.QueryInt("limit", 0)
	out, err := h.uc.Historico(id, limit)
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}
