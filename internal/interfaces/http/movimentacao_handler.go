package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Patrimonio-api/internal/application/dto"
	"github.com/jhoicas/Patrimonio-api/internal/application/patrimonio"
)

// MovimentacaoHandler trata transferências, empréstimos e devoluções.
type MovimentacaoHandler struct {
	uc *patrimonio.MovimentacaoUseCase
}

// NewMovimentacaoHandler constrói o handler.
func NewMovimentacaoHandler(uc *patrimonio.MovimentacaoUseCase) *MovimentacaoHandler {
	return &MovimentacaoHandler{uc: uc}
}

// Registrar godoc
// @Summary      Registrar movimentação (transferência, empréstimo ou devolução)
// @Tags         movimentacoes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistrarMovimentacaoRequest  true  "Dados da movimentação"
// @Success      201   {object}  dto.MovimentacaoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/movimentacoes [post]
func (h *MovimentacaoHandler) Registrar(c *fiber.Ctx) error {
	var in dto.RegistrarMovimentacaoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Registrar(c.Context(), GetUserID(c), in)
	if err != nil {
		return responderErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Listar godoc
// @Summary      Listar movimentações
// @Tags         movimentacoes
// @Security     Bearer
// @Produce      json
// @Param        page   query  int  false  "Página"  default(1)
// @Param        limit  query  int  false  "Limite"  default(20)
// @Success      200  {object}  dto.MovimentacaoListResponse
// @Router       /api/movimentacoes [get]
func (h *MovimentacaoHandler) Listar(c *fiber.Ctx) error {
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

// ListarPorBem godoc
// @Summary      Movimentações de um bem
// @Tags         movimentacoes
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do bem"
// @Success      200  {array}  dto.MovimentacaoResponse
// @Router       /api/bens/{id}/movimentacoes [get]
func (h *MovimentacaoHandler) ListarPorBem(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é requerido"})
	}
	out, err := h.uc.ListarPorBem(id)
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}
