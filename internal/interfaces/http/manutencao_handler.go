package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Patrimonio-api/internal/application/dto"
	"github.com/jhoicas/Patrimonio-api/internal/application/patrimonio"
)

// ManutencaoHandler trata ordens de manutenção.
type ManutencaoHandler struct {
	uc *patrimonio.ManutencaoUseCase
}

// NewManutencaoHandler constrói o handler.
func NewManutencaoHandler(uc *patrimonio.ManutencaoUseCase) *ManutencaoHandler {
	return &ManutencaoHandler{uc: uc}
}

// Abrir godoc
// @Summary      Abrir manutenção (bem vai para EM_MANUTENCAO)
// @Tags         manutencoes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AbrirManutencaoRequest  true  "Dados da manutenção"
// @Success      201   {object}  dto.ManutencaoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/manutencoes [post]
func (h *ManutencaoHandler) Abrir(c *fiber.Ctx) error {
	var in dto.AbrirManutencaoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Abrir(c.Context(), GetUserID(c), in)
	if err != nil {
		return responderErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Atualizar godoc
// @Summary      Atualizar manutenção (fixar dataFim conclui e devolve o bem a EM_USO)
// @Tags         manutencoes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da manutenção"
// @Param        body  body  dto.AtualizarManutencaoRequest  true  "Campos a atualizar"
// @Success      200   {object}  dto.ManutencaoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/manutencoes/{id} [patch]
func (h *ManutencaoHandler) Atualizar(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é requerido"})
	}
	var in dto.AtualizarManutencaoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Atualizar(c.Context(), id, GetUserID(c), in)
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// ListarPorBem godoc
// @Summary      Manutenções de um bem
// @Tags         manutencoes
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do bem"
// @Success      200  {array}  dto.ManutencaoResponse
// @Router       /api/bens/{id}/manutencoes [get]
func (h *ManutencaoHandler) ListarPorBem(c *fiber.Ctx) error {
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
