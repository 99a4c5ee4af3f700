package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Patrimonio-api/internal/application/dto"
	"github.com/jhoicas/Patrimonio-api/internal/application/patrimonio"
)

// BaixaHandler trata a baixa definitiva de bens.
type BaixaHandler struct {
	uc *patrimonio.BaixaUseCase
}

// NewBaixaHandler constrói o handler.
func NewBaixaHandler(uc *patrimonio.BaixaUseCase) *BaixaHandler {
	return &BaixaHandler{uc: uc}
}

// Registrar godoc
// @Summary      Registrar baixa (terminal; no máximo uma por bem)
// @Tags         baixas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistrarBaixaRequest  true  "Dados da baixa"
// @Success      201   {object}  dto.BaixaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/baixas [post]
func (h *BaixaHandler) Registrar(c *fiber.Ctx) error {
	var in dto.RegistrarBaixaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Registrar(c.Context(), GetUserID(c), in)
	if err != nil {
		return responderErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// BuscarPorBem godoc
// @Summary      Baixa de um bem
// @Tags         baixas
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do bem"
// @Success      200  {object}  dto.BaixaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/bens/{id}/baixa [get]
func (h *BaixaHandler) BuscarPorBem(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é requerido"})
	}
	out, err := h.uc.BuscarPorBem(id)
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}
