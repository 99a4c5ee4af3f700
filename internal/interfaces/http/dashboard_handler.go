package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Patrimonio-api/internal/application/usecase"
)

// DashboardHandler agregados do painel.
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler constrói o handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Resumo godoc
// @Summary      Painel: contagens por situação, totais por setor e valor total
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Resumo(c *fiber.Ctx) error {
	out, err := h.uc.Resumo()
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}
