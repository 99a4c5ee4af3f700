package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Patrimonio-api/internal/application/dto"
	"github.com/jhoicas/Patrimonio-api/internal/application/usecase"
)

// SetorHandler trata a hierarquia de setores (dados de referência).
type SetorHandler struct {
	uc *usecase.SetorUseCase
}

// NewSetorHandler constrói o handler.
func NewSetorHandler(uc *usecase.SetorUseCase) *SetorHandler {
	return &SetorHandler{uc: uc}
}

// Criar godoc
// @Summary      Cadastrar setor
// @Tags         setores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CriarSetorRequest  true  "Dados do setor"
// @Success      201   {object}  dto.SetorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/setores [post]
func (h *SetorHandler) Criar(c *fiber.Ctx) error {
	var in dto.CriarSetorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Criar(in)
	if err != nil {
		return responderErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// BuscarPorID godoc
// @Summary      Obter setor por ID
// @Tags         setores
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do setor"
// @Success      200  {object}  dto.SetorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/setores/{id} [get]
func (h *SetorHandler) BuscarPorID(c *fiber.Ctx) error {
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

// Atualizar godoc
// @Summary      Atualizar setor
// @Tags         setores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do setor"
// @Param        body  body  dto.AtualizarSetorRequest  true  "Campos a atualizar"
// @Success      200  {object}  dto.SetorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/setores/{id} [put]
func (h *SetorHandler) Atualizar(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é requerido"})
	}
	var in dto.AtualizarSetorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Atualizar(id, in)
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// Listar godoc
// @Summary      Listar setores
// @Tags         setores
// @Security     Bearer
// @Produce      json
// @Param        page   query  int  false  "Página"  default(1)
// @Param        limit  query  int  false  "Limite"  default(20)
// @Success      200  {array}  dto.SetorResponse
// @Router       /api/setores [get]
func (h *SetorHandler) Listar(c *fiber.Ctx) error {
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
