package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Patrimonio-api/internal/application/dto"
	"github.com/jhoicas/Patrimonio-api/internal/application/usecase"
)

// CategoriaHandler trata categorias e subcategorias de bens.
type CategoriaHandler struct {
	uc *usecase.CategoriaUseCase
}

// NewCategoriaHandler constrói o handler.
func NewCategoriaHandler(uc *usecase.CategoriaUseCase) *CategoriaHandler {
	return &CategoriaHandler{uc: uc}
}

// Criar godoc
// @Summary      Cadastrar categoria
// @Tags         categorias
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CriarCategoriaRequest  true  "Dados da categoria"
// @Success      201   {object}  dto.CategoriaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/categorias [post]
func (h *CategoriaHandler) Criar(c *fiber.Ctx) error {
	var in dto.CriarCategoriaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Criar(in)
	if err != nil {
		return responderErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Listar godoc
// @Summary      Listar categorias
// @Tags         categorias
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CategoriaResponse
// @Router       /api/categorias [get]
func (h *CategoriaHandler) Listar(c *fiber.Ctx) error {
	out, err := h.uc.Listar()
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// CriarSubcategoria godoc
// @Summary      Cadastrar subcategoria
// @Tags         categorias
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da categoria"
// @Param        body  body  dto.CriarSubcategoriaRequest  true  "Dados da subcategoria"
// @Success      201   {object}  dto.SubcategoriaResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/categorias/{id}/subcategorias [post]
func (h *CategoriaHandler) CriarSubcategoria(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é requerido"})
	}
	var in dto.CriarSubcategoriaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	in.CategoriaID = id
	out, err := h.uc.CriarSubcategoria(in)
	if err != nil {
		return responderErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListarSubcategorias godoc
// @Summary      Subcategorias de uma categoria
// @Tags         categorias
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID da categoria"
// @Success      200  {array}  dto.SubcategoriaResponse
// @Router       /api/categorias/{id}/subcategorias [get]
func (h *CategoriaHandler) ListarSubcategorias(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é requerido"})
	}
	out, err := h.uc.ListarSubcategorias(id)
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}
