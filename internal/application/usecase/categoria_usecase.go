package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Patrimonio-api/internal/application/dto"
	"github.com/jhoicas/Patrimonio-api/internal/domain"
	"github.com/jhoicas/Patrimonio-api/internal/domain/entity"
	"github.com/jhoicas/Patrimonio-api/internal/domain/repository"
)

// CategoriaUseCase CRUD de categorias e subcategorias.
type CategoriaUseCase struct {
	repo repository.CategoriaRepository
}

// NewCategoriaUseCase constrói o caso de uso.
func NewCategoriaUseCase(repo repository.CategoriaRepository) *CategoriaUseCase {
	return &CategoriaUseCase{repo: repo}
}

// Criar cadastra uma categoria.
func (uc *CategoriaUseCase) Criar(in dto.CriarCategoriaRequest) (*dto.CategoriaResponse, error) {
	if in.Nome == "" {
		return nil, domain.ErrEntradaInvalida
	}
	c := &entity.Categoria{
		ID:                  uuid.New().String(),
		Nome:                in.Nome,
		VidaUtilPadraoMeses: in.VidaUtilPadraoMeses,
		CriadoEm:            time.Now(),
		AtualizadoEm:        time.Now(),
	}
	if err := uc.repo.Create(c); err != nil {
		return nil, err
	}
	return toCategoriaResponse(c), nil
}

// Listar lista todas as categorias.
func (uc *CategoriaUseCase) Listar() ([]dto.CategoriaResponse, error) {
	categorias, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoriaResponse, 0, len(categorias))
	for _, c := range categorias {
		out = append(out, *toCategoriaResponse(c))
	}
	return out, nil
}

// CriarSubcategoria cadastra uma subcategoria; a categoria deve existir.
func (uc *CategoriaUseCase) CriarSubcategoria(in dto.CriarSubcategoriaRequest) (*dto.SubcategoriaResponse, error) {
	if in.Nome == "" || in.CategoriaID == "" {
		return nil, domain.ErrEntradaInvalida
	}
	categoria, err := uc.repo.GetByID(in.CategoriaID)
	if err != nil {
		return nil, err
	}
	if categoria == nil {
		return nil, domain.ErrNaoEncontrado
	}
	s := &entity.Subcategoria{
		ID:          uuid.New().String(),
		CategoriaID: in.CategoriaID,
		Nome:        in.Nome,
		CriadoEm:    time.Now(),
	}
	if err := uc.repo.CreateSubcategoria(s); err != nil {
		return nil, err
	}
	return &dto.SubcategoriaResponse{ID: s.ID, CategoriaID: s.CategoriaID, Nome: s.Nome}, nil
}

// ListarSubcategorias lista as subcategorias de uma categoria.
func (uc *CategoriaUseCase) ListarSubcategorias(categoriaID string) ([]dto.SubcategoriaResponse, error) {
	subs, err := uc.repo.ListSubcategorias(categoriaID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SubcategoriaResponse, 0, len(subs))
	for _, s := range subs {
		out = append(out, dto.SubcategoriaResponse{ID: s.ID, CategoriaID: s.CategoriaID, Nome: s.Nome})
	}
	return out, nil
}

func toCategoriaResponse(c *entity.Categoria) *dto.CategoriaResponse {
	return &dto.CategoriaResponse{
		ID:                  c.ID,
		Nome:                c.Nome,
		VidaUtilPadraoMeses: c.VidaUtilPadraoMeses,
		CriadoEm:            c.CriadoEm,
	}
}
