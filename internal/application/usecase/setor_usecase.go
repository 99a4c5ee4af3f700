package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Patrimonio-api/internal/application/dto"
	"github.com/jhoicas/Patrimonio-api/internal/domain"
	"github.com/jhoicas/Patrimonio-api/internal/domain/entity"
	"github.com/jhoicas/Patrimonio-api/internal/domain/repository"
)

// SetorUseCase CRUD da hierarquia organizacional.
type SetorUseCase struct {
	repo repository.SetorRepository
}

// NewSetorUseCase constrói o caso de uso.
func NewSetorUseCase(repo repository.SetorRepository) *SetorUseCase {
	return &SetorUseCase{repo: repo}
}

// Criar cadastra um setor; PaiID, quando presente, deve existir.
func (uc *SetorUseCase) Criar(in dto.CriarSetorRequest) (*dto.SetorResponse, error) {
	if in.Nome == "" {
		return nil, domain.ErrEntradaInvalida
	}
	if in.PaiID != nil {
		pai, err := uc.repo.GetByID(*in.PaiID)
		if err != nil {
			return nil, err
		}
		if pai == nil {
			return nil, domain.ErrNaoEncontrado
		}
	}
	now := time.Now()
	s := &entity.Setor{
		ID:           uuid.New().String(),
		Nome:         in.Nome,
		Sigla:        in.Sigla,
		PaiID:        in.PaiID,
		CentroCusto:  in.CentroCusto,
		Responsavel:  in.Responsavel,
		Ativo:        true,
		CriadoEm:     now,
		AtualizadoEm: now,
	}
	if err := uc.repo.Create(s); err != nil {
		return nil, err
	}
	return toSetorResponse(s), nil
}

// BuscarPorID obtém um setor.
func (uc *SetorUseCase) BuscarPorID(id string) (*dto.SetorResponse, error) {
	s, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNaoEncontrado
	}
	return toSetorResponse(s), nil
}

// Atualizar aplica uma edição parcial sobre o setor.
func (uc *SetorUseCase) Atualizar(id string, in dto.AtualizarSetorRequest) (*dto.SetorResponse, error) {
	s, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNaoEncontrado
	}
	if in.Nome != nil {
		if *in.Nome == "" {
			return nil, domain.ErrEntradaInvalida
		}
		s.Nome = *in.Nome
	}
	if in.Sigla != nil {
		s.Sigla = *in.Sigla
	}
	if in.CentroCusto != nil {
		s.CentroCusto = *in.CentroCusto
	}
	if in.Responsavel != nil {
		s.Responsavel = *in.Responsavel
	}
	if in.Ativo != nil {
		s.Ativo = *in.Ativo
	}
	s.AtualizadoEm = time.Now()
	if err := uc.repo.Update(s); err != nil {
		return nil, err
	}
	return toSetorResponse(s), nil
}

// Listar lista setores.
func (uc *SetorUseCase) Listar(page dto.PageRequest) ([]dto.SetorResponse, error) {
	page.Normalizar()
	setores, err := uc.repo.List(page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	out := make([]dto.SetorResponse, 0, len(setores))
	for _, s := range setores {
		out = append(out, *toSetorResponse(s))
	}
	return out, nil
}

func toSetorResponse(s *entity.Setor) *dto.SetorResponse {
	return &dto.SetorResponse{
		ID:          s.ID,
		Nome:        s.Nome,
		Sigla:       s.Sigla,
		PaiID:       s.PaiID,
		CentroCusto: s.CentroCusto,
		Responsavel: s.Responsavel,
		Ativo:       s.Ativo,
	}
}
