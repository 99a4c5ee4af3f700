package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Patrimonio-api/internal/application/dto"
	"github.com/jhoicas/Patrimonio-api/internal/domain"
	"github.com/jhoicas/Patrimonio-api/internal/domain/entity"
	"github.com/jhoicas/Patrimonio-api/internal/domain/repository"
)

// FornecedorUseCase CRUD de fornecedores de manutenção.
type FornecedorUseCase struct {
	repo repository.FornecedorRepository
}

// NewFornecedorUseCase constrói o caso de uso.
func NewFornecedorUseCase(repo repository.FornecedorRepository) *FornecedorUseCase {
	return &FornecedorUseCase{repo: repo}
}

// Criar cadastra um fornecedor. ErrDuplicado se o CNPJ já existe.
func (uc *FornecedorUseCase) Criar(in dto.CriarFornecedorRequest) (*dto.FornecedorResponse, error) {
	if in.Nome == "" || in.CNPJ == "" {
		return nil, domain.ErrEntradaInvalida
	}
	now := time.Now()
	f := &entity.Fornecedor{
		ID:           uuid.New().String(),
		Nome:         in.Nome,
		CNPJ:         in.CNPJ,
		Email:        in.Email,
		Telefone:     in.Telefone,
		Ativo:        true,
		CriadoEm:     now,
		AtualizadoEm: now,
	}
	if err := uc.repo.Create(f); err != nil {
		return nil, err
	}
	return toFornecedorResponse(f), nil
}

// BuscarPorID obtém um fornecedor.
func (uc *FornecedorUseCase) BuscarPorID(id string) (*dto.FornecedorResponse, error) {
	f, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, domain.ErrNaoEncontrado
	}
	return toFornecedorResponse(f), nil
}

// Atualizar aplica uma edição parcial sobre o fornecedor. O CNPJ é imutável.
func (uc *FornecedorUseCase) Atualizar(id string, in dto.AtualizarFornecedorRequest) (*dto.FornecedorResponse, error) {
	f, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, domain.ErrNaoEncontrado
	}
	if in.Nome != nil {
		if *in.Nome == "" {
			return nil, domain.ErrEntradaInvalida
		}
		f.Nome = *in.Nome
	}
	if in.Email != nil {
		f.Email = *in.Email
	}
	if in.Telefone != nil {
		f.Telefone = *in.Telefone
	}
	if in.Ativo != nil {
		f.Ativo = *in.Ativo
	}
	f.AtualizadoEm = time.Now()
	if err := uc.repo.Update(f); err != nil {
		return nil, err
	}
	return toFornecedorResponse(f), nil
}

// Listar lista fornecedores.
func (uc *FornecedorUseCase) Listar(page dto.PageRequest) ([]dto.FornecedorResponse, error) {
	page.Normalizar()
	fornecedores, err := uc.repo.List(page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	out := make([]dto.FornecedorResponse, 0, len(fornecedores))
	for _, f := range fornecedores {
		out = append(out, *toFornecedorResponse(f))
	}
	return out, nil
}

func toFornecedorResponse(f *entity.Fornecedor) *dto.FornecedorResponse {
	return &dto.FornecedorResponse{
		ID:       f.ID,
		Nome:     f.Nome,
		CNPJ:     f.CNPJ,
		Email:    f.Email,
		Telefone: f.Telefone,
		Ativo:    f.Ativo,
	}
}
