package repository

import "github.com/jhoicas/Patrimonio-api/internal/domain/entity"

// FornecedorRepository porto de persistência para fornecedores.
type FornecedorRepository interface {
	Create(f *entity.Fornecedor) error
	GetByID(id string) (*entity.Fornecedor, error)
	List(limit, offset int) ([]*entity.Fornecedor, error)
	Update(f *entity.Fornecedor) error
}
