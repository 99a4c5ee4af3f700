package repository

import "github.com/jhoicas/Patrimonio-api/internal/domain/entity"

// SetorRepository porto de persistência para a hierarquia organizacional.
type SetorRepository interface {
	Create(s *entity.Setor) error
	GetByID(id string) (*entity.Setor, error)
	List(limit, offset int) ([]*entity.Setor, error)
	Update(s *entity.Setor) error
}
