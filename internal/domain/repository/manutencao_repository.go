package repository

import "github.com/jhoicas/Patrimonio-api/internal/domain/entity"

// ManutencaoRepository porto de persistência para Manutencao. Update cobre o
// fechamento: a mesma linha recebe data de fim, custo e observações.
type ManutencaoRepository interface {
	Create(m *entity.Manutencao) error
	GetByID(id string) (*entity.Manutencao, error)
	Update(m *entity.Manutencao) error
	ListByBem(bemID string) ([]*entity.Manutencao, error)
}
