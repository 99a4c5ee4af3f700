package repository

import "github.com/jhoicas/Patrimonio-api/internal/domain/entity"

// MovimentacaoRepository porto de persistência para Movimentacao (somente
// criação e leitura; movimentações nunca são alteradas).
type MovimentacaoRepository interface {
	Create(mov *entity.Movimentacao) error
	List(limit, offset int) ([]*entity.Movimentacao, error)
	ListByBem(bemID string) ([]*entity.Movimentacao, error)
}
