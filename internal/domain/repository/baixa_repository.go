package repository

import "github.com/jhoicas/Patrimonio-api/internal/domain/entity"

// BaixaRepository porto de persistência para Baixa. Create traduz a violação
// da constraint única em bem_id para domain.ErrDuplicado — é ela, e não o
// pré-check do use case, que garante "no máximo uma baixa por bem".
type BaixaRepository interface {
	Create(b *entity.Baixa) error
	GetByBem(bemID string) (*entity.Baixa, error)
}
