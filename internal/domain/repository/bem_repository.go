package repository

import (
	"time"

	"github.com/jhoicas/Patrimonio-api/internal/domain/entity"
)

// FiltroBens filtros e paginação para listagem de bens.
type FiltroBens struct {
	SetorID           string
	Situacao          string
	NumeroPatrimonial string // busca parcial, case-insensitive
	Limit             int
	Offset            int
}

// BemRepository define o porto de persistência para Bem (DIP).
// AtualizarCampos grava apenas os campos alterados, chaveados pelo nome de
// campo do ledger (setorId, situacao, ...): o adaptador traduz para coluna.
type BemRepository interface {
	Create(bem *entity.Bem) error
	GetByID(id string) (*entity.Bem, error)
	GetByNumeroPatrimonial(numero string) (*entity.Bem, error)
	List(filtro FiltroBens) ([]*entity.Bem, int, error)
	ListAtivos() ([]*entity.Bem, error)
	AtualizarCampos(id string, campos map[string]any, quando time.Time) error
	SoftDelete(id string, quando time.Time) error
}
