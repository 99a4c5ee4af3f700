package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Patrimonio-api/internal/domain"
	"github.com/jhoicas/Patrimonio-api/internal/domain/entity"
	"github.com/jhoicas/Patrimonio-api/internal/domain/repository"
)

var _ repository.MovimentacaoRepository = (*MovimentacaoRepo)(nil)

const colunasMovimentacao = `id, bem_id, tipo, setor_origem_id, setor_destino_id,
	data_movimentacao, data_prevista_devolucao, observacoes, criado_em, criado_por`

// MovimentacaoRepo adaptador de persistência para movimentações (registros
// imutáveis: só INSERT e SELECT).
type MovimentacaoRepo struct {
	q Querier
}

// NewMovimentacaoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewMovimentacaoRepository(q Querier) *MovimentacaoRepo {
	return &MovimentacaoRepo{q: q}
}

// Create persiste uma movimentação.
func (r *MovimentacaoRepo) Create(mov *entity.Movimentacao) error {
	query := `
		INSERT INTO movimentacoes (id, bem_id, tipo, setor_origem_id, setor_destino_id,
			data_movimentacao, data_prevista_devolucao, observacoes, criado_em, criado_por)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		mov.ID, mov.BemID, mov.Tipo, mov.SetorOrigemID, mov.SetorDestinoID,
		mov.DataMovimentacao, mov.DataPrevistaDevolucao, mov.Observacoes, mov.CriadoEm, mov.CriadoPor,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNaoEncontrado
		}
		return fmt.Errorf("insert movimentacao: %w", err)
	}
	return nil
}

// List lista movimentações em ordem decrescente de data.
func (r *MovimentacaoRepo) List(limit, offset int) ([]*entity.Movimentacao, error) {
	query := `SELECT ` + colunasMovimentacao + ` FROM movimentacoes ORDER BY data_movimentacao DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movimentacoes: %w", err)
	}
	defer rows.Close()
	return scanMovimentacoes(rows)
}

// ListByBem lista as movimentações de um bem.
func (r *MovimentacaoRepo) ListByBem(bemID string) ([]*entity.Movimentacao, error) {
	query := `SELECT ` + colunasMovimentacao + ` FROM movimentacoes WHERE bem_id = $1 ORDER BY data_movimentacao DESC`
	rows, err := r.q.Query(context.Background(), query, bemID)
	if err != nil {
		return nil, fmt.Errorf("list movimentacoes por bem: %w", err)
	}
	defer rows.Close()
	return scanMovimentacoes(rows)
}

func scanMovimentacoes(rows pgx.Rows) ([]*entity.Movimentacao, error) {
	var list []*entity.Movimentacao
	for rows.Next() {
		var m entity.Movimentacao
		if err := rows.Scan(&m.ID, &m.BemID, &m.Tipo, &m.SetorOrigemID, &m.SetorDestinoID,
			&m.DataMovimentacao, &m.DataPrevistaDevolucao, &m.Observacoes, &m.CriadoEm, &m.CriadoPor); err != nil {
			return nil, fmt.Errorf("scan movimentacao: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
