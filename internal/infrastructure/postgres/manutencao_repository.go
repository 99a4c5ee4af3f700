package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Patrimonio-api/internal/domain"
	"github.com/jhoicas/Patrimonio-api/internal/domain/entity"
	"github.com/jhoicas/Patrimonio-api/internal/domain/repository"
)

var _ repository.ManutencaoRepository = (*ManutencaoRepo)(nil)

const colunasManutencao = `id, bem_id, tipo, data_inicio, data_fim, custo,
	fornecedor_id, observacoes, criado_em, atualizado_em, criado_por`

// ManutencaoRepo adaptador de persistência para manutenções.
type ManutencaoRepo struct {
	q Querier
}

// NewManutencaoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewManutencaoRepository(q Querier) *ManutencaoRepo {
	return &ManutencaoRepo{q: q}
}

// Create persiste a abertura de uma manutenção.
func (r *ManutencaoRepo) Create(m *entity.Manutencao) error {
	query := `
		INSERT INTO manutencoes (id, bem_id, tipo, data_inicio, data_fim, custo,
			fornecedor_id, observacoes, criado_em, atualizado_em, criado_por)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.BemID, m.Tipo, m.DataInicio, m.DataFim, m.Custo,
		m.FornecedorID, m.Observacoes, m.CriadoEm, m.AtualizadoEm, m.CriadoPor,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNaoEncontrado
		}
		return fmt.Errorf("insert manutencao: %w", err)
	}
	return nil
}

// GetByID obtém uma manutenção por ID.
func (r *ManutencaoRepo) GetByID(id string) (*entity.Manutencao, error) {
	query := `SELECT ` + colunasManutencao + ` FROM manutencoes WHERE id = $1`
	var m entity.Manutencao
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.BemID, &m.Tipo, &m.DataInicio, &m.DataFim, &m.Custo,
		&m.FornecedorID, &m.Observacoes, &m.CriadoEm, &m.AtualizadoEm, &m.CriadoPor,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get manutencao: %w", err)
	}
	return &m, nil
}

// Update aplica o patch sobre a mesma linha (fechamento e ajustes).
func (r *ManutencaoRepo) Update(m *entity.Manutencao) error {
	query := `
		UPDATE manutencoes SET data_fim = $2, custo = $3, fornecedor_id = $4,
			observacoes = $5, atualizado_em = $6
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		m.ID, m.DataFim, m.Custo, m.FornecedorID, m.Observacoes, m.AtualizadoEm,
	)
	if err != nil {
		return fmt.Errorf("update manutencao: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNaoEncontrado
	}
	return nil
}

// ListByBem lista as manutenções de um bem, mais recentes primeiro.
func (r *ManutencaoRepo) ListByBem(bemID string) ([]*entity.Manutencao, error) {
	query := `SELECT ` + colunasManutencao + ` FROM manutencoes WHERE bem_id = $1 ORDER BY data_inicio DESC`
	rows, err := r.q.Query(context.Background(), query, bemID)
	if err != nil {
		return nil, fmt.Errorf("list manutencoes: %w", err)
	}
	defer rows.Close()

	var list []*entity.Manutencao
	for rows.Next() {
		var m entity.Manutencao
		if err := rows.Scan(&m.ID, &m.BemID, &m.Tipo, &m.DataInicio, &m.DataFim, &m.Custo,
			&m.FornecedorID, &m.Observacoes, &m.CriadoEm, &m.AtualizadoEm, &m.CriadoPor); err != nil {
			return nil, fmt.Errorf("scan manutencao: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
