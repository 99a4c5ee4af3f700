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

var _ repository.SetorRepository = (*SetorRepo)(nil)

const colunasSetor = `id, nome, sigla, pai_id, centro_custo, responsavel, ativo, criado_em, atualizado_em`

// SetorRepo adaptador de persistência para setores (árvore via pai_id).
type SetorRepo struct {
	q Querier
}

func NewSetorRepository(q Querier) *SetorRepo {
	return &SetorRepo{q: q}
}

func (r *SetorRepo) Create(s *entity.Setor) error {
	query := `
		INSERT INTO setores (` + colunasSetor + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.Nome, s.Sigla, s.PaiID, s.CentroCusto, s.Responsavel, s.Ativo, s.CriadoEm, s.AtualizadoEm,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNaoEncontrado
		}
		return fmt.Errorf("insert setor: %w", err)
	}
	return nil
}

func (r *SetorRepo) GetByID(id string) (*entity.Setor, error) {
	query := `SELECT ` + colunasSetor + ` FROM setores WHERE id = $1`
	var s entity.Setor
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Nome, &s.Sigla, &s.PaiID, &s.CentroCusto, &s.Responsavel, &s.Ativo, &s.CriadoEm, &s.AtualizadoEm,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get setor: %w", err)
	}
	return &s, nil
}

func (r *SetorRepo) List(limit, offset int) ([]*entity.Setor, error) {
	query := `SELECT ` + colunasSetor + ` FROM setores ORDER BY nome LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list setores: %w", err)
	}
	defer rows.Close()

	var list []*entity.Setor
	for rows.Next() {
		var s entity.Setor
		if err := rows.Scan(&s.ID, &s.Nome, &s.Sigla, &s.PaiID, &s.CentroCusto,
			&s.Responsavel, &s.Ativo, &s.CriadoEm, &s.AtualizadoEm); err != nil {
			return nil, fmt.Errorf("scan setor: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

func (r *SetorRepo) Update(s *entity.Setor) error {
	query := `
		UPDATE setores SET nome = $2, sigla = $3, pai_id = $4, centro_custo = $5,
			responsavel = $6, ativo = $7, atualizado_em = $8
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		s.ID, s.Nome, s.Sigla, s.PaiID, s.CentroCusto, s.Responsavel, s.Ativo, s.AtualizadoEm,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNaoEncontrado
		}
		return fmt.Errorf("update setor: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNaoEncontrado
	}
	return nil
}
