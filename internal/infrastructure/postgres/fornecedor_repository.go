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

var _ repository.FornecedorRepository = (*FornecedorRepo)(nil)

const colunasFornecedor = `id, nome, cnpj, email, telefone, ativo, criado_em, atualizado_em`

// FornecedorRepo adaptador de persistência para fornecedores.
type FornecedorRepo struct {
	q Querier
}

func NewFornecedorRepository(q Querier) *FornecedorRepo {
	return &FornecedorRepo{q: q}
}

func (r *FornecedorRepo) Create(f *entity.Fornecedor) error {
	query := `
		INSERT INTO fornecedores (` + colunasFornecedor + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		f.ID, f.Nome, f.CNPJ, f.Email, f.Telefone, f.Ativo, f.CriadoEm, f.AtualizadoEm,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert fornecedor: %w", err)
	}
	return nil
}

func (r *FornecedorRepo) GetByID(id string) (*entity.Fornecedor, error) {
	query := `SELECT ` + colunasFornecedor + ` FROM fornecedores WHERE id = $1`
	var f entity.Fornecedor
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&f.ID, &f.Nome, &f.CNPJ, &f.Email, &f.Telefone, &f.Ativo, &f.CriadoEm, &f.AtualizadoEm,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get fornecedor: %w", err)
	}
	return &f, nil
}

func (r *FornecedorRepo) List(limit, offset int) ([]*entity.Fornecedor, error) {
	query := `SELECT ` + colunasFornecedor + ` FROM fornecedores ORDER BY nome LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list fornecedores: %w", err)
	}
	defer rows.Close()

	var list []*entity.Fornecedor
	for rows.Next() {
		var f entity.Fornecedor
		if err := rows.Scan(&f.ID, &f.Nome, &f.CNPJ, &f.Email, &f.Telefone,
			&f.Ativo, &f.CriadoEm, &f.AtualizadoEm); err != nil {
			return nil, fmt.Errorf("scan fornecedor: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}

func (r *FornecedorRepo) Update(f *entity.Fornecedor) error {
	query := `
		UPDATE fornecedores SET nome = $2, cnpj = $3, email = $4, telefone = $5,
			ativo = $6, atualizado_em = $7
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		f.ID, f.Nome, f.CNPJ, f.Email, f.Telefone, f.Ativo, f.AtualizadoEm,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("update fornecedor: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNaoEncontrado
	}
	return nil
}
