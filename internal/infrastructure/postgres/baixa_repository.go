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

var _ repository.BaixaRepository = (*BaixaRepo)(nil)

// BaixaRepo adaptador de persistência para baixas. A tabela tem constraint
// única em bem_id: é ela que garante "no máximo uma baixa por bem" sob
// concorrência, não o pré-check do use case.
type BaixaRepo struct {
	q Querier
}

// NewBaixaRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewBaixaRepository(q Querier) *BaixaRepo {
	return &BaixaRepo{q: q}
}

// Create persiste a baixa. Violação da constraint única em bem_id vira
// domain.ErrDuplicado.
func (r *BaixaRepo) Create(b *entity.Baixa) error {
	query := `
		INSERT INTO baixas (id, bem_id, motivo, data_baixa, valor_realizado, observacoes, criado_em, criado_por)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		b.ID, b.BemID, b.Motivo, b.DataBaixa, b.ValorRealizado, b.Observacoes, b.CriadoEm, b.CriadoPor,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNaoEncontrado
		}
		return fmt.Errorf("insert baixa: %w", err)
	}
	return nil
}

// GetByBem obtém a baixa de um bem, se existir.
func (r *BaixaRepo) GetByBem(bemID string) (*entity.Baixa, error) {
	query := `
		SELECT id, bem_id, motivo, data_baixa, valor_realizado, observacoes, criado_em, criado_por
		FROM baixas WHERE bem_id = $1`
	var b entity.Baixa
	err := r.q.QueryRow(context.Background(), query, bemID).Scan(
		&b.ID, &b.BemID, &b.Motivo, &b.DataBaixa, &b.ValorRealizado, &b.Observacoes, &b.CriadoEm, &b.CriadoPor,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get baixa: %w", err)
	}
	return &b, nil
}
