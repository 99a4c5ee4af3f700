package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/Patrimonio-api/internal/domain/entity"
	"github.com/jhoicas/Patrimonio-api/internal/domain/repository"
)

var _ repository.AuditoriaRepository = (*AuditoriaRepo)(nil)

// AuditoriaRepo adaptador do ledger de auditoria. Append-only: só INSERT e
// SELECT; não existe UPDATE nem DELETE nesta tabela.
type AuditoriaRepo struct {
	q Querier
}

// NewAuditoriaRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewAuditoriaRepository(q Querier) *AuditoriaRepo {
	return &AuditoriaRepo{q: q}
}

// CreateLote insere as linhas do lote em um único statement multi-row.
func (r *AuditoriaRepo) CreateLote(registros []*entity.RegistroAuditoria) error {
	if len(registros) == 0 {
		return nil
	}
	values := make([]string, 0, len(registros))
	args := make([]any, 0, len(registros)*7)
	idx := 1
	for _, reg := range registros {
		values = append(values, fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			idx, idx+1, idx+2, idx+3, idx+4, idx+5, idx+6))
		args = append(args, reg.ID, reg.BemID, reg.Campo, reg.ValorAntigo, reg.ValorNovo, reg.UsuarioID, reg.CriadoEm)
		idx += 7
	}
	query := `
		INSERT INTO auditoria_bens (id, bem_id, campo, valor_antigo, valor_novo, usuario_id, criado_em)
		VALUES ` + strings.Join(values, ", ")
	if _, err := r.q.Exec(context.Background(), query, args...); err != nil {
		return fmt.Errorf("insert auditoria: %w", err)
	}
	return nil
}

// ListByBem lê o histórico de um bem em ordem decrescente de data, limitado.
func (r *AuditoriaRepo) ListByBem(bemID string, limit int) ([]*entity.RegistroAuditoria, error) {
	query := `
		SELECT id, bem_id, campo, valor_antigo, valor_novo, usuario_id, criado_em
		FROM auditoria_bens WHERE bem_id = $1 ORDER BY criado_em DESC LIMIT $2`
	rows, err := r.q.Query(context.Background(), query, bemID, limit)
	if err != nil {
		return nil, fmt.Errorf("list auditoria: %w", err)
	}
	defer rows.Close()

	var list []*entity.RegistroAuditoria
	for rows.Next() {
		var reg entity.RegistroAuditoria
		if err := rows.Scan(&reg.ID, &reg.BemID, &reg.Campo, &reg.ValorAntigo, &reg.ValorNovo, &reg.UsuarioID, &reg.CriadoEm); err != nil {
			return nil, fmt.Errorf("scan auditoria: %w", err)
		}
		list = append(list, &reg)
	}
	return list, rows.Err()
}
