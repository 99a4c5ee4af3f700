package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Patrimonio-api/internal/domain/entity"
	"github.com/jhoicas/Patrimonio-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas agregadas somente leitura sobre bens ativos.
type DashboardRepo struct {
	q Querier
}

func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

func (r *DashboardRepo) ContagemPorSituacao() ([]repository.ContagemSituacao, error) {
	query := `
		SELECT situacao, COUNT(*)
		FROM bens
		WHERE excluido_em IS NULL
		GROUP BY situacao
		ORDER BY situacao`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("contagem por situacao: %w", err)
	}
	defer rows.Close()

	var list []repository.ContagemSituacao
	for rows.Next() {
		var c repository.ContagemSituacao
		if err := rows.Scan(&c.Situacao, &c.Total); err != nil {
			return nil, fmt.Errorf("scan contagem: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (r *DashboardRepo) ResumoPorSetor() ([]repository.ResumoSetor, error) {
	query := `
		SELECT s.id, s.nome, COUNT(b.id), COALESCE(SUM(b.valor_aquisicao), 0)
		FROM setores s
		LEFT JOIN bens b ON b.setor_id = s.id AND b.excluido_em IS NULL AND b.situacao <> $1
		GROUP BY s.id, s.nome
		ORDER BY s.nome`
	rows, err := r.q.Query(context.Background(), query, entity.SituacaoBaixado)
	if err != nil {
		return nil, fmt.Errorf("resumo por setor: %w", err)
	}
	defer rows.Close()

	var list []repository.ResumoSetor
	for rows.Next() {
		var s repository.ResumoSetor
		if err := rows.Scan(&s.SetorID, &s.SetorNome, &s.TotalBens, &s.ValorAquisicao); err != nil {
			return nil, fmt.Errorf("scan resumo setor: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func (r *DashboardRepo) ValorTotalAtivo() (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(valor_aquisicao), 0)
		FROM bens
		WHERE excluido_em IS NULL AND situacao <> $1`
	var total decimal.Decimal
	if err := r.q.QueryRow(context.Background(), query, entity.SituacaoBaixado).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("valor total ativo: %w", err)
	}
	return total, nil
}
