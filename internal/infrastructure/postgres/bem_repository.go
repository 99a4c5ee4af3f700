package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Patrimonio-api/internal/domain"
	"github.com/jhoicas/Patrimonio-api/internal/domain/entity"
	"github.com/jhoicas/Patrimonio-api/internal/domain/repository"
)

var _ repository.BemRepository = (*BemRepo)(nil)

// colunas do update parcial, chaveadas pelo nome de campo do ledger.
var colunasBem = map[string]string{
	"descricao":         "descricao",
	"setorId":           "setor_id",
	"subcategoriaId":    "subcategoria_id",
	"valorAquisicao":    "valor_aquisicao",
	"dataAquisicao":     "data_aquisicao",
	"vidaUtilMeses":     "vida_util_meses",
	"estadoConservacao": "estado_conservacao",
	"situacao":          "situacao",
	"ativo":             "ativo",
}

const colunasBemSelect = `id, numero_patrimonial, descricao, setor_id, subcategoria_id,
	valor_aquisicao, data_aquisicao, vida_util_meses, estado_conservacao, situacao,
	ativo, excluido_em, criado_em, atualizado_em`

// BemRepo implementação do porto BemRepository sobre PostgreSQL (usável com
// pool ou tx).
type BemRepo struct {
	q Querier
}

// NewBemRepository constrói o adaptador de persistência para bens. Passar pool
// ou tx (Querier).
func NewBemRepository(q Querier) *BemRepo {
	return &BemRepo{q: q}
}

// Create persiste um novo bem. A constraint única parcial (numero_patrimonial
// entre não excluídos) vira domain.ErrDuplicado.
func (r *BemRepo) Create(bem *entity.Bem) error {
	query := `
		INSERT INTO bens (id, numero_patrimonial, descricao, setor_id, subcategoria_id,
			valor_aquisicao, data_aquisicao, vida_util_meses, estado_conservacao, situacao,
			ativo, criado_em, atualizado_em)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		bem.ID, bem.NumeroPatrimonial, bem.Descricao, bem.SetorID, bem.SubcategoriaID,
		bem.ValorAquisicao, bem.DataAquisicao, bem.VidaUtilMeses, bem.EstadoConservacao,
		bem.Situacao, bem.Ativo, bem.CriadoEm, bem.AtualizadoEm,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNaoEncontrado
		}
		return fmt.Errorf("insert bem: %w", err)
	}
	return nil
}

// GetByID obtém um bem não excluído por ID.
func (r *BemRepo) GetByID(id string) (*entity.Bem, error) {
	query := `SELECT ` + colunasBemSelect + ` FROM bens WHERE id = $1 AND excluido_em IS NULL`
	return r.scanUm(r.q.QueryRow(context.Background(), query, id))
}

// GetByNumeroPatrimonial obtém um bem não excluído pelo número patrimonial
// (comparação exata, case-sensitive).
func (r *BemRepo) GetByNumeroPatrimonial(numero string) (*entity.Bem, error) {
	query := `SELECT ` + colunasBemSelect + ` FROM bens WHERE numero_patrimonial = $1 AND excluido_em IS NULL`
	return r.scanUm(r.q.QueryRow(context.Background(), query, numero))
}

// List lista bens não excluídos com filtros e paginação. Devolve também o
// total para os metadados de página.
func (r *BemRepo) List(filtro repository.FiltroBens) ([]*entity.Bem, int, error) {
	where := []string{"excluido_em IS NULL"}
	args := []any{}
	idx := 1
	if filtro.SetorID != "" {
		where = append(where, fmt.Sprintf("setor_id = $%d", idx))
		args = append(args, filtro.SetorID)
		idx++
	}
	if filtro.Situacao != "" {
		where = append(where, fmt.Sprintf("situacao = $%d", idx))
		args = append(args, filtro.Situacao)
		idx++
	}
	if filtro.NumeroPatrimonial != "" {
		where = append(where, fmt.Sprintf("numero_patrimonial ILIKE '%%' || $%d || '%%'", idx))
		args = append(args, filtro.NumeroPatrimonial)
		idx++
	}
	cond := strings.Join(where, " AND ")

	var total int
	countQuery := `SELECT count(*) FROM bens WHERE ` + cond
	if err := r.q.QueryRow(context.Background(), countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count bens: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM bens WHERE %s ORDER BY criado_em DESC LIMIT $%d OFFSET $%d`,
		colunasBemSelect, cond, idx, idx+1)
	args = append(args, filtro.Limit, filtro.Offset)
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list bens: %w", err)
	}
	defer rows.Close()

	var list []*entity.Bem
	for rows.Next() {
		b, err := scanBem(rows)
		if err != nil {
			return nil, 0, err
		}
		list = append(list, b)
	}
	return list, total, rows.Err()
}

// ListAtivos lista todos os bens ativos e não excluídos (inscrição em massa
// de inventário).
func (r *BemRepo) ListAtivos() ([]*entity.Bem, error) {
	query := `SELECT ` + colunasBemSelect + ` FROM bens WHERE ativo = true AND excluido_em IS NULL ORDER BY numero_patrimonial`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list bens ativos: %w", err)
	}
	defer rows.Close()

	var list []*entity.Bem
	for rows.Next() {
		b, err := scanBem(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

// AtualizarCampos grava apenas os campos informados (update parcial). O nome
// de campo do ledger é traduzido para coluna; campo desconhecido é bug do
// chamador.
func (r *BemRepo) AtualizarCampos(id string, campos map[string]any, quando time.Time) error {
	if len(campos) == 0 {
		return nil
	}
	sets := make([]string, 0, len(campos)+1)
	args := []any{id}
	idx := 2
	for campo, valor := range campos {
		col, ok := colunasBem[campo]
		if !ok {
			return fmt.Errorf("campo desconhecido no update de bem: %s", campo)
		}
		sets = append(sets, fmt.Sprintf("%s = $%d", col, idx))
		args = append(args, valor)
		idx++
	}
	sets = append(sets, fmt.Sprintf("atualizado_em = $%d", idx))
	args = append(args, quando)

	query := `UPDATE bens SET ` + strings.Join(sets, ", ") + ` WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query, args...)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNaoEncontrado
		}
		return fmt.Errorf("update bem: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNaoEncontrado
	}
	return nil
}

// SoftDelete marca o bem como inativo; nunca há remoção física.
func (r *BemRepo) SoftDelete(id string, quando time.Time) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE bens SET ativo = false, excluido_em = $2, atualizado_em = $2 WHERE id = $1 AND excluido_em IS NULL`,
		id, quando,
	)
	if err != nil {
		return fmt.Errorf("soft delete bem: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNaoEncontrado
	}
	return nil
}

func (r *BemRepo) scanUm(row pgx.Row) (*entity.Bem, error) {
	b, err := scanBem(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return b, nil
}

func scanBem(row pgx.Row) (*entity.Bem, error) {
	var b entity.Bem
	err := row.Scan(
		&b.ID, &b.NumeroPatrimonial, &b.Descricao, &b.SetorID, &b.SubcategoriaID,
		&b.ValorAquisicao, &b.DataAquisicao, &b.VidaUtilMeses, &b.EstadoConservacao,
		&b.Situacao, &b.Ativo, &b.ExcluidoEm, &b.CriadoEm, &b.AtualizadoEm,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan bem: %w", err)
	}
	return &b, nil
}
