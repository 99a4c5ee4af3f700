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

var _ repository.InventarioRepository = (*InventarioRepo)(nil)

const colunasItem = `id, inventario_id, bem_id, conferido, data_conferencia, divergencia, conferido_por, criado_em`

// InventarioRepo adaptador de persistência para inventários e itens. A tabela
// de itens tem constraint única no par (inventario_id, bem_id).
type InventarioRepo struct {
	q Querier
}

// NewInventarioRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewInventarioRepository(q Querier) *InventarioRepo {
	return &InventarioRepo{q: q}
}

// Create persiste um inventário.
func (r *InventarioRepo) Create(inv *entity.Inventario) error {
	query := `
		INSERT INTO inventarios (id, descricao, tipo, status, data_inicio, data_fim, criado_em, criado_por)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		inv.ID, inv.Descricao, inv.Tipo, inv.Status, inv.DataInicio, inv.DataFim, inv.CriadoEm, inv.CriadoPor,
	)
	if err != nil {
		return fmt.Errorf("insert inventario: %w", err)
	}
	return nil
}

// GetByID obtém um inventário por ID.
func (r *InventarioRepo) GetByID(id string) (*entity.Inventario, error) {
	query := `
		SELECT id, descricao, tipo, status, data_inicio, data_fim, criado_em, criado_por
		FROM inventarios WHERE id = $1`
	var inv entity.Inventario
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&inv.ID, &inv.Descricao, &inv.Tipo, &inv.Status, &inv.DataInicio, &inv.DataFim, &inv.CriadoEm, &inv.CriadoPor,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventario: %w", err)
	}
	return &inv, nil
}

// Fechar marca o inventário como FECHADO. O predicado de status torna o
// fechamento idempotente no banco: uma segunda tentativa não afeta linha.
func (r *InventarioRepo) Fechar(id string, dataFim time.Time) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE inventarios SET status = $2, data_fim = $3 WHERE id = $1 AND status = $4`,
		id, entity.InventarioFechado, dataFim, entity.InventarioAberto,
	)
	if err != nil {
		return fmt.Errorf("fechar inventario: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrInventarioFechado
	}
	return nil
}

// List lista inventários, mais recentes primeiro.
func (r *InventarioRepo) List(limit, offset int) ([]*entity.Inventario, error) {
	query := `
		SELECT id, descricao, tipo, status, data_inicio, data_fim, criado_em, criado_por
		FROM inventarios ORDER BY data_inicio DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list inventarios: %w", err)
	}
	defer rows.Close()

	var list []*entity.Inventario
	for rows.Next() {
		var inv entity.Inventario
		if err := rows.Scan(&inv.ID, &inv.Descricao, &inv.Tipo, &inv.Status, &inv.DataInicio,
			&inv.DataFim, &inv.CriadoEm, &inv.CriadoPor); err != nil {
			return nil, fmt.Errorf("scan inventario: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}

// CreateItem inscreve um bem em um inventário. Par duplicado vira
// domain.ErrDuplicado.
func (r *InventarioRepo) CreateItem(item *entity.ItemInventario) error {
	query := `
		INSERT INTO inventario_itens (id, inventario_id, bem_id, conferido, data_conferencia, divergencia, conferido_por, criado_em)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.InventarioID, item.BemID, item.Conferido, item.DataConferencia,
		item.Divergencia, item.ConferidoPor, item.CriadoEm,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNaoEncontrado
		}
		return fmt.Errorf("insert item inventario: %w", err)
	}
	return nil
}

// CreateItensLote insere um lote de itens em um único statement multi-row
// (inscrição em massa).
func (r *InventarioRepo) CreateItensLote(itens []*entity.ItemInventario) error {
	if len(itens) == 0 {
		return nil
	}
	values := make([]string, 0, len(itens))
	args := make([]any, 0, len(itens)*5)
	idx := 1
	for _, item := range itens {
		values = append(values, fmt.Sprintf("($%d, $%d, $%d, false, $%d)", idx, idx+1, idx+2, idx+3))
		args = append(args, item.ID, item.InventarioID, item.BemID, item.CriadoEm)
		idx += 4
	}
	query := `
		INSERT INTO inventario_itens (id, inventario_id, bem_id, conferido, criado_em)
		VALUES ` + strings.Join(values, ", ")
	if _, err := r.q.Exec(context.Background(), query, args...); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert itens inventario: %w", err)
	}
	return nil
}

// GetItemByID obtém um item por ID.
func (r *InventarioRepo) GetItemByID(id string) (*entity.ItemInventario, error) {
	query := `SELECT ` + colunasItem + ` FROM inventario_itens WHERE id = $1`
	return r.scanItem(r.q.QueryRow(context.Background(), query, id))
}

// GetItemByPar obtém um item pelo par inventário/bem.
func (r *InventarioRepo) GetItemByPar(inventarioID, bemID string) (*entity.ItemInventario, error) {
	query := `SELECT ` + colunasItem + ` FROM inventario_itens WHERE inventario_id = $1 AND bem_id = $2`
	return r.scanItem(r.q.QueryRow(context.Background(), query, inventarioID, bemID))
}

// UpdateItem sobrescreve os campos de conferência de um item.
func (r *InventarioRepo) UpdateItem(item *entity.ItemInventario) error {
	query := `
		UPDATE inventario_itens SET conferido = $2, data_conferencia = $3, divergencia = $4, conferido_por = $5
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		item.ID, item.Conferido, item.DataConferencia, item.Divergencia, item.ConferidoPor,
	)
	if err != nil {
		return fmt.Errorf("update item inventario: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNaoEncontrado
	}
	return nil
}

// ListItens lista os itens de um inventário.
func (r *InventarioRepo) ListItens(inventarioID string) ([]*entity.ItemInventario, error) {
	query := `SELECT ` + colunasItem + ` FROM inventario_itens WHERE inventario_id = $1 ORDER BY criado_em`
	rows, err := r.q.Query(context.Background(), query, inventarioID)
	if err != nil {
		return nil, fmt.Errorf("list itens inventario: %w", err)
	}
	defer rows.Close()

	var list []*entity.ItemInventario
	for rows.Next() {
		var item entity.ItemInventario
		if err := rows.Scan(&item.ID, &item.InventarioID, &item.BemID, &item.Conferido,
			&item.DataConferencia, &item.Divergencia, &item.ConferidoPor, &item.CriadoEm); err != nil {
			return nil, fmt.Errorf("scan item inventario: %w", err)
		}
		list = append(list, &item)
	}
	return list, rows.Err()
}

func (r *InventarioRepo) scanItem(row pgx.Row) (*entity.ItemInventario, error) {
	var item entity.ItemInventario
	err := row.Scan(&item.ID, &item.InventarioID, &item.BemID, &item.Conferido,
		&item.DataConferencia, &item.Divergencia, &item.ConferidoPor, &item.CriadoEm)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan item inventario: %w", err)
	}
	return &item, nil
}
