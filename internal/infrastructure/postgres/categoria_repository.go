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

var _ repository.CategoriaRepository = (*CategoriaRepo)(nil)

// CategoriaRepo adaptador de persistência para categorias e subcategorias.
type CategoriaRepo struct {
	q Querier
}

func NewCategoriaRepository(q Querier) *CategoriaRepo {
	return &CategoriaRepo{q: q}
}

func (r *CategoriaRepo) Create(c *entity.Categoria) error {
	query := `
		INSERT INTO categorias (id, nome, vida_util_padrao_meses, criado_em, atualizado_em)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Nome, c.VidaUtilPadraoMeses, c.CriadoEm, c.AtualizadoEm,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert categoria: %w", err)
	}
	return nil
}

func (r *CategoriaRepo) GetByID(id string) (*entity.Categoria, error) {
	query := `SELECT id, nome, vida_util_padrao_meses, criado_em, atualizado_em FROM categorias WHERE id = $1`
	var c entity.Categoria
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Nome, &c.VidaUtilPadraoMeses, &c.CriadoEm, &c.AtualizadoEm,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get categoria: %w", err)
	}
	return &c, nil
}

func (r *CategoriaRepo) List() ([]*entity.Categoria, error) {
	query := `SELECT id, nome, vida_util_padrao_meses, criado_em, atualizado_em FROM categorias ORDER BY nome`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list categorias: %w", err)
	}
	defer rows.Close()

	var list []*entity.Categoria
	for rows.Next() {
		var c entity.Categoria
		if err := rows.Scan(&c.ID, &c.Nome, &c.VidaUtilPadraoMeses, &c.CriadoEm, &c.AtualizadoEm); err != nil {
			return nil, fmt.Errorf("scan categoria: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

func (r *CategoriaRepo) CreateSubcategoria(s *entity.Subcategoria) error {
	query := `
		INSERT INTO subcategorias (id, categoria_id, nome, criado_em)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query, s.ID, s.CategoriaID, s.Nome, s.CriadoEm)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNaoEncontrado
		}
		return fmt.Errorf("insert subcategoria: %w", err)
	}
	return nil
}

func (r *CategoriaRepo) GetSubcategoriaByID(id string) (*entity.Subcategoria, error) {
	query := `SELECT id, categoria_id, nome, criado_em FROM subcategorias WHERE id = $1`
	var s entity.Subcategoria
	err := r.q.QueryRow(context.Background(), query, id).Scan(&s.ID, &s.CategoriaID, &s.Nome, &s.CriadoEm)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get subcategoria: %w", err)
	}
	return &s, nil
}

func (r *CategoriaRepo) ListSubcategorias(categoriaID string) ([]*entity.Subcategoria, error) {
	query := `SELECT id, categoria_id, nome, criado_em FROM subcategorias WHERE categoria_id = $1 ORDER BY nome`
	rows, err := r.q.Query(context.Background(), query, categoriaID)
	if err != nil {
		return nil, fmt.Errorf("list subcategorias: %w", err)
	}
	defer rows.Close()

	var list []*entity.Subcategoria
	for rows.Next() {
		var s entity.Subcategoria
		if err := rows.Scan(&s.ID, &s.CategoriaID, &s.Nome, &s.CriadoEm); err != nil {
			return nil, fmt.Errorf("scan subcategoria: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
