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

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

const colunasUsuario = `id, email, senha_hash, nome, perfil, status, criado_em, atualizado_em`

// UsuarioRepo adaptador de persistência para usuários.
type UsuarioRepo struct {
	q Querier
}

func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

func (r *UsuarioRepo) Create(u *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (` + colunasUsuario + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		u.ID, u.Email, u.SenhaHash, u.Nome, u.Perfil, u.Status, u.CriadoEm, u.AtualizadoEm,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailJaRegistrado
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

func (r *UsuarioRepo) GetByID(id string) (*entity.Usuario, error) {
	return r.buscar(`SELECT `+colunasUsuario+` FROM usuarios WHERE id = $1`, id)
}

func (r *UsuarioRepo) GetByEmail(email string) (*entity.Usuario, error) {
	return r.buscar(`SELECT `+colunasUsuario+` FROM usuarios WHERE email = $1`, email)
}

func (r *UsuarioRepo) buscar(query string, arg any) (*entity.Usuario, error) {
	var u entity.Usuario
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&u.ID, &u.Email, &u.SenhaHash, &u.Nome, &u.Perfil, &u.Status, &u.CriadoEm, &u.AtualizadoEm,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return &u, nil
}
