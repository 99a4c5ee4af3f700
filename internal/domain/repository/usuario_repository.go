package repository

import "github.com/jhoicas/Patrimonio-api/internal/domain/entity"

// UsuarioRepository porto de persistência para usuários.
type UsuarioRepository interface {
	Create(u *entity.Usuario) error
	GetByID(id string) (*entity.Usuario, error)
	GetByEmail(email string) (*entity.Usuario, error)
}
