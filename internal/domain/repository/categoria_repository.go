package repository

import "github.com/jhoicas/Patrimonio-api/internal/domain/entity"

// CategoriaRepository porto de persistência para categorias e subcategorias.
type CategoriaRepository interface {
	Create(c *entity.Categoria) error
	GetByID(id string) (*entity.Categoria, error)
	List() ([]*entity.Categoria, error)

	CreateSubcategoria(s *entity.Subcategoria) error
	GetSubcategoriaByID(id string) (*entity.Subcategoria, error)
	ListSubcategorias(categoriaID string) ([]*entity.Subcategoria, error)
}
