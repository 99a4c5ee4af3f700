package entity

import "time"

// Categoria agrupa subcategorias de bens e carrega a vida útil sugerida para
// novos cadastros.
type Categoria struct {
	ID                  string
	Nome                string
	VidaUtilPadraoMeses int
	CriadoEm            time.Time
	AtualizadoEm        time.Time
}

// Subcategoria é a classificação efetiva de um bem (Bem.SubcategoriaID).
type Subcategoria struct {
	ID          string
	CategoriaID string
	Nome        string
	CriadoEm    time.Time
}
