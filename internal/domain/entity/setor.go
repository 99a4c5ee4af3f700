package entity

import "time"

// Setor é um nó da hierarquia organizacional (unidade/prédio/andar/setor).
// CRUD simples de dados de referência; os bens apontam para o nó folha.
type Setor struct {
	ID           string
	Nome         string
	Sigla        string
	PaiID        *string // nulo para nós raiz (unidades)
	CentroCusto  string
	Responsavel  string
	Ativo        bool
	CriadoEm     time.Time
	AtualizadoEm time.Time
}
