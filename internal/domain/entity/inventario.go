package entity

import "time"

// Status e tipos de inventário. FECHADO é terminal: não há reabertura.
const (
	InventarioAberto  = "ABERTO"
	InventarioFechado = "FECHADO"

	InventarioGeral  = "GERAL"  // inscreve todos os bens ativos na abertura
	InventarioManual = "MANUAL" // abre vazio; itens adicionados um a um
)

// Inventario é uma campanha de conferência física. Criado ABERTO, transiciona
// uma única vez para FECHADO.
type Inventario struct {
	ID         string
	Descricao  string
	Tipo       string
	Status     string
	DataInicio time.Time
	DataFim    *time.Time
	CriadoEm   time.Time
	CriadoPor  string
}

// ItemInventario vincula um bem a um inventário (par inventário/bem único).
// Divergencia não nula indica discrepância entre o esperado e o encontrado.
// A classificação do item (encontrado/pendente/...) é derivada, nunca gravada.
type ItemInventario struct {
	ID              string
	InventarioID    string
	BemID           string
	Conferido       bool
	DataConferencia *time.Time
	Divergencia     *string
	ConferidoPor    *string
	CriadoEm        time.Time
}
