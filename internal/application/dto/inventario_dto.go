package dto

import "time"

// AbrirInventarioRequest abertura de campanha de inventário. Tipo GERAL
// inscreve todos os bens ativos na mesma transação; MANUAL abre vazio.
type AbrirInventarioRequest struct {
	Descricao  string     `json:"descricao"`
	Tipo       string     `json:"tipo"` // GERAL | MANUAL
	DataInicio *time.Time `json:"dataInicio"`
}

// AdicionarItemRequest inscrição individual de um bem em um inventário.
type AdicionarItemRequest struct {
	InventarioID string  `json:"inventarioId"`
	BemID        string  `json:"bemId"`
	Divergencia  *string `json:"divergencia"`
}

// ConferirItemRequest atualização parcial da conferência física. Chamadas
// repetidas apenas sobrescrevem os campos (idempotente na prática).
type ConferirItemRequest struct {
	Conferido       *bool      `json:"conferido"`
	DataConferencia *time.Time `json:"dataConferencia"`
	Divergencia     *string    `json:"divergencia"`
}

// InventarioResponse representação de um inventário.
type InventarioResponse struct {
	ID         string     `json:"id"`
	Descricao  string     `json:"descricao"`
	Tipo       string     `json:"tipo"`
	Status     string     `json:"status"`
	DataInicio time.Time  `json:"dataInicio"`
	DataFim    *time.Time `json:"dataFim,omitempty"`
	TotalItens int        `json:"totalItens"`
}

// ItemInventarioResponse item com a classificação derivada do momento da
// leitura (ENCONTRADO, NAO_ENCONTRADO, DIVERGENTE, PENDENTE).
type ItemInventarioResponse struct {
	ID              string     `json:"id"`
	InventarioID    string     `json:"inventarioId"`
	BemID           string     `json:"bemId"`
	Conferido       bool       `json:"conferido"`
	DataConferencia *time.Time `json:"dataConferencia,omitempty"`
	Divergencia     *string    `json:"divergencia,omitempty"`
	ConferidoPor    *string    `json:"conferidoPor,omitempty"`
	Classificacao   string     `json:"classificacao"`
}

// ItensInventarioResponse itens de um inventário com progresso agregado.
type ItensInventarioResponse struct {
	Itens     []ItemInventarioResponse `json:"itens"`
	Total     int                      `json:"total"`
	Progresso float64                  `json:"progresso"` // fração conferida em [0,1]
}
