package dto

import "time"

// RegistrarMovimentacaoRequest dados de um evento de movimentação.
// TRANSFERENCIA exige SetorDestinoID; DataPrevistaDevolucao só faz sentido em
// EMPRESTIMO.
type RegistrarMovimentacaoRequest struct {
	BemID                 string     `json:"bemId"`
	Tipo                  string     `json:"tipo"`
	SetorDestinoID        *string    `json:"setorDestinoId"`
	DataPrevistaDevolucao *time.Time `json:"dataPrevistaDevolucao"`
	Observacoes           string     `json:"observacoes"`
}

// MovimentacaoResponse representação de uma movimentação.
type MovimentacaoResponse struct {
	ID                    string     `json:"id"`
	BemID                 string     `json:"bemId"`
	Tipo                  string     `json:"tipo"`
	SetorOrigemID         *string    `json:"setorOrigemId,omitempty"`
	SetorDestinoID        *string    `json:"setorDestinoId,omitempty"`
	DataMovimentacao      time.Time  `json:"dataMovimentacao"`
	DataPrevistaDevolucao *time.Time `json:"dataPrevistaDevolucao,omitempty"`
	Observacoes           string     `json:"observacoes,omitempty"`
	CriadoPor             string     `json:"criadoPor"`
}

// MovimentacaoListResponse página de movimentações.
type MovimentacaoListResponse struct {
	Movimentacoes []MovimentacaoResponse `json:"movimentacoes"`
	Meta          PageResponse           `json:"meta"`
}
