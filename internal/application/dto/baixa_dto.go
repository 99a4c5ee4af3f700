package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegistrarBaixaRequest dados para a baixa (irreversível) de um bem.
type RegistrarBaixaRequest struct {
	BemID          string           `json:"bemId"`
	Motivo         string           `json:"motivo"`
	DataBaixa      *time.Time       `json:"dataBaixa"`
	ValorRealizado *decimal.Decimal `json:"valorRealizado"`
	Observacoes    string           `json:"observacoes"`
}

// BaixaResponse representação de uma baixa.
type BaixaResponse struct {
	ID             string           `json:"id"`
	BemID          string           `json:"bemId"`
	Motivo         string           `json:"motivo"`
	DataBaixa      time.Time        `json:"dataBaixa"`
	ValorRealizado *decimal.Decimal `json:"valorRealizado,omitempty"`
	Observacoes    string           `json:"observacoes,omitempty"`
	CriadoPor      string           `json:"criadoPor"`
}
