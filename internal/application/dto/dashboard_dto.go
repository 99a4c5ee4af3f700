package dto

import "github.com/shopspring/decimal"

// ContagemSituacaoDTO total de bens por situação.
type ContagemSituacaoDTO struct {
	Situacao string `json:"situacao"`
	Total    int    `json:"total"`
}

// ResumoSetorDTO totais por setor.
type ResumoSetorDTO struct {
	SetorID        string          `json:"setorId"`
	SetorNome      string          `json:"setorNome"`
	TotalBens      int             `json:"totalBens"`
	ValorAquisicao decimal.Decimal `json:"valorAquisicao"`
}

// DashboardResponse agregados do painel.
type DashboardResponse struct {
	PorSituacao []ContagemSituacaoDTO `json:"porSituacao"`
	PorSetor    []ResumoSetorDTO      `json:"porSetor"`
	ValorTotal  decimal.Decimal       `json:"valorTotal"`
}
