package repository

import "github.com/shopspring/decimal"

// ContagemSituacao total de bens em uma situação.
type ContagemSituacao struct {
	Situacao string
	Total    int
}

// ResumoSetor totais de um setor para o painel.
type ResumoSetor struct {
	SetorID        string
	SetorNome      string
	TotalBens      int
	ValorAquisicao decimal.Decimal
}

// DashboardRepository consultas agregadas somente leitura para o painel.
type DashboardRepository interface {
	ContagemPorSituacao() ([]ContagemSituacao, error)
	ResumoPorSetor() ([]ResumoSetor, error)
	ValorTotalAtivo() (decimal.Decimal, error)
}
