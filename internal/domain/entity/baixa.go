package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Motivos de baixa aceitos.
const (
	BaixaInservivel = "INSERVIVEL"
	BaixaExtravio   = "EXTRAVIO"
	BaixaDoacao     = "DOACAO"
	BaixaVenda      = "VENDA"
	BaixaSinistro   = "SINISTRO"
)

// Baixa é a retirada irreversível de um bem do patrimônio. No máximo uma por
// bem: a garantia real é a constraint única em bem_id no banco, o use case só
// antecipa o erro.
type Baixa struct {
	ID             string
	BemID          string
	Motivo         string
	DataBaixa      time.Time
	ValorRealizado *decimal.Decimal // valor obtido em venda/leilão, se houver
	Observacoes    string
	CriadoEm       time.Time
	CriadoPor      string
}

// MotivoBaixaValido informa se m é um motivo conhecido.
func MotivoBaixaValido(m string) bool {
	switch m {
	case BaixaInservivel, BaixaExtravio, BaixaDoacao, BaixaVenda, BaixaSinistro:
		return true
	}
	return false
}
