package patrimonio

import (
	"time"

	"github.com/shopspring/decimal"
)

// ValorAtual calcula o valor depreciado de um bem na data de referência usando
// depreciação linear mensal: valorAquisicao * (1 - mesesDecorridos/vidaUtil),
// com piso em zero. Vida útil não positiva devolve o valor de aquisição.
func ValorAtual(valorAquisicao decimal.Decimal, dataAquisicao time.Time, vidaUtilMeses int, referencia time.Time) decimal.Decimal {
	if vidaUtilMeses <= 0 || !referencia.After(dataAquisicao) {
		return valorAquisicao
	}
	meses := mesesEntre(dataAquisicao, referencia)
	if meses >= vidaUtilMeses {
		return decimal.Zero
	}
	depreciacao := valorAquisicao.
		Mul(decimal.NewFromInt(int64(meses))).
		Div(decimal.NewFromInt(int64(vidaUtilMeses)))
	return valorAquisicao.Sub(depreciacao).Round(2)
}

// mesesEntre conta meses civis completos entre duas datas.
func mesesEntre(inicio, fim time.Time) int {
	anos := fim.Year() - inicio.Year()
	meses := int(fim.Month()) - int(inicio.Month())
	total := anos*12 + meses
	if fim.Day() < inicio.Day() {
		total--
	}
	if total < 0 {
		return 0
	}
	return total
}
