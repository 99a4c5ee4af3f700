package patrimonio_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Patrimonio-api/internal/domain/patrimonio"
)

func data(ano, mes, dia int) time.Time {
	return time.Date(ano, time.Month(mes), dia, 0, 0, 0, 0, time.UTC)
}

func TestValorAtual_DepreciacaoLinear(t *testing.T) {
	aquisicao := decimal.NewFromInt(1200)
	// 12 meses de vida útil: deprecia 100 por mês civil completo.
	dataAq := data(2024, 1, 15)

	casos := []struct {
		nome       string
		referencia time.Time
		esperado   string
	}{
		{"antes da aquisição devolve valor cheio", data(2023, 12, 1), "1200"},
		{"mesmo mês, sem mês completo", data(2024, 1, 31), "1200"},
		{"um mês completo", data(2024, 2, 15), "1100"},
		{"dia anterior ao aniversário mensal não conta", data(2024, 3, 14), "1100"},
		{"seis meses", data(2024, 7, 15), "600"},
		{"vida útil esgotada", data(2025, 1, 15), "0"},
		{"muito além da vida útil", data(2030, 6, 1), "0"},
	}

	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			got := patrimonio.ValorAtual(aquisicao, dataAq, 12, c.referencia)
			assert.True(t, got.Equal(decimal.RequireFromString(c.esperado)),
				"esperado %s, obtido %s", c.esperado, got)
		})
	}
}

func TestValorAtual_VidaUtilNaoPositiva(t *testing.T) {
	aquisicao := decimal.NewFromInt(5000)
	got := patrimonio.ValorAtual(aquisicao, data(2020, 1, 1), 0, data(2026, 1, 1))
	assert.True(t, got.Equal(aquisicao), "vida útil zero não deprecia")
}

func TestValorAtual_ArredondaDuasCasas(t *testing.T) {
	// 1000 / 36 meses não é exato; o resultado sai arredondado a 2 casas.
	got := patrimonio.ValorAtual(decimal.NewFromInt(1000), data(2024, 1, 1), 36, data(2024, 2, 1))
	assert.Equal(t, "972.22", got.StringFixed(2))
}
