package patrimonio_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Patrimonio-api/internal/domain/patrimonio"
)

func ptr(s string) *string { return &s }

func TestClassificarItem(t *testing.T) {
	casos := []struct {
		nome        string
		conferido   bool
		divergencia *string
		esperado    string
	}{
		{"não conferido sem divergência", false, nil, patrimonio.ItemPendente},
		{"não conferido com divergência continua pendente", false, ptr("etiqueta danificada"), patrimonio.ItemPendente},
		{"conferido sem divergência", true, nil, patrimonio.ItemEncontrado},
		{"conferido com divergência vazia", true, ptr("   "), patrimonio.ItemEncontrado},
		{"conferido com divergência textual", true, ptr("número da série não confere"), patrimonio.ItemDivergente},
		{"marcador com acento", true, ptr("Bem NÃO ENCONTRADO no setor"), patrimonio.ItemNaoEncontrado},
		{"marcador sem acento", true, ptr("nao encontrado durante a varredura"), patrimonio.ItemNaoEncontrado},
	}

	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			assert.Equal(t, c.esperado, patrimonio.ClassificarItem(c.conferido, c.divergencia))
		})
	}
}

func TestProgresso(t *testing.T) {
	assert.Equal(t, 0.0, patrimonio.Progresso(0, 0), "inventário vazio conta como zero")
	assert.Equal(t, 0.0, patrimonio.Progresso(10, 0))
	assert.Equal(t, 0.5, patrimonio.Progresso(10, 5))
	assert.Equal(t, 1.0, patrimonio.Progresso(10, 10))
}
