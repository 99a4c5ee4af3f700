package patrimonio_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Patrimonio-api/internal/domain"
	"github.com/jhoicas/Patrimonio-api/internal/domain/entity"
	"github.com/jhoicas/Patrimonio-api/internal/domain/patrimonio"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tabela de transições
// ──────────────────────────────────────────────────────────────────────────────

func TestTransicionar_TabelaCompleta(t *testing.T) {
	casos := []struct {
		nome     string
		atual    string
		evento   patrimonio.Evento
		esperado string
	}{
		{"transferencia mantém EM_USO", entity.SituacaoEmUso, patrimonio.EventoTransferencia, entity.SituacaoEmUso},
		{"transferencia mantém OCIOSO", entity.SituacaoOcioso, patrimonio.EventoTransferencia, entity.SituacaoOcioso},
		{"emprestimo deixa OCIOSO", entity.SituacaoEmUso, patrimonio.EventoEmprestimo, entity.SituacaoOcioso},
		{"devolucao volta a EM_USO", entity.SituacaoOcioso, patrimonio.EventoDevolucao, entity.SituacaoEmUso},
		{"abertura de manutencao", entity.SituacaoEmUso, patrimonio.EventoManutencaoAberta, entity.SituacaoEmManutencao},
		{"conclusao de manutencao", entity.SituacaoEmManutencao, patrimonio.EventoManutencaoConcluida, entity.SituacaoEmUso},
		{"baixa de bem em uso", entity.SituacaoEmUso, patrimonio.EventoBaixa, entity.SituacaoBaixado},
		{"baixa de bem ocioso", entity.SituacaoOcioso, patrimonio.EventoBaixa, entity.SituacaoBaixado},
		{"baixa durante manutencao", entity.SituacaoEmManutencao, patrimonio.EventoBaixa, entity.SituacaoBaixado},
	}

	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			nova, err := patrimonio.Transicionar(c.atual, c.evento)
			require.NoError(t, err)
			assert.Equal(t, c.esperado, nova)
		})
	}
}

// BAIXADO é terminal: nenhum evento é aceito, nem abertura de manutenção.
func TestTransicionar_BaixadoRejeitaTodosOsEventos(t *testing.T) {
	eventos := []patrimonio.Evento{
		patrimonio.EventoTransferencia,
		patrimonio.EventoEmprestimo,
		patrimonio.EventoDevolucao,
		patrimonio.EventoManutencaoAberta,
		patrimonio.EventoManutencaoConcluida,
		patrimonio.EventoBaixa,
	}
	for _, ev := range eventos {
		t.Run(string(ev), func(t *testing.T) {
			_, err := patrimonio.Transicionar(entity.SituacaoBaixado, ev)
			assert.ErrorIs(t, err, domain.ErrTransicaoInvalida,
				"bem baixado não admite o evento %s", ev)
		})
	}
}

func TestTransicionar_EventoDesconhecido(t *testing.T) {
	_, err := patrimonio.Transicionar(entity.SituacaoEmUso, patrimonio.Evento("REFORMA"))
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}
