// Package patrimonio concentra as regras puras do ciclo de vida dos bens:
// tabela de transições de situação, classificação de conferência de inventário
// e depreciação linear. Sem dependências de persistência.
package patrimonio

import (
	"github.com/jhoicas/Patrimonio-api/internal/domain"
	"github.com/jhoicas/Patrimonio-api/internal/domain/entity"
)

// Evento é o gatilho de negócio que pode alterar a situação de um bem.
type Evento string

const (
	EventoTransferencia       Evento = "TRANSFERENCIA"
	EventoEmprestimo          Evento = "EMPRESTIMO"
	EventoDevolucao           Evento = "DEVOLUCAO"
	EventoManutencaoAberta    Evento = "MANUTENCAO_ABERTA"
	EventoManutencaoConcluida Evento = "MANUTENCAO_CONCLUIDA"
	EventoBaixa               Evento = "BAIXA"
)

// Transicionar aplica a tabela de regras e devolve a nova situação do bem.
//
//	TRANSFERENCIA        → mantém a situação (muda apenas o setor)
//	EMPRESTIMO           → OCIOSO
//	DEVOLUCAO            → EM_USO
//	MANUTENCAO_ABERTA    → EM_MANUTENCAO
//	MANUTENCAO_CONCLUIDA → EM_USO
//	BAIXA                → BAIXADO (terminal)
//
// Nenhum evento é aceito sobre um bem BAIXADO, inclusive abertura de
// manutenção: BAIXADO é terminal.
func Transicionar(atual string, evento Evento) (string, error) {
	if atual == entity.SituacaoBaixado {
		return "", domain.ErrTransicaoInvalida
	}
	switch evento {
	case EventoTransferencia:
		return atual, nil
	case EventoEmprestimo:
		return entity.SituacaoOcioso, nil
	case EventoDevolucao:
		return entity.SituacaoEmUso, nil
	case EventoManutencaoAberta:
		return entity.SituacaoEmManutencao, nil
	case EventoManutencaoConcluida:
		return entity.SituacaoEmUso, nil
	case EventoBaixa:
		return entity.SituacaoBaixado, nil
	}
	return "", domain.ErrEntradaInvalida
}
