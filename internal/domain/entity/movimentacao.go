package entity

import "time"

// Tipos de movimentação.
const (
	MovimentacaoTransferencia = "TRANSFERENCIA"
	MovimentacaoEmprestimo    = "EMPRESTIMO"
	MovimentacaoDevolucao     = "DEVOLUCAO"
)

// Movimentacao é o registro imutável de um evento de transferência, empréstimo
// ou devolução. Criada uma vez, nunca alterada.
type Movimentacao struct {
	ID                    string
	BemID                 string
	Tipo                  string
	SetorOrigemID         *string
	SetorDestinoID        *string
	DataMovimentacao      time.Time
	DataPrevistaDevolucao *time.Time // apenas para empréstimos
	Observacoes           string
	CriadoEm              time.Time
	CriadoPor             string
}

// TipoMovimentacaoValido informa se t é um tipo de movimentação conhecido.
func TipoMovimentacaoValido(t string) bool {
	switch t {
	case MovimentacaoTransferencia, MovimentacaoEmprestimo, MovimentacaoDevolucao:
		return true
	}
	return false
}
