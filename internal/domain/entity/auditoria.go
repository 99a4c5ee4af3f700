package entity

import "time"

// RegistroAuditoria é uma linha do ledger de auditoria: um campo alterado de um
// bem, com valor antigo e novo já serializados (ver domain/auditoria.Serializar).
// O ledger é append-only: linhas nunca são atualizadas nem removidas.
type RegistroAuditoria struct {
	ID          string
	BemID       string
	Campo       string
	ValorAntigo string
	ValorNovo   string
	UsuarioID   string
	CriadoEm    time.Time
}
