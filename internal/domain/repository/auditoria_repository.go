package repository

import "github.com/jhoicas/Patrimonio-api/internal/domain/entity"

// AuditoriaRepository porto do ledger de auditoria. Append-only: não há
// update nem delete; a leitura é um fetch decrescente por data, limitado.
type AuditoriaRepository interface {
	CreateLote(registros []*entity.RegistroAuditoria) error
	ListByBem(bemID string, limit int) ([]*entity.RegistroAuditoria, error)
}
