package entity

import "time"

// Fornecedor presta serviços de manutenção. Referenciado por Manutencao.
type Fornecedor struct {
	ID           string
	Nome         string
	CNPJ         string
	Email        string
	Telefone     string
	Ativo        bool
	CriadoEm     time.Time
	AtualizadoEm time.Time
}
