package entity

import "time"

// Perfis de acesso.
const (
	PerfilAdmin    = "ADMIN"
	PerfilGestor   = "GESTOR"
	PerfilConsulta = "CONSULTA"
)

// PerfilValido informa se p é um perfil conhecido.
func PerfilValido(p string) bool {
	switch p {
	case PerfilAdmin, PerfilGestor, PerfilConsulta:
		return true
	}
	return false
}

// Usuario é o ator das operações; seu ID assina movimentações, conferências e
// cada linha do ledger de auditoria.
type Usuario struct {
	ID           string
	Email        string
	SenhaHash    string
	Nome         string
	Perfil       string
	Status       string // "active" | "disabled"
	CriadoEm     time.Time
	AtualizadoEm time.Time
}
