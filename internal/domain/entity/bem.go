package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Situações do ciclo de vida de um bem. BAIXADO é terminal: nenhum evento
// posterior altera o bem (ver domain/patrimonio.Transicionar).
const (
	SituacaoEmUso        = "EM_USO"
	SituacaoEmManutencao = "EM_MANUTENCAO"
	SituacaoOcioso       = "OCIOSO"
	SituacaoBaixado      = "BAIXADO"
)

// Estados de conservação aceitos no cadastro.
const (
	ConservacaoOtimo   = "OTIMO"
	ConservacaoBom     = "BOM"
	ConservacaoRegular = "REGULAR"
	ConservacaoRuim    = "RUIM"
)

// Bem representa um bem patrimonial. NumeroPatrimonial é a chave de negócio,
// única entre bens não excluídos e imutável após a criação. Situacao só muda
// pelo motor de transições; a edição direta ignora o campo.
// Bens nunca são removidos fisicamente (soft delete via Ativo/ExcluidoEm).
type Bem struct {
	ID                string
	NumeroPatrimonial string // plaqueta/tombamento, imutável
	Descricao         string
	SetorID           string
	SubcategoriaID    *string
	ValorAquisicao    decimal.Decimal
	DataAquisicao     time.Time
	VidaUtilMeses     int
	EstadoConservacao string
	Situacao          string
	Ativo             bool
	ExcluidoEm        *time.Time
	CriadoEm          time.Time
	AtualizadoEm      time.Time
}

// SituacaoValida informa se s é uma das quatro situações conhecidas.
func SituacaoValida(s string) bool {
	switch s {
	case SituacaoEmUso, SituacaoEmManutencao, SituacaoOcioso, SituacaoBaixado:
		return true
	}
	return false
}
