package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CriarBemRequest dados para cadastro de um bem.
type CriarBemRequest struct {
	NumeroPatrimonial string          `json:"numeroPatrimonial"`
	Descricao         string          `json:"descricao"`
	SetorID           string          `json:"setorId"`
	SubcategoriaID    *string         `json:"subcategoriaId"`
	ValorAquisicao    decimal.Decimal `json:"valorAquisicao"`
	DataAquisicao     time.Time       `json:"dataAquisicao"`
	VidaUtilMeses     int             `json:"vidaUtilMeses"`
	EstadoConservacao string          `json:"estadoConservacao"`
}

// AtualizarBemRequest atualização parcial: apenas campos presentes são
// comparados com o valor armazenado. NumeroPatrimonial é aceito no corpo mas
// ignorado — a chave de negócio é imutável.
type AtualizarBemRequest struct {
	NumeroPatrimonial *string          `json:"numeroPatrimonial"`
	Descricao         *string          `json:"descricao"`
	SetorID           *string          `json:"setorId"`
	SubcategoriaID    *string          `json:"subcategoriaId"`
	ValorAquisicao    *decimal.Decimal `json:"valorAquisicao"`
	DataAquisicao     *time.Time       `json:"dataAquisicao"`
	VidaUtilMeses     *int             `json:"vidaUtilMeses"`
	EstadoConservacao *string          `json:"estadoConservacao"`
}

// FiltroBensRequest filtros da listagem de bens.
type FiltroBensRequest struct {
	PageRequest
	SetorID           string `query:"setorId"`
	Situacao          string `query:"situacao"`
	NumeroPatrimonial string `query:"numeroPatrimonial"` // busca parcial
}

// BemResponse representação de um bem nas respostas. ValorAtual é o valor
// depreciado na data da consulta, nunca persistido.
type BemResponse struct {
	ID                string          `json:"id"`
	NumeroPatrimonial string          `json:"numeroPatrimonial"`
	Descricao         string          `json:"descricao"`
	SetorID           string          `json:"setorId"`
	SubcategoriaID    *string         `json:"subcategoriaId,omitempty"`
	ValorAquisicao    decimal.Decimal `json:"valorAquisicao"`
	ValorAtual        decimal.Decimal `json:"valorAtual"`
	DataAquisicao     time.Time       `json:"dataAquisicao"`
	VidaUtilMeses     int             `json:"vidaUtilMeses"`
	EstadoConservacao string          `json:"estadoConservacao"`
	Situacao          string          `json:"situacao"`
	Ativo             bool            `json:"ativo"`
	CriadoEm          time.Time       `json:"criadoEm"`
	AtualizadoEm      time.Time       `json:"atualizadoEm"`
}

// BemListResponse página de bens.
type BemListResponse struct {
	Bens []BemResponse `json:"bens"`
	Meta PageResponse  `json:"meta"`
}

// RegistroAuditoriaResponse uma linha do histórico de um bem.
type RegistroAuditoriaResponse struct {
	Campo       string    `json:"campo"`
	ValorAntigo string    `json:"valorAntigo"`
	ValorNovo   string    `json:"valorNovo"`
	UsuarioID   string    `json:"usuarioId"`
	CriadoEm    time.Time `json:"criadoEm"`
}
