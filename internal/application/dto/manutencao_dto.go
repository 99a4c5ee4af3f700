package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AbrirManutencaoRequest dados para abertura de manutenção.
type AbrirManutencaoRequest struct {
	BemID        string           `json:"bemId"`
	Tipo         string           `json:"tipo"` // PREVENTIVA | CORRETIVA
	DataInicio   *time.Time       `json:"dataInicio"`
	Custo        *decimal.Decimal `json:"custo"`
	FornecedorID *string          `json:"fornecedorId"`
	Observacoes  string           `json:"observacoes"`
}

// AtualizarManutencaoRequest patch da mesma linha: fixar DataFim pela primeira
// vez conclui a manutenção e devolve o bem a EM_USO.
type AtualizarManutencaoRequest struct {
	DataFim      *time.Time       `json:"dataFim"`
	Custo        *decimal.Decimal `json:"custo"`
	FornecedorID *string          `json:"fornecedorId"`
	Observacoes  *string          `json:"observacoes"`
}

// ManutencaoResponse representação de uma manutenção.
type ManutencaoResponse struct {
	ID           string          `json:"id"`
	BemID        string          `json:"bemId"`
	Tipo         string          `json:"tipo"`
	DataInicio   time.Time       `json:"dataInicio"`
	DataFim      *time.Time      `json:"dataFim,omitempty"`
	Custo        decimal.Decimal `json:"custo"`
	FornecedorID *string         `json:"fornecedorId,omitempty"`
	Observacoes  string          `json:"observacoes,omitempty"`
	CriadoPor    string          `json:"criadoPor"`
}
