package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de manutenção.
const (
	ManutencaoPreventiva = "PREVENTIVA"
	ManutencaoCorretiva  = "CORRETIVA"
)

// Manutencao é o único registro mutável do núcleo: criada na abertura e a mesma
// linha é depois atualizada com data de fim, custo e observações no fechamento.
type Manutencao struct {
	ID           string
	BemID        string
	Tipo         string
	DataInicio   time.Time
	DataFim      *time.Time
	Custo        decimal.Decimal
	FornecedorID *string
	Observacoes  string
	CriadoEm     time.Time
	AtualizadoEm time.Time
	CriadoPor    string
}
