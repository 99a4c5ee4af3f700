// Package auditoria define o normalizador de valores compartilhado por todos
// os mutadores de bens. Garante que a mesma mudança sempre produz a mesma
// linha no ledger, independentemente de quem a gravou.
package auditoria

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Mudanca é uma alteração de um campo, já serializada para o ledger.
type Mudanca struct {
	Campo       string
	ValorAntigo string
	ValorNovo   string
}

// Serializar normaliza um valor para gravação no ledger:
//
//	nil (e ponteiros nulos) → ""
//	datas                   → instante ISO-8601 em UTC
//	decimais                → forma canônica (sem formatação de locale)
//	demais                  → forma string do valor
func Serializar(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case *string:
		if t == nil {
			return ""
		}
		return *t
	case time.Time:
		return t.UTC().Format(time.RFC3339)
	case *time.Time:
		if t == nil {
			return ""
		}
		return t.UTC().Format(time.RFC3339)
	case decimal.Decimal:
		return t.String()
	case *decimal.Decimal:
		if t == nil {
			return ""
		}
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case *int:
		if t == nil {
			return ""
		}
		return strconv.Itoa(*t)
	case int64:
		return strconv.FormatInt(t, 10)
	default:
		return fmt.Sprint(t)
	}
}

// Comparar compara dois valores com a semântica correta do tipo (datas por
// instante, decimais por igualdade numérica) e devolve a mudança serializada.
// O segundo retorno é false quando os valores são equivalentes — nesse caso
// nenhuma linha de auditoria deve ser gravada.
func Comparar(campo string, antigo, novo any) (Mudanca, bool) {
	if iguais(antigo, novo) {
		return Mudanca{}, false
	}
	return Mudanca{
		Campo:       campo,
		ValorAntigo: Serializar(antigo),
		ValorNovo:   Serializar(novo),
	}, true
}

// iguais compara após desreferenciar ponteiros. Datas comparam por instante e
// decimais por valor, para não gerar ruído de serialização no ledger.
func iguais(a, b any) bool {
	a, b = deref(a), deref(b)
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if da, ok := a.(decimal.Decimal); ok {
		if db, ok := b.(decimal.Decimal); ok {
			return da.Equal(db)
		}
	}
	if ta, ok := a.(time.Time); ok {
		if tb, ok := b.(time.Time); ok {
			return ta.Equal(tb)
		}
	}
	return Serializar(a) == Serializar(b)
}

func deref(v any) any {
	switch t := v.(type) {
	case *string:
		if t == nil {
			return nil
		}
		return *t
	case *time.Time:
		if t == nil {
			return nil
		}
		return *t
	case *decimal.Decimal:
		if t == nil {
			return nil
		}
		return *t
	case *int:
		if t == nil {
			return nil
		}
		return *t
	default:
		return v
	}
}
