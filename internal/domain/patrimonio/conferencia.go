package patrimonio

import "strings"

// Classificações derivadas de um item de inventário. Nunca são gravadas:
// qualquer consumidor recalcula a partir de conferido/divergencia.
const (
	ItemEncontrado    = "ENCONTRADO"
	ItemNaoEncontrado = "NAO_ENCONTRADO"
	ItemDivergente    = "DIVERGENTE"
	ItemPendente      = "PENDENTE"
)

// marcadores de "não encontrado" no texto livre de divergência, com e sem acento.
var marcadoresNaoEncontrado = []string{"não encontrado", "nao encontrado"}

// ClassificarItem deriva a classificação de um item a partir dos campos
// gravados. Item não conferido é sempre PENDENTE, independente do restante.
func ClassificarItem(conferido bool, divergencia *string) string {
	if !conferido {
		return ItemPendente
	}
	if divergencia == nil || strings.TrimSpace(*divergencia) == "" {
		return ItemEncontrado
	}
	texto := strings.ToLower(*divergencia)
	for _, m := range marcadoresNaoEncontrado {
		if strings.Contains(texto, m) {
			return ItemNaoEncontrado
		}
	}
	return ItemDivergente
}

// Progresso devolve a fração de itens conferidos, em [0,1]. Inventário sem
// itens conta como 0.
func Progresso(total, conferidos int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(conferidos) / float64(total)
}
