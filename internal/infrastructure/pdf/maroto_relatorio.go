// Package pdf gera o relatório de fechamento de inventário.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Descrição do inventário │ Tipo + Período           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMO: Total | Encontrados | Divergentes | Não encontr.   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: N° Patrimonial | Descrição | Situação | Diverg.    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: data de emissão                                    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appinventario "github.com/jhoicas/Patrimonio-api/internal/application/inventario"
	"github.com/jhoicas/Patrimonio-api/internal/domain/entity"
	"github.com/jhoicas/Patrimonio-api/internal/domain/patrimonio"
)

// ── Paleta de cores ───────────────────────────────────────────────────────────

var (
	corPrimaria = &props.Color{Red: 0, Green: 70, Blue: 127}
	corCinza    = &props.Color{Red: 100, Green: 100, Blue: 100}
	corAlerta   = &props.Color{Red: 180, Green: 40, Blue: 40}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoRelatorioGenerator implementa inventario.RelatorioPDFGenerator usando
// Maroto v2.
type MarotoRelatorioGenerator struct{}

// NewMarotoRelatorioGenerator constrói o gerador.
func NewMarotoRelatorioGenerator() *MarotoRelatorioGenerator { return &MarotoRelatorioGenerator{} }

// GerarRelatorioInventario gera o PDF e devolve seus bytes.
func (g *MarotoRelatorioGenerator) GerarRelatorioInventario(
	inv *entity.Inventario,
	linhas []appinventario.LinhaRelatorio,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Relatório de Inventário Patrimonial", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(cabecalhoRow(inv))
	m.AddRows(line.NewRow(1, props.Line{Color: corPrimaria, Thickness: 0.5}))
	m.AddRows(resumoRow(linhas))
	m.AddRows(line.NewRow(1, props.Line{Color: corPrimaria, Thickness: 0.3}))

	m.AddRows(tabelaCabecalhoRow())
	for _, r := range tabelaLinhas(linhas) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: corCinza, Thickness: 0.3}))
	m.AddRows(rodapeRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Seções ────────────────────────────────────────────────────────────────────

// cabecalhoRow: descrição do inventário (esq) e tipo + período (dir).
func cabecalhoRow(inv *entity.Inventario) core.Row {
	periodo := "Início: " + inv.DataInicio.Format("02/01/2006")
	if inv.DataFim != nil {
		periodo += "   Fim: " + inv.DataFim.Format("02/01/2006")
	}

	return row.New(18).Add(
		col.New(7).Add(
			text.New("RELATÓRIO DE INVENTÁRIO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: corPrimaria, Top: 1,
			}),
			text.New(inv.Descricao, props.Text{
				Style: fontstyle.Bold, Size: 13, Top: 6,
			}),
			text.New(periodo, props.Text{Size: 8, Top: 14, Color: corCinza}),
		),
		col.New(5).Add(
			text.New("Tipo: "+inv.Tipo, props.Text{
				Size: 9, Align: align.Right, Top: 4,
			}),
			text.New("Status: "+inv.Status, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right,
				Color: corPrimaria, Top: 10,
			}),
		),
	)
}

// resumoRow: totais por classificação.
func resumoRow(linhas []appinventario.LinhaRelatorio) core.Row {
	contagem := map[string]int{}
	for _, l := range linhas {
		contagem[l.Classificacao]++
	}

	bloco := func(label string, total int, cor *props.Color) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 8, Align: align.Center, Color: corCinza, Top: 1}),
			text.New(fmt.Sprintf("%d", total), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Center, Color: cor, Top: 6,
			}),
		)
	}
	return row.New(14).Add(
		bloco("Itens", len(linhas), corPrimaria),
		bloco("Encontrados", contagem[patrimonio.ItemEncontrado], corPrimaria),
		bloco("Divergentes", contagem[patrimonio.ItemDivergente], corAlerta),
		bloco("Não encontrados", contagem[patrimonio.ItemNaoEncontrado]+contagem[patrimonio.ItemPendente], corAlerta),
	)
}

// tabelaCabecalhoRow: cabeçalho da tabela de itens.
func tabelaCabecalhoRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: corPrimaria, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("N° Patrimonial", 2, align.Left),
		h("Descrição", 5, align.Left),
		h("Classificação", 2, align.Center),
		h("Divergência", 3, align.Left),
	)
}

// tabelaLinhas: uma fila por item inscrito.
func tabelaLinhas(linhas []appinventario.LinhaRelatorio) []core.Row {
	result := make([]core.Row, 0, len(linhas))
	for _, l := range linhas {
		corItem := corCinza
		if l.Classificacao != patrimonio.ItemEncontrado {
			corItem = corAlerta
		}
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				l.NumeroPatrimonial,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(5).Add(text.New(
				l.Descricao,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				l.Classificacao,
				props.Text{Size: 8, Align: align.Center, Top: 1, Color: corItem},
			)),
			col.New(3).Add(text.New(
				l.Divergencia,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1, Color: corItem},
			)),
		))
	}
	return result
}

// rodapeRow: data de emissão.
func rodapeRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			"Relatório emitido em "+time.Now().Format("02/01/2006 15:04")+
				". Documento de conferência física do acervo patrimonial.",
			props.Text{Size: 6.5, Color: corCinza, Top: 2},
		),
	))
}
