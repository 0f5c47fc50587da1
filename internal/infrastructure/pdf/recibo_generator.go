// Package pdf implementa a geração do comprovante de entrega de uma
// distribuição de doações.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: SANEM + título do comprovante │ Data da entrega    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  BENEFICIÁRIO: Nome + Responsável pela entrega              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Qtd | Peça entregue                                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL DE PEÇAS                                             │
//	│  RODAPÉ: linha de assinatura do beneficiário                │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

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

	"github.com/sanem/doacoes-api/internal/application/dto"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 96, Blue: 72}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ReciboGenerator implementa relatorio.ReciboGenerator usando Maroto v2.
type ReciboGenerator struct{}

// NewReciboGenerator constrói o gerador.
func NewReciboGenerator() *ReciboGenerator { return &ReciboGenerator{} }

// Gerar monta o comprovante de entrega de uma distribuição e devolve os bytes
// do PDF.
func (g *ReciboGenerator) Gerar(d *dto.DistribuicaoResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Comprovante de Entrega de Doações", true).
		WithAuthor("SANEM", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(d))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(beneficiarioRow(d))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	total := 0
	for _, p := range d.Produtos {
		total += p.Quantidade
		m.AddRows(linhaProdutoRow(p))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(total))
	m.AddRows(line.NewRow(6))
	m.AddRows(assinaturaRow(d))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar comprovante: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nome da entidade (esq) e data da entrega (dir).
func headerRow(d *dto.DistribuicaoResponse) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("SANEM", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Comprovante de Entrega de Doações", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("DATA DA ENTREGA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(d.Data.Format("02/01/2006"), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
		),
	)
}

// beneficiarioRow: dados do beneficiário e do responsável pela entrega.
func beneficiarioRow(d *dto.DistribuicaoResponse) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("BENEFICIÁRIO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(d.BeneficiarioNome, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New("Responsável pela entrega: "+nonEmpty(d.Responsavel, "Sistema"), props.Text{
				Size: 8, Top: 12, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabeçalho da tabela de peças.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Qtd.", 2, align.Center),
		h("Peça entregue", 10, align.Left),
	)
}

// linhaProdutoRow: uma linha por movimento da distribuição.
func linhaProdutoRow(p dto.LinhaDistribuicao) core.Row {
	return row.New(7).Add(
		col.New(2).Add(text.New(
			fmt.Sprintf("%d", p.Quantidade),
			props.Text{Size: 8, Align: align.Center, Top: 1},
		)),
		col.New(10).Add(text.New(
			p.Nome,
			props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
		)),
	)
}

// totalRow: total de peças alinhado à direita.
func totalRow(total int) core.Row {
	return row.New(10).Add(
		col.New(6),
		col.New(3).Add(text.New("TOTAL DE PEÇAS:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2, Top: 2,
		})),
		col.New(3).Add(text.New(fmt.Sprintf("%d", total), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1, Top: 2,
		})),
	)
}

// assinaturaRow: linha de assinatura do beneficiário.
func assinaturaRow(d *dto.DistribuicaoResponse) core.Row {
	return row.New(20).Add(
		col.New(3),
		col.New(6).Add(
			text.New("_________________________________________", props.Text{
				Size: 9, Align: align.Center, Top: 6, Color: colorGray,
			}),
			text.New(d.BeneficiarioNome, props.Text{
				Size: 8, Align: align.Center, Top: 12,
			}),
			text.New("Assinatura do beneficiário", props.Text{
				Size: 7, Align: align.Center, Top: 16, Color: colorGray,
			}),
		),
		col.New(3),
	)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
