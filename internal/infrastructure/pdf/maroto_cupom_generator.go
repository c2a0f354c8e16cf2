// Package pdf implementa a geração do cupom de venda em PDF no formato de
// bobina térmica 58mm, espelhando o cupom HTML impresso no caixa.
//
// Layout da página (58 x 297 mm):
//
//	┌──────────────────────────────┐
//	│  LOJA + ENDEREÇO             │
//	│  ──────────────────────────  │
//	│  CUPOM: nº da venda + data   │
//	│  ──────────────────────────  │
//	│  ITENS: qtd x nome           │
//	│          unit     subtotal   │
//	│  ──────────────────────────  │
//	│  Desconto / TOTAL / Pagto    │
//	│  ──────────────────────────  │
//	│  NFC-e: chave + QR (se houver)│
//	│  Obrigado, volte sempre!     │
//	└──────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appvenda "github.com/donnatureza/pdv-api/internal/application/venda"
	"github.com/donnatureza/pdv-api/internal/domain/entity"
)

var colorCinza = &props.Color{Red: 100, Green: 100, Blue: 100}

// MarotoCupomGenerator implementa venda.CupomPDFGenerator usando Maroto v2.
type MarotoCupomGenerator struct {
	NomeLoja     string
	EnderecoLoja string
}

// NewMarotoCupomGenerator constrói o gerador com os dados da loja.
func NewMarotoCupomGenerator(nomeLoja, enderecoLoja string) *MarotoCupomGenerator {
	return &MarotoCupomGenerator{NomeLoja: nomeLoja, EnderecoLoja: enderecoLoja}
}

// GerarCupomPDF gera o PDF do cupom e devolve seus bytes.
func (g *MarotoCupomGenerator) GerarCupomPDF(
	_ context.Context,
	venda *entity.Venda,
	linhas []appvenda.LinhaCupom,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithDimensions(58, 297).
		WithLeftMargin(3).WithRightMargin(3).
		WithTopMargin(4).WithBottomMargin(4).
		WithDefaultFont(&props.Font{Family: "courier", Size: 7}).
		WithTitle("Cupom de venda", true).
		WithAuthor(g.NomeLoja, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.cabecalhoRows()...)
	m.AddRows(line.NewRow(1, props.Line{Thickness: 0.3}))
	m.AddRows(identificacaoRows(venda)...)
	m.AddRows(line.NewRow(1, props.Line{Thickness: 0.3}))

	for _, r := range itemRows(linhas) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Thickness: 0.3}))
	m.AddRows(totaisRows(venda)...)
	m.AddRows(line.NewRow(1, props.Line{Thickness: 0.3}))
	m.AddRows(rodapeRows(venda)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar cupom: %w", err)
	}
	return doc.GetBytes(), nil
}

func (g *MarotoCupomGenerator) cabecalhoRows() []core.Row {
	return []core.Row{
		row.New(5).Add(col.New(12).Add(
			text.New(g.NomeLoja, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Center, Top: 1,
			}),
		)),
		row.New(4).Add(col.New(12).Add(
			text.New(g.EnderecoLoja, props.Text{
				Size: 6, Align: align.Center, Color: colorCinza,
			}),
		)),
	}
}

func identificacaoRows(venda *entity.Venda) []core.Row {
	rows := []core.Row{
		row.New(4).Add(col.New(12).Add(
			text.New("CUPOM DE VENDA "+curtarID(venda.ID), props.Text{
				Style: fontstyle.Bold, Size: 7, Align: align.Center, Top: 1,
			}),
		)),
		row.New(4).Add(col.New(12).Add(
			text.New(venda.CreatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 6.5, Align: align.Center, Color: colorCinza,
			}),
		)),
	}
	if venda.CPFCliente != "" {
		rows = append(rows, row.New(4).Add(col.New(12).Add(
			text.New("CPF: "+venda.CPFCliente, props.Text{
				Size: 6.5, Align: align.Center,
			}),
		)))
	}
	return rows
}

// itemRows: duas linhas por item — nome na primeira, quantidade x unitário e
// subtotal na segunda.
func itemRows(linhas []appvenda.LinhaCupom) []core.Row {
	result := make([]core.Row, 0, len(linhas)*2)
	for _, l := range linhas {
		result = append(result,
			row.New(3.5).Add(col.New(12).Add(
				text.New(l.Nome, props.Text{Size: 7, Align: align.Left}),
			)),
			row.New(3.5).Add(
				col.New(7).Add(text.New(
					fmt.Sprintf("%d x R$ %s", l.Quantidade, l.PrecoUnitario),
					props.Text{Size: 6.5, Align: align.Left, Color: colorCinza},
				)),
				col.New(5).Add(text.New(
					"R$ "+l.Subtotal,
					props.Text{Size: 7, Align: align.Right},
				)),
			),
		)
	}
	return result
}

func totaisRows(venda *entity.Venda) []core.Row {
	var rows []core.Row
	if venda.Desconto.IsPositive() {
		rows = append(rows, row.New(4).Add(
			col.New(6).Add(text.New("Desconto", props.Text{Size: 7, Align: align.Left})),
			col.New(6).Add(text.New("-R$ "+venda.Desconto.StringFixed(2), props.Text{
				Size: 7, Align: align.Right,
			})),
		))
	}
	rows = append(rows,
		row.New(5).Add(
			col.New(6).Add(text.New("TOTAL", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Left, Top: 1,
			})),
			col.New(6).Add(text.New("R$ "+venda.Total.StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1,
			})),
		),
		row.New(4).Add(col.New(12).Add(
			text.New("Pagamento: "+rotuloFormaPagamento(venda.FormaPagamento), props.Text{
				Size: 6.5, Align: align.Left, Color: colorCinza,
			}),
		)),
	)
	return rows
}

// rodapeRows: bloco NFC-e (quando a venda foi autorizada com chave) e mensagem
// de agradecimento.
func rodapeRows(venda *entity.Venda) []core.Row {
	var rows []core.Row

	if venda.NFCeChave != "" {
		rows = append(rows, row.New(4).Add(col.New(12).Add(
			text.New("NFC-e "+venda.NFCeNumero, props.Text{
				Style: fontstyle.Bold, Size: 6.5, Align: align.Center, Top: 1,
			}),
		)))
		for _, trecho := range quebrarChave(venda.NFCeChave, 22) {
			rows = append(rows, row.New(3).Add(col.New(12).Add(
				text.New(trecho, props.Text{Size: 6, Align: align.Center, Color: colorCinza}),
			)))
		}
	}
	if venda.NFCeQRCode != "" {
		rows = append(rows, row.New(30).Add(
			col.New(12).Add(code.NewQr(venda.NFCeQRCode, props.Rect{
				Percent: 85,
				Center:  true,
			})),
		))
	} else if venda.NFCeChave == "" {
		rows = append(rows, row.New(4).Add(col.New(12).Add(
			text.New("DOCUMENTO SEM VALOR FISCAL", props.Text{
				Size: 6, Align: align.Center, Color: colorCinza, Top: 1,
			}),
		)))
	}

	rows = append(rows, row.New(6).Add(col.New(12).Add(
		text.New("Obrigado, volte sempre!", props.Text{
			Style: fontstyle.Bold, Size: 7, Align: align.Center, Top: 2,
		}),
	)))
	return rows
}

// curtarID usa só o primeiro bloco do UUID como número de exibição.
func curtarID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return "#" + strings.ToUpper(id[:i])
	}
	return "#" + strings.ToUpper(id)
}

func rotuloFormaPagamento(forma string) string {
	switch forma {
	case "dinheiro":
		return "Dinheiro"
	case "cartao_credito":
		return "Cartão de crédito"
	case "cartao_debito":
		return "Cartão de débito"
	case "pix":
		return "PIX"
	default:
		return forma
	}
}

// quebrarChave divide a chave de acesso em trechos de até n caracteres.
func quebrarChave(s string, n int) []string {
	var partes []string
	for len(s) > n {
		partes = append(partes, s[:n])
		s = s[n:]
	}
	if s != "" {
		partes = append(partes, s)
	}
	return partes
}
