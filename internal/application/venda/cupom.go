package venda

import (
	"bytes"
	"context"
	"html/template"

	"github.com/donnatureza/pdv-api/internal/domain"
	"github.com/donnatureza/pdv-api/internal/domain/entity"
	"github.com/donnatureza/pdv-api/internal/domain/repository"
)

// Dados fixos do cabeçalho do cupom.
const (
	LojaNome     = "DONNATUREZA"
	LojaEndereco = "Av Senador Dinarte Mariz, 4077 Lj 01"
)

// cupomTemplate cupom não fiscal para impressora térmica de 58mm.
var cupomTemplate = template.Must(template.New("cupom").Parse(`<html>
<head>
<style>
body { font-family: monospace; width: 58mm; margin: 0; padding: 5px; }
.center { text-align: center; }
.linha { border-bottom: 1px dashed #000; margin: 5px 0; }
.total { font-weight: bold; font-size: 14px; }
</style>
</head>
<body>
<div class="center">
<h3>{{.Loja}}</h3>
<p>{{.Endereco}}</p>
<div class="linha"></div>
</div>
<p>Venda: #{{.VendaID}}</p>
<p>Data: {{.Data}}</p>
<div class="linha"></div>
<table width="100%">
{{range .Linhas}}<tr><td>{{.Nome}}</td><td>{{.Quantidade}}x</td><td>R$ {{.PrecoUnitario}}</td></tr>
{{end}}</table>
<div class="linha"></div>
<p class="total">TOTAL: R$ {{.Total}}</p>
<p>Pagamento: {{.Pagamento}}</p>
<div class="center">
<p>Obrigado pela preferência!</p>
</div>
</body>
</html>`))

type cupomData struct {
	Loja      string
	Endereco  string
	VendaID   string
	Data      string
	Linhas    []LinhaCupom
	Total     string
	Pagamento string
}

// CupomUseCase gera o cupom de uma venda em HTML (impressão direta) e em PDF
// (layout térmico via Maroto).
type CupomUseCase struct {
	vendaRepo   repository.VendaRepository
	produtoRepo repository.ProdutoRepository
	pdfGen      CupomPDFGenerator
}

// NewCupomUseCase constrói o caso de uso.
func NewCupomUseCase(vendaRepo repository.VendaRepository, produtoRepo repository.ProdutoRepository, pdfGen CupomPDFGenerator) *CupomUseCase {
	return &CupomUseCase{vendaRepo: vendaRepo, produtoRepo: produtoRepo, pdfGen: pdfGen}
}

// GerarCupomHTML monta o cupom HTML da venda.
func (uc *CupomUseCase) GerarCupomHTML(ctx context.Context, vendaID string) (string, error) {
	vendaEnt, linhas, err := uc.carregarVenda(vendaID)
	if err != nil {
		return "", err
	}
	data := cupomData{
		Loja:      LojaNome,
		Endereco:  LojaEndereco,
		VendaID:   vendaEnt.ID,
		Data:      vendaEnt.CreatedAt.Format("02/01/2006 15:04"),
		Linhas:    linhas,
		Total:     vendaEnt.Total.StringFixed(2),
		Pagamento: vendaEnt.FormaPagamento,
	}
	var buf bytes.Buffer
	if err := cupomTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// GerarCupomPDF monta o cupom em PDF.
func (uc *CupomUseCase) GerarCupomPDF(ctx context.Context, vendaID string) ([]byte, error) {
	vendaEnt, linhas, err := uc.carregarVenda(vendaID)
	if err != nil {
		return nil, err
	}
	return uc.pdfGen.GerarCupomPDF(ctx, vendaEnt, linhas)
}

// carregarVenda resolve a venda e os nomes de produto das linhas.
func (uc *CupomUseCase) carregarVenda(vendaID string) (*entity.Venda, []LinhaCupom, error) {
	vendaEnt, err := uc.vendaRepo.GetByID(vendaID)
	if err != nil {
		return nil, nil, err
	}
	if vendaEnt == nil {
		return nil, nil, domain.ErrNaoEncontrado
	}
	linhas := make([]LinhaCupom, 0, len(vendaEnt.Itens))
	for _, item := range vendaEnt.Itens {
		nome := item.ProdutoID
		if produto, err := uc.produtoRepo.GetByID(item.ProdutoID); err == nil && produto != nil {
			nome = produto.Nome
			if r := []rune(nome); len(r) > 20 {
				nome = string(r[:20])
			}
		}
		linhas = append(linhas, LinhaCupom{
			Nome:          nome,
			Quantidade:    item.Quantidade,
			PrecoUnitario: item.PrecoUnitario.StringFixed(2),
			Subtotal:      item.Subtotal().StringFixed(2),
		})
	}
	return vendaEnt, linhas, nil
}
