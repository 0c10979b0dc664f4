package service

import (
	"context"
	"strings"
	"testing"

	"github.com/alefwesleimoreira/erp-mamae-eu-quero/internal/config"
	"github.com/alefwesleimoreira/erp-mamae-eu-quero/internal/dto"
	"github.com/alefwesleimoreira/erp-mamae-eu-quero/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func buildVendaSvc() (VendaService, *stubProdutoRepo, *stubVendaRepo, *stubMovimentacaoRepo, *stubFinanceiroRepo, *stubClienteRepo) {
	produtoRepo := newStubProdutoRepo()
	vendaRepo := newStubVendaRepo()
	clienteRepo := newStubClienteRepo()
	movRepo := &stubMovimentacaoRepo{}
	finRepo := &stubFinanceiroRepo{}
	cfg := &config.Config{FreteGratisAcima: 200}

	svc := NewVendaService(vendaRepo, produtoRepo, clienteRepo, movRepo, finRepo, nil, cfg)
	return svc, produtoRepo, vendaRepo, movRepo, finRepo, clienteRepo
}

func seedCliente(repo *stubClienteRepo) *model.Cliente {
	return repo.add(&model.Cliente{Nome: "Maria Silva", Ativo: true})
}

func TestCriarVendaCalculaTotais(t *testing.T) {
	svc, produtoRepo, vendaRepo, _, _, clienteRepo := buildVendaSvc()
	cliente := seedCliente(clienteRepo)
	body := produtoRepo.add(&model.Produto{
		Codigo: "BODY-001", Nome: "Body manga longa",
		PrecoVenda: dec("49.90"), EstoqueAtual: 10, EstoqueMinimo: 2, Ativo: true,
	})

	resp, err := svc.CriarVenda(context.Background(), 1, dto.CriarVendaRequest{
		ClienteID: cliente.ID,
		Itens: []dto.ItemVendaRequest{
			{ProdutoID: body.ID, Quantidade: 2},
		},
		Desconto: dec("5.00"),
		Frete:    dec("12.50"),
	})
	require.NoError(t, err)

	// 2 × 49.90 − 5.00 + 12.50
	assert.True(t, resp.Venda.Total.Equal(dec("107.30")), "total = %s", resp.Venda.Total)
	assert.True(t, strings.HasPrefix(resp.Venda.NumeroVenda, "VND"))
	assert.Len(t, resp.Venda.NumeroVenda, 15)

	venda := vendaRepo.vendas[resp.Venda.ID]
	require.NotNil(t, venda)
	assert.Equal(t, model.VendaPendente, venda.Status)
	assert.True(t, venda.Subtotal.Equal(dec("99.80")))
	require.Len(t, venda.Itens, 1)
	assert.True(t, venda.Itens[0].PrecoUnitario.Equal(dec("49.90")))
}

func TestCriarVendaUsaPrecoPromocionalEAdicionalDaVariacao(t *testing.T) {
	svc, produtoRepo, _, _, _, clienteRepo := buildVendaSvc()
	cliente := seedCliente(clienteRepo)

	promo := dec("39.90")
	vestido := produtoRepo.add(&model.Produto{
		Codigo: "VEST-001", Nome: "Vestido festa",
		PrecoVenda: dec("59.90"), PrecoPromocional: &promo,
		EstoqueAtual: 5, Ativo: true,
	})
	tamanho := "G"
	produtoRepo.variacoes[7] = &model.ProdutoVariacao{
		ID: 7, ProdutoID: vestido.ID, Tamanho: &tamanho,
		Estoque: 3, PrecoAdicional: dec("5.00"), Ativo: true,
	}
	varID := uint(7)

	resp, err := svc.CriarVenda(context.Background(), 1, dto.CriarVendaRequest{
		ClienteID: cliente.ID,
		Itens: []dto.ItemVendaRequest{
			{ProdutoID: vestido.ID, VariacaoID: &varID, Quantidade: 2},
		},
	})
	require.NoError(t, err)

	// (39.90 + 5.00) × 2
	assert.True(t, resp.Venda.Total.Equal(dec("89.80")), "total = %s", resp.Venda.Total)
	// Variant stock was decremented, product stock untouched.
	assert.Equal(t, 1, produtoRepo.variacoes[7].Estoque)
	assert.Equal(t, 5, produtoRepo.produtos[vestido.ID].EstoqueAtual)
}

func TestCriarVendaRegistraMovimentacaoComBrackets(t *testing.T) {
	svc, produtoRepo, vendaRepo, movRepo, _, clienteRepo := buildVendaSvc()
	cliente := seedCliente(clienteRepo)
	body := produtoRepo.add(&model.Produto{
		Codigo: "BODY-002", Nome: "Body básico",
		PrecoVenda: dec("29.90"), EstoqueAtual: 5, Ativo: true,
	})

	resp, err := svc.CriarVenda(context.Background(), 9, dto.CriarVendaRequest{
		ClienteID: cliente.ID,
		Itens:     []dto.ItemVendaRequest{{ProdutoID: body.ID, Quantidade: 2}},
	})
	require.NoError(t, err)

	assert.Equal(t, 3, produtoRepo.produtos[body.ID].EstoqueAtual)
	require.Len(t, movRepo.movimentacoes, 1)

	mov := movRepo.movimentacoes[0]
	assert.Equal(t, "saida", mov.Tipo)
	assert.Equal(t, 2, mov.Quantidade)
	assert.Equal(t, 5, mov.EstoqueAnterior)
	assert.Equal(t, 3, mov.EstoqueAtual)
	require.NotNil(t, mov.VendaID)
	assert.Equal(t, vendaRepo.vendas[resp.Venda.ID].ID, *mov.VendaID)
	require.NotNil(t, mov.UsuarioID)
	assert.Equal(t, uint(9), *mov.UsuarioID)
}

func TestCriarVendaEstoqueInsuficiente(t *testing.T) {
	svc, produtoRepo, vendaRepo, movRepo, _, clienteRepo := buildVendaSvc()
	cliente := seedCliente(clienteRepo)
	body := produtoRepo.add(&model.Produto{
		Codigo: "BODY-003", Nome: "Body estampado",
		PrecoVenda: dec("34.90"), EstoqueAtual: 5, Ativo: true,
	})

	_, err := svc.CriarVenda(context.Background(), 1, dto.CriarVendaRequest{
		ClienteID: cliente.ID,
		Itens:     []dto.ItemVendaRequest{{ProdutoID: body.ID, Quantidade: 10}},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEstoqueInsuficiente)

	// Nothing was persisted.
	assert.Equal(t, 5, produtoRepo.produtos[body.ID].EstoqueAtual)
	assert.Empty(t, vendaRepo.vendas)
	assert.Empty(t, movRepo.movimentacoes)
}

func TestCriarVendaPagaLancaReceita(t *testing.T) {
	svc, produtoRepo, vendaRepo, _, finRepo, clienteRepo := buildVendaSvc()
	cliente := seedCliente(clienteRepo)
	body := produtoRepo.add(&model.Produto{
		Codigo: "BODY-004", Nome: "Body listrado",
		PrecoVenda: dec("25.00"), EstoqueAtual: 10, Ativo: true,
	})
	pix := "pix"

	resp, err := svc.CriarVenda(context.Background(), 1, dto.CriarVendaRequest{
		ClienteID:      cliente.ID,
		Itens:          []dto.ItemVendaRequest{{ProdutoID: body.ID, Quantidade: 1}},
		Status:         model.VendaPago,
		FormaPagamento: &pix,
	})
	require.NoError(t, err)

	venda := vendaRepo.vendas[resp.Venda.ID]
	assert.Equal(t, model.VendaPago, venda.Status)
	assert.NotNil(t, venda.DataPagamento)

	require.Len(t, finRepo.lancamentos, 1)
	lanc := finRepo.lancamentos[0]
	assert.Equal(t, "receita", lanc.Tipo)
	assert.Equal(t, "venda", lanc.Categoria)
	assert.Equal(t, "pago", lanc.Status)
	assert.True(t, lanc.Valor.Equal(venda.Total))
	require.NotNil(t, lanc.VendaID)
	assert.Equal(t, venda.ID, *lanc.VendaID)
}

func TestCriarVendaPendenteNaoLancaReceita(t *testing.T) {
	svc, produtoRepo, _, _, finRepo, clienteRepo := buildVendaSvc()
	cliente := seedCliente(clienteRepo)
	body := produtoRepo.add(&model.Produto{
		Codigo: "BODY-005", Nome: "Body liso",
		PrecoVenda: dec("25.00"), EstoqueAtual: 10, Ativo: true,
	})

	_, err := svc.CriarVenda(context.Background(), 1, dto.CriarVendaRequest{
		ClienteID: cliente.ID,
		Itens:     []dto.ItemVendaRequest{{ProdutoID: body.ID, Quantidade: 1}},
	})
	require.NoError(t, err)
	assert.Empty(t, finRepo.lancamentos)
}

func TestCriarVendaFreteGratisEcommerce(t *testing.T) {
	svc, produtoRepo, vendaRepo, _, _, clienteRepo := buildVendaSvc()
	cliente := seedCliente(clienteRepo)
	casaco := produtoRepo.add(&model.Produto{
		Codigo: "CAS-001", Nome: "Casaco de inverno",
		PrecoVenda: dec("120.00"), EstoqueAtual: 10, Ativo: true,
	})

	resp, err := svc.CriarVenda(context.Background(), 1, dto.CriarVendaRequest{
		ClienteID: cliente.ID,
		Origem:    "ecommerce",
		Frete:     dec("25.00"),
		Itens:     []dto.ItemVendaRequest{{ProdutoID: casaco.ID, Quantidade: 2}},
	})
	require.NoError(t, err)

	// Subtotal 240.00 ≥ 200.00 → frete zerado.
	venda := vendaRepo.vendas[resp.Venda.ID]
	assert.True(t, venda.Frete.IsZero(), "frete = %s", venda.Frete)
	assert.True(t, resp.Venda.Total.Equal(dec("240.00")))
}

func TestCriarVendaFreteMantidoNaLoja(t *testing.T) {
	svc, produtoRepo, vendaRepo, _, _, clienteRepo := buildVendaSvc()
	cliente := seedCliente(clienteRepo)
	casaco := produtoRepo.add(&model.Produto{
		Codigo: "CAS-002", Nome: "Casaco acolchoado",
		PrecoVenda: dec("120.00"), EstoqueAtual: 10, Ativo: true,
	})

	resp, err := svc.CriarVenda(context.Background(), 1, dto.CriarVendaRequest{
		ClienteID: cliente.ID,
		Frete:     dec("25.00"),
		Itens:     []dto.ItemVendaRequest{{ProdutoID: casaco.ID, Quantidade: 2}},
	})
	require.NoError(t, err)
	assert.True(t, vendaRepo.vendas[resp.Venda.ID].Frete.Equal(dec("25.00")))
}

func TestCriarVendaClienteInexistente(t *testing.T) {
	svc, _, _, _, _, _ := buildVendaSvc()

	_, err := svc.CriarVenda(context.Background(), 1, dto.CriarVendaRequest{
		ClienteID: 999,
		Itens:     []dto.ItemVendaRequest{{ProdutoID: 1, Quantidade: 1}},
	})
	assert.ErrorIs(t, err, ErrClienteNaoEncontrado)
}

func TestAtualizarStatusCarimbaDataUmaVez(t *testing.T) {
	svc, produtoRepo, vendaRepo, _, _, clienteRepo := buildVendaSvc()
	cliente := seedCliente(clienteRepo)
	body := produtoRepo.add(&model.Produto{
		Codigo: "BODY-006", Nome: "Body bordado",
		PrecoVenda: dec("45.00"), EstoqueAtual: 10, Ativo: true,
	})

	resp, err := svc.CriarVenda(context.Background(), 1, dto.CriarVendaRequest{
		ClienteID: cliente.ID,
		Itens:     []dto.ItemVendaRequest{{ProdutoID: body.ID, Quantidade: 1}},
	})
	require.NoError(t, err)

	require.NoError(t, svc.AtualizarStatus(context.Background(), resp.Venda.ID, model.VendaPago))
	venda := vendaRepo.vendas[resp.Venda.ID]
	require.NotNil(t, venda.DataPagamento)
	primeira := *venda.DataPagamento

	// Re-setting the same status keeps the original timestamp.
	require.NoError(t, svc.AtualizarStatus(context.Background(), resp.Venda.ID, model.VendaPago))
	assert.Equal(t, primeira, *vendaRepo.vendas[resp.Venda.ID].DataPagamento)

	require.NoError(t, svc.AtualizarStatus(context.Background(), resp.Venda.ID, model.VendaEnviado))
	assert.NotNil(t, vendaRepo.vendas[resp.Venda.ID].DataEnvio)
	require.NoError(t, svc.AtualizarStatus(context.Background(), resp.Venda.ID, model.VendaEntregue))
	assert.NotNil(t, vendaRepo.vendas[resp.Venda.ID].DataEntrega)
}

func TestAtualizarStatusCanceladoDeQualquerEstado(t *testing.T) {
	svc, produtoRepo, vendaRepo, _, _, clienteRepo := buildVendaSvc()
	cliente := seedCliente(clienteRepo)
	body := produtoRepo.add(&model.Produto{
		Codigo: "BODY-007", Nome: "Body festa",
		PrecoVenda: dec("45.00"), EstoqueAtual: 10, Ativo: true,
	})

	resp, err := svc.CriarVenda(context.Background(), 1, dto.CriarVendaRequest{
		ClienteID: cliente.ID,
		Itens:     []dto.ItemVendaRequest{{ProdutoID: body.ID, Quantidade: 1}},
	})
	require.NoError(t, err)

	require.NoError(t, svc.AtualizarStatus(context.Background(), resp.Venda.ID, model.VendaEntregue))
	require.NoError(t, svc.AtualizarStatus(context.Background(), resp.Venda.ID, model.VendaCancelado))
	assert.Equal(t, model.VendaCancelado, vendaRepo.vendas[resp.Venda.ID].Status)
}

func TestAtualizarStatusInvalido(t *testing.T) {
	svc, _, _, _, _, _ := buildVendaSvc()
	err := svc.AtualizarStatus(context.Background(), 1, "devolvido")
	assert.ErrorIs(t, err, ErrStatusInvalido)
}

func TestAtualizarStatusVendaInexistente(t *testing.T) {
	svc, _, _, _, _, _ := buildVendaSvc()
	err := svc.AtualizarStatus(context.Background(), 42, model.VendaPago)
	assert.ErrorIs(t, err, ErrVendaNaoEncontrada)
}

func TestGerarNumeroVendaFormato(t *testing.T) {
	numero := gerarNumeroVenda()
	assert.Len(t, numero, 15)
	assert.True(t, strings.HasPrefix(numero, "VND"))
}
