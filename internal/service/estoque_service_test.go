package service

import (
	"context"
	"testing"

	"github.com/alefwesleimoreira/erp-mamae-eu-quero/internal/dto"
	"github.com/alefwesleimoreira/erp-mamae-eu-quero/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildEstoqueSvc() (EstoqueService, *stubProdutoRepo, *stubMovimentacaoRepo) {
	produtoRepo := newStubProdutoRepo()
	movRepo := &stubMovimentacaoRepo{}
	return NewEstoqueService(produtoRepo, movRepo), produtoRepo, movRepo
}

func TestAjustarEntradaSomaEstoque(t *testing.T) {
	svc, produtoRepo, movRepo := buildEstoqueSvc()
	body := produtoRepo.add(&model.Produto{
		Codigo: "BODY-100", Nome: "Body kit",
		PrecoVenda: dec("30.00"), EstoqueAtual: 4, Ativo: true,
	})

	motivo := "Compra do fornecedor"
	resp, err := svc.Ajustar(context.Background(), 2, dto.AjusteEstoqueRequest{
		ProdutoID:  body.ID,
		Tipo:       "entrada",
		Quantidade: 10,
		Motivo:     &motivo,
	})
	require.NoError(t, err)

	assert.Equal(t, 4, resp.EstoqueAnterior)
	assert.Equal(t, 14, resp.EstoqueAtual)
	assert.Equal(t, 14, produtoRepo.produtos[body.ID].EstoqueAtual)

	require.Len(t, movRepo.movimentacoes, 1)
	mov := movRepo.movimentacoes[0]
	assert.Equal(t, "entrada", mov.Tipo)
	assert.Equal(t, 10, mov.Quantidade)
	require.NotNil(t, mov.Motivo)
	assert.Equal(t, motivo, *mov.Motivo)
}

func TestAjustarEntradaNormalizaSinal(t *testing.T) {
	svc, produtoRepo, _ := buildEstoqueSvc()
	body := produtoRepo.add(&model.Produto{
		Codigo: "BODY-101", Nome: "Body avulso",
		PrecoVenda: dec("30.00"), EstoqueAtual: 4, Ativo: true,
	})

	// "entrada" always adds, even with a negative quantity from the caller.
	resp, err := svc.Ajustar(context.Background(), 2, dto.AjusteEstoqueRequest{
		ProdutoID:  body.ID,
		Tipo:       "entrada",
		Quantidade: -3,
	})
	require.NoError(t, err)
	assert.Equal(t, 7, resp.EstoqueAtual)
}

func TestAjusteNegativoNaoDeixaEstoqueNegativo(t *testing.T) {
	svc, produtoRepo, movRepo := buildEstoqueSvc()
	body := produtoRepo.add(&model.Produto{
		Codigo: "BODY-102", Nome: "Body saldo",
		PrecoVenda: dec("30.00"), EstoqueAtual: 3, Ativo: true,
	})

	_, err := svc.Ajustar(context.Background(), 2, dto.AjusteEstoqueRequest{
		ProdutoID:  body.ID,
		Tipo:       "ajuste",
		Quantidade: -5,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEstoqueInsuficiente)
	assert.Equal(t, 3, produtoRepo.produtos[body.ID].EstoqueAtual)
	assert.Empty(t, movRepo.movimentacoes)
}

func TestAjustarVariacao(t *testing.T) {
	svc, produtoRepo, movRepo := buildEstoqueSvc()
	body := produtoRepo.add(&model.Produto{
		Codigo: "BODY-103", Nome: "Body tamanhos",
		PrecoVenda: dec("30.00"), EstoqueAtual: 0, Ativo: true,
	})
	produtoRepo.variacoes[3] = &model.ProdutoVariacao{ID: 3, ProdutoID: body.ID, Estoque: 2, Ativo: true}
	varID := uint(3)

	resp, err := svc.Ajustar(context.Background(), 2, dto.AjusteEstoqueRequest{
		ProdutoID:  body.ID,
		VariacaoID: &varID,
		Tipo:       "devolucao",
		Quantidade: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.EstoqueAtual)
	assert.Equal(t, 3, produtoRepo.variacoes[3].Estoque)

	require.Len(t, movRepo.movimentacoes, 1)
	assert.Equal(t, "devolucao", movRepo.movimentacoes[0].Tipo)
	require.NotNil(t, movRepo.movimentacoes[0].VariacaoID)
	assert.Equal(t, varID, *movRepo.movimentacoes[0].VariacaoID)
}

func TestAjustarProdutoInexistente(t *testing.T) {
	svc, _, _ := buildEstoqueSvc()
	_, err := svc.Ajustar(context.Background(), 2, dto.AjusteEstoqueRequest{
		ProdutoID:  77,
		Tipo:       "entrada",
		Quantidade: 1,
	})
	assert.ErrorIs(t, err, ErrProdutoNaoEncontrado)
}

func TestListarAlertas(t *testing.T) {
	svc, produtoRepo, _ := buildEstoqueSvc()
	produtoRepo.add(&model.Produto{
		Codigo: "A", Nome: "Abaixo do mínimo",
		PrecoVenda: dec("10.00"), EstoqueAtual: 2, EstoqueMinimo: 5, Ativo: true,
	})
	produtoRepo.add(&model.Produto{
		Codigo: "B", Nome: "Estoque saudável",
		PrecoVenda: dec("10.00"), EstoqueAtual: 50, EstoqueMinimo: 5, Ativo: true,
	})
	produtoRepo.add(&model.Produto{
		Codigo: "C", Nome: "Inativo baixo",
		PrecoVenda: dec("10.00"), EstoqueAtual: 0, EstoqueMinimo: 5, Ativo: false,
	})

	resp, err := svc.ListarAlertas(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Alertas, 1)
	assert.Equal(t, "Abaixo do mínimo", resp.Alertas[0].Nome)
}
