package service

import (
	"context"
	"testing"
	"time"

	"github.com/alefwesleimoreira/erp-mamae-eu-quero/internal/dto"
	"github.com/alefwesleimoreira/erp-mamae-eu-quero/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCriarLancamentoPendente(t *testing.T) {
	repo := &stubFinanceiroRepo{}
	svc := NewFinanceiroService(repo)

	resp, err := svc.CriarLancamento(context.Background(), dto.CriarLancamentoRequest{
		Tipo:           "despesa",
		Categoria:      "aluguel",
		Descricao:      "Aluguel da loja",
		Valor:          dec("2500.00"),
		DataVencimento: "2026-09-05",
	})
	require.NoError(t, err)
	assert.Equal(t, "pendente", resp.Status)
	assert.Equal(t, "2026-09-05", resp.DataVencimento)
	require.Len(t, repo.lancamentos, 1)
}

func TestCriarLancamentoDataInvalida(t *testing.T) {
	svc := NewFinanceiroService(&stubFinanceiroRepo{})

	_, err := svc.CriarLancamento(context.Background(), dto.CriarLancamentoRequest{
		Tipo:           "despesa",
		Categoria:      "aluguel",
		Descricao:      "Aluguel da loja",
		Valor:          dec("2500.00"),
		DataVencimento: "05/09/2026",
	})
	assert.ErrorIs(t, err, ErrDataInvalida)
}

func TestFluxoCaixa(t *testing.T) {
	repo := &stubFinanceiroRepo{}
	svc := NewFinanceiroService(repo)

	hoje := time.Now().UTC()
	repo.lancamentos = []model.Financeiro{
		{Tipo: "receita", Valor: dec("1000.00"), Status: "pago", DataPagamento: &hoje},
		{Tipo: "receita", Valor: dec("500.00"), Status: "pago", DataPagamento: &hoje},
		{Tipo: "despesa", Valor: dec("300.00"), Status: "pago", DataPagamento: &hoje},
		{Tipo: "receita", Valor: dec("200.00"), Status: "pendente"},
		{Tipo: "despesa", Valor: dec("150.00"), Status: "pendente"},
	}

	resp, err := svc.FluxoCaixa(context.Background())
	require.NoError(t, err)
	assert.True(t, resp.ReceitasMes.Equal(dec("1500.00")))
	assert.True(t, resp.DespesasMes.Equal(dec("300.00")))
	assert.True(t, resp.SaldoMes.Equal(dec("1200.00")))
	assert.True(t, resp.ContasReceber.Equal(dec("200.00")))
	assert.True(t, resp.ContasPagar.Equal(dec("150.00")))
}
