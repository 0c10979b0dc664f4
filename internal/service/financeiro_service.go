package service

import (
	"context"
	"time"

	"github.com/alefwesleimoreira/erp-mamae-eu-quero/internal/dto"
	"github.com/alefwesleimoreira/erp-mamae-eu-quero/internal/model"
	"github.com/alefwesleimoreira/erp-mamae-eu-quero/internal/repository"
)

type FinanceiroService interface {
	CriarLancamento(ctx context.Context, req dto.CriarLancamentoRequest) (*dto.LancamentoResponse, error)
	Listar(ctx context.Context, filter dto.LancamentoFilter) (*dto.LancamentoListResponse, error)
	FluxoCaixa(ctx context.Context) (*dto.FluxoCaixaResponse, error)
}

type financeiroService struct {
	repo repository.FinanceiroRepository
}

func NewFinanceiroService(repo repository.FinanceiroRepository) FinanceiroService {
	return &financeiroService{repo: repo}
}

func (s *financeiroService) CriarLancamento(ctx context.Context, req dto.CriarLancamentoRequest) (*dto.LancamentoResponse, error) {
	vencimento, err := time.Parse("2006-01-02", req.DataVencimento)
	if err != nil {
		return nil, ErrDataInvalida
	}

	lancamento := &model.Financeiro{
		Tipo:           req.Tipo,
		Categoria:      req.Categoria,
		Descricao:      req.Descricao,
		Valor:          req.Valor,
		FornecedorID:   req.FornecedorID,
		DataVencimento: vencimento,
		Status:         "pendente",
		FormaPagamento: req.FormaPagamento,
	}
	if err := s.repo.Create(ctx, lancamento); err != nil {
		return nil, err
	}
	return lancamentoToResponse(lancamento), nil
}

func (s *financeiroService) Listar(ctx context.Context, filter dto.LancamentoFilter) (*dto.LancamentoListResponse, error) {
	lancamentos, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	itens := make([]dto.LancamentoResponse, 0, len(lancamentos))
	for _, l := range lancamentos {
		itens = append(itens, *lancamentoToResponse(&l))
	}
	return &dto.LancamentoListResponse{Lancamentos: itens}, nil
}

// FluxoCaixa summarizes the current month's realized cash flow plus the open
// receivables/payables backlog.
func (s *financeiroService) FluxoCaixa(ctx context.Context) (*dto.FluxoCaixaResponse, error) {
	agora := time.Now().UTC()
	inicioMes := time.Date(agora.Year(), agora.Month(), 1, 0, 0, 0, 0, time.UTC)

	receitas, err := s.repo.SomaPagoDesde(ctx, "receita", inicioMes)
	if err != nil {
		return nil, err
	}
	despesas, err := s.repo.SomaPagoDesde(ctx, "despesa", inicioMes)
	if err != nil {
		return nil, err
	}
	aReceber, err := s.repo.SomaPendente(ctx, "receita")
	if err != nil {
		return nil, err
	}
	aPagar, err := s.repo.SomaPendente(ctx, "despesa")
	if err != nil {
		return nil, err
	}

	return &dto.FluxoCaixaResponse{
		ReceitasMes:   receitas,
		DespesasMes:   despesas,
		SaldoMes:      receitas.Sub(despesas),
		ContasReceber: aReceber,
		ContasPagar:   aPagar,
	}, nil
}

func lancamentoToResponse(l *model.Financeiro) *dto.LancamentoResponse {
	return &dto.LancamentoResponse{
		ID:             l.ID,
		Tipo:           l.Tipo,
		Categoria:      l.Categoria,
		Descricao:      l.Descricao,
		Valor:          l.Valor,
		Status:         l.Status,
		DataVencimento: l.DataVencimento.Format("2006-01-02"),
	}
}
