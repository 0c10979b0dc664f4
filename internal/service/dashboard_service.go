package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/alefwesleimoreira/erp-mamae-eu-quero/internal/dto"
	"github.com/alefwesleimoreira/erp-mamae-eu-quero/internal/model"
	"github.com/alefwesleimoreira/erp-mamae-eu-quero/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	resumoCacheKey = "cache:dashboard:resumo"
	resumoCacheTTL = time.Minute
)

type DashboardService interface {
	Resumo(ctx context.Context) (*dto.ResumoResponse, error)
	VendasPorPeriodo(ctx context.Context, periodo string) (*dto.VendasPorPeriodoResponse, error)
	ProdutosMaisVendidos(ctx context.Context, limite int) (*dto.ProdutosMaisVendidosResponse, error)
	VendasPorCategoria(ctx context.Context) (*dto.VendasPorCategoriaResponse, error)
	VendasPorGenero(ctx context.Context) (*dto.VendasPorGeneroResponse, error)
	TaxaConversao(ctx context.Context) (*dto.TaxaConversaoResponse, error)
}

type dashboardService struct {
	repo        repository.DashboardRepository
	clienteRepo repository.ClienteRepository
	produtoRepo repository.ProdutoRepository
	rdb         *redis.Client
}

func NewDashboardService(
	repo repository.DashboardRepository,
	clienteRepo repository.ClienteRepository,
	produtoRepo repository.ProdutoRepository,
	rdb *redis.Client,
) DashboardService {
	return &dashboardService{repo: repo, clienteRepo: clienteRepo, produtoRepo: produtoRepo, rdb: rdb}
}

// Resumo aggregates the headline numbers, cached for one minute — dashboards
// poll aggressively and the queries touch every sale of the month.
func (s *dashboardService) Resumo(ctx context.Context) (*dto.ResumoResponse, error) {
	if s.rdb != nil {
		if raw, err := s.rdb.Get(ctx, resumoCacheKey).Result(); err == nil {
			var cached dto.ResumoResponse
			if json.Unmarshal([]byte(raw), &cached) == nil {
				return &cached, nil
			}
		}
	}

	agora := time.Now().UTC()
	inicioMes := time.Date(agora.Year(), agora.Month(), 1, 0, 0, 0, 0, time.UTC)
	inicioMesAnterior := inicioMes.AddDate(0, -1, 0)

	vendasMes, err := s.repo.SomaVendas(ctx, &inicioMes, nil)
	if err != nil {
		return nil, err
	}
	vendasMesAnterior, err := s.repo.SomaVendas(ctx, &inicioMesAnterior, &inicioMes)
	if err != nil {
		return nil, err
	}
	numeroVendas, err := s.repo.CountVendas(ctx, inicioMes)
	if err != nil {
		return nil, err
	}
	totalClientes, err := s.clienteRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	produtosAtivos, err := s.produtoRepo.CountAtivos(ctx)
	if err != nil {
		return nil, err
	}
	alertas, err := s.produtoRepo.CountEstoqueBaixo(ctx)
	if err != nil {
		return nil, err
	}

	resp := &dto.ResumoResponse{
		VendasMes:             vendasMes,
		VendasMesAnterior:     vendasMesAnterior,
		CrescimentoPercentual: crescimento(vendasMes, vendasMesAnterior),
		NumeroVendas:          numeroVendas,
		TicketMedio:           ticketMedio(vendasMes, numeroVendas),
		TotalClientes:         totalClientes,
		ProdutosAtivos:        produtosAtivos,
		AlertasEstoque:        alertas,
	}

	if s.rdb != nil {
		if raw, err := json.Marshal(resp); err == nil {
			if err := s.rdb.Set(ctx, resumoCacheKey, raw, resumoCacheTTL).Err(); err != nil {
				log.Debug().Err(err).Msg("falha ao popular cache do resumo")
			}
		}
	}
	return resp, nil
}

// VendasPorPeriodo returns the daily series for the last 30 days, or the
// monthly series for the last 12 months when periodo is "mes".
func (s *dashboardService) VendasPorPeriodo(ctx context.Context, periodo string) (*dto.VendasPorPeriodoResponse, error) {
	if periodo == "mes" {
		vendas, err := s.repo.VendasPorMes(ctx, 12)
		if err != nil {
			return nil, err
		}
		return &dto.VendasPorPeriodoResponse{Vendas: vendas}, nil
	}

	de := time.Now().UTC().AddDate(0, 0, -30)
	vendas, err := s.repo.VendasPorDia(ctx, de)
	if err != nil {
		return nil, err
	}
	return &dto.VendasPorPeriodoResponse{Vendas: vendas}, nil
}

func (s *dashboardService) ProdutosMaisVendidos(ctx context.Context, limite int) (*dto.ProdutosMaisVendidosResponse, error) {
	if limite < 1 || limite > 50 {
		limite = 10
	}
	de := time.Now().UTC().AddDate(0, -1, 0)
	produtos, err := s.repo.ProdutosMaisVendidos(ctx, de, limite)
	if err != nil {
		return nil, err
	}
	return &dto.ProdutosMaisVendidosResponse{Produtos: produtos}, nil
}

func (s *dashboardService) VendasPorCategoria(ctx context.Context) (*dto.VendasPorCategoriaResponse, error) {
	de := time.Now().UTC().AddDate(0, -1, 0)
	categorias, err := s.repo.VendasPorCategoria(ctx, de)
	if err != nil {
		return nil, err
	}
	return &dto.VendasPorCategoriaResponse{Categorias: categorias}, nil
}

func (s *dashboardService) VendasPorGenero(ctx context.Context) (*dto.VendasPorGeneroResponse, error) {
	de := time.Now().UTC().AddDate(0, -1, 0)
	generos, err := s.repo.VendasPorGenero(ctx, de)
	if err != nil {
		return nil, err
	}
	return &dto.VendasPorGeneroResponse{Generos: generos}, nil
}

// TaxaConversao computes finalized / (finalized + cancelled + pending) over
// the last 30 days. Finalized covers pago, enviado and entregue.
func (s *dashboardService) TaxaConversao(ctx context.Context) (*dto.TaxaConversaoResponse, error) {
	de := time.Now().UTC().AddDate(0, 0, -30)

	finalizadas, err := s.repo.CountPorStatus(ctx, de, model.VendaPago, model.VendaEnviado, model.VendaEntregue)
	if err != nil {
		return nil, err
	}
	canceladas, err := s.repo.CountPorStatus(ctx, de, model.VendaCancelado)
	if err != nil {
		return nil, err
	}
	pendentes, err := s.repo.CountPorStatus(ctx, de, model.VendaPendente)
	if err != nil {
		return nil, err
	}

	taxa := decimal.Zero
	if total := finalizadas + canceladas + pendentes; total > 0 {
		taxa = decimal.NewFromInt(finalizadas).
			Div(decimal.NewFromInt(total)).
			Mul(decimal.NewFromInt(100)).
			Round(2)
	}

	return &dto.TaxaConversaoResponse{
		VendasFinalizadas: finalizadas,
		VendasCanceladas:  canceladas,
		VendasPendentes:   pendentes,
		TaxaConversao:     taxa,
	}, nil
}

// crescimento is the month-over-month growth percentage. A zero prior month
// reports 0, not infinity.
func crescimento(atual, anterior decimal.Decimal) decimal.Decimal {
	if anterior.IsZero() {
		return decimal.Zero
	}
	return atual.Sub(anterior).Div(anterior).Mul(decimal.NewFromInt(100)).Round(2)
}

func ticketMedio(total decimal.Decimal, vendas int64) decimal.Decimal {
	if vendas == 0 {
		return decimal.Zero
	}
	return total.Div(decimal.NewFromInt(vendas)).Round(2)
}
