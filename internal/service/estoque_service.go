package service

import (
	"context"
	"errors"
	"time"

	"github.com/alefwesleimoreira/erp-mamae-eu-quero/internal/dto"
	"github.com/alefwesleimoreira/erp-mamae-eu-quero/internal/model"
	"github.com/alefwesleimoreira/erp-mamae-eu-quero/internal/repository"

	"gorm.io/gorm"
)

type EstoqueService interface {
	Ajustar(ctx context.Context, usuarioID uint, req dto.AjusteEstoqueRequest) (*dto.AjusteEstoqueResponse, error)
	ListarMovimentacoes(ctx context.Context, filter dto.MovimentacaoFilter) (*dto.MovimentacaoListResponse, error)
	ListarAlertas(ctx context.Context) (*dto.AlertaListResponse, error)
}

type estoqueService struct {
	produtoRepo  repository.ProdutoRepository
	movimentacao repository.MovimentacaoRepository
}

func NewEstoqueService(produtoRepo repository.ProdutoRepository, movimentacao repository.MovimentacaoRepository) EstoqueService {
	return &estoqueService{produtoRepo: produtoRepo, movimentacao: movimentacao}
}

// Ajustar applies a manual stock movement (purchase entry, return, or signed
// correction) and appends the corresponding ledger row, atomically. "entrada"
// and "devolucao" always add; the sign of an "ajuste" comes from the caller.
// A movement may not drive stock negative.
func (s *estoqueService) Ajustar(ctx context.Context, usuarioID uint, req dto.AjusteEstoqueRequest) (*dto.AjusteEstoqueResponse, error) {
	delta := req.Quantidade
	if req.Tipo == "entrada" || req.Tipo == "devolucao" {
		if delta < 0 {
			delta = -delta
		}
	}

	var resp dto.AjusteEstoqueResponse
	err := runTx(ctx, s.produtoRepo.DB(), func(tx *gorm.DB) error {
		var anterior int
		if req.VariacaoID != nil {
			v, err := s.produtoRepo.FindVariacaoByIDTx(tx, *req.VariacaoID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrVariacaoNaoEncontrada
				}
				return err
			}
			anterior = v.Estoque
			if anterior+delta < 0 {
				return ErrEstoqueInsuficiente
			}
			if err := s.produtoRepo.AjustarEstoqueVariacaoTx(tx, *req.VariacaoID, delta); err != nil {
				return err
			}
		} else {
			p, err := s.produtoRepo.FindByIDTx(tx, req.ProdutoID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrProdutoNaoEncontrado
				}
				return err
			}
			anterior = p.EstoqueAtual
			if anterior+delta < 0 {
				return ErrEstoqueInsuficiente
			}
			if err := s.produtoRepo.AjustarEstoqueTx(tx, req.ProdutoID, delta); err != nil {
				return err
			}
		}

		quantidade := delta
		if quantidade < 0 {
			quantidade = -quantidade
		}
		mov := &model.MovimentacaoEstoque{
			ProdutoID:        req.ProdutoID,
			VariacaoID:       req.VariacaoID,
			Tipo:             req.Tipo,
			Quantidade:       quantidade,
			EstoqueAnterior:  anterior,
			EstoqueAtual:     anterior + delta,
			Motivo:           req.Motivo,
			UsuarioID:        &usuarioID,
			DataMovimentacao: time.Now().UTC(),
		}
		if err := s.movimentacao.CreateTx(tx, mov); err != nil {
			return err
		}

		resp = dto.AjusteEstoqueResponse{
			ID:              mov.ID,
			EstoqueAnterior: mov.EstoqueAnterior,
			EstoqueAtual:    mov.EstoqueAtual,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *estoqueService) ListarMovimentacoes(ctx context.Context, filter dto.MovimentacaoFilter) (*dto.MovimentacaoListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}

	movs, total, err := s.movimentacao.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	itens := make([]dto.MovimentacaoResponse, 0, len(movs))
	for _, m := range movs {
		nome := ""
		if m.Produto != nil {
			nome = m.Produto.Nome
		}
		itens = append(itens, dto.MovimentacaoResponse{
			ID:           m.ID,
			Produto:      nome,
			Tipo:         m.Tipo,
			Quantidade:   m.Quantidade,
			EstoqueAtual: m.EstoqueAtual,
			Data:         m.DataMovimentacao.Format(time.RFC3339),
		})
	}
	return &dto.MovimentacaoListResponse{Movimentacoes: itens, Total: total}, nil
}

func (s *estoqueService) ListarAlertas(ctx context.Context) (*dto.AlertaListResponse, error) {
	produtos, err := s.produtoRepo.ListEstoqueBaixo(ctx)
	if err != nil {
		return nil, err
	}

	alertas := make([]dto.AlertaEstoqueResponse, 0, len(produtos))
	for _, p := range produtos {
		alertas = append(alertas, dto.AlertaEstoqueResponse{
			ID:            p.ID,
			Nome:          p.Nome,
			EstoqueAtual:  p.EstoqueAtual,
			EstoqueMinimo: p.EstoqueMinimo,
		})
	}
	return &dto.AlertaListResponse{Alertas: alertas}, nil
}
