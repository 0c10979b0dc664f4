package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/alefwesleimoreira/erp-mamae-eu-quero/internal/config"
	"github.com/alefwesleimoreira/erp-mamae-eu-quero/internal/dto"
	"github.com/alefwesleimoreira/erp-mamae-eu-quero/internal/model"
	"github.com/alefwesleimoreira/erp-mamae-eu-quero/internal/repository"
	"github.com/alefwesleimoreira/erp-mamae-eu-quero/internal/worker"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type VendaService interface {
	CriarVenda(ctx context.Context, usuarioID uint, req dto.CriarVendaRequest) (*dto.VendaCriadaResponse, error)
	AtualizarStatus(ctx context.Context, id uint, status string) error
	ObterPorID(ctx context.Context, id uint) (*dto.VendaResponse, error)
	Listar(ctx context.Context, filter dto.VendaFilter) (*dto.VendaListResponse, error)
}

type vendaService struct {
	repo           repository.VendaRepository
	produtoRepo    repository.ProdutoRepository
	clienteRepo    repository.ClienteRepository
	movimentacao   repository.MovimentacaoRepository
	financeiroRepo repository.FinanceiroRepository
	dispatcher     *worker.Dispatcher
	cfg            *config.Config
}

func NewVendaService(
	repo repository.VendaRepository,
	produtoRepo repository.ProdutoRepository,
	clienteRepo repository.ClienteRepository,
	movimentacao repository.MovimentacaoRepository,
	financeiroRepo repository.FinanceiroRepository,
	dispatcher *worker.Dispatcher,
	cfg *config.Config,
) VendaService {
	return &vendaService{
		repo:           repo,
		produtoRepo:    produtoRepo,
		clienteRepo:    clienteRepo,
		movimentacao:   movimentacao,
		financeiroRepo: financeiroRepo,
		dispatcher:     dispatcher,
		cfg:            cfg,
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// gerarNumeroVenda builds a human-readable sale number: VND + yyyymmdd + 4
// random digits. Uniqueness is rechecked inside the transaction.
func gerarNumeroVenda() string {
	return fmt.Sprintf("VND%s%04d", time.Now().Format("20060102"), rand.Intn(10000))
}

// ── CriarVenda ───────────────────────────────────────────────────────────────
// Single ACID transaction:
//  1. Resolve cliente and every line's produto/variação; price each line
//     (promotional price wins, variant add-on applies) and accumulate totals.
//  2. Create the venda with its (immutable) items.
//  3. Per line, in submitted order: lock the stock row, conditionally
//     decrement, and append exactly one "saida" ledger entry bracketing the
//     change. Insufficient stock anywhere aborts the whole operation.
//  4. When the caller requests immediate "pago" status, stamp data_pagamento
//     and book a paid receivable in financeiro valued at the sale total.
//
// After commit, lines that left a product at or below its minimum enqueue a
// low-stock alert job (best effort — never fails the sale).

func (s *vendaService) CriarVenda(ctx context.Context, usuarioID uint, req dto.CriarVendaRequest) (*dto.VendaCriadaResponse, error) {
	if _, err := s.clienteRepo.FindByID(ctx, req.ClienteID); err != nil {
		return nil, ErrClienteNaoEncontrado
	}

	origem := req.Origem
	if origem == "" {
		origem = "loja"
	}
	parcelas := req.Parcelas
	if parcelas < 1 {
		parcelas = 1
	}

	type linhaResolvida struct {
		produtoID  uint
		variacaoID *uint
		nome       string
		preco      decimal.Decimal
		quantidade int
		desconto   decimal.Decimal
		subtotal   decimal.Decimal
	}

	var venda model.Venda
	var alertas []worker.AlertaEstoquePayload

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		alertas = alertas[:0]

		// 1. Resolve and price each line.
		resolvidas := make([]linhaResolvida, 0, len(req.Itens))
		subtotal := decimal.Zero
		for _, item := range req.Itens {
			produto, err := s.produtoRepo.FindByIDTx(tx, item.ProdutoID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: produto %d", ErrProdutoNaoEncontrado, item.ProdutoID)
				}
				return err
			}

			estoqueDisponivel := produto.EstoqueAtual
			var variacao *model.ProdutoVariacao
			if item.VariacaoID != nil {
				variacao, err = s.produtoRepo.FindVariacaoByIDTx(tx, *item.VariacaoID)
				if err != nil {
					if errors.Is(err, gorm.ErrRecordNotFound) {
						return ErrVariacaoNaoEncontrada
					}
					return err
				}
				estoqueDisponivel = variacao.Estoque
			}

			if estoqueDisponivel < item.Quantidade {
				return fmt.Errorf("%w para %s", ErrEstoqueInsuficiente, produto.Nome)
			}

			preco := produto.PrecoVenda
			if produto.PrecoPromocional != nil {
				preco = *produto.PrecoPromocional
			}
			if variacao != nil {
				preco = preco.Add(variacao.PrecoAdicional)
			}

			linhaSubtotal := preco.Mul(decimal.NewFromInt(int64(item.Quantidade))).Sub(item.Desconto)
			subtotal = subtotal.Add(linhaSubtotal)

			resolvidas = append(resolvidas, linhaResolvida{
				produtoID:  produto.ID,
				variacaoID: item.VariacaoID,
				nome:       produto.Nome,
				preco:      preco,
				quantidade: item.Quantidade,
				desconto:   item.Desconto,
				subtotal:   linhaSubtotal,
			})
		}

		frete := req.Frete
		if origem == "ecommerce" && subtotal.GreaterThanOrEqual(decimal.NewFromFloat(s.cfg.FreteGratisAcima)) {
			frete = decimal.Zero
		}
		total := subtotal.Sub(req.Desconto).Add(frete)

		// 2. Build and persist the venda with its items.
		agora := time.Now().UTC()
		venda = model.Venda{
			NumeroVenda:    gerarNumeroVenda(),
			ClienteID:      req.ClienteID,
			UsuarioID:      &usuarioID,
			Subtotal:       subtotal,
			Desconto:       req.Desconto,
			Frete:          frete,
			Total:          total,
			Status:         model.VendaPendente,
			Origem:         origem,
			FormaPagamento: req.FormaPagamento,
			Parcelas:       parcelas,
			DataVenda:      agora,
			Observacoes:    req.Observacoes,
		}
		if req.Status == model.VendaPago {
			venda.Status = model.VendaPago
			venda.DataPagamento = &agora
		}
		for _, l := range resolvidas {
			venda.Itens = append(venda.Itens, model.ItemVenda{
				ProdutoID:     l.produtoID,
				VariacaoID:    l.variacaoID,
				Quantidade:    l.quantidade,
				PrecoUnitario: l.preco,
				Desconto:      l.desconto,
				Subtotal:      l.subtotal,
			})
		}

		// The random suffix can collide with an existing number; retry a
		// couple of times before giving up.
		for tentativa := 0; ; tentativa++ {
			if s.repo.DB() != nil {
				existe, err := s.repo.NumeroExiste(ctx, venda.NumeroVenda)
				if err != nil {
					return err
				}
				if existe && tentativa < 3 {
					venda.NumeroVenda = gerarNumeroVenda()
					continue
				}
			}
			break
		}
		if err := s.repo.CreateTx(tx, &venda); err != nil {
			return err
		}

		// 3. Decrement stock per line, in submitted order, each decrement
		// producing exactly one ledger row with exact before/after counts.
		// The rows were locked above, and a second line on the same product
		// re-reads the row, so decrements never overlap or overcommit.
		motivo := "Venda"
		for _, l := range resolvidas {
			var anterior, atual int
			if l.variacaoID != nil {
				v, err := s.produtoRepo.FindVariacaoByIDTx(tx, *l.variacaoID)
				if err != nil {
					return err
				}
				anterior = v.Estoque
				if err := s.produtoRepo.DecrementarEstoqueVariacaoTx(tx, *l.variacaoID, l.quantidade); err != nil {
					if errors.Is(err, repository.ErrEstoqueInsuficiente) {
						return fmt.Errorf("%w para %s", ErrEstoqueInsuficiente, l.nome)
					}
					return err
				}
				atual = anterior - l.quantidade
			} else {
				p, err := s.produtoRepo.FindByIDTx(tx, l.produtoID)
				if err != nil {
					return err
				}
				anterior = p.EstoqueAtual
				if err := s.produtoRepo.DecrementarEstoqueTx(tx, l.produtoID, l.quantidade); err != nil {
					if errors.Is(err, repository.ErrEstoqueInsuficiente) {
						return fmt.Errorf("%w para %s", ErrEstoqueInsuficiente, l.nome)
					}
					return err
				}
				atual = anterior - l.quantidade
				if atual <= p.EstoqueMinimo {
					alertas = append(alertas, worker.AlertaEstoquePayload{
						ProdutoID:     p.ID,
						Nome:          p.Nome,
						EstoqueAtual:  atual,
						EstoqueMinimo: p.EstoqueMinimo,
					})
				}
			}

			mov := &model.MovimentacaoEstoque{
				ProdutoID:        l.produtoID,
				VariacaoID:       l.variacaoID,
				Tipo:             "saida",
				Quantidade:       l.quantidade,
				EstoqueAnterior:  anterior,
				EstoqueAtual:     atual,
				Motivo:           &motivo,
				VendaID:          &venda.ID,
				UsuarioID:        &usuarioID,
				DataMovimentacao: agora,
			}
			if err := s.movimentacao.CreateTx(tx, mov); err != nil {
				return err
			}
		}

		// 4. Paid at creation → book the receivable.
		if venda.Status == model.VendaPago {
			hoje := agora.Truncate(24 * time.Hour)
			lancamento := &model.Financeiro{
				Tipo:           "receita",
				Categoria:      "venda",
				Descricao:      fmt.Sprintf("Venda %s", venda.NumeroVenda),
				Valor:          venda.Total,
				VendaID:        &venda.ID,
				DataVencimento: hoje,
				DataPagamento:  &hoje,
				Status:         "pago",
				FormaPagamento: venda.FormaPagamento,
			}
			if err := s.financeiroRepo.CreateTx(tx, lancamento); err != nil {
				return err
			}
		}

		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	// Low-stock alerts — fire & forget, after commit only.
	if s.dispatcher != nil {
		for _, a := range alertas {
			_ = s.dispatcher.EnqueueAlertaEstoque(ctx, a)
		}
	}

	resp := &dto.VendaCriadaResponse{Mensagem: "Venda criada com sucesso"}
	resp.Venda.ID = venda.ID
	resp.Venda.NumeroVenda = venda.NumeroVenda
	resp.Venda.Total = venda.Total
	return resp, nil
}

// ── AtualizarStatus ──────────────────────────────────────────────────────────

var statusValidos = map[string]bool{
	model.VendaPendente:  true,
	model.VendaPago:      true,
	model.VendaEnviado:   true,
	model.VendaEntregue:  true,
	model.VendaCancelado: true,
}

// AtualizarStatus moves a sale to a new status. Each forward transition stamps
// its date field the first time only — re-setting a status never overwrites an
// existing timestamp. "cancelado" is accepted from any state.
func (s *vendaService) AtualizarStatus(ctx context.Context, id uint, status string) error {
	if !statusValidos[status] {
		return ErrStatusInvalido
	}

	venda, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ErrVendaNaoEncontrada
	}

	venda.Status = status
	agora := time.Now().UTC()
	switch {
	case status == model.VendaPago && venda.DataPagamento == nil:
		venda.DataPagamento = &agora
	case status == model.VendaEnviado && venda.DataEnvio == nil:
		venda.DataEnvio = &agora
	case status == model.VendaEntregue && venda.DataEntrega == nil:
		venda.DataEntrega = &agora
	}

	return s.repo.Update(ctx, venda)
}

// ── Reads ────────────────────────────────────────────────────────────────────

func (s *vendaService) ObterPorID(ctx context.Context, id uint) (*dto.VendaResponse, error) {
	venda, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrVendaNaoEncontrada
	}

	itens := make([]dto.ItemVendaResponse, 0, len(venda.Itens))
	for _, item := range venda.Itens {
		nome := ""
		if item.Produto != nil {
			nome = item.Produto.Nome
		}
		itens = append(itens, dto.ItemVendaResponse{
			ID:            item.ID,
			Produto:       nome,
			Quantidade:    item.Quantidade,
			PrecoUnitario: item.PrecoUnitario,
			Desconto:      item.Desconto,
			Subtotal:      item.Subtotal,
		})
	}

	resp := &dto.VendaResponse{
		ID:             venda.ID,
		NumeroVenda:    venda.NumeroVenda,
		Subtotal:       venda.Subtotal,
		Desconto:       venda.Desconto,
		Frete:          venda.Frete,
		Total:          venda.Total,
		Status:         venda.Status,
		Origem:         venda.Origem,
		FormaPagamento: venda.FormaPagamento,
		Parcelas:       venda.Parcelas,
		DataVenda:      venda.DataVenda.Format(time.RFC3339),
		Itens:          itens,
		Observacoes:    venda.Observacoes,
	}
	if venda.Cliente != nil {
		resp.Cliente = dto.VendaClienteResponse{
			ID:    venda.Cliente.ID,
			Nome:  venda.Cliente.Nome,
			Email: venda.Cliente.Email,
		}
	}
	return resp, nil
}

func (s *vendaService) Listar(ctx context.Context, filter dto.VendaFilter) (*dto.VendaListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}

	vendas, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	itens := make([]dto.VendaListItem, 0, len(vendas))
	for _, v := range vendas {
		clienteNome := ""
		if v.Cliente != nil {
			clienteNome = v.Cliente.Nome
		}
		itens = append(itens, dto.VendaListItem{
			ID:          v.ID,
			NumeroVenda: v.NumeroVenda,
			Cliente:     clienteNome,
			Total:       v.Total,
			Status:      v.Status,
			Origem:      v.Origem,
			DataVenda:   v.DataVenda.Format(time.RFC3339),
			ItensCount:  len(v.Itens),
		})
	}

	paginas := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))
	return &dto.VendaListResponse{
		Vendas:      itens,
		Total:       total,
		Paginas:     paginas,
		PaginaAtual: filter.Page,
	}, nil
}
