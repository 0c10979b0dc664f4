package service

import (
	"context"
	"errors"
	"time"

	"github.com/alefwesleimoreira/erp-mamae-eu-quero/internal/dto"
	"github.com/alefwesleimoreira/erp-mamae-eu-quero/internal/model"
	"github.com/alefwesleimoreira/erp-mamae-eu-quero/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var errNotFound = gorm.ErrRecordNotFound

// ── stubProdutoRepo ───────────────────────────────────────────────────────────

type stubProdutoRepo struct {
	produtos  map[uint]*model.Produto
	variacoes map[uint]*model.ProdutoVariacao
	nextID    uint
}

func newStubProdutoRepo() *stubProdutoRepo {
	return &stubProdutoRepo{
		produtos:  make(map[uint]*model.Produto),
		variacoes: make(map[uint]*model.ProdutoVariacao),
	}
}

func (r *stubProdutoRepo) add(p *model.Produto) *model.Produto {
	if p.ID == 0 {
		r.nextID++
		p.ID = r.nextID
	}
	r.produtos[p.ID] = p
	return p
}

func (r *stubProdutoRepo) Create(_ context.Context, p *model.Produto) error {
	r.add(p)
	return nil
}

func (r *stubProdutoRepo) FindByID(_ context.Context, id uint) (*model.Produto, error) {
	p, ok := r.produtos[id]
	if !ok {
		return nil, errNotFound
	}
	return p, nil
}

func (r *stubProdutoRepo) FindByCodigo(_ context.Context, codigo string) (*model.Produto, error) {
	for _, p := range r.produtos {
		if p.Codigo == codigo {
			return p, nil
		}
	}
	return nil, errNotFound
}

func (r *stubProdutoRepo) List(_ context.Context, _ dto.ProdutoFilter) ([]model.Produto, int64, error) {
	out := make([]model.Produto, 0, len(r.produtos))
	for _, p := range r.produtos {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *stubProdutoRepo) Update(_ context.Context, p *model.Produto) error {
	r.produtos[p.ID] = p
	return nil
}

func (r *stubProdutoRepo) SoftDelete(_ context.Context, id uint) error {
	p, ok := r.produtos[id]
	if !ok {
		return errNotFound
	}
	p.Ativo = false
	return nil
}

func (r *stubProdutoRepo) ReplaceCategorias(_ context.Context, produtoID uint, ids []uint) error {
	p, ok := r.produtos[produtoID]
	if !ok {
		return errNotFound
	}
	p.Categorias = nil
	for _, cid := range ids {
		p.Categorias = append(p.Categorias, model.ProdutoCategoria{ProdutoID: produtoID, CategoriaID: cid})
	}
	return nil
}

func (r *stubProdutoRepo) ListEstoqueBaixo(_ context.Context) ([]model.Produto, error) {
	var out []model.Produto
	for _, p := range r.produtos {
		if p.Ativo && p.EstoqueAtual <= p.EstoqueMinimo {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProdutoRepo) CountAtivos(_ context.Context) (int64, error) {
	var n int64
	for _, p := range r.produtos {
		if p.Ativo {
			n++
		}
	}
	return n, nil
}

func (r *stubProdutoRepo) CountEstoqueBaixo(_ context.Context) (int64, error) {
	var n int64
	for _, p := range r.produtos {
		if p.Ativo && p.EstoqueAtual <= p.EstoqueMinimo {
			n++
		}
	}
	return n, nil
}

func (r *stubProdutoRepo) FindVariacaoByID(_ context.Context, id uint) (*model.ProdutoVariacao, error) {
	v, ok := r.variacoes[id]
	if !ok {
		return nil, errNotFound
	}
	return v, nil
}

func (r *stubProdutoRepo) FindByIDTx(_ *gorm.DB, id uint) (*model.Produto, error) {
	p, ok := r.produtos[id]
	if !ok {
		return nil, errNotFound
	}
	return p, nil
}

func (r *stubProdutoRepo) FindVariacaoByIDTx(_ *gorm.DB, id uint) (*model.ProdutoVariacao, error) {
	v, ok := r.variacoes[id]
	if !ok {
		return nil, errNotFound
	}
	return v, nil
}

func (r *stubProdutoRepo) DecrementarEstoqueTx(_ *gorm.DB, id uint, quantidade int) error {
	p, ok := r.produtos[id]
	if !ok || p.EstoqueAtual < quantidade {
		return repository.ErrEstoqueInsuficiente
	}
	p.EstoqueAtual -= quantidade
	return nil
}

func (r *stubProdutoRepo) DecrementarEstoqueVariacaoTx(_ *gorm.DB, id uint, quantidade int) error {
	v, ok := r.variacoes[id]
	if !ok || v.Estoque < quantidade {
		return repository.ErrEstoqueInsuficiente
	}
	v.Estoque -= quantidade
	return nil
}

func (r *stubProdutoRepo) AjustarEstoqueTx(_ *gorm.DB, id uint, delta int) error {
	p, ok := r.produtos[id]
	if !ok {
		return errNotFound
	}
	p.EstoqueAtual += delta
	return nil
}

func (r *stubProdutoRepo) AjustarEstoqueVariacaoTx(_ *gorm.DB, id uint, delta int) error {
	v, ok := r.variacoes[id]
	if !ok {
		return errNotFound
	}
	v.Estoque += delta
	return nil
}

func (r *stubProdutoRepo) DB() *gorm.DB { return nil }

var _ repository.ProdutoRepository = (*stubProdutoRepo)(nil)

// ── stubVendaRepo ─────────────────────────────────────────────────────────────

type stubVendaRepo struct {
	vendas map[uint]*model.Venda
	nextID uint
}

func newStubVendaRepo() *stubVendaRepo {
	return &stubVendaRepo{vendas: make(map[uint]*model.Venda)}
}

func (r *stubVendaRepo) CreateTx(_ *gorm.DB, v *model.Venda) error {
	if v.ID == 0 {
		r.nextID++
		v.ID = r.nextID
	}
	r.vendas[v.ID] = v
	return nil
}

func (r *stubVendaRepo) FindByID(_ context.Context, id uint) (*model.Venda, error) {
	v, ok := r.vendas[id]
	if !ok {
		return nil, errNotFound
	}
	return v, nil
}

func (r *stubVendaRepo) NumeroExiste(_ context.Context, numero string) (bool, error) {
	for _, v := range r.vendas {
		if v.NumeroVenda == numero {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubVendaRepo) Update(_ context.Context, v *model.Venda) error {
	if _, ok := r.vendas[v.ID]; !ok {
		return errNotFound
	}
	r.vendas[v.ID] = v
	return nil
}

func (r *stubVendaRepo) List(_ context.Context, _ dto.VendaFilter) ([]model.Venda, int64, error) {
	out := make([]model.Venda, 0, len(r.vendas))
	for _, v := range r.vendas {
		out = append(out, *v)
	}
	return out, int64(len(out)), nil
}

func (r *stubVendaRepo) DB() *gorm.DB { return nil }

var _ repository.VendaRepository = (*stubVendaRepo)(nil)

// ── stubClienteRepo ───────────────────────────────────────────────────────────

type stubClienteRepo struct {
	clientes map[uint]*model.Cliente
	nextID   uint
}

func newStubClienteRepo() *stubClienteRepo {
	return &stubClienteRepo{clientes: make(map[uint]*model.Cliente)}
}

func (r *stubClienteRepo) add(c *model.Cliente) *model.Cliente {
	if c.ID == 0 {
		r.nextID++
		c.ID = r.nextID
	}
	r.clientes[c.ID] = c
	return c
}

func (r *stubClienteRepo) Create(_ context.Context, c *model.Cliente) error {
	r.add(c)
	return nil
}

func (r *stubClienteRepo) CreateTx(_ *gorm.DB, c *model.Cliente) error {
	r.add(c)
	return nil
}

func (r *stubClienteRepo) FindByID(_ context.Context, id uint) (*model.Cliente, error) {
	c, ok := r.clientes[id]
	if !ok {
		return nil, errNotFound
	}
	return c, nil
}

func (r *stubClienteRepo) List(_ context.Context, _ dto.ClienteFilter) ([]model.Cliente, int64, error) {
	out := make([]model.Cliente, 0, len(r.clientes))
	for _, c := range r.clientes {
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

func (r *stubClienteRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.clientes)), nil
}

var _ repository.ClienteRepository = (*stubClienteRepo)(nil)

// ── stubMovimentacaoRepo ──────────────────────────────────────────────────────

type stubMovimentacaoRepo struct {
	movimentacoes []model.MovimentacaoEstoque
}

func (r *stubMovimentacaoRepo) Create(_ context.Context, m *model.MovimentacaoEstoque) error {
	m.ID = uint(len(r.movimentacoes) + 1)
	r.movimentacoes = append(r.movimentacoes, *m)
	return nil
}

func (r *stubMovimentacaoRepo) CreateTx(_ *gorm.DB, m *model.MovimentacaoEstoque) error {
	m.ID = uint(len(r.movimentacoes) + 1)
	r.movimentacoes = append(r.movimentacoes, *m)
	return nil
}

func (r *stubMovimentacaoRepo) List(_ context.Context, _ dto.MovimentacaoFilter) ([]model.MovimentacaoEstoque, int64, error) {
	return r.movimentacoes, int64(len(r.movimentacoes)), nil
}

var _ repository.MovimentacaoRepository = (*stubMovimentacaoRepo)(nil)

// ── stubFinanceiroRepo ────────────────────────────────────────────────────────

type stubFinanceiroRepo struct {
	lancamentos []model.Financeiro
}

func (r *stubFinanceiroRepo) Create(_ context.Context, l *model.Financeiro) error {
	l.ID = uint(len(r.lancamentos) + 1)
	r.lancamentos = append(r.lancamentos, *l)
	return nil
}

func (r *stubFinanceiroRepo) CreateTx(_ *gorm.DB, l *model.Financeiro) error {
	l.ID = uint(len(r.lancamentos) + 1)
	r.lancamentos = append(r.lancamentos, *l)
	return nil
}

func (r *stubFinanceiroRepo) List(_ context.Context, filter dto.LancamentoFilter) ([]model.Financeiro, error) {
	var out []model.Financeiro
	for _, l := range r.lancamentos {
		if filter.Tipo != "" && l.Tipo != filter.Tipo {
			continue
		}
		if filter.Status != "" && l.Status != filter.Status {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

func (r *stubFinanceiroRepo) SomaPagoDesde(_ context.Context, tipo string, inicio time.Time) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, l := range r.lancamentos {
		if l.Tipo == tipo && l.Status == "pago" && l.DataPagamento != nil && !l.DataPagamento.Before(inicio) {
			total = total.Add(l.Valor)
		}
	}
	return total, nil
}

func (r *stubFinanceiroRepo) SomaPendente(_ context.Context, tipo string) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, l := range r.lancamentos {
		if l.Tipo == tipo && l.Status == "pendente" {
			total = total.Add(l.Valor)
		}
	}
	return total, nil
}

var _ repository.FinanceiroRepository = (*stubFinanceiroRepo)(nil)

// ── stubUsuarioRepo ───────────────────────────────────────────────────────────

type stubUsuarioRepo struct {
	usuarios map[uint]*model.Usuario
	nextID   uint
}

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{usuarios: make(map[uint]*model.Usuario)}
}

func (r *stubUsuarioRepo) add(u *model.Usuario) *model.Usuario {
	if u.ID == 0 {
		r.nextID++
		u.ID = r.nextID
	}
	r.usuarios[u.ID] = u
	return u
}

func (r *stubUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	r.add(u)
	return nil
}

func (r *stubUsuarioRepo) CreateTx(_ *gorm.DB, u *model.Usuario) error {
	r.add(u)
	return nil
}

func (r *stubUsuarioRepo) FindByID(_ context.Context, id uint) (*model.Usuario, error) {
	u, ok := r.usuarios[id]
	if !ok {
		return nil, errNotFound
	}
	return u, nil
}

func (r *stubUsuarioRepo) FindByEmail(_ context.Context, email string) (*model.Usuario, error) {
	for _, u := range r.usuarios {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, errNotFound
}

func (r *stubUsuarioRepo) DB() *gorm.DB { return nil }

var _ repository.UsuarioRepository = (*stubUsuarioRepo)(nil)

// ── stubCategoriaRepo ─────────────────────────────────────────────────────────

type stubCategoriaRepo struct {
	categorias map[uint]*model.Categoria
	nextID     uint
}

func newStubCategoriaRepo() *stubCategoriaRepo {
	return &stubCategoriaRepo{categorias: make(map[uint]*model.Categoria)}
}

func (r *stubCategoriaRepo) add(c *model.Categoria) *model.Categoria {
	if c.ID == 0 {
		r.nextID++
		c.ID = r.nextID
	}
	r.categorias[c.ID] = c
	return c
}

func (r *stubCategoriaRepo) Create(_ context.Context, c *model.Categoria) error {
	r.add(c)
	return nil
}

func (r *stubCategoriaRepo) FindByNome(_ context.Context, nome string) (*model.Categoria, error) {
	for _, c := range r.categorias {
		if c.Nome == nome {
			return c, nil
		}
	}
	return nil, errNotFound
}

func (r *stubCategoriaRepo) FindByIDs(_ context.Context, ids []uint) ([]model.Categoria, error) {
	var out []model.Categoria
	for _, id := range ids {
		if c, ok := r.categorias[id]; ok {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *stubCategoriaRepo) ListAtivas(_ context.Context) ([]model.Categoria, error) {
	var out []model.Categoria
	for _, c := range r.categorias {
		if c.Ativo {
			out = append(out, *c)
		}
	}
	return out, nil
}

var _ repository.CategoriaRepository = (*stubCategoriaRepo)(nil)

// ── stubDashboardRepo ─────────────────────────────────────────────────────────

type stubDashboardRepo struct {
	somaAtual    decimal.Decimal
	somaAnterior decimal.Decimal
	countVendas  int64
	porStatus    map[string]int64
}

func (r *stubDashboardRepo) SomaVendas(_ context.Context, de, ate *time.Time) (decimal.Decimal, error) {
	if ate != nil {
		return r.somaAnterior, nil
	}
	return r.somaAtual, nil
}

func (r *stubDashboardRepo) CountVendas(_ context.Context, _ time.Time) (int64, error) {
	return r.countVendas, nil
}

func (r *stubDashboardRepo) VendasPorDia(_ context.Context, _ time.Time) ([]dto.VendaPorDia, error) {
	return nil, nil
}

func (r *stubDashboardRepo) VendasPorMes(_ context.Context, _ int) ([]dto.VendaPorMes, error) {
	return nil, nil
}

func (r *stubDashboardRepo) ProdutosMaisVendidos(_ context.Context, _ time.Time, _ int) ([]dto.ProdutoMaisVendido, error) {
	return nil, nil
}

func (r *stubDashboardRepo) VendasPorCategoria(_ context.Context, _ time.Time) ([]dto.VendaPorCategoria, error) {
	return nil, nil
}

func (r *stubDashboardRepo) VendasPorGenero(_ context.Context, _ time.Time) ([]dto.VendaPorGenero, error) {
	return nil, nil
}

func (r *stubDashboardRepo) CountPorStatus(_ context.Context, _ time.Time, status ...string) (int64, error) {
	if r.porStatus == nil {
		return 0, errors.New("porStatus not seeded")
	}
	var n int64
	for _, s := range status {
		n += r.porStatus[s]
	}
	return n, nil
}

var _ repository.DashboardRepository = (*stubDashboardRepo)(nil)
