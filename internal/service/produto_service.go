package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alefwesleimoreira/erp-mamae-eu-quero/internal/dto"
	"github.com/alefwesleimoreira/erp-mamae-eu-quero/internal/model"
	"github.com/alefwesleimoreira/erp-mamae-eu-quero/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	produtoCacheTTL    = 5 * time.Minute
	produtoCachePrefix = "cache:produto:"
)

type ProdutoService interface {
	Criar(ctx context.Context, req dto.CriarProdutoRequest) (*dto.ProdutoCriadoResponse, error)
	Listar(ctx context.Context, filter dto.ProdutoFilter) (*dto.ProdutoListResponse, error)
	ObterPorID(ctx context.Context, id uint) (*dto.ProdutoResponse, error)
	Atualizar(ctx context.Context, id uint, req dto.AtualizarProdutoRequest) error
	Desativar(ctx context.Context, id uint) error
}

type produtoService struct {
	repo          repository.ProdutoRepository
	categoriaRepo repository.CategoriaRepository
	rdb           *redis.Client
}

func NewProdutoService(repo repository.ProdutoRepository, categoriaRepo repository.CategoriaRepository, rdb *redis.Client) ProdutoService {
	return &produtoService{repo: repo, categoriaRepo: categoriaRepo, rdb: rdb}
}

func (s *produtoService) Criar(ctx context.Context, req dto.CriarProdutoRequest) (*dto.ProdutoCriadoResponse, error) {
	if _, err := s.repo.FindByCodigo(ctx, req.Codigo); err == nil {
		return nil, ErrCodigoDuplicado
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if err := s.validarCategorias(ctx, req.Categorias); err != nil {
		return nil, err
	}

	produto := &model.Produto{
		Codigo:           req.Codigo,
		Nome:             req.Nome,
		Descricao:        req.Descricao,
		Slug:             req.Slug,
		Genero:           req.Genero,
		FaixaEtaria:      req.FaixaEtaria,
		PrecoCusto:       req.PrecoCusto,
		PrecoVenda:       req.PrecoVenda,
		PrecoPromocional: req.PrecoPromocional,
		EstoqueAtual:     req.EstoqueAtual,
		EstoqueMinimo:    5,
		EstoqueMaximo:    100,
		FornecedorID:     req.FornecedorID,
		Peso:             req.Peso,
		Altura:           req.Altura,
		Largura:          req.Largura,
		Profundidade:     req.Profundidade,
		Ativo:            true,
		Destaque:         req.Destaque,
	}
	if req.EstoqueMinimo != nil {
		produto.EstoqueMinimo = *req.EstoqueMinimo
	}
	if req.EstoqueMaximo != nil {
		produto.EstoqueMaximo = *req.EstoqueMaximo
	}
	if req.Ativo != nil {
		produto.Ativo = *req.Ativo
	}
	if produto.Slug == nil {
		slug := slugify(req.Nome)
		produto.Slug = &slug
	}
	produto.MargemLucro = calcularMargem(produto.PrecoCusto, produto.PrecoVenda)

	for _, img := range req.Imagens {
		produto.Imagens = append(produto.Imagens, model.ImagemProduto{
			URL:       img.URL,
			Principal: img.Principal,
			Ordem:     img.Ordem,
		})
	}
	for _, v := range req.Variacoes {
		produto.Variacoes = append(produto.Variacoes, model.ProdutoVariacao{
			Tamanho:        v.Tamanho,
			Cor:            v.Cor,
			CodigoSKU:      v.CodigoSKU,
			Estoque:        v.Estoque,
			PrecoAdicional: v.PrecoAdicional,
			Ativo:          true,
		})
	}
	for _, cid := range req.Categorias {
		produto.Categorias = append(produto.Categorias, model.ProdutoCategoria{CategoriaID: cid})
	}

	if err := s.repo.Create(ctx, produto); err != nil {
		return nil, err
	}

	return &dto.ProdutoCriadoResponse{
		ID:     produto.ID,
		Codigo: produto.Codigo,
		Nome:   produto.Nome,
	}, nil
}

func (s *produtoService) Listar(ctx context.Context, filter dto.ProdutoFilter) (*dto.ProdutoListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}

	produtos, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	itens := make([]dto.ProdutoListItem, 0, len(produtos))
	for _, p := range produtos {
		item := dto.ProdutoListItem{
			ID:                p.ID,
			Codigo:            p.Codigo,
			Nome:              p.Nome,
			Descricao:         p.Descricao,
			Slug:              p.Slug,
			PrecoVenda:        p.PrecoVenda,
			PrecoPromocional:  p.PrecoPromocional,
			EstoqueDisponivel: p.EstoqueAtual > 0,
			Destaque:          p.Destaque,
			Genero:            p.Genero,
			FaixaEtaria:       p.FaixaEtaria,
			Categorias:        categoriasToResponse(p.Categorias),
		}
		// Cover image: the one marked principal, or the first by order.
		for i := range p.Imagens {
			if p.Imagens[i].Principal || item.Imagem == nil {
				url := p.Imagens[i].URL
				item.Imagem = &url
				if p.Imagens[i].Principal {
					break
				}
			}
		}
		itens = append(itens, item)
	}

	paginas := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))
	return &dto.ProdutoListResponse{
		Produtos:    itens,
		Total:       total,
		Paginas:     paginas,
		PaginaAtual: filter.Page,
		PorPagina:   filter.Limit,
	}, nil
}

// ObterPorID serves the product detail through a Redis read cache. Cache
// failures fall through to the database; a miss repopulates best-effort.
func (s *produtoService) ObterPorID(ctx context.Context, id uint) (*dto.ProdutoResponse, error) {
	key := fmt.Sprintf("%s%d", produtoCachePrefix, id)
	if s.rdb != nil {
		if raw, err := s.rdb.Get(ctx, key).Result(); err == nil {
			var cached dto.ProdutoResponse
			if json.Unmarshal([]byte(raw), &cached) == nil {
				return &cached, nil
			}
		}
	}

	produto, err := s.repo.FindByID(ctx, id)
	if err != nil || !produto.Ativo {
		return nil, ErrProdutoNaoEncontrado
	}

	resp := produtoToResponse(produto)

	if s.rdb != nil {
		if raw, err := json.Marshal(resp); err == nil {
			if err := s.rdb.Set(ctx, key, raw, produtoCacheTTL).Err(); err != nil {
				log.Debug().Err(err).Uint("produto_id", id).Msg("falha ao popular cache de produto")
			}
		}
	}
	return resp, nil
}

func (s *produtoService) Atualizar(ctx context.Context, id uint, req dto.AtualizarProdutoRequest) error {
	produto, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ErrProdutoNaoEncontrado
	}
	if req.Categorias != nil {
		if err := s.validarCategorias(ctx, *req.Categorias); err != nil {
			return err
		}
	}

	if req.Nome != nil {
		produto.Nome = *req.Nome
	}
	if req.Descricao != nil {
		produto.Descricao = req.Descricao
	}
	if req.Slug != nil {
		produto.Slug = req.Slug
	}
	if req.Genero != nil {
		produto.Genero = req.Genero
	}
	if req.FaixaEtaria != nil {
		produto.FaixaEtaria = req.FaixaEtaria
	}
	if req.PrecoCusto != nil {
		produto.PrecoCusto = *req.PrecoCusto
	}
	if req.PrecoVenda != nil {
		produto.PrecoVenda = *req.PrecoVenda
	}
	if req.PrecoPromocional != nil {
		produto.PrecoPromocional = req.PrecoPromocional
	}
	if req.EstoqueMinimo != nil {
		produto.EstoqueMinimo = *req.EstoqueMinimo
	}
	if req.EstoqueMaximo != nil {
		produto.EstoqueMaximo = *req.EstoqueMaximo
	}
	if req.FornecedorID != nil {
		produto.FornecedorID = req.FornecedorID
	}
	if req.Peso != nil {
		produto.Peso = req.Peso
	}
	if req.Altura != nil {
		produto.Altura = req.Altura
	}
	if req.Largura != nil {
		produto.Largura = req.Largura
	}
	if req.Profundidade != nil {
		produto.Profundidade = req.Profundidade
	}
	if req.Ativo != nil {
		produto.Ativo = *req.Ativo
	}
	if req.Destaque != nil {
		produto.Destaque = *req.Destaque
	}
	if req.PrecoCusto != nil || req.PrecoVenda != nil {
		produto.MargemLucro = calcularMargem(produto.PrecoCusto, produto.PrecoVenda)
	}

	if err := s.repo.Update(ctx, produto); err != nil {
		return err
	}
	if req.Categorias != nil {
		if err := s.repo.ReplaceCategorias(ctx, id, *req.Categorias); err != nil {
			return err
		}
	}

	s.invalidarCache(ctx, id)
	return nil
}

func (s *produtoService) Desativar(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return ErrProdutoNaoEncontrado
	}
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return err
	}
	s.invalidarCache(ctx, id)
	return nil
}

// validarCategorias rejects category sets referencing unknown IDs before any
// join row is written.
func (s *produtoService) validarCategorias(ctx context.Context, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	categorias, err := s.categoriaRepo.FindByIDs(ctx, ids)
	if err != nil {
		return err
	}
	if len(categorias) != len(ids) {
		return ErrCategoriaNaoEncontrada
	}
	return nil
}

func (s *produtoService) invalidarCache(ctx context.Context, id uint) {
	if s.rdb == nil {
		return
	}
	key := fmt.Sprintf("%s%d", produtoCachePrefix, id)
	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		log.Debug().Err(err).Uint("produto_id", id).Msg("falha ao invalidar cache de produto")
	}
}

// calcularMargem derives the profit margin percentage. Zero cost yields nil.
func calcularMargem(custo, venda decimal.Decimal) *decimal.Decimal {
	if custo.IsZero() {
		return nil
	}
	margem := venda.Sub(custo).Div(custo).Mul(decimal.NewFromInt(100)).Round(2)
	return &margem
}

func slugify(nome string) string {
	s := strings.ToLower(strings.TrimSpace(nome))
	var b strings.Builder
	lastDash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		case !lastDash && b.Len() > 0:
			b.WriteByte('-')
			lastDash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

func categoriasToResponse(pcs []model.ProdutoCategoria) []dto.CategoriaResponse {
	out := make([]dto.CategoriaResponse, 0, len(pcs))
	for _, pc := range pcs {
		if pc.Categoria == nil {
			continue
		}
		out = append(out, dto.CategoriaResponse{
			ID:        pc.Categoria.ID,
			Nome:      pc.Categoria.Nome,
			Descricao: pc.Categoria.Descricao,
			Slug:      pc.Categoria.Slug,
		})
	}
	return out
}

func produtoToResponse(p *model.Produto) *dto.ProdutoResponse {
	resp := &dto.ProdutoResponse{
		ID:               p.ID,
		Codigo:           p.Codigo,
		Nome:             p.Nome,
		Descricao:        p.Descricao,
		Slug:             p.Slug,
		Genero:           p.Genero,
		FaixaEtaria:      p.FaixaEtaria,
		PrecoVenda:       p.PrecoVenda,
		PrecoPromocional: p.PrecoPromocional,
		EstoqueAtual:     p.EstoqueAtual,
		Peso:             p.Peso,
		Dimensoes: dto.DimensoesResponse{
			Altura:       p.Altura,
			Largura:      p.Largura,
			Profundidade: p.Profundidade,
		},
		Imagens:    make([]dto.ImagemResponse, 0, len(p.Imagens)),
		Variacoes:  make([]dto.VariacaoResponse, 0, len(p.Variacoes)),
		Categorias: categoriasToResponse(p.Categorias),
	}
	for _, img := range p.Imagens {
		resp.Imagens = append(resp.Imagens, dto.ImagemResponse{
			ID:        img.ID,
			URL:       img.URL,
			Principal: img.Principal,
			Ordem:     img.Ordem,
		})
	}
	for _, v := range p.Variacoes {
		resp.Variacoes = append(resp.Variacoes, dto.VariacaoResponse{
			ID:             v.ID,
			Tamanho:        v.Tamanho,
			Cor:            v.Cor,
			Estoque:        v.Estoque,
			PrecoAdicional: v.PrecoAdicional,
			Disponivel:     v.Ativo && v.Estoque > 0,
		})
	}
	return resp
}
