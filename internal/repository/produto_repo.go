package repository

import (
	"context"
	"errors"

	"github.com/alefwesleimoreira/erp-mamae-eu-quero/internal/dto"
	"github.com/alefwesleimoreira/erp-mamae-eu-quero/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrEstoqueInsuficiente is returned by the conditional decrement when the row
// no longer has enough stock at commit time.
var ErrEstoqueInsuficiente = errors.New("estoque insuficiente")

// ProdutoRepository defines the data access contract for products and their
// variants. Services depend on this interface, not on the concrete GORM
// implementation, enabling unit testing via in-memory stubs.
type ProdutoRepository interface {
	Create(ctx context.Context, p *model.Produto) error
	FindByID(ctx context.Context, id uint) (*model.Produto, error)
	FindByCodigo(ctx context.Context, codigo string) (*model.Produto, error)
	List(ctx context.Context, filter dto.ProdutoFilter) ([]model.Produto, int64, error)
	Update(ctx context.Context, p *model.Produto) error
	SoftDelete(ctx context.Context, id uint) error
	ReplaceCategorias(ctx context.Context, produtoID uint, categoriaIDs []uint) error
	ListEstoqueBaixo(ctx context.Context) ([]model.Produto, error)
	CountAtivos(ctx context.Context) (int64, error)
	CountEstoqueBaixo(ctx context.Context) (int64, error)

	// Variants
	FindVariacaoByID(ctx context.Context, id uint) (*model.ProdutoVariacao, error)

	// Used inside transactions — callers must pass the tx instance.
	// The *Tx finders take a row lock so the movement before/after snapshot
	// is exact under concurrency.
	FindByIDTx(tx *gorm.DB, id uint) (*model.Produto, error)
	FindVariacaoByIDTx(tx *gorm.DB, id uint) (*model.ProdutoVariacao, error)
	// DecrementarEstoqueTx is a conditional atomic decrement: it only applies
	// when estoque_atual >= quantidade, otherwise ErrEstoqueInsuficiente.
	DecrementarEstoqueTx(tx *gorm.DB, id uint, quantidade int) error
	DecrementarEstoqueVariacaoTx(tx *gorm.DB, id uint, quantidade int) error
	// AjustarEstoqueTx applies a signed delta without the availability guard
	// (manual entries, adjustments, returns).
	AjustarEstoqueTx(tx *gorm.DB, id uint, delta int) error
	AjustarEstoqueVariacaoTx(tx *gorm.DB, id uint, delta int) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type produtoRepo struct{ db *gorm.DB }

func NewProdutoRepository(db *gorm.DB) ProdutoRepository { return &produtoRepo{db: db} }

func (r *produtoRepo) DB() *gorm.DB { return r.db }

func (r *produtoRepo) Create(ctx context.Context, p *model.Produto) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *produtoRepo) FindByID(ctx context.Context, id uint) (*model.Produto, error) {
	var p model.Produto
	err := r.db.WithContext(ctx).
		Preload("Imagens", func(db *gorm.DB) *gorm.DB { return db.Order("ordem ASC") }).
		Preload("Variacoes").
		Preload("Categorias.Categoria").
		First(&p, id).Error
	return &p, err
}

func (r *produtoRepo) FindByCodigo(ctx context.Context, codigo string) (*model.Produto, error) {
	var p model.Produto
	err := r.db.WithContext(ctx).Where("codigo = ?", codigo).First(&p).Error
	return &p, err
}

func (r *produtoRepo) List(ctx context.Context, filter dto.ProdutoFilter) ([]model.Produto, int64, error) {
	var produtos []model.Produto
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Produto{}).Where("produtos.ativo = true")

	if filter.CategoriaID != 0 {
		q = q.Joins("JOIN produto_categoria pc ON pc.produto_id = produtos.id").
			Where("pc.categoria_id = ?", filter.CategoriaID)
	}
	if filter.Genero != "" {
		q = q.Where("genero = ?", filter.Genero)
	}
	if filter.FaixaEtaria != "" {
		q = q.Where("faixa_etaria = ?", filter.FaixaEtaria)
	}
	if filter.Destaque {
		q = q.Where("destaque = true")
	}
	if filter.Busca != "" {
		like := "%" + filter.Busca + "%"
		q = q.Where("nome ILIKE ? OR descricao ILIKE ? OR codigo ILIKE ?", like, like, like)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	switch filter.Ordem {
	case "preco_asc":
		q = q.Order("preco_venda ASC")
	case "preco_desc":
		q = q.Order("preco_venda DESC")
	case "nome":
		q = q.Order("nome ASC")
	default: // recentes
		q = q.Order("produtos.created_at DESC")
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Preload("Imagens").Preload("Categorias.Categoria").
		Offset(offset).Limit(filter.Limit).Find(&produtos).Error
	return produtos, total, err
}

func (r *produtoRepo) Update(ctx context.Context, p *model.Produto) error {
	return r.db.WithContext(ctx).Omit("Imagens", "Variacoes", "Categorias").Save(p).Error
}

func (r *produtoRepo) SoftDelete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&model.Produto{}).Where("id = ?", id).Update("ativo", false).Error
}

// ReplaceCategorias swaps the whole category set of a product. The join rows
// are owned by neither side, so they are rewritten wholesale.
func (r *produtoRepo) ReplaceCategorias(ctx context.Context, produtoID uint, categoriaIDs []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("produto_id = ?", produtoID).Delete(&model.ProdutoCategoria{}).Error; err != nil {
			return err
		}
		for _, cid := range categoriaIDs {
			if err := tx.Create(&model.ProdutoCategoria{ProdutoID: produtoID, CategoriaID: cid}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *produtoRepo) ListEstoqueBaixo(ctx context.Context) ([]model.Produto, error) {
	var produtos []model.Produto
	err := r.db.WithContext(ctx).
		Where("estoque_atual <= estoque_minimo AND ativo = true").
		Find(&produtos).Error
	return produtos, err
}

func (r *produtoRepo) CountAtivos(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Produto{}).Where("ativo = true").Count(&total).Error
	return total, err
}

func (r *produtoRepo) CountEstoqueBaixo(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Produto{}).
		Where("estoque_atual <= estoque_minimo AND ativo = true").Count(&total).Error
	return total, err
}

func (r *produtoRepo) FindVariacaoByID(ctx context.Context, id uint) (*model.ProdutoVariacao, error) {
	var v model.ProdutoVariacao
	err := r.db.WithContext(ctx).First(&v, id).Error
	return &v, err
}

func (r *produtoRepo) FindByIDTx(tx *gorm.DB, id uint) (*model.Produto, error) {
	var p model.Produto
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&p, id).Error
	return &p, err
}

func (r *produtoRepo) FindVariacaoByIDTx(tx *gorm.DB, id uint) (*model.ProdutoVariacao, error) {
	var v model.ProdutoVariacao
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&v, id).Error
	return &v, err
}

func (r *produtoRepo) DecrementarEstoqueTx(tx *gorm.DB, id uint, quantidade int) error {
	res := tx.Model(&model.Produto{}).
		Where("id = ? AND estoque_atual >= ?", id, quantidade).
		Update("estoque_atual", gorm.Expr("estoque_atual - ?", quantidade))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrEstoqueInsuficiente
	}
	return nil
}

func (r *produtoRepo) DecrementarEstoqueVariacaoTx(tx *gorm.DB, id uint, quantidade int) error {
	res := tx.Model(&model.ProdutoVariacao{}).
		Where("id = ? AND estoque >= ?", id, quantidade).
		Update("estoque", gorm.Expr("estoque - ?", quantidade))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrEstoqueInsuficiente
	}
	return nil
}

func (r *produtoRepo) AjustarEstoqueTx(tx *gorm.DB, id uint, delta int) error {
	return tx.Model(&model.Produto{}).Where("id = ?", id).
		Update("estoque_atual", gorm.Expr("estoque_atual + ?", delta)).Error
}

func (r *produtoRepo) AjustarEstoqueVariacaoTx(tx *gorm.DB, id uint, delta int) error {
	return tx.Model(&model.ProdutoVariacao{}).Where("id = ?", id).
		Update("estoque", gorm.Expr("estoque + ?", delta)).Error
}
