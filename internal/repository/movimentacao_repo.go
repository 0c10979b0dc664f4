package repository

import (
	"context"

	"github.com/alefwesleimoreira/erp-mamae-eu-quero/internal/dto"
	"github.com/alefwesleimoreira/erp-mamae-eu-quero/internal/model"

	"gorm.io/gorm"
)

// MovimentacaoRepository is the append-only stock ledger. There is no update
// or delete — corrections are new rows.
type MovimentacaoRepository interface {
	Create(ctx context.Context, m *model.MovimentacaoEstoque) error
	CreateTx(tx *gorm.DB, m *model.MovimentacaoEstoque) error
	List(ctx context.Context, filter dto.MovimentacaoFilter) ([]model.MovimentacaoEstoque, int64, error)
}

type movimentacaoRepo struct{ db *gorm.DB }

func NewMovimentacaoRepository(db *gorm.DB) MovimentacaoRepository {
	return &movimentacaoRepo{db: db}
}

func (r *movimentacaoRepo) Create(ctx context.Context, m *model.MovimentacaoEstoque) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *movimentacaoRepo) CreateTx(tx *gorm.DB, m *model.MovimentacaoEstoque) error {
	return tx.Create(m).Error
}

func (r *movimentacaoRepo) List(ctx context.Context, filter dto.MovimentacaoFilter) ([]model.MovimentacaoEstoque, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.MovimentacaoEstoque{}).Preload("Produto")
	if filter.ProdutoID != 0 {
		q = q.Where("produto_id = ?", filter.ProdutoID)
	}
	if filter.Tipo != "" {
		q = q.Where("tipo = ?", filter.Tipo)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	var movimentacoes []model.MovimentacaoEstoque
	err := q.Order("data_movimentacao DESC").Offset(offset).Limit(filter.Limit).Find(&movimentacoes).Error
	return movimentacoes, total, err
}
