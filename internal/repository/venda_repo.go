package repository

import (
	"context"
	"time"

	"github.com/alefwesleimoreira/erp-mamae-eu-quero/internal/dto"
	"github.com/alefwesleimoreira/erp-mamae-eu-quero/internal/model"

	"gorm.io/gorm"
)

type VendaRepository interface {
	CreateTx(tx *gorm.DB, v *model.Venda) error
	FindByID(ctx context.Context, id uint) (*model.Venda, error)
	NumeroExiste(ctx context.Context, numero string) (bool, error)
	Update(ctx context.Context, v *model.Venda) error
	List(ctx context.Context, filter dto.VendaFilter) ([]model.Venda, int64, error)
	DB() *gorm.DB // exposes the DB so the service can open the sale transaction
}

type vendaRepo struct{ db *gorm.DB }

func NewVendaRepository(db *gorm.DB) VendaRepository { return &vendaRepo{db: db} }

func (r *vendaRepo) DB() *gorm.DB { return r.db }

func (r *vendaRepo) CreateTx(tx *gorm.DB, v *model.Venda) error {
	return tx.Create(v).Error
}

func (r *vendaRepo) FindByID(ctx context.Context, id uint) (*model.Venda, error) {
	var v model.Venda
	err := r.db.WithContext(ctx).
		Preload("Cliente").
		Preload("Itens.Produto").
		First(&v, id).Error
	return &v, err
}

func (r *vendaRepo) NumeroExiste(ctx context.Context, numero string) (bool, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Venda{}).
		Where("numero_venda = ?", numero).Count(&total).Error
	return total > 0, err
}

func (r *vendaRepo) Update(ctx context.Context, v *model.Venda) error {
	return r.db.WithContext(ctx).Omit("Itens", "Cliente").Save(v).Error
}

func (r *vendaRepo) List(ctx context.Context, filter dto.VendaFilter) ([]model.Venda, int64, error) {
	var vendas []model.Venda
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Venda{})

	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.ClienteID != 0 {
		q = q.Where("cliente_id = ?", filter.ClienteID)
	}
	if filter.DataInicio != "" {
		if t, err := time.Parse("2006-01-02", filter.DataInicio); err == nil {
			q = q.Where("data_venda >= ?", t)
		}
	}
	if filter.DataFim != "" {
		if t, err := time.Parse("2006-01-02", filter.DataFim); err == nil {
			q = q.Where("data_venda <= ?", t)
		}
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Preload("Cliente").Preload("Itens").
		Order("data_venda DESC").
		Offset(offset).Limit(filter.Limit).
		Find(&vendas).Error
	return vendas, total, err
}
