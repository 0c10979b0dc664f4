package repository

import (
	"context"
	"time"

	"github.com/alefwesleimoreira/erp-mamae-eu-quero/internal/dto"
	"github.com/alefwesleimoreira/erp-mamae-eu-quero/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type FinanceiroRepository interface {
	Create(ctx context.Context, l *model.Financeiro) error
	CreateTx(tx *gorm.DB, l *model.Financeiro) error
	List(ctx context.Context, filter dto.LancamentoFilter) ([]model.Financeiro, error)
	// SomaPagoDesde sums paid entries of a type whose payment date is on or
	// after inicio.
	SomaPagoDesde(ctx context.Context, tipo string, inicio time.Time) (decimal.Decimal, error)
	// SomaPendente sums pending entries of a type regardless of date.
	SomaPendente(ctx context.Context, tipo string) (decimal.Decimal, error)
}

type financeiroRepo struct{ db *gorm.DB }

func NewFinanceiroRepository(db *gorm.DB) FinanceiroRepository { return &financeiroRepo{db: db} }

func (r *financeiroRepo) Create(ctx context.Context, l *model.Financeiro) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *financeiroRepo) CreateTx(tx *gorm.DB, l *model.Financeiro) error {
	return tx.Create(l).Error
}

func (r *financeiroRepo) List(ctx context.Context, filter dto.LancamentoFilter) ([]model.Financeiro, error) {
	q := r.db.WithContext(ctx).Model(&model.Financeiro{})
	if filter.Tipo != "" {
		q = q.Where("tipo = ?", filter.Tipo)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var lancamentos []model.Financeiro
	err := q.Order("data_vencimento DESC").Limit(100).Find(&lancamentos).Error
	return lancamentos, err
}

func (r *financeiroRepo) SomaPagoDesde(ctx context.Context, tipo string, inicio time.Time) (decimal.Decimal, error) {
	return r.soma(ctx, r.db.WithContext(ctx).Model(&model.Financeiro{}).
		Where("tipo = ? AND status = 'pago' AND data_pagamento >= ?", tipo, inicio))
}

func (r *financeiroRepo) SomaPendente(ctx context.Context, tipo string) (decimal.Decimal, error) {
	return r.soma(ctx, r.db.WithContext(ctx).Model(&model.Financeiro{}).
		Where("tipo = ? AND status = 'pendente'", tipo))
}

func (r *financeiroRepo) soma(_ context.Context, q *gorm.DB) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := q.Select("SUM(valor)").Scan(&total).Error
	if err != nil || !total.Valid {
		return decimal.Zero, err
	}
	return total.Decimal, nil
}
