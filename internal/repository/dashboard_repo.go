package repository

import (
	"context"
	"time"

	"github.com/alefwesleimoreira/erp-mamae-eu-quero/internal/dto"
	"github.com/alefwesleimoreira/erp-mamae-eu-quero/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DashboardRepository runs the read-only aggregation queries behind the
// dashboard endpoints. Every query excludes cancelled sales except
// CountPorStatus, which the conversion-rate breakdown uses directly.
type DashboardRepository interface {
	SomaVendas(ctx context.Context, de, ate *time.Time) (decimal.Decimal, error)
	CountVendas(ctx context.Context, de time.Time) (int64, error)
	VendasPorDia(ctx context.Context, de time.Time) ([]dto.VendaPorDia, error)
	VendasPorMes(ctx context.Context, limite int) ([]dto.VendaPorMes, error)
	ProdutosMaisVendidos(ctx context.Context, de time.Time, limite int) ([]dto.ProdutoMaisVendido, error)
	VendasPorCategoria(ctx context.Context, de time.Time) ([]dto.VendaPorCategoria, error)
	VendasPorGenero(ctx context.Context, de time.Time) ([]dto.VendaPorGenero, error)
	CountPorStatus(ctx context.Context, de time.Time, status ...string) (int64, error)
}

type dashboardRepo struct{ db *gorm.DB }

func NewDashboardRepository(db *gorm.DB) DashboardRepository { return &dashboardRepo{db: db} }

// SomaVendas totals non-cancelled sales in [de, ate). A nil bound is open.
func (r *dashboardRepo) SomaVendas(ctx context.Context, de, ate *time.Time) (decimal.Decimal, error) {
	q := r.db.WithContext(ctx).Model(&model.Venda{}).Where("status <> ?", model.VendaCancelado)
	if de != nil {
		q = q.Where("data_venda >= ?", *de)
	}
	if ate != nil {
		q = q.Where("data_venda < ?", *ate)
	}
	var total decimal.NullDecimal
	if err := q.Select("SUM(total)").Scan(&total).Error; err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}

func (r *dashboardRepo) CountVendas(ctx context.Context, de time.Time) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Venda{}).
		Where("data_venda >= ? AND status <> ?", de, model.VendaCancelado).
		Count(&total).Error
	return total, err
}

func (r *dashboardRepo) VendasPorDia(ctx context.Context, de time.Time) ([]dto.VendaPorDia, error) {
	rows := []struct {
		Data       time.Time
		Total      decimal.Decimal
		Quantidade int64
	}{}
	err := r.db.WithContext(ctx).Model(&model.Venda{}).
		Select("DATE(data_venda) AS data, SUM(total) AS total, COUNT(id) AS quantidade").
		Where("data_venda >= ? AND status <> ?", de, model.VendaCancelado).
		Group("DATE(data_venda)").
		Order("data ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]dto.VendaPorDia, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.VendaPorDia{
			Data:       row.Data.Format("2006-01-02"),
			Total:      row.Total,
			Quantidade: row.Quantidade,
		})
	}
	return out, nil
}

func (r *dashboardRepo) VendasPorMes(ctx context.Context, limite int) ([]dto.VendaPorMes, error) {
	rows := []struct {
		Mes        string
		Total      decimal.Decimal
		Quantidade int64
	}{}
	err := r.db.WithContext(ctx).Model(&model.Venda{}).
		Select("to_char(data_venda, 'YYYY-MM') AS mes, SUM(total) AS total, COUNT(id) AS quantidade").
		Where("status <> ?", model.VendaCancelado).
		Group("to_char(data_venda, 'YYYY-MM')").
		Order("mes ASC").
		Limit(limite).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]dto.VendaPorMes, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.VendaPorMes{Mes: row.Mes, Total: row.Total, Quantidade: row.Quantidade})
	}
	return out, nil
}

func (r *dashboardRepo) ProdutosMaisVendidos(ctx context.Context, de time.Time, limite int) ([]dto.ProdutoMaisVendido, error) {
	var out []dto.ProdutoMaisVendido
	err := r.db.WithContext(ctx).Model(&model.ItemVenda{}).
		Select(`produtos.id, produtos.nome,
			SUM(itens_venda.quantidade) AS quantidade_vendida,
			SUM(itens_venda.subtotal)   AS receita_total`).
		Joins("JOIN produtos ON produtos.id = itens_venda.produto_id").
		Joins("JOIN vendas ON vendas.id = itens_venda.venda_id").
		Where("vendas.data_venda >= ? AND vendas.status <> ?", de, model.VendaCancelado).
		Group("produtos.id, produtos.nome").
		Order("quantidade_vendida DESC").
		Limit(limite).
		Scan(&out).Error
	return out, err
}

// VendasPorCategoria attributes each item's revenue to every category of its
// product — a multi-category product counts in all of them.
func (r *dashboardRepo) VendasPorCategoria(ctx context.Context, de time.Time) ([]dto.VendaPorCategoria, error) {
	var out []dto.VendaPorCategoria
	err := r.db.WithContext(ctx).Model(&model.ItemVenda{}).
		Select("categorias.nome, SUM(itens_venda.subtotal) AS total").
		Joins("JOIN produto_categoria pc ON pc.produto_id = itens_venda.produto_id").
		Joins("JOIN categorias ON categorias.id = pc.categoria_id").
		Joins("JOIN vendas ON vendas.id = itens_venda.venda_id").
		Where("vendas.data_venda >= ? AND vendas.status <> ?", de, model.VendaCancelado).
		Group("categorias.nome").
		Scan(&out).Error
	return out, err
}

func (r *dashboardRepo) VendasPorGenero(ctx context.Context, de time.Time) ([]dto.VendaPorGenero, error) {
	var out []dto.VendaPorGenero
	err := r.db.WithContext(ctx).Model(&model.ItemVenda{}).
		Select("produtos.genero, SUM(itens_venda.quantidade) AS quantidade, SUM(itens_venda.subtotal) AS total").
		Joins("JOIN produtos ON produtos.id = itens_venda.produto_id").
		Joins("JOIN vendas ON vendas.id = itens_venda.venda_id").
		Where("vendas.data_venda >= ? AND vendas.status <> ? AND produtos.genero IS NOT NULL", de, model.VendaCancelado).
		Group("produtos.genero").
		Scan(&out).Error
	return out, err
}

func (r *dashboardRepo) CountPorStatus(ctx context.Context, de time.Time, status ...string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Venda{}).
		Where("data_venda >= ? AND status IN ?", de, status).
		Count(&total).Error
	return total, err
}
