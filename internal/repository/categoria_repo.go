package repository

import (
	"context"

	"github.com/alefwesleimoreira/erp-mamae-eu-quero/internal/model"

	"gorm.io/gorm"
)

type CategoriaRepository interface {
	Create(ctx context.Context, c *model.Categoria) error
	FindByNome(ctx context.Context, nome string) (*model.Categoria, error)
	FindByIDs(ctx context.Context, ids []uint) ([]model.Categoria, error)
	ListAtivas(ctx context.Context) ([]model.Categoria, error)
}

type categoriaRepo struct{ db *gorm.DB }

func NewCategoriaRepository(db *gorm.DB) CategoriaRepository { return &categoriaRepo{db: db} }

func (r *categoriaRepo) Create(ctx context.Context, c *model.Categoria) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *categoriaRepo) FindByNome(ctx context.Context, nome string) (*model.Categoria, error) {
	var c model.Categoria
	err := r.db.WithContext(ctx).Where("nome = ?", nome).First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoriaRepo) FindByIDs(ctx context.Context, ids []uint) ([]model.Categoria, error) {
	var categorias []model.Categoria
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&categorias).Error
	return categorias, err
}

func (r *categoriaRepo) ListAtivas(ctx context.Context) ([]model.Categoria, error) {
	var categorias []model.Categoria
	err := r.db.WithContext(ctx).Where("ativo = true").Order("ordem ASC, nome ASC").Find(&categorias).Error
	return categorias, err
}
