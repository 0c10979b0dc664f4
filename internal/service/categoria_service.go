package service

import (
	"context"
	"errors"

	"github.com/alefwesleimoreira/erp-mamae-eu-quero/internal/dto"
	"github.com/alefwesleimoreira/erp-mamae-eu-quero/internal/model"
	"github.com/alefwesleimoreira/erp-mamae-eu-quero/internal/repository"

	"gorm.io/gorm"
)

type CategoriaService interface {
	Criar(ctx context.Context, req dto.CriarCategoriaRequest) (*dto.CategoriaResponse, error)
	Listar(ctx context.Context) (*dto.CategoriaListResponse, error)
}

type categoriaService struct {
	repo repository.CategoriaRepository
}

func NewCategoriaService(repo repository.CategoriaRepository) CategoriaService {
	return &categoriaService{repo: repo}
}

func (s *categoriaService) Criar(ctx context.Context, req dto.CriarCategoriaRequest) (*dto.CategoriaResponse, error) {
	if _, err := s.repo.FindByNome(ctx, req.Nome); err == nil {
		return nil, ErrNomeDuplicado
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	categoria := &model.Categoria{
		Nome:      req.Nome,
		Descricao: req.Descricao,
		Slug:      req.Slug,
		Ativo:     true,
		Ordem:     req.Ordem,
	}
	if categoria.Slug == nil {
		slug := slugify(req.Nome)
		categoria.Slug = &slug
	}
	if err := s.repo.Create(ctx, categoria); err != nil {
		return nil, err
	}

	return &dto.CategoriaResponse{
		ID:        categoria.ID,
		Nome:      categoria.Nome,
		Descricao: categoria.Descricao,
		Slug:      categoria.Slug,
	}, nil
}

func (s *categoriaService) Listar(ctx context.Context) (*dto.CategoriaListResponse, error) {
	categorias, err := s.repo.ListAtivas(ctx)
	if err != nil {
		return nil, err
	}

	itens := make([]dto.CategoriaResponse, 0, len(categorias))
	for _, c := range categorias {
		itens = append(itens, dto.CategoriaResponse{
			ID:        c.ID,
			Nome:      c.Nome,
			Descricao: c.Descricao,
			Slug:      c.Slug,
		})
	}
	return &dto.CategoriaListResponse{Categorias: itens}, nil
}
