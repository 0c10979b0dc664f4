package service

import (
	"context"

	"github.com/alefwesleimoreira/erp-mamae-eu-quero/internal/dto"
	"github.com/alefwesleimoreira/erp-mamae-eu-quero/internal/model"
	"github.com/alefwesleimoreira/erp-mamae-eu-quero/internal/repository"
)

type FornecedorService interface {
	Criar(ctx context.Context, req dto.CriarFornecedorRequest) (*dto.FornecedorResponse, error)
	Listar(ctx context.Context) (*dto.FornecedorListResponse, error)
}

type fornecedorService struct {
	repo repository.FornecedorRepository
}

func NewFornecedorService(repo repository.FornecedorRepository) FornecedorService {
	return &fornecedorService{repo: repo}
}

func (s *fornecedorService) Criar(ctx context.Context, req dto.CriarFornecedorRequest) (*dto.FornecedorResponse, error) {
	fornecedor := &model.Fornecedor{
		RazaoSocial:  req.RazaoSocial,
		NomeFantasia: req.NomeFantasia,
		CNPJ:         req.CNPJ,
		Email:        req.Email,
		Telefone:     req.Telefone,
		Ativo:        true,
	}
	if err := s.repo.Create(ctx, fornecedor); err != nil {
		return nil, err
	}
	return fornecedorToResponse(fornecedor), nil
}

func (s *fornecedorService) Listar(ctx context.Context) (*dto.FornecedorListResponse, error) {
	fornecedores, err := s.repo.ListAtivos(ctx)
	if err != nil {
		return nil, err
	}

	itens := make([]dto.FornecedorResponse, 0, len(fornecedores))
	for _, f := range fornecedores {
		itens = append(itens, *fornecedorToResponse(&f))
	}
	return &dto.FornecedorListResponse{Fornecedores: itens}, nil
}

func fornecedorToResponse(f *model.Fornecedor) *dto.FornecedorResponse {
	return &dto.FornecedorResponse{
		ID:           f.ID,
		RazaoSocial:  f.RazaoSocial,
		NomeFantasia: f.NomeFantasia,
		CNPJ:         f.CNPJ,
		Telefone:     f.Telefone,
	}
}
