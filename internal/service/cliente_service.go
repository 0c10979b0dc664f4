package service

import (
	"context"

	"github.com/alefwesleimoreira/erp-mamae-eu-quero/internal/dto"
	"github.com/alefwesleimoreira/erp-mamae-eu-quero/internal/model"
	"github.com/alefwesleimoreira/erp-mamae-eu-quero/internal/repository"
)

type ClienteService interface {
	Criar(ctx context.Context, req dto.CriarClienteRequest) (*dto.ClienteResponse, error)
	Listar(ctx context.Context, filter dto.ClienteFilter) (*dto.ClienteListResponse, error)
	ObterPorID(ctx context.Context, id uint) (*dto.ClienteResponse, error)
}

type clienteService struct {
	repo repository.ClienteRepository
}

func NewClienteService(repo repository.ClienteRepository) ClienteService {
	return &clienteService{repo: repo}
}

func (s *clienteService) Criar(ctx context.Context, req dto.CriarClienteRequest) (*dto.ClienteResponse, error) {
	cliente := &model.Cliente{
		Nome:       req.Nome,
		CPF:        req.CPF,
		Email:      req.Email,
		Telefone:   req.Telefone,
		CEP:        req.CEP,
		Logradouro: req.Logradouro,
		Numero:     req.Numero,
		Bairro:     req.Bairro,
		Cidade:     req.Cidade,
		Estado:     req.Estado,
		Ativo:      true,
	}
	if err := s.repo.Create(ctx, cliente); err != nil {
		return nil, err
	}
	return clienteToResponse(cliente), nil
}

func (s *clienteService) Listar(ctx context.Context, filter dto.ClienteFilter) (*dto.ClienteListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}

	clientes, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	itens := make([]dto.ClienteListItem, 0, len(clientes))
	for _, c := range clientes {
		itens = append(itens, dto.ClienteListItem{
			ID:       c.ID,
			Nome:     c.Nome,
			Email:    c.Email,
			Telefone: c.Telefone,
			Cidade:   c.Cidade,
		})
	}
	return &dto.ClienteListResponse{Clientes: itens, Total: total}, nil
}

func (s *clienteService) ObterPorID(ctx context.Context, id uint) (*dto.ClienteResponse, error) {
	cliente, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrClienteNaoEncontrado
	}
	return clienteToResponse(cliente), nil
}

func clienteToResponse(c *model.Cliente) *dto.ClienteResponse {
	return &dto.ClienteResponse{
		ID:       c.ID,
		Nome:     c.Nome,
		CPF:      c.CPF,
		Email:    c.Email,
		Telefone: c.Telefone,
		Endereco: dto.EnderecoResponse{
			CEP:        c.CEP,
			Logradouro: c.Logradouro,
			Numero:     c.Numero,
			Bairro:     c.Bairro,
			Cidade:     c.Cidade,
			Estado:     c.Estado,
		},
	}
}
