package service

import "errors"

// Sentinel errors let handlers map failures onto the HTTP taxonomy
// (404 not found, 400 validation/conflict, 401/403 auth) without string
// matching.
var (
	ErrClienteNaoEncontrado   = errors.New("cliente não encontrado")
	ErrProdutoNaoEncontrado   = errors.New("produto não encontrado")
	ErrVariacaoNaoEncontrada  = errors.New("variação não encontrada")
	ErrVendaNaoEncontrada     = errors.New("venda não encontrada")
	ErrUsuarioNaoEncontrado   = errors.New("usuário não encontrado")
	ErrCategoriaNaoEncontrada = errors.New("categoria não encontrada")

	ErrEstoqueInsuficiente = errors.New("estoque insuficiente")
	ErrStatusInvalido      = errors.New("status inválido")
	ErrCodigoDuplicado     = errors.New("código já existe")
	ErrNomeDuplicado       = errors.New("nome já existe")
	ErrDataInvalida        = errors.New("data inválida")
	ErrEmailDuplicado      = errors.New("email já cadastrado")

	ErrCredenciaisInvalidas = errors.New("credenciais inválidas")
	ErrUsuarioInativo       = errors.New("usuário inativo")
	ErrAcessoNegado         = errors.New("acesso negado")
)
