package dto

type CriarFornecedorRequest struct {
	RazaoSocial  string  `json:"razao_social"  validate:"required,min=2"`
	NomeFantasia *string `json:"nome_fantasia" validate:"omitempty,max=200"`
	CNPJ         *string `json:"cnpj"          validate:"omitempty,max=18"`
	Email        *string `json:"email"         validate:"omitempty,email"`
	Telefone     *string `json:"telefone"      validate:"omitempty,max=20"`
}

type FornecedorResponse struct {
	ID           uint    `json:"id"`
	RazaoSocial  string  `json:"razao_social"`
	NomeFantasia *string `json:"nome_fantasia"`
	CNPJ         *string `json:"cnpj"`
	Telefone     *string `json:"telefone"`
}

type FornecedorListResponse struct {
	Fornecedores []FornecedorResponse `json:"fornecedores"`
}
