package dto

// ClienteFilter is bound from the query string of GET /api/clientes.
type ClienteFilter struct {
	Busca string `form:"q"`
	Page  int    `form:"page,default=1"      validate:"min=1"`
	Limit int    `form:"per_page,default=50" validate:"min=1,max=200"`
}

type CriarClienteRequest struct {
	Nome       string  `json:"nome"       validate:"required,min=2"`
	CPF        *string `json:"cpf"        validate:"omitempty,max=14"`
	Email      *string `json:"email"      validate:"omitempty,email"`
	Telefone   *string `json:"telefone"   validate:"omitempty,max=20"`
	CEP        *string `json:"cep"        validate:"omitempty,max=10"`
	Logradouro *string `json:"logradouro" validate:"omitempty,max=200"`
	Numero     *string `json:"numero"     validate:"omitempty,max=10"`
	Bairro     *string `json:"bairro"     validate:"omitempty,max=100"`
	Cidade     *string `json:"cidade"     validate:"omitempty,max=100"`
	Estado     *string `json:"estado"     validate:"omitempty,len=2"`
}

type ClienteListItem struct {
	ID       uint    `json:"id"`
	Nome     string  `json:"nome"`
	Email    *string `json:"email"`
	Telefone *string `json:"telefone"`
	Cidade   *string `json:"cidade"`
}

type ClienteListResponse struct {
	Clientes []ClienteListItem `json:"clientes"`
	Total    int64             `json:"total"`
}

type EnderecoResponse struct {
	CEP        *string `json:"cep"`
	Logradouro *string `json:"logradouro"`
	Numero     *string `json:"numero"`
	Bairro     *string `json:"bairro"`
	Cidade     *string `json:"cidade"`
	Estado     *string `json:"estado"`
}

type ClienteResponse struct {
	ID       uint             `json:"id"`
	Nome     string           `json:"nome"`
	CPF      *string          `json:"cpf"`
	Email    *string          `json:"email"`
	Telefone *string          `json:"telefone"`
	Endereco EnderecoResponse `json:"endereco"`
}
