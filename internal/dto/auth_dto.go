package dto

type RegisterRequest struct {
	Nome     string  `json:"nome"     validate:"required,min=2"`
	Email    string  `json:"email"    validate:"required,email"`
	Senha    string  `json:"senha"    validate:"required,min=6"`
	Telefone *string `json:"telefone" validate:"omitempty,max=20"`
	CPF      *string `json:"cpf"      validate:"omitempty,max=14"`
}

type LoginRequest struct {
	Email string `json:"email" validate:"required,email"`
	Senha string `json:"senha" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type UsuarioResponse struct {
	ID    uint   `json:"id"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Tipo  string `json:"tipo"`
	Ativo bool   `json:"ativo"`
}

type LoginResponse struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	Usuario      UsuarioResponse `json:"usuario"`
}

type RefreshResponse struct {
	AccessToken string `json:"access_token"`
}
