package dto

type CriarCategoriaRequest struct {
	Nome      string  `json:"nome"      validate:"required,min=2,max=100"`
	Descricao *string `json:"descricao"`
	Slug      *string `json:"slug"      validate:"omitempty,max=100"`
	Ordem     int     `json:"ordem"     validate:"min=0"`
}

type CategoriaResponse struct {
	ID        uint    `json:"id"`
	Nome      string  `json:"nome"`
	Descricao *string `json:"descricao"`
	Slug      *string `json:"slug"`
}

type CategoriaListResponse struct {
	Categorias []CategoriaResponse `json:"categorias"`
}
