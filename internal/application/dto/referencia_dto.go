package dto

import "time"

// DTOs dos dados de referência (setores, categorias, fornecedores).

// CriarSetorRequest cadastro de um nó da hierarquia organizacional.
type CriarSetorRequest struct {
	Nome        string  `json:"nome"`
	Sigla       string  `json:"sigla"`
	PaiID       *string `json:"paiId"`
	CentroCusto string  `json:"centroCusto"`
	Responsavel string  `json:"responsavel"`
}

// AtualizarSetorRequest edição parcial: só campos presentes são aplicados.
type AtualizarSetorRequest struct {
	Nome        *string `json:"nome"`
	Sigla       *string `json:"sigla"`
	CentroCusto *string `json:"centroCusto"`
	Responsavel *string `json:"responsavel"`
	Ativo       *bool   `json:"ativo"`
}

// SetorResponse representação de um setor.
type SetorResponse struct {
	ID          string  `json:"id"`
	Nome        string  `json:"nome"`
	Sigla       string  `json:"sigla"`
	PaiID       *string `json:"paiId,omitempty"`
	CentroCusto string  `json:"centroCusto,omitempty"`
	Responsavel string  `json:"responsavel,omitempty"`
	Ativo       bool    `json:"ativo"`
}

// CriarCategoriaRequest cadastro de categoria.
type CriarCategoriaRequest struct {
	Nome                string `json:"nome"`
	VidaUtilPadraoMeses int    `json:"vidaUtilPadraoMeses"`
}

// CategoriaResponse representação de uma categoria.
type CategoriaResponse struct {
	ID                  string    `json:"id"`
	Nome                string    `json:"nome"`
	VidaUtilPadraoMeses int       `json:"vidaUtilPadraoMeses"`
	CriadoEm            time.Time `json:"criadoEm"`
}

// CriarSubcategoriaRequest cadastro de subcategoria.
type CriarSubcategoriaRequest struct {
	CategoriaID string `json:"categoriaId"`
	Nome        string `json:"nome"`
}

// SubcategoriaResponse representação de uma subcategoria.
type SubcategoriaResponse struct {
	ID          string `json:"id"`
	CategoriaID string `json:"categoriaId"`
	Nome        string `json:"nome"`
}

// CriarFornecedorRequest cadastro de fornecedor de manutenção.
type CriarFornecedorRequest struct {
	Nome     string `json:"nome"`
	CNPJ     string `json:"cnpj"`
	Email    string `json:"email"`
	Telefone string `json:"telefone"`
}

// AtualizarFornecedorRequest edição parcial: só campos presentes são aplicados.
type AtualizarFornecedorRequest struct {
	Nome     *string `json:"nome"`
	Email    *string `json:"email"`
	Telefone *string `json:"telefone"`
	Ativo    *bool   `json:"ativo"`
}

// FornecedorResponse representação de um fornecedor.
type FornecedorResponse struct {
	ID       string `json:"id"`
	Nome     string `json:"nome"`
	CNPJ     string `json:"cnpj"`
	Email    string `json:"email,omitempty"`
	Telefone string `json:"telefone,omitempty"`
	Ativo    bool   `json:"ativo"`
}
