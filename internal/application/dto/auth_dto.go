package dto

// RegisterRequest cadastro de usuário.
type RegisterRequest struct {
	Email  string `json:"email"`
	Senha  string `json:"senha"`
	Nome   string `json:"nome"`
	Perfil string `json:"perfil"` // ADMIN | GESTOR | CONSULTA
}

// LoginRequest credenciais de acesso.
type LoginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// UserResponse representação de um usuário (sem hash de senha).
type UserResponse struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Nome   string `json:"nome"`
	Perfil string `json:"perfil"`
}

// LoginResponse token JWT + usuário autenticado.
type LoginResponse struct {
	Token   string       `json:"token"`
	Usuario UserResponse `json:"usuario"`
}
