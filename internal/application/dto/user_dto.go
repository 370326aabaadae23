package dto

// LoginRequest entrada para login (username + senha).
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse saída com token JWT e o usuário autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse saída de um usuário (nunca inclui a senha nem o hash).
type UserResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at,omitempty"`
}

// VerifyResponse saída de GET /auth/verify.
type VerifyResponse struct {
	User UserResponse `json:"user"`
}

// CreateUserRequest entrada para criar um usuário (senha em texto, o use case hashea).
type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=100"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required,max=200"`
	Role     string `json:"role" validate:"omitempty,oneof=admin porteiro"`
}

// UpdateUserRequest entrada para atualização parcial: campos vazios não são
// aplicados; apenas os fornecidos sobrescrevem.
type UpdateUserRequest struct {
	Username string `json:"username" validate:"omitempty,min=3,max=100"`
	Password string `json:"password" validate:"omitempty,min=6"`
	Name     string `json:"name" validate:"omitempty,max=200"`
	Role     string `json:"role" validate:"omitempty,oneof=admin porteiro"`
}
