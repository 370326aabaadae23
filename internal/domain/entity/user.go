package entity

// Papéis válidos para User. O papel é o único eixo de autorização:
// admin gere usuários; porteiro opera os registros do dia a dia.
const (
	RoleAdmin    = "admin"
	RolePorteiro = "porteiro"
)

// User representa um usuário do sistema (porteiro ou administrador).
// Os timestamps são strings RFC3339 em UTC, como todo o restante do domínio.
type User struct {
	ID           string
	Username     string
	PasswordHash string // bcrypt hash, nunca em texto plano após persistir
	Name         string
	Role         string // admin, porteiro
	CreatedAt    string
}
