package domain

import "errors"

// Erros de domínio (sem dependências externas). Os handlers HTTP traduzem
// cada um para o status e mensagem correspondentes.
var (
	ErrNotFound           = errors.New("recurso não encontrado")
	ErrUserNotFound       = errors.New("usuário não encontrado")
	ErrUsernameExists     = errors.New("usuário já existe")
	ErrInvalidCredentials = errors.New("credenciais inválidas")
	ErrSelfDeletion       = errors.New("não pode deletar a si mesmo")
	ErrNothingToUpdate    = errors.New("nenhum campo para atualizar")
	ErrAlreadyCheckedOut  = errors.New("visitante não encontrado ou já deu saída")
	ErrTripNotFound       = errors.New("viagem não encontrada")
	ErrAlreadyReturned    = errors.New("veículo já retornou")
	ErrScheduleNotFound   = errors.New("agendamento não encontrado")
	ErrForbidden          = errors.New("acesso negado")
	ErrUnauthorized       = errors.New("não autorizado")
)
