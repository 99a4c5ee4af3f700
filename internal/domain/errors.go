package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNaoEncontrado        = errors.New("recurso não encontrado")
	ErrEntradaInvalida      = errors.New("entrada inválida")
	ErrDuplicado            = errors.New("recurso duplicado")
	ErrConflito             = errors.New("conflito com o estado atual")
	ErrTransicaoInvalida    = errors.New("transição de situação inválida")
	ErrInventarioFechado    = errors.New("inventário já fechado")
	ErrUsuarioNaoEncontrado = errors.New("usuário não encontrado")
	ErrEmailJaRegistrado    = errors.New("o email já está registrado")
	ErrNaoAutorizado        = errors.New("não autorizado")
	ErrAcessoNegado         = errors.New("acesso negado")
)
