package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrInvalidPassword    = errors.New("contraseña incorrecta")
	ErrLoginInFlight      = errors.New("ya hay una autenticación en curso")
	ErrValidation         = errors.New("entrada inválida")
	ErrAlreadyInitialized = errors.New("el catálogo ya fue inicializado")
	ErrMalformedSession   = errors.New("registro de sesión malformado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
)
