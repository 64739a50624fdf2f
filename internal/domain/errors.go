package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrUserNotFound     = errors.New("usuario no encontrado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrUnauthorized     = errors.New("no autorizado")
	ErrTotalMismatch    = errors.New("el total no coincide con la suma de los trabajos")
	ErrNoResetRequest   = errors.New("no hay solicitud de restablecimiento")
	ErrResetCodeInvalid = errors.New("código de restablecimiento inválido")
	ErrResetCodeExpired = errors.New("código de restablecimiento expirado")
	ErrMailDelivery     = errors.New("no se pudo enviar el correo")
)
