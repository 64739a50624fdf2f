package auth

import "time"

// Mailer puerto de correo saliente para el código de restablecimiento
// (implementado en infrastructure/mail). El envío es síncrono y sin reintentos.
type Mailer interface {
	SendResetCode(to, code string, ttl time.Duration) error
}
