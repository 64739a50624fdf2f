package entity

import "time"

// User representa una cuenta de administrador. Se aprovisiona fuera de banda;
// sus únicos campos mutables son la contraseña, el idioma y el par de
// restablecimiento.
//
// ResetCode y ResetCodeExpiresAt se asignan y se limpian siempre juntos. Un
// código es de un solo uso: muere al consumirse, al expirar o al acumular
// demasiados intentos fallidos (ResetAttempts).
type User struct {
	ID                 string
	Email              string // único
	PasswordHash       string // bcrypt; nunca en claro después de persistir
	Language           string // preferencia de idioma de la UI (ej. "en", "hi", "gu")
	ResetCode          *string
	ResetCodeExpiresAt *time.Time
	ResetAttempts      int
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// HasPendingReset indica si hay un par código/expiración almacenado.
func (u *User) HasPendingReset() bool {
	return u.ResetCode != nil && u.ResetCodeExpiresAt != nil
}

// ClearReset limpia el par de restablecimiento y el contador de intentos.
func (u *User) ClearReset() {
	u.ResetCode = nil
	u.ResetCodeExpiresAt = nil
	u.ResetAttempts = 0
}
