// Package mail implementa el correo saliente SMTP para los códigos de
// restablecimiento de contraseña.
package mail

import (
	"fmt"
	"time"

	gomail "gopkg.in/gomail.v2"

	"github.com/Vansh2812/Tailor/internal/application/auth"
	"github.com/Vansh2812/Tailor/pkg/config"
)

var _ auth.Mailer = (*GomailSender)(nil)

// GomailSender implementa auth.Mailer sobre SMTP con gomail.
// Cada envío abre su propia conexión; sin reintentos.
type GomailSender struct {
	cfg config.SMTPConfig
}

// NewGomailSender construye el sender.
func NewGomailSender(cfg config.SMTPConfig) *GomailSender {
	return &GomailSender{cfg: cfg}
}

// SendResetCode envía el código de restablecimiento en un correo HTML.
func (s *GomailSender) SendResetCode(to, code string, ttl time.Duration) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Tailor Management - Password Reset Code")
	m.SetBody("text/html", resetCodeBody(code, ttl))

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.User, s.cfg.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp: enviar correo: %w", err)
	}
	return nil
}

func resetCodeBody(code string, ttl time.Duration) string {
	minutes := int(ttl.Minutes())
	return fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; color: #333; line-height: 1.6;">
  <div style="max-width: 600px; margin: auto; padding: 20px; border: 1px solid #e0e0e0; border-radius: 8px; background-color: #f9f9f9;">
    <h2 style="color: #1a73e8; text-align: center;">Tailor Management - Password Reset</h2>
    <p>Hello,</p>
    <p>We received a request to reset your password. Use the code below to reset it:</p>
    <p style="text-align: center; font-size: 24px; font-weight: bold; color: #d32f2f; margin: 20px 0;">%s</p>
    <p>This code will expire in <strong>%d minutes</strong>. If you did not request a password reset, please ignore this email.</p>
    <hr style="border: none; border-top: 1px solid #e0e0e0; margin: 20px 0;" />
    <p style="font-size: 12px; color: #888; text-align: center;">
      Tailor Management &copy; %d. All rights reserved.
    </p>
  </div>
</div>`, code, minutes, time.Now().Year())
}
