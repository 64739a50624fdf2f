// Package auth contiene los casos de uso de autenticación y recuperación de
// contraseña de las cuentas de administrador.
package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Vansh2812/Tailor/internal/application/dto"
	"github.com/Vansh2812/Tailor/internal/domain"
	"github.com/Vansh2812/Tailor/internal/domain/entity"
	"github.com/Vansh2812/Tailor/internal/domain/repository"
	"github.com/Vansh2812/Tailor/pkg/jwt"
)

// maxResetAttempts intentos fallidos antes de invalidar un código,
// independiente de la ventana de expiración.
const maxResetAttempts = 5

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: login, recuperación y cambio de
// contraseña, preferencia de idioma.
type AuthUseCase struct {
	userRepo repository.UserRepository
	mailer   Mailer
	jwtCfg   JWTConfig
	resetTTL time.Duration

	// inyectables en tests
	now     func() time.Time
	newCode func() (string, error)
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, mailer Mailer, jwtCfg JWTConfig, resetTTL time.Duration) *AuthUseCase {
	return &AuthUseCase{
		userRepo: userRepo,
		mailer:   mailer,
		jwtCfg:   jwtCfg,
		resetTTL: resetTTL,
		now:      time.Now,
		newCode:  generateResetCode,
	}
}

// Login verifica email/password y genera un JWT con userID y email.
//
// Tanto "no existe el usuario" como "contraseña incorrecta" devuelven el mismo
// ErrUnauthorized para no revelar la existencia de la cuenta.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Success: true, Token: token}, nil
}

// ForgotPassword genera un código de 6 dígitos, lo almacena con su expiración
// y lo envía por correo.
//
// Política de no divulgación uniforme: si el email no existe la operación
// termina sin error y sin enviar nada, de modo que la respuesta HTTP es
// idéntica para cuentas existentes y no existentes. Un fallo de SMTP para una
// cuenta existente sí se propaga (error de servidor).
func (uc *AuthUseCase) ForgotPassword(in dto.ForgotPasswordRequest) error {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}

	code, err := uc.newCode()
	if err != nil {
		return fmt.Errorf("generar código: %w", err)
	}
	expiresAt := uc.now().Add(uc.resetTTL)
	user.ResetCode = &code
	user.ResetCodeExpiresAt = &expiresAt
	user.ResetAttempts = 0
	user.UpdatedAt = uc.now()
	if err := uc.userRepo.Update(user); err != nil {
		return err
	}

	if err := uc.mailer.SendResetCode(user.Email, code, uc.resetTTL); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrMailDelivery, err)
	}
	return nil
}

// ResetPassword consume el código: si coincide y no ha expirado, re-hashea la
// nueva contraseña y limpia el par código/expiración.
//
// Un intento fallido no consume el código, pero sí cuenta: al llegar a
// maxResetAttempts el código se invalida aunque no haya expirado. Un código
// expirado sigue respondiendo "expirado" hasta que se solicite uno nuevo.
func (uc *AuthUseCase) ResetPassword(in dto.ResetPasswordRequest) error {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return err
	}
	if user == nil || !user.HasPendingReset() {
		return domain.ErrNoResetRequest
	}

	if uc.now().After(*user.ResetCodeExpiresAt) {
		return domain.ErrResetCodeExpired
	}

	if in.ResetCode != *user.ResetCode {
		user.ResetAttempts++
		if user.ResetAttempts >= maxResetAttempts {
			user.ClearReset()
		}
		user.UpdatedAt = uc.now()
		if err := uc.userRepo.Update(user); err != nil {
			return err
		}
		return domain.ErrResetCodeInvalid
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	user.ClearReset()
	user.UpdatedAt = uc.now()
	return uc.userRepo.Update(user)
}

// ChangePassword exige la contraseña actual antes de aceptar la nueva.
func (uc *AuthUseCase) ChangePassword(in dto.ChangePasswordRequest) error {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.OldPassword)); err != nil {
		return domain.ErrUnauthorized
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	user.UpdatedAt = uc.now()
	return uc.userRepo.Update(user)
}

// UpdateLanguage actualiza la preferencia de idioma del usuario.
func (uc *AuthUseCase) UpdateLanguage(in dto.UpdateLanguageRequest) error {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	user.Language = in.Language
	user.UpdatedAt = uc.now()
	return uc.userRepo.Update(user)
}

// ListUsers devuelve todos los usuarios sin el hash de contraseña.
func (uc *AuthUseCase) ListUsers() ([]dto.UserResponse, error) {
	list, err := uc.userRepo.List()
	if err != nil {
		return nil, err
	}
	users := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		users = append(users, *toUserResponse(u))
	}
	return users, nil
}

// generateResetCode devuelve un código numérico uniforme en [100000, 999999].
func generateResetCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Language:  u.Language,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
