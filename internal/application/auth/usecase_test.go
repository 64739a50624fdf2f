package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Vansh2812/Tailor/internal/application/dto"
	"github.com/Vansh2812/Tailor/internal/domain"
	"github.com/Vansh2812/Tailor/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testEmail    = "admin@tailor.test"
	testPassword = "secreto-123"
)

// fakeUserRepo repositorio en memoria indexado por email.
type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[string]*entity.User{}}
	for _, u := range users {
		r.users[u.Email] = u
	}
	return r
}

func (r *fakeUserRepo) Create(u *entity.User) error { r.users[u.Email] = u; return nil }
func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}
func (r *fakeUserRepo) Update(u *entity.User) error {
	cp := *u
	r.users[u.Email] = &cp
	return nil
}
func (r *fakeUserRepo) List() ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

// fakeMailer registra los envíos; con fail fuerza un error de SMTP.
type fakeMailer struct {
	sentTo   []string
	sentCode string
	fail     bool
}

func (m *fakeMailer) SendResetCode(to, code string, ttl time.Duration) error {
	if m.fail {
		return errors.New("smtp: conexión rechazada")
	}
	m.sentTo = append(m.sentTo, to)
	m.sentCode = code
	return nil
}

func testUser(t *testing.T) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)
	return &entity.User{
		ID:           "00000000-0000-0000-0000-000000000001",
		Email:        testEmail,
		PasswordHash: string(hash),
		Language:     "en",
	}
}

// buildUseCase arma el caso de uso con reloj y generador de código fijos.
func buildUseCase(repo *fakeUserRepo, mailer *fakeMailer, at time.Time, code string) *AuthUseCase {
	uc := NewAuthUseCase(repo, mailer, JWTConfig{
		Secret:     "test-secret-key-for-unit-tests",
		ExpMinutes: 60,
		Issuer:     "tailor-api-test",
	}, 15*time.Minute)
	uc.now = func() time.Time { return at }
	uc.newCode = func() (string, error) { return code, nil }
	return uc
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesValidas_EmiteToken(t *testing.T) {
	repo := newFakeUserRepo(testUser(t))
	uc := buildUseCase(repo, &fakeMailer{}, time.Now(), "123456")

	out, err := uc.Login(dto.LoginRequest{Email: testEmail, Password: testPassword})
	require.NoError(t, err)
	assert.True(t, out.Success)
	assert.NotEmpty(t, out.Token)
}

// Usuario inexistente y contraseña errada deben devolver el mismo error.
func TestLogin_ErrorUniforme(t *testing.T) {
	repo := newFakeUserRepo(testUser(t))
	uc := buildUseCase(repo, &fakeMailer{}, time.Now(), "123456")

	_, errNoUser := uc.Login(dto.LoginRequest{Email: "nadie@tailor.test", Password: testPassword})
	_, errBadPass := uc.Login(dto.LoginRequest{Email: testEmail, Password: "incorrecta"})

	assert.ErrorIs(t, errNoUser, domain.ErrUnauthorized)
	assert.ErrorIs(t, errBadPass, domain.ErrUnauthorized)
}

// ──────────────────────────────────────────────────────────────────────────────
// ForgotPassword
// ──────────────────────────────────────────────────────────────────────────────

func TestForgotPassword_GuardaCodigoYEnviaCorreo(t *testing.T) {
	repo := newFakeUserRepo(testUser(t))
	mailer := &fakeMailer{}
	at := time.Date(2024, 10, 24, 12, 0, 0, 0, time.UTC)
	uc := buildUseCase(repo, mailer, at, "654321")

	require.NoError(t, uc.ForgotPassword(dto.ForgotPasswordRequest{Email: testEmail}))

	stored, _ := repo.GetByEmail(testEmail)
	require.True(t, stored.HasPendingReset())
	assert.Equal(t, "654321", *stored.ResetCode)
	assert.Equal(t, at.Add(15*time.Minute), *stored.ResetCodeExpiresAt)
	assert.Zero(t, stored.ResetAttempts)
	assert.Equal(t, []string{testEmail}, mailer.sentTo)
	assert.Equal(t, "654321", mailer.sentCode)
}

// Email inexistente: sin error y sin envío, la respuesta no filtra existencia.
func TestForgotPassword_EmailDesconocido_NoOp(t *testing.T) {
	repo := newFakeUserRepo(testUser(t))
	mailer := &fakeMailer{}
	uc := buildUseCase(repo, mailer, time.Now(), "654321")

	require.NoError(t, uc.ForgotPassword(dto.ForgotPasswordRequest{Email: "nadie@tailor.test"}))
	assert.Empty(t, mailer.sentTo)
}

func TestForgotPassword_FalloSMTP_PropagaError(t *testing.T) {
	repo := newFakeUserRepo(testUser(t))
	uc := buildUseCase(repo, &fakeMailer{fail: true}, time.Now(), "654321")

	err := uc.ForgotPassword(dto.ForgotPasswordRequest{Email: testEmail})
	assert.ErrorIs(t, err, domain.ErrMailDelivery)
}

// ──────────────────────────────────────────────────────────────────────────────
// ResetPassword
// ──────────────────────────────────────────────────────────────────────────────

func TestResetPassword_CodigoCorrecto_CambiaContrasenaYLimpia(t *testing.T) {
	repo := newFakeUserRepo(testUser(t))
	at := time.Date(2024, 10, 24, 12, 0, 0, 0, time.UTC)
	uc := buildUseCase(repo, &fakeMailer{}, at, "111222")
	require.NoError(t, uc.ForgotPassword(dto.ForgotPasswordRequest{Email: testEmail}))

	err := uc.ResetPassword(dto.ResetPasswordRequest{
		Email: testEmail, ResetCode: "111222", NewPassword: "nueva-clave",
	})
	require.NoError(t, err)

	stored, _ := repo.GetByEmail(testEmail)
	assert.False(t, stored.HasPendingReset(), "el par código/expiración debe limpiarse")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("nueva-clave")))

	// El código es de un solo uso: reutilizarlo es "sin solicitud".
	err = uc.ResetPassword(dto.ResetPasswordRequest{
		Email: testEmail, ResetCode: "111222", NewPassword: "otra-clave",
	})
	assert.ErrorIs(t, err, domain.ErrNoResetRequest)
}

func TestResetPassword_SinSolicitud(t *testing.T) {
	repo := newFakeUserRepo(testUser(t))
	uc := buildUseCase(repo, &fakeMailer{}, time.Now(), "111222")

	err := uc.ResetPassword(dto.ResetPasswordRequest{
		Email: testEmail, ResetCode: "111222", NewPassword: "nueva",
	})
	assert.ErrorIs(t, err, domain.ErrNoResetRequest)
}

func TestResetPassword_CodigoExpirado(t *testing.T) {
	repo := newFakeUserRepo(testUser(t))
	at := time.Date(2024, 10, 24, 12, 0, 0, 0, time.UTC)
	uc := buildUseCase(repo, &fakeMailer{}, at, "111222")
	require.NoError(t, uc.ForgotPassword(dto.ForgotPasswordRequest{Email: testEmail}))

	// 16 minutos después: fuera de la ventana de 15.
	uc.now = func() time.Time { return at.Add(16 * time.Minute) }
	err := uc.ResetPassword(dto.ResetPasswordRequest{
		Email: testEmail, ResetCode: "111222", NewPassword: "nueva",
	})
	assert.ErrorIs(t, err, domain.ErrResetCodeExpired)

	// El par no se limpia: sigue respondiendo "expirado" hasta nueva solicitud.
	err = uc.ResetPassword(dto.ResetPasswordRequest{
		Email: testEmail, ResetCode: "111222", NewPassword: "nueva",
	})
	assert.ErrorIs(t, err, domain.ErrResetCodeExpired)
}

func TestResetPassword_CodigoIncorrecto_NoConsume(t *testing.T) {
	repo := newFakeUserRepo(testUser(t))
	at := time.Date(2024, 10, 24, 12, 0, 0, 0, time.UTC)
	uc := buildUseCase(repo, &fakeMailer{}, at, "111222")
	require.NoError(t, uc.ForgotPassword(dto.ForgotPasswordRequest{Email: testEmail}))

	err := uc.ResetPassword(dto.ResetPasswordRequest{
		Email: testEmail, ResetCode: "999999", NewPassword: "nueva",
	})
	assert.ErrorIs(t, err, domain.ErrResetCodeInvalid)

	// El código correcto sigue siendo válido tras un fallo.
	err = uc.ResetPassword(dto.ResetPasswordRequest{
		Email: testEmail, ResetCode: "111222", NewPassword: "nueva",
	})
	assert.NoError(t, err)
}

func TestResetPassword_LimiteDeIntentos_InvalidaCodigo(t *testing.T) {
	repo := newFakeUserRepo(testUser(t))
	at := time.Date(2024, 10, 24, 12, 0, 0, 0, time.UTC)
	uc := buildUseCase(repo, &fakeMailer{}, at, "111222")
	require.NoError(t, uc.ForgotPassword(dto.ForgotPasswordRequest{Email: testEmail}))

	for i := 0; i < maxResetAttempts; i++ {
		err := uc.ResetPassword(dto.ResetPasswordRequest{
			Email: testEmail, ResetCode: "000000", NewPassword: "nueva",
		})
		assert.ErrorIs(t, err, domain.ErrResetCodeInvalid)
	}

	// Al agotar los intentos el código correcto ya no sirve.
	err := uc.ResetPassword(dto.ResetPasswordRequest{
		Email: testEmail, ResetCode: "111222", NewPassword: "nueva",
	})
	assert.ErrorIs(t, err, domain.ErrNoResetRequest)
}

// ──────────────────────────────────────────────────────────────────────────────
// ChangePassword / UpdateLanguage / ListUsers
// ──────────────────────────────────────────────────────────────────────────────

func TestChangePassword_RequiereContrasenaActual(t *testing.T) {
	repo := newFakeUserRepo(testUser(t))
	uc := buildUseCase(repo, &fakeMailer{}, time.Now(), "111222")

	err := uc.ChangePassword(dto.ChangePasswordRequest{
		Email: testEmail, OldPassword: "incorrecta", NewPassword: "nueva",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	err = uc.ChangePassword(dto.ChangePasswordRequest{
		Email: testEmail, OldPassword: testPassword, NewPassword: "nueva",
	})
	require.NoError(t, err)

	stored, _ := repo.GetByEmail(testEmail)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("nueva")))
}

func TestChangePassword_UsuarioInexistente(t *testing.T) {
	uc := buildUseCase(newFakeUserRepo(), &fakeMailer{}, time.Now(), "111222")
	err := uc.ChangePassword(dto.ChangePasswordRequest{
		Email: "nadie@tailor.test", OldPassword: "x", NewPassword: "y",
	})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUpdateLanguage(t *testing.T) {
	repo := newFakeUserRepo(testUser(t))
	uc := buildUseCase(repo, &fakeMailer{}, time.Now(), "111222")

	require.NoError(t, uc.UpdateLanguage(dto.UpdateLanguageRequest{Email: testEmail, Language: "gu"}))
	stored, _ := repo.GetByEmail(testEmail)
	assert.Equal(t, "gu", stored.Language)

	err := uc.UpdateLanguage(dto.UpdateLanguageRequest{Email: "nadie@tailor.test", Language: "hi"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestListUsers_OmiteHash(t *testing.T) {
	repo := newFakeUserRepo(testUser(t))
	uc := buildUseCase(repo, &fakeMailer{}, time.Now(), "111222")

	users, err := uc.ListUsers()
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, testEmail, users[0].Email)
	assert.Equal(t, "en", users[0].Language)
}

// ──────────────────────────────────────────────────────────────────────────────
// generateResetCode
// ──────────────────────────────────────────────────────────────────────────────

func TestGenerateResetCode_SeisDigitos(t *testing.T) {
	for i := 0; i < 100; i++ {
		code, err := generateResetCode()
		require.NoError(t, err)
		require.Len(t, code, 6)
		assert.GreaterOrEqual(t, code, "100000")
		assert.LessOrEqual(t, code, "999999")
	}
}
