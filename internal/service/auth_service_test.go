package service

import (
	"context"
	"testing"
	"time"

	"kiosco/internal/config"
	"kiosco/internal/dto"
	"kiosco/internal/model"
	"kiosco/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testSecret = "test_jwt_secret_32_chars_minimum!"

func newTestCfg() *config.Config {
	return &config.Config{JWTSecret: testSecret, SessionHours: 8}
}

func newAuthSvc(t *testing.T, db *gorm.DB, sesiones repository.SesionStore) *authService {
	t.Helper()
	return NewAuthService(repository.NewUsuarioRepository(db), sesiones, newTestCfg()).(*authService)
}

func parseClaims(t *testing.T, token string) jwt.MapClaims {
	t.Helper()
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	return claims
}

// ── Tests: Registrar ──────────────────────────────────────────────────────────

func TestRegistrar_GuardaHash(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthSvc(t, db, repository.NewMemorySesionStore())

	resp, err := svc.Registrar(context.Background(), dto.RegistroRequest{
		Nombre: "Laura", Email: " laura@kiosco.test ", Password: "secreto",
	})
	require.NoError(t, err)
	assert.Equal(t, RolUsuario, resp.Rol)
	assert.Equal(t, "laura@kiosco.test", resp.Email)

	var u model.Usuario
	require.NoError(t, db.First(&u, resp.ID).Error)
	assert.NotEqual(t, "secreto", u.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("secreto")))
}

func TestRegistrar_EmailDuplicado(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthSvc(t, db, repository.NewMemorySesionStore())
	req := dto.RegistroRequest{Nombre: "Laura", Email: "laura@kiosco.test", Password: "secreto"}

	_, err := svc.Registrar(context.Background(), req)
	require.NoError(t, err)
	_, err = svc.Registrar(context.Background(), req)
	assert.ErrorIs(t, err, ErrEmailDuplicado)
	assert.Equal(t, "El correo electrónico ya está registrado.", err.Error())
}

// ── Tests: Login / Logout ─────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthSvc(t, db, repository.NewMemorySesionStore())
	user, err := svc.Registrar(context.Background(), dto.RegistroRequest{
		Nombre: "Laura", Email: "laura@kiosco.test", Password: "secreto",
	})
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{Email: "laura@kiosco.test", Password: "secreto"})
	require.NoError(t, err)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, 8*3600, resp.ExpiresIn)
	assert.Equal(t, "Laura", resp.User.Nombre)

	claims := parseClaims(t, resp.Token)
	assert.Equal(t, "Laura", claims["user"])
	assert.Equal(t, float64(user.ID), claims["user_id"])
	assert.Equal(t, RolUsuario, claims["rol"])
	assert.NotEmpty(t, claims["jti"])
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthSvc(t, db, repository.NewMemorySesionStore())
	_, err := svc.Registrar(context.Background(), dto.RegistroRequest{
		Nombre: "Laura", Email: "laura@kiosco.test", Password: "secreto",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), dto.LoginRequest{Email: "laura@kiosco.test", Password: "otra"})
	assert.ErrorIs(t, err, ErrCredenciales)

	_, err = svc.Login(context.Background(), dto.LoginRequest{Email: "nadie@kiosco.test", Password: "secreto"})
	assert.ErrorIs(t, err, ErrCredenciales)
	assert.Equal(t, "Email o contraseña incorrectos.", err.Error())
}

func TestLogout_RevocaToken(t *testing.T) {
	db := newTestDB(t)
	sesiones := repository.NewMemorySesionStore()
	svc := newAuthSvc(t, db, sesiones)
	_, err := svc.Registrar(context.Background(), dto.RegistroRequest{
		Nombre: "Laura", Email: "laura@kiosco.test", Password: "secreto",
	})
	require.NoError(t, err)
	resp, err := svc.Login(context.Background(), dto.LoginRequest{Email: "laura@kiosco.test", Password: "secreto"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), resp.Token))

	jti, _ := parseClaims(t, resp.Token)["jti"].(string)
	revocada, err := sesiones.Revocada(context.Background(), jti)
	require.NoError(t, err)
	assert.True(t, revocada)
}

func TestLogout_TokenInvalidoSeIgnora(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthSvc(t, db, repository.NewMemorySesionStore())

	assert.NoError(t, svc.Logout(context.Background(), ""))
	assert.NoError(t, svc.Logout(context.Background(), "not-a-jwt"))

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"jti": "x", "exp": time.Now().Add(-time.Hour).Unix(),
	})
	s, err := expired.SignedString([]byte(testSecret))
	require.NoError(t, err)
	assert.NoError(t, svc.Logout(context.Background(), s))
}
