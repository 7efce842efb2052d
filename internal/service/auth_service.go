package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"kiosco/internal/config"
	"kiosco/internal/dto"
	"kiosco/internal/model"
	"kiosco/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	RolUsuario       = "usuario"
	RolAdministrador = "administrador"

	bcryptCost = 12
)

type AuthService interface {
	Registrar(ctx context.Context, req dto.RegistroRequest) (*dto.UsuarioResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	// Logout revokes the token until its natural expiry. Unparseable tokens
	// are ignored: there is nothing left to revoke.
	Logout(ctx context.Context, token string) error
}

type authService struct {
	repo    repository.UsuarioRepository
	sesions repository.SesionStore
	cfg     *config.Config
	now     func() time.Time
}

func NewAuthService(repo repository.UsuarioRepository, sesions repository.SesionStore, cfg *config.Config) AuthService {
	return &authService{repo: repo, sesions: sesions, cfg: cfg, now: time.Now}
}

func (s *authService) Registrar(ctx context.Context, req dto.RegistroRequest) (*dto.UsuarioResponse, error) {
	email := strings.TrimSpace(req.Email)
	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailDuplicado
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	user := &model.Usuario{
		Nombre:   strings.TrimSpace(req.Nombre),
		Email:    email,
		Password: hash,
		Rol:      RolUsuario,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailDuplicado
		}
		return nil, err
	}
	return usuarioToResponse(user), nil
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.repo.FindByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCredenciales
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrCredenciales
	}

	duration := time.Duration(s.cfg.SessionHours) * time.Hour
	token, err := s.generateToken(user, duration)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:     token,
		TokenType: "bearer",
		ExpiresIn: int(duration.Seconds()),
		User:      *usuarioToResponse(user),
	}, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return nil
	}
	jti, _ := claims["jti"].(string)
	exp, err := claims.GetExpirationTime()
	if jti == "" || err != nil || exp == nil {
		return nil
	}
	return s.sesions.Revocar(ctx, jti, exp.Sub(s.now()))
}

func (s *authService) generateToken(user *model.Usuario, duration time.Duration) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"jti":     uuid.NewString(),
		"user_id": user.ID,
		"user":    user.Nombre,
		"rol":     user.Rol,
		"exp":     now.Add(duration).Unix(),
		"iat":     now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// HashPassword is shared with the seeduser command.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	return string(hash), err
}

func usuarioToResponse(u *model.Usuario) *dto.UsuarioResponse {
	return &dto.UsuarioResponse{ID: u.ID, Nombre: u.Nombre, Email: u.Email, Rol: u.Rol}
}
