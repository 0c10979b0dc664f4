package service

import (
	"context"
	"errors"
	"time"

	"github.com/alefwesleimoreira/erp-mamae-eu-quero/internal/config"
	"github.com/alefwesleimoreira/erp-mamae-eu-quero/internal/dto"
	"github.com/alefwesleimoreira/erp-mamae-eu-quero/internal/model"
	"github.com/alefwesleimoreira/erp-mamae-eu-quero/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.LoginResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.RefreshResponse, error)
	Me(ctx context.Context, usuarioID uint) (*dto.UsuarioResponse, error)
}

type authService struct {
	usuarioRepo repository.UsuarioRepository
	clienteRepo repository.ClienteRepository
	cfg         *config.Config
}

func NewAuthService(usuarioRepo repository.UsuarioRepository, clienteRepo repository.ClienteRepository, cfg *config.Config) AuthService {
	return &authService{usuarioRepo: usuarioRepo, clienteRepo: clienteRepo, cfg: cfg}
}

// Register creates a "cliente" user and its customer record in one
// transaction — a half-created account is never visible. The new account is
// logged in immediately: both tokens come back with the response.
func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.LoginResponse, error) {
	if _, err := s.usuarioRepo.FindByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailDuplicado
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Senha), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	usuario := &model.Usuario{
		Nome:      req.Nome,
		Email:     req.Email,
		SenhaHash: string(hash),
		Tipo:      model.TipoCliente,
		Ativo:     true,
	}

	err = runTx(ctx, s.usuarioRepo.DB(), func(tx *gorm.DB) error {
		if err := s.usuarioRepo.CreateTx(tx, usuario); err != nil {
			return err
		}
		email := req.Email
		cliente := &model.Cliente{
			UsuarioID: &usuario.ID,
			Nome:      req.Nome,
			Email:     &email,
			Telefone:  req.Telefone,
			CPF:       req.CPF,
			Ativo:     true,
		}
		return s.clienteRepo.CreateTx(tx, cliente)
	})
	if err != nil {
		return nil, err
	}

	access, err := s.gerarToken(usuario, "access", time.Duration(s.cfg.JWTAccessMinutes)*time.Minute)
	if err != nil {
		return nil, err
	}
	refresh, err := s.gerarToken(usuario, "refresh", time.Duration(s.cfg.JWTRefreshHours)*time.Hour)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		Usuario:      *usuarioToResponse(usuario),
	}, nil
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	usuario, err := s.usuarioRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCredenciaisInvalidas
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.SenhaHash), []byte(req.Senha)); err != nil {
		return nil, ErrCredenciaisInvalidas
	}
	if !usuario.Ativo {
		return nil, ErrUsuarioInativo
	}

	access, err := s.gerarToken(usuario, "access", time.Duration(s.cfg.JWTAccessMinutes)*time.Minute)
	if err != nil {
		return nil, err
	}
	refresh, err := s.gerarToken(usuario, "refresh", time.Duration(s.cfg.JWTRefreshHours)*time.Hour)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		Usuario:      *usuarioToResponse(usuario),
	}, nil
}

// Refresh mints a new access token from a valid refresh token. Refresh tokens
// are never rotated here — the original stays valid until it expires.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.RefreshResponse, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(refreshToken, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("método de assinatura inesperado")
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrCredenciaisInvalidas
	}
	if tipo, _ := claims["token_type"].(string); tipo != "refresh" {
		return nil, ErrCredenciaisInvalidas
	}

	userID, _ := claims["user_id"].(float64)
	usuario, err := s.usuarioRepo.FindByID(ctx, uint(userID))
	if err != nil {
		return nil, ErrCredenciaisInvalidas
	}
	if !usuario.Ativo {
		return nil, ErrUsuarioInativo
	}

	access, err := s.gerarToken(usuario, "access", time.Duration(s.cfg.JWTAccessMinutes)*time.Minute)
	if err != nil {
		return nil, err
	}
	return &dto.RefreshResponse{AccessToken: access}, nil
}

func (s *authService) Me(ctx context.Context, usuarioID uint) (*dto.UsuarioResponse, error) {
	usuario, err := s.usuarioRepo.FindByID(ctx, usuarioID)
	if err != nil {
		return nil, ErrUsuarioNaoEncontrado
	}
	return usuarioToResponse(usuario), nil
}

func (s *authService) gerarToken(u *model.Usuario, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"user_id":    float64(u.ID),
		"tipo":       u.Tipo,
		"token_type": tokenType,
		"iat":        now.Unix(),
		"exp":        now.Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
}

func usuarioToResponse(u *model.Usuario) *dto.UsuarioResponse {
	return &dto.UsuarioResponse{
		ID:    u.ID,
		Nome:  u.Nome,
		Email: u.Email,
		Tipo:  u.Tipo,
		Ativo: u.Ativo,
	}
}
