package service

import (
	"context"
	"testing"

	"github.com/alefwesleimoreira/erp-mamae-eu-quero/internal/config"
	"github.com/alefwesleimoreira/erp-mamae-eu-quero/internal/dto"
	"github.com/alefwesleimoreira/erp-mamae-eu-quero/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func buildAuthSvc() (AuthService, *stubUsuarioRepo, *stubClienteRepo) {
	usuarioRepo := newStubUsuarioRepo()
	clienteRepo := newStubClienteRepo()
	cfg := &config.Config{
		JWTSecret:        "segredo-de-teste",
		JWTAccessMinutes: 60,
		JWTRefreshHours:  720,
	}
	return NewAuthService(usuarioRepo, clienteRepo, cfg), usuarioRepo, clienteRepo
}

func TestRegisterCriaUsuarioEClienteVinculado(t *testing.T) {
	svc, usuarioRepo, clienteRepo := buildAuthSvc()

	resp, err := svc.Register(context.Background(), dto.RegisterRequest{
		Nome:  "Ana Souza",
		Email: "ana@example.com",
		Senha: "senha123",
	})
	require.NoError(t, err)
	assert.Equal(t, model.TipoCliente, resp.Usuario.Tipo)
	assert.True(t, resp.Usuario.Ativo)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)

	usuario, err := usuarioRepo.FindByEmail(context.Background(), "ana@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "senha123", usuario.SenhaHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(usuario.SenhaHash), []byte("senha123")))

	require.Len(t, clienteRepo.clientes, 1)
	for _, c := range clienteRepo.clientes {
		require.NotNil(t, c.UsuarioID)
		assert.Equal(t, usuario.ID, *c.UsuarioID)
		assert.Equal(t, "Ana Souza", c.Nome)
	}
}

func TestRegisterEmailDuplicado(t *testing.T) {
	svc, usuarioRepo, _ := buildAuthSvc()
	usuarioRepo.add(&model.Usuario{Nome: "Já existe", Email: "ana@example.com", Ativo: true})

	_, err := svc.Register(context.Background(), dto.RegisterRequest{
		Nome:  "Ana Souza",
		Email: "ana@example.com",
		Senha: "senha123",
	})
	assert.ErrorIs(t, err, ErrEmailDuplicado)
}

func seedUsuario(repo *stubUsuarioRepo, senha string, ativo bool) *model.Usuario {
	hash, _ := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.MinCost)
	return repo.add(&model.Usuario{
		Nome:      "Vendedora",
		Email:     "vendas@example.com",
		SenhaHash: string(hash),
		Tipo:      model.TipoVendedor,
		Ativo:     ativo,
	})
}

func TestLoginEmiteTokens(t *testing.T) {
	svc, usuarioRepo, _ := buildAuthSvc()
	seedUsuario(usuarioRepo, "senha123", true)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		Email: "vendas@example.com",
		Senha: "senha123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.NotEqual(t, resp.AccessToken, resp.RefreshToken)
	assert.Equal(t, model.TipoVendedor, resp.Usuario.Tipo)
}

func TestLoginSenhaErrada(t *testing.T) {
	svc, usuarioRepo, _ := buildAuthSvc()
	seedUsuario(usuarioRepo, "senha123", true)

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Email: "vendas@example.com",
		Senha: "outra-senha",
	})
	assert.ErrorIs(t, err, ErrCredenciaisInvalidas)
}

func TestLoginUsuarioInativo(t *testing.T) {
	svc, usuarioRepo, _ := buildAuthSvc()
	seedUsuario(usuarioRepo, "senha123", false)

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Email: "vendas@example.com",
		Senha: "senha123",
	})
	assert.ErrorIs(t, err, ErrUsuarioInativo)
}

func TestLoginEmailInexistente(t *testing.T) {
	svc, _, _ := buildAuthSvc()
	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Email: "ninguem@example.com",
		Senha: "senha123",
	})
	assert.ErrorIs(t, err, ErrCredenciaisInvalidas)
}

func TestRefreshEmiteNovoAccessToken(t *testing.T) {
	svc, usuarioRepo, _ := buildAuthSvc()
	seedUsuario(usuarioRepo, "senha123", true)

	login, err := svc.Login(context.Background(), dto.LoginRequest{
		Email: "vendas@example.com",
		Senha: "senha123",
	})
	require.NoError(t, err)

	resp, err := svc.Refresh(context.Background(), login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
}

func TestRefreshRejeitaAccessToken(t *testing.T) {
	svc, usuarioRepo, _ := buildAuthSvc()
	seedUsuario(usuarioRepo, "senha123", true)

	login, err := svc.Login(context.Background(), dto.LoginRequest{
		Email: "vendas@example.com",
		Senha: "senha123",
	})
	require.NoError(t, err)

	// An access token is not accepted on the refresh endpoint.
	_, err = svc.Refresh(context.Background(), login.AccessToken)
	assert.ErrorIs(t, err, ErrCredenciaisInvalidas)
}

func TestRefreshTokenAdulterado(t *testing.T) {
	svc, _, _ := buildAuthSvc()
	_, err := svc.Refresh(context.Background(), "nem.um.jwt")
	assert.ErrorIs(t, err, ErrCredenciaisInvalidas)
}
