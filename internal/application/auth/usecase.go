package auth

import (
	"time"

	"github.com/sanem/doacoes-api/internal/application/dto"
	"github.com/sanem/doacoes-api/internal/application/usecase"
	"github.com/sanem/doacoes-api/internal/domain"
	"github.com/sanem/doacoes-api/internal/domain/repository"
	"github.com/sanem/doacoes-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuração para geração de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticação: login, logout, verify e registro.
// Cada login/logout grava uma linha no diário de acessos.
type AuthUseCase struct {
	operadorRepo repository.OperadorRepository
	operadorUC   *usecase.OperadorUseCase
	jwtCfg       JWTConfig
}

// NewAuthUseCase constrói o caso de uso de auth.
func NewAuthUseCase(operadorRepo repository.OperadorRepository, operadorUC *usecase.OperadorUseCase, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{operadorRepo: operadorRepo, operadorUC: operadorUC, jwtCfg: jwtCfg}
}

// Login verifica email/senha, grava o acesso no diário e devolve token + operador.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Email == "" || in.Senha == "" {
		return nil, domain.ErrInvalidInput
	}
	op, err := uc.operadorRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if op == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(op.SenhaHash), []byte(in.Senha)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := uc.operadorRepo.RegistrarAcesso(op.ID, repository.AcessoLogin, time.Now()); err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, op.ID, op.Email, op.Tipo, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Success: true,
		Token:   token,
		User:    *usecase.ToOperadorResponse(op),
	}, nil
}

// Logout grava a saída no diário de acessos.
func (uc *AuthUseCase) Logout(operadorID string) error {
	return uc.operadorRepo.RegistrarAcesso(operadorID, repository.AcessoLogout, time.Now())
}

// Verify confirma que o operador do token ainda existe e devolve seus dados.
func (uc *AuthUseCase) Verify(operadorID string) (*dto.VerifyResponse, error) {
	op, err := uc.operadorRepo.GetByID(operadorID)
	if err != nil {
		return nil, err
	}
	if op == nil {
		return nil, domain.ErrUnauthorized
	}
	return &dto.VerifyResponse{Valid: true, User: *usecase.ToOperadorResponse(op)}, nil
}

// Register cadastra um novo operador (delegado ao caso de uso de operadores).
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.OperadorResponse, error) {
	return uc.operadorUC.Create(dto.CreateOperadorRequest{
		Nome:      in.Nome,
		Documento: in.Documento,
		Email:     in.Email,
		Senha:     in.Senha,
		Tipo:      in.Tipo,
	})
}
