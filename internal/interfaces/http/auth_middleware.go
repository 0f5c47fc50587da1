package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sanem/doacoes-api/internal/application/dto"
	"github.com/sanem/doacoes-api/pkg/jwt"
)

// Chaves de Locals para os dados do operador autenticado.
const (
	LocalOperadorID = "operador_id"
	LocalEmail      = "email"
	LocalTipo       = "tipo"
)

// AuthMiddleware valida o Bearer Token JWT e grava os dados do operador em
// c.Locals. Aceita tokens assinados com o segredo anterior durante a rotação.
func AuthMiddleware(jwtSecret, jwtSecretAnterior string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "header Authorization obrigatório"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vazio"})
		}
		operadorID, email, tipo, err := jwt.ParseComRotacao(jwtSecret, jwtSecretAnterior, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido ou expirado"})
		}
		c.Locals(LocalOperadorID, operadorID)
		c.Locals(LocalEmail, email)
		c.Locals(LocalTipo, tipo)
		return c.Next()
	}
}

// RequireTipo exige que o operador autenticado tenha um dos tipos indicados.
func RequireTipo(tipos ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tipo := GetTipo(c)
		for _, t := range tipos {
			if tipo == t {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "operação restrita a administradores"})
	}
}

// GetOperadorID devolve o ID do operador do contexto (após o middleware de auth).
func GetOperadorID(c *fiber.Ctx) string {
	v := c.Locals(LocalOperadorID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetEmail devolve o email do operador do contexto.
func GetEmail(c *fiber.Ctx) string {
	v := c.Locals(LocalEmail)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetTipo devolve o tipo (perfil) do operador do contexto.
func GetTipo(c *fiber.Ctx) string {
	v := c.Locals(LocalTipo)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
