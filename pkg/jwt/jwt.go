package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims inclui os claims padrão JWT mais os campos próprios da aplicação.
// Tipo ("admin" | "voluntario") permite ao middleware autorizar sem consultar a DB.
type Claims struct {
	jwt.RegisteredClaims
	OperadorID string `json:"operador_id"`
	Email      string `json:"email"`
	Tipo       string `json:"tipo"`
}

// Generate gera um token JWT assinado incluindo operadorID, email e tipo.
func Generate(secret, operadorID, email, tipo, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vazio")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   operadorID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		OperadorID: operadorID,
		Email:      email,
		Tipo:       tipo,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida o token e devolve operadorID, email e tipo.
// Retorna erro se o token é inválido, expirado ou tem assinatura incorreta.
func Parse(secret, tokenString string) (operadorID, email, tipo string, err error) {
	if secret == "" {
		return "", "", "", fmt.Errorf("jwt: secret vazio")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", "", "", err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", "", "", fmt.Errorf("claims inválidos")
	}
	return claims.OperadorID, claims.Email, claims.Tipo, nil
}

// ParseComRotacao tenta validar com o secret atual e, se falhar, com o secret
// anterior. Permite rotacionar a chave de assinatura sem invalidar sessões
// emitidas antes da troca (a chave nunca é um literal no código).
func ParseComRotacao(secret, secretAnterior, tokenString string) (operadorID, email, tipo string, err error) {
	operadorID, email, tipo, err = Parse(secret, tokenString)
	if err == nil || secretAnterior == "" {
		return operadorID, email, tipo, err
	}
	return Parse(secretAnterior, tokenString)
}
