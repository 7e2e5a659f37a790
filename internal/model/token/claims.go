package token

import (
	"emptrack/internal/config"

	"github.com/golang-jwt/jwt/v4"
)

type TokenClaims struct {
	ID        int    `json:"id"`
	EmpCode   string `json:"emp_code"`
	Role      string `json:"role"`
	UuidLogin string `json:"uuid_login"`
	Exp       int64  `json:"exp"`
}

type AuthToken struct {
	claims *TokenClaims
}

func NewAuthToken(claims *TokenClaims) *AuthToken {
	return &AuthToken{claims: claims}
}

func (t *AuthToken) Token() (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":         t.claims.ID,
		"emp_code":   t.claims.EmpCode,
		"role":       t.claims.Role,
		"uuid_login": t.claims.UuidLogin,
		"exp":        t.claims.Exp,
	})
	return token.SignedString([]byte(config.Get().JWT.SecretKey))
}
