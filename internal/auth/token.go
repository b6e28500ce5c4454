package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/PainelServices01/user-admin-GO/internal/models"
)

// Principal é a identidade derivada de um token de sessão válido.
// Efêmera: reconstruída a cada requisição, nunca persistida.
type Principal struct {
	UserID uint
	Role   string
}

type Manager struct {
	secret []byte
}

func NewManager(secret string) *Manager {
	return &Manager{secret: []byte(secret)}
}

func (m *Manager) Generate(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": user.Role,
		"jti":  uuid.NewString(),
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Verify decodifica o token em um Principal. Qualquer falha (token ausente,
// malformado, assinatura inválida, expirado) resulta em nil — o chamador trata
// nil como "não autenticado", nunca como erro.
func (m *Manager) Verify(tokenString string) *Principal {
	if tokenString == "" {
		return nil
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil
	}

	sub, ok := claims["sub"].(float64)
	if !ok {
		return nil
	}
	role, _ := claims["role"].(string)

	return &Principal{
		UserID: uint(sub),
		Role:   role,
	}
}
