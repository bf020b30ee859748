package jwt

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/avc/linecoffee/internal/domain"
	"github.com/golang-jwt/jwt/v5"
)

// Claims представляет JWT claims с данными пользователя
type Claims struct {
	UserID int64       `json:"userId"`
	Role   domain.Role `json:"role"`
	Email  string      `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// Manager управляет генерацией и валидацией JWT токенов.
// Токены выпускает внешняя система учетных записей, Generate нужен для тестов и утилит.
type Manager struct {
	secretKey string
	tokenTTL  time.Duration
	parser    *jwt.Parser
}

// ErrInvalidToken возвращается для любого непригодного токена
var ErrInvalidToken = errors.New("invalid token")

// NewManager создает новый JWT manager
func NewManager(secretKey string, tokenTTL time.Duration) *Manager {
	return &Manager{
		secretKey: secretKey,
		tokenTTL:  tokenTTL,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
		),
	}
}

// Generate генерирует новый JWT токен для пользователя
func (m *Manager) Generate(identity domain.Identity) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: identity.UserID,
		Role:   identity.Role,
		Email:  identity.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(identity.UserID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(m.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signedToken, nil
}

// Validate проверяет подпись и срок действия токена и возвращает пользователя запроса.
// Неизвестная роль понижается до обычного пользователя.
func (m *Manager) Validate(tokenString string) (domain.Identity, error) {
	claims := &Claims{}
	_, err := m.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(m.secretKey), nil
	})
	if err != nil {
		return domain.Identity{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if claims.UserID <= 0 {
		return domain.Identity{}, fmt.Errorf("%w: missing user id", ErrInvalidToken)
	}

	role := claims.Role
	if role != domain.RoleAdmin {
		role = domain.RoleUser
	}

	return domain.Identity{
		UserID: claims.UserID,
		Role:   role,
		Email:  claims.Email,
	}, nil
}
