package jwt

import (
	"testing"
	"time"

	"github.com/avc/linecoffee/internal/domain"
	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_Generate(t *testing.T) {
	tests := []struct {
		name      string
		secretKey string
		tokenTTL  time.Duration
		identity  domain.Identity
	}{
		{
			name:      "User token",
			secretKey: "test-secret-key",
			tokenTTL:  time.Hour,
			identity:  domain.Identity{UserID: 12345, Role: domain.RoleUser, Email: "mona@example.com"},
		},
		{
			name:      "Admin token",
			secretKey: "another-secret",
			tokenTTL:  time.Minute * 30,
			identity:  domain.Identity{UserID: 1, Role: domain.RoleAdmin},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewManager(tt.secretKey, tt.tokenTTL)
			token, err := m.Generate(tt.identity)

			require.NoError(t, err)
			assert.NotEmpty(t, token)
		})
	}
}

func TestManager_Validate(t *testing.T) {
	secretKey := "test-secret-key"
	tokenTTL := time.Hour
	identity := domain.Identity{UserID: 12345, Role: domain.RoleAdmin, Email: "ops@example.com"}

	t.Run("Valid token", func(t *testing.T) {
		m := NewManager(secretKey, tokenTTL)
		token, err := m.Generate(identity)
		require.NoError(t, err)

		parsed, err := m.Validate(token)
		require.NoError(t, err)
		assert.Equal(t, identity, parsed)
	})

	t.Run("Unknown role is downgraded to user", func(t *testing.T) {
		m := NewManager(secretKey, tokenTTL)
		token, err := m.Generate(domain.Identity{UserID: 5, Role: "superuser"})
		require.NoError(t, err)

		parsed, err := m.Validate(token)
		require.NoError(t, err)
		assert.Equal(t, domain.RoleUser, parsed.Role)
		assert.False(t, parsed.IsAdmin())
	})

	t.Run("Missing user id", func(t *testing.T) {
		m := NewManager(secretKey, tokenTTL)
		token, err := m.Generate(domain.Identity{Role: domain.RoleUser})
		require.NoError(t, err)

		_, err = m.Validate(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Invalid token - wrong secret", func(t *testing.T) {
		m1 := NewManager(secretKey, tokenTTL)
		token, err := m1.Generate(identity)
		require.NoError(t, err)

		m2 := NewManager("wrong-secret", tokenTTL)
		_, err = m2.Validate(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Invalid token - malformed", func(t *testing.T) {
		m := NewManager(secretKey, tokenTTL)
		_, err := m.Validate("invalid.token.string")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Invalid token - empty", func(t *testing.T) {
		m := NewManager(secretKey, tokenTTL)
		_, err := m.Validate("")
		assert.Error(t, err)
	})

	t.Run("Expired token", func(t *testing.T) {
		m := NewManager(secretKey, -time.Minute)
		token, err := m.Generate(identity)
		require.NoError(t, err)

		_, err = m.Validate(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestManager_ValidateRequiresExpiration(t *testing.T) {
	m := NewManager("secret", time.Hour)

	token, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, Claims{UserID: 7, Role: domain.RoleUser}).
		SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = m.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_ValidateRejectsOtherHMACSizes(t *testing.T) {
	m := NewManager("secret", time.Hour)

	claims := Claims{
		UserID:           7,
		RegisteredClaims: jwtlib.RegisteredClaims{ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(time.Hour))},
	}
	token, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS512, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = m.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_ValidateWithInvalidSigningMethod(t *testing.T) {
	m := NewManager("secret", time.Hour)

	_, err := m.Validate("eyJhbGciOiJub25lIiwidHlwIjoiSldUIn0.eyJ1c2VySWQiOjEyMzQ1fQ.")
	assert.Error(t, err)
}

func BenchmarkManager_Validate(b *testing.B) {
	m := NewManager("test-secret-key", time.Hour)
	token, _ := m.Generate(domain.Identity{UserID: 12345, Role: domain.RoleUser})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = m.Validate(token)
	}
}
