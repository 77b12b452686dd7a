package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("test-secret")
	s := NewSession("u-1", "asha", Cashier, time.Hour, time.Now())

	token, err := issuer.Issue(s)
	require.NoError(t, err)

	claims, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, s.ID, claims.SessionID)
	assert.Equal(t, "asha", claims.Subject)
	assert.Equal(t, Cashier, claims.Role)
}

func TestVerifyRejects(t *testing.T) {
	issuer := NewTokenIssuer("test-secret")

	t.Run("wrong secret", func(t *testing.T) {
		token, err := NewTokenIssuer("other").Issue(NewSession("u", "asha", Admin, time.Hour, time.Now()))
		require.NoError(t, err)
		_, err = issuer.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		token, err := issuer.Issue(NewSession("u", "asha", Admin, time.Minute, time.Now().Add(-time.Hour)))
		require.NoError(t, err)
		_, err = issuer.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := issuer.Verify("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("missing session id", func(t *testing.T) {
		claims := Claims{
			Role: Admin,
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "asha",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		require.NoError(t, err)
		_, err = issuer.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("other signing method", func(t *testing.T) {
		claims := Claims{SessionID: "sid", RegisteredClaims: jwt.RegisteredClaims{Subject: "asha"}}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("test-secret"))
		require.NoError(t, err)
		_, err = issuer.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestSessionExpired(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	s := NewSession("u", "asha", Manager, 30*time.Minute, now)

	assert.False(t, s.Expired(now.Add(29*time.Minute)))
	assert.True(t, s.Expired(now.Add(30*time.Minute)))
	assert.True(t, s.Can(ManageInventory))
	assert.False(t, s.Can(ApproveBills))

	var nilSession *Session
	assert.False(t, nilSession.Can(ViewDashboard))
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("admin123")
	require.NoError(t, err)
	assert.NotEqual(t, "admin123", hash)
	assert.True(t, CheckPassword("admin123", hash))
	assert.False(t, CheckPassword("admin124", hash))
}
