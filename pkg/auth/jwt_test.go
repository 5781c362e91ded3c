package auth_test

import (
	"testing"
	"time"

	"github.com/scheffer1/CVFast-sub000/pkg/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestManager(t *testing.T) {
	m := auth.NewManager("secret", "cvfast-test", time.Hour)

	t.Run("Should round-trip subject and email", func(t *testing.T) {
		token, err := m.Issue("user-1", "user@example.com")
		assert.NoError(t, err)

		claims, err := m.Verify(token)
		assert.NoError(t, err)
		assert.Equal(t, "user-1", claims.Subject)
		assert.Equal(t, "user@example.com", claims.Email)
		assert.Equal(t, "cvfast-test", claims.Issuer)
	})

	t.Run("Should reject a token signed with another secret", func(t *testing.T) {
		other := auth.NewManager("different", "cvfast-test", time.Hour)
		token, _ := other.Issue("user-1", "user@example.com")

		_, err := m.Verify(token)
		assert.Error(t, err)
	})

	t.Run("Should reject an expired token", func(t *testing.T) {
		expired := auth.NewManager("secret", "cvfast-test", -time.Minute)
		token, _ := expired.Issue("user-1", "user@example.com")

		_, err := m.Verify(token)
		assert.Error(t, err)
	})

	t.Run("Should reject the none algorithm", func(t *testing.T) {
		unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "user-1"})
		token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
		assert.NoError(t, err)

		_, err = m.Verify(token)
		assert.Error(t, err)
	})
}
