package auth

import (
	"testing"
	"time"

	"github.com/rahmedalmosd25-ux/eventhub/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_IssueAndParse(t *testing.T) {
	m, err := NewManager("test-secret", time.Hour)
	require.NoError(t, err)

	user := &domain.User{ID: "u1", Email: "alice@example.com", Role: domain.RoleAdmin}

	token, err := m.Issue(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
}

func TestManager_Parse_WrongSecret(t *testing.T) {
	issuer, err := NewManager("secret-a", time.Hour)
	require.NoError(t, err)
	verifier, err := NewManager("secret-b", time.Hour)
	require.NoError(t, err)

	token, err := issuer.Issue(&domain.User{ID: "u1"})
	require.NoError(t, err)

	_, err = verifier.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_Parse_Expired(t *testing.T) {
	m, err := NewManager("test-secret", -time.Minute)
	require.NoError(t, err)

	token, err := m.Issue(&domain.User{ID: "u1"})
	require.NoError(t, err)

	_, err = m.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_Parse_Garbage(t *testing.T) {
	m, err := NewManager("test-secret", time.Hour)
	require.NoError(t, err)

	_, err = m.Parse("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewManager_EmptySecret(t *testing.T) {
	_, err := NewManager("", time.Hour)
	assert.Error(t, err)
}
