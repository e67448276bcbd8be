package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rahmedalmosd25-ux/eventhub/internal/auth"
	"github.com/rahmedalmosd25-ux/eventhub/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

func setupAuthRouter(t *testing.T, tokens *auth.Manager) http.Handler {
	t.Helper()
	r := ginext.New("test")

	protected := r.Group("/protected", Auth(tokens))
	protected.GET("", func(c *ginext.Context) {
		actor, ok := ActorFrom(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, ginext.H{"actor_id": actor.ID, "role": string(actor.Role)})
	})

	admin := r.Group("/admin", Auth(tokens), RequireAdmin())
	admin.GET("", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return r
}

func TestAuth_ValidToken(t *testing.T) {
	tokens, err := auth.NewManager("test-secret", time.Hour)
	require.NoError(t, err)
	r := setupAuthRouter(t, tokens)

	token, err := tokens.Issue(&domain.User{ID: "u1", Role: domain.RoleUser})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "u1")
}

func TestAuth_MissingHeader(t *testing.T) {
	tokens, err := auth.NewManager("test-secret", time.Hour)
	require.NoError(t, err)
	r := setupAuthRouter(t, tokens)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_MalformedHeader(t *testing.T) {
	tokens, err := auth.NewManager("test-secret", time.Hour)
	require.NoError(t, err)
	r := setupAuthRouter(t, tokens)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_ForgedToken(t *testing.T) {
	tokens, err := auth.NewManager("test-secret", time.Hour)
	require.NoError(t, err)
	r := setupAuthRouter(t, tokens)

	forger, err := auth.NewManager("other-secret", time.Hour)
	require.NoError(t, err)
	token, err := forger.Issue(&domain.User{ID: "u1"})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdmin_UserForbidden(t *testing.T) {
	tokens, err := auth.NewManager("test-secret", time.Hour)
	require.NoError(t, err)
	r := setupAuthRouter(t, tokens)

	token, err := tokens.Issue(&domain.User{ID: "u1", Role: domain.RoleUser})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireAdmin_AdminAllowed(t *testing.T) {
	tokens, err := auth.NewManager("test-secret", time.Hour)
	require.NoError(t, err)
	r := setupAuthRouter(t, tokens)

	token, err := tokens.Issue(&domain.User{ID: "admin", Role: domain.RoleAdmin})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
