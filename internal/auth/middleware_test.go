package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fekuna/storefront-service/internal/model"
)

func newTestRouter(tm *TokenManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	r.GET("/me", Authenticate(tm), func(c *gin.Context) {
		id, _ := IdentityFrom(c)
		c.JSON(http.StatusOK, gin.H{"customerId": id.CustomerID})
	})
	r.GET("/admin", Authenticate(tm), RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func doRequest(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthenticateRejectsMissingToken(t *testing.T) {
	tm := NewTokenManager("unit-test-secret", time.Hour)
	r := newTestRouter(tm)

	w := doRequest(r, "/me", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "No token provided")
}

func TestAuthenticateRejectsBadToken(t *testing.T) {
	tm := NewTokenManager("unit-test-secret", time.Hour)
	r := newTestRouter(tm)

	w := doRequest(r, "/me", "bogus")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid token")
}

func TestAuthenticateAttachesIdentity(t *testing.T) {
	tm := NewTokenManager("unit-test-secret", time.Hour)
	r := newTestRouter(tm)

	token, err := tm.Generate(Identity{CustomerID: "c1", Role: model.RoleCustomer})
	require.NoError(t, err)

	w := doRequest(r, "/me", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"customerId":"c1"`)
}

func TestRequireAdminGatesByRole(t *testing.T) {
	tm := NewTokenManager("unit-test-secret", time.Hour)
	r := newTestRouter(tm)

	customerToken, err := tm.Generate(Identity{CustomerID: "c1", Role: model.RoleCustomer})
	require.NoError(t, err)
	adminToken, err := tm.Generate(Identity{CustomerID: "a1", Role: model.RoleAdmin})
	require.NoError(t, err)

	w := doRequest(r, "/admin", customerToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doRequest(r, "/admin", adminToken)
	assert.Equal(t, http.StatusOK, w.Code)
}
