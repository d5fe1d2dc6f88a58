package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-api/internal/pkg/jwtutil"
)

func newGuardedRouter(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", AuthJWT(secret), func(c *gin.Context) {
		userID := c.MustGet(ContextUserIDKey).(uint)
		c.JSON(http.StatusOK, gin.H{"userID": userID})
	})
	return router
}

func doProtected(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAuthJWT_ValidToken(t *testing.T) {
	router := newGuardedRouter("secret")
	token, err := jwtutil.GenerateToken("secret", time.Hour, 7, "alice", "a@x.com")
	require.NoError(t, err)

	rec := doProtected(router, "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"userID":7}`, rec.Body.String())
}

func TestAuthJWT_MissingHeader(t *testing.T) {
	rec := doProtected(newGuardedRouter("secret"), "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthJWT_RejectedTokens(t *testing.T) {
	router := newGuardedRouter("secret")

	otherSecret, err := jwtutil.GenerateToken("other", time.Hour, 7, "alice", "a@x.com")
	require.NoError(t, err)
	expired, err := jwtutil.GenerateToken("secret", -time.Minute, 7, "alice", "a@x.com")
	require.NoError(t, err)

	cases := []struct {
		name   string
		header string
	}{
		{"wrong scheme", "Token abc"},
		{"no token segment", "Bearer "},
		{"garbage token", "Bearer not.a.token"},
		{"wrong secret", "Bearer " + otherSecret},
		{"expired", "Bearer " + expired},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doProtected(router, tc.header)
			assert.Equal(t, http.StatusForbidden, rec.Code)
		})
	}
}

func TestAuthJWT_NoSecretConfigured(t *testing.T) {
	router := newGuardedRouter("")
	token, err := jwtutil.GenerateToken("secret", time.Hour, 7, "alice", "a@x.com")
	require.NoError(t, err)

	rec := doProtected(router, "Bearer "+token)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
