package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/XYFORA-Dev/XYFORA-APIs/internal/core/auth"
)

func newAuthRig(j *auth.JWTer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/p", AuthJWT(j), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"uid": c.GetString(CtxUserID)})
	})
	return r
}

func doGet(r http.Handler, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/p", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthJWTMissingHeader(t *testing.T) {
	j := &auth.JWTer{Secret: []byte("s"), Issuer: "t", TTL: time.Hour}
	w := doGet(newAuthRig(j), "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "missing token")
}

func TestAuthJWTWrongScheme(t *testing.T) {
	j := &auth.JWTer{Secret: []byte("s"), Issuer: "t", TTL: time.Hour}
	w := doGet(newAuthRig(j), "Basic dXNlcjpwYXNz")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "missing token")
}

func TestAuthJWTGarbageToken(t *testing.T) {
	j := &auth.JWTer{Secret: []byte("s"), Issuer: "t", TTL: time.Hour}
	w := doGet(newAuthRig(j), "Bearer not.a.jwt")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid token")
}

func TestAuthJWTExpiredToken(t *testing.T) {
	j := &auth.JWTer{Secret: []byte("s"), Issuer: "t", TTL: -2 * time.Minute}
	tok, err := j.Issue("u1")
	require.NoError(t, err)

	w := doGet(newAuthRig(j), "Bearer "+tok)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid token")
}

func TestAuthJWTValidTokenSetsIdentity(t *testing.T) {
	j := &auth.JWTer{Secret: []byte("s"), Issuer: "t", TTL: time.Hour}
	tok, err := j.Issue("68a1f2c3d4e5f6a7b8c9d0e1")
	require.NoError(t, err)

	w := doGet(newAuthRig(j), "Bearer "+tok)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "68a1f2c3d4e5f6a7b8c9d0e1")
}
