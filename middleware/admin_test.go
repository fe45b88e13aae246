package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func adminRouter(key, hash string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/scrape", AdminKey(key, hash), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func doAdmin(r http.Handler, key string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/scrape", strings.NewReader(`{"url":"https://www.mitsgwalior.ac.in/about"}`))
	req.Header.Set("Content-Type", "application/json")
	if key != "" {
		req.Header.Set(AdminKeyHeader, key)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAdminKeyPlain(t *testing.T) {
	r := adminRouter("dev-admin-key-12345", "")

	assert.Equal(t, http.StatusOK, doAdmin(r, "dev-admin-key-12345").Code)

	for _, key := range []string{"", "wrong", "dev-admin-key-1234", "dev-admin-key-123456"} {
		w := doAdmin(r, key)
		assert.Equal(t, http.StatusForbidden, w.Code, key)
		assert.JSONEq(t, `{"error":"Forbidden: Admin access required"}`, w.Body.String())
	}
}

func TestAdminKeyBcrypt(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	// the plaintext key is ignored once a hash is configured
	r := adminRouter("dev-admin-key-12345", string(hash))

	assert.Equal(t, http.StatusOK, doAdmin(r, "s3cret").Code)
	assert.Equal(t, http.StatusForbidden, doAdmin(r, "dev-admin-key-12345").Code)
	assert.Equal(t, http.StatusForbidden, doAdmin(r, "").Code)
}

func TestAdminKeyEmptyConfiguredKeyRejectsAll(t *testing.T) {
	r := adminRouter("", "")
	assert.Equal(t, http.StatusForbidden, doAdmin(r, "").Code)
	assert.Equal(t, http.StatusForbidden, doAdmin(r, "anything").Code)
}
