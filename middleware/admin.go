package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

const AdminKeyHeader = "x-admin-key"

// AdminKey guards operator endpoints with a shared secret sent in the
// x-admin-key header. When bcryptHash is set it is checked instead of the
// plaintext key. Runs before any handler reads the request body.
func AdminKey(key, bcryptHash string) gin.HandlerFunc {
	hash := []byte(bcryptHash)
	return func(c *gin.Context) {
		got := c.GetHeader(AdminKeyHeader)
		if !adminKeyMatches(got, key, hash) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden: Admin access required"})
			return
		}
		c.Next()
	}
}

func adminKeyMatches(got, key string, hash []byte) bool {
	if got == "" {
		return false
	}
	if len(hash) > 0 {
		return bcrypt.CompareHashAndPassword(hash, []byte(got)) == nil
	}
	return key != "" && subtle.ConstantTimeCompare([]byte(got), []byte(key)) == 1
}
