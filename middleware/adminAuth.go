package middleware

import (
	"net/http"

	"barbershop/utils"

	"github.com/gin-gonic/gin"
)

// RequireAdmin lets only the reserved administrator identity through.
// It must run after JWTAuthMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := SessionFrom(c)
		if !ok || !sess.IsAdmin {
			utils.JSONError(c, http.StatusForbidden, utils.KindAuth, "Unauthorized admin access", "")
			return
		}
		c.Set("isAdmin", true)
		c.Next()
	}
}
