package middleware

import (
	"net/http"
	"strings"

	"barbershop/models"
	"barbershop/services/user"
	"barbershop/utils"

	"github.com/gin-gonic/gin"
)

const sessionKey = "session"

// bearerToken reads the Authorization header. Event streams cannot set
// headers from a browser, so a "token" query parameter is accepted too.
func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return c.Query("token")
}

// JWTAuthMiddleware validates the token and rebuilds the caller's session
// from a fresh account read.
func JWTAuthMiddleware(users user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			utils.JSONError(c, http.StatusUnauthorized, utils.KindAuth, "Missing or invalid Authorization header", "")
			return
		}

		claims, err := utils.ParseToken(tokenString)
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, utils.KindAuth, "Invalid token", "")
			return
		}

		sess, err := users.SessionFor(c.Request.Context(), claims)
		if err != nil {
			utils.RespondError(c, err)
			return
		}

		c.Set(sessionKey, sess)
		c.Next()
	}
}

// SessionFrom returns the session stored by JWTAuthMiddleware.
func SessionFrom(c *gin.Context) (models.Session, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return models.Session{}, false
	}
	sess, ok := v.(models.Session)
	return sess, ok
}

// RequireApproved replaces booking, shop and history content with the
// pending-approval notice until an admin approves the account.
func RequireApproved() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := SessionFrom(c)
		if !ok {
			utils.JSONError(c, http.StatusUnauthorized, utils.KindAuth, "Not signed in", "")
			return
		}
		if sess.PendingApproval() {
			utils.JSONError(c, http.StatusForbidden, utils.KindPendingApproval,
				"Your account is awaiting approval. You can sign out and check back later.",
				utils.ErrPendingApproval.Error())
			return
		}
		c.Next()
	}
}
