package handlers

import (
	"net/http"

	"barbershop/middleware"
	"barbershop/models"
	"barbershop/services/user"
	"barbershop/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler serves signup, email verification and login.
type AuthHandler struct {
	UserService user.UserService
}

// currentSession returns the session set by the auth middleware, answering
// 401 itself when there is none.
func currentSession(c *gin.Context) (models.Session, bool) {
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, utils.KindAuth, "Not signed in", "")
		return models.Session{}, false
	}
	return sess, true
}

func bindJSON(c *gin.Context, v interface{}) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.KindValidation, "Invalid request", err.Error())
		return false
	}
	return true
}

// SignupHandler handles POST /api/auth/signup. The account exists even when
// the verification email could not be sent; the delivery outcome is returned.
func (h *AuthHandler) SignupHandler(c *gin.Context) {
	var req user.SignupRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.UserService.Signup(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if !result.Delivery.Sent {
		getLogger(c).Warn("verification email not delivered", zap.String("username", result.User.Username), zap.String("error", result.Delivery.Error))
	}
	c.JSON(http.StatusCreated, result)
}

// VerifyHandler handles POST /api/auth/verify.
func (h *AuthHandler) VerifyHandler(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Code     string `json:"code" binding:"required"`
	}
	if !bindJSON(c, &req) {
		return
	}
	usr, err := h.UserService.Verify(c.Request.Context(), req.Username, req.Code)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": usr, "message": "Email verified. Your account is awaiting admin approval."})
}

// ResendHandler handles POST /api/auth/resend.
func (h *AuthHandler) ResendHandler(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
	}
	if !bindJSON(c, &req) {
		return
	}
	delivery, err := h.UserService.ResendCode(c.Request.Context(), req.Username)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, delivery)
}

// LoginHandler handles POST /api/auth/login.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if !bindJSON(c, &req) {
		return
	}
	resp, err := h.UserService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	getLogger(c).Info("signed in", zap.String("username", resp.User.Username), zap.Bool("admin", resp.IsAdmin))
	c.JSON(http.StatusOK, resp)
}

// MeHandler handles GET /api/me.
func (h *AuthHandler) MeHandler(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	resp := gin.H{
		"username":        sess.ActiveUsername,
		"displayName":     sess.DisplayName(),
		"isAdmin":         sess.IsAdmin,
		"pendingApproval": sess.PendingApproval(),
		"storeMode":       sess.StoreMode,
	}
	if sess.CurrentUser != nil {
		resp["user"] = sess.CurrentUser.Public()
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateProfileHandler handles PUT /api/profile and PUT /api/admin/profile.
func (h *AuthHandler) UpdateProfileHandler(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	var req user.ProfileUpdate
	if !bindJSON(c, &req) {
		return
	}
	usr, err := h.UserService.UpdateProfile(c.Request.Context(), sess, req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, usr)
}
