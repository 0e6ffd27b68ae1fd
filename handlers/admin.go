package handlers

import (
	"net/http"

	"barbershop/services/shop"
	"barbershop/services/user"
	"barbershop/services/workingday"
	"barbershop/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler handles accounts, shop items, orders and working days for the
// administrator. The services enforce the admin check as well.
type AdminHandler struct {
	UserService       user.UserService
	ShopService       shop.ShopService
	WorkingDayService workingday.WorkingDayService
}

// GetAllAccountsHandler handles GET /api/admin/accounts.
func (h *AdminHandler) GetAllAccountsHandler(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	accounts, err := h.UserService.ListAccounts(c.Request.Context(), sess)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, accounts)
}

// ApproveAccountHandler handles POST /api/admin/accounts/:username/approve.
func (h *AdminHandler) ApproveAccountHandler(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	username := c.Param("username")
	if err := h.UserService.Approve(c.Request.Context(), sess, username); err != nil {
		utils.RespondError(c, err)
		return
	}
	getLogger(c).Info("account approved", zap.String("username", username))
	c.JSON(http.StatusOK, gin.H{"message": "Account approved", "username": username})
}

// DeleteAccountHandler handles DELETE /api/admin/accounts/:username.
func (h *AdminHandler) DeleteAccountHandler(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	username := c.Param("username")
	if err := h.UserService.DeleteAccount(c.Request.Context(), sess, username); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Account deleted", "username": username})
}

// AddItemHandler handles POST /api/admin/shop/items.
func (h *AdminHandler) AddItemHandler(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	var req struct {
		Name  string   `json:"name"`
		Price *float64 `json:"price"`
	}
	if !bindJSON(c, &req) {
		return
	}
	if req.Price == nil {
		utils.RespondError(c, utils.ValidationError("price must be a number of at least 0"))
		return
	}
	item, err := h.ShopService.AddItem(c.Request.Context(), sess, req.Name, *req.Price)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, shopItemView{ID: item.ID, ShopItem: *item})
}

// RemoveItemHandler handles DELETE /api/admin/shop/items/:id.
func (h *AdminHandler) RemoveItemHandler(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	if err := h.ShopService.RemoveItem(c.Request.Context(), sess, c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item removed"})
}

// GetAllOrdersHandler handles GET /api/admin/orders.
func (h *AdminHandler) GetAllOrdersHandler(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	orders, err := h.ShopService.AllOrders(c.Request.Context(), sess)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderViews(orders))
}

func (h *AdminHandler) ListWorkingDaysHandler(c *gin.Context) {
	days, err := h.WorkingDayService.List(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, workingDayViews(days))
}

// AddWorkingDayHandler handles POST /api/admin/working-days with {"label": "..."}.
func (h *AdminHandler) AddWorkingDayHandler(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	var req struct {
		Label string `json:"label"`
	}
	if !bindJSON(c, &req) {
		return
	}
	day, err := h.WorkingDayService.Add(c.Request.Context(), sess, req.Label)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, workingDayView{Label: day.Label, IsOpen: day.IsOpen})
}

// ToggleWorkingDayHandler handles POST /api/admin/working-days/:label/toggle.
func (h *AdminHandler) ToggleWorkingDayHandler(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	day, err := h.WorkingDayService.Toggle(c.Request.Context(), sess, c.Param("label"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, workingDayView{Label: day.Label, IsOpen: day.IsOpen})
}

func (h *AdminHandler) RemoveWorkingDayHandler(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	if err := h.WorkingDayService.Remove(c.Request.Context(), sess, c.Param("label")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Working day removed"})
}
