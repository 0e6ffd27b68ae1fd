package handlers

import (
	"net/http"

	"barbershop/services/shop"
	"barbershop/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ShopHandler struct {
	ShopService shop.ShopService
}

// ListItemsHandler handles GET /api/shop/items.
func (h *ShopHandler) ListItemsHandler(c *gin.Context) {
	items, err := h.ShopService.ListItems(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, shopItemViews(items))
}

func (h *ShopHandler) GetCartHandler(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	cart, err := h.ShopService.GetCart(c.Request.Context(), sess)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

// AddToCartHandler handles POST /api/shop/cart with {"itemId": "..."}. Adding
// an item already in the cart increments its quantity.
func (h *ShopHandler) AddToCartHandler(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	var req struct {
		ItemID string `json:"itemId" binding:"required"`
	}
	if !bindJSON(c, &req) {
		return
	}
	cart, err := h.ShopService.AddToCart(c.Request.Context(), sess, req.ItemID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

// SetQuantityHandler handles PUT /api/shop/cart/:id. A quantity of zero or
// less drops the line.
func (h *ShopHandler) SetQuantityHandler(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	var req struct {
		Quantity int `json:"quantity"`
	}
	if !bindJSON(c, &req) {
		return
	}
	cart, err := h.ShopService.SetQuantity(c.Request.Context(), sess, c.Param("id"), req.Quantity)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

func (h *ShopHandler) RemoveFromCartHandler(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	cart, err := h.ShopService.RemoveFromCart(c.Request.Context(), sess, c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

// CheckoutHandler handles POST /api/shop/checkout.
func (h *ShopHandler) CheckoutHandler(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	order, err := h.ShopService.Checkout(c.Request.Context(), sess)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	getLogger(c).Info("order placed", zap.String("id", order.ID), zap.Float64("total", order.Total))
	c.JSON(http.StatusCreated, orderView{ID: order.ID, Order: *order})
}

// MyOrdersHandler handles GET /api/shop/orders.
func (h *ShopHandler) MyOrdersHandler(c *gin.Context) {
	sess, ok := currentSession(c)
	if !ok {
		return
	}
	orders, err := h.ShopService.MyOrders(c.Request.Context(), sess)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orderViews(orders))
}
