package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"getsbiplay.ru/store/api/pkg/cart"
	"getsbiplay.ru/store/api/pkg/global"
	"getsbiplay.ru/store/api/pkg/models"
	"getsbiplay.ru/store/api/pkg/pricing"
)

func (h *Handler) ledger(c *gin.Context) *cart.Ledger {
	return cart.NewLedger(h.carts, c.Param("sessionId"))
}

// respondCart materializes the ledger against the current listing and
// replies with the line items and the discount-aware total.
func (h *Handler) respondCart(c *gin.Context, ledger *cart.Ledger) {
	ctx := c.Request.Context()

	products, _ := h.products.List(ctx)
	items, total, err := ledger.Materialize(ctx, products)
	if err != nil {
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to load cart", nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(map[string]interface{}{
		"items":         items,
		"total":         total,
		"total_display": pricing.FormatPrice(total),
	}))
}

func (h *Handler) GetCart(c *gin.Context) {
	h.respondCart(c, h.ledger(c))
}

func (h *Handler) AddToCart(c *gin.Context) {
	var req models.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data", []global.ValidationError{
			{Field: "request", Message: err.Error(), Code: "validation_error"},
		}))
		return
	}

	ledger := h.ledger(c)
	if err := ledger.Add(c.Request.Context(), req.ProductID, req.Quantity); err != nil {
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to update cart", nil))
		return
	}

	h.respondCart(c, ledger)
}

func (h *Handler) UpdateCartItem(c *gin.Context) {
	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data", []global.ValidationError{
			{Field: "request", Message: err.Error(), Code: "validation_error"},
		}))
		return
	}

	ledger := h.ledger(c)
	if err := ledger.SetQuantity(c.Request.Context(), c.Param("productId"), req.Quantity); err != nil {
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to update cart", nil))
		return
	}

	h.respondCart(c, ledger)
}

func (h *Handler) RemoveFromCart(c *gin.Context) {
	ledger := h.ledger(c)
	if err := ledger.Remove(c.Request.Context(), c.Param("productId")); err != nil {
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to update cart", nil))
		return
	}

	h.respondCart(c, ledger)
}

func (h *Handler) ClearCart(c *gin.Context) {
	if err := h.ledger(c).Clear(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to clear cart", nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(map[string]string{"status": "cleared"}))
}
