package router

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"getsbiplay.ru/store/api/pkg/global"
	"getsbiplay.ru/store/api/pkg/models"
)

// Checkout assembles the session's cart into an order snapshot and submits
// it to the notifier. The cart is cleared only after success; on failure the
// user repeats the submission manually.
func (h *Handler) Checkout(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data", []global.ValidationError{
			{Field: "request", Message: err.Error(), Code: "validation_error"},
		}))
		return
	}

	ctx := c.Request.Context()
	ledger := h.ledger(c)

	products, _ := h.products.List(ctx)
	items, _, err := ledger.Materialize(ctx, products)
	if err != nil {
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to load cart", nil))
		return
	}
	if len(items) == 0 {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Cart is empty", []global.ValidationError{
			{Field: "cart", Message: "Cannot submit an order for an empty cart", Code: "empty_cart"},
		}))
		return
	}

	order := models.BuildOrder(items, req)

	if err := h.notifier.SubmitOrder(ctx, order); err != nil {
		log.Printf("Error submitting order: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to submit order", nil))
		return
	}

	if err := ledger.Clear(ctx); err != nil {
		log.Printf("Warning: failed to clear cart after order: %v", err)
	}

	c.JSON(http.StatusOK, global.SuccessResponse(map[string]interface{}{
		"total":      order.Total,
		"item_count": len(order.Items),
	}))
}
