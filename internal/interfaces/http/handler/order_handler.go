package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domain "farm_hub/internal/domain/order"
)

type OrderPlacer interface {
	PlaceOrder(ctx context.Context, req domain.Request) (*domain.Order, error)
}

type OrderHandler struct {
	svc OrderPlacer
}

func NewOrderHandler(svc OrderPlacer) *OrderHandler {
	return &OrderHandler{svc: svc}
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req domain.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	order, err := h.svc.PlaceOrder(c.Request.Context(), req)
	if err != nil {
		if domain.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationMessage(err)})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to process order",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Order placed successfully",
		"orderId": order.ID,
	})
}

func validationMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidQuantity):
		return "Invalid quantity"
	case errors.Is(err, domain.ErrInvalidPrice):
		return "Invalid sale price"
	default:
		return "Missing required fields"
	}
}
