package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"farm_hub/internal/domain/product"
)

type ProductLister interface {
	ListProducts(ctx context.Context) ([]product.Product, error)
}

type ProductHandler struct {
	svc ProductLister
}

func NewProductHandler(svc ProductLister) *ProductHandler {
	return &ProductHandler{svc: svc}
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.svc.ListProducts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to fetch products",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"products": products,
		"count":    len(products),
	})
}
