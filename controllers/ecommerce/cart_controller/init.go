package cart_controller

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ssaltnsoul-code/SaltnSoul/models"
	"github.com/ssaltnsoul-code/SaltnSoul/services"
)

// ProductFinder looks a product up in the catalog.
type ProductFinder interface {
	Product(idOrHandle string) (models.Product, bool)
}

var (
	carts   *services.CartService
	catalog ProductFinder
)

func InitCartController(cs *services.CartService, pf ProductFinder) {
	carts = cs
	catalog = pf
}

// ─────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────

func parseIndex(c *gin.Context) (int, bool) {
	idx, err := strconv.Atoi(c.Param("index"))
	if err != nil || idx < 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid line index"))
		return 0, false
	}
	return idx, true
}

func respondCartError(c *gin.Context, action string, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidQuantity):
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Quantity must be at least 1"))
	case errors.Is(err, services.ErrLineNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Cart line not found"))
	case errors.Is(err, services.ErrProductNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
	default:
		log.Printf("❌ [cart.%s] %v", action, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update cart"))
	}
}
