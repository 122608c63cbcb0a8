package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ssaltnsoul-code/SaltnSoul/middleware"
	"github.com/ssaltnsoul-code/SaltnSoul/models"
)

// RemoveCartItem godoc
// @Summary Remove a cart line
// @Tags Storefront - Cart
// @Produce json
// @Param X-Cart-Session header string false "Cart session"
// @Param index path int true "Line index"
// @Success 200 {object} models.ApiResponse{data=models.CartResponse}
// @Failure 404 {object} models.ApiResponse
// @Router /store/cart/items/{index} [delete]
func RemoveCartItem(c *gin.Context) {
	idx, ok := parseIndex(c)
	if !ok {
		return
	}

	cart, err := carts.RemoveItem(c.Request.Context(), middleware.GetCartSession(c), idx)
	if err != nil {
		respondCartError(c, "remove", err)
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Item removed from cart", cart))
}
