package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ssaltnsoul-code/SaltnSoul/middleware"
	"github.com/ssaltnsoul-code/SaltnSoul/models"
)

// ClearCart godoc
// @Summary Empty the cart
// @Tags Storefront - Cart
// @Produce json
// @Param X-Cart-Session header string false "Cart session"
// @Success 200 {object} models.ApiResponse{data=models.CartResponse}
// @Router /store/cart [delete]
func ClearCart(c *gin.Context) {
	cart, err := carts.Clear(c.Request.Context(), middleware.GetCartSession(c))
	if err != nil {
		respondCartError(c, "clear", err)
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart cleared", cart))
}
