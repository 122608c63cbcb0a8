package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ssaltnsoul-code/SaltnSoul/middleware"
	"github.com/ssaltnsoul-code/SaltnSoul/models"
)

// GetCart godoc
// @Summary Get the cart
// @Tags Storefront - Cart
// @Produce json
// @Param X-Cart-Session header string false "Cart session (defaults to the cart_session cookie)"
// @Success 200 {object} models.ApiResponse{data=models.CartResponse}
// @Router /store/cart [get]
func GetCart(c *gin.Context) {
	cart, err := carts.Get(c.Request.Context(), middleware.GetCartSession(c))
	if err != nil {
		respondCartError(c, "get", err)
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart fetched successfully", cart))
}
