package cart_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ssaltnsoul-code/SaltnSoul/middleware"
	"github.com/ssaltnsoul-code/SaltnSoul/models"
)

// UpdateCartItem godoc
// @Summary Set a cart line quantity
// @Description A quantity of zero or less removes the line.
// @Tags Storefront - Cart
// @Accept json
// @Produce json
// @Param X-Cart-Session header string false "Cart session"
// @Param index path int true "Line index"
// @Param body body models.UpdateCartItemRequest true "New quantity"
// @Success 200 {object} models.ApiResponse{data=models.CartResponse}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /store/cart/items/{index} [patch]
func UpdateCartItem(c *gin.Context) {
	idx, ok := parseIndex(c)
	if !ok {
		return
	}

	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	cart, err := carts.UpdateQuantity(c.Request.Context(), middleware.GetCartSession(c), idx, *req.Quantity)
	if err != nil {
		respondCartError(c, "update", err)
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart updated", cart))
}
