package cart_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ssaltnsoul-code/SaltnSoul/middleware"
	"github.com/ssaltnsoul-code/SaltnSoul/models"
	"github.com/ssaltnsoul-code/SaltnSoul/services"
)

// AddCartItem godoc
// @Summary Add a product to the cart
// @Description Merges into the line with the same product, size and colour. Quantity defaults to 1.
// @Tags Storefront - Cart
// @Accept json
// @Produce json
// @Param X-Cart-Session header string false "Cart session"
// @Param item body models.AddCartItemRequest true "Line to add"
// @Success 200 {object} models.ApiResponse{data=models.CartResponse}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /store/cart/items [post]
func AddCartItem(c *gin.Context) {
	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	product, ok := catalog.Product(req.ProductID)
	if !ok {
		respondCartError(c, "add", services.ErrProductNotFound)
		return
	}

	session := middleware.GetCartSession(c)
	cart, err := carts.AddItem(c.Request.Context(), session, product, req.Size, req.Color, quantity)
	if err != nil {
		respondCartError(c, "add", err)
		return
	}

	log.Printf("[cart.add] %s x%d (%s/%s)", product.ID, quantity, req.Size, req.Color)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Item added to cart", cart))
}
