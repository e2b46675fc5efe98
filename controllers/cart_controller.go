package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bar-bike/models"
	"bar-bike/services"
)

type CartController struct {
	cartService     *services.CartService
	checkoutService *services.CheckoutService
}

func NewCartController(cartService *services.CartService, checkoutService *services.CheckoutService) *CartController {
	return &CartController{
		cartService:     cartService,
		checkoutService: checkoutService,
	}
}

// @Summary Open a cart
// @Tags Cart
// @Produce json
// @Success 201 {object} models.Response
// @Router /carts [post]
func (ctrl *CartController) CreateCart(c *gin.Context) {
	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Cart created",
		Data:    ctrl.cartService.Create(),
	})
}

// @Summary Get cart
// @Tags Cart
// @Produce json
// @Param id path string true "Cart ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /carts/{id} [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	cart, err := ctrl.cartService.Get(c.Param("id"))
	ctrl.respond(c, cart, err, "Cart retrieved")
}

// @Summary Add product to cart
// @Description Adds one unit; an existing line for the product is incremented
// @Tags Cart
// @Accept json
// @Produce json
// @Param id path string true "Cart ID"
// @Param body body models.AddCartItemRequest true "Product"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /carts/{id}/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	cart, err := ctrl.cartService.AddProduct(c.Request.Context(), c.Param("id"), req.ProductID)
	ctrl.respond(c, cart, err, "Item added to cart")
}

// @Summary Change line quantity
// @Description Shifts the quantity by delta; changes that would leave zero or less are ignored
// @Tags Cart
// @Accept json
// @Produce json
// @Param id path string true "Cart ID"
// @Param productId path string true "Product ID"
// @Param body body models.UpdateCartItemRequest true "Delta"
// @Success 200 {object} models.Response
// @Router /carts/{id}/items/{productId} [patch]
func (ctrl *CartController) UpdateItem(c *gin.Context) {
	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	cart, err := ctrl.cartService.UpdateQuantity(c.Param("id"), c.Param("productId"), req.Delta)
	ctrl.respond(c, cart, err, "Cart updated")
}

// @Summary Remove line from cart
// @Tags Cart
// @Produce json
// @Param id path string true "Cart ID"
// @Param productId path string true "Product ID"
// @Success 200 {object} models.Response
// @Router /carts/{id}/items/{productId} [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	cart, err := ctrl.cartService.Remove(c.Param("id"), c.Param("productId"))
	ctrl.respond(c, cart, err, "Item removed from cart")
}

// @Summary Empty the cart
// @Tags Cart
// @Produce json
// @Param id path string true "Cart ID"
// @Success 200 {object} models.Response
// @Router /carts/{id}/items [delete]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	cart, err := ctrl.cartService.Clear(c.Param("id"))
	ctrl.respond(c, cart, err, "Cart cleared")
}

// @Summary Checkout via WhatsApp
// @Description Builds the WhatsApp order message and deep link for the cart
// @Tags Cart
// @Produce json
// @Param id path string true "Cart ID"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /carts/{id}/checkout [post]
func (ctrl *CartController) Checkout(c *gin.Context) {
	cart, err := ctrl.cartService.Snapshot(c.Param("id"))
	if err != nil {
		respondError(c, err, "Cart not found")
		return
	}

	order, err := ctrl.checkoutService.Checkout(c.Request.Context(), cart)
	if err != nil {
		respondError(c, err, "Checkout failed")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Order ready to send",
		Data:    order,
	})
}

func (ctrl *CartController) respond(c *gin.Context, cart models.CartSummary, err error, message string) {
	if err != nil {
		respondError(c, err, "Cart operation failed")
		return
	}
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: message,
		Data:    cart,
	})
}
