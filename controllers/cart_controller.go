package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wemovies/middleware"
	"wemovies/services"
)

type CartController struct{}

func (ctrl *CartController) ShowCart(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	page := services.BuildCartPage(sess.Cart.Snapshot())
	c.HTML(http.StatusOK, "cart.html", pageData(c, gin.H{"Page": page}))
}

func (ctrl *CartController) Increase(c *gin.Context) {
	ctrl.mutateAndReturn(c, (*services.CartStore).IncreaseQuantity)
}

func (ctrl *CartController) Decrease(c *gin.Context) {
	ctrl.mutateAndReturn(c, (*services.CartStore).DecreaseQuantity)
}

func (ctrl *CartController) Remove(c *gin.Context) {
	ctrl.mutateAndReturn(c, (*services.CartStore).RemoveItem)
}

// Checkout only navigates; the cart is left as it is.
func (ctrl *CartController) Checkout(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, "/order-confirmed")
}

func (ctrl *CartController) mutateAndReturn(c *gin.Context, op func(*services.CartStore, int64)) {
	id, ok := parseItemID(c)
	if !ok {
		c.String(http.StatusBadRequest, "Filme inválido")
		return
	}
	op(middleware.CurrentSession(c).Cart, id)
	c.Redirect(http.StatusSeeOther, "/cart")
}

// @Summary Get cart
// @Description Current cart lines with subtotals and total
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response{data=models.CartPage}
// @Router /api/cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	cartResponse(c, "Cart retrieved", middleware.CurrentSession(c).Cart.Snapshot())
}

// @Summary Increase quantity
// @Description Adds one more unit of an item already in the cart. No-op for absent items.
// @Tags Cart
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} models.Response{data=models.CartPage}
// @Failure 400 {object} models.ErrorResponse
// @Router /api/cart/items/{id}/increase [post]
func (ctrl *CartController) IncreaseAPI(c *gin.Context) {
	ctrl.mutateAPI(c, "Quantity increased", (*services.CartStore).IncreaseQuantity)
}

// @Summary Decrease quantity
// @Description Removes one unit; a line at quantity 1 is removed. No-op for absent items.
// @Tags Cart
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} models.Response{data=models.CartPage}
// @Failure 400 {object} models.ErrorResponse
// @Router /api/cart/items/{id}/decrease [post]
func (ctrl *CartController) DecreaseAPI(c *gin.Context) {
	ctrl.mutateAPI(c, "Quantity decreased", (*services.CartStore).DecreaseQuantity)
}

// @Summary Remove item
// @Description Removes the item's line. No-op for absent items.
// @Tags Cart
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} models.Response{data=models.CartPage}
// @Failure 400 {object} models.ErrorResponse
// @Router /api/cart/items/{id} [delete]
func (ctrl *CartController) RemoveAPI(c *gin.Context) {
	ctrl.mutateAPI(c, "Item removed", (*services.CartStore).RemoveItem)
}

// @Summary Clear cart
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response{data=models.CartPage}
// @Router /api/cart [delete]
func (ctrl *CartController) ClearAPI(c *gin.Context) {
	cart := middleware.CurrentSession(c).Cart
	cart.Clear()
	cartResponse(c, "Cart cleared", cart.Snapshot())
}

func (ctrl *CartController) mutateAPI(c *gin.Context, message string, op func(*services.CartStore, int64)) {
	id, ok := parseItemID(c)
	if !ok {
		badItemID(c)
		return
	}
	cart := middleware.CurrentSession(c).Cart
	op(cart, id)
	cartResponse(c, message, cart.Snapshot())
}
