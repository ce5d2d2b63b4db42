package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type OrderController struct{}

// Confirmed is the static confirmation screen reached after checkout.
func (ctrl *OrderController) Confirmed(c *gin.Context) {
	c.HTML(http.StatusOK, "order_confirmed.html", pageData(c, nil))
}
