package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"wemovies/middleware"
	"wemovies/models"
	"wemovies/services"
)

func parseItemID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// pageData is the common payload of every HTML page: the header reads the
// session cart's summary.
func pageData(c *gin.Context, data gin.H) gin.H {
	sess := middleware.CurrentSession(c)
	if data == nil {
		data = gin.H{}
	}
	data["Cart"] = services.BuildCartSummary(sess.Cart.Snapshot())
	return data
}

func badItemID(c *gin.Context) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Success: false,
		Message: "Invalid item id",
	})
}

func cartResponse(c *gin.Context, message string, snap models.CartSnapshot) {
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: message,
		Data:    services.BuildCartPage(snap),
	})
}
