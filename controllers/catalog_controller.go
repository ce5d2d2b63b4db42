package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wemovies/middleware"
	"wemovies/models"
	"wemovies/services"
)

type CatalogController struct {
	Sessions *services.SessionStore
}

// Home renders whatever state the session's catalog view is in. While it is
// Loading the page shows the spinner and reloads itself when the view settles
// (a "catalog" event on /events).
func (ctrl *CatalogController) Home(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	view := ctrl.Sessions.CatalogForPage(c.Request.Context(), sess, c.Query("reload") != "")

	state := view.State()
	data := gin.H{
		"Status":  string(state.Status),
		"Message": state.Message,
	}
	if state.Status == models.CatalogLoaded {
		data["Cards"] = services.BuildCatalogCards(state.Items, sess.Cart.Snapshot())
	}
	c.HTML(http.StatusOK, "catalog.html", pageData(c, data))
	if state.Status.Terminal() {
		sess.MarkShown(view)
	}
}

func (ctrl *CatalogController) AddToCart(c *gin.Context) {
	id, ok := parseItemID(c)
	if !ok {
		c.String(http.StatusBadRequest, "Filme inválido")
		return
	}
	if err := addFromCatalog(middleware.CurrentSession(c), id); err != nil {
		c.String(http.StatusNotFound, "Filme não encontrado")
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// @Summary Get catalog
// @Description Current catalog view state for the session. Mounts a view on first call, so the status may be "loading". Pass reload=1 to fetch again after an empty or error state.
// @Tags Catalog
// @Produce json
// @Param reload query string false "Set to 1 to mount a fresh catalog view"
// @Success 200 {object} models.Response{data=models.CatalogState}
// @Router /api/catalog [get]
func (ctrl *CatalogController) GetCatalog(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	var view *services.CatalogView
	if c.Query("reload") != "" {
		view = ctrl.Sessions.CatalogForPage(c.Request.Context(), sess, true)
	} else {
		view = ctrl.Sessions.CurrentCatalog(c.Request.Context(), sess)
	}
	state := view.State()

	data := gin.H{
		"status":  state.Status,
		"message": state.Message,
	}
	if state.Status == models.CatalogLoaded {
		data["items"] = services.BuildCatalogCards(state.Items, sess.Cart.Snapshot())
	}
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Catalog retrieved",
		Data:    data,
	})
}

// @Summary Add item to cart
// @Description Adds one unit of an item from the session's loaded catalog
// @Tags Cart
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} models.Response{data=models.CartPage}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/cart/items/{id} [post]
func (ctrl *CatalogController) AddToCartAPI(c *gin.Context) {
	id, ok := parseItemID(c)
	if !ok {
		badItemID(c)
		return
	}
	sess := middleware.CurrentSession(c)
	if err := addFromCatalog(sess, id); err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Message: "Item not found in loaded catalog",
			Error:   err.Error(),
		})
		return
	}
	cartResponse(c, "Item added", sess.Cart.Snapshot())
}

func addFromCatalog(sess *services.Session, id int64) error {
	view := sess.CatalogView()
	if view == nil {
		return services.ErrItemNotInCatalog
	}
	item, ok := view.Item(id)
	if !ok {
		return services.ErrItemNotInCatalog
	}
	sess.Cart.AddItem(item)
	return nil
}
