package controllers

import (
	"io"
	"time"

	"github.com/gin-gonic/gin"

	"wemovies/middleware"
	"wemovies/services"
)

const eventsHeartbeat = 25 * time.Second

type EventsController struct{}

// CartEvents streams the session cart's summary as "cart" server-sent events.
// The current summary goes out first, then one event per published snapshot.
// When the session has a catalog view, a single "catalog" event reports its
// terminal status once it settles.
func (ctrl *EventsController) CartEvents(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	cart := sess.Cart
	updates, cancel := cart.Subscribe()
	defer cancel()

	view := sess.CatalogView()
	var catalogDone <-chan struct{}
	if view != nil {
		catalogDone = view.Done()
	}

	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")
	c.SSEvent("cart", services.BuildCartSummary(cart.Snapshot()))
	c.Writer.Flush()

	heartbeat := time.NewTicker(eventsHeartbeat)
	defer heartbeat.Stop()

	c.Stream(func(w io.Writer) bool {
		select {
		case <-c.Request.Context().Done():
			return false
		case snap, ok := <-updates:
			if !ok {
				return false
			}
			c.SSEvent("cart", services.BuildCartSummary(snap))
			return true
		case <-catalogDone:
			catalogDone = nil
			c.SSEvent("catalog", gin.H{"status": view.State().Status})
			return true
		case <-heartbeat.C:
			c.SSEvent("ping", "")
			return true
		}
	})
}
