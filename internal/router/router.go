package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateEvent(c *ginext.Context)
	UpdateEvent(c *ginext.Context)
	GetEvent(c *ginext.Context)
	ListEvents(c *ginext.Context)
	ValidateFields(c *ginext.Context)
	CreateGuest(c *ginext.Context)
	ListGuests(c *ginext.Context)
	SubmitResponses(c *ginext.Context)
	MyResponses(c *ginext.Context)
	PrivateResults(c *ginext.Context)
	PublicResults(c *ginext.Context)
}

// InitRouter wires the API. guest authenticates guest-scoped routes and
// metrics serves the Prometheus scrape endpoint.
func InitRouter(mode string, h Handler, guest ginext.HandlerFunc, metrics http.Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Events
		api.POST("/events", h.CreateEvent)
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.PUT("/events/:id", h.UpdateEvent)
		api.POST("/fields/validate", h.ValidateFields)

		// Guests
		api.POST("/events/:id/guests", h.CreateGuest)
		api.GET("/events/:id/guests", h.ListGuests)

		// Results
		api.GET("/events/:id/results", h.PrivateResults)
		api.GET("/events/:id/results/public", h.PublicResults)
	}

	responses := api.Group("/events/:id/responses", guest)
	{
		responses.POST("", h.SubmitResponses)
		responses.GET("/me", h.MyResponses)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	router.GET("/metrics", func(c *ginext.Context) {
		metrics.ServeHTTP(c.Writer, c.Request)
	})

	return router
}
