package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	SignUp(c *ginext.Context)
	Login(c *ginext.Context)
	Logout(c *ginext.Context)
	UpdateProfile(c *ginext.Context)
	CreateEvent(c *ginext.Context)
	ListPublishedEvents(c *ginext.Context)
	ListUserEvents(c *ginext.Context)
	GetEvent(c *ginext.Context)
	UpdateEvent(c *ginext.Context)
	DeleteEvent(c *ginext.Context)
	ListEventAttendees(c *ginext.Context)
	BookTicket(c *ginext.Context)
	ListUserTickets(c *ginext.Context)
	CancelTicket(c *ginext.Context)
	GetTicketQRCode(c *ginext.Context)
	DownloadTicketPDF(c *ginext.Context)
	ListAllUsers(c *ginext.Context)
	ListAllEvents(c *ginext.Context)
}

func InitRouter(mode string, h Handler, authMW, adminMW ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/signup", h.SignUp)
			auth.POST("/login", h.Login)
			auth.POST("/logout", authMW, h.Logout)
			auth.PUT("/profile", authMW, h.UpdateProfile)
		}

		events := api.Group("/events")
		{
			// Public
			events.GET("/published", h.ListPublishedEvents)
			events.GET("/:id/tickets", h.ListEventAttendees)

			// Protected
			events.POST("", authMW, h.CreateEvent)
			events.GET("/user", authMW, h.ListUserEvents)
			events.GET("/:id", authMW, h.GetEvent)
			events.PUT("/:id", authMW, h.UpdateEvent)
			events.DELETE("/:id", authMW, h.DeleteEvent)
		}

		tickets := api.Group("/tickets", authMW)
		{
			tickets.POST("", h.BookTicket)
			tickets.GET("/user", h.ListUserTickets)
			tickets.DELETE("/:id", h.CancelTicket)
			tickets.GET("/:id/qrcode", h.GetTicketQRCode)
			tickets.GET("/:id/pdf", h.DownloadTicketPDF)
		}

		admin := api.Group("/admin", authMW, adminMW)
		{
			admin.GET("/users", h.ListAllUsers)
			admin.GET("/events", h.ListAllEvents)
		}
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	router.LoadHTMLGlob("web/templates/*")
	router.Static("/static", "web/static")

	router.GET("/", func(c *ginext.Context) {
		c.HTML(http.StatusOK, "index.html", nil)
	})

	return router
}
