package router

import (
	"github.com/labstack/echo/v4"

	"eventdeck/internal/cache"
	"eventdeck/internal/database"
	"eventdeck/internal/handler"
	"eventdeck/internal/handler/admin"
	"eventdeck/internal/handler/auth"
	"eventdeck/internal/handler/events"
	"eventdeck/internal/handler/items"
	"eventdeck/internal/handler/users"
	"eventdeck/internal/mail"
	"eventdeck/internal/middleware"
	"eventdeck/internal/storage"
	"eventdeck/internal/worker"
)

// Setup registers every route and its middleware.
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, up storage.Uploader, mailer mail.Mailer, wp worker.Pool) {
	api := e.Group("/api")

	api.GET("/ping", handler.PingHandler(db))

	// Accounts
	api.POST("/register", auth.RegisterHandler(db))
	api.POST("/login", auth.LoginHandler(db))
	api.GET("/user", users.GetMeHandler(db), middleware.RequireUser)
	api.GET("/rsvps", users.ListMyRSVPsHandler(db), middleware.RequireUser)

	// Admin accounts and event management
	api.POST("/admin/register", admin.RegisterHandler(db))
	api.POST("/admin/login", admin.LoginHandler(db))
	api.POST("/admin/upload-event", admin.UploadEventHandler(db, rdb, up), middleware.RequireAdmin)

	// Events
	api.GET("/events", events.ListEventsHandler(db, rdb))
	api.DELETE("/events/:eventId", admin.DeleteEventHandler(db, rdb), middleware.RequireAdmin)
	api.POST("/events/:eventId/rsvp", events.RSVPHandler(db, rdb), middleware.RequireUser)
	api.GET("/events/:eventId/qrcode", events.TicketQRHandler(db), middleware.RequireUser)
	api.POST("/pay", events.PayHandler(db, mailer, wp), middleware.RequireUser)

	// Items
	api.POST("/items", items.CreateItemHandler(db))
	api.GET("/items", items.ListItemsHandler(db))
	api.PUT("/items/:id", items.UpdateItemHandler(db))
	api.DELETE("/items/:id", items.DeleteItemHandler(db))
}
