package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/sailakshmimedida/Menu-Management/internal/billing"
	"github.com/sailakshmimedida/Menu-Management/internal/menu"
	"github.com/sailakshmimedida/Menu-Management/internal/order"
	"github.com/sailakshmimedida/Menu-Management/internal/session"
)

func New(store *session.Store, clock billing.Clock, allowedOrigins []string) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	sessionHandler := session.NewHandler(store)
	menuHandler := menu.NewHandler(store)
	adminMenuHandler := menu.NewAdminHandler(store)
	orderHandler := order.NewHandler(store, clock)

	// ───────────────────────── SESSIONS ─────────────────────────
	r.POST("/sessions", sessionHandler.Create)

	sessions := r.Group("/sessions/:id")
	{
		sessions.GET("", sessionHandler.Get)
		sessions.DELETE("", sessionHandler.Delete)

		// ─────────────────── CUSTOMER ───────────────────
		sessions.GET("/menu", menuHandler.Browse)
		sessions.GET("/menu/items/:item_id", menuHandler.GetItem)

		sessions.POST("/order/items", orderHandler.AddItem)
		sessions.GET("/order", orderHandler.Summary)
		sessions.GET("/order/bill", orderHandler.Bill)

		// ─────────────────── ADMIN ───────────────────
		admin := sessions.Group("/admin/menu")
		{
			admin.GET("/items", adminMenuHandler.ListItems)
			admin.POST("/items", adminMenuHandler.AddItem)
			admin.PATCH("/items/:item_id", adminMenuHandler.UpdateItem)
			admin.DELETE("/items/:item_id", adminMenuHandler.RemoveItem)
		}
	}

	return r
}
