package router

import (
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// New builds the engine and wires every route against the handler's
// collaborators.
func New(h *Handler) *gin.Engine {
	if os.Getenv("ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "https://getsbiplay.ru"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.GET("/health", h.HealthCheck)
		api.GET("/catalog", h.Catalog)

		products := api.Group("/products")
		{
			products.GET("", h.ListProducts)
			products.GET("/:id", h.GetProductByID)
			products.POST("", RequireAdmin(), h.SaveProduct)
			products.PUT("", RequireAdmin(), h.SaveProduct)
			products.DELETE("", RequireAdmin(), h.DeleteProduct)
		}

		carts := api.Group("/cart")
		{
			carts.GET("/:sessionId", h.GetCart)
			carts.POST("/:sessionId/items", h.AddToCart)
			carts.PUT("/:sessionId/items/:productId", h.UpdateCartItem)
			carts.DELETE("/:sessionId/items/:productId", h.RemoveFromCart)
			carts.DELETE("/:sessionId/clear", h.ClearCart)
		}

		api.POST("/order/:sessionId", h.Checkout)

		adminAPI := api.Group("/admin")
		{
			adminAPI.POST("/login", h.AdminLogin)
			adminAPI.POST("/logout", h.AdminLogout)
		}
	}

	admin := r.Group("/admin")
	admin.Use(AdminPageGate())
	{
		admin.GET("", h.AdminPanel)
		admin.GET("/login", h.AdminLoginPage)
	}

	return r
}
