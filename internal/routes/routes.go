package routes

import (
	"net/http"
	"slices"
	"time"

	"github.com/01moynul/shop-api/internal/handlers"
	"github.com/01moynul/shop-api/internal/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// corsConfig allows every origin when the list is empty or contains "*".
// Credentials are only allowed for an explicit origin list.
func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}

func SetupRouter(h *handlers.Handlers, allowedOrigins []string) *gin.Engine {
	handlers.UseJSONFieldNames()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID(), middleware.Logger())

	// --- CORS must run before any route ---
	router.Use(cors.New(corsConfig(allowedOrigins)))

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// --- User & Address Routes ---
	router.GET("/users", h.GetUsers)
	router.POST("/users", h.CreateUser)
	router.GET("/users/:id", h.GetUser)
	router.PUT("/users/:id", h.UpdateUser)
	router.DELETE("/users/:id", h.DeleteUser)
	router.GET("/users/:id/addresses", h.GetUserAddresses)
	router.POST("/users/:id/addresses", h.CreateAddress)

	router.GET("/addresses/:id", h.GetAddress)
	router.PUT("/addresses/:id", h.UpdateAddress)
	router.DELETE("/addresses/:id", h.DeleteAddress)

	// --- Product Routes ---
	router.POST("/products", h.CreateProduct)
	router.GET("/products", h.GetProducts)
	router.GET("/products/:id", h.GetProduct)
	router.PUT("/products/:id", h.UpdateProduct)
	router.DELETE("/products/:id", h.DeleteProduct)

	// --- Cart Routes ---
	router.GET("/carts", h.GetCarts)
	router.POST("/carts", h.CreateCart)
	router.GET("/carts/:id", h.GetCart)
	router.DELETE("/carts/:id", h.DeleteCart)
	router.POST("/carts/:id/items", h.AddToCart)
	router.DELETE("/carts/:id/items/:item_id", h.RemoveFromCart)

	// --- Order Routes ---
	// Orders are records of a sale: there is no delete.
	router.POST("/orders", h.CreateOrder)
	router.GET("/orders", h.GetOrders)
	router.GET("/orders/:id", h.GetOrderDetails)
	router.PUT("/orders/:id", h.UpdateOrder)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Route not found"})
	})

	return router
}
