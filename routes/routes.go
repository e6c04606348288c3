package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/medina-atelier/admin-api/controllers"
	"github.com/medina-atelier/admin-api/middleware"
)

// Controllers bundles the handler sets wired in main.
type Controllers struct {
	Auth     *controllers.AuthController
	Orders   *controllers.OrderController
	Products *controllers.ProductController
	Users    *controllers.UserController
	Settings *controllers.SettingsController
	Stats    *controllers.StatsController
}

// Register mounts all routes. Dashboard API routes sit behind the admin
// session check; login, health and the public cover video do not.
func Register(r *gin.Engine, ctrl Controllers, jwtSecret []byte) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/auth/login", ctrl.Auth.Login)

	// The storefront homepage fetches the cover video unauthenticated.
	r.GET("/settings", ctrl.Settings.GetCoverVideo)

	admin := r.Group("/", middleware.RequireAdmin(jwtSecret))
	{
		orderRoutes := admin.Group("/orders")
		{
			orderRoutes.GET("", ctrl.Orders.GetOrders)
			orderRoutes.POST("", ctrl.Orders.CreateOrder)
			orderRoutes.PUT("/:id", ctrl.Orders.UpdateOrderStatus)
			orderRoutes.DELETE("/:id", ctrl.Orders.DeleteOrder)
		}

		guestRoutes := admin.Group("/guest-order")
		{
			guestRoutes.GET("", ctrl.Orders.GetGuestOrders)
			guestRoutes.DELETE("/:id", ctrl.Orders.DeleteOrder)
		}

		productRoutes := admin.Group("/products")
		{
			productRoutes.GET("", ctrl.Products.GetProducts)
			productRoutes.POST("", ctrl.Products.CreateProduct)
			productRoutes.GET("/:id", ctrl.Products.GetProductByID)
			productRoutes.PUT("/:id", ctrl.Products.UpdateProduct)
			productRoutes.PUT("/:id/price", ctrl.Products.SetProductPrice)
			productRoutes.DELETE("/:id", ctrl.Products.DeleteProduct)
		}

		userRoutes := admin.Group("/users")
		{
			userRoutes.GET("", ctrl.Users.GetUsers)
			userRoutes.GET("/:id", ctrl.Users.GetUserByID)
			userRoutes.PUT("/:id", ctrl.Users.UpdateUser)
			userRoutes.DELETE("/:id", ctrl.Users.DeleteUser)
		}

		admin.POST("/settings", ctrl.Settings.UploadCoverVideo)
		admin.GET("/stats", ctrl.Stats.GetStats)
	}
}
